package check

import (
	"fmt"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	riceconfig "github.com/ricelabs/rice-cli/internal/config"
	"github.com/ricelabs/rice-cli/internal/envfile"
	"github.com/ricelabs/rice-cli/internal/health"
	"github.com/ricelabs/rice-cli/internal/spinner"
)

const (
	check = "✔  "
	cross = "✖  "
)

func NewCmdCreate() *cobra.Command {
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Check connection to Rice instance",
		Long:  "Probes the Storage health endpoint using the persisted configuration, falling back to the setup defaults.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envfile.Load(envfile.FileName); err != nil {
				return err
			}
			cfg, err := riceconfig.Load()
			if err != nil {
				return err
			}
			fmt.Println("Checking connection to Rice...")
			url := health.URL(cfg.StorageInstanceURL, cfg.StorageHTTPPort)
			result := health.CheckWithProgress(resty.New(), url,
				fmt.Sprintf("Checking Storage health at %s...", url), spinner.New)
			report(os.Stdout, result)
			return nil
		},
	}
	return checkCmd
}

func report(w io.Writer, result health.Result) {
	switch result.Status {
	case health.Healthy:
		fmt.Fprintf(w, "%sStorage is healthy (Status: %d)\n", check, result.Code)
	case health.Unhealthy:
		fmt.Fprintf(w, "%sStorage is unhealthy (Status: %d)\n", cross, result.Code)
	default:
		fmt.Fprintf(w, "%sFailed to connect to Storage: %v\n", cross, result.Err)
	}
}
