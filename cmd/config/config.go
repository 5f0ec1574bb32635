package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ricelabs/rice-cli/internal/envfile"
	"github.com/ricelabs/rice-cli/internal/rice"
	"github.com/ricelabs/rice-cli/internal/settings"
)

func NewCmdCreate() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		Long:  "Prints the persisted Rice environment variables (tokens masked) and whether the settings document exists.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := envfile.Load(envfile.FileName); err != nil {
				return err
			}
			report(os.Stdout, settings.FileName)
			return nil
		},
	}
	return configCmd
}

// report prints every Rice environment variable. Token values are never
// echoed, not even empty ones; keys absent from the environment are marked
// explicitly. The settings document is only checked for existence, its
// content is not inspected.
func report(w io.Writer, settingsPath string) {
	fmt.Fprintln(w, "Rice Configuration:")
	for _, key := range rice.EnvKeys() {
		value, ok := os.LookupEnv(key)
		switch {
		case !ok:
			fmt.Fprintf(w, "%s: Not set\n", key)
		case strings.Contains(key, "TOKEN"):
			fmt.Fprintf(w, "%s: ********\n", key)
		default:
			fmt.Fprintf(w, "%s: %s\n", key, value)
		}
	}
	if settings.Exists(settingsPath) {
		fmt.Fprintf(w, "\n%s found.\n", settings.FileName)
	} else {
		fmt.Fprintf(w, "\n%s not found.\n", settings.FileName)
	}
}
