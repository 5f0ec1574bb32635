package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time via -ldflags.
var Version string

func NewCmdCreate() *cobra.Command {
	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Show the rice-cli version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if Version == "" {
				fmt.Println("rice-cli (dev build)")
				return nil
			}
			fmt.Printf("rice-cli %s\n", Version)
			return nil
		},
	}
	return versionCmd
}
