package cmd

import (
	checkCmd "github.com/ricelabs/rice-cli/cmd/check"
	configCmd "github.com/ricelabs/rice-cli/cmd/config"
	setupCmd "github.com/ricelabs/rice-cli/cmd/setup"
	versionCmd "github.com/ricelabs/rice-cli/cmd/version"
	"github.com/ricelabs/rice-cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rice-cli",
	Short: "Rice CLI Setup Tool",
	Long:  `A CLI tool to set up the Rice Storage and State services in a project and verify their connectivity.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.SetVerbose(verbose)
		logging.Print("Setting verbose")
	},
	// Running rice-cli without a subcommand starts the setup wizard.
	RunE: func(cmd *cobra.Command, args []string) error {
		return setupCmd.Run()
	},
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		logging.Fatal(err)
	}
}

func init() {

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(setupCmd.NewCmdCreate())
	rootCmd.AddCommand(configCmd.NewCmdCreate())
	rootCmd.AddCommand(checkCmd.NewCmdCreate())
	rootCmd.AddCommand(versionCmd.NewCmdCreate())
}
