package setup

import (
	"fmt"
	"io"
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/ricelabs/rice-cli/internal/envfile"
	"github.com/ricelabs/rice-cli/internal/health"
	"github.com/ricelabs/rice-cli/internal/prompt"
	"github.com/ricelabs/rice-cli/internal/rice"
	"github.com/ricelabs/rice-cli/internal/settings"
	"github.com/ricelabs/rice-cli/internal/spinner"
	"github.com/ricelabs/rice-cli/internal/wizard"
)

const (
	check = "✔  "
	cross = "✖  "
)

// Options carries everything the wizard touches so tests can point it at a
// temp directory and a stub server instead of the working directory and a
// live instance.
type Options struct {
	Prompter     *prompt.Prompter
	Writer       io.Writer
	SettingsPath string
	EnvPath      string
	Client       *resty.Client
	Progress     health.Progress
}

func NewCmdCreate() *cobra.Command {
	setupCmd := &cobra.Command{
		Use:   "setup",
		Short: "Setup Rice in the current project",
		Long:  "Walks through enabling the Rice Storage and State services, writes rice.config.js and .env, and verifies Storage connectivity.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run()
		},
	}
	return setupCmd
}

// Run executes the interactive wizard against the real terminal, the working
// directory and a fresh HTTP client.
func Run() error {
	return runSetup(Options{
		Prompter:     prompt.New(os.Stdin, os.Stdout),
		Writer:       os.Stdout,
		SettingsPath: settings.FileName,
		EnvPath:      envfile.FileName,
		Client:       resty.New(),
		Progress:     spinner.New,
	})
}

func runSetup(opts Options) error {
	fmt.Fprintln(opts.Writer, "Welcome to the Rice CLI Setup")
	fmt.Fprintln(opts.Writer, "This utility will walk you through setting up Rice in your project.")
	fmt.Fprintln(opts.Writer)

	answers, err := wizard.New(opts.Prompter, opts.Writer).Collect()
	if err != nil {
		return err
	}
	if !answers.StorageEnabled && !answers.StateEnabled {
		fmt.Fprintln(opts.Writer, "You must enable at least one service.")
		return nil
	}

	fmt.Fprintln(opts.Writer)
	fmt.Fprintln(opts.Writer, "Generating configuration files...")

	if err := writeSettings(opts, answers); err != nil {
		return err
	}
	if err := writeEnv(opts, answers); err != nil {
		return err
	}

	// State connectivity is never verified; only Storage exposes the health
	// endpoint.
	if answers.StorageEnabled {
		fmt.Fprintln(opts.Writer)
		reportProbe(opts, answers)
	}

	fmt.Fprintln(opts.Writer)
	fmt.Fprintln(opts.Writer, "Setup complete!")
	fmt.Fprintln(opts.Writer, "You can now install the SDK using: npm install rice-node-sdk")
	return nil
}

// writeSettings regenerates the settings document. An existing file is only
// replaced after an explicit confirmation; declining keeps the prior bytes
// and the run still proceeds.
func writeSettings(opts Options, answers rice.SetupAnswers) error {
	content := settings.Render(answers.StorageEnabled, answers.StateEnabled)
	if settings.Exists(opts.SettingsPath) {
		overwrite, err := opts.Prompter.Confirm(settings.FileName+" already exists. Overwrite?", false)
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintf(opts.Writer, "%sSkipped %s\n", check, settings.FileName)
			return nil
		}
	}
	if err := settings.Write(opts.SettingsPath, content); err != nil {
		return err
	}
	fmt.Fprintf(opts.Writer, "%sCreated %s\n", check, settings.FileName)
	return nil
}

func writeEnv(opts Options, answers rice.SetupAnswers) error {
	created, err := envfile.Append(opts.EnvPath, answers)
	if err != nil {
		return err
	}
	if created {
		fmt.Fprintf(opts.Writer, "%sCreated %s\n", check, envfile.FileName)
	} else {
		fmt.Fprintf(opts.Writer, "%sAppended to %s\n", check, envfile.FileName)
	}
	return nil
}

// reportProbe verifies Storage reachability once and prints the outcome.
// Failures here are advisory; setup still completes.
func reportProbe(opts Options, answers rice.SetupAnswers) {
	url := health.URL(answers.Storage.URL, answers.Storage.HTTPPort)
	result := health.CheckWithProgress(opts.Client, url, "Verifying connection to Storage...", opts.Progress)
	switch result.Status {
	case health.Healthy:
		fmt.Fprintf(opts.Writer, "%sSuccessfully connected to Rice Storage at %s\n", check, url)
	case health.Unhealthy:
		fmt.Fprintf(opts.Writer, "%sConnection failed: Status %d\n", cross, result.Code)
		fmt.Fprintln(opts.Writer, "   Please check if your Rice instance is running.")
	default:
		fmt.Fprintf(opts.Writer, "%sConnection failed: %v\n", cross, result.Err)
		fmt.Fprintf(opts.Writer, "   Could not reach %s. Please ensure Rice is running and HTTP port is correct.\n", url)
	}
}
