package wizard

import (
	"fmt"
	"io"

	"github.com/ricelabs/rice-cli/internal/prompt"
	"github.com/ricelabs/rice-cli/internal/rice"
)

// Wizard collects the setup answers for both Rice services, one blocking
// prompt at a time.
type Wizard struct {
	prompter *prompt.Prompter
	writer   io.Writer
}

func New(p *prompt.Prompter, w io.Writer) *Wizard {
	return &Wizard{prompter: p, writer: w}
}

// Collect walks through the enablement questions and, for each enabled
// service, its connection parameters. When both services are declined the
// answers come back with both flags false and no parameters are asked for;
// the caller treats that as a clean abort, not an error.
func (w *Wizard) Collect() (rice.SetupAnswers, error) {
	answers := rice.DefaultAnswers()

	var err error
	if answers.StorageEnabled, err = w.prompter.Confirm("Enable Rice Storage?", true); err != nil {
		return answers, err
	}
	if answers.StateEnabled, err = w.prompter.Confirm("Enable Rice State (AI Agent Memory)?", true); err != nil {
		return answers, err
	}
	if !answers.StorageEnabled && !answers.StateEnabled {
		return answers, nil
	}

	if answers.StorageEnabled {
		if err = w.collectStorage(&answers.Storage); err != nil {
			return answers, err
		}
	}
	if answers.StateEnabled {
		if err = w.collectState(&answers.State); err != nil {
			return answers, err
		}
	}
	return answers, nil
}

func (w *Wizard) collectStorage(cfg *rice.StorageConfig) error {
	fmt.Fprintf(w.writer, "\nStorage Configuration\n")
	var err error
	if cfg.URL, err = w.prompter.Input("Storage Instance URL", cfg.URL); err != nil {
		return err
	}
	if cfg.User, err = w.prompter.Input("Storage User", cfg.User); err != nil {
		return err
	}
	if cfg.Token, err = w.prompter.Secret("Storage Auth Token/Password"); err != nil {
		return err
	}
	if cfg.HTTPPort, err = w.prompter.Input("Storage HTTP Port (for verification)", cfg.HTTPPort); err != nil {
		return err
	}
	return nil
}

func (w *Wizard) collectState(cfg *rice.StateConfig) error {
	fmt.Fprintf(w.writer, "\nState Configuration\n")
	var err error
	if cfg.URL, err = w.prompter.Input("State Instance URL", cfg.URL); err != nil {
		return err
	}
	if cfg.Token, err = w.prompter.Secret("State Auth Token"); err != nil {
		return err
	}
	if cfg.RunID, err = w.prompter.Input("State Run ID", cfg.RunID); err != nil {
		return err
	}
	return nil
}
