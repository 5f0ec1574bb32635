package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ricelabs/rice-cli/internal/rice"
)

// FileName is the environment file rice-cli appends to in the project
// directory.
const FileName = ".env"

// Block renders the env assignments produced by one setup run: a leading
// blank line, a comment header, then the seven keys in fixed order. Values
// are written verbatim; disabled services carry their defaults.
func Block(a rice.SetupAnswers) string {
	var b strings.Builder
	b.WriteString("\n# Rice Configuration\n")
	fmt.Fprintf(&b, "STORAGE_INSTANCE_URL=%s\n", a.Storage.URL)
	fmt.Fprintf(&b, "STORAGE_USER=%s\n", a.Storage.User)
	fmt.Fprintf(&b, "STORAGE_AUTH_TOKEN=%s\n", a.Storage.Token)
	fmt.Fprintf(&b, "STORAGE_HTTP_PORT=%s\n", a.Storage.HTTPPort)
	fmt.Fprintf(&b, "STATE_INSTANCE_URL=%s\n", a.State.URL)
	fmt.Fprintf(&b, "STATE_AUTH_TOKEN=%s\n", a.State.Token)
	fmt.Fprintf(&b, "STATE_RUN_ID=%s\n", a.State.RunID)
	return b.String()
}

// Append writes the block for the given answers at the end of the env file,
// creating the file when missing. Prior content is never parsed, deduplicated
// or rewritten, so repeated setup runs accumulate one block each. The block
// goes through a buffered writer with a single flush so the file gains either
// the whole block or, on failure, an error the caller treats as fatal.
// Returns whether this call created the file.
func Append(path string, a rice.SetupAnswers) (created bool, err error) {
	_, statErr := os.Stat(path)
	created = os.IsNotExist(statErr)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return created, err
	}
	writer := bufio.NewWriter(file)
	if _, err = writer.WriteString(Block(a)); err != nil {
		file.Close()
		return created, err
	}
	if err = writer.Flush(); err != nil {
		file.Close()
		return created, err
	}
	return created, file.Close()
}

// Load reads KEY=value pairs from path into the process environment.
// Variables already set stay untouched, so shell overrides win and the first
// occurrence of a key in the file wins over later duplicate blocks. A missing
// file is not an error.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			continue
		}
		if _, present := os.LookupEnv(key); present {
			continue
		}
		if err := os.Setenv(key, parts[1]); err != nil {
			return err
		}
	}
	return nil
}
