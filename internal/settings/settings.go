package settings

import (
	"fmt"
	"os"
)

// FileName is the settings document rice-cli maintains in the project
// directory. The SDK picks it up by this exact name.
const FileName = "rice.config.js"

// Render produces the settings document for the given enablement flags.
// The shape is fixed; only the two booleans vary between runs.
func Render(storageEnabled, stateEnabled bool) string {
	return fmt.Sprintf(`/** @type {import('rice-node-sdk').RiceConfig} */
module.exports = {
  storage: {
    enabled: %t,
  },
  state: {
    enabled: %t,
  },
};`, storageEnabled, stateEnabled)
}

// Exists reports whether a settings document is already present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Write persists the document, replacing any previous content. Whether an
// existing file may be replaced is decided by the caller before calling.
func Write(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
