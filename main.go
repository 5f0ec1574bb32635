package main

import (
	cmd "github.com/ricelabs/rice-cli/cmd/root"
)

func main() {
	cmd.Execute()
}
