package logging

import (
	"log"
)

var verbose bool

func SetVerbose(v bool) {
	verbose = v
}

func GetVerbose() bool {
	return verbose
}

// Print logs the message when verbose output is enabled.
func Print(message string) {
	if verbose {
		log.SetFlags(0)
		log.Print(message)
	}
}

// Fatal logs the error and exits with a non-zero status.
func Fatal(err error) {
	log.SetFlags(0)
	log.Fatal(err)
}
