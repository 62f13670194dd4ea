// ABOUTME: Entry point for the studytime CLI
// ABOUTME: Command-line client for the study time prediction API

package main

import (
	"fmt"
	"os"

	"github.com/studyplanner/study-time-api/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
