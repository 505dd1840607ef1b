// Package main provides the resume-ai command line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume-ai",
	Short: "Resume ranking and suggestions from the command line",
	Long:  "resume-ai extracts text from PDF resumes and runs the ranking and suggestion flows without the HTTP server.",

	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
