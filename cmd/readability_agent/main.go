// Package main provides the entry point for the readability analyzer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "readability_agent",
	Short: "Readability annotation engine",
	Long:  "Readability analyzer estimates per-sentence reading grades for tagged text zones, flags heavy words and above-target sentences, and serves the analysis over a REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
