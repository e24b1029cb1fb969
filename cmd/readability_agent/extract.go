package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/readability-analyzer/internal/extraction"
)

var (
	extractOutputPath string
	extractUseBrowser bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [source]",
	Short: "Extract plain text from a PDF, HTML file or URL",
	Long: `Extracts readable text from the given source and prints it to stdout
(or writes it to --output). The source may be a local PDF, HTML or text
file, or an http(s) URL. Pages of a PDF are joined with a page break
marker.`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractOutputPath, "output", "o", "", "Write extracted text to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractUseBrowser, "use-browser", false, "Use headless browser for SPA sites (requires Chrome)")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, args []string) error {
	source := args[0]

	var (
		text string
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		opts := extraction.DefaultOptions()
		opts.UseBrowser = extractUseBrowser
		text, err = extraction.FromURL(context.Background(), source, opts)
	} else {
		text, err = extraction.FromFile(source)
	}
	if err != nil {
		return err
	}

	if extractOutputPath != "" {
		if err := os.WriteFile(extractOutputPath, []byte(text), 0o644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Extracted text written to %s\n", extractOutputPath)
		return nil
	}
	fmt.Println(text)
	return nil
}
