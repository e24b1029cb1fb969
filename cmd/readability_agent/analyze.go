package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/readability-analyzer/internal/config"
	"github.com/jonathan/readability-analyzer/internal/observability"
	"github.com/jonathan/readability-analyzer/internal/registry"
	"github.com/jonathan/readability-analyzer/internal/rendering"
	"github.com/jonathan/readability-analyzer/internal/schemas"
	"github.com/jonathan/readability-analyzer/internal/types"
)

var (
	analyzeConfigPath  string
	analyzeZonesPath   string
	analyzeReportPath  string
	analyzeDialogue    int
	analyzeMathProblem int
	analyzeNarration   int
	analyzeVerbose     bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a zones file and print the readability summary",
	Long: `Reads an ordered list of tagged zones from a JSON file, estimates the
reading grade of each zone, and prints a per-zone summary table. With
--verbose the annotated text is printed as well; with --report an HTML
report is written.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file")
	analyzeCmd.Flags().StringVarP(&analyzeZonesPath, "zones", "z", "", "Path to zones JSON file (required)")
	analyzeCmd.Flags().StringVar(&analyzeReportPath, "report", "", "Write an HTML report to this path")
	analyzeCmd.Flags().IntVar(&analyzeDialogue, "dialogue", 0, "Target grade for Dialogue zones")
	analyzeCmd.Flags().IntVar(&analyzeMathProblem, "math-problem", 0, "Target grade for Math Problem zones")
	analyzeCmd.Flags().IntVar(&analyzeNarration, "narration", 0, "Target grade for Narration zones")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print annotated zone text")
	_ = analyzeCmd.MarkFlagRequired("zones")
	rootCmd.AddCommand(analyzeCmd)
}

// zonesFile is the on-disk input format, validated against the zones schema
// before decoding.
type zonesFile struct {
	Zones []struct {
		Text     string `json:"text"`
		Category string `json:"category"`
	} `json:"zones"`
	Targets *types.TargetConfig `json:"targets,omitempty"`
}

// loadZonesFile validates and decodes a zones file. File-level targets may
// be partial; zero fields fall back to the caller's defaults.
func loadZonesFile(path string) ([]types.Zone, *types.TargetConfig, error) {
	if err := schemas.ValidateZonesFile(path); err != nil {
		return nil, nil, fmt.Errorf("invalid zones file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read zones file: %w", err)
	}
	var file zonesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, nil, fmt.Errorf("failed to parse zones file: %w", err)
	}

	zones := make([]types.Zone, 0, len(file.Zones))
	for _, z := range file.Zones {
		category, err := types.ParseCategory(z.Category)
		if err != nil {
			return nil, nil, err
		}
		zones = append(zones, types.Zone{Text: z.Text, Category: category})
	}
	return zones, file.Targets, nil
}

// resolveTargets layers target grades: defaults, then config file, then
// zones file, then explicit CLI flags.
func resolveTargets(cmd *cobra.Command, cfg *config.Config, fileTargets *types.TargetConfig) (types.TargetConfig, error) {
	targets := cfg.TargetsOrDefault()
	if fileTargets != nil {
		if fileTargets.Dialogue != 0 {
			targets.Dialogue = fileTargets.Dialogue
		}
		if fileTargets.MathProblem != 0 {
			targets.MathProblem = fileTargets.MathProblem
		}
		if fileTargets.Narration != 0 {
			targets.Narration = fileTargets.Narration
		}
	}
	if cmd.Flags().Changed("dialogue") {
		targets.Dialogue = analyzeDialogue
	}
	if cmd.Flags().Changed("math-problem") {
		targets.MathProblem = analyzeMathProblem
	}
	if cmd.Flags().Changed("narration") {
		targets.Narration = analyzeNarration
	}
	if err := targets.Validate(); err != nil {
		return types.TargetConfig{}, fmt.Errorf("invalid target grades: %w", err)
	}
	return targets, nil
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if analyzeConfigPath != "" {
		loaded, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	if err := cfg.ApplyEnv(); err != nil {
		return err
	}

	zones, fileTargets, err := loadZonesFile(analyzeZonesPath)
	if err != nil {
		return err
	}
	targets, err := resolveTargets(cmd, &cfg, fileTargets)
	if err != nil {
		return err
	}

	reg := registry.New()
	if err := reg.Replace(zones); err != nil {
		return err
	}

	targetMap := targets.Map()
	summaries, err := reg.Summaries(targetMap)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintHeader("Readability Summary")
	printer.PrintSummaryTable(summaries)

	if analyzeVerbose || analyzeReportPath != "" {
		results, err := reg.AnnotateAll(context.Background(), targetMap)
		if err != nil {
			return err
		}

		if analyzeVerbose {
			for i, r := range results {
				printer.PrintZone(i, r)
			}
			printer.PrintLegend()
		}
		if analyzeReportPath != "" {
			report := rendering.Report(results, summaries)
			if err := os.WriteFile(analyzeReportPath, []byte(report), 0o644); err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", analyzeReportPath)
		}
	}
	return nil
}
