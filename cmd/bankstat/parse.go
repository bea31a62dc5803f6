package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finfold/bankstat/internal/config"
	"github.com/finfold/bankstat/internal/engine"
	"github.com/finfold/bankstat/internal/model"
)

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse statement exports into canonical transactions",
		Long: `Parse bank statement exports and print the extracted transactions as JSON.

Examples:
  # Parse a single statement
  bankstat parse ~/Downloads/chase_jan_2024.csv

  # Parse several exports at once
  bankstat parse ~/Downloads/*.xlsx

  # Human-readable summary instead of JSON
  bankstat parse --summary ~/Downloads/statement.csv`,
		Args: cobra.MinimumNArgs(1),
		RunE: runParse,
	}

	cmd.Flags().BoolP("summary", "s", false, "Print a summary instead of JSON")
	cmd.Flags().Bool("pretty", false, "Indent the JSON output")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	summary, _ := cmd.Flags().GetBool("summary")
	pretty, _ := cmd.Flags().GetBool("pretty")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		pattern = config.ExpandPath(pattern)
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to parse")
	}

	eng := engine.New()
	failed := 0

	for _, filePath := range allFiles {
		data, err := os.ReadFile(filePath)
		if err != nil {
			slog.Error("Failed to read file", "file", filePath, "error", err)
			failed++
			continue
		}

		result, err := eng.ParseFile(data, filepath.Base(filePath))
		if err != nil {
			slog.Error("Failed to parse statement", "file", filePath, "error", err)
			failed++
			continue
		}

		if summary {
			printSummary(filepath.Base(filePath), result)
			continue
		}

		enc := json.NewEncoder(os.Stdout)
		if pretty {
			enc.SetIndent("", "  ")
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	}

	if failed == len(allFiles) {
		return fmt.Errorf("all %d file(s) failed to parse", failed)
	}
	return nil
}

func printSummary(name string, result *model.ParseResult) {
	fmt.Printf("\n📄 %s\n", name)
	fmt.Printf("  Bank: %s", result.DetectedBank)
	if result.AccountNumber != "" {
		fmt.Printf(" (%s)", result.AccountNumber)
	}
	fmt.Println()
	fmt.Printf("  Period: %s to %s\n", result.PeriodStart, result.PeriodEnd)
	fmt.Printf("  Transactions: %d\n", len(result.Transactions))
	fmt.Printf("  Credits: %s  Debits: %s\n",
		result.TotalCredits.StringFixed(2),
		result.TotalDebits.StringFixed(2))
}
