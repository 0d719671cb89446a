// Command thesis-report checks a single thesis PDF on disk and prints the
// compliance report, either formatted for a terminal or as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tezlab/tezcheck/internal/analysis"
	"github.com/tezlab/tezcheck/internal/config"
	"github.com/tezlab/tezcheck/internal/pdf"
)

func main() {
	var (
		filePath    = pflag.StringP("file", "f", "", "Path to the thesis PDF file (required)")
		asJSON      = pflag.Bool("json", false, "Print the raw report as JSON")
		maxFileSize = pflag.Int64("maxfilesize", config.DefaultMaxFileSize, "Maximum PDF file size in bytes")
	)
	pflag.Parse()

	if *filePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: thesis-report --file=/path/to/thesis.pdf [--json]")
		pflag.PrintDefaults()
		os.Exit(2)
	}

	service := pdf.NewService(*maxFileSize)
	result, err := service.CheckFile(pdf.CheckFileRequest{Path: *filePath})
	if err != nil {
		fmt.Fprintf(os.Stderr, "thesis-report: %v\n", err)
		os.Exit(1)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Report); err != nil {
			fmt.Fprintf(os.Stderr, "thesis-report: encode report: %v\n", err)
			os.Exit(1)
		}
		return
	}

	printReport(result)
}

func printReport(result *pdf.CheckResult) {
	fmt.Printf("%s — %d sayfa, %d bayt\n", result.FileName, result.PageCount, result.SizeBytes)
	fmt.Printf("Genel puan: %.1f%%\n", result.Report.OverallScore)
	fmt.Printf("%s\n", result.Report.Summary)

	category := ""
	for _, item := range result.Report.Items {
		if item.Category != category {
			category = item.Category
			fmt.Printf("\n%s\n", category)
		}
		fmt.Printf("  %s %s\n", statusMark(item.Status), item.Title)
		fmt.Printf("      %s\n", item.Details)
	}
}

func statusMark(status analysis.RuleStatus) string {
	switch status {
	case analysis.StatusPassed:
		return "✓"
	case analysis.StatusFailed:
		return "✗"
	case analysis.StatusWarning:
		return "!"
	case analysis.StatusInfo:
		return "i"
	default:
		return "?"
	}
}
