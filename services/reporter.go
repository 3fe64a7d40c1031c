package services

import (
	"fmt"
	"strings"

	"accident-analyzer/models"
)

// PrintAnalysisReport formats and prints the analysis report to terminal
func PrintAnalysisReport(report *models.AnalysisReport) {
	border := strings.Repeat("═", 55)
	thin := strings.Repeat("─", 55)

	fmt.Printf("\n╔%s╗\n", border)
	fmt.Printf("║%s║\n", center("TRAFFIC ACCIDENT ANALYSIS", 55))
	fmt.Printf("╚%s╝\n", border)

	fmt.Printf("\n OVERVIEW\n%s\n", thin)
	fmt.Printf("  Total Accident Records  : %d\n", report.TotalRecords)

	fmt.Printf("\n ACCIDENTS WITH %s MATCHING %q (%d found)\n%s\n",
		strings.ToUpper(report.SearchKey), report.SearchTerm, len(report.SearchResults), thin)
	for _, r := range report.SearchResults {
		fmt.Printf("  - ID %s: %s at %s\n", r.String("id"), truncate(r.String("car"), 30), r.String("date_time"))
	}

	for _, f := range report.Frequencies {
		fmt.Printf("\n MOST FREQUENT %s\n%s\n", strings.ToUpper(f.Key), thin)
		if f.Value == nil {
			fmt.Printf("  (no data)\n")
			continue
		}
		bar := strings.Repeat("▓", f.Count)
		fmt.Printf("  %-25v %3d  %s\n", fmt.Sprintf("%v:", f.Value), f.Count, bar)
	}

	fmt.Printf("\n%s\n\n", border)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return s
	}
	pad := (width - len(runes)) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-len(runes)-pad)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}
