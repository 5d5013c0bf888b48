// package formatter renders scan results as text, CSV, and chart URLs
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

const chartURLBase = "https://www.billboard.com/charts"

// ChartHit pairs a found result with the chart it came from.
type ChartHit struct {
	Chart  models.Chart       `json:"-"`
	Slug   string             `json:"chart"`
	Result models.FoundResult `json:"result"`
}

// NewChartHit creates a ChartHit for the given chart and result.
func NewChartHit(chart models.Chart, result models.FoundResult) ChartHit {
	return ChartHit{Chart: chart, Slug: chart.Slug(), Result: result}
}

// ChartURL constructs the public web URL for one chart week.
func ChartURL(chart models.Chart, date string) string {
	return fmt.Sprintf("%s/%s/%s", chartURLBase, chart.Slug(), date)
}

// HitSummary renders the human-readable line for one hit, with the query in
// its original casing.
func HitSummary(query string, chart models.Chart, result models.FoundResult) string {
	return fmt.Sprintf("%s found in %s on %s at position %d in the listing %q",
		query, chart.DisplayName(), result.Date, result.Position, result.Listing)
}

// ExportToCSV converts hits to CSV format with columns: Chart, Date, Position, Listing, URL
func ExportToCSV(hits []ChartHit) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Chart", "Date", "Position", "Listing", "URL"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, hit := range hits {
		record := []string{
			hit.Chart.DisplayName(),
			hit.Result.Date,
			strconv.Itoa(hit.Result.Position),
			hit.Result.Listing,
			ChartURL(hit.Chart, hit.Result.Date),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// WriteCSVExport writes a hit history to a CSV file.
//
// Defaults to "<query>_hits.csv" as the filename.
func WriteCSVExport(query string, hits []ChartHit, filepath string) (string, error) {
	if filepath == "" {
		filepath = fmt.Sprintf("%s_hits.csv", query)
	}

	csvData, err := ExportToCSV(hits)
	if err != nil {
		return "", fmt.Errorf("failed to generate CSV: %w", err)
	}

	if err := os.WriteFile(filepath, csvData, 0644); err != nil {
		return "", fmt.Errorf("failed to write CSV file: %w", err)
	}

	return filepath, nil
}
