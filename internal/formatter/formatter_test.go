package formatter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dospunk/WUOG-In-Philosophy-Checker/internal/models"
)

func TestChartURL(t *testing.T) {
	got := ChartURL(models.Hot100, "2023-06-10")
	want := "https://www.billboard.com/charts/hot-100/2023-06-10"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}

	got = ChartURL(models.Billboard200, "1998-05-02")
	want = "https://www.billboard.com/charts/billboard-200/1998-05-02"
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestHitSummary(t *testing.T) {
	result := models.FoundResult{Date: "2023-06-10", Listing: "drake & 21 savage", Position: 4}

	got := HitSummary("Drake", models.Hot100, result)
	want := `Drake found in Hot 100 on 2023-06-10 at position 4 in the listing "drake & 21 savage"`
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestExportToCSV(t *testing.T) {
	t.Run("renders headers and one row per hit", func(t *testing.T) {
		hits := []ChartHit{
			NewChartHit(models.Hot100, models.FoundResult{Date: "2023-06-10", Listing: "drake", Position: 4}),
			NewChartHit(models.Billboard200, models.FoundResult{Date: "1998-05-02", Listing: "drake", Position: 1}),
		}

		data, err := ExportToCSV(hits)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		if len(lines) != 3 {
			t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
		}
		if lines[0] != "Chart,Date,Position,Listing,URL" {
			t.Errorf("unexpected header: %s", lines[0])
		}
		if !strings.Contains(lines[1], "Hot 100,2023-06-10,4,drake") {
			t.Errorf("unexpected first row: %s", lines[1])
		}
		if !strings.Contains(lines[2], "https://www.billboard.com/charts/billboard-200/1998-05-02") {
			t.Errorf("expected chart URL in second row: %s", lines[2])
		}
	})

	t.Run("no hits yields headers only", func(t *testing.T) {
		data, err := ExportToCSV(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.TrimSpace(string(data)) != "Chart,Date,Position,Listing,URL" {
			t.Errorf("expected headers only, got %q", string(data))
		}
	})
}

func TestWriteCSVExport(t *testing.T) {
	t.Run("writes to the given path", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.csv")
		hits := []ChartHit{
			NewChartHit(models.Hot100, models.FoundResult{Date: "2023-06-10", Listing: "drake", Position: 4}),
		}

		written, err := WriteCSVExport("drake", hits, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written != path {
			t.Errorf("expected %s, got %s", path, written)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read export: %v", err)
		}
		if !strings.Contains(string(data), "2023-06-10") {
			t.Errorf("export missing hit data: %q", string(data))
		}
	})

	t.Run("defaults the filename to the query", func(t *testing.T) {
		dir := t.TempDir()
		original, err := os.Getwd()
		if err != nil {
			t.Fatalf("failed to get working directory: %v", err)
		}
		if err := os.Chdir(dir); err != nil {
			t.Fatalf("failed to change directory: %v", err)
		}
		defer os.Chdir(original)

		written, err := WriteCSVExport("drake", nil, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if written != "drake_hits.csv" {
			t.Errorf("expected drake_hits.csv, got %s", written)
		}
		if _, err := os.Stat("drake_hits.csv"); err != nil {
			t.Errorf("expected export file to exist: %v", err)
		}
	})
}
