package browser

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	found := []Browser{
		{Name: "Google Chrome", Path: "/usr/bin/chrome", Version: "120.0"},
		{Name: "Mozilla Firefox", Path: "/usr/bin/firefox"},
	}

	if err := WriteReport(dir, found); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReportJSONFile))
	if err != nil {
		t.Fatalf("Failed to read JSON report: %v", err)
	}
	var decoded []Browser
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON report is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Name != "Google Chrome" {
		t.Errorf("Unexpected JSON report contents: %+v", decoded)
	}

	text, err := os.ReadFile(filepath.Join(dir, ReportTextFile))
	if err != nil {
		t.Fatalf("Failed to read text report: %v", err)
	}
	want := "Google Chrome = /usr/bin/chrome\nMozilla Firefox = /usr/bin/firefox\n"
	if string(text) != want {
		t.Errorf("Expected text report %q, got %q", want, string(text))
	}
}

func TestWriteReportEmptyList(t *testing.T) {
	dir := t.TempDir()

	if err := WriteReport(dir, nil); err != nil {
		t.Fatalf("WriteReport failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, ReportJSONFile))
	if err != nil {
		t.Fatalf("Failed to read JSON report: %v", err)
	}
	var decoded []Browser
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("JSON report is not valid JSON: %v", err)
	}
	if decoded == nil || len(decoded) != 0 {
		t.Errorf("Expected an empty JSON array, got %q", string(data))
	}
}
