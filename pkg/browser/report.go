package browser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// ReportJSONFile is the JSON detection report written after a fresh run.
	ReportJSONFile = "browsers.json"

	// ReportTextFile is the plain-text companion, one "name = path" line
	// per detected browser.
	ReportTextFile = "browsers.txt"
)

// WriteReport writes the detection report files into dir. The report is a
// convenience for other tooling; callers treat a failure as a warning, not
// an error in detection itself.
func WriteReport(dir string, found []Browser) error {
	if found == nil {
		found = []Browser{}
	}
	data, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal browser list: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ReportJSONFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ReportJSONFile, err)
	}

	var text strings.Builder
	for _, b := range found {
		fmt.Fprintf(&text, "%s = %s\n", b.Name, b.Path)
	}
	if err := os.WriteFile(filepath.Join(dir, ReportTextFile), []byte(text.String()), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", ReportTextFile, err)
	}

	return nil
}
