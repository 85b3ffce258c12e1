package browser

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// writeFakeBrowser drops an executable shell script into dir that answers
// --version like a real browser.
func writeFakeBrowser(t *testing.T, dir, name, version string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	script := "#!/bin/sh\necho '" + version + "'\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake browser: %v", err)
	}
	return path
}

func TestProbeKnownBrowserFindsPathHit(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses shell scripts and PATH semantics")
	}

	dir := t.TempDir()
	path := writeFakeBrowser(t, dir, "firefox", "Mozilla Firefox 131.0")
	t.Setenv("PATH", dir)

	found := probeKnownBrowser(context.Background(), knownBrowser{"Mozilla Firefox", "firefox"})

	if len(found) != 1 {
		t.Fatalf("Expected 1 hit, got %d", len(found))
	}
	if found[0].Name != "Mozilla Firefox" {
		t.Errorf("Expected logical name, got %q", found[0].Name)
	}
	if found[0].Path != path {
		t.Errorf("Expected path %q, got %q", path, found[0].Path)
	}
	if found[0].Version != "Mozilla Firefox 131.0" {
		t.Errorf("Expected probed version, got %q", found[0].Version)
	}
}

func TestProbeKnownBrowserAbsent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses PATH semantics")
	}

	t.Setenv("PATH", t.TempDir())

	found := probeKnownBrowser(context.Background(), knownBrowser{"Opera", "opera"})
	for _, b := range found {
		// Fixed install locations may legitimately exist on a developer
		// machine; a PATH hit inside the empty temp dir may not.
		if filepath.Dir(b.Path) == os.Getenv("PATH") {
			t.Errorf("Unexpected hit in empty PATH dir: %+v", b)
		}
	}
}

func TestPathProbeOrderIsTableOrder(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test uses shell scripts and PATH semantics")
	}

	dir := t.TempDir()
	writeFakeBrowser(t, dir, "chromium", "Chromium 119")
	writeFakeBrowser(t, dir, "firefox", "Mozilla Firefox 131.0")
	t.Setenv("PATH", dir)

	found := PathProbe{}.Probe(context.Background())

	var fromDir []string
	for _, b := range found {
		if filepath.Dir(b.Path) == dir {
			fromDir = append(fromDir, b.Name)
		}
	}
	if len(fromDir) != 2 {
		t.Fatalf("Expected 2 hits from temp PATH, got %v", fromDir)
	}
	// Firefox precedes Chromium in the known-browser table.
	if fromDir[0] != "Mozilla Firefox" || fromDir[1] != "Chromium" {
		t.Errorf("Expected table order [Mozilla Firefox Chromium], got %v", fromDir)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f")
	if fileExists(path) {
		t.Error("Expected missing file to not exist")
	}
	if err := os.WriteFile(path, []byte{}, 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}
	if !fileExists(path) {
		t.Error("Expected file to exist")
	}
	if fileExists(dir) {
		t.Error("Expected directory to not count as a file")
	}
}
