package config

import (
	"os"
	"path/filepath"
	"testing"

	"quicktabs/pkg/browser"
)

// setupTestHome points HOME at a temp directory so each test gets an
// isolated config store.
func setupTestHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

// existingBrowserPath creates a file to stand in for a browser executable.
func existingBrowserPath(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fakebrowser")
	if err := os.WriteFile(path, []byte{}, 0755); err != nil {
		t.Fatalf("Failed to write fake browser: %v", err)
	}
	return path
}

func TestLoadMissingConfig(t *testing.T) {
	setupTestHome(t)

	if b := Load(); b != nil {
		t.Errorf("Expected nil for missing config, got %+v", b)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setupTestHome(t)
	path := existingBrowserPath(t)

	saved := browser.Browser{Name: "Mozilla Firefox", Path: path, Version: "131.0"}
	if err := Save(saved); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got := Load()
	if got == nil {
		t.Fatal("Expected saved browser back")
	}
	if *got != saved {
		t.Errorf("Round trip mismatch: saved %+v, loaded %+v", saved, *got)
	}
}

func TestLoadStalePathForcesRedetection(t *testing.T) {
	setupTestHome(t)
	path := existingBrowserPath(t)

	if err := Save(browser.Browser{Name: "Brave", Path: path}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := os.Remove(path); err != nil {
		t.Fatalf("Failed to remove fake browser: %v", err)
	}

	if b := Load(); b != nil {
		t.Errorf("Expected nil for stale browser path, got %+v", b)
	}
}

func TestLoadCorruptConfig(t *testing.T) {
	setupTestHome(t)

	if err := os.MkdirAll(GetConfigDir(), PermDirectory); err != nil {
		t.Fatalf("Failed to create config dir: %v", err)
	}
	if err := os.WriteFile(GetConfigPath(), []byte("{not json"), PermConfigFile); err != nil {
		t.Fatalf("Failed to write corrupt config: %v", err)
	}

	if b := Load(); b != nil {
		t.Errorf("Expected nil for corrupt config, got %+v", b)
	}
}

func TestSaveOverwritesPrevious(t *testing.T) {
	setupTestHome(t)
	first := existingBrowserPath(t)
	second := existingBrowserPath(t)

	if err := Save(browser.Browser{Name: "Google Chrome", Path: first}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if err := Save(browser.Browser{Name: "Chromium", Path: second, Version: "119"}); err != nil {
		t.Fatalf("Second save failed: %v", err)
	}

	got := Load()
	if got == nil {
		t.Fatal("Expected saved browser back")
	}
	if got.Name != "Chromium" || got.Path != second {
		t.Errorf("Expected second save to win, got %+v", got)
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	setupTestHome(t)
	path := existingBrowserPath(t)

	if err := Save(browser.Browser{Name: "Opera", Path: path}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(GetConfigDir())
	if err != nil {
		t.Fatalf("Failed to read config dir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != ConfigFileName {
			t.Errorf("Unexpected leftover file %q in config dir", e.Name())
		}
	}
}
