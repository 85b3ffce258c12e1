package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLinksMissingFile(t *testing.T) {
	links, err := LoadLinks(filepath.Join(t.TempDir(), "links.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got: %v", err)
	}
	if len(links.Links) != 0 {
		t.Errorf("Expected empty store, got %d links", len(links.Links))
	}
}

func TestLoadLinksCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	links, err := LoadLinks(path)
	if err == nil {
		t.Error("Expected an error for a corrupt file")
	}
	if links == nil || len(links.Links) != 0 {
		t.Errorf("Expected a usable empty store, got %+v", links)
	}
}

func TestLinksRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "links.json")

	links, err := LoadLinks(path)
	if err != nil {
		t.Fatalf("LoadLinks failed: %v", err)
	}
	links.Add("docs", "https://example.com/docs")
	links.Add("mail", "https://example.com/mail")
	if err := links.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	reloaded, err := LoadLinks(path)
	if err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	if len(reloaded.Links) != 2 {
		t.Fatalf("Expected 2 links, got %d", len(reloaded.Links))
	}
	if url, ok := reloaded.GetURL("docs"); !ok || url != "https://example.com/docs" {
		t.Errorf("Expected docs link back, got %q (ok=%v)", url, ok)
	}
}

func TestAddReplacesExistingTag(t *testing.T) {
	links := &LinkStore{}

	if replaced := links.Add("docs", "https://old.example.com"); replaced {
		t.Error("First add must not report a replacement")
	}
	if replaced := links.Add("docs", "https://new.example.com"); !replaced {
		t.Error("Second add with same tag must report a replacement")
	}

	if len(links.Links) != 1 {
		t.Fatalf("Expected 1 link after replacement, got %d", len(links.Links))
	}
	if url, _ := links.GetURL("docs"); url != "https://new.example.com" {
		t.Errorf("Expected replacement URL, got %q", url)
	}
}

func TestRemoveLink(t *testing.T) {
	links := &LinkStore{}
	links.Add("docs", "https://example.com/docs")

	if !links.Remove("docs") {
		t.Error("Expected removal of existing tag to succeed")
	}
	if links.Remove("docs") {
		t.Error("Expected removal of absent tag to report not found")
	}
	if _, ok := links.GetURL("docs"); ok {
		t.Error("Expected tag to be gone")
	}
}

func TestURLsPreservesOrder(t *testing.T) {
	links := &LinkStore{}
	links.Add("b", "https://b.example.com")
	links.Add("a", "https://a.example.com")

	urls := links.URLs()
	if len(urls) != 2 || urls[0] != "https://b.example.com" || urls[1] != "https://a.example.com" {
		t.Errorf("Expected insertion order, got %v", urls)
	}
}
