// Package store holds the tagged-link and alias collections that quicktabs
// launches. Both are small per-user JSON files; a missing file is an empty
// store, not an error.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"quicktabs/pkg/config"
)

// Link is one saved tag/URL pair.
type Link struct {
	Tag string `json:"tag"`
	URL string `json:"url"`
}

// LinkStore is an ordered collection of links, unique by tag.
type LinkStore struct {
	Links []Link `json:"links"`

	path string
}

// GetLinksPath returns the path of the links file.
func GetLinksPath() string {
	return filepath.Join(config.GetConfigDir(), config.LinksFileName)
}

// LoadLinks reads the link store at path. A missing file yields an empty
// store with no error; an unreadable or unparseable file yields an empty
// store plus the error so callers can warn and carry on.
func LoadLinks(path string) (*LinkStore, error) {
	s := &LinkStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read links file: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return &LinkStore{path: path}, fmt.Errorf("failed to parse links file: %w", err)
	}
	return s, nil
}

// Save writes the store back to the file it was loaded from.
func (s *LinkStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal links: %w", err)
	}

	if err := os.WriteFile(s.path, data, config.PermConfigFile); err != nil {
		return fmt.Errorf("failed to write links file: %w", err)
	}
	return nil
}

// Add saves a link, replacing any existing link with the same tag.
// It reports whether an existing link was replaced.
func (s *LinkStore) Add(tag, url string) bool {
	replaced := s.Remove(tag)
	s.Links = append(s.Links, Link{Tag: tag, URL: url})
	return replaced
}

// GetURL looks up the URL for a tag.
func (s *LinkStore) GetURL(tag string) (string, bool) {
	for _, l := range s.Links {
		if l.Tag == tag {
			return l.URL, true
		}
	}
	return "", false
}

// Remove deletes the link with the given tag, reporting whether it existed.
func (s *LinkStore) Remove(tag string) bool {
	for i, l := range s.Links {
		if l.Tag == tag {
			s.Links = append(s.Links[:i], s.Links[i+1:]...)
			return true
		}
	}
	return false
}

// URLs returns every saved URL in store order.
func (s *LinkStore) URLs() []string {
	urls := make([]string, 0, len(s.Links))
	for _, l := range s.Links {
		urls = append(urls, l.URL)
	}
	return urls
}
