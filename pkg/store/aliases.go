package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"quicktabs/pkg/config"
)

// AliasStore maps alias shortcuts to URLs.
type AliasStore struct {
	Aliases map[string]string `json:"aliases"`

	path string
}

// GetAliasesPath returns the path of the aliases file.
func GetAliasesPath() string {
	return filepath.Join(config.GetConfigDir(), config.AliasesFileName)
}

// LoadAliases reads the alias store at path, with the same degradation
// rules as LoadLinks.
func LoadAliases(path string) (*AliasStore, error) {
	s := &AliasStore{Aliases: make(map[string]string), path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read aliases file: %w", err)
	}

	if err := json.Unmarshal(data, s); err != nil {
		return &AliasStore{Aliases: make(map[string]string), path: path}, fmt.Errorf("failed to parse aliases file: %w", err)
	}
	if s.Aliases == nil {
		s.Aliases = make(map[string]string)
	}
	return s, nil
}

// Save writes the store back to the file it was loaded from.
func (s *AliasStore) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), config.PermDirectory); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal aliases: %w", err)
	}

	if err := os.WriteFile(s.path, data, config.PermConfigFile); err != nil {
		return fmt.Errorf("failed to write aliases file: %w", err)
	}
	return nil
}

// Add saves an alias, overwriting any existing value for the tag.
func (s *AliasStore) Add(tag, url string) {
	s.Aliases[tag] = url
}

// Resolve looks up the URL for an alias.
func (s *AliasStore) Resolve(tag string) (string, bool) {
	url, ok := s.Aliases[tag]
	return url, ok
}

// Remove deletes an alias, reporting whether it existed.
func (s *AliasStore) Remove(tag string) bool {
	if _, ok := s.Aliases[tag]; !ok {
		return false
	}
	delete(s.Aliases, tag)
	return true
}

// Tags returns the alias tags in sorted order for stable listings.
func (s *AliasStore) Tags() []string {
	tags := make([]string, 0, len(s.Aliases))
	for tag := range s.Aliases {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// URLs returns every alias URL, ordered by tag.
func (s *AliasStore) URLs() []string {
	tags := s.Tags()
	urls := make([]string, 0, len(tags))
	for _, tag := range tags {
		urls = append(urls, s.Aliases[tag])
	}
	return urls
}
