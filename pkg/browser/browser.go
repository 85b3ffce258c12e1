// Package browser discovers web browser executables installed on the local
// machine and picks one to use for launching URLs.
//
// Detection runs a set of probes (executable search path, well-known install
// directories, and the platform's registered-handler list where one exists),
// merges their candidates by canonical path, and hands the result to a
// selection step. Every probe degrades to "found nothing" rather than
// failing; a machine with no browsers is a valid detection outcome.
package browser

import "path/filepath"

// Browser is one discovered browser executable. Identity is the Path;
// Name and Version are descriptive only.
type Browser struct {
	Name    string `json:"name"`
	Path    string `json:"path"`
	Version string `json:"version,omitempty"`
}

// knownBrowser pairs a human-readable browser name with the base name of
// its executable. The table order fixes the emission order of path probing.
type knownBrowser struct {
	name string
	exec string
}

var knownBrowsers = []knownBrowser{
	{"Google Chrome", "chrome"},
	{"Mozilla Firefox", "firefox"},
	{"Brave", "brave"},
	{"Microsoft Edge", "msedge"},
	{"Opera", "opera"},
	{"Chromium", "chromium"},
}

// CanonicalPath resolves symlinks so that two routes to the same executable
// compare equal. Paths that cannot be resolved are returned as given.
func CanonicalPath(path string) string {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// Dedup merges candidate lists in call order, keeping the first occurrence
// of each canonical path and dropping later duplicates regardless of their
// Name or Version.
func Dedup(lists ...[]Browser) []Browser {
	seen := make(map[string]struct{})
	var out []Browser
	for _, list := range lists {
		for _, b := range list {
			key := CanonicalPath(b.Path)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, b)
		}
	}
	return out
}
