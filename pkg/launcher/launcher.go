// Package launcher spawns a browser process for one or more URLs,
// optionally in the browser family's private-browsing mode.
package launcher

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"quicktabs/pkg/browser"
)

// Mode selects normal or private browsing.
type Mode int

const (
	ModeNormal Mode = iota
	ModePrivate
)

func (m Mode) String() string {
	if m == ModePrivate {
		return "private"
	}
	return "normal"
}

// privateFlags maps executable-basename substrings to the flag that opens
// a private window for that browser family. Order matters only in that
// more specific names must not be shadowed by broader ones.
var privateFlags = []struct {
	substr string
	flag   string
}{
	{"firefox", "-private-window"},
	{"msedge", "--inprivate"},
	{"brave", "--incognito"},
	{"chromium", "--incognito"},
	{"chrome", "--incognito"},
	{"vivaldi", "--incognito"},
}

// PrivateFlag returns the private-browsing flag for the executable at
// path, matched by substring against the lowercased basename. The second
// result is false for unrecognized browser families.
func PrivateFlag(path string) (string, bool) {
	base := strings.ToLower(filepath.Base(path))
	for _, pf := range privateFlags {
		if strings.Contains(base, pf.substr) {
			return pf.flag, true
		}
	}
	return "", false
}

// Launch opens urls in b with a single spawn. In private mode an unknown
// browser family falls back to a normal launch with a warning; refusing to
// open the URLs at all would help nobody.
func Launch(b browser.Browser, urls []string, mode Mode) error {
	if len(urls) == 0 {
		return nil
	}

	var args []string
	if mode == ModePrivate {
		if flag, ok := PrivateFlag(b.Path); ok {
			args = append(args, flag)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: private mode flag unknown for %s, launching normally\n", filepath.Base(b.Path))
		}
	}
	args = append(args, urls...)

	cmd := exec.Command(b.Path, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to launch %s: %w", b.Path, err)
	}

	// The browser outlives us; don't wait on it, but release the process
	// handle so we don't leak it.
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("failed to release browser process: %w", err)
	}
	return nil
}
