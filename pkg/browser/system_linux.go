//go:build linux

package browser

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

func newSystemProbe() Probe {
	return desktopProbe{}
}

// desktopProbe resolves the desktop environment's default web browser via
// xdg-settings and the matching freedesktop .desktop entry. It surfaces at
// most one browser, typically one the known-name table already found, but
// it also catches browsers installed under unexpected names.
type desktopProbe struct{}

func (desktopProbe) Probe(ctx context.Context) []Browser {
	out, err := exec.CommandContext(ctx, "xdg-settings", "get", "default-web-browser").Output()
	if err != nil {
		return nil
	}
	desktopID := strings.TrimSpace(string(out))
	if desktopID == "" {
		return nil
	}

	name, execName := desktopEntry(desktopID)
	if execName == "" {
		// Fall back to the desktop ID stem, e.g. "firefox.desktop" -> "firefox".
		execName, _, _ = strings.Cut(desktopID, ".")
	}
	if execName == "" {
		return nil
	}

	path, ok := lookPath(execName)
	if !ok {
		return nil
	}
	if name == "" {
		name = filepath.Base(path)
	}

	return []Browser{{
		Name:    name,
		Path:    path,
		Version: VersionOf(ctx, path),
	}}
}

// desktopEntry reads Name and the Exec command's executable from the
// .desktop file for the given desktop ID, searching the user's application
// directory before the system one. Missing or unparseable files yield
// empty results, never errors.
func desktopEntry(desktopID string) (name, execName string) {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local", "share", "applications"))
	}
	dirs = append(dirs, "/usr/share/applications", "/usr/local/share/applications")

	for _, dir := range dirs {
		file, err := ini.Load(filepath.Join(dir, desktopID))
		if err != nil {
			continue
		}
		section := file.Section("Desktop Entry")
		name = section.Key("Name").String()
		execName = commandPath(section.Key("Exec").String())
		return name, execName
	}
	return "", ""
}
