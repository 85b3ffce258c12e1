//go:build windows

package browser

import (
	"context"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"
)

// startMenuInternetKey lists applications registered as web browsers.
const startMenuInternetKey = `SOFTWARE\Clients\StartMenuInternet`

func newSystemProbe() Probe {
	return registryProbe{}
}

// registryProbe reads the Windows registry's registered-browser list. It
// recovers browsers a plain path probe can't see, such as per-user installs
// outside the fixed directory table.
type registryProbe struct{}

func (registryProbe) Probe(ctx context.Context) []Browser {
	var found []Browser
	for _, hive := range []registry.Key{registry.LOCAL_MACHINE, registry.CURRENT_USER} {
		found = append(found, probeHive(ctx, hive)...)
	}
	return found
}

func probeHive(ctx context.Context, hive registry.Key) []Browser {
	key, err := registry.OpenKey(hive, startMenuInternetKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer key.Close()

	names, err := key.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}

	var found []Browser
	for _, entry := range names {
		cmdKey, err := registry.OpenKey(hive, startMenuInternetKey+`\`+entry+`\shell\open\command`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		command, _, err := cmdKey.GetStringValue("")
		cmdKey.Close()
		if err != nil {
			continue
		}

		path := commandPath(command)
		if path == "" || !fileExists(path) {
			continue
		}

		name := entry
		if stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)); stem != "" {
			name = stem
		}

		found = append(found, Browser{
			Name:    name,
			Path:    path,
			Version: VersionOf(ctx, path),
		})
	}
	return found
}
