package browser

import (
	"context"
	"sync"
)

// A Probe is one source of browser candidates. Probes never fail: a source
// that is unavailable or empty returns no candidates.
type Probe interface {
	Probe(ctx context.Context) []Browser
}

// maxProbeWorkers bounds concurrent probing. Each known browser costs a
// handful of stats plus up to a few --version subprocesses.
const maxProbeWorkers = 4

// Detect runs every probe and returns the deduplicated candidate list.
// Path-based candidates come first, in known-browser table order, followed
// by anything the platform's registered-handler probe adds.
func Detect(ctx context.Context) []Browser {
	return Dedup(PathProbe{}.Probe(ctx), newSystemProbe().Probe(ctx))
}

// PathProbe finds known browsers on the executable search path and in the
// per-platform install directories.
type PathProbe struct{}

func (PathProbe) Probe(ctx context.Context) []Browser {
	// Fan out one worker per known browser; results are collected by table
	// index so the output order stays deterministic.
	results := make([][]Browser, len(knownBrowsers))
	sem := make(chan struct{}, maxProbeWorkers)
	var wg sync.WaitGroup

	for i, kb := range knownBrowsers {
		wg.Add(1)
		go func(i int, kb knownBrowser) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = probeKnownBrowser(ctx, kb)
		}(i, kb)
	}
	wg.Wait()

	var found []Browser
	for _, r := range results {
		found = append(found, r...)
	}
	return found
}

// probeKnownBrowser locates one logical browser: an exact match on the
// search path first, then the fixed install locations. A location already
// hit via the search path is not reported twice.
func probeKnownBrowser(ctx context.Context, kb knownBrowser) []Browser {
	execName := executableName(kb.exec)

	var found []Browser
	seen := make(map[string]struct{})

	if path, ok := lookPath(execName); ok {
		seen[CanonicalPath(path)] = struct{}{}
		found = append(found, Browser{
			Name:    kb.name,
			Path:    path,
			Version: VersionOf(ctx, path),
		})
	}

	for _, candidate := range installCandidates(execName) {
		if !fileExists(candidate) {
			continue
		}
		key := CanonicalPath(candidate)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		found = append(found, Browser{
			Name:    kb.name,
			Path:    candidate,
			Version: VersionOf(ctx, candidate),
		})
	}

	return found
}
