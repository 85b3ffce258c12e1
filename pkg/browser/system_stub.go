//go:build !windows && !linux

package browser

import "context"

func newSystemProbe() Probe {
	return noopProbe{}
}

// noopProbe stands in on platforms without a system-maintained browser
// list. macOS default-handler lookup needs Launch Services, which has no
// stable command-line surface; the fixed /Applications paths cover it.
type noopProbe struct{}

func (noopProbe) Probe(ctx context.Context) []Browser {
	return nil
}
