package browser

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

// VersionProbeTimeout bounds a single --version subprocess. Executables that
// don't understand the flag may hang instead of exiting.
const VersionProbeTimeout = 3 * time.Second

// VersionOf invokes the executable at path with --version and returns the
// first line of its output, trimmed. Any failure to spawn, a timeout, a
// non-zero exit, or empty output yields "" — an unknown version is not an
// error, just a browser we can't describe.
func VersionOf(ctx context.Context, path string) string {
	ctx, cancel := context.WithTimeout(ctx, VersionProbeTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return ""
	}

	line, _, _ := strings.Cut(string(out), "\n")
	return strings.TrimSpace(line)
}
