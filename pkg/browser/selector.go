package browser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ManualEntryName labels browsers added by hand rather than by a probe.
const ManualEntryName = "Custom Browser"

// Selector turns a candidate list into a single chosen browser. Input and
// output are injected so the interactive flow can be driven by scripted
// input in tests. Selection runs strictly after detection has finished;
// nothing here interleaves with probe output.
type Selector struct {
	in  *bufio.Reader
	out io.Writer
}

func NewSelector(in io.Reader, out io.Writer) *Selector {
	return &Selector{in: bufio.NewReader(in), out: out}
}

// Select applies the count-based selection policy: no candidates prompts
// for a manual path, a single candidate is taken without prompting, and
// two or more offer a numbered choice with manual entry as the escape
// hatch. A nil result means no browser was selected; the caller decides
// whether that is fatal.
func (s *Selector) Select(ctx context.Context, candidates []Browser) *Browser {
	switch len(candidates) {
	case 0:
		fmt.Fprintln(s.out, "No browsers detected. Please enter one manually.")
		return s.ManualEntry(ctx)
	case 1:
		b := candidates[0]
		fmt.Fprintf(s.out, "Auto-selected: %s\n", b.Name)
		return &b
	default:
		return s.choose(ctx, candidates)
	}
}

func (s *Selector) choose(ctx context.Context, candidates []Browser) *Browser {
	fmt.Fprintln(s.out, "\nSelect a browser:")
	for i, b := range candidates {
		version := b.Version
		if version == "" {
			version = "unknown"
		}
		fmt.Fprintf(s.out, "  [%d] %s (version: %s, path: %s)\n", i+1, b.Name, version, b.Path)
	}
	fmt.Fprintln(s.out, "  [M] Manual entry")
	fmt.Fprintf(s.out, "Enter choice [1-%d or M]: ", len(candidates))

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return nil
	}
	choice := strings.TrimSpace(line)

	if strings.EqualFold(choice, "m") {
		return s.ManualEntry(ctx)
	}

	if index, err := strconv.Atoi(choice); err == nil && index >= 1 && index <= len(candidates) {
		b := candidates[index-1]
		fmt.Fprintf(s.out, "Selected: %s\n", b.Name)
		return &b
	}

	fmt.Fprintf(s.out, "Invalid choice %q, falling back to manual entry.\n", choice)
	return s.ManualEntry(ctx)
}

// ManualEntry prompts for a full executable path. A path that does not
// exist ends the selection with no browser; the run is not retried.
func (s *Selector) ManualEntry(ctx context.Context) *Browser {
	fmt.Fprint(s.out, "Enter full path to browser executable: ")

	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(s.out, "Read error, no browser selected.")
		return nil
	}
	path := strings.TrimSpace(line)

	if path == "" || !fileExists(path) {
		fmt.Fprintf(s.out, "Invalid path %q: file does not exist.\n", path)
		return nil
	}

	fmt.Fprintf(s.out, "Browser added: %s\n", path)
	return &Browser{
		Name:    ManualEntryName,
		Path:    path,
		Version: VersionOf(ctx, path),
	}
}
