package browser

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// lookPath searches the executable search path for an exact filename match.
func lookPath(execName string) (string, bool) {
	path, err := exec.LookPath(execName)
	if err != nil {
		return "", false
	}
	return path, true
}

// executableName appends the platform executable suffix to a base name.
func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

// installCandidates returns the fixed set of well-known install locations
// to probe for an executable name. Directories that don't exist are simply
// paths that won't stat; there is no need to filter here.
func installCandidates(execName string) []string {
	switch runtime.GOOS {
	case "windows":
		pf := os.Getenv("ProgramFiles")
		pfx86 := os.Getenv("ProgramFiles(x86)")
		local := os.Getenv("LOCALAPPDATA")
		return []string{
			filepath.Join(pf, "Google", "Chrome", "Application", execName),
			filepath.Join(pfx86, "Google", "Chrome", "Application", execName),
			filepath.Join(pf, "Mozilla Firefox", execName),
			filepath.Join(pfx86, "Microsoft", "Edge", "Application", execName),
			filepath.Join(pf, "BraveSoftware", "Brave-Browser", "Application", execName),
			filepath.Join(local, "Programs", execName),
		}

	case "darwin":
		base := strings.TrimSuffix(execName, ".exe")
		candidates := []string{
			fmt.Sprintf("/Applications/%s.app/Contents/MacOS/%s", base, base),
		}
		if base == "chrome" {
			candidates = append(candidates, "/Applications/Google Chrome.app/Contents/MacOS/Google Chrome")
		}
		return candidates

	default: // linux and other unix-likes
		return []string{
			filepath.Join("/usr/bin", execName),
			filepath.Join("/usr/local/bin", execName),
			filepath.Join("/snap/bin", execName),
			filepath.Join("/opt", execName, execName),
		}
	}
}

// commandPath extracts the bare executable from a handler command line
// (a registry "open" command or a desktop-entry Exec value), stripping
// surrounding quotes and trailing arguments or field codes. Quoted paths
// may contain spaces.
func commandPath(command string) string {
	command = strings.TrimSpace(command)
	if command == "" {
		return ""
	}
	if command[0] == '"' {
		if end := strings.Index(command[1:], `"`); end >= 0 {
			return command[1 : end+1]
		}
		return strings.Trim(command, `"`)
	}
	path, _, _ := strings.Cut(command, " ")
	return path
}

// fileExists reports whether path names an existing regular file (or a
// symlink to one). Inaccessible paths count as absent.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
