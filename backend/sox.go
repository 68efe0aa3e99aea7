package backend

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const soxExecutable = "sox"

// Conventional Windows install locations, searched when sox is not in PATH.
var windowsGlobs = []string{
	`C:\Program Files (x86)\sox-*\sox.exe`,
	`C:\Program Files\sox-*\sox.exe`,
}

// Sox invokes the SoX command-line tool for channel queries and
// channel extraction.
type Sox struct {
	path string
}

// Locate probes for a usable SoX installation: PATH first, then the
// conventional Windows install directories. The probe runs once at
// startup; a failed probe is fatal for the whole invocation and the
// returned error carries installation guidance for the platform.
func Locate() (*Sox, error) {
	if path, err := exec.LookPath(soxExecutable); err == nil {
		return &Sox{path: path}, nil
	}

	if runtime.GOOS == "windows" {
		for _, pattern := range windowsGlobs {
			matches, _ := filepath.Glob(pattern)
			for _, match := range matches {
				if _, err := os.Stat(match); err == nil {
					return &Sox{path: match}, nil
				}
			}
		}
	}

	return nil, fmt.Errorf("%w\n%s", ErrSoxNotFound, InstallHint())
}

// InstallHint returns guidance for obtaining SoX on the current platform.
func InstallHint() string {
	switch runtime.GOOS {
	case "linux":
		return "On Linux, install SoX with your package manager. For example:\n" +
			"  - Debian/Ubuntu: sudo apt install sox\n" +
			"  - Red Hat/Fedora/CentOS: sudo dnf install sox\n" +
			"  - Arch: sudo pacman -S sox"
	case "darwin":
		return "On macOS, install SoX with: brew install sox"
	default:
		return "Download and install SoX from: http://sox.sourceforge.net/"
	}
}

// Path returns the resolved sox executable path.
func (s *Sox) Path() string { return s.path }

// ChannelCount runs `sox --i -c <path>` and parses the reported count.
func (s *Sox) ChannelCount(ctx context.Context, path string) (int, error) {
	out, err := exec.CommandContext(ctx, s.path, "--i", "-c", path).Output()
	if err != nil {
		return 0, fmt.Errorf("%w in %s: %v", ErrChannelQuery, path, err)
	}

	count, err := parseChannelCount(string(out))
	if err != nil {
		return 0, fmt.Errorf("%w in %s", err, path)
	}
	return count, nil
}

// parseChannelCount interprets the output of `sox --i -c`: a single
// positive integer, possibly surrounded by whitespace.
func parseChannelCount(out string) (int, error) {
	trimmed := strings.TrimSpace(out)
	count, err := strconv.Atoi(trimmed)
	if err != nil || count < 1 {
		return 0, fmt.Errorf("%w: sox reported %q", ErrChannelQuery, trimmed)
	}
	return count, nil
}

// Extract runs `sox <in> <out> remix <c>...` to write the named
// channels into a new file.
func (s *Sox) Extract(ctx context.Context, inPath, outPath string, channels []int) error {
	cmd := exec.CommandContext(ctx, s.path, remixArgs(inPath, outPath, channels)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("sox remix %s: %v: %s", inPath, err, bytes.TrimSpace(out))
	}
	return nil
}

// remixArgs builds the argument list for a remix invocation.
func remixArgs(inPath, outPath string, channels []int) []string {
	args := make([]string, 0, 3+len(channels))
	args = append(args, inPath, outPath, "remix")
	for _, c := range channels {
		args = append(args, strconv.Itoa(c))
	}
	return args
}
