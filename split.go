// SPDX-License-Identifier: EPL-2.0

package channelsplitter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chmaha/channel-splitter/backend"
	"github.com/chmaha/channel-splitter/plan"
)

// ConfirmFunc decides whether pre-existing output files may be
// overwritten. It receives the paths that already exist and returns
// true to proceed.
type ConfirmFunc func(existing []string) bool

// Splitter drives the per-file flow: query the channel count,
// partition it by the grouping pattern, then ask the backend to
// extract each group into its own file.
type Splitter struct {
	// Backend performs channel queries and extraction.
	Backend backend.Backend

	// Probe is an optional native channel-count fallback, consulted
	// when the backend cannot report a parseable count for a file.
	Probe func(path string) (int, error)

	// Confirm decides overwrites when output files already exist.
	// Nil declines, which keeps unattended runs free of surprises.
	Confirm ConfirmFunc

	// Logf receives user-facing progress and warning lines, one call
	// per line without a trailing newline. Nil writes to stdout.
	Logf func(format string, args ...any)
}

// SplitFile processes a single input file end to end. Recoverable
// per-file conditions (missing file, unreadable channel count,
// pattern validation failure, declined overwrite) come back as errors
// so a batch caller can report them and move on. A failed group
// extraction is reported through Logf and does not stop the remaining
// groups, nor does it undo groups already written.
func (s *Splitter) SplitFile(ctx context.Context, path string, pattern plan.Pattern) error {
	if fi, err := os.Stat(path); err != nil || fi.IsDir() {
		return fmt.Errorf("%w: %q", ErrInputNotFound, path)
	}

	channels, err := s.channelCount(ctx, path)
	if err != nil {
		return err
	}
	s.logln("Total channels in %q: %d", path, channels)

	groups, err := pattern.Partition(channels)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	// Pre-flight across the whole plan: detect every clash before the
	// first write so a decline leaves the directory untouched.
	outputs := plan.OutputPaths(path, groups)
	if existing := existingFiles(outputs); len(existing) > 0 {
		if s.Confirm == nil || !s.Confirm(existing) {
			return fmt.Errorf("%w: %s", ErrOverwriteDeclined, path)
		}
	}

	for i, g := range groups {
		if err := s.Backend.Extract(ctx, path, outputs[i], g.Channels()); err != nil {
			s.logln("Error writing %s: %v", outputs[i], err)
			continue
		}
		s.logln("Saved %s", outputs[i])
	}

	return nil
}

// SplitBatch processes each input file in turn. A failing file is
// reported and skipped; it never stops the rest of the batch.
func (s *Splitter) SplitBatch(ctx context.Context, paths []string, pattern plan.Pattern) {
	for _, path := range paths {
		if err := s.SplitFile(ctx, path, pattern); err != nil {
			s.logln("Error: %v", err)
		}
	}
}

func (s *Splitter) channelCount(ctx context.Context, path string) (int, error) {
	channels, err := s.Backend.ChannelCount(ctx, path)
	if err == nil {
		return channels, nil
	}

	if s.Probe != nil {
		if channels, perr := s.Probe(path); perr == nil {
			return channels, nil
		}
	}

	return 0, fmt.Errorf("%w in %q: %v", ErrChannelCount, path, err)
}

func (s *Splitter) logln(format string, args ...any) {
	if s.Logf != nil {
		s.Logf(format, args...)
		return
	}
	fmt.Printf(format+"\n", args...)
}

// existingFiles returns the subset of paths that already exist.
func existingFiles(paths []string) []string {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	return existing
}

// TerminalConfirm prompts on out and reads a y/n answer from in. This
// is the interactive default for direct command-line use; unattended
// callers substitute AutoConfirm or their own policy.
func TerminalConfirm(in io.Reader, out io.Writer) ConfirmFunc {
	reader := bufio.NewReader(in)
	return func(existing []string) bool {
		fmt.Fprintln(out, "Warning: the following output files already exist:")
		for _, f := range existing {
			fmt.Fprintf(out, "  %s\n", f)
		}
		fmt.Fprint(out, "Do you want to continue and overwrite these files? (y/n): ")

		answer, err := reader.ReadString('\n')
		if err != nil && answer == "" {
			return false
		}
		return strings.EqualFold(strings.TrimSpace(answer), "y")
	}
}

// AutoConfirm answers every overwrite prompt the same way.
func AutoConfirm(answer bool) ConfirmFunc {
	return func([]string) bool { return answer }
}
