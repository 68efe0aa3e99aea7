// SPDX-License-Identifier: EPL-2.0

// Command channel-splitter splits multi-channel audio files by a
// digit grouping pattern, using SoX for the actual extraction.
//
//	channel-splitter 32 session.wav
//	channel-splitter 221 *.flac
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	channelsplitter "github.com/chmaha/channel-splitter"
	"github.com/chmaha/channel-splitter/backend"
	"github.com/chmaha/channel-splitter/plan"
	"github.com/chmaha/channel-splitter/probe"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: channel-splitter <grouping_pattern> <input_file>...")
		fmt.Fprintln(os.Stderr, "Example: channel-splitter 321 test_20channel.wav")
		return 1
	}

	pattern, err := plan.ParsePattern(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	sox, err := backend.Locate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	splitter := &channelsplitter.Splitter{
		Backend: sox,
		Probe:   probe.ChannelCount,
		Confirm: channelsplitter.TerminalConfirm(os.Stdin, os.Stdout),
	}

	// Best effort: per-file errors are reported inline and the batch
	// keeps going.
	splitter.SplitBatch(ctx, args[1:], pattern)
	return 0
}
