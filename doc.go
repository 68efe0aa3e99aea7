// SPDX-License-Identifier: EPL-2.0

// Package channelsplitter splits multi-channel audio files into
// multiple output files according to a digit grouping pattern.
//
// Each digit of the pattern is the channel count of one successive
// output file; once the pattern runs out its last digit repeats, and
// a remainder too small for a full group becomes mono files. The
// pattern "32" turns an 8-channel file into a 3-channel file, a
// stereo pair, a stereo pair, and a mono file.
//
// The heavy lifting is delegated to an external engine (SoX): this
// package queries it for channel counts, computes the group plan and
// output names, and asks it to extract each group. Output files are
// written next to the input with the covered channel range in the
// name, e.g. "track[3-4].wav" for channels 3 and 4 of "track.wav".
//
// # Quick Start
//
//	sox, err := backend.Locate()
//	if err != nil {
//	    log.Fatal(err) // SoX missing; err carries install guidance
//	}
//
//	pattern, err := plan.ParsePattern("221")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	splitter := &channelsplitter.Splitter{
//	    Backend: sox,
//	    Probe:   probe.ChannelCount,
//	    Confirm: channelsplitter.TerminalConfirm(os.Stdin, os.Stdout),
//	}
//	splitter.SplitBatch(ctx, []string{"a.wav", "b.flac"}, pattern)
//
// # Packages
//
// The subpackages separate the pure core from the glue:
//   - plan: grouping pattern parsing, the partition algorithm, and
//     output filename derivation
//   - backend: the external engine contract and its SoX implementation
//   - probe: native channel-count fallback for when the engine cannot
//     report a count
//
// # Batch Behavior
//
// Processing is fully sequential and best effort: each input file is
// handled completely before the next, one bad file never aborts the
// batch, and a failed group extraction never rolls back groups
// already written for the same file. Only two conditions are fatal to
// a whole invocation: a missing SoX installation and a malformed
// grouping pattern.
package channelsplitter
