// SPDX-License-Identifier: EPL-2.0

// Package plan computes how a multi-channel audio file is split into
// output files.
//
// The split is described by a grouping pattern: a sequence of digits
// where each digit is the channel count of one successive output file.
// For example the pattern "32" turns a 7-channel file into one
// 3-channel file followed by two stereo files. Once the pattern is
// exhausted its last digit repeats, and when the remaining channels no
// longer fill a whole group the plan falls back to mono files.
//
// # Partitioning
//
// Parse a pattern and partition a channel count:
//
//	pattern, err := plan.ParsePattern("221")
//	if err != nil {
//	    // Handle error
//	}
//	groups, err := pattern.Partition(5)
//	// groups: [1-2] [3-4] [5]
//
// The returned groups always cover channels 1..N exactly, with no
// overlap and no gap. Two patterns are rejected up front: a single
// digit equal to the channel count (splitting would reproduce the
// input unchanged) and a pattern whose digit sum exceeds the channel
// count (it cannot fit).
//
// # Output Names
//
// OutputPath derives the destination file for a group, next to the
// input file:
//
//	plan.OutputPath("track.wav", plan.Group{Start: 3, End: 4})
//	// "track[3-4].wav"
//
// Labels are unique per input because groups are disjoint and
// ascending, so derived paths never collide.
//
// # Error Handling
//
// The package defines sentinel errors for every rejection:
//   - ErrEmptyPattern: the pattern has no digits
//   - ErrNotDigits: the pattern contains non-digit characters
//   - ErrZeroGroup: the pattern contains the digit 0
//   - ErrNoSplit: a single-digit pattern equals the channel count
//   - ErrPatternOverflow: the digit sum exceeds the channel count
//
// All returned errors wrap one of these and can be matched with
// errors.Is.
package plan
