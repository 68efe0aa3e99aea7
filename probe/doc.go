// SPDX-License-Identifier: EPL-2.0

// Package probe reads channel counts straight from audio containers.
//
// The external engine is the authority on channel counts, but when it
// cannot report a parseable number for a file the probe gives that
// file a second chance before it is skipped. Each supported container
// has a small prober that parses just enough of the header to find
// the channel count:
//   - WAV via github.com/go-audio/wav
//   - AIFF via github.com/go-audio/aiff
//   - FLAC via github.com/mewkiz/flac
//   - MP3 via github.com/hajimehoshi/go-mp3
//   - Ogg Vorbis via github.com/jfreymuth/oggvorbis
//
// # Usage
//
// The package-level ChannelCount picks a prober by file extension:
//
//	channels, err := probe.ChannelCount("track.flac")
//
// Probers register in a Registry keyed by extension, so callers can
// assemble their own set:
//
//	reg := probe.NewRegistry()
//	reg.Register("wav", probe.WAV{})
//	prober, ok := reg.Get("wav")
//
// No prober decodes sample data; only headers are read.
package probe
