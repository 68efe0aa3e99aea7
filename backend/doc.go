// SPDX-License-Identifier: EPL-2.0

// Package backend abstracts the external audio engine that performs
// the actual channel extraction.
//
// The splitter itself never decodes or encodes audio. It needs exactly
// two capabilities from an engine: report how many channels a file
// has, and write a new file holding a named subset of those channels.
// The Backend interface captures both, and Sox implements them over
// the SoX command-line tool.
//
// # Locating SoX
//
// Locate probes once at startup and returns a handle or a fatal
// error carrying per-platform installation guidance:
//
//	sox, err := backend.Locate()
//	if err != nil {
//	    // SoX is missing; err explains how to install it
//	}
//
//	channels, err := sox.ChannelCount(ctx, "track.wav")
//	err = sox.Extract(ctx, "track.wav", "track[1-2].wav", []int{1, 2})
//
// SoX handles the containers the splitter cares about: WAV, FLAC,
// AIFF and WavPack, among many others.
package backend
