// SPDX-License-Identifier: EPL-2.0

package probe

import "errors"

var (
	ErrUnknownFormat = errors.New("no prober for file format")
	ErrNoFormat      = errors.New("file reports no usable format")
	ErrNotWavFile    = errors.New("not a WAV file")
	ErrNotAiffFile   = errors.New("not an AIFF file")
	ErrNotFlacFile   = errors.New("not a FLAC file")
	ErrNotMP3File    = errors.New("not an MP3 file")
	ErrNotOggFile    = errors.New("not an Ogg Vorbis file")
)
