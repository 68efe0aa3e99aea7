package probe

import (
	"io"

	"github.com/jfreymuth/oggvorbis"
)

// Vorbis probes Ogg Vorbis streams.
type Vorbis struct{}

func (Vorbis) ChannelCount(r io.ReadSeeker) (int, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return 0, ErrNotOggFile
	}

	channels := dec.Channels()
	if channels < 1 {
		return 0, ErrNoFormat
	}
	return channels, nil
}
