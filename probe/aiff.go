package probe

import (
	"io"

	"github.com/go-audio/aiff"
)

// AIFF probes AIFF containers, the big-endian sibling of WAV.
type AIFF struct{}

func (AIFF) ChannelCount(r io.ReadSeeker) (int, error) {
	dec := aiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, ErrNotAiffFile
	}

	dec.ReadInfo()
	return channelsFromFormat(dec.Format())
}
