package probe

import (
	"io"

	"github.com/go-audio/wav"
)

// WAV probes RIFF/WAVE containers.
type WAV struct{}

func (WAV) ChannelCount(r io.ReadSeeker) (int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return 0, ErrNotWavFile
	}

	dec.ReadInfo()
	return channelsFromFormat(dec.Format())
}
