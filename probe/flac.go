package probe

import (
	"io"

	"github.com/mewkiz/flac"
)

// FLAC probes FLAC streams via the mandatory StreamInfo block.
type FLAC struct{}

func (FLAC) ChannelCount(r io.ReadSeeker) (int, error) {
	stream, err := flac.Parse(r)
	if err != nil {
		return 0, ErrNotFlacFile
	}
	defer stream.Close()

	if stream.Info == nil || stream.Info.NChannels < 1 {
		return 0, ErrNoFormat
	}
	return int(stream.Info.NChannels), nil
}
