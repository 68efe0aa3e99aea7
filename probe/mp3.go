package probe

import (
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"
)

// MP3 probes MPEG-1 Layer 3 streams.
type MP3 struct{}

func (MP3) ChannelCount(r io.ReadSeeker) (int, error) {
	if _, err := gomp3.NewDecoder(r); err != nil {
		return 0, ErrNotMP3File
	}

	// go-mp3 decodes every stream to stereo output.
	return 2, nil
}
