// SPDX-License-Identifier: EPL-2.0

package probe

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	goaudio "github.com/go-audio/audio"
)

// Prober reads the channel count from one container format.
type Prober interface {
	ChannelCount(r io.ReadSeeker) (int, error)
}

// Registry maps file extensions (without the dot) to probers.
type Registry struct {
	probers map[string]Prober

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		probers: make(map[string]Prober),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, p Prober) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.probers[ext] = p
}

func (r *Registry) Get(ext string) (Prober, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	p, ok := r.probers[ext]
	return p, ok
}

// Default returns a registry with every prober in this package
// registered under its usual extensions.
func Default() *Registry {
	reg := NewRegistry()
	reg.Register("wav", WAV{})
	reg.Register("aiff", AIFF{})
	reg.Register("aif", AIFF{})
	reg.Register("flac", FLAC{})
	reg.Register("mp3", MP3{})
	reg.Register("ogg", Vorbis{})
	reg.Register("oga", Vorbis{})
	return reg
}

var defaultRegistry = Default()

// ChannelCount opens the file at path and probes its channel count
// using the default registry, picking the prober by extension.
func ChannelCount(path string) (int, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))

	p, ok := defaultRegistry.Get(ext)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w", err)
	}
	defer f.Close()

	return p.ChannelCount(f)
}

// channelsFromFormat guards against decoders that report no format at all.
func channelsFromFormat(f *goaudio.Format) (int, error) {
	if f == nil || f.NumChannels < 1 {
		return 0, ErrNoFormat
	}
	return f.NumChannels, nil
}
