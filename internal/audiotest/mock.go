// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"context"
	"fmt"
)

// Extraction records one extraction request made against MockBackend.
type Extraction struct {
	In       string
	Out      string
	Channels []int
}

// MockBackend is a scriptable stand-in for the external audio engine.
// It implements the backend.Backend interface (without importing it to
// avoid cycles) and records every extraction request in order.
type MockBackend struct {
	// Counts maps input paths to the channel count the engine reports.
	Counts map[string]int

	// CountErr, when set, fails every channel query.
	CountErr error

	// ExtractErrs maps output paths to a scripted extraction failure.
	ExtractErrs map[string]error

	// Extractions holds every extraction request, including failed ones.
	Extractions []Extraction
}

// NewMockBackend creates a mock engine reporting the given channel
// count for every input file.
func NewMockBackend(channels int) *MockBackend {
	return &MockBackend{Counts: map[string]int{"": channels}}
}

func (m *MockBackend) ChannelCount(ctx context.Context, path string) (int, error) {
	if m.CountErr != nil {
		return 0, m.CountErr
	}
	if n, ok := m.Counts[path]; ok {
		return n, nil
	}
	if n, ok := m.Counts[""]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("no channel count scripted for %s", path)
}

func (m *MockBackend) Extract(ctx context.Context, inPath, outPath string, channels []int) error {
	m.Extractions = append(m.Extractions, Extraction{
		In:       inPath,
		Out:      outPath,
		Channels: append([]int(nil), channels...),
	})
	return m.ExtractErrs[outPath]
}
