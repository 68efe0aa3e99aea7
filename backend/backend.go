// SPDX-License-Identifier: EPL-2.0

package backend

import "context"

// Backend is the external audio engine driven by the splitter.
type Backend interface {
	// ChannelCount reports the number of channels in the audio file
	// at path.
	ChannelCount(ctx context.Context, path string) (int, error)

	// Extract writes a new file at outPath containing exactly the
	// named 1-based channels from inPath, in the given order,
	// preserving sample format and rate. The input file is never
	// modified.
	Extract(ctx context.Context, inPath, outPath string, channels []int) error
}
