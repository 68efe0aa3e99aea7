// SPDX-License-Identifier: EPL-2.0

package plan

import (
	"path/filepath"
	"strings"
)

// OutputPath derives the destination file for one group. The group
// label is inserted between the input's base name and extension, so
// "track.wav" with channels 3-4 becomes "track[3-4].wav", in the same
// directory as the input.
func OutputPath(input string, g Group) string {
	ext := filepath.Ext(input)
	base := strings.TrimSuffix(input, ext)
	return base + "[" + g.Label() + "]" + ext
}

// OutputPaths derives one destination per group, in group order.
func OutputPaths(input string, groups []Group) []string {
	paths := make([]string, len(groups))
	for i, g := range groups {
		paths[i] = OutputPath(input, g)
	}
	return paths
}
