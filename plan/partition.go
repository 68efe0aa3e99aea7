// SPDX-License-Identifier: EPL-2.0

package plan

import "strconv"

// Group is a contiguous range of 1-based channel indices destined for
// one output file.
type Group struct {
	Start int
	End   int
}

// Size returns the number of channels in the group.
func (g Group) Size() int { return g.End - g.Start + 1 }

// Label renders the group for the output filename: "c" for a single
// channel, "s-e" for a range.
func (g Group) Label() string {
	if g.Start == g.End {
		return strconv.Itoa(g.Start)
	}
	return strconv.Itoa(g.Start) + "-" + strconv.Itoa(g.End)
}

// Channels expands the group into the ordered channel index list the
// backend's remix operation expects.
func (g Group) Channels() []int {
	channels := make([]int, 0, g.Size())
	for c := g.Start; c <= g.End; c++ {
		channels = append(channels, c)
	}
	return channels
}

// Partition emits the ordered groups covering channels 1..channels
// exactly. Group sizes follow the pattern left to right; once the
// pattern is exhausted its last digit repeats. When the remainder is
// smaller than the next group size, the plan switches to singles so
// every channel still ends up in exactly one group.
func (p Pattern) Partition(channels int) ([]Group, error) {
	if err := p.Validate(channels); err != nil {
		return nil, err
	}

	groups := make([]Group, 0, len(p))
	start := 1
	remaining := channels

	for index := 0; remaining > 0; index++ {
		size := p[len(p)-1]
		if index < len(p) {
			size = p[index]
		}
		if size > remaining {
			size = 1
		}

		groups = append(groups, Group{Start: start, End: start + size - 1})
		start += size
		remaining -= size
	}

	return groups, nil
}
