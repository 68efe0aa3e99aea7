// SPDX-License-Identifier: EPL-2.0

package plan

import (
	"errors"
	"testing"
)

func mustPattern(t *testing.T, s string) Pattern {
	t.Helper()
	p, err := ParsePattern(s)
	if err != nil {
		t.Fatalf("ParsePattern(%q) error = %v", s, err)
	}
	return p
}

func TestPartition_RepeatingTail(t *testing.T) {
	t.Parallel()

	// "32" over 7 channels: 3, then the last digit 2 repeats
	groups, err := mustPattern(t, "32").Partition(7)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []Group{{1, 3}, {4, 5}, {6, 7}}
	assertGroups(t, groups, want)
}

func TestPartition_ClampToSingle(t *testing.T) {
	t.Parallel()

	// "3" over 4 channels: the trailing channel no longer fills a
	// 3-channel group, so it becomes a mono file instead of an error
	groups, err := mustPattern(t, "3").Partition(4)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []Group{{1, 3}, {4, 4}}
	assertGroups(t, groups, want)
}

func TestPartition_MonoRemainder(t *testing.T) {
	t.Parallel()

	groups, err := mustPattern(t, "221").Partition(5)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []Group{{1, 2}, {3, 4}, {5, 5}}
	assertGroups(t, groups, want)
}

func TestPartition_LateClampThenSingles(t *testing.T) {
	t.Parallel()

	// "4" over 10 channels: two full groups of 4, then the 2-channel
	// remainder degrades to singles
	groups, err := mustPattern(t, "4").Partition(10)
	if err != nil {
		t.Fatalf("Partition() error = %v", err)
	}

	want := []Group{{1, 4}, {5, 8}, {9, 9}, {10, 10}}
	assertGroups(t, groups, want)
}

func TestPartition_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern  string
		channels int
		want     error
	}{
		{"4", 4, ErrNoSplit},
		{"9", 4, ErrPatternOverflow},
		{"321", 5, ErrPatternOverflow},
	}

	for _, tt := range tests {
		groups, err := mustPattern(t, tt.pattern).Partition(tt.channels)
		if !errors.Is(err, tt.want) {
			t.Errorf("Pattern(%q).Partition(%d) error = %v, want %v",
				tt.pattern, tt.channels, err, tt.want)
		}
		if groups != nil {
			t.Errorf("Pattern(%q).Partition(%d) = %v, want no groups on rejection",
				tt.pattern, tt.channels, groups)
		}
	}
}

func TestPartition_CoversEveryChannel(t *testing.T) {
	t.Parallel()

	// Whatever the pattern, an accepted partition must cover 1..N
	// exactly: contiguous, non-overlapping, ascending.
	patterns := []string{"1", "2", "3", "9", "32", "221", "54321", "27"}

	for _, ps := range patterns {
		p := mustPattern(t, ps)
		for channels := 1; channels <= 64; channels++ {
			groups, err := p.Partition(channels)
			if err != nil {
				continue // rejected combination
			}

			next := 1
			for i, g := range groups {
				if g.Start != next {
					t.Fatalf("pattern %q, %d channels: group %d starts at %d, want %d",
						ps, channels, i, g.Start, next)
				}
				if g.End < g.Start {
					t.Fatalf("pattern %q, %d channels: group %d is inverted: %+v",
						ps, channels, i, g)
				}
				next = g.End + 1
			}
			if next != channels+1 {
				t.Fatalf("pattern %q, %d channels: groups end at %d, want %d",
					ps, channels, next-1, channels)
			}
		}
	}
}

func TestGroup_Channels(t *testing.T) {
	t.Parallel()

	g := Group{Start: 4, End: 7}
	want := []int{4, 5, 6, 7}

	got := g.Channels()
	if len(got) != len(want) {
		t.Fatalf("Group.Channels() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("Group.Channels()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestGroup_Label(t *testing.T) {
	t.Parallel()

	tests := []struct {
		group Group
		want  string
	}{
		{Group{1, 1}, "1"},
		{Group{3, 4}, "3-4"},
		{Group{10, 12}, "10-12"},
	}

	for _, tt := range tests {
		if got := tt.group.Label(); got != tt.want {
			t.Errorf("Group%+v.Label() = %q, want %q", tt.group, got, tt.want)
		}
	}
}

func assertGroups(t *testing.T, got, want []Group) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d groups %v, want %d groups %v", len(got), got, len(want), want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("group %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}
