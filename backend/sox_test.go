// SPDX-License-Identifier: EPL-2.0

package backend

import (
	"errors"
	"runtime"
	"testing"
)

func TestParseChannelCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		out  string
		want int
	}{
		{"2\n", 2},
		{"  8  \n", 8},
		{"16", 16},
	}

	for _, tt := range tests {
		got, err := parseChannelCount(tt.out)
		if err != nil {
			t.Errorf("parseChannelCount(%q) error = %v", tt.out, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseChannelCount(%q) = %d, want %d", tt.out, got, tt.want)
		}
	}
}

func TestParseChannelCount_Rejections(t *testing.T) {
	t.Parallel()

	// Anything sox prints that is not a positive integer is an
	// unreadable channel count for that file.
	outs := []string{"", "\n", "garbage", "2 channels", "0", "-1", "2.0"}

	for _, out := range outs {
		if _, err := parseChannelCount(out); !errors.Is(err, ErrChannelQuery) {
			t.Errorf("parseChannelCount(%q) error = %v, want %v", out, err, ErrChannelQuery)
		}
	}
}

func TestRemixArgs(t *testing.T) {
	t.Parallel()

	got := remixArgs("in.wav", "in[3-5].wav", []int{3, 4, 5})
	want := []string{"in.wav", "in[3-5].wav", "remix", "3", "4", "5"}

	if len(got) != len(want) {
		t.Fatalf("remixArgs() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("remixArgs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInstallHint(t *testing.T) {
	t.Parallel()

	if InstallHint() == "" {
		t.Error("InstallHint() is empty")
	}
}

func TestLocate_NotInstalled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("windows probes fixed install directories")
	}

	// With an empty PATH the lookup cannot succeed.
	t.Setenv("PATH", "")

	if _, err := Locate(); !errors.Is(err, ErrSoxNotFound) {
		t.Errorf("Locate() error = %v, want %v", err, ErrSoxNotFound)
	}
}
