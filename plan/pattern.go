// SPDX-License-Identifier: EPL-2.0

package plan

import (
	"fmt"
	"strings"
)

// Pattern is a parsed grouping pattern: an ordered sequence of group
// sizes, each 1-9. It is immutable once parsed.
type Pattern []int

// ParsePattern parses the digit string supplied on the command line.
// A zero digit is rejected: a zero-sized group would never consume a
// channel and the partition loop would stall on it.
func ParsePattern(s string) (Pattern, error) {
	if s == "" {
		return nil, ErrEmptyPattern
	}

	p := make(Pattern, 0, len(s))
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q", ErrNotDigits, s)
		}
		if r == '0' {
			return nil, fmt.Errorf("%w: %q", ErrZeroGroup, s)
		}
		p = append(p, int(r-'0'))
	}

	return p, nil
}

// Sum returns the total number of channels the pattern's explicit
// digits consume before the last digit starts repeating.
func (p Pattern) Sum() int {
	sum := 0
	for _, size := range p {
		sum += size
	}
	return sum
}

// String renders the pattern back as the digit string it was parsed from.
func (p Pattern) String() string {
	var b strings.Builder
	for _, size := range p {
		b.WriteByte(byte('0' + size))
	}
	return b.String()
}

// Validate checks the pattern against a concrete channel count.
// A single-digit pattern equal to the count is a no-op (the output
// would be the input unchanged) and a pattern whose digit sum exceeds
// the count cannot fit; both fail the whole file before any group is
// emitted.
func (p Pattern) Validate(channels int) error {
	if len(p) == 0 {
		return ErrEmptyPattern
	}
	if len(p) == 1 && p[0] == channels {
		return fmt.Errorf("%w: pattern %q, %d channels", ErrNoSplit, p.String(), channels)
	}
	if sum := p.Sum(); sum > channels {
		return fmt.Errorf("%w: pattern %q sums to %d, file has %d channels",
			ErrPatternOverflow, p.String(), sum, channels)
	}
	return nil
}
