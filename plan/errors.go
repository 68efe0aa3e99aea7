// SPDX-License-Identifier: EPL-2.0

package plan

import "errors"

var (
	ErrEmptyPattern    = errors.New("grouping pattern is empty")
	ErrNotDigits       = errors.New("grouping pattern must consist of digits only")
	ErrZeroGroup       = errors.New("grouping pattern must not contain the digit 0")
	ErrNoSplit         = errors.New("grouping pattern equals the channel count, nothing to split")
	ErrPatternOverflow = errors.New("grouping pattern does not fit the channel count")
)
