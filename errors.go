// SPDX-License-Identifier: EPL-2.0

package channelsplitter

import "errors"

var (
	ErrInputNotFound     = errors.New("input file not found")
	ErrChannelCount      = errors.New("unable to determine the number of channels")
	ErrOverwriteDeclined = errors.New("existing output files left untouched")
)
