// SPDX-License-Identifier: EPL-2.0

package backend

import "errors"

var (
	ErrSoxNotFound  = errors.New("SoX is not installed or not in PATH")
	ErrChannelQuery = errors.New("unable to determine the number of channels")
)
