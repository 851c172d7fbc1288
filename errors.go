// SPDX-License-Identifier: EPL-2.0

package mp3wav

import "errors"

var (
	// ErrDecode marks failures of the decode stage: corrupt or
	// unsupported audio content.
	ErrDecode = errors.New("could not decode audio")

	// ErrUnsupportedFormat indicates no decoder is registered for the
	// source file's extension.
	ErrUnsupportedFormat = errors.New("unsupported source format")
)
