package boundary

import "errors"

var (
	// ErrUnsupportedBackground is returned by the foreground finder when the
	// background is not pure white and any reference colour was not allowed.
	ErrUnsupportedBackground = errors.New("unsupported background: only white is supported")

	// ErrUnsupportedForeground is returned by the background finder when the
	// foreground is not pure black and any reference colour was not allowed.
	ErrUnsupportedForeground = errors.New("unsupported foreground: only black is supported")
)
