package domain

import "errors"

var (
	// ErrInvalidConfiguration is returned before any traversal when the scan
	// cannot start: missing root, empty search path where one is required,
	// no extensions, or a bad exclude pattern.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrMissingHeaders is returned once the full report has been displayed
	// and at least one include could not be resolved.
	ErrMissingHeaders = errors.New("missing headers found")
)
