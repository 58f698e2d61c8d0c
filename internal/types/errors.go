// Package types holds small shared definitions used across the editor core.
package types

import "errors"

// ErrInvalidInput marks a malformed caller-supplied argument (negative count,
// empty text, absent required object). Surfaced to the immediate caller.
var ErrInvalidInput = errors.New("invalid input")

// ErrInvalidState marks an internally produced snapshot that fails its own
// invariants. It indicates a logic defect rather than user error and is
// propagated, not recovered.
var ErrInvalidState = errors.New("invalid state")
