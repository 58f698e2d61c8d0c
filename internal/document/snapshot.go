// Package document owns the live editable state and its immutable snapshots.
package document

import (
	"fmt"
	"time"

	"github.com/quill-editor/quill/internal/types"
)

// Snapshot is an immutable copy of the document state at one instant. It
// carries no reference back to the document that produced it, so the history
// ledger can own it independently.
type Snapshot struct {
	text      string
	cursor    int
	fontSize  int
	createdAt time.Time
}

// NewSnapshot validates and builds a snapshot. The cursor must lie within
// [0, len(text)] and the font size must be positive.
func NewSnapshot(text string, cursor, fontSize int) (Snapshot, error) {
	if cursor < 0 {
		return Snapshot{}, fmt.Errorf("%w: snapshot cursor %d is negative", types.ErrInvalidInput, cursor)
	}
	if cursor > len(text) {
		return Snapshot{}, fmt.Errorf("%w: snapshot cursor %d exceeds text length %d", types.ErrInvalidInput, cursor, len(text))
	}
	if fontSize <= 0 {
		return Snapshot{}, fmt.Errorf("%w: snapshot font size %d must be positive", types.ErrInvalidInput, fontSize)
	}
	return Snapshot{
		text:      text,
		cursor:    cursor,
		fontSize:  fontSize,
		createdAt: time.Now(),
	}, nil
}

// Text returns the captured text.
func (s Snapshot) Text() string { return s.text }

// Cursor returns the captured cursor offset.
func (s Snapshot) Cursor() int { return s.cursor }

// FontSize returns the captured font size.
func (s Snapshot) FontSize() int { return s.fontSize }

// CreatedAt returns the capture timestamp. Informational only; the ledger
// orders snapshots by insertion, never by time.
func (s Snapshot) CreatedAt() time.Time { return s.createdAt }
