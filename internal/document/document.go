// internal/document/document.go
package document

import (
	"fmt"

	"github.com/quill-editor/quill/internal/event"
	"github.com/quill-editor/quill/internal/logger"
	"github.com/quill-editor/quill/internal/types"
)

// DefaultFontSize is used when no configuration overrides it.
const DefaultFontSize = 16

// Document is the live, mutable editable state: text, a cursor offset into
// the text (byte indexed), and a font size. A session owns exactly one.
type Document struct {
	text         string
	cursor       int
	fontSize     int
	eventManager *event.Manager
}

// New creates an empty document with the default font size.
func New() *Document {
	return &Document{
		text:     "",
		cursor:   0,
		fontSize: DefaultFontSize,
	}
}

// NewWithFontSize creates an empty document with the given font size,
// falling back to the default when size is not positive.
func NewWithFontSize(size int) *Document {
	if size <= 0 {
		size = DefaultFontSize
	}
	return &Document{fontSize: size}
}

// SetEventManager sets the event manager for dispatching change events.
func (d *Document) SetEventManager(mgr *event.Manager) {
	d.eventManager = mgr
}

// Text returns the current text.
func (d *Document) Text() string { return d.text }

// Cursor returns the current cursor offset.
func (d *Document) Cursor() int { return d.cursor }

// FontSize returns the current font size.
func (d *Document) FontSize() int { return d.fontSize }

// Write inserts text at the cursor and advances the cursor past it.
// Empty text is rejected; the document grows without bound otherwise.
func (d *Document) Write(text string) error {
	if text == "" {
		return fmt.Errorf("%w: write text must not be empty", types.ErrInvalidInput)
	}

	d.text = d.text[:d.cursor] + text + d.text[d.cursor:]
	d.cursor += len(text)

	logger.Debugf("Document: wrote %d bytes, cursor now %d", len(text), d.cursor)
	d.dispatchModified("write")
	return nil
}

// Delete removes count characters immediately before the cursor and moves
// the cursor back. Deleting past the start of the text is a logged no-op,
// not an error: the operation is gated, never clamped.
func (d *Document) Delete(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: delete count %d must not be negative", types.ErrInvalidInput, count)
	}
	if d.cursor < count {
		logger.Warnf("Document: delete of %d gated, only %d characters before cursor", count, d.cursor)
		return nil
	}

	d.text = d.text[:d.cursor-count] + d.text[d.cursor:]
	d.cursor -= count

	logger.Debugf("Document: deleted %d bytes, cursor now %d", count, d.cursor)
	d.dispatchModified("delete")
	return nil
}

// SetCursor moves the cursor. Negative positions are rejected; positions
// beyond the end of the text clamp silently to the end.
func (d *Document) SetCursor(position int) error {
	if position < 0 {
		return fmt.Errorf("%w: cursor position %d must not be negative", types.ErrInvalidInput, position)
	}
	if position > len(d.text) {
		position = len(d.text)
	}
	d.cursor = position

	d.dispatchModified("cursor")
	return nil
}

// SetFontSize changes the font size. Only positive sizes are accepted.
func (d *Document) SetFontSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: font size %d must be positive", types.ErrInvalidInput, size)
	}
	d.fontSize = size

	d.dispatchModified("font")
	return nil
}

// Snapshot captures the current state as an immutable value. A validation
// failure here means the document itself holds invalid state; the setters
// above should make that impossible.
func (d *Document) Snapshot() (Snapshot, error) {
	return NewSnapshot(d.text, d.cursor, d.fontSize)
}

// RestoreFrom overwrites all document state from a snapshot. The three
// fields change together; no partially restored state is ever observable.
func (d *Document) RestoreFrom(snap *Snapshot) error {
	if snap == nil {
		return fmt.Errorf("%w: snapshot is required", types.ErrInvalidInput)
	}

	d.text = snap.Text()
	d.cursor = snap.Cursor()
	d.fontSize = snap.FontSize()

	logger.Debugf("Document: restored %d bytes, cursor %d, font %d", len(d.text), d.cursor, d.fontSize)
	d.dispatchModified("restore")
	return nil
}

func (d *Document) dispatchModified(op string) {
	if d.eventManager != nil {
		d.eventManager.Dispatch(event.TypeDocumentModified, event.DocumentModifiedData{Op: op})
	}
}
