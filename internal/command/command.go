// Package command couples "record then mutate" into single invocable units.
// Every command saves the document into the ledger before touching it, so
// the pre-state of any executed command is always undoable.
package command

import (
	"fmt"

	"github.com/quill-editor/quill/internal/document"
	"github.com/quill-editor/quill/internal/history"
	"github.com/quill-editor/quill/internal/types"
)

// Command is a single executable editor operation.
type Command interface {
	// Name identifies the command in the invoker's log.
	Name() string
	// Execute records the current state and applies the mutation.
	Execute() error
}

// WriteCommand inserts text at the document cursor.
type WriteCommand struct {
	doc    *document.Document
	ledger *history.Ledger
	text   string
}

// NewWriteCommand binds a document, a ledger, and the text to insert.
func NewWriteCommand(doc *document.Document, ledger *history.Ledger, text string) (*WriteCommand, error) {
	if err := requireTargets(doc, ledger); err != nil {
		return nil, err
	}
	if text == "" {
		return nil, fmt.Errorf("%w: write text must not be empty", types.ErrInvalidInput)
	}
	return &WriteCommand{doc: doc, ledger: ledger, text: text}, nil
}

func (c *WriteCommand) Name() string { return "write" }

func (c *WriteCommand) Execute() error {
	if err := c.ledger.SaveState(c.doc); err != nil {
		return err
	}
	return c.doc.Write(c.text)
}

// DeleteCommand removes characters before the document cursor.
type DeleteCommand struct {
	doc    *document.Document
	ledger *history.Ledger
	count  int
}

// NewDeleteCommand binds a document, a ledger, and the character count.
func NewDeleteCommand(doc *document.Document, ledger *history.Ledger, count int) (*DeleteCommand, error) {
	if err := requireTargets(doc, ledger); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, fmt.Errorf("%w: delete count %d must not be negative", types.ErrInvalidInput, count)
	}
	return &DeleteCommand{doc: doc, ledger: ledger, count: count}, nil
}

func (c *DeleteCommand) Name() string { return "delete" }

func (c *DeleteCommand) Execute() error {
	if err := c.ledger.SaveState(c.doc); err != nil {
		return err
	}
	return c.doc.Delete(c.count)
}

// FormatCommand changes the document font size.
type FormatCommand struct {
	doc    *document.Document
	ledger *history.Ledger
	size   int
}

// NewFormatCommand binds a document, a ledger, and the new font size.
func NewFormatCommand(doc *document.Document, ledger *history.Ledger, size int) (*FormatCommand, error) {
	if err := requireTargets(doc, ledger); err != nil {
		return nil, err
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: font size %d must be positive", types.ErrInvalidInput, size)
	}
	return &FormatCommand{doc: doc, ledger: ledger, size: size}, nil
}

func (c *FormatCommand) Name() string { return "format" }

func (c *FormatCommand) Execute() error {
	if err := c.ledger.SaveState(c.doc); err != nil {
		return err
	}
	return c.doc.SetFontSize(c.size)
}

func requireTargets(doc *document.Document, ledger *history.Ledger) error {
	if doc == nil {
		return fmt.Errorf("%w: document is required", types.ErrInvalidInput)
	}
	if ledger == nil {
		return fmt.Errorf("%w: ledger is required", types.ErrInvalidInput)
	}
	return nil
}
