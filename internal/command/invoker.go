// internal/command/invoker.go
package command

import (
	"fmt"

	"github.com/quill-editor/quill/internal/logger"
	"github.com/quill-editor/quill/internal/types"
)

// Invoker executes commands and keeps an ordered log of what ran. It is
// bookkeeping only: restoring state stays the ledger's exclusive job.
type Invoker struct {
	executed []string
}

// NewInvoker creates an empty invoker.
func NewInvoker() *Invoker {
	return &Invoker{}
}

// Execute runs the command and records its name on success.
func (i *Invoker) Execute(cmd Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: command is required", types.ErrInvalidInput)
	}
	if err := cmd.Execute(); err != nil {
		return err
	}
	i.executed = append(i.executed, cmd.Name())
	logger.Debugf("Invoker: executed %q (%d total)", cmd.Name(), len(i.executed))
	return nil
}

// Count returns how many commands have executed.
func (i *Invoker) Count() int {
	return len(i.executed)
}

// Log returns the executed command names in order.
func (i *Invoker) Log() []string {
	out := make([]string, len(i.executed))
	copy(out, i.executed)
	return out
}
