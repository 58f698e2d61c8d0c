// Package history provides snapshot-based undo/redo via a bounded ledger.
package history

import (
	"fmt"
	"sync"

	"github.com/quill-editor/quill/internal/document"
	"github.com/quill-editor/quill/internal/event"
	"github.com/quill-editor/quill/internal/logger"
	"github.com/quill-editor/quill/internal/types"
)

// DefaultCapacity bounds the ledger when no configuration overrides it.
const DefaultCapacity = 50

// Ledger owns the ordered snapshot sequence and a cursor into it. Saving
// after an undo discards the redo branch; exceeding capacity evicts the
// oldest snapshot.
type Ledger struct {
	captures     []document.Snapshot
	currentIndex int // Index of the snapshot the document currently reflects; -1 when empty
	capacity     int
	eventManager *event.Manager
	mutex        sync.Mutex
}

// NewLedger creates a history ledger. A non-positive capacity falls back to
// the default.
func NewLedger(capacity int) *Ledger {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Ledger{
		captures:     make([]document.Snapshot, 0, capacity),
		currentIndex: -1,
		capacity:     capacity,
	}
}

// SetEventManager sets the event manager for dispatching history events.
func (l *Ledger) SetEventManager(mgr *event.Manager) {
	l.eventManager = mgr
}

// SaveState snapshots the document and appends it to the ledger. Any
// previously undone snapshots beyond the current index are discarded first;
// that redo branch is lost irrevocably. When the ledger is full the oldest
// snapshot is evicted and the index stays put, because the sequence shrank
// from the front by exactly one.
func (l *Ledger) SaveState(doc *document.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: document is required", types.ErrInvalidInput)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	// Truncate the redo branch before anything else.
	if l.currentIndex+1 < len(l.captures) {
		l.captures = l.captures[:l.currentIndex+1]
	}

	snap, err := doc.Snapshot()
	if err != nil {
		return fmt.Errorf("%w: snapshot rejected: %v", types.ErrInvalidState, err)
	}

	l.captures = append(l.captures, snap)

	if len(l.captures) > l.capacity {
		// FIFO eviction. The index is not advanced: the window slid down
		// underneath it, so it already addresses the new snapshot.
		l.captures = l.captures[1:]
	} else {
		l.currentIndex++
	}

	logger.Debugf("History: saved snapshot. Index: %d, Count: %d", l.currentIndex, len(l.captures))
	if l.eventManager != nil {
		l.eventManager.Dispatch(event.TypeHistorySaved, event.HistorySavedData{
			Captures:     len(l.captures),
			CurrentIndex: l.currentIndex,
		})
	}
	return nil
}

// Undo restores the previous snapshot into the document. Returns false when
// nothing older exists; index 0 is the oldest reachable state.
func (l *Ledger) Undo(doc *document.Document) (bool, error) {
	if doc == nil {
		return false, fmt.Errorf("%w: document is required", types.ErrInvalidInput)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.currentIndex <= 0 {
		logger.Debugf("History: nothing to undo.")
		return false, nil
	}

	l.currentIndex--
	snap := l.captures[l.currentIndex]
	if err := doc.RestoreFrom(&snap); err != nil {
		l.currentIndex++ // Revert index change on error
		return false, fmt.Errorf("undo failed: %w", err)
	}

	logger.Debugf("History: undid to snapshot %d", l.currentIndex)
	l.dispatchRestored("undo")
	return true, nil
}

// Redo restores the next snapshot into the document. Returns false when the
// index already points at the newest snapshot.
func (l *Ledger) Redo(doc *document.Document) (bool, error) {
	if doc == nil {
		return false, fmt.Errorf("%w: document is required", types.ErrInvalidInput)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if l.currentIndex >= len(l.captures)-1 {
		logger.Debugf("History: nothing to redo. currentIndex=%d, count=%d", l.currentIndex, len(l.captures))
		return false, nil
	}

	l.currentIndex++
	snap := l.captures[l.currentIndex]
	if err := doc.RestoreFrom(&snap); err != nil {
		l.currentIndex-- // Revert index change on error
		return false, fmt.Errorf("redo failed: %w", err)
	}

	logger.Debugf("History: redid to snapshot %d", l.currentIndex)
	l.dispatchRestored("redo")
	return true, nil
}

// CanUndo returns true if an older snapshot exists.
func (l *Ledger) CanUndo() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.currentIndex > 0
}

// CanRedo returns true if an undone snapshot can be reapplied.
func (l *Ledger) CanRedo() bool {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.currentIndex < len(l.captures)-1
}

// Info reports the stored snapshot count and the current index. Diagnostic
// only.
func (l *Ledger) Info() (count, currentIndex int) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return len(l.captures), l.currentIndex
}

// Capacity returns the maximum number of retained snapshots.
func (l *Ledger) Capacity() int {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.capacity
}

// Clear empties the ledger.
func (l *Ledger) Clear() {
	l.mutex.Lock()
	l.captures = l.captures[:0]
	l.currentIndex = -1
	l.mutex.Unlock()

	logger.Debugf("History: cleared.")
	if l.eventManager != nil {
		l.eventManager.Dispatch(event.TypeHistoryCleared, nil)
	}
}

// SetCapacity changes the retention bound at runtime. Shrinking below the
// stored count evicts the oldest snapshots and shifts the index down by the
// number evicted, floored at 0.
func (l *Ledger) SetCapacity(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: capacity %d must be positive", types.ErrInvalidInput, n)
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	l.capacity = n
	if evicted := len(l.captures) - n; evicted > 0 {
		l.captures = l.captures[evicted:]
		l.currentIndex -= evicted
		if l.currentIndex < 0 {
			l.currentIndex = 0
		}
		logger.Debugf("History: capacity shrunk to %d, evicted %d oldest snapshots", n, evicted)
	}
	return nil
}

func (l *Ledger) dispatchRestored(direction string) {
	if l.eventManager != nil {
		l.eventManager.Dispatch(event.TypeHistoryRestored, event.HistoryRestoredData{Direction: direction})
	}
}
