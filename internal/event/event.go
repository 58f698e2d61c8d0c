// internal/event/event.go
package event

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Editor Events
	TypeDocumentModified // Fired when document content, cursor, or font changes
	TypeHistorySaved     // Fired after a snapshot is recorded in the ledger
	TypeHistoryRestored  // Fired after undo/redo restores a snapshot
	TypeHistoryCleared   // Fired after the ledger is emptied

	// Application Lifecycle Events
	TypeAppQuit // Fired just before the session loop terminates
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// DocumentModifiedData describes what changed on the document.
type DocumentModifiedData struct {
	Op string // "write", "delete", "cursor", "font", "restore"
}

// HistorySavedData reports ledger bookkeeping after a save.
type HistorySavedData struct {
	Captures     int
	CurrentIndex int
}

// HistoryRestoredData reports the direction of a restore.
type HistoryRestoredData struct {
	Direction string // "undo" or "redo"
}

// AppQuitData could carry an exit reason later.
type AppQuitData struct{}
