// Package repl implements the interactive line-reading loop that drives the
// editor core: it tokenizes input, dispatches commands, and prints document
// state after each action. The core itself performs no I/O beyond logging.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/quill-editor/quill/internal/command"
	"github.com/quill-editor/quill/internal/config"
	"github.com/quill-editor/quill/internal/document"
	"github.com/quill-editor/quill/internal/event"
	"github.com/quill-editor/quill/internal/history"
	"github.com/quill-editor/quill/internal/logger"
)

const prompt = "quill> "

// Repl wires the document, ledger, and invoker to a line-based console.
type Repl struct {
	doc     *document.Document
	ledger  *history.Ledger
	invoker *command.Invoker
	events  *event.Manager
	cfg     config.EditorConfig
	in      io.Reader
	out     io.Writer

	mutations int // Total document modifications observed via the event bus
	quitting  bool
}

// New creates a REPL bound to the given core objects and streams.
func New(doc *document.Document, ledger *history.Ledger, invoker *command.Invoker, events *event.Manager, cfg config.EditorConfig, in io.Reader, out io.Writer) *Repl {
	r := &Repl{
		doc:     doc,
		ledger:  ledger,
		invoker: invoker,
		events:  events,
		cfg:     cfg,
		in:      in,
		out:     out,
	}

	if events != nil {
		events.Subscribe(event.TypeDocumentModified, func(e event.Event) bool {
			r.mutations++
			return false
		})
		events.Subscribe(event.TypeHistoryRestored, func(e event.Event) bool {
			if data, ok := e.Data.(event.HistoryRestoredData); ok {
				fmt.Fprintf(r.out, "(%s restored a snapshot)\n", data.Direction)
			}
			return false
		})
	}
	return r
}

// Run reads lines until EOF or a quit command.
func (r *Repl) Run() error {
	fmt.Fprintf(r.out, "quill - type 'help' for commands\n")
	scanner := bufio.NewScanner(r.in)

	for {
		fmt.Fprint(r.out, prompt)
		if !scanner.Scan() {
			break
		}
		r.Dispatch(scanner.Text())
		if r.quitting {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if r.events != nil {
		r.events.Dispatch(event.TypeAppQuit, event.AppQuitData{})
	}
	logger.Infof("Session ended after %d executed commands", r.invoker.Count())
	return nil
}

// Dispatch tokenizes and executes a single input line.
func (r *Repl) Dispatch(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	switch name {
	case "write":
		// Everything after the command word and one separator is text,
		// leading spaces included ("write  World!" inserts " World!").
		text := strings.TrimPrefix(strings.TrimLeft(line, " \t"), fields[0])
		text = strings.TrimPrefix(text, " ")
		r.execute(func() (command.Command, error) {
			return command.NewWriteCommand(r.doc, r.ledger, text)
		})
	case "delete":
		count := 1
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(r.out, "delete: %q is not a number\n", args[0])
				return
			}
			count = n
		}
		r.execute(func() (command.Command, error) {
			return command.NewDeleteCommand(r.doc, r.ledger, count)
		})
	case "font", "format":
		size, ok := r.intArg(name, args)
		if !ok {
			return
		}
		r.execute(func() (command.Command, error) {
			return command.NewFormatCommand(r.doc, r.ledger, size)
		})
	case "cursor":
		pos, ok := r.intArg(name, args)
		if !ok {
			return
		}
		if err := r.doc.SetCursor(pos); err != nil {
			fmt.Fprintf(r.out, "cursor: %v\n", err)
			return
		}
		r.printState()
	case "undo":
		done, err := r.ledger.Undo(r.doc)
		r.reportRestore("undo", done, err)
	case "redo":
		done, err := r.ledger.Redo(r.doc)
		r.reportRestore("redo", done, err)
	case "clear":
		r.ledger.Clear()
		fmt.Fprintln(r.out, "history cleared")
	case "capacity":
		n, ok := r.intArg(name, args)
		if !ok {
			return
		}
		if err := r.ledger.SetCapacity(n); err != nil {
			fmt.Fprintf(r.out, "capacity: %v\n", err)
			return
		}
		fmt.Fprintf(r.out, "capacity set to %d\n", n)
	case "info":
		count, index := r.ledger.Info()
		fmt.Fprintf(r.out, "history: %d snapshot(s), current index %d, capacity %d\n", count, index, r.ledger.Capacity())
		fmt.Fprintf(r.out, "can undo: %v, can redo: %v\n", r.ledger.CanUndo(), r.ledger.CanRedo())
	case "log":
		entries := r.invoker.Log()
		if len(entries) == 0 {
			fmt.Fprintln(r.out, "no commands executed yet")
			return
		}
		for i, entry := range entries {
			fmt.Fprintf(r.out, "%3d  %s\n", i+1, entry)
		}
	case "show":
		r.printState()
	case "stats":
		fmt.Fprintln(r.out, r.statsLine())
	case "copy":
		r.copyToClipboard()
	case "paste":
		r.pasteFromClipboard()
	case "help":
		r.printHelp()
	case "quit", "exit":
		r.quitting = true
	default:
		fmt.Fprintf(r.out, "unknown command %q - type 'help'\n", name)
	}
}

// execute builds a command, runs it through the invoker, and prints the
// resulting state or the failure.
func (r *Repl) execute(build func() (command.Command, error)) {
	cmd, err := build()
	if err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	if err := r.invoker.Execute(cmd); err != nil {
		fmt.Fprintf(r.out, "error: %v\n", err)
		return
	}
	r.printState()
}

func (r *Repl) intArg(name string, args []string) (int, bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%s: missing numeric argument\n", name)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s: %q is not a number\n", name, args[0])
		return 0, false
	}
	return n, true
}

func (r *Repl) reportRestore(direction string, done bool, err error) {
	if err != nil {
		fmt.Fprintf(r.out, "%s: %v\n", direction, err)
		return
	}
	if !done {
		fmt.Fprintf(r.out, "nothing to %s\n", direction)
		return
	}
	r.printState()
}

func (r *Repl) copyToClipboard() {
	if !r.cfg.SystemClipboard {
		fmt.Fprintln(r.out, "copy: system clipboard disabled (enable with -system-clipboard)")
		return
	}
	if err := clipboard.WriteAll(r.doc.Text()); err != nil {
		fmt.Fprintf(r.out, "copy: %v\n", err)
		return
	}
	fmt.Fprintf(r.out, "copied %d bytes to clipboard\n", len(r.doc.Text()))
}

func (r *Repl) pasteFromClipboard() {
	if !r.cfg.SystemClipboard {
		fmt.Fprintln(r.out, "paste: system clipboard disabled (enable with -system-clipboard)")
		return
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		fmt.Fprintf(r.out, "paste: %v\n", err)
		return
	}
	if text == "" {
		fmt.Fprintln(r.out, "paste: clipboard is empty")
		return
	}
	r.execute(func() (command.Command, error) {
		return command.NewWriteCommand(r.doc, r.ledger, text)
	})
}

func (r *Repl) printHelp() {
	fmt.Fprint(r.out, `commands:
  write <text>    insert text at the cursor (records a save point)
  delete [n]      delete n characters before the cursor (default 1)
  cursor <n>      move the cursor (clamps to end of text)
  font <n>        set the font size (records a save point)
  undo / redo     walk the history ledger
  clear           empty the history ledger
  capacity <n>    change how many snapshots the ledger retains
  info            show ledger count, index, and capacity
  log             show executed commands in order
  show            print the current document state
  stats           grapheme/word/width counts for the text
  copy / paste    exchange text with the system clipboard
  quit | exit     leave the editor
`)
}
