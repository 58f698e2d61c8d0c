// internal/repl/demo.go
package repl

import "fmt"

// demoScript walks the save/write/undo/redo cycle end to end.
var demoScript = []string{
	"show",
	"write Hello",
	"write  World!",
	"cursor 5",
	"delete 2",
	"undo",
	"undo",
	"undo",
	"redo",
	"font 24",
	"info",
	"stats",
	"log",
}

// RunDemo executes the scripted session, echoing each input line before its
// output, then exits.
func (r *Repl) RunDemo() error {
	fmt.Fprintln(r.out, "quill demo session")
	for _, line := range demoScript {
		fmt.Fprintf(r.out, "%s%s\n", prompt, line)
		r.Dispatch(line)
	}
	return nil
}
