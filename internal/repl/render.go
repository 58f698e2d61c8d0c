// internal/repl/render.go
package repl

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// printState renders the document with a cursor marker, plus the numeric
// offsets the core tracks.
func (r *Repl) printState() {
	text := r.doc.Text()
	cursor := r.doc.Cursor()

	fmt.Fprintf(r.out, "[%s|%s]\n", text[:cursor], text[cursor:])
	fmt.Fprintf(r.out, "cursor: %d/%d, font: %dpt\n", cursor, len(text), r.doc.FontSize())
}

// statsLine summarizes the text beyond raw byte counts. The cursor stays
// byte-indexed; these counts are display diagnostics only.
func (r *Repl) statsLine() string {
	text := r.doc.Text()
	return fmt.Sprintf("bytes: %d, graphemes: %d, words: %d, width: %d, mutations: %d",
		len(text),
		uniseg.GraphemeClusterCount(text),
		len(strings.Fields(text)),
		uniseg.StringWidth(text),
		r.mutations)
}
