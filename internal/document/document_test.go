package document

import (
	"errors"
	"testing"

	"github.com/quill-editor/quill/internal/types"
)

func TestDocument_New(t *testing.T) {
	doc := New()
	if got, want := doc.Text(), ""; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := doc.Cursor(), 0; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := doc.FontSize(), DefaultFontSize; got != want {
		t.Fatalf("fontSize=%d, want %d", got, want)
	}
}

func TestDocument_Write_InsertsAtCursor(t *testing.T) {
	doc := New()
	if err := doc.Write("Hello!"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := doc.SetCursor(5); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}
	if err := doc.Write(" World"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if got, want := doc.Text(), "Hello World!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := doc.Cursor(), 11; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestDocument_Write_Empty_RejectedWithoutChange(t *testing.T) {
	doc := New()
	if err := doc.Write("abc"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	err := doc.Write("")
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
	if got, want := doc.Text(), "abc"; got != want {
		t.Fatalf("text=%q, want %q (rejected write must not touch state)", got, want)
	}
	if got, want := doc.Cursor(), 3; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestDocument_WriteThenDelete_RestoresPreWriteState(t *testing.T) {
	doc := New()
	if err := doc.Write("base"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := doc.SetCursor(2); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}

	for _, text := range []string{"x", "hello", " spaced out ", "日本語"} {
		if err := doc.Write(text); err != nil {
			t.Fatalf("Write(%q): %v", text, err)
		}
		if err := doc.Delete(len(text)); err != nil {
			t.Fatalf("Delete(%d): %v", len(text), err)
		}
		if got, want := doc.Text(), "base"; got != want {
			t.Fatalf("text=%q, want %q after write+delete of %q", got, want, text)
		}
		if got, want := doc.Cursor(), 2; got != want {
			t.Fatalf("cursor=%d, want %d after write+delete of %q", got, want, text)
		}
	}
}

func TestDocument_Delete_RemovesBeforeCursor(t *testing.T) {
	doc := New()
	if err := doc.Write("Hello World!"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := doc.SetCursor(5); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}
	if err := doc.Delete(3); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if got, want := doc.Text(), "He World!"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := doc.Cursor(), 2; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestDocument_Delete_Negative_Rejected(t *testing.T) {
	doc := New()
	err := doc.Delete(-1)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestDocument_Delete_PastStart_IsGatedNoop(t *testing.T) {
	doc := New()
	if err := doc.Write("Hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := doc.SetCursor(1); err != nil {
		t.Fatalf("SetCursor: %v", err)
	}

	// More characters requested than exist before the cursor: the whole
	// operation is skipped, it is not clamped to "delete what you can".
	if err := doc.Delete(3); err != nil {
		t.Fatalf("gated delete must not error: %v", err)
	}
	if got, want := doc.Text(), "Hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := doc.Cursor(), 1; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestDocument_SetCursor_ClampsToTextEnd(t *testing.T) {
	doc := New()
	if err := doc.Write("Hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if err := doc.SetCursor(1000); err != nil {
		t.Fatalf("SetCursor must clamp, not fail: %v", err)
	}
	if got, want := doc.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
}

func TestDocument_SetCursor_Negative_Rejected(t *testing.T) {
	doc := New()
	err := doc.SetCursor(-1)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestDocument_SetFontSize(t *testing.T) {
	doc := New()
	if err := doc.SetFontSize(24); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}
	if got, want := doc.FontSize(), 24; got != want {
		t.Fatalf("fontSize=%d, want %d", got, want)
	}

	for _, size := range []int{0, -3} {
		err := doc.SetFontSize(size)
		if !errors.Is(err, types.ErrInvalidInput) {
			t.Fatalf("SetFontSize(%d): err=%v, want ErrInvalidInput", size, err)
		}
	}
	if got, want := doc.FontSize(), 24; got != want {
		t.Fatalf("fontSize=%d, want %d (rejected set must not touch state)", got, want)
	}
}

func TestDocument_RestoreFrom(t *testing.T) {
	doc := New()
	if err := doc.Write("Hello"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	snap, err := doc.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}

	if err := doc.Write(" World!"); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := doc.SetFontSize(30); err != nil {
		t.Fatalf("SetFontSize: %v", err)
	}

	if err := doc.RestoreFrom(&snap); err != nil {
		t.Fatalf("RestoreFrom: %v", err)
	}
	if got, want := doc.Text(), "Hello"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := doc.Cursor(), 5; got != want {
		t.Fatalf("cursor=%d, want %d", got, want)
	}
	if got, want := doc.FontSize(), DefaultFontSize; got != want {
		t.Fatalf("fontSize=%d, want %d", got, want)
	}
}

func TestDocument_RestoreFrom_Nil_Rejected(t *testing.T) {
	doc := New()
	err := doc.RestoreFrom(nil)
	if !errors.Is(err, types.ErrInvalidInput) {
		t.Fatalf("err=%v, want ErrInvalidInput", err)
	}
}

func TestDocument_NewWithFontSize(t *testing.T) {
	if got, want := NewWithFontSize(11).FontSize(), 11; got != want {
		t.Fatalf("fontSize=%d, want %d", got, want)
	}
	if got, want := NewWithFontSize(0).FontSize(), DefaultFontSize; got != want {
		t.Fatalf("fontSize=%d, want default %d", got, want)
	}
}
