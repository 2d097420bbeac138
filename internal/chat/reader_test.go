package chat

import (
	"io"
	"strings"
	"testing"
)

func TestLineReader_ReadsLines(t *testing.T) {
	lr := NewLineReader(strings.NewReader("one\ntwo\r\nthree\n"), 64)

	for _, want := range []string{"one", "two", "three"} {
		got, err := lr.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine error: %v", err)
		}
		if got != want {
			t.Fatalf("got %q, want %q", got, want)
		}
	}

	if _, err := lr.ReadLine(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLineReader_LastLineWithoutNewline(t *testing.T) {
	lr := NewLineReader(strings.NewReader("tail"), 64)

	got, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine error: %v", err)
	}
	if got != "tail" {
		t.Fatalf("got %q, want %q", got, "tail")
	}
	if _, err := lr.ReadLine(); err != io.EOF {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLineReader_TooLongLineIsDroppedAndReadingResumes(t *testing.T) {
	long := strings.Repeat("x", 100)
	lr := NewLineReader(strings.NewReader(long+"\nok\n"), 8)

	if _, err := lr.ReadLine(); err != ErrLineTooLong {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	got, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine after overflow: %v", err)
	}
	if got != "ok" {
		t.Fatalf("got %q after overflow, want %q", got, "ok")
	}
}

func TestLineReader_TooLongLineSpanningBuffers(t *testing.T) {
	// Longer than the internal 4096-byte bufio buffer to exercise the
	// discard path across multiple fills.
	long := strings.Repeat("x", 10000)
	lr := NewLineReader(strings.NewReader(long+"\nnext\n"), 1024)

	if _, err := lr.ReadLine(); err != ErrLineTooLong {
		t.Fatalf("expected ErrLineTooLong, got %v", err)
	}

	got, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("ReadLine after overflow: %v", err)
	}
	if got != "next" {
		t.Fatalf("got %q after overflow, want %q", got, "next")
	}
}

func TestLineReader_LineAtExactLimit(t *testing.T) {
	line := strings.Repeat("a", 8)
	lr := NewLineReader(strings.NewReader(line+"\n"), 8)

	got, err := lr.ReadLine()
	if err != nil {
		t.Fatalf("line at the limit should pass, got error: %v", err)
	}
	if got != line {
		t.Fatalf("got %q, want %q", got, line)
	}
}
