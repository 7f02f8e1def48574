package argon

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

func TestReadAllNoTimeout(t *testing.T) {
	got, err := readAllWithTimeout(strings.NewReader("hello world"), 0)
	if err != nil {
		t.Fatalf("readAllWithTimeout: %v", err)
	}
	if got != "hello world" {
		t.Errorf("got %q, want %q", got, "hello world")
	}
}

func TestReadAllBeforeTimeout(t *testing.T) {
	got, err := readAllWithTimeout(strings.NewReader("quick"), 5*time.Second)
	if err != nil {
		t.Fatalf("readAllWithTimeout: %v", err)
	}
	if got != "quick" {
		t.Errorf("got %q, want %q", got, "quick")
	}
}

func TestReadAllTimeoutReturnsPartial(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	go func() {
		io.WriteString(pw, "partial")
		// Never close; the reader must give up on its own.
	}()

	got, err := readAllWithTimeout(pr, 200*time.Millisecond)
	if err != nil {
		t.Fatalf("timeout must not be an error: %v", err)
	}
	if got != "partial" {
		t.Errorf("got %q, want the bytes written before the deadline", got)
	}
}

func TestReadAllTimeoutEmptyInput(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	got, err := readAllWithTimeout(pr, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("timeout must not be an error: %v", err)
	}
	if got != "" {
		t.Errorf("got %q, want empty input", got)
	}
}

func TestReadAllPropagatesReadError(t *testing.T) {
	boom := errors.New("boom")
	_, err := readAllWithTimeout(&failingReader{err: boom}, time.Second)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want the reader failure", err)
	}
}

type failingReader struct{ err error }

func (f *failingReader) Read([]byte) (int, error) { return 0, f.err }
