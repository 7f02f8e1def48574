package argon

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"
)

// ReadStdin reads all of standard input. With a positive timeout it resolves
// with whatever arrived so far (possibly nothing) once the timeout fires; a
// zero or negative timeout waits for EOF. This is a convenience for callers
// piping data into their CLI; the engine itself never touches stdin.
func ReadStdin(timeout time.Duration) (string, error) {
	return readAllWithTimeout(os.Stdin, timeout)
}

func readAllWithTimeout(r io.Reader, timeout time.Duration) (string, error) {
	if timeout <= 0 {
		b, err := io.ReadAll(r)
		return string(b), err
	}

	var mu sync.Mutex
	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		tmp := make([]byte, 4096)
		for {
			n, err := r.Read(tmp)
			if n > 0 {
				mu.Lock()
				buf.Write(tmp[:n])
				mu.Unlock()
			}
			if err != nil {
				if err == io.EOF {
					err = nil
				}
				done <- err
				return
			}
		}
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		mu.Lock()
		defer mu.Unlock()
		return buf.String(), err
	case <-timer.C:
		// Partial input is the contract: whatever arrived wins the race.
		mu.Lock()
		defer mu.Unlock()
		return buf.String(), nil
	}
}
