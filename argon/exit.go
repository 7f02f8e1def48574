package argon

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes of the process boundary. Code 1 is deliberately unused: it is
// reserved for business-logic failures in the caller's own code, outside
// this engine.
const (
	ExitSuccess = 0
	ExitUsage   = 2
)

// Sentinels returned by Parse after rendering help or version output. The
// boundary maps both to a successful exit.
var (
	ErrHelpShown    = errors.New("help shown")
	ErrVersionShown = errors.New("version shown")
)

// ExitFunc is the process-exit primitive: print message (stderr for nonzero
// codes, stdout for zero) and terminate. Replace it through App.ExitWith to
// embed the engine in a long-lived process.
type ExitFunc func(code int, message string)

// osExit is the default primitive.
func osExit(code int, message string) {
	if message != "" {
		w := os.Stdout
		if code != ExitSuccess {
			w = os.Stderr
		}
		fmt.Fprintln(w, message)
	}
	os.Exit(code)
}

// exitCodeFor maps a Parse error to the boundary exit code.
func exitCodeFor(err error) int {
	if errors.Is(err, ErrHelpShown) || errors.Is(err, ErrVersionShown) {
		return ExitSuccess
	}
	return ExitUsage
}

// exitMessageFor returns the single-line message for the exit primitive.
// Help and version already rendered through the console sink, so they exit
// silently.
func exitMessageFor(err error) string {
	if errors.Is(err, ErrHelpShown) || errors.Is(err, ErrVersionShown) {
		return ""
	}
	return err.Error()
}
