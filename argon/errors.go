package argon

import (
	"fmt"
	"strings"

	"github.com/argon-cli/argon/internal/fuzzy"
)

// ErrorKind categorizes parse failures. Every kind is fatal; the boundary
// maps all of them to the usage exit code.
type ErrorKind string

const (
	// ErrUnknownName: a --argument or subcommand token matched zero
	// configured names.
	ErrUnknownName ErrorKind = "unknown_name"
	// ErrAmbiguousName: a prefix matched several configured names with no
	// exact tie-break.
	ErrAmbiguousName ErrorKind = "ambiguous_name"
	// ErrValidation: a matched argument's Validate hook rejected its raw
	// input.
	ErrValidation ErrorKind = "validation"
	// ErrEnvValidation: same cause as ErrValidation but for a value taken
	// from the environment; the message names the raw variable.
	ErrEnvValidation ErrorKind = "environment_validation"
	// ErrStructural: operand policy violations, a missing mandatory
	// subcommand, presence-only flags receiving values, and other
	// configuration-shape failures.
	ErrStructural ErrorKind = "structural"
)

// ParseError is the single error type the engine returns. The message is a
// single human-readable line; Suggestion, when set, is folded into it.
type ParseError struct {
	Kind       ErrorKind
	Message    string
	Name       string // display name of the argument or subcommand involved
	Suggestion string // optional "did you mean" candidate
}

func (e *ParseError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s (did you mean %s?)", e.Message, e.Suggestion)
	}
	return e.Message
}

func newParseError(kind ErrorKind, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// maxSuggestDistance bounds the edit distance for did-you-mean candidates.
const maxSuggestDistance = 2

// unknownArgumentError builds the unknown --argument failure, with a fuzzy
// suggestion against the configured dash-form names when one is close enough.
func unknownArgumentError(candidate string, names []string) *ParseError {
	dashed := make([]string, len(names))
	for i, n := range names {
		dashed[i] = dashCase(n)
	}
	err := &ParseError{
		Kind:    ErrUnknownName,
		Message: "unknown argument: --" + candidate,
		Name:    candidate,
	}
	if best := fuzzy.Closest(dashCase(candidate), dashed, maxSuggestDistance); best != "" {
		err.Suggestion = "--" + best
	}
	return err
}

// unknownCommandError mirrors unknownArgumentError for subcommand tokens.
func unknownCommandError(candidate string, names []string) *ParseError {
	err := &ParseError{
		Kind:    ErrUnknownName,
		Message: "unknown command: " + candidate,
		Name:    candidate,
	}
	if best := fuzzy.Closest(candidate, names, maxSuggestDistance); best != "" {
		err.Suggestion = best
	}
	return err
}

// ambiguousError lists the colliding configured names in configuration
// order, rendered in their external dash form.
func ambiguousError(what, candidate string, hits []string) *ParseError {
	dashed := make([]string, len(hits))
	for i, h := range hits {
		dashed[i] = dashCase(h)
	}
	return &ParseError{
		Kind:    ErrAmbiguousName,
		Message: fmt.Sprintf("ambiguous %s %s: matches %s", what, candidate, strings.Join(dashed, ", ")),
		Name:    candidate,
	}
}

// validationError namespaces a Validate rejection with the argument's
// display (dash-form) name.
func validationError(name string, cause error) *ParseError {
	return &ParseError{
		Kind:    ErrValidation,
		Message: fmt.Sprintf("--%s: %s", dashCase(name), cause),
		Name:    dashCase(name),
	}
}

// envValidationError namespaces the same failure with the raw environment
// variable name instead.
func envValidationError(envVar string, cause error) *ParseError {
	return &ParseError{
		Kind:    ErrEnvValidation,
		Message: fmt.Sprintf("invalid environment value %s: %s", envVar, cause),
		Name:    envVar,
	}
}
