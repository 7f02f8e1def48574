package argon

import "context"

// ValidateFunc validates the raw string tokens of one occurrence of an
// argument and produces the occurrence's typed value. current is the value
// accumulated so far (the seeded default, or the result of earlier
// occurrences), raw is the finalized token tail for this occurrence, and
// first reports whether this is the first command-line occurrence. The hook
// may block on I/O; the parser waits for it before moving to the next chunk.
type ValidateFunc func(ctx context.Context, current any, raw []string, first bool) (any, error)

// ReduceFunc folds a newly validated occurrence value into the accumulator.
// Scalar arguments replace, collection arguments append or merge. The parser
// never skips Reduce after a successful Validate.
type ReduceFunc func(current, next any) any

// PresentFunc runs once when the argument's flag token is seen, before any
// values are processed. Presence-only arguments use it to seed true.
type PresentFunc func(current any) any

// Argument is the declarative contract every argument type satisfies. It is
// a closed capability record: built-in factories and user code alike describe
// behavior through the three hooks rather than through subtyping.
type Argument struct {
	// Description is the human-readable help text. The help renderer
	// appends auto-generated usage hints (default, valid values, …).
	Description string

	// Default is the value the argument holds when neither the command
	// line nor the environment supplies it. Collection defaults are cloned
	// before use so a shared Argument never leaks an accumulator between
	// parses.
	Default any

	// Alias is an optional single-character flag usable in short clusters
	// such as -fb. Only presence-only arguments may carry one; App.compile
	// rejects anything else.
	Alias rune

	// TakesValue is false for presence-only (boolean-shaped) arguments.
	TakesValue bool

	// Multiple reports whether repeated occurrences accumulate. Arguments
	// without it truncate to a single value when excess tokens can spill
	// into operands.
	Multiple bool

	// Hint is an extra usage fragment shown in help, e.g. "one of: a, b".
	Hint string

	Validate ValidateFunc
	Reduce   ReduceFunc
	Present  PresentFunc
}

// reduce applies the Reduce hook, defaulting to replace semantics.
func (a *Argument) reduce(current, next any) any {
	if a.Reduce == nil {
		return next
	}
	return a.Reduce(current, next)
}

// cloneDefault returns a copy of the default value safe to mutate as an
// accumulator. Slices and maps are shallow-copied; scalars pass through.
func (a *Argument) cloneDefault() any {
	switch v := a.Default.(type) {
	case []string:
		return append([]string(nil), v...)
	case []float64:
		return append([]float64(nil), v...)
	case map[string][]string:
		m := make(map[string][]string, len(v))
		for k, vals := range v {
			m[k] = append([]string(nil), vals...)
		}
		return m
	default:
		return a.Default
	}
}
