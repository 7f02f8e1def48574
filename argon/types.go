package argon

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Built-in argument factories. Every factory returns a plain *Argument; the
// two generic constructors Single and Slice carry the shared validation
// plumbing and the typed ones wrap a raw-string converter around them.

// Single builds a single-occurrence, single-value argument from a raw-string
// converter. Supplying the flag twice is a validation error regardless of the
// values given.
func Single[T any](description string, convert func(raw string) (T, error)) *Argument {
	return &Argument{
		Description: description,
		TakesValue:  true,
		Validate: func(_ context.Context, _ any, raw []string, first bool) (any, error) {
			if !first {
				return nil, fmt.Errorf("set multiple times")
			}
			if len(raw) == 0 {
				return nil, fmt.Errorf("expects a value but received none")
			}
			if len(raw) > 1 {
				return nil, fmt.Errorf("expects a single value but received %s", strings.Join(raw, ", "))
			}
			v, err := convert(raw[0])
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		// Reduce defaults to replace.
	}
}

// Slice builds a repeatable argument that accumulates converted values across
// occurrences in first-seen order.
func Slice[T any](description string, convert func(raw string) (T, error)) *Argument {
	return &Argument{
		Description: description,
		TakesValue:  true,
		Multiple:    true,
		Hint:        "may be repeated",
		Validate: func(_ context.Context, _ any, raw []string, _ bool) (any, error) {
			if len(raw) == 0 {
				return nil, fmt.Errorf("expects at least one value but received none")
			}
			out := make([]T, 0, len(raw))
			for _, r := range raw {
				v, err := convert(r)
				if err != nil {
					return nil, err
				}
				out = append(out, v)
			}
			return out, nil
		},
		Reduce: func(current, next any) any {
			acc, _ := current.([]T)
			return append(acc, next.([]T)...)
		},
	}
}

// String is a single string-valued argument.
func String(description string) *Argument {
	return Single(description, func(raw string) (string, error) { return raw, nil })
}

// Number is a single numeric argument. Any token that parses losslessly as a
// standard decimal float or integer is accepted.
func Number(description string) *Argument {
	return Single(description, parseNumber)
}

// Bool is a presence-only argument: its value is determined solely by whether
// the flag appears. alias registers an optional single-character short flag
// (pass 0 for none); presence-only arguments are the only kind that may carry
// one.
func Bool(description string, alias rune) *Argument {
	return &Argument{
		Description: description,
		Default:     false,
		Alias:       alias,
		Present:     func(any) any { return true },
		Validate: func(_ context.Context, _ any, raw []string, _ bool) (any, error) {
			if len(raw) > 0 {
				return nil, fmt.Errorf("does not accept values but received %s", strings.Join(raw, ", "))
			}
			return true, nil
		},
	}
}

// Enum is a single string-valued argument restricted to the given values.
// Matching is case-insensitive; the stored value keeps the configured casing.
func Enum(description string, values ...string) *Argument {
	a := Single(description, enumConverter(values))
	a.Hint = "one of: " + strings.Join(values, ", ")
	return a
}

// Strings is a repeatable string-list argument.
func Strings(description string) *Argument {
	return Slice(description, func(raw string) (string, error) { return raw, nil })
}

// Numbers is a repeatable numeric-list argument.
func Numbers(description string) *Argument {
	return Slice(description, parseNumber)
}

// Enums is a repeatable enum-list argument. Unlike the scalar Enum it
// validates every token of an occurrence independently and reports all
// invalid tokens in one combined message instead of stopping at the first.
func Enums(description string, values ...string) *Argument {
	a := &Argument{
		Description: description,
		TakesValue:  true,
		Multiple:    true,
		Hint:        "may be repeated, each one of: " + strings.Join(values, ", "),
		Validate: func(_ context.Context, _ any, raw []string, _ bool) (any, error) {
			if len(raw) == 0 {
				return nil, fmt.Errorf("expects at least one value but received none")
			}
			conv := enumConverter(values)
			out := make([]string, 0, len(raw))
			var invalid []string
			for _, r := range raw {
				v, err := conv(r)
				if err != nil {
					invalid = append(invalid, r)
					continue
				}
				out = append(out, v)
			}
			if len(invalid) > 0 {
				return nil, fmt.Errorf("invalid values %s (expected one of: %s)",
					strings.Join(invalid, ", "), strings.Join(values, ", "))
			}
			return out, nil
		},
		Reduce: func(current, next any) any {
			acc, _ := current.([]string)
			return append(acc, next.([]string)...)
		},
	}
	return a
}

// mapEntry is one validated occurrence of a Map argument.
type mapEntry struct {
	key    string
	values []string
}

// Map is a repeatable key/value-list argument. The first token of each
// occurrence is the key, the remaining tokens are that key's values.
// Occurrences with distinct keys merge into one map; reusing a key is an
// error.
func Map(description string) *Argument {
	return &Argument{
		Description: description,
		TakesValue:  true,
		Multiple:    true,
		Hint:        "key followed by values, may be repeated",
		Validate: func(_ context.Context, current any, raw []string, _ bool) (any, error) {
			if len(raw) == 0 {
				return nil, fmt.Errorf("expects a key but received none")
			}
			key := raw[0]
			if acc, ok := current.(map[string][]string); ok {
				for existing := range acc {
					if strings.EqualFold(existing, key) {
						return nil, fmt.Errorf("key %s given more than once", key)
					}
				}
			}
			return mapEntry{key: key, values: append([]string{}, raw[1:]...)}, nil
		},
		Reduce: func(current, next any) any {
			acc, _ := current.(map[string][]string)
			if acc == nil {
				acc = make(map[string][]string)
			}
			e := next.(mapEntry)
			acc[e.key] = e.values
			return acc
		},
	}
}

// parseNumber accepts standard decimal integer and float tokens.
func parseNumber(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %s", raw)
	}
	return v, nil
}

// enumConverter matches case-insensitively and canonicalizes to the
// configured casing.
func enumConverter(values []string) func(string) (string, error) {
	return func(raw string) (string, error) {
		for _, v := range values {
			if strings.EqualFold(v, raw) {
				return v, nil
			}
		}
		return "", fmt.Errorf("invalid value %s (expected one of: %s)", raw, strings.Join(values, ", "))
	}
}
