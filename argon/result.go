package argon

// Result is the immutable output of a successful parse: every configured
// argument name (global plus selected subcommand) mapped to its final value,
// the ordered operands, the resolved subcommand, and a callback reproducing
// the help text. Constructed once per invocation and never mutated after
// return.
type Result struct {
	values     map[string]any
	operands   []string
	subcommand string
	provided   bool
	renderHelp func() string
}

// Value returns the final accumulated (or defaulted) value for a configured
// argument name. Unknown names return nil.
func (r *Result) Value(name string) any {
	return r.values[name]
}

// String returns the value as a string when set.
func (r *Result) String(name string) (string, bool) {
	v, ok := r.values[name].(string)
	return v, ok
}

// MustString returns the value as a string, or fallback.
func (r *Result) MustString(name, fallback string) string {
	if v, ok := r.String(name); ok {
		return v
	}
	return fallback
}

// Number returns the value as a float64 when set.
func (r *Result) Number(name string) (float64, bool) {
	v, ok := r.values[name].(float64)
	return v, ok
}

// MustNumber returns the value as a float64, or fallback.
func (r *Result) MustNumber(name string, fallback float64) float64 {
	if v, ok := r.Number(name); ok {
		return v
	}
	return fallback
}

// Bool returns the value of a presence-only argument.
func (r *Result) Bool(name string) bool {
	v, _ := r.values[name].(bool)
	return v
}

// Strings returns the accumulated string list.
func (r *Result) Strings(name string) []string {
	v, _ := r.values[name].([]string)
	return v
}

// Numbers returns the accumulated numeric list.
func (r *Result) Numbers(name string) []float64 {
	v, _ := r.values[name].([]float64)
	return v
}

// StringMap returns the merged key/value-list map.
func (r *Result) StringMap(name string) map[string][]string {
	v, _ := r.values[name].(map[string][]string)
	return v
}

// Operands returns the positional operands in order, or nil when the
// configuration disallows operands.
func (r *Result) Operands() []string {
	return r.operands
}

// Subcommand returns the resolved subcommand name, if one was selected.
func (r *Result) Subcommand() (string, bool) {
	return r.subcommand, r.subcommand != ""
}

// Provided reports whether any token was supplied at all.
func (r *Result) Provided() bool {
	return r.provided
}

// Help reproduces the help text for the configuration that produced this
// result, scoped to the selected subcommand when one is active.
func (r *Result) Help() string {
	return r.renderHelp()
}
