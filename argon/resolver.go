package argon

import "strings"

// Name resolution: a user-supplied candidate resolves against a set of
// configured names by case-insensitive prefix matching on the dash-separated
// canonical form. The same procedure serves both subcommand tokens and
// --argument tokens.

// resolveKind distinguishes the two failure shapes of resolveName.
type resolveKind int

const (
	resolved resolveKind = iota
	resolveUnknown
	resolveAmbiguous
)

// resolution is the outcome of matching one candidate.
type resolution struct {
	kind resolveKind
	name string   // configured name on success
	hits []string // colliding configured names, in configuration order
}

// resolveName matches candidate against configured names. Exactly one
// prefix match wins. With several, an exact (case-insensitive, non-prefix)
// match breaks the tie, so a full name that happens to prefix a longer one
// still resolves. Zero matches is unknown, the rest is ambiguous.
func resolveName(candidate string, names []string) resolution {
	canon := strings.ToLower(dashCase(candidate))

	var hits []string
	var exact string
	for _, name := range names {
		nc := strings.ToLower(dashCase(name))
		if strings.HasPrefix(nc, canon) {
			hits = append(hits, name)
			if nc == canon {
				exact = name
			}
		}
	}

	switch {
	case len(hits) == 1:
		return resolution{kind: resolved, name: hits[0]}
	case len(hits) > 1 && exact != "":
		return resolution{kind: resolved, name: exact}
	case len(hits) > 1:
		return resolution{kind: resolveAmbiguous, hits: hits}
	default:
		return resolution{kind: resolveUnknown}
	}
}

// dashCase renders a word-boundary-preserving name (camelCase-like) in its
// external dash-separated lower-case form: fooBar2X -> foo-bar2-x. Boundaries
// are lower-to-upper and digit-to-upper transitions.
func dashCase(name string) string {
	return splitWords(name, '-', false)
}

// envCase renders the same word boundaries as underscore-separated upper
// case, the form used for environment variable lookups: fooBar -> FOO_BAR.
func envCase(name string) string {
	return splitWords(name, '_', true)
}

func splitWords(name string, sep byte, upper bool) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	prev := byte(0)
	for i := 0; i < len(name); i++ {
		c := name[i]
		boundary := c >= 'A' && c <= 'Z' && (isLower(prev) || isDigit(prev))
		if boundary {
			b.WriteByte(sep)
		}
		b.WriteByte(caseFold(c, upper))
		prev = c
	}
	return b.String()
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func caseFold(c byte, upper bool) byte {
	if upper && c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	if !upper && c >= 'A' && c <= 'Z' {
		return c - 'A' + 'a'
	}
	return c
}
