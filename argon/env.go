package argon

import (
	"context"
	"strings"
)

// Environment layer. With a configured prefix, every argument can be seeded
// from PREFIX_SNAKE_NAME before any command-line token is applied, through
// the exact same validate/reduce pipeline. Command-line matches later
// overwrite these values (applyOccurrence resets env-seeded state on the
// first CLI occurrence).

// seedFromEnvironment seeds one argument from the environment snapshot.
// Iterating arguments in declaration order both fixes the seeding order and
// performs the reverse snake-case mapping from variable names back to
// configured names. Presence-only arguments become true on mere presence of
// the variable, whatever its value; other types split the value on ASCII
// space into raw tokens.
func (p *parser) seedFromEnvironment(ctx context.Context, st *argState) error {
	if p.app.envPrefix == "" {
		return nil
	}
	envVar := p.app.envPrefix + "_" + envCase(st.name)
	val, ok := p.env[envVar]
	if !ok {
		return nil
	}

	arg := st.arg
	cur := st.value
	var raw []string
	if arg.TakesValue {
		raw = strings.Split(val, " ")
	} else if arg.Present != nil {
		cur = arg.Present(cur)
	}

	next, err := arg.Validate(ctx, cur, raw, true)
	if err != nil {
		return envValidationError(envVar, err)
	}
	st.value = arg.reduce(cur, next)
	st.envSet = true
	return nil
}
