// Package argon is a declarative command-line argument parsing and
// validation engine. An App describes the accepted subcommands, named
// arguments and behavioral options; Parse turns one argv array plus one
// environment snapshot into a typed Result or a single fatal error.
package argon

import (
	"context"
	"os"
	"strings"

	argio "github.com/argon-cli/argon/io"
)

// namedArgument pairs a configured argument with its declared name. Names
// are declared in a word-boundary-preserving form (camelCase-like) and shown
// externally as --dash-case; declaration order matters for ambiguity
// reporting and environment seeding.
type namedArgument struct {
	name string
	arg  *Argument
}

// Command is a named bundle of arguments scoped additively on top of the
// global ones once the subcommand is selected.
type Command struct {
	name        string
	description string
	args        []namedArgument
	index       map[string]int
}

// CommandBuilder adds arguments to a Command and chains back to the App.
type CommandBuilder struct {
	cmd *Command
	app *App
}

// Argument declares a named argument on the subcommand. A subcommand-scoped
// name takes precedence over a global one with the same name.
func (c *CommandBuilder) Argument(name string, arg *Argument) *CommandBuilder {
	if i, ok := c.cmd.index[name]; ok {
		c.cmd.args[i].arg = arg
		return c
	}
	c.cmd.index[name] = len(c.cmd.args)
	c.cmd.args = append(c.cmd.args, namedArgument{name: name, arg: arg})
	return c
}

// End returns to the App for continued chaining.
func (c *CommandBuilder) End() *App {
	return c.app
}

// App is the configured parser. Build one with New, declare arguments and
// subcommands, then call Parse (library seam) or MustParse (process
// boundary). An App is safe to reuse across Parse calls; parses never share
// accumulators.
type App struct {
	name        string
	description string

	args     []namedArgument
	index    map[string]int
	commands []*Command
	cmdIndex map[string]int

	expectOperands bool
	operandsName   string
	requireCommand bool
	envPrefix      string

	version *Version
	console *argio.Console
	exit    ExitFunc
	environ map[string]string // test override; nil snapshots os.Environ at Parse
}

// New creates an App with the given program name and description.
func New(name, description string) *App {
	return &App{
		name:        name,
		description: description,
		index:       make(map[string]int),
		cmdIndex:    make(map[string]int),
		console:     argio.New(),
		exit:        osExit,
	}
}

// Argument declares a global named argument.
func (a *App) Argument(name string, arg *Argument) *App {
	if i, ok := a.index[name]; ok {
		a.args[i].arg = arg
		return a
	}
	a.index[name] = len(a.args)
	a.args = append(a.args, namedArgument{name: name, arg: arg})
	return a
}

// Command declares a subcommand. At most one subcommand is active per parse,
// selected by the first non-flag token.
func (a *App) Command(name, description string) *CommandBuilder {
	cmd := &Command{name: name, description: description, index: make(map[string]int)}
	a.cmdIndex[name] = len(a.commands)
	a.commands = append(a.commands, cmd)
	return &CommandBuilder{cmd: cmd, app: a}
}

// ExpectOperands allows positional operands and names their help
// placeholder (e.g. "files"). Without it, any operand is a fatal error.
func (a *App) ExpectOperands(placeholder string) *App {
	a.expectOperands = true
	if placeholder == "" {
		placeholder = "operands"
	}
	a.operandsName = placeholder
	return a
}

// RequireCommand makes subcommand selection mandatory.
func (a *App) RequireCommand() *App {
	a.requireCommand = true
	return a
}

// EnvPrefix enables the environment layer: for every configured argument
// name, PREFIX_SNAKE_NAME seeds its value with the same validate/reduce
// pipeline as command-line tokens, at lower precedence. Without a prefix the
// layer is inert.
func (a *App) EnvPrefix(prefix string) *App {
	a.envPrefix = prefix
	return a
}

// Version sets a literal version string and enables --version.
func (a *App) Version(v string) *App {
	a.version = &Version{Current: v}
	return a
}

// VersionCheck installs a full version configuration, including the optional
// update check. Overrides Version.
func (a *App) VersionCheck(v *Version) *App {
	a.version = v
	return a
}

// Console replaces the output sink used by help and version rendering.
func (a *App) Console(c *argio.Console) *App {
	a.console = c
	return a
}

// Environ overrides the environment snapshot, in the "KEY=value" form of
// os.Environ. Pass an empty non-nil slice for a clean environment.
func (a *App) Environ(environ []string) *App {
	a.environ = splitEnviron(environ)
	return a
}

// ExitWith replaces the process-exit primitive. Embedders in long-lived
// processes substitute their own control flow here; it is the single seam
// the boundary uses for every error and for help/version success.
func (a *App) ExitWith(fn ExitFunc) *App {
	a.exit = fn
	return a
}

// Parse runs the engine against argv. It never exits the process: callers
// get either an immutable Result or a *ParseError (or the ErrHelpShown /
// ErrVersionShown sentinels after rendering).
func (a *App) Parse(ctx context.Context, argv []string) (*Result, error) {
	if err := a.compile(); err != nil {
		return nil, err
	}
	env := a.environ
	if env == nil {
		env = splitEnviron(os.Environ())
	}
	p := &parser{app: a, env: env}
	return p.run(ctx, argv)
}

// MustParse is the process boundary: it parses os.Args-style argv and routes
// every outcome through the exit primitive. Help and version terminate with
// code 0, parse failures with code 2; only a successful parse returns.
func (a *App) MustParse(argv []string) *Result {
	res, err := a.Parse(context.Background(), argv)
	if err != nil {
		a.exit(exitCodeFor(err), exitMessageFor(err))
		return nil
	}
	return res
}

// compile rejects configurations the engine cannot honor. The alias rule is
// enforced by construction for the built-in factories; hand-built Argument
// records are checked here.
func (a *App) compile() error {
	aliases := make(map[rune]string)
	check := func(owner string, args []namedArgument) error {
		for _, na := range args {
			if na.arg == nil || na.arg.Validate == nil {
				return newParseError(ErrStructural, "argument %s%s has no validate hook", owner, dashCase(na.name))
			}
			if na.arg.Alias != 0 {
				if na.arg.TakesValue {
					return newParseError(ErrStructural,
						"argument %s%s takes values and cannot have alias -%c", owner, dashCase(na.name), na.arg.Alias)
				}
				if prev, taken := aliases[na.arg.Alias]; taken && prev != na.name {
					return newParseError(ErrStructural,
						"alias -%c declared for both %s and %s", na.arg.Alias, dashCase(prev), dashCase(na.name))
				}
				aliases[na.arg.Alias] = na.name
			}
		}
		return nil
	}
	if err := check("--", a.args); err != nil {
		return err
	}
	for _, cmd := range a.commands {
		if err := check(cmd.name+" --", cmd.args); err != nil {
			return err
		}
	}
	if a.requireCommand && len(a.commands) == 0 {
		return newParseError(ErrStructural, "a subcommand is required but none are configured")
	}
	return nil
}

// splitEnviron turns "KEY=value" pairs into a lookup map.
func splitEnviron(environ []string) map[string]string {
	m := make(map[string]string, len(environ))
	for _, kv := range environ {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			m[kv[:i]] = kv[i+1:]
		}
	}
	return m
}
