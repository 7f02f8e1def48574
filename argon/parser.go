package argon

import (
	"context"
	"fmt"
	"strings"
)

// argState tracks one configured argument through a parse: the descriptor,
// the accumulator threaded through validate/reduce, and how the current
// value was established. Collection defaults are cloned at seed time so the
// accumulator never aliases the configured Default.
type argState struct {
	name     string
	arg      *Argument
	value    any
	envSet   bool // value came from the environment layer
	cliCount int  // command-line occurrences folded so far
}

// parser drives one invocation: defaults, environment seeding, subcommand
// detection, per-chunk classification, and the final operand-policy checks.
// Control flow is strictly sequential; every hook is awaited before the next
// chunk is touched.
type parser struct {
	app *App
	env map[string]string

	entries    []*argState
	byName     map[string]*argState
	operands   []string
	subcommand string
}

func (p *parser) run(ctx context.Context, argv []string) (*Result, error) {
	p.byName = make(map[string]*argState)
	for _, na := range p.app.args {
		if err := p.addEntry(ctx, na); err != nil {
			return nil, err
		}
	}

	chunks := tokenize(argv)
	for _, ch := range chunks {
		var err error
		switch {
		case ch.literal:
			err = p.handleLiteralChunk(ch)
		case ch.head == "--help":
			return nil, p.showHelp()
		case ch.head == "--version" && p.app.version != nil:
			return nil, p.showVersion(ctx)
		case strings.HasPrefix(ch.head, "--"):
			err = p.handleLongFlag(ctx, ch)
		case strings.HasPrefix(ch.head, "-"):
			err = p.handleShortCluster(ctx, ch)
		default:
			err = p.handleBareChunk(ctx, ch)
		}
		if err != nil {
			return nil, err
		}
		if ch.literal {
			break
		}
	}

	if p.app.requireCommand && p.subcommand == "" {
		return nil, newParseError(ErrStructural, "a subcommand is required (one of: %s)", strings.Join(p.commandNames(), ", "))
	}
	if !p.app.expectOperands && len(p.operands) > 0 {
		return nil, newParseError(ErrStructural, "unexpected operands: %s", strings.Join(p.operands, ", "))
	}

	values := make(map[string]any, len(p.entries))
	for _, st := range p.entries {
		values[st.name] = st.value
	}
	var operands []string
	if p.app.expectOperands {
		operands = p.operands
	}
	sub := p.subcommand
	return &Result{
		values:     values,
		operands:   operands,
		subcommand: sub,
		provided:   len(argv) > 0,
		renderHelp: func() string { return renderHelp(p.app, sub) },
	}, nil
}

// addEntry registers an argument in the working set, seeds its default, then
// lets the environment layer override it.
func (p *parser) addEntry(ctx context.Context, na namedArgument) error {
	st := &argState{name: na.name, arg: na.arg, value: na.arg.cloneDefault()}
	p.entries = append(p.entries, st)
	p.byName[na.name] = st
	return p.seedFromEnvironment(ctx, st)
}

// selectCommand activates a subcommand: its argument map merges on top of
// the globals (subcommand names win collisions) and its defaults and
// environment values are seeded the same way the globals were.
func (p *parser) selectCommand(ctx context.Context, cmd *Command) error {
	p.subcommand = cmd.name
	for _, na := range cmd.args {
		if st, ok := p.byName[na.name]; ok {
			st.arg = na.arg
			st.value = na.arg.cloneDefault()
			st.envSet = false
			st.cliCount = 0
			if err := p.seedFromEnvironment(ctx, st); err != nil {
				return err
			}
			continue
		}
		if err := p.addEntry(ctx, na); err != nil {
			return err
		}
	}
	return nil
}

// handleLiteralChunk turns everything after -- into verbatim operands.
// Scanning stops here; the tokenizer guarantees this chunk is last.
func (p *parser) handleLiteralChunk(ch chunk) error {
	if !p.app.expectOperands {
		return newParseError(ErrStructural, "operands are not allowed, but -- was given")
	}
	p.operands = append(p.operands, ch.tail...)
	return nil
}

// handleLongFlag resolves a --argument head against the merged argument set
// and folds the occurrence into its accumulator. An unresolved head that is
// itself a prefix of help or version falls back to those built-ins.
func (p *parser) handleLongFlag(ctx context.Context, ch chunk) error {
	candidate := strings.TrimPrefix(ch.head, "--")
	res := resolveName(candidate, p.argumentNames())
	switch res.kind {
	case resolveAmbiguous:
		return ambiguousError("argument", "--"+candidate, res.hits)
	case resolveUnknown:
		canon := strings.ToLower(dashCase(candidate))
		if strings.HasPrefix("help", canon) {
			return p.showHelp()
		}
		if p.app.version != nil && strings.HasPrefix("version", canon) {
			return p.showVersion(ctx)
		}
		return unknownArgumentError(candidate, p.argumentNames())
	}
	return p.applyOccurrence(ctx, p.byName[res.name], ch.tail, ch)
}

// handleShortCluster sets every presence-only argument named by the
// characters of a -xyz cluster. Trailing values are only legal when they can
// spill into operands from the final chunk.
func (p *parser) handleShortCluster(ctx context.Context, ch chunk) error {
	cluster := strings.TrimPrefix(ch.head, "-")
	if cluster == "" {
		return &ParseError{Kind: ErrUnknownName, Message: "unknown flag: -", Name: "-"}
	}

	tail := ch.tail
	if len(tail) > 0 {
		if ch.last && p.app.expectOperands {
			p.operands = append(p.operands, tail...)
		} else {
			return newParseError(ErrStructural, "%s: does not accept values but received %s",
				ch.head, strings.Join(tail, ", "))
		}
	}

	for _, r := range cluster {
		st := p.findAlias(r)
		if st == nil {
			return &ParseError{Kind: ErrUnknownName, Message: fmt.Sprintf("unknown flag: -%c", r), Name: string(r)}
		}
		if err := p.applyOccurrence(ctx, st, nil, ch); err != nil {
			return err
		}
	}
	return nil
}

// handleBareChunk interprets a dash-free first chunk: subcommand selection
// when subcommands are configured, otherwise an operand run (only legal when
// nothing follows that would need disambiguation).
func (p *parser) handleBareChunk(ctx context.Context, ch chunk) error {
	if !ch.first {
		// The tokenizer only produces bare heads in the first chunk.
		return newParseError(ErrStructural, "unexpected token %s", ch.head)
	}
	if len(p.app.commands) > 0 {
		names := p.commandNames()
		res := resolveName(ch.head, names)
		switch res.kind {
		case resolveUnknown:
			return unknownCommandError(ch.head, names)
		case resolveAmbiguous:
			return ambiguousError("command", ch.head, res.hits)
		}
		if err := p.selectCommand(ctx, p.app.commands[p.app.cmdIndex[res.name]]); err != nil {
			return err
		}
		p.operands = append(p.operands, ch.tail...)
		return nil
	}
	if ch.last {
		p.operands = append(p.operands, ch.head)
		p.operands = append(p.operands, ch.tail...)
		return nil
	}
	all := append([]string{ch.head}, ch.tail...)
	return newParseError(ErrStructural, "cannot interpret %s: values must be given to a named --argument",
		strings.Join(all, ", "))
}

// applyOccurrence runs one occurrence of a matched argument through the
// present/validate/reduce pipeline. Reduce is never skipped after a
// successful validate.
func (p *parser) applyOccurrence(ctx context.Context, st *argState, tail []string, ch chunk) error {
	arg := st.arg

	// A command-line match overwrites whatever the environment seeded.
	if st.envSet && st.cliCount == 0 {
		st.value = arg.cloneDefault()
		st.envSet = false
	}

	cur := st.value
	if arg.Present != nil {
		cur = arg.Present(cur)
	}

	switch {
	case !arg.TakesValue && len(tail) > 0:
		if ch.last && p.app.expectOperands {
			p.operands = append(p.operands, tail...)
			tail = nil
		} else {
			return &ParseError{
				Kind:    ErrStructural,
				Message: fmt.Sprintf("--%s: does not accept values but received %s", dashCase(st.name), strings.Join(tail, ", ")),
				Name:    dashCase(st.name),
			}
		}
	case arg.TakesValue && !arg.Multiple && len(tail) > 1 && ch.last && p.app.expectOperands:
		// Scalars keep exactly one value; the excess spills into operands.
		p.operands = append(p.operands, tail[1:]...)
		tail = tail[:1]
	}

	first := st.cliCount == 0
	next, err := arg.Validate(ctx, cur, tail, first)
	if err != nil {
		return validationError(st.name, err)
	}
	st.value = arg.reduce(cur, next)
	st.cliCount++
	return nil
}

func (p *parser) findAlias(r rune) *argState {
	for _, st := range p.entries {
		if st.arg.Alias == r {
			return st
		}
	}
	return nil
}

func (p *parser) argumentNames() []string {
	names := make([]string, len(p.entries))
	for i, st := range p.entries {
		names[i] = st.name
	}
	return names
}

func (p *parser) commandNames() []string {
	names := make([]string, len(p.app.commands))
	for i, cmd := range p.app.commands {
		names[i] = cmd.name
	}
	return names
}

// showHelp renders help through the console sink and returns the sentinel
// the boundary maps to a successful exit.
func (p *parser) showHelp() error {
	p.app.console.Log(renderHelp(p.app, p.subcommand))
	return ErrHelpShown
}

// showVersion prints the resolved version and, when an update check is
// configured, the update-available line. Check failures are swallowed.
func (p *parser) showVersion(ctx context.Context) error {
	v, err := p.app.version.current(ctx)
	if err != nil {
		return newParseError(ErrStructural, "cannot determine version: %s", err)
	}
	p.app.console.Log(p.app.name + " " + v)
	if msg, ok := p.app.version.updateMessage(ctx, v); ok {
		p.app.console.Log(msg)
	}
	return ErrVersionShown
}
