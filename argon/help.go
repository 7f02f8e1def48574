package argon

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/argon-cli/argon/internal/textwrap"
)

const (
	helpIndent    = 2
	helpColumnGap = 3
)

// renderHelp produces the column-aligned, line-wrapped help text for the
// configuration, scoped to the selected subcommand when one is active. The
// synopsis only advertises what the configuration actually accepts: the
// subcommand slot, a [flags] slot when presence-only arguments exist, and an
// operand placeholder when operands are expected.
func renderHelp(app *App, selected string) string {
	width := app.console.Width()
	args := mergedArguments(app, selected)

	var b strings.Builder
	if app.description != "" {
		for _, line := range textwrap.Wrap(app.description, width) {
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(app.console.Bold("Usage:"))
	b.WriteString("\n  ")
	b.WriteString(synopsis(app, selected, args))
	b.WriteString("\n")

	if selected == "" && len(app.commands) > 0 {
		b.WriteString("\n")
		b.WriteString(app.console.Bold("Commands:"))
		b.WriteString("\n")
		rows := make([]textwrap.Row, 0, len(app.commands))
		for _, cmd := range app.commands {
			rows = append(rows, textwrap.Row{Left: cmd.name, Right: cmd.description})
		}
		b.WriteString(textwrap.Columns(rows, helpIndent, helpColumnGap, width))
	}

	if len(args) > 0 {
		b.WriteString("\n")
		b.WriteString(app.console.Bold("Arguments:"))
		b.WriteString("\n")
		rows := make([]textwrap.Row, 0, len(args))
		for _, na := range args {
			rows = append(rows, textwrap.Row{Left: argumentLabel(na), Right: argumentUsage(na)})
		}
		b.WriteString(textwrap.Columns(rows, helpIndent, helpColumnGap, width))
	}

	b.WriteString("\n")
	b.WriteString(app.console.Bold("Example:"))
	b.WriteString("\n  ")
	b.WriteString(exampleInvocation(app, selected, args))
	b.WriteString("\n")
	return strings.TrimRight(b.String(), "\n")
}

// synopsis builds the one-line usage summary.
func synopsis(app *App, selected string, args []namedArgument) string {
	parts := []string{app.name}
	switch {
	case selected != "":
		parts = append(parts, selected)
	case app.requireCommand && len(app.commands) > 0:
		parts = append(parts, "<subcommand>")
	case len(app.commands) > 0:
		parts = append(parts, "[subcommand]")
	}
	for _, na := range args {
		if !na.arg.TakesValue {
			parts = append(parts, "[flags]")
			break
		}
	}
	for _, na := range args {
		if na.arg.TakesValue {
			parts = append(parts, "[--argument value ...]")
			break
		}
	}
	if app.expectOperands {
		parts = append(parts, "["+app.operandsName+" ...]")
	}
	return strings.Join(parts, " ")
}

// argumentLabel renders the left column: dash-form name, alias, value slot.
func argumentLabel(na namedArgument) string {
	label := "--" + dashCase(na.name)
	if na.arg.Alias != 0 {
		label += ", -" + string(na.arg.Alias)
	}
	if na.arg.TakesValue {
		label += " value"
	}
	return label
}

// argumentUsage renders the right column: the description extended with the
// auto-generated usage hints.
func argumentUsage(na namedArgument) string {
	usage := na.arg.Description
	if na.arg.Hint != "" {
		usage += " (" + na.arg.Hint + ")"
	}
	if d := defaultHint(na.arg.Default); d != "" {
		usage += " (default: " + d + ")"
	}
	return strings.TrimSpace(usage)
}

func defaultHint(def any) string {
	switch v := def.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "true"
		}
		return ""
	case string:
		return v
	case []string:
		return strings.Join(v, " ")
	default:
		return formatDefault(v)
	}
}

func formatDefault(v any) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}

// exampleInvocation is the documented sample command line; it names every
// argument in its external form so it resolves cleanly if pasted back.
func exampleInvocation(app *App, selected string, args []namedArgument) string {
	parts := []string{app.name}
	if selected != "" {
		parts = append(parts, selected)
	} else if app.requireCommand && len(app.commands) > 0 {
		parts = append(parts, app.commands[0].name)
	}
	for _, na := range args {
		if na.arg.TakesValue {
			parts = append(parts, "--"+dashCase(na.name), "value")
		} else {
			parts = append(parts, "--"+dashCase(na.name))
		}
	}
	if app.expectOperands {
		parts = append(parts, "--", app.operandsName)
	}
	return strings.Join(parts, " ")
}

// mergedArguments is the help-time view of the working argument set:
// globals, overridden and extended by the selected subcommand.
func mergedArguments(app *App, selected string) []namedArgument {
	merged := append([]namedArgument(nil), app.args...)
	if selected == "" {
		return merged
	}
	idx, ok := app.cmdIndex[selected]
	if !ok {
		return merged
	}
	pos := make(map[string]int, len(merged))
	for i, na := range merged {
		pos[na.name] = i
	}
	for _, na := range app.commands[idx].args {
		if i, exists := pos[na.name]; exists {
			merged[i] = na
			continue
		}
		pos[na.name] = len(merged)
		merged = append(merged, na)
	}
	return merged
}
