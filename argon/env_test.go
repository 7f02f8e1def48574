package argon

import (
	"reflect"
	"strings"
	"testing"
)

func TestEnvSeedsValue(t *testing.T) {
	app := newTestApp("app").
		Argument("outputDir", String("where to write")).
		EnvPrefix("APP").
		Environ([]string{"APP_OUTPUT_DIR=/from/env"})

	res := mustParse(t, app)
	if got, _ := res.String("outputDir"); got != "/from/env" {
		t.Errorf("outputDir = %q, want %q", got, "/from/env")
	}
}

func TestEnvInertWithoutPrefix(t *testing.T) {
	app := newTestApp("app").
		Argument("outputDir", String("where to write")).
		Environ([]string{"APP_OUTPUT_DIR=/from/env", "OUTPUT_DIR=/also/env"})

	res := mustParse(t, app)
	if got, ok := res.String("outputDir"); ok {
		t.Errorf("outputDir = %q, want unset without a prefix", got)
	}
}

func TestEnvCommandLineWins(t *testing.T) {
	app := newTestApp("app").
		Argument("outputDir", String("where to write")).
		EnvPrefix("APP").
		Environ([]string{"APP_OUTPUT_DIR=/from/env"})

	res := mustParse(t, app, "--output-dir", "/from/cli")
	if got, _ := res.String("outputDir"); got != "/from/cli" {
		t.Errorf("outputDir = %q, want the command line to win", got)
	}
}

func TestEnvResetOnFirstOccurrence(t *testing.T) {
	// The first command-line occurrence discards the environment seed
	// entirely; later occurrences accumulate as usual.
	app := newTestApp("app").
		Argument("tag", Strings("tags")).
		EnvPrefix("APP").
		Environ([]string{"APP_TAG=env1 env2"})

	seeded := mustParse(t, app)
	if got := seeded.Strings("tag"); !reflect.DeepEqual(got, []string{"env1", "env2"}) {
		t.Errorf("tag from env = %v, want [env1 env2]", got)
	}

	overridden := mustParse(t, app, "--tag", "a", "--tag", "b")
	if got := overridden.Strings("tag"); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("tag = %v, want the env seed discarded", got)
	}
}

func TestEnvSplitsOnSpace(t *testing.T) {
	app := newTestApp("app").
		Argument("level", Numbers("levels")).
		EnvPrefix("APP").
		Environ([]string{"APP_LEVEL=1 2 3"})

	res := mustParse(t, app)
	if got := res.Numbers("level"); !reflect.DeepEqual(got, []float64{1, 2, 3}) {
		t.Errorf("level = %v, want [1 2 3]", got)
	}
}

func TestEnvBoolPresence(t *testing.T) {
	// A presence-only argument is true on mere presence of the variable,
	// regardless of its value.
	for _, val := range []string{"", "1", "false", "anything"} {
		app := newTestApp("app").
			Argument("verbose", Bool("chatty", 0)).
			EnvPrefix("APP").
			Environ([]string{"APP_VERBOSE=" + val})

		res := mustParse(t, app)
		if !res.Bool("verbose") {
			t.Errorf("APP_VERBOSE=%q: verbose = false, want true", val)
		}
	}
}

func TestEnvValidationError(t *testing.T) {
	app := newTestApp("app").
		Argument("count", Number("a count")).
		EnvPrefix("APP").
		Environ([]string{"APP_COUNT=notanumber"})

	pe := parseErr(t, app)
	if pe.Kind != ErrEnvValidation {
		t.Fatalf("Kind = %v, want %v", pe.Kind, ErrEnvValidation)
	}
	want := "invalid environment value APP_COUNT: invalid number notanumber"
	if pe.Error() != want {
		t.Errorf("error = %q, want %q", pe.Error(), want)
	}
}

func TestEnvSeedsSubcommandArguments(t *testing.T) {
	app := newTestApp("app").
		Command("build", "compile").
		Argument("outputDir", String("target")).
		End().
		EnvPrefix("APP").
		Environ([]string{"APP_OUTPUT_DIR=/env/dist"})

	res := mustParse(t, app, "build")
	if got, _ := res.String("outputDir"); got != "/env/dist" {
		t.Errorf("outputDir = %q, want the env seed", got)
	}
}

func TestEnvIgnoresUnrelatedVariables(t *testing.T) {
	app := newTestApp("app").
		Argument("name", String("the name")).
		EnvPrefix("APP").
		Environ([]string{"OTHER_NAME=x", "APP_NAMEX=y", "NAME=z"})

	res := mustParse(t, app)
	if got, ok := res.String("name"); ok {
		t.Errorf("name = %q, want unset", got)
	}
}

func TestSplitEnviron(t *testing.T) {
	m := splitEnviron([]string{"A=1", "B=x=y", "MALFORMED", "C="})
	want := map[string]string{"A": "1", "B": "x=y", "C": ""}
	if !reflect.DeepEqual(m, want) {
		t.Errorf("splitEnviron = %v, want %v", m, want)
	}
	if _, ok := m["MALFORMED"]; ok {
		t.Error("entries without = must be dropped")
	}
}

func TestEnvSetMultipleTimesNotTriggered(t *testing.T) {
	// A scalar seeded from the environment and then given once on the
	// command line is not "set multiple times": the seed does not count as
	// an occurrence.
	app := newTestApp("app").
		Argument("name", String("the name")).
		EnvPrefix("APP").
		Environ([]string{"APP_NAME=env"})

	res := mustParse(t, app, "--name", "cli")
	if got, _ := res.String("name"); got != "cli" {
		t.Errorf("name = %q, want %q", got, "cli")
	}

	pe := parseErr(t, app, "--name", "a", "--name", "b")
	if !strings.Contains(pe.Error(), "set multiple times") {
		t.Errorf("error = %q, want the duplicate occurrence rejected", pe.Error())
	}
}
