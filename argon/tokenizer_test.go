package argon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want []chunk
	}{
		{
			name: "empty argv",
			argv: nil,
			want: nil,
		},
		{
			name: "single flag",
			argv: []string{"--name"},
			want: []chunk{
				{head: "--name", first: true, last: true},
			},
		},
		{
			name: "flag with values",
			argv: []string{"--foo-bar", "arg1", "arg2"},
			want: []chunk{
				{head: "--foo-bar", tail: []string{"arg1", "arg2"}, first: true, last: true},
			},
		},
		{
			name: "flag boundary splits chunks",
			argv: []string{"--one", "a", "--two", "b", "c"},
			want: []chunk{
				{head: "--one", tail: []string{"a"}, first: true},
				{head: "--two", tail: []string{"b", "c"}, last: true},
			},
		},
		{
			name: "leading bare token opens a chunk",
			argv: []string{"build", "x", "--flag"},
			want: []chunk{
				{head: "build", tail: []string{"x"}, first: true},
				{head: "--flag", last: true},
			},
		},
		{
			name: "literal separator is terminal",
			argv: []string{"--one", "a", "--", "b", "--two"},
			want: []chunk{
				{head: "--one", tail: []string{"a"}, first: true},
				{head: "--", tail: []string{"b", "--two"}, literal: true, last: true},
			},
		},
		{
			name: "literal separator with nothing after",
			argv: []string{"--one", "--"},
			want: []chunk{
				{head: "--one", first: true},
				{head: "--", tail: []string{}, literal: true, last: true},
			},
		},
		{
			name: "lone literal separator",
			argv: []string{"--"},
			want: []chunk{
				{head: "--", tail: []string{}, literal: true, first: true, last: true},
			},
		},
		{
			name: "short cluster is a head",
			argv: []string{"-fv", "file.txt"},
			want: []chunk{
				{head: "-fv", tail: []string{"file.txt"}, first: true, last: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tokenize(tt.argv)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(chunk{}), cmp.Comparer(equalStringSlices)); diff != "" {
				t.Errorf("tokenize(%v) mismatch (-want +got):\n%s", tt.argv, diff)
			}
		})
	}
}

// equalStringSlices treats nil and empty tails the same; chunk consumers
// never distinguish them.
func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
