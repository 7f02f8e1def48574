package fuzzy

import "testing"

func TestClosest(t *testing.T) {
	candidates := []string{"output-dir", "verbose", "tag"}

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{"single deletion", "outpt-dir", 2, "output-dir"},
		{"transposition", "vebrose", 2, "verbose"},
		{"case insensitive", "VERBSE", 2, "verbose"},
		{"too far", "completely-different", 2, ""},
		{"short input ignored", "t", 2, ""},
		{"exact match skipped", "tag", 2, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Closest(tt.input, candidates, tt.max); got != tt.want {
				t.Errorf("Closest(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClosestPrefersCloser(t *testing.T) {
	got := Closest("buildd", []string{"builder", "build"}, 2)
	if got != "build" {
		t.Errorf("Closest = %q, want the candidate at distance 1", got)
	}
}

func TestClosestTieKeepsEarlier(t *testing.T) {
	got := Closest("bost", []string{"best", "bast"}, 2)
	if got != "best" {
		t.Errorf("Closest = %q, want the earlier of two equal candidates", got)
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		max  int
		want int
	}{
		{"", "", 3, 0},
		{"abc", "abc", 3, 0},
		{"abc", "abd", 3, 1},
		{"abc", "ab", 3, 1},
		{"kitten", "sitting", 5, 3},
		{"short", "muchlongerstring", 2, 3}, // length gap alone exceeds max
	}
	for _, tt := range tests {
		if got := distance(tt.a, tt.b, tt.max); got != tt.want {
			t.Errorf("distance(%q, %q, %d) = %d, want %d", tt.a, tt.b, tt.max, got, tt.want)
		}
	}
}
