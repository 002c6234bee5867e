package textnorm

import "testing"

func TestSurface(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{"学校", "学校"},
		{"  食べる  ", "食べる"},
		{"hello   world", "hello world"},
		{"a\t b\nc", "a b c"},
		// NFD か + combining dakuten composes to が
		{"が", "が"},
	}
	for _, c := range cases {
		if got := Surface(c.in); got != c.want {
			t.Errorf("Surface(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSurfaceIdempotent(t *testing.T) {
	inputs := []string{"", " 学校 ", "hello   world", "がんばん", "走った", "A B\tC"}
	for _, in := range inputs {
		once := Surface(in)
		twice := Surface(once)
		if once != twice {
			t.Errorf("Surface not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestHasJapanese(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"word", false},
		{"", false},
		{"学校", true},
		{"たべる", true},
		{"カタカナ", true},
		{"word 学校", true},
		{"123", false},
	}
	for _, c := range cases {
		if got := HasJapanese(c.in); got != c.want {
			t.Errorf("HasJapanese(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestHasLatin(t *testing.T) {
	if !HasLatin("Word") || !HasLatin("has card") {
		t.Error("expected Latin letters to be detected")
	}
	if HasLatin("学校") || HasLatin("123") || HasLatin("") {
		t.Error("expected no Latin letters")
	}
}
