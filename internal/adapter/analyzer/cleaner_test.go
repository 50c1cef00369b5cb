package analyzer

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"
)

var cleanAlphabet = regexp.MustCompile(`^([a-z]+( [a-z]+)*)?$`)

func newTestCleaner(t *testing.T, mode string) *Cleaner {
	t.Helper()
	c, err := NewCleaner(mode, false)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

var cleanerSamples = []string{
	"",
	"Hello, World!",
	"  It was the best of times, it was the worst of times...  ",
	"Chapter 1\r\n\r\nCall me Ishmael.\tSome years ago",
	"naïve café — “quoted” 3.14 _under_score_",
	"*** START OF THE PROJECT GUTENBERG EBOOK 84 ***\nFrankenstein\n*** END OF THE PROJECT GUTENBERG EBOOK 84 ***\nlicense",
	"  \v\f",
	"ÀÉÎÕÜ ß ΚΑΛΗΜΕΡΑ",
}

func TestCleaner_Alphabet(t *testing.T) {
	for _, mode := range []string{MarkerLongest, MarkerShortest} {
		c := newTestCleaner(t, mode)
		for _, input := range cleanerSamples {
			out := c.Clean(input)
			if !cleanAlphabet.MatchString(out) {
				t.Errorf("[%s] Clean(%q) = %q contains characters outside [a-z ] or bad spacing", mode, input, out)
			}
		}
	}
}

func TestCleaner_Idempotent(t *testing.T) {
	for _, mode := range []string{MarkerLongest, MarkerShortest} {
		c := newTestCleaner(t, mode)
		for _, input := range cleanerSamples {
			once := c.Clean(input)
			twice := c.Clean(once)
			if once != twice {
				t.Errorf("[%s] Clean not idempotent for %q: %q then %q", mode, input, once, twice)
			}
		}
	}
}

func TestCleaner_Transforms(t *testing.T) {
	c := newTestCleaner(t, MarkerLongest)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"lowercase", "Pride AND Prejudice", "pride and prejudice"},
		{"punctuation to space", "well-known,yes;no", "well known yes no"},
		{"digits to space", "chapter12begins 1813", "chapter begins"},
		{"non ascii letters", "café naïve", "caf na ve"},
		{"collapse whitespace", "a\n\n\tb   c", "a b c"},
		{"trim", "   edges   ", "edges"},
		{"no markers passes through", "*** not a marker ***", "not a marker"},
		{"dotted capital i", "İSTANBUL", "istanbul"},
		{"sharp s", "STRAßE", "stra e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCleaner_StripsMarkerSpan(t *testing.T) {
	c := newTestCleaner(t, MarkerLongest)

	input := "Title page\n*** START OF THE PROJECT GUTENBERG EBOOK X ***body*** END OF THE PROJECT GUTENBERG EBOOK X ***"
	if got := c.Clean(input); got != "title page" {
		t.Errorf("expected marker span removed, got %q", got)
	}

	input = "before *** START OF THE PROJECT GUTENBERG EBOOK X ***body*** END OF THE PROJECT GUTENBERG EBOOK X *** after"
	if got := c.Clean(input); got != "before after" {
		t.Errorf("expected only text outside markers, got %q", got)
	}
}

func TestCleaner_ShortestKeepsBody(t *testing.T) {
	c := newTestCleaner(t, MarkerShortest)

	input := "header\n*** START OF THE PROJECT GUTENBERG EBOOK X ***\nThe body.\n*** END OF THE PROJECT GUTENBERG EBOOK X ***\nfooter"
	if got := c.Clean(input); got != "header the body footer" {
		t.Errorf("expected only markers removed, got %q", got)
	}
}

func TestCleaner_FoldAccents(t *testing.T) {
	c, err := NewCleaner(MarkerLongest, true)
	if err != nil {
		t.Fatal(err)
	}
	if got := c.Clean("Café NAÏVE résumé"); got != "cafe naive resume" {
		t.Errorf("expected accents folded, got %q", got)
	}
}

func TestNewCleaner_UnknownMode(t *testing.T) {
	if _, err := NewCleaner("greedy", false); err == nil {
		t.Error("expected error for unknown marker mode")
	}
}

// randomText builds inputs from markers, punctuation, non-ASCII letters,
// odd whitespace and invalid UTF-8.
func randomText(rng *rand.Rand) string {
	pieces := []string{
		"a", "Z", "q", "*", "***", " start of ", " END OF ", "-", "'", "9", "42",
		"ß", "İ", "é", "Σ", "日本", "\t", "\n", "\r\n", "\v", "\u00a0", "\u2028",
		" ", "  ", "_", "\xff", "\xc3", "\x00",
	}
	var b strings.Builder
	n := rng.Intn(40)
	for i := 0; i < n; i++ {
		b.WriteString(pieces[rng.Intn(len(pieces))])
	}
	return b.String()
}

func TestCleaner_RandomInputs(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tok := NewTokenizer()

	for _, mode := range []string{MarkerLongest, MarkerShortest} {
		for _, fold := range []bool{false, true} {
			c, err := NewCleaner(mode, fold)
			if err != nil {
				t.Fatal(err)
			}
			checkRandomInputs(t, rng, c, tok, mode)
		}
	}
}

func checkRandomInputs(t *testing.T, rng *rand.Rand, c *Cleaner, tok *Tokenizer, mode string) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		input := randomText(rng)
		out := c.Clean(input)

		if !cleanAlphabet.MatchString(out) {
			t.Fatalf("[%s] Clean(%q) = %q contains characters outside [a-z ] or bad spacing", mode, input, out)
		}
		if again := c.Clean(out); again != out {
			t.Fatalf("[%s] Clean not idempotent for %q: %q then %q", mode, input, out, again)
		}
		tokens := tok.Tokenize(out)
		if joined := strings.Join(tokens, " "); joined != out {
			t.Fatalf("[%s] tokens of %q do not rejoin to the cleaned text: %q vs %q", mode, input, joined, out)
		}
	}
}
