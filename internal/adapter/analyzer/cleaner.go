package analyzer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Marker match modes for the Gutenberg header/footer.
const (
	// MarkerLongest removes everything from the first "*** start of" to the
	// last "***" in the text, and likewise for "*** end of".
	MarkerLongest = "longest"
	// MarkerShortest removes only the marker spans themselves.
	MarkerShortest = "shortest"
)

// asciiPunctuation is the printable ASCII punctuation set.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var (
	startLongest  = regexp.MustCompile(`(?is)\*\*\* start of.*\*\*\*`)
	endLongest    = regexp.MustCompile(`(?is)\*\*\* end of.*\*\*\*`)
	startShortest = regexp.MustCompile(`(?is)\*\*\* start of.*?\*\*\*`)
	endShortest   = regexp.MustCompile(`(?is)\*\*\* end of.*?\*\*\*`)

	punctuationRe = regexp.MustCompile("[" + regexp.QuoteMeta(asciiPunctuation) + "]")
	digitsRe      = regexp.MustCompile(`[0-9]+`)
	nonLetterRe   = regexp.MustCompile(`[^a-z\s]`)
	spacesRe      = regexp.MustCompile(`\s+`)
)

// Cleaner turns a raw ebook into lower-case ASCII words separated by single
// spaces. It holds no state beyond its options, so Clean is a pure function.
type Cleaner struct {
	start, end  *regexp.Regexp
	foldAccents bool
}

// NewCleaner creates a Cleaner. mode is MarkerLongest or MarkerShortest; an
// empty mode means MarkerLongest.
func NewCleaner(mode string, foldAccents bool) (*Cleaner, error) {
	c := &Cleaner{foldAccents: foldAccents}
	switch mode {
	case "", MarkerLongest:
		c.start, c.end = startLongest, endLongest
	case MarkerShortest:
		c.start, c.end = startShortest, endShortest
	default:
		return nil, fmt.Errorf("unknown marker match mode: %q", mode)
	}
	return c, nil
}

// Clean normalizes text. The result contains only a-z and single spaces,
// with no leading or trailing space, and Clean(Clean(x)) == Clean(x).
func (c *Cleaner) Clean(text string) string {
	// Simple case mapping: "İ" lowers to plain "i", not "i" plus a combining dot.
	text = strings.ToLower(text)
	if c.foldAccents {
		text = foldAccents(text)
	}

	text = c.start.ReplaceAllString(text, "")
	text = c.end.ReplaceAllString(text, "")

	text = punctuationRe.ReplaceAllString(text, " ")
	text = digitsRe.ReplaceAllString(text, " ")

	text = nonLetterRe.ReplaceAllString(text, " ")
	text = spacesRe.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// foldAccents strips combining marks so "café" becomes "cafe" instead of "caf".
func foldAccents(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, text)
	if err != nil {
		return text
	}
	return folded
}
