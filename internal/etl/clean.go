package etl

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Conservative allow-set: word characters, whitespace and basic
	// punctuation. Everything else is dropped.
	disallowedRe = regexp.MustCompile(`[^\w\s.,!?-]`)
	tagRe        = regexp.MustCompile(`<[^>]+>`)
)

// CleanHTML strips markup from a description and normalizes the remaining
// text: runs of whitespace collapse to a single space and characters
// outside the allow-set are removed.
func CleanHTML(text string) string {
	if text == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(text))
	if err == nil {
		text = doc.Text()
	} else {
		text = tagRe.ReplaceAllString(text, "")
	}

	text = whitespaceRe.ReplaceAllString(text, " ")
	text = disallowedRe.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// NormalizeSalary reconciles a raw salary range. Absent or negative bounds
// count as no data (0). An inverted range is swapped when both bounds are
// present. The average is the integer midpoint when both bounds are set,
// otherwise whichever bound is present, otherwise 0.
func NormalizeSalary(min, max int) (nmin, nmax, avg int) {
	if min < 0 {
		min = 0
	}
	if max < 0 {
		max = 0
	}

	if min > max && max > 0 {
		min, max = max, min
	}

	switch {
	case min > 0 && max > 0:
		avg = (min + max) / 2
	case min > 0:
		avg = min
	default:
		avg = max
	}

	return min, max, avg
}
