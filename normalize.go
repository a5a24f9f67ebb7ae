package headlines

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// deniedCategories lists category substrings that mark promotional or
// off-topic blocks. Matching is case-insensitive.
var deniedCategories = []string{
	"sponsored",
	"realestate",
	"tubi",
	"trending",
	"you may also like",
}

// Normalize cleans a candidate into an article.
// It returns false when the candidate's category is on the denylist or
// when its title or summary is empty after cleaning, in which case the
// whole article is dropped.
func Normalize(c Candidate) (Article, bool) {
	category := CleanText(c.Category)
	if category == "" {
		category = DefaultCategory
	}
	category = capitalize(category)

	if IsDenied(category) {
		return Article{}, false
	}

	image := c.Image
	if image == "" {
		image = PlaceholderImage
	}

	a := Article{
		Category: category,
		Title:    capitalize(CleanText(c.Title)),
		Summary:  capitalize(CleanText(c.Summary)),
		URL:      c.URL,
		Image:    image,
	}
	// Entity decoding can empty a field the extractor saw as non-blank.
	if err := a.Validate(); err != nil {
		return Article{}, false
	}
	return a, true
}

// NormalizeAll normalizes candidates in order, dropping denied ones.
func NormalizeAll(candidates []Candidate) []Article {
	articles := make([]Article, 0, len(candidates))
	for _, c := range candidates {
		if a, ok := Normalize(c); ok {
			articles = append(articles, a)
		}
	}
	return articles
}

// IsDenied reports whether category contains a denylisted substring.
func IsDenied(category string) bool {
	lower := strings.ToLower(category)
	for _, pattern := range deniedCategories {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}

// CleanText decodes HTML entities, collapses runs of whitespace into a
// single space and trims the result.
func CleanText(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(s)), " ")
}

// capitalize upper-cases the first rune of s and leaves the rest alone.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
