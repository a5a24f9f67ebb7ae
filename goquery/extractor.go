// Package goquery implements article block extraction over a goquery
// document tree.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/headlines"
)

// Ensure Extractor implements headlines.Extractor at compile time.
var _ headlines.Extractor = (*Extractor)(nil)

// DefaultLayout matches the story blocks of the news.com.au front page.
var DefaultLayout = headlines.Layout{
	Block:    `div[class*="news-tops_group-"] article[class*="storyblock"]`,
	Category: `a[class*="storyblock_section"]`,
	Title:    `a[class*="storyblock_title_link"]`,
	Summary:  `a[class*="storyblock_standfirst_link"]`,
	Image:    `img[class*="storyblock_img"]`,
}

// Extractor finds article blocks using CSS selectors.
// Extractor holds no mutable state and is safe for concurrent use.
type Extractor struct {
	layout headlines.Layout
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLayout overrides the selectors used by the extractor. Empty
// selectors in layout keep their DefaultLayout value.
func WithLayout(layout headlines.Layout) Option {
	return func(e *Extractor) {
		e.layout = mergeLayout(layout, DefaultLayout)
	}
}

// NewExtractor creates a new Extractor using DefaultLayout unless
// overridden.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{layout: DefaultLayout}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Layout returns the selectors in use.
func (e *Extractor) Layout() headlines.Layout {
	return e.layout
}

// Extract parses html and returns a candidate for every block with a
// non-empty headline and summary, in document order.
func (e *Extractor) Extract(html string) ([]headlines.Candidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, headlines.Errorf(headlines.EPARSE, "failed to parse HTML: %v", err)
	}

	var candidates []headlines.Candidate
	doc.Find(e.layout.Block).Each(func(_ int, block *goquery.Selection) {
		title := text(block, e.layout.Title)
		summary := text(block, e.layout.Summary)
		if title == "" || summary == "" {
			return
		}

		candidates = append(candidates, headlines.Candidate{
			Category: text(block, e.layout.Category),
			Title:    title,
			Summary:  summary,
			URL:      attr(block, e.layout.Title, "href"),
			Image:    attr(block, e.layout.Image, "src"),
		})
	})

	return candidates, nil
}

// text returns the trimmed text of the first element under block matching
// selector, or "" if there is none.
func text(block *goquery.Selection, selector string) string {
	return strings.TrimSpace(block.Find(selector).First().Text())
}

// attr returns the trimmed value of the named attribute on the first
// element under block matching selector, or "" if either is missing.
func attr(block *goquery.Selection, selector, name string) string {
	value, _ := block.Find(selector).First().Attr(name)
	return strings.TrimSpace(value)
}

// mergeLayout fills empty selectors in layout from fallback.
func mergeLayout(layout, fallback headlines.Layout) headlines.Layout {
	if layout.Block == "" {
		layout.Block = fallback.Block
	}
	if layout.Category == "" {
		layout.Category = fallback.Category
	}
	if layout.Title == "" {
		layout.Title = fallback.Title
	}
	if layout.Summary == "" {
		layout.Summary = fallback.Summary
	}
	if layout.Image == "" {
		layout.Image = fallback.Image
	}
	return layout
}
