package headlines

// DefaultCategory is used when an article block carries no section label.
const DefaultCategory = "Top Story"

// PlaceholderImage is used when an article block carries no image.
const PlaceholderImage = "https://placehold.co/600x400"

// Candidate is an article block as found in the page, before cleaning.
// Any field may be empty.
type Candidate struct {
	Category string
	Title    string
	Summary  string
	URL      string
	Image    string
}

// Article is a cleaned, filtered article record.
type Article struct {
	Category string `json:"category"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	URL      string `json:"url"`
	Image    string `json:"image"`
}

// Validate returns an error if the article is missing a title or summary.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.Summary == "" {
		return Errorf(EINVALID, "article summary required")
	}
	return nil
}

// Extractor finds article blocks in a markup document.
type Extractor interface {
	// Extract parses html and returns one candidate per article block
	// that has both a headline and a summary, in document order.
	// Returns EPARSE if the document tree cannot be built.
	Extract(html string) ([]Candidate, error)
}
