package headlines

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultKeywordLimit is the number of keywords returned when the caller
// does not ask for a specific size.
const DefaultKeywordLimit = 10

// minKeywordLength is the shortest token counted as a keyword.
const minKeywordLength = 3

// stopWords are common function words excluded from keyword counts.
var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "to": {}, "of": {}, "and": {}, "in": {},
	"on": {}, "for": {}, "with": {}, "is": {}, "at": {}, "by": {}, "from": {},
	"has": {}, "this": {}, "that": {}, "it": {}, "as": {}, "be": {}, "are": {},
	"was": {}, "were": {}, "or": {}, "not": {}, "but": {}, "about": {}, "into": {},
}

// Keyword is a word and the number of times it occurs.
type Keyword struct {
	Word  string
	Count int
}

// KeywordTable is a ranked list of keywords, most frequent first.
type KeywordTable []Keyword

// MarshalJSON encodes the table as a JSON object keyed by word. Keys keep
// the table order.
func (t KeywordTable) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, kw := range t {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(kw.Word)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		fmt.Fprintf(&buf, ":%d", kw.Count)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of word counts, keeping key order.
func (t *KeywordTable) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("keyword table: expected object, got %v", tok)
	}

	table := KeywordTable{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		word, ok := tok.(string)
		if !ok {
			return fmt.Errorf("keyword table: expected key, got %v", tok)
		}
		var count int
		if err := dec.Decode(&count); err != nil {
			return fmt.Errorf("keyword table: count for %q: %w", word, err)
		}
		table = append(table, Keyword{Word: word, Count: count})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*t = table
	return nil
}

// RankKeywords counts keywords across the titles and summaries of articles
// and returns the limit most frequent. Words with equal counts keep the
// order in which they first appear.
//
// Returns EINVALID if articles is empty or limit is negative.
func RankKeywords(articles []Article, limit int) (KeywordTable, error) {
	if len(articles) == 0 {
		return nil, Errorf(EINVALID, "articles cannot be empty")
	}
	if limit < 0 {
		return nil, Errorf(EINVALID, "keyword limit must not be negative: %d", limit)
	}

	var sb strings.Builder
	for _, a := range articles {
		sb.WriteString(" ")
		sb.WriteString(a.Title)
		sb.WriteString(" ")
		sb.WriteString(a.Summary)
	}
	text := cases.Lower(language.Und).String(sb.String())

	type entry struct {
		word  string
		count int
		first int
	}
	index := make(map[string]int)
	var entries []entry
	for _, word := range Tokenize(text) {
		if len(word) < minKeywordLength {
			continue
		}
		if _, ok := stopWords[word]; ok {
			continue
		}
		if i, ok := index[word]; ok {
			entries[i].count++
			continue
		}
		index[word] = len(entries)
		entries = append(entries, entry{word: word, count: 1, first: len(entries)})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].first < entries[j].first
	})

	if limit > len(entries) {
		limit = len(entries)
	}
	table := make(KeywordTable, 0, limit)
	for _, e := range entries[:limit] {
		table = append(table, Keyword{Word: e.word, Count: e.count})
	}
	return table, nil
}

// Tokenize splits text into words. Every character other than an ASCII
// letter, an ASCII digit or whitespace acts as a separator, so accented
// and non-Latin letters split words too.
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return ' '
		}
	}, text)
	return strings.Fields(cleaned)
}
