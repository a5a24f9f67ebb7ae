package headlines

import (
	"math"
	"unicode"
)

// NoCategory is reported as the most common category of an empty article list.
const NoCategory = "N/A"

// Metrics summarizes a list of articles for the dashboard.
type Metrics struct {
	MostCommonCategory string  `json:"most_common_category"`
	AvgHeadlineLength  float64 `json:"avg_headline_length"`
}

// Summarize computes dashboard metrics. It never fails; an empty list
// yields NoCategory and an average of zero.
func Summarize(articles []Article) Metrics {
	return Metrics{
		MostCommonCategory: mostCommonCategory(articles),
		AvgHeadlineLength:  averageHeadlineLength(articles),
	}
}

// mostCommonCategory returns the category seen most often. Ties go to
// the category seen first.
func mostCommonCategory(articles []Article) string {
	if len(articles) == 0 {
		return NoCategory
	}

	counts := make(map[string]int)
	var order []string
	for _, a := range articles {
		if _, ok := counts[a.Category]; !ok {
			order = append(order, a.Category)
		}
		counts[a.Category]++
	}

	best, bestCount := "", 0
	for _, category := range order {
		// Strictly greater, so the earlier category keeps a tie.
		if counts[category] > bestCount {
			best, bestCount = category, counts[category]
		}
	}
	return best
}

// averageHeadlineLength returns the mean headline word count rounded to
// one decimal place.
func averageHeadlineLength(articles []Article) float64 {
	if len(articles) == 0 {
		return 0
	}

	total := 0
	for _, a := range articles {
		total += CountWords(a.Title)
	}
	return roundTenths(float64(total) / float64(len(articles)))
}

// CountWords counts maximal runs of letters in s. Digits, hyphens and
// other punctuation separate words, so "Win-Win 2024" has two words.
func CountWords(s string) int {
	n := 0
	inWord := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if !inWord {
				n++
			}
			inWord = true
			continue
		}
		inWord = false
	}
	return n
}

// roundTenths rounds half away from zero to one decimal place.
func roundTenths(v float64) float64 {
	return math.Round(v*10) / 10
}
