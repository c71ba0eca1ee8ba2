package wikistat

import (
	"fmt"
	"strings"
)

// WordCount is the unique word statistic reported for a page.
type WordCount struct {
	Title  string
	Unique int
}

// NewWordCount counts the unique words in text and attributes them to title.
func NewWordCount(title, text string) WordCount {
	return WordCount{Title: title, Unique: CountUniqueWords(text)}
}

// String renders the count as a single output line.
func (w WordCount) String() string {
	return fmt.Sprintf("%s: %d unique words", w.Title, w.Unique)
}

// CountUniqueWords splits text on whitespace and returns the number of
// distinct tokens. Comparison is case-sensitive and tokens are not
// normalized, so "Go" and "go" count twice.
func CountUniqueWords(text string) int {
	seen := make(map[string]struct{})
	for _, word := range strings.Fields(text) {
		seen[word] = struct{}{}
	}
	return len(seen)
}
