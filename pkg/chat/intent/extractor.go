package intent

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// DefaultKeywords are the recognized intent topics.
func DefaultKeywords() []string {
	return []string{
		"market", "valuation", "inspection", "transaction", "financing",
		"ownership", "investment", "legal", "professional", "platform",
	}
}

// Extractor recognizes intent keywords in free text. Words are reduced to
// stems so inflected forms ("valuations", "inspecting") still hit their
// keyword.
type Extractor struct {
	// stem -> canonical keyword
	stems map[string]string
}

func NewExtractor(keywords []string) *Extractor {
	stems := make(map[string]string, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		stems[stem(kw)] = kw
	}
	return &Extractor{stems: stems}
}

// Extract returns the canonical intent keywords found in the question, in
// order of first appearance, without duplicates.
func (e *Extractor) Extract(question string) []string {
	var intents []string
	seen := map[string]bool{}

	words := strings.FieldsFunc(strings.ToLower(question), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	for _, w := range words {
		kw, ok := e.stems[stem(w)]
		if !ok || seen[kw] {
			continue
		}
		seen[kw] = true
		intents = append(intents, kw)
	}
	return intents
}

func stem(word string) string {
	s, err := snowball.Stem(word, "english", false)
	if err != nil {
		return word
	}
	return s
}
