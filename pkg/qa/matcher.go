package qa

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// MatchKind classifies a lookup result.
type MatchKind int

const (
	MatchNone MatchKind = iota
	MatchExact
	MatchPartial
)

// Match is the outcome of a Q&A lookup.
type Match struct {
	Kind     MatchKind
	Question string // original-cased key that matched
	Answer   string
	Ratio    float64 // similarity of the best candidate, 0-1
}

// Matcher resolves user questions against the static Q&A table.
// Keys are matched case-insensitively; partial matches use a
// sequence-matching similarity ratio against every key.
type Matcher struct {
	threshold float64
	// normalized key -> table index, plus sorted normalized keys so that
	// fuzzy ties resolve to the lexicographically smallest key instead of
	// map iteration order.
	entries  []Entry
	index    map[string]int
	sortKeys []string
}

func NewMatcher(entries []Entry, threshold float64) *Matcher {
	index := make(map[string]int, len(entries))
	sortKeys := make([]string, 0, len(entries))
	for i, e := range entries {
		key := Normalize(e.Question)
		if _, dup := index[key]; dup {
			continue
		}
		index[key] = i
		sortKeys = append(sortKeys, key)
	}
	sort.Strings(sortKeys)

	return &Matcher{
		threshold: threshold,
		entries:   entries,
		index:     index,
		sortKeys:  sortKeys,
	}
}

// Normalize trims and lowercases a question for matching.
func Normalize(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

// Find returns the best match for the user question. Exact normalized
// equality wins outright; otherwise the key with the highest similarity
// ratio at or above the threshold is a partial match.
func (m *Matcher) Find(question string) Match {
	normalized := Normalize(question)
	if normalized == "" {
		return Match{Kind: MatchNone}
	}

	if i, ok := m.index[normalized]; ok {
		return Match{
			Kind:     MatchExact,
			Question: m.entries[i].Question,
			Answer:   m.entries[i].Answer,
			Ratio:    1,
		}
	}

	bestKey := ""
	bestRatio := 0.0
	for _, key := range m.sortKeys {
		// strictly greater: first key in sorted order wins ties
		if ratio := float64(fuzzy.Ratio(normalized, key)) / 100; ratio > bestRatio {
			bestRatio = ratio
			bestKey = key
		}
	}

	if bestKey == "" || bestRatio < m.threshold {
		return Match{Kind: MatchNone, Ratio: bestRatio}
	}

	i := m.index[bestKey]
	return Match{
		Kind:     MatchPartial,
		Question: m.entries[i].Question,
		Answer:   m.entries[i].Answer,
		Ratio:    bestRatio,
	}
}
