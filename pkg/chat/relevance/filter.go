package relevance

import (
	"regexp"
	"strings"
)

// DefaultKeywords is the real-estate / valuation vocabulary that marks a
// question as on-topic.
func DefaultKeywords() []string {
	return []string{
		"property", "real estate", "us market", "waivio", "waivit", "waiv",
		"autoval", "fastr", "inspection", "avm", "appraisal", "valuation",
		"mortgage", "home", "loan", "housing", "estate", "comp",
		"comparable", "rent", "land", "broker", "agent", "market trends",
		"equity", "mortgage rates", "rates", "zoning", "title", "deed",
		"lien", "hoa", "reit", "investment", "refinance",
	}
}

// Filter gates off-topic refusals: a question is relevant when it contains
// at least one domain keyword on a word boundary, case-insensitively.
type Filter struct {
	pattern *regexp.Regexp
}

func NewFilter(keywords []string) *Filter {
	quoted := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		quoted = append(quoted, regexp.QuoteMeta(strings.ToLower(k)))
	}
	pattern := regexp.MustCompile(`\b(` + strings.Join(quoted, "|") + `)\b`)
	return &Filter{pattern: pattern}
}

// IsRelevant reports whether the question carries any domain keyword.
// An empty question is never relevant.
func (f *Filter) IsRelevant(question string) bool {
	question = strings.ToLower(strings.TrimSpace(question))
	if question == "" {
		return false
	}
	return f.pattern.MatchString(question)
}
