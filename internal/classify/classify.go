// Package classify implements the ordered keyword rule engine that assigns a
// two-level category to a deal listing.
package classify

import (
	"regexp"
	"strings"

	"dealsync/internal/model"
)

// Kind defines how a rule's keywords are matched against the listing text.
type Kind string

// Supported rule kinds.
const (
	// KindAny matches when any keyword occurs as a substring.
	KindAny Kind = "any"
	// KindContext matches when at least one primary keyword and at least
	// one context keyword both occur. Used to disambiguate generic terms:
	// "coffee" alone is not a beverage deal, "coffee" plus "k-cup" is.
	KindContext Kind = "context"
	// KindWord matches when any keyword occurs as a whole word, so "watch"
	// does not fire on "watching" or "swatch".
	KindWord Kind = "word"
)

// Rule is one entry of the ordered classification table. Rules are
// read-only configuration; the evaluator never mutates them.
type Rule struct {
	Kind     Kind
	Keywords []string
	Primary  []string
	Context  []string
	Main     string
	Sub      string
}

// Classify evaluates the rule table against the listing's title and link and
// returns the first matching rule's category pair. Rules earlier in the
// table take priority; reordering them changes outcomes. Listings no rule
// matches get (Uncategorized, "").
func Classify(title, link string) (main, sub string) {
	text := strings.ToLower(title + " " + link)
	for _, r := range rules {
		if r.matches(text) {
			return r.Main, r.Sub
		}
	}
	return model.MainUncategorized, ""
}

func (r Rule) matches(text string) bool {
	switch r.Kind {
	case KindAny:
		return containsAny(text, r.Keywords)
	case KindContext:
		return containsAny(text, r.Primary) && containsAny(text, r.Context)
	case KindWord:
		for _, kw := range r.Keywords {
			re, err := regexp.Compile(`\b` + regexp.QuoteMeta(kw) + `\b`)
			if err != nil {
				continue
			}
			if re.MatchString(text) {
				return true
			}
		}
	}
	return false
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
