// Package feedback parses the scoring service's raw feedback string into
// typed categories for display.
//
// The wire format is a "; "-delimited list of clauses, each optionally of the
// form "label: detail". The grammar is fixed only for compatibility with the
// scoring service; it is isolated here so a structured server response could
// replace it without touching the screens.
package feedback

import "strings"

// Category classifies one feedback clause.
type Category string

const (
	CategoryTypo        Category = "typo"
	CategoryMissingWord Category = "missing_word"
	CategoryExtraWord   Category = "extra_word"
	CategorySpacing     Category = "spacing"
	CategoryOther       Category = "other"
)

// Item is one classified feedback clause, ready for rendering.
type Item struct {
	Category Category
	Label    string
	Detail   string
}

// rule maps a keyword found in a clause to a category. Rules are checked in
// order; first match wins.
type rule struct {
	keyword  string
	category Category
}

var rules = []rule{
	{"Typos", CategoryTypo},
	{"Missing", CategoryMissingWord},
	{"Extra", CategoryExtraWord},
	{"Spacing", CategorySpacing},
}

var labels = map[Category]string{
	CategoryTypo:        "Typo",
	CategoryMissingWord: "Missing word",
	CategoryExtraWord:   "Extra word",
	CategorySpacing:     "Spacing",
	CategoryOther:       "Note",
}

// Classify splits a raw feedback string into ordered items. Empty feedback
// yields no items. The result is a pure derivation: it is recomputed on every
// render and never cached.
func Classify(feedback string) []Item {
	if strings.TrimSpace(feedback) == "" {
		return nil
	}

	var items []Item
	for _, clause := range strings.Split(feedback, "; ") {
		if strings.TrimSpace(clause) == "" {
			continue
		}
		items = append(items, classifyClause(clause))
	}
	return items
}

func classifyClause(clause string) Item {
	category := CategoryOther
	for _, r := range rules {
		if strings.Contains(clause, r.keyword) {
			category = r.category
			break
		}
	}

	detail := clause
	if _, after, ok := strings.Cut(clause, ": "); ok {
		detail = after
	}

	return Item{
		Category: category,
		Label:    labels[category],
		Detail:   detail,
	}
}
