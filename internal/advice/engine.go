// Package advice turns the analysis results into an ordered, deduplicated
// list of assessment-design recommendations via a fixed rule table.
package advice

import (
	"fmt"
	"sort"

	"github.com/abhisek/markcurve/internal/bands"
	"github.com/abhisek/markcurve/internal/items"
)

// Rule identifies which rule produced a recommendation.
type Rule string

const (
	RuleBimodal           Rule = "bimodal"
	RuleTooHard           Rule = "too_hard"
	RulePoorDiscriminator Rule = "poor_discriminator"
	RuleGiveaway          Rule = "giveaway"
)

// Recommendation is one immutable advice string plus its originating rule.
type Recommendation struct {
	Text string
	Rule Rule
}

// Recommend applies the rule table in fixed order. Cohort-level rules run
// first, then the item-level rules in item-identifier order, so identical
// inputs always produce identical output. Duplicate strings are dropped,
// first occurrence wins. An empty result means no issues were found.
func Recommend(split bands.Split, stats []items.Stats) []Recommendation {
	byItem := make([]items.Stats, len(stats))
	copy(byItem, stats)
	sort.SliceStable(byItem, func(a, b int) bool {
		return byItem[a].Item < byItem[b].Item
	})

	var recs []Recommendation
	seen := make(map[string]bool)
	add := func(rule Rule, text string) {
		if seen[text] {
			return
		}
		seen[text] = true
		recs = append(recs, Recommendation{Text: text, Rule: rule})
	}

	if split.Bimodal {
		add(RuleBimodal, "distribution strongly bimodal — add medium-difficulty items or partial credit.")
	}
	for i := range byItem {
		if byItem[i].HasLabel(items.LabelHard) {
			add(RuleTooHard, fmt.Sprintf("%s too hard — split or add partial credit.", byItem[i].Item))
		}
	}
	for i := range byItem {
		if byItem[i].HasLabel(items.LabelPoorDiscriminator) {
			add(RulePoorDiscriminator, fmt.Sprintf("%s does not discriminate well — review or remove.", byItem[i].Item))
		}
	}
	for i := range byItem {
		if byItem[i].HasLabel(items.LabelEasy) && byItem[i].HasLabel(items.LabelPoorDiscriminator) {
			add(RuleGiveaway, fmt.Sprintf("%s is a low-value giveaway — reduce weight or replace.", byItem[i].Item))
		}
	}
	return recs
}
