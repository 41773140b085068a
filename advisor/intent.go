// Package advisor turns a projection summary and sanity check into short
// founder-facing advice, optionally narrated by a language model.
package advisor

import (
	"strings"
)

type Intent string

const (
	IntentRunway        Intent = "runway"
	IntentBurn          Intent = "burn"
	IntentGrowth        Intent = "growth"
	IntentUnitEconomics Intent = "unit_economics"
	IntentHiring        Intent = "hiring"
	IntentGeneral       Intent = "general"
)

// strategy binds an intent to the words that select it and the rules that
// answer it.
type strategy struct {
	intent   Intent
	keywords []string
	advise   func(Facts) []string
}

// strategies is ordered; on equal keyword hits the earlier entry wins.
var strategies = []strategy{
	{IntentRunway, []string{"runway", "run out", "zero cash", "cash out", "last", "survive", "fundrais", "raise"}, runwayAdvice},
	{IntentBurn, []string{"burn", "spend", "cost", "expense", "opex", "cut"}, burnAdvice},
	{IntentGrowth, []string{"growth", "grow", "mrr", "revenue", "customer", "churn", "expansion"}, growthAdvice},
	{IntentUnitEconomics, []string{"ltv", "cac", "payback", "unit economics", "margin", "arpu", "pricing"}, unitEconomicsAdvice},
	{IntentHiring, []string{"hire", "hiring", "headcount", "team", "salary", "salaries", "people"}, hiringAdvice},
}

// Classify maps a free-text question onto the intent whose keywords it hits
// most often. Questions with no hits are general.
func Classify(question string) Intent {
	q := strings.ToLower(question)
	best, bestHits := IntentGeneral, 0
	for _, s := range strategies {
		hits := 0
		for _, k := range s.keywords {
			if strings.Contains(q, k) {
				hits++
			}
		}
		if hits > bestHits {
			best, bestHits = s.intent, hits
		}
	}
	return best
}

func lookup(intent Intent) (strategy, bool) {
	for _, s := range strategies {
		if s.intent == intent {
			return s, true
		}
	}
	return strategy{}, false
}
