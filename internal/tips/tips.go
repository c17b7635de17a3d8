// Package tips selects a corrective suggestion for a (weakest dimension,
// drift category) pair, personalized by the user's feedback history. Pure
// lookup plus an explicit fold over the history: no state, no randomness, so
// client and server pick the same tip for the same input.
package tips

import (
	"fmt"
	"sort"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// rotationThreshold is the weighted feedback score below which the primary
// tip is considered rejected and an alternative is rotated in.
const rotationThreshold = -0.5

// feedbackPoints maps a feedback value to its contribution. Unknown values
// panic: the tables on both sides must agree, silently defaulting would mask
// a contract break.
func feedbackPoints(f models.Feedback) float64 {
	switch f {
	case models.FeedbackHelpful:
		return 2
	case models.FeedbackDidntTry:
		return 0
	case models.FeedbackNotRelevant:
		return -1
	}
	panic(fmt.Sprintf("tips: unknown feedback %q", f))
}

// Select returns the tip for a weakest dimension and category, applying the
// critical override, the feedback-weighted override and alternative rotation.
// history may be nil. Unknown dimension or category panics.
func Select(dim models.Dimension, cat models.Category, history []models.TipFeedbackEntry) models.Tip {
	if cat == models.CategoryCritical {
		if dim == models.DimSleep {
			return criticalSleepRestoration
		}
		if _, ok := primary[dim]; !ok {
			panic(fmt.Sprintf("tips: unknown dimension %q", dim))
		}
		return criticalLoadReduction
	}

	byCat, ok := primary[dim]
	if !ok {
		panic(fmt.Sprintf("tips: unknown dimension %q", dim))
	}
	tip, ok := byCat[cat]
	if !ok {
		panic(fmt.Sprintf("tips: unknown category %q", cat))
	}

	if len(history) == 0 {
		return tip
	}
	if FeedbackScore(dim, cat, history) >= rotationThreshold {
		return tip
	}

	alts := alternatives[dim][cat]
	if len(alts) == 0 {
		// nothing to rotate to, the primary tip stands even under rejection
		return tip
	}
	neg := negativeCount(dim, cat, history)
	if neg == 0 {
		return tip
	}
	return alts[(neg-1)%len(alts)]
}

// KnownPair reports whether dimension and category are part of the tip
// tables. It is the boundary check for untrusted input; past it, Select's
// panics only fire on genuine table drift.
func KnownPair(dim models.Dimension, cat models.Category) bool {
	byCat, ok := primary[dim]
	if !ok {
		return false
	}
	_, ok = byCat[cat]
	return ok
}

// FeedbackScore computes the weighted-recency sentiment for one (dimension,
// category) pair. Matching entries are ordered most-recent-first and entry at
// rank r (0-based) gets weight 1/(r+1); the result is the weighted average of
// the feedback point values. No matching entries scores 0 (neutral).
func FeedbackScore(dim models.Dimension, cat models.Category, history []models.TipFeedbackEntry) float64 {
	matching := filterMatching(dim, cat, history)
	if len(matching) == 0 {
		return 0
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	var pointSum, weightSum float64
	for rank, e := range matching {
		w := 1 / float64(rank+1)
		pointSum += feedbackPoints(e.Feedback) * w
		weightSum += w
	}
	return pointSum / weightSum
}

func filterMatching(dim models.Dimension, cat models.Category, history []models.TipFeedbackEntry) []models.TipFeedbackEntry {
	var out []models.TipFeedbackEntry
	for _, e := range history {
		if e.Dimension == dim && e.Category == cat {
			out = append(out, e)
		}
	}
	return out
}

// negativeCount counts not_relevant entries for the pair; it drives the
// deterministic rotation index so repeated rejections cycle through the
// alternative list instead of repeating one tip.
func negativeCount(dim models.Dimension, cat models.Category, history []models.TipFeedbackEntry) int {
	n := 0
	for _, e := range history {
		if e.Dimension == dim && e.Category == cat && e.Feedback == models.FeedbackNotRelevant {
			n++
		}
	}
	return n
}
