// Package scoring turns a validated set of six 1-5 answers into a lag score,
// a drift category and a weakest dimension. Every function here is pure and
// deterministic: the server and any offline client computing a preview must
// agree bit-for-bit on the same input.
package scoring

import (
	"fmt"
	"math"

	"github.com/recenterhq/driftcheck/pkg/models"
)

// softening keeps the theoretical maximum at 80 rather than 100 so that a
// week of all-1 answers still reads as recoverable.
const softening = 0.8

// LagScore maps answers to an integer drift score. Per dimension the drift is
// (5-answer)/4, so 0 when fully aligned and 1 at maximum misalignment. The
// six drifts are averaged, scaled to 100, softened and rounded half-up.
// Input must already be validated; see models.Answers.Validate.
func LagScore(a models.Answers) int {
	var total float64
	for _, d := range models.Dimensions {
		total += float64(5-a.Get(d)) / 4
	}
	avg := total / float64(len(models.Dimensions))
	score := int(math.Floor(avg*100*softening + 0.5))

	// the formula cannot leave [0,80], clamp anyway
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// DriftCategory buckets a score in [0,100] into one of the five severity
// bands. Scores outside [0,100] are the caller's bug; clamp before calling.
func DriftCategory(score int) models.Category {
	switch {
	case score < 20:
		return models.CategoryAligned
	case score < 35:
		return models.CategoryMild
	case score < 55:
		return models.CategoryModerate
	case score < 75:
		return models.CategoryHeavy
	default:
		return models.CategoryCritical
	}
}

// WeakestDimension returns the dimension with the lowest answer, scanning in
// canonical order so ties always resolve to the earliest dimension. The
// stability matters: repeated check-ins with the same answers must diagnose
// the same axis.
func WeakestDimension(a models.Answers) models.Dimension {
	weakest := models.Dimensions[0]
	lowest := a.Get(weakest)
	for _, d := range models.Dimensions[1:] {
		if v := a.Get(d); v < lowest {
			weakest = d
			lowest = v
		}
	}
	return weakest
}

// Evaluate is a convenience wrapper running the full scoring pass. It
// validates first and returns an error instead of scoring garbage.
func Evaluate(a models.Answers) (score int, cat models.Category, weakest models.Dimension, err error) {
	if err := a.Validate(); err != nil {
		return 0, "", "", fmt.Errorf("invalid answers: %w", err)
	}
	score = LagScore(a)
	return score, DriftCategory(score), WeakestDimension(a), nil
}
