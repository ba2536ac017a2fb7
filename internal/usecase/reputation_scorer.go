package usecase

import (
	"fmt"
	"math"
	"strconv"

	"github.com/repulens/backend/internal/domain"
	"github.com/rotisserie/eris"
)

// Reputation thresholds
const (
	goodReputationRating = 4.3 // Minimum rating for a good reputation verdict
	topTenPercentRating  = 4.6
	topQuarterRating     = 4.3
)

// ScoreReputation compares the target business against its competitors and
// produces the verdict, headline and insights. Competitors are expected to be
// ordered best first.
func ScoreReputation(target domain.BusinessRecord, competitors []domain.BusinessRecord) (*domain.ComparisonResult, error) {
	if len(competitors) == 0 {
		return nil, eris.Wrap(domain.ErrInvalidRequest, "no competitors to score against")
	}

	n := len(competitors)
	var ratingSum float64
	var reviewSum int
	for _, c := range competitors {
		ratingSum += c.Rating
		reviewSum += c.ReviewCount
	}
	avgRating := ratingSum / float64(n)
	avgReviews := float64(reviewSum) / float64(n)

	result := &domain.ComparisonResult{
		TargetBusiness:           target,
		TopCompetitors:           competitors,
		AverageCompetitorRating:  avgRating,
		AverageCompetitorReviews: avgReviews,
		IsGoodReputation:         target.Rating >= goodReputationRating && target.Rating >= avgRating,
	}

	if result.IsGoodReputation {
		result.HeadlineMessage = fmt.Sprintf(
			"Your %s-star rating puts you in the %s—here's how top businesses like yours stay #1.",
			formatOneDecimal(target.Rating), ratingPercentile(target.Rating),
		)

		outperformed := countCompetitors(competitors, func(c domain.BusinessRecord) bool { return c.Rating < target.Rating })
		result.Insights = append(result.Insights,
			fmt.Sprintf("You're outperforming %d out of %d competitors", outperformed, n),
			fmt.Sprintf("Your rating is %s points above the local average", formatOneDecimal(target.Rating-avgRating)),
		)
		if float64(target.ReviewCount) > avgReviews {
			result.Insights = append(result.Insights, fmt.Sprintf(
				"You have %d more reviews than the average competitor",
				int(math.Round(float64(target.ReviewCount)-avgReviews)),
			))
		}
		return result, nil
	}

	top := competitors[0]
	reviewGap := top.ReviewCount - target.ReviewCount
	ratingGap := top.Rating - target.Rating

	if reviewGap > 0 {
		result.HeadlineMessage = fmt.Sprintf("Your competitor %s has %d more reviews than you", top.Name, reviewGap)
	} else {
		result.HeadlineMessage = fmt.Sprintf("Your %s-star rating needs improvement to compete effectively", formatOneDecimal(target.Rating))
	}

	higher := countCompetitors(competitors, func(c domain.BusinessRecord) bool { return c.Rating > target.Rating })
	result.Insights = append(result.Insights, fmt.Sprintf("%d out of %d competitors have higher ratings", higher, n))
	if ratingGap > 0 {
		result.Insights = append(result.Insights, fmt.Sprintf("Top competitor has a %s point higher rating", formatOneDecimal(ratingGap)))
	}
	if reviewGap > 0 {
		result.Insights = append(result.Insights, fmt.Sprintf("You need %d more reviews to match your top competitor", reviewGap))
	}

	return result, nil
}

// ratingPercentile names the tier of a rating that passed the good-reputation
// gate. "above average" is unreachable while the gate equals topQuarterRating.
func ratingPercentile(rating float64) string {
	switch {
	case rating >= topTenPercentRating:
		return "top 10%"
	case rating >= topQuarterRating:
		return "top 25%"
	default:
		return "above average"
	}
}

// formatOneDecimal renders x with one decimal, rounding exact halves away from
// zero. Values that only look like halves in decimal (0.35 is stored just below
// it) keep strconv's correctly rounded result.
func formatOneDecimal(x float64) string {
	// x sits exactly halfway between two tenths only when 4x is an odd integer
	quarters := x * 4
	if quarters == math.Trunc(quarters) && math.Mod(quarters, 2) != 0 {
		return strconv.FormatFloat(math.Copysign(math.Floor(math.Abs(x)*10+0.5)/10, x), 'f', 1, 64)
	}
	return strconv.FormatFloat(x, 'f', 1, 64)
}

func countCompetitors(competitors []domain.BusinessRecord, match func(domain.BusinessRecord) bool) int {
	count := 0
	for _, c := range competitors {
		if match(c) {
			count++
		}
	}
	return count
}
