package usecase

import (
	"math"
	"sort"

	"github.com/repulens/backend/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxCompetitors is the number of competitors kept for a comparison
const MaxCompetitors = 4

// SelectCompetitors drops the target business and any candidate without a
// rating or review count, then ranks the rest by popularity score and keeps the
// top MaxCompetitors. Ties keep their original order.
func SelectCompetitors(candidates []domain.BusinessRecord, targetName, targetID string) []domain.BusinessRecord {
	lower := cases.Lower(language.Und)
	target := lower.String(targetName)

	selected := make([]domain.BusinessRecord, 0, len(candidates))
	for _, c := range candidates {
		if lower.String(c.Name) == target {
			continue
		}
		if targetID != "" && c.ProviderID == targetID {
			continue
		}
		if c.Rating == 0 || c.ReviewCount == 0 {
			continue
		}
		selected = append(selected, c)
	}

	sort.SliceStable(selected, func(i, j int) bool {
		return popularityScore(selected[i]) > popularityScore(selected[j])
	})

	if len(selected) > MaxCompetitors {
		selected = selected[:MaxCompetitors]
	}
	return selected
}

// popularityScore rewards rating and review volume, damping large review
// counts logarithmically.
func popularityScore(b domain.BusinessRecord) float64 {
	return b.Rating * math.Log(float64(b.ReviewCount)+1)
}
