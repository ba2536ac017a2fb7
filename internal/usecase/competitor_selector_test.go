package usecase

import (
	"math"
	"testing"

	"github.com/repulens/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectCompetitors(t *testing.T) {
	t.Run("excludes target by name case-insensitively", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "BLUE DOOR CAFE", Rating: 4.9, ReviewCount: 900},
			{Name: "Red Door Cafe", Rating: 4.1, ReviewCount: 50},
		}

		got := SelectCompetitors(candidates, "Blue Door Cafe", "")

		require.Len(t, got, 1)
		assert.Equal(t, "Red Door Cafe", got[0].Name)
	})

	t.Run("lowercasing does not fold sharp s", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "STRASSE CAFE", Rating: 4.4, ReviewCount: 120},
		}

		got := SelectCompetitors(candidates, "Straße Cafe", "")

		require.Len(t, got, 1)
		assert.Equal(t, "STRASSE CAFE", got[0].Name)
	})

	t.Run("excludes target by provider id", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "Blue Door Cafe & Bakery", ProviderID: "0xtarget", Rating: 4.9, ReviewCount: 900},
			{Name: "Red Door Cafe", ProviderID: "0xother", Rating: 4.1, ReviewCount: 50},
		}

		got := SelectCompetitors(candidates, "Blue Door Cafe", "0xtarget")

		require.Len(t, got, 1)
		assert.Equal(t, "0xother", got[0].ProviderID)
	})

	t.Run("empty target id does not exclude candidates without id", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "Red Door Cafe", Rating: 4.1, ReviewCount: 50},
		}

		got := SelectCompetitors(candidates, "Blue Door Cafe", "")

		assert.Len(t, got, 1)
	})

	t.Run("drops entries without rating or reviews", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "No Rating", ReviewCount: 10},
			{Name: "No Reviews", Rating: 4.0},
			{Name: "Good", Rating: 4.0, ReviewCount: 10},
		}

		got := SelectCompetitors(candidates, "Target", "")

		require.Len(t, got, 1)
		assert.Equal(t, "Good", got[0].Name)
	})

	t.Run("ranks by popularity score and keeps four", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "A", Rating: 5.0, ReviewCount: 3},
			{Name: "B", Rating: 4.2, ReviewCount: 1500},
			{Name: "C", Rating: 4.8, ReviewCount: 200},
			{Name: "D", Rating: 3.9, ReviewCount: 40},
			{Name: "E", Rating: 4.5, ReviewCount: 600},
			{Name: "F", Rating: 4.0, ReviewCount: 10},
		}

		got := SelectCompetitors(candidates, "Target", "")

		require.Len(t, got, MaxCompetitors)
		names := make([]string, len(got))
		for i, b := range got {
			names[i] = b.Name
		}
		assert.Equal(t, []string{"B", "E", "C", "D"}, names)
	})

	t.Run("ties keep input order", func(t *testing.T) {
		candidates := []domain.BusinessRecord{
			{Name: "First", Rating: 4.0, ReviewCount: 100},
			{Name: "Second", Rating: 4.0, ReviewCount: 100},
			{Name: "Third", Rating: 4.0, ReviewCount: 100},
		}

		got := SelectCompetitors(candidates, "Target", "")

		require.Len(t, got, 3)
		assert.Equal(t, "First", got[0].Name)
		assert.Equal(t, "Second", got[1].Name)
		assert.Equal(t, "Third", got[2].Name)
	})

	t.Run("empty input", func(t *testing.T) {
		got := SelectCompetitors(nil, "Target", "0x1")
		assert.Empty(t, got)
	})
}

func TestSelectCompetitors_Properties(t *testing.T) {
	candidates := []domain.BusinessRecord{
		{Name: "Target Biz", ProviderID: "0xt", Rating: 4.9, ReviewCount: 999},
		{Name: "target biz", Rating: 4.9, ReviewCount: 999},
		{Name: "Alias", ProviderID: "0xt", Rating: 4.9, ReviewCount: 999},
		{Name: "P1", Rating: 3.1, ReviewCount: 12},
		{Name: "P2", Rating: 4.4, ReviewCount: 87},
		{Name: "P3", Rating: 0, ReviewCount: 87},
		{Name: "P4", Rating: 4.7, ReviewCount: 0},
		{Name: "P5", Rating: 4.9, ReviewCount: 450},
		{Name: "P6", Rating: 2.5, ReviewCount: 3000},
		{Name: "P7", Rating: 4.6, ReviewCount: 95},
		{Name: "P8", Rating: 3.8, ReviewCount: 8},
	}

	first := SelectCompetitors(candidates, "Target Biz", "0xt")
	second := SelectCompetitors(candidates, "Target Biz", "0xt")

	assert.Equal(t, first, second, "output should be deterministic")
	assert.LessOrEqual(t, len(first), MaxCompetitors)

	for i, b := range first {
		assert.NotEqual(t, "target biz", b.Name)
		assert.NotEqual(t, "Target Biz", b.Name)
		assert.NotEqual(t, "0xt", b.ProviderID)
		assert.NotZero(t, b.Rating)
		assert.NotZero(t, b.ReviewCount)

		if i > 0 {
			prev := first[i-1]
			assert.GreaterOrEqual(t,
				prev.Rating*math.Log(float64(prev.ReviewCount)+1),
				b.Rating*math.Log(float64(b.ReviewCount)+1),
			)
		}
	}
}
