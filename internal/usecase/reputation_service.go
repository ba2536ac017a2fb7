package usecase

import (
	"context"
	"strings"

	"github.com/repulens/backend/internal/domain"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Result limits of the pass-through operations
const (
	maxSearchResults = 5
	maxReviews       = 10
)

// ReputationService runs reputation analyses, business searches and review
// lookups against a search provider. It holds no per-request state.
type ReputationService struct {
	provider domain.SearchProvider
	searcher *FallbackSearcher
}

// NewReputationService creates a new reputation service
func NewReputationService(provider domain.SearchProvider) *ReputationService {
	return &ReputationService{
		provider: provider,
		searcher: NewFallbackSearcher(provider),
	}
}

// AnalyzeReputation resolves the business, finds and ranks nearby competitors
// and scores the business against them.
// Flow: fallback search -> competitor query -> local search -> select -> normalize -> score
func (s *ReputationService) AnalyzeReputation(ctx context.Context, request *domain.AnalyzeRequest) (*domain.ComparisonResult, error) {
	if request == nil || strings.TrimSpace(request.BusinessName) == "" {
		return nil, domain.ErrInvalidRequest
	}
	name, location := request.BusinessName, request.Location

	outcome, err := s.searcher.Search(ctx, name, location)
	if err != nil {
		return nil, eris.Wrapf(err, "search for business %q", name)
	}
	if !outcome.Found() {
		return nil, &domain.NotFoundError{
			Message:    "No businesses found",
			Suggestion: "Try a more specific business name or add location details",
			DebugInfo: &domain.DebugInfo{
				SearchedFor:  name,
				Location:     locationOrDefault(location),
				SearchMethod: outcome.SearchMethod,
				Tip:          "For small businesses, try adding the full address or neighborhood",
			},
		}
	}
	target := outcome.Candidates[0]

	competitorSearch := BuildCompetitorQuery(name, location, target.Address)
	found, err := s.provider.SearchLocal(ctx, competitorSearch, "")
	if err != nil {
		return nil, eris.Wrapf(err, "search competitors with %q", competitorSearch)
	}

	competitors := SelectCompetitors(found, target.Name, target.ProviderID)
	if len(competitors) == 0 {
		foundCount := len(found)
		return nil, &domain.NotFoundError{
			Message:    "No competitors found in the area",
			Suggestion: "This might be a unique business in the area, or try searching in a broader location",
			DebugInfo: &domain.DebugInfo{
				OriginalSearch:   name,
				CompetitorSearch: competitorSearch,
				SearchMethod:     outcome.SearchMethod,
				FoundBusinesses:  &foundCount,
				YourBusiness: &domain.BusinessRef{
					Name:    target.Name,
					Address: target.Address,
				},
			},
		}
	}

	zap.L().Info("reputation analysis",
		zap.String("business", target.Name),
		zap.String("search_method", outcome.SearchMethod),
		zap.String("competitor_search", competitorSearch),
		zap.Int("competitors", len(competitors)),
	)

	result, err := ScoreReputation(target, withDistances(target, competitors))
	if err != nil {
		return nil, eris.Wrap(err, "score reputation")
	}
	return result, nil
}

// SearchBusinesses runs the fallback search only and returns the first few
// matches without scoring.
func (s *ReputationService) SearchBusinesses(ctx context.Context, request *domain.SearchRequest) (*domain.BusinessSearchResult, error) {
	if request == nil || strings.TrimSpace(request.Query) == "" {
		return nil, domain.ErrInvalidRequest
	}

	outcome, err := s.searcher.Search(ctx, request.Query, request.Location)
	if err != nil {
		return nil, eris.Wrapf(err, "search for %q", request.Query)
	}
	if !outcome.Found() {
		return nil, &domain.NotFoundError{
			Message:    "No businesses found",
			Suggestion: "Try a different search term or location",
			DebugInfo: &domain.DebugInfo{
				SearchedFor:  request.Query,
				Location:     locationOrDefault(request.Location),
				SearchMethod: outcome.SearchMethod,
			},
		}
	}

	businesses := outcome.Candidates
	if len(businesses) > maxSearchResults {
		businesses = businesses[:maxSearchResults]
	}

	return &domain.BusinessSearchResult{
		Query:        request.Query,
		Location:     request.Location,
		SearchMethod: outcome.SearchMethod,
		TotalResults: len(outcome.Candidates),
		Businesses:   copyRecords(businesses),
	}, nil
}

// GetBusinessReviews returns a summary of the business and its first reviews
func (s *ReputationService) GetBusinessReviews(ctx context.Context, providerID string) (*domain.ReviewsResult, error) {
	if strings.TrimSpace(providerID) == "" {
		return nil, domain.ErrInvalidRequest
	}

	page, err := s.provider.GetReviews(ctx, providerID)
	if err != nil {
		return nil, eris.Wrapf(err, "get reviews for %q", providerID)
	}
	if page == nil || page.Reviews == nil {
		return nil, &domain.NotFoundError{
			Message:    "No reviews found for this business",
			Suggestion: "Check the data_id or try a different business",
		}
	}

	reviews := page.Reviews
	if len(reviews) > maxReviews {
		reviews = reviews[:maxReviews]
	}

	placeInfo := domain.BusinessRecord{
		Name:        page.PlaceInfo.Name,
		Rating:      page.PlaceInfo.Rating,
		ReviewCount: page.PlaceInfo.ReviewCount,
		Address:     page.PlaceInfo.Address,
	}

	return &domain.ReviewsResult{
		PlaceInfo:    placeInfo,
		Reviews:      append([]domain.Review(nil), reviews...),
		TotalReviews: placeInfo.ReviewCount,
	}, nil
}

// withDistances returns copies of the competitors with DistanceKm filled in
// wherever both the target and the competitor have coordinates.
func withDistances(target domain.BusinessRecord, competitors []domain.BusinessRecord) []domain.BusinessRecord {
	result := copyRecords(competitors)
	if target.Coordinates == nil {
		return result
	}

	for i := range result {
		c := result[i].Coordinates
		if c == nil {
			continue
		}
		d := DistanceKm(target.Coordinates.Latitude, target.Coordinates.Longitude, c.Latitude, c.Longitude)
		result[i].DistanceKm = &d
	}
	return result
}

func copyRecords(records []domain.BusinessRecord) []domain.BusinessRecord {
	return append(make([]domain.BusinessRecord, 0, len(records)), records...)
}

func locationOrDefault(location string) string {
	if location == "" {
		return "not specified"
	}
	return location
}
