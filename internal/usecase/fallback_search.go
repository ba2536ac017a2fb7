package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/repulens/backend/internal/domain"
	"go.uber.org/zap"
)

// Search strategy labels, in the order they are tried
const (
	MethodExactMaps      = "exact_maps"
	MethodSimplifiedMaps = "simplified_maps"
	MethodNearMeMaps     = "near_me_maps"
	MethodGoogleWeb      = "google_web"
)

// searchPunctuationRegex matches characters stripped from the simplified query
var searchPunctuationRegex = regexp.MustCompile("[.,/#!$%^&*;:{}=\\-_`~()]")

// BuildSearchAttempts returns the ordered fallback strategies for a business
// name and optional location.
func BuildSearchAttempts(name, location string) []domain.SearchAttempt {
	nearMe := domain.SearchAttempt{Query: name + " near me", Method: MethodNearMeMaps}
	if location != "" {
		// Same query as the exact attempt when a location is given.
		nearMe = domain.SearchAttempt{Query: name, Location: location, Method: MethodNearMeMaps}
	}

	return []domain.SearchAttempt{
		{Query: name, Location: location, Method: MethodExactMaps},
		{Query: simplifyName(name), Location: location, Method: MethodSimplifiedMaps},
		nearMe,
		{Query: name, Location: location, Method: MethodGoogleWeb, UseWebSearch: true},
	}
}

// simplifyName replaces punctuation with spaces and trims the result
func simplifyName(name string) string {
	return strings.TrimSpace(searchPunctuationRegex.ReplaceAllString(name, " "))
}

// FallbackSearcher runs search strategies in order until one yields candidates
type FallbackSearcher struct {
	provider domain.SearchProvider
}

// NewFallbackSearcher creates a new fallback searcher
func NewFallbackSearcher(provider domain.SearchProvider) *FallbackSearcher {
	return &FallbackSearcher{provider: provider}
}

// Search resolves a business by name using the default strategy order
func (f *FallbackSearcher) Search(ctx context.Context, name, location string) (*domain.SearchOutcome, error) {
	return f.Run(ctx, BuildSearchAttempts(name, location))
}

// Run evaluates the attempts strictly in order and stops at the first one that
// returns candidates. Provider failures of a single attempt are logged and
// treated as an empty result. A missing API key aborts immediately. When every
// attempt failed with a provider error, the last one is returned; otherwise
// exhaustion is reported as an outcome with method "none".
func (f *FallbackSearcher) Run(ctx context.Context, attempts []domain.SearchAttempt) (*domain.SearchOutcome, error) {
	var lastErr error
	failures := 0

	for _, attempt := range attempts {
		candidates, err := f.execute(ctx, attempt)
		if err != nil {
			if errors.Is(err, domain.ErrProviderUnavailable) {
				return nil, err
			}
			zap.L().Warn("search strategy failed",
				zap.String("method", attempt.Method),
				zap.String("query", attempt.Query),
				zap.Error(err),
			)
			lastErr = err
			failures++
			continue
		}

		if len(candidates) > 0 {
			zap.L().Info("search strategy succeeded",
				zap.String("method", attempt.Method),
				zap.Int("candidates", len(candidates)),
			)
			return &domain.SearchOutcome{Candidates: candidates, SearchMethod: attempt.Method}, nil
		}
	}

	if len(attempts) > 0 && failures == len(attempts) {
		return nil, lastErr
	}

	return &domain.SearchOutcome{SearchMethod: domain.SearchMethodNone}, nil
}

func (f *FallbackSearcher) execute(ctx context.Context, attempt domain.SearchAttempt) ([]domain.BusinessRecord, error) {
	if attempt.UseWebSearch {
		candidates, err := f.provider.SearchWeb(ctx, attempt.Query, attempt.Location)
		if len(candidates) > 1 {
			candidates = candidates[:1]
		}
		return candidates, err
	}
	return f.provider.SearchLocal(ctx, attempt.Query, attempt.Location)
}
