package domain

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

import "context"

// SearchProvider defines the interface for the third-party local/web search API
type SearchProvider interface {
	// SearchLocal queries the maps/local-business backend. A non-empty
	// location is appended to the query text.
	SearchLocal(ctx context.Context, query, location string) ([]BusinessRecord, error)

	// SearchWeb queries the general web-search backend and returns at most
	// one extracted business.
	SearchWeb(ctx context.Context, query, location string) ([]BusinessRecord, error)

	// GetReviews fetches review details for the business with the given provider id
	GetReviews(ctx context.Context, providerID string) (*ReviewsPage, error)
}
