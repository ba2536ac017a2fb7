package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest is returned when a required input is missing
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNotFound is wrapped by every NotFoundError
	ErrNotFound = errors.New("not found")

	// ErrProviderUnavailable is returned when no search API key is configured
	ErrProviderUnavailable = errors.New("search provider unavailable: SERP_API key not configured")

	// ErrRateLimited is returned when a client exceeds its request budget
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ProviderError is returned when the search provider answers with a non-success
// response or cannot be reached at all (StatusCode 0).
type ProviderError struct {
	Engine     string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("SerpAPI %s error: %s", e.Engine, e.Body)
	}
	return fmt.Sprintf("SerpAPI %s error: %d - %s", e.Engine, e.StatusCode, e.Body)
}

// DebugInfo carries the search parameters behind a not-found outcome so that
// callers can guide the user towards a better query.
type DebugInfo struct {
	SearchedFor      string       `json:"searchedFor,omitempty" yaml:"searchedFor,omitempty"`
	Location         string       `json:"location,omitempty" yaml:"location,omitempty"`
	SearchMethod     string       `json:"searchMethod,omitempty" yaml:"searchMethod,omitempty"`
	Tip              string       `json:"tip,omitempty" yaml:"tip,omitempty"`
	OriginalSearch   string       `json:"originalSearch,omitempty" yaml:"originalSearch,omitempty"`
	CompetitorSearch string       `json:"competitorSearch,omitempty" yaml:"competitorSearch,omitempty"`
	FoundBusinesses  *int         `json:"foundBusinesses,omitempty" yaml:"foundBusinesses,omitempty"`
	YourBusiness     *BusinessRef `json:"yourBusiness,omitempty" yaml:"yourBusiness,omitempty"`
}

// BusinessRef is a short reference to a resolved business
type BusinessRef struct {
	Name    string `json:"name" yaml:"name"`
	Address string `json:"address" yaml:"address"`
}

// NotFoundError describes an empty result together with remediation guidance.
// It is an expected outcome, not a failure of the system.
type NotFoundError struct {
	Message    string
	Suggestion string
	DebugInfo  *DebugInfo
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
