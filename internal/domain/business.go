package domain

// BusinessRecord is the canonical representation of a single business as
// returned by the search provider after normalization.
type BusinessRecord struct {
	Name        string       `json:"name" yaml:"name"`
	Rating      float64      `json:"rating" yaml:"rating"`
	ReviewCount int          `json:"reviewCount" yaml:"reviewCount"`
	Address     string       `json:"address" yaml:"address"`
	Phone       string       `json:"phone,omitempty" yaml:"phone,omitempty"`
	Website     string       `json:"website,omitempty" yaml:"website,omitempty"`
	Hours       string       `json:"hours,omitempty" yaml:"hours,omitempty"`
	Price       string       `json:"price,omitempty" yaml:"price,omitempty"`
	Thumbnail   string       `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	ProviderID  string       `json:"providerId,omitempty" yaml:"providerId,omitempty"` // SerpAPI data_id
	PlaceID     string       `json:"placeId,omitempty" yaml:"placeId,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty" yaml:"coordinates,omitempty"`
	DistanceKm  *float64     `json:"distanceKm,omitempty" yaml:"distanceKm,omitempty"`
}

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// ComparisonResult is the scored comparison of a target business against its
// top local competitors.
type ComparisonResult struct {
	TargetBusiness           BusinessRecord   `json:"targetBusiness" yaml:"targetBusiness"`
	TopCompetitors           []BusinessRecord `json:"topCompetitors" yaml:"topCompetitors"`
	AverageCompetitorRating  float64          `json:"averageCompetitorRating" yaml:"averageCompetitorRating"`
	AverageCompetitorReviews float64          `json:"averageCompetitorReviews" yaml:"averageCompetitorReviews"`
	IsGoodReputation         bool             `json:"isGoodReputation" yaml:"isGoodReputation"`
	HeadlineMessage          string           `json:"headlineMessage" yaml:"headlineMessage"`
	Insights                 []string         `json:"insights" yaml:"insights"`
}

// AnalyzeRequest represents a reputation analysis request
type AnalyzeRequest struct {
	BusinessName string `json:"businessName" binding:"required"`
	Location     string `json:"location,omitempty"`
}

// SearchRequest represents a business search request
type SearchRequest struct {
	Query    string `json:"query" binding:"required"`
	Location string `json:"location,omitempty"`
}

// BusinessSearchResult is the response of a plain business search
type BusinessSearchResult struct {
	Query        string           `json:"query" yaml:"query"`
	Location     string           `json:"location,omitempty" yaml:"location,omitempty"`
	SearchMethod string           `json:"searchMethod" yaml:"searchMethod"`
	TotalResults int              `json:"totalResults" yaml:"totalResults"`
	Businesses   []BusinessRecord `json:"businesses" yaml:"businesses"`
}
