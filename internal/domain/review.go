package domain

// Review is a single customer review of a business
type Review struct {
	ReviewerName        string         `json:"reviewerName" yaml:"reviewerName"`
	ReviewerThumbnail   string         `json:"reviewerThumbnail,omitempty" yaml:"reviewerThumbnail,omitempty"`
	ReviewerReviewCount *int           `json:"reviewerReviewCount,omitempty" yaml:"reviewerReviewCount,omitempty"`
	IsLocalGuide        *bool          `json:"isLocalGuide,omitempty" yaml:"isLocalGuide,omitempty"`
	Rating              float64        `json:"rating" yaml:"rating"`
	Date                string         `json:"date" yaml:"date"`
	Snippet             string         `json:"snippet" yaml:"snippet"`
	Likes               int            `json:"likes" yaml:"likes"`
	OwnerResponse       *OwnerResponse `json:"ownerResponse,omitempty" yaml:"ownerResponse,omitempty"`
}

// OwnerResponse is the business owner's reply to a review
type OwnerResponse struct {
	Date    string `json:"date" yaml:"date"`
	Snippet string `json:"snippet" yaml:"snippet"`
}

// ReviewsPage is the normalized review-detail response of the provider.
// Reviews is nil when the provider returned no reviews block at all.
type ReviewsPage struct {
	PlaceInfo BusinessRecord
	Reviews   []Review
}

// ReviewsResult is the response of a review lookup
type ReviewsResult struct {
	PlaceInfo    BusinessRecord `json:"placeInfo" yaml:"placeInfo"`
	Reviews      []Review       `json:"reviews" yaml:"reviews"`
	TotalReviews int            `json:"totalReviews" yaml:"totalReviews"`
}
