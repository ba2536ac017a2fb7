package serpapi

import (
	"encoding/json"
	"math"
	"regexp"

	"github.com/repulens/backend/internal/domain"
)

// unknownName is used when the provider returns neither name nor title
const unknownName = "Unknown"

var whitespaceRunRegex = regexp.MustCompile(`\s+`)

// rawPlace is a business entry as found in local_results and place_info.
// Every field is optional.
type rawPlace struct {
	Title          *string   `json:"title"`
	Name           *string   `json:"name"`
	Rating         *float64  `json:"rating"`
	Reviews        *float64  `json:"reviews"`
	Address        *string   `json:"address"`
	Phone          *string   `json:"phone"`
	Website        *string   `json:"website"`
	Hours          *string   `json:"hours"`
	Price          *string   `json:"price"`
	Thumbnail      *string   `json:"thumbnail"`
	DataID         *string   `json:"data_id"`
	PlaceID        *string   `json:"place_id"`
	GPSCoordinates *rawPoint `json:"gps_coordinates"`
}

type rawPoint struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// rawKnowledgeGraph is the knowledge panel of a web search
type rawKnowledgeGraph struct {
	Title       *string  `json:"title"`
	Rating      *float64 `json:"rating"`
	ReviewCount *float64 `json:"review_count"`
	Address     *string  `json:"address"`
	Phone       *string  `json:"phone"`
	Website     *string  `json:"website"`
	PlaceID     *string  `json:"place_id"`
	DataID      *string  `json:"data_id"`
}

type mapsResponse struct {
	LocalResults []rawPlace `json:"local_results"`
}

// webResponse keeps local_results raw because the web engine uses an object
// ({"places": [...]}) where the maps engine uses an array.
type webResponse struct {
	KnowledgeGraph *rawKnowledgeGraph `json:"knowledge_graph"`
	LocalResults   json.RawMessage    `json:"local_results"`
}

type webLocalResults struct {
	Places []rawPlace `json:"places"`
}

type rawReviewUser struct {
	Name       *string `json:"name"`
	Thumbnail  *string `json:"thumbnail"`
	Reviews    *int    `json:"reviews"`
	LocalGuide *bool   `json:"local_guide"`
}

type rawReviewResponse struct {
	Date    *string `json:"date"`
	Snippet *string `json:"snippet"`
}

type rawReview struct {
	User     *rawReviewUser     `json:"user"`
	Rating   *float64           `json:"rating"`
	Date     *string            `json:"date"`
	Snippet  *string            `json:"snippet"`
	Likes    *int               `json:"likes"`
	Response *rawReviewResponse `json:"response"`
}

type reviewsResponse struct {
	PlaceInfo *rawPlace   `json:"place_info"`
	Reviews   []rawReview `json:"reviews"`
}

// mapPlace converts a raw provider entry into a BusinessRecord, defaulting
// every missing field.
func mapPlace(raw rawPlace) domain.BusinessRecord {
	name := str(raw.Name)
	if name == "" {
		name = str(raw.Title)
	}
	if name == "" {
		name = unknownName
	}

	record := domain.BusinessRecord{
		Name:        name,
		Rating:      clampRating(raw.Rating),
		ReviewCount: reviewCount(raw.Reviews),
		Address:     str(raw.Address),
		Phone:       str(raw.Phone),
		Website:     str(raw.Website),
		Hours:       str(raw.Hours),
		Price:       str(raw.Price),
		Thumbnail:   str(raw.Thumbnail),
		ProviderID:  str(raw.DataID),
		PlaceID:     str(raw.PlaceID),
	}

	if p := raw.GPSCoordinates; p != nil && p.Latitude != nil && p.Longitude != nil {
		record.Coordinates = &domain.Coordinates{
			Latitude:  *p.Latitude,
			Longitude: *p.Longitude,
		}
	}

	return record
}

// mapKnowledgeGraph converts a knowledge panel into a BusinessRecord. Panels
// without a title are not considered a business.
func mapKnowledgeGraph(kg *rawKnowledgeGraph) (domain.BusinessRecord, bool) {
	title := str(kg.Title)
	if title == "" {
		return domain.BusinessRecord{}, false
	}

	dataID := str(kg.DataID)
	if dataID == "" {
		dataID = "web_" + whitespaceRunRegex.ReplaceAllString(title, "_")
	}

	return domain.BusinessRecord{
		Name:        title,
		Rating:      clampRating(kg.Rating),
		ReviewCount: reviewCount(kg.ReviewCount),
		Address:     str(kg.Address),
		Phone:       str(kg.Phone),
		Website:     str(kg.Website),
		ProviderID:  dataID,
		PlaceID:     str(kg.PlaceID),
	}, true
}

// extractBusinessFromWebSearch picks the single best-guess business of a web
// search: the knowledge panel first, then the first embedded local result.
func extractBusinessFromWebSearch(resp *webResponse) (domain.BusinessRecord, bool) {
	if resp.KnowledgeGraph != nil {
		if record, ok := mapKnowledgeGraph(resp.KnowledgeGraph); ok {
			return record, true
		}
	}

	if len(resp.LocalResults) == 0 {
		return domain.BusinessRecord{}, false
	}

	var local webLocalResults
	if err := json.Unmarshal(resp.LocalResults, &local); err != nil || len(local.Places) == 0 {
		return domain.BusinessRecord{}, false
	}

	return mapPlace(local.Places[0]), true
}

// mapReview converts a raw review, defaulting missing fields
func mapReview(raw rawReview) domain.Review {
	review := domain.Review{
		ReviewerName: "Anonymous",
		Rating:       clampRating(raw.Rating),
		Date:         str(raw.Date),
		Snippet:      str(raw.Snippet),
	}
	if raw.Likes != nil {
		review.Likes = *raw.Likes
	}

	if u := raw.User; u != nil {
		if name := str(u.Name); name != "" {
			review.ReviewerName = name
		}
		review.ReviewerThumbnail = str(u.Thumbnail)
		review.ReviewerReviewCount = u.Reviews
		review.IsLocalGuide = u.LocalGuide
	}

	if r := raw.Response; r != nil {
		review.OwnerResponse = &domain.OwnerResponse{
			Date:    str(r.Date),
			Snippet: str(r.Snippet),
		}
	}

	return review
}

// mapReviewsPage converts the review-detail response. Reviews stays nil when
// the provider did not return a reviews block.
func mapReviewsPage(resp *reviewsResponse) *domain.ReviewsPage {
	page := &domain.ReviewsPage{}
	if resp.PlaceInfo != nil {
		page.PlaceInfo = mapPlace(*resp.PlaceInfo)
	} else {
		page.PlaceInfo = domain.BusinessRecord{Name: unknownName}
	}

	if resp.Reviews != nil {
		page.Reviews = make([]domain.Review, 0, len(resp.Reviews))
		for _, r := range resp.Reviews {
			page.Reviews = append(page.Reviews, mapReview(r))
		}
	}

	return page
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func clampRating(r *float64) float64 {
	if r == nil || math.IsNaN(*r) {
		return 0
	}
	return math.Min(math.Max(*r, 0), 5)
}

func reviewCount(n *float64) int {
	if n == nil || *n < 0 || math.IsNaN(*n) {
		return 0
	}
	return int(math.Round(*n))
}
