package spots

import "time"

type Owner struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type Spot struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	City        string  `json:"city"`
	State       string  `json:"state"`
	Country     string  `json:"country"`
	Description string  `json:"description"`
	Price       float64 `json:"price"` // per night, never negative
	Owner       *Owner  `json:"Owner,omitempty"`
}

// ReviewAuthor is the subset of the author the spots API embeds in a review.
type ReviewAuthor struct {
	ID        int64  `json:"id"`
	FirstName string `json:"firstName"`
}

type Review struct {
	ID        int64        `json:"id"`
	Review    string       `json:"review"`
	Stars     int          `json:"stars"` // 1-5
	CreatedAt time.Time    `json:"createdAt"`
	User      ReviewAuthor `json:"User"`
}

// ReviewList is the envelope returned by GET /api/spots/{spotId}/reviews.
type ReviewList struct {
	Reviews []Review `json:"Reviews"`
}

// NewReview is the payload sent to the review-creation endpoint. FirstName
// is the author's display name for APIs that do not resolve it themselves.
type NewReview struct {
	Review    string `json:"review"`
	Stars     int    `json:"stars"`
	UserID    int64  `json:"userId"`
	FirstName string `json:"firstName,omitempty"`
}
