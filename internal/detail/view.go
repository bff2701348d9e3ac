package detail

import (
	"fmt"

	"haven/internal/session"
	"haven/internal/spots"
)

type Status int

const (
	StatusLoading Status = iota
	StatusLoaded
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not_found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// placeholderImage stands in for every listing photo until spots carry their own images.
const placeholderImage = "https://images.unsplash.com/photo-1567371891232-7265b51bab42?q=80&w=1740&auto=format&fit=crop"

type Images struct {
	Large string   `json:"large"`
	Small []string `json:"small"`
}

type SpotView struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Host        string `json:"host"`
	Price       string `json:"price"`
	Images      Images `json:"images"`
}

type ReviewItem struct {
	ID     int64  `json:"id"`
	Author string `json:"author"`
	Date   string `json:"date"`
	Body   string `json:"body"`
	Stars  int    `json:"stars"`
}

// View is everything the page needs for one render.
type View struct {
	Status       Status        `json:"status"`
	SpotID       int64         `json:"spotId"`
	Spot         *SpotView     `json:"spot,omitempty"`
	Rating       RatingSummary `json:"rating"`
	Reviews      []ReviewItem  `json:"reviews"`
	IsOwner      bool          `json:"isOwner"`
	HasReviewed  bool          `json:"hasReviewed"`
	CanReview    bool          `json:"canReview"`
	EmptyMessage string        `json:"emptyMessage,omitempty"`
}

func NewView(status Status, spotID int64, snap Snapshot, user *session.User) View {
	v := View{Status: status, SpotID: spotID, Reviews: []ReviewItem{}}
	if status != StatusLoaded || snap.Spot == nil {
		if status == StatusLoaded {
			v.Status = StatusNotFound
		}
		return v
	}

	spot := snap.Spot
	v.Spot = &SpotView{
		ID:          spot.ID,
		Name:        spot.Name,
		Location:    fmt.Sprintf("%s, %s, %s", spot.City, spot.State, spot.Country),
		Description: spot.Description,
		Host:        hostLine(spot.Owner),
		Price:       fmt.Sprintf("$%.2f night", spot.Price),
		Images: Images{
			Large: placeholderImage,
			Small: []string{placeholderImage, placeholderImage, placeholderImage, placeholderImage},
		},
	}

	v.Rating = Summarize(snap.Reviews)
	for _, r := range snap.Reviews {
		v.Reviews = append(v.Reviews, ReviewItem{
			ID:     r.ID,
			Author: r.User.FirstName,
			Date:   r.CreatedAt.Format("January 2006"),
			Body:   r.Review,
			Stars:  r.Stars,
		})
	}

	v.IsOwner = IsOwner(user, spot)
	v.HasReviewed = user != nil && snap.HasReviewed
	v.CanReview = CanReview(user, v.IsOwner, v.HasReviewed)
	if len(snap.Reviews) == 0 {
		v.EmptyMessage = EmptyReviewsMessage(user, v.IsOwner)
	}
	return v
}

func hostLine(owner *spots.Owner) string {
	if owner == nil {
		return ""
	}
	return fmt.Sprintf("Hosted by %s %s", owner.FirstName, owner.LastName)
}
