package detail

import (
	"haven/internal/session"
	"haven/internal/spots"
)

const (
	FirstReviewMessage = "Be the first to post a review!"
	NoReviewsMessage   = "No reviews yet."
)

func IsOwner(user *session.User, spot *spots.Spot) bool {
	return user != nil && spot != nil && spot.Owner != nil && user.ID == spot.Owner.ID
}

// HasReviewed scans reviews for one written by user. Anonymous viewers never have.
func HasReviewed(reviews []spots.Review, user *session.User) bool {
	if user == nil {
		return false
	}
	for _, r := range reviews {
		if r.User.ID == user.ID {
			return true
		}
	}
	return false
}

func CanReview(user *session.User, isOwner, hasReviewed bool) bool {
	return user != nil && !isOwner && !hasReviewed
}

// EmptyReviewsMessage is the text shown in place of an empty review list.
func EmptyReviewsMessage(user *session.User, isOwner bool) string {
	if user != nil && !isOwner {
		return FirstReviewMessage
	}
	return NoReviewsMessage
}
