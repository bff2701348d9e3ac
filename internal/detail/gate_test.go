package detail

import (
	"testing"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	spot := spotFixture(1, 10, "Cabin")

	assert.True(t, IsOwner(&session.User{ID: 10}, spot))
	assert.False(t, IsOwner(&session.User{ID: 11}, spot))
	assert.False(t, IsOwner(nil, spot))
	assert.False(t, IsOwner(&session.User{ID: 10}, nil))
	assert.False(t, IsOwner(&session.User{ID: 10}, &spots.Spot{ID: 1}))
}

func TestHasReviewed(t *testing.T) {
	reviews := []spots.Review{reviewFixture(1, 20, 5), reviewFixture(2, 21, 3)}

	assert.True(t, HasReviewed(reviews, &session.User{ID: 21}))
	assert.False(t, HasReviewed(reviews, &session.User{ID: 22}))
	assert.False(t, HasReviewed(reviews, nil))
	assert.False(t, HasReviewed(nil, &session.User{ID: 21}))
	assert.False(t, HasReviewed([]spots.Review{}, nil))
}

func TestCanReview(t *testing.T) {
	user := &session.User{ID: 1}

	tests := []struct {
		name        string
		user        *session.User
		isOwner     bool
		hasReviewed bool
		want        bool
	}{
		{"anonymous", nil, false, false, false},
		{"owner", user, true, false, false},
		{"already reviewed", user, false, true, false},
		{"eligible", user, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanReview(tt.user, tt.isOwner, tt.hasReviewed))
		})
	}
}

func TestEmptyReviewsMessage(t *testing.T) {
	assert.Equal(t, "Be the first to post a review!", EmptyReviewsMessage(&session.User{ID: 2}, false))
	assert.Equal(t, "No reviews yet.", EmptyReviewsMessage(&session.User{ID: 2}, true))
	assert.Equal(t, "No reviews yet.", EmptyReviewsMessage(nil, false))
}
