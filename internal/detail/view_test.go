package detail

import (
	"encoding/json"
	"testing"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewLoaded(t *testing.T) {
	snap := Snapshot{
		Spot:    spotFixture(7, 1, "Cabin"),
		Reviews: []spots.Review{reviewFixture(1, 20, 4), reviewFixture(2, 21, 5)},
	}

	v := NewView(StatusLoaded, 7, snap, nil)
	require.NotNil(t, v.Spot)
	assert.Equal(t, "Cabin", v.Spot.Name)
	assert.Equal(t, "Bend, OR, USA", v.Spot.Location)
	assert.Equal(t, "Hosted by Ana Lee", v.Spot.Host)
	assert.Equal(t, "$125.00 night", v.Spot.Price)
	assert.NotEmpty(t, v.Spot.Images.Large)
	assert.Len(t, v.Spot.Images.Small, 4)

	assert.Equal(t, "4.50", v.Rating.Average)
	assert.Equal(t, "2 Reviews", v.Rating.CountLabel)
	assert.False(t, v.CanReview)
	assert.Empty(t, v.EmptyMessage)

	require.Len(t, v.Reviews, 2)
	assert.Equal(t, "Sam", v.Reviews[0].Author)
	assert.Equal(t, "March 2024", v.Reviews[0].Date)
	assert.Equal(t, "Lovely place to stay", v.Reviews[0].Body)
}

func TestNewViewOwnerWithoutReviews(t *testing.T) {
	snap := Snapshot{Spot: spotFixture(7, 1, "Cabin"), Reviews: []spots.Review{}}

	v := NewView(StatusLoaded, 7, snap, &session.User{ID: 1})
	assert.True(t, v.IsOwner)
	assert.False(t, v.CanReview)
	assert.Equal(t, "No reviews yet.", v.EmptyMessage)
	assert.Equal(t, "New", v.Rating.Average)
	assert.False(t, v.Rating.ShowCount)
}

func TestNewViewGuestWithoutReviews(t *testing.T) {
	snap := Snapshot{Spot: spotFixture(7, 1, "Cabin"), Reviews: []spots.Review{}}

	v := NewView(StatusLoaded, 7, snap, &session.User{ID: 2})
	assert.False(t, v.IsOwner)
	assert.True(t, v.CanReview)
	assert.Equal(t, "Be the first to post a review!", v.EmptyMessage)
}

func TestNewViewAlreadyReviewed(t *testing.T) {
	snap := Snapshot{
		Spot:        spotFixture(7, 1, "Cabin"),
		Reviews:     []spots.Review{reviewFixture(1, 2, 5)},
		HasReviewed: true,
	}

	v := NewView(StatusLoaded, 7, snap, &session.User{ID: 2})
	assert.True(t, v.HasReviewed)
	assert.False(t, v.CanReview)
}

func TestNewViewOwnerReviewCountsTowardAverage(t *testing.T) {
	snap := Snapshot{
		Spot:    spotFixture(7, 1, "Cabin"),
		Reviews: []spots.Review{reviewFixture(1, 1, 1), reviewFixture(2, 2, 5)},
	}

	v := NewView(StatusLoaded, 7, snap, nil)
	assert.Equal(t, "3.00", v.Rating.Average)
}

func TestNewViewWithoutSpot(t *testing.T) {
	v := NewView(StatusLoaded, 7, Snapshot{}, nil)
	assert.Equal(t, StatusNotFound, v.Status)
	assert.Nil(t, v.Spot)

	v = NewView(StatusLoading, 7, Snapshot{}, nil)
	assert.Equal(t, StatusLoading, v.Status)
	assert.Empty(t, v.Reviews)
}

func TestViewJSONStatus(t *testing.T) {
	raw, err := json.Marshal(NewView(StatusNotFound, 3, Snapshot{}, nil))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"status":"not_found"`)
	assert.NotContains(t, string(raw), `"spot"`)
}
