package detail

import (
	"context"
	"time"

	"haven/internal/spots"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) GetSpot(ctx context.Context, spotID int64) (*spots.Spot, error) {
	args := m.Called(ctx, spotID)
	spot, _ := args.Get(0).(*spots.Spot)
	return spot, args.Error(1)
}

func (m *mockClient) GetReviews(ctx context.Context, spotID int64) ([]spots.Review, error) {
	args := m.Called(ctx, spotID)
	reviews, _ := args.Get(0).([]spots.Review)
	return reviews, args.Error(1)
}

func (m *mockClient) CreateReview(ctx context.Context, spotID int64, review spots.NewReview) (*spots.Review, error) {
	args := m.Called(ctx, spotID, review)
	created, _ := args.Get(0).(*spots.Review)
	return created, args.Error(1)
}

func testLogger() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func spotFixture(id, ownerID int64, name string) *spots.Spot {
	return &spots.Spot{
		ID:          id,
		Name:        name,
		City:        "Bend",
		State:       "OR",
		Country:     "USA",
		Description: "A quiet cabin by the river",
		Price:       125,
		Owner:       &spots.Owner{ID: ownerID, FirstName: "Ana", LastName: "Lee"},
	}
}

func reviewFixture(id, authorID int64, stars int) spots.Review {
	return spots.Review{
		ID:        id,
		Review:    "Lovely place to stay",
		Stars:     stars,
		CreatedAt: time.Date(2024, time.March, 3, 12, 0, 0, 0, time.UTC),
		User:      spots.ReviewAuthor{ID: authorID, FirstName: "Sam"},
	}
}
