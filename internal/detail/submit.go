package detail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	ErrSignInRequired = errors.New("sign in to post a review")
	ErrNotEligible    = errors.New("you cannot review this spot")
)

// ReviewInput is what the review dialog collects. Stars comes from the star
// rating control, separately from the text.
type ReviewInput struct {
	Review string `json:"review" validate:"required,min=10,max=1000"`
	Stars  int    `json:"stars" validate:"required,min=1,max=5"`
}

// Dialog is the open/close state of the review dialog plus what the user has
// typed so far.
type Dialog struct {
	Open   bool
	Review string
	Stars  int
	Error  string
}

func OpenDialog() Dialog {
	return Dialog{Open: true}
}

// Reopen keeps the user's input and shows err next to the form.
func (d Dialog) Reopen(input ReviewInput, err error) Dialog {
	d.Open = true
	d.Review = input.Review
	d.Stars = input.Stars
	if err != nil {
		d.Error = err.Error()
	}
	return d
}

type Submitter struct {
	client   spots.Client
	loader   SnapshotLoader
	validate *validator.Validate
	logger   *zap.SugaredLogger
}

func NewSubmitter(client spots.Client, loader SnapshotLoader, validate *validator.Validate, logger *zap.SugaredLogger) *Submitter {
	return &Submitter{client: client, loader: loader, validate: validate, logger: logger}
}

// Submit sends a review for spotID on behalf of user. Nothing displayed is
// updated here; the caller reloads the page to see the new review.
func (s *Submitter) Submit(ctx context.Context, spotID int64, user *session.User, input ReviewInput) (*spots.Review, error) {
	if user == nil {
		return nil, ErrSignInRequired
	}

	input.Review = strings.TrimSpace(input.Review)
	if err := s.validate.Struct(input); err != nil {
		return nil, err
	}

	snap, err := s.loader.Load(ctx, spotID, user)
	if err != nil {
		return nil, err
	}
	if !CanReview(user, IsOwner(user, snap.Spot), snap.HasReviewed) {
		return nil, ErrNotEligible
	}

	created, err := s.client.CreateReview(ctx, spotID, spots.NewReview{
		Review:    input.Review,
		Stars:     input.Stars,
		UserID:    user.ID,
		FirstName: user.FirstName,
	})
	if err != nil {
		s.logger.Errorw("review submission failed", "spot_id", spotID, "user_id", user.ID, "error", err.Error())
		return nil, fmt.Errorf("create review for spot %d: %w", spotID, err)
	}

	s.logger.Infow("review submitted", "spot_id", spotID, "user_id", user.ID, "review_id", created.ID)
	return created, nil
}
