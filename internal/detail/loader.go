package detail

import (
	"context"
	"fmt"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Snapshot is the result of one load cycle. Spot and Reviews always come from
// the same cycle and HasReviewed is computed against the user the cycle ran for.
type Snapshot struct {
	Spot        *spots.Spot
	Reviews     []spots.Review
	HasReviewed bool
}

type Loader struct {
	client spots.Client
	logger *zap.SugaredLogger
}

func NewLoader(client spots.Client, logger *zap.SugaredLogger) *Loader {
	return &Loader{client: client, logger: logger}
}

// Load fetches the spot and then its reviews. The review request is only sent
// once the spot request has succeeded. A failure at either step is logged and
// returned; callers render it as a missing spot.
func (l *Loader) Load(ctx context.Context, spotID int64, user *session.User) (Snapshot, error) {
	cycle := uuid.NewString()

	spot, err := l.client.GetSpot(ctx, spotID)
	if err != nil {
		l.logger.Errorw("spot load failed", "cycle", cycle, "spot_id", spotID, "step", "spot", "error", err.Error())
		return Snapshot{}, fmt.Errorf("load spot %d: %w", spotID, err)
	}

	reviews, err := l.client.GetReviews(ctx, spotID)
	if err != nil {
		l.logger.Errorw("spot load failed", "cycle", cycle, "spot_id", spotID, "step", "reviews", "error", err.Error())
		return Snapshot{}, fmt.Errorf("load reviews for spot %d: %w", spotID, err)
	}
	if reviews == nil {
		reviews = []spots.Review{}
	}

	snap := Snapshot{Spot: spot, Reviews: reviews}
	if user != nil {
		snap.HasReviewed = HasReviewed(reviews, user)
	}

	l.logger.Debugw("spot loaded", "cycle", cycle, "spot_id", spotID, "reviews", len(reviews))
	return snap, nil
}
