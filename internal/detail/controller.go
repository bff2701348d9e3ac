package detail

import (
	"context"
	"sync"

	"haven/internal/session"

	"go.uber.org/zap"
)

type SnapshotLoader interface {
	Load(ctx context.Context, spotID int64, user *session.User) (Snapshot, error)
}

// Controller owns the detail view of one viewer. Every Navigate starts a new
// load cycle with its own generation; a cycle that finishes after a newer one
// has started is dropped, so a slow response for an old spot or old user can
// never overwrite the current state.
type Controller struct {
	loader SnapshotLoader
	logger *zap.SugaredLogger

	mu         sync.Mutex
	generation uint64
	spotID     int64
	user       *session.User
	status     Status
	snap       Snapshot
}

func NewController(loader SnapshotLoader, logger *zap.SugaredLogger) *Controller {
	return &Controller{loader: loader, logger: logger, status: StatusLoading}
}

// Navigate resets the view to Loading and runs a full load for spotID as seen
// by user. It returns the view as it stands once this cycle has finished.
func (c *Controller) Navigate(ctx context.Context, spotID int64, user *session.User) View {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.spotID = spotID
	c.user = user
	c.status = StatusLoading
	c.snap = Snapshot{}
	c.mu.Unlock()

	snap, err := c.loader.Load(ctx, spotID, user)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debugw("discarding stale spot load", "spot_id", spotID, "generation", gen, "current", c.generation)
		return c.viewLocked()
	}

	if err != nil || snap.Spot == nil {
		c.status = StatusNotFound
		c.snap = Snapshot{}
	} else {
		c.status = StatusLoaded
		c.snap = snap
	}
	return c.viewLocked()
}

func (c *Controller) Current() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewLocked()
}

func (c *Controller) viewLocked() View {
	return NewView(c.status, c.spotID, c.snap, c.user)
}
