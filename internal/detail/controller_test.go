package detail

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedLoader holds each spot's load until its gate is released.
type gatedLoader struct {
	mu      sync.Mutex
	snaps   map[int64]Snapshot
	gates   map[int64]chan struct{}
	started chan int64
	calls   int
}

func newGatedLoader() *gatedLoader {
	return &gatedLoader{
		snaps:   map[int64]Snapshot{},
		gates:   map[int64]chan struct{}{},
		started: make(chan int64, 8),
	}
}

func (l *gatedLoader) Load(ctx context.Context, spotID int64, user *session.User) (Snapshot, error) {
	l.mu.Lock()
	l.calls++
	gate := l.gates[spotID]
	snap, ok := l.snaps[spotID]
	l.mu.Unlock()

	l.started <- spotID
	if gate != nil {
		<-gate
	}
	if !ok {
		return Snapshot{}, errors.New("no such spot")
	}
	if user != nil {
		snap.HasReviewed = HasReviewed(snap.Reviews, user)
	}
	return snap, nil
}

func TestControllerLoadsSpot(t *testing.T) {
	loader := newGatedLoader()
	loader.snaps[1] = Snapshot{Spot: spotFixture(1, 9, "Cabin"), Reviews: []spots.Review{}}

	ctrl := NewController(loader, testLogger())
	assert.Equal(t, StatusLoading, ctrl.Current().Status)

	v := ctrl.Navigate(context.Background(), 1, nil)
	assert.Equal(t, StatusLoaded, v.Status)
	assert.Equal(t, "Cabin", v.Spot.Name)
	assert.Equal(t, v, ctrl.Current())
}

func TestControllerLoadFailureIsNotFound(t *testing.T) {
	ctrl := NewController(newGatedLoader(), testLogger())

	v := ctrl.Navigate(context.Background(), 404, nil)
	assert.Equal(t, StatusNotFound, v.Status)
	assert.Nil(t, v.Spot)
}

func TestControllerNavigationResetsState(t *testing.T) {
	loader := newGatedLoader()
	loader.snaps[1] = Snapshot{Spot: spotFixture(1, 9, "Cabin X"), Reviews: []spots.Review{reviewFixture(1, 5, 5)}}
	loader.snaps[2] = Snapshot{Spot: spotFixture(2, 9, "Loft Y"), Reviews: []spots.Review{}}
	ctrl := NewController(loader, testLogger())

	ctrl.Navigate(context.Background(), 1, nil)

	gate := make(chan struct{})
	loader.mu.Lock()
	loader.gates[2] = gate
	loader.mu.Unlock()

	done := make(chan View)
	go func() { done <- ctrl.Navigate(context.Background(), 2, nil) }()
	<-loader.started
	<-loader.started

	mid := ctrl.Current()
	assert.Equal(t, StatusLoading, mid.Status)
	assert.Nil(t, mid.Spot, "spot X must not be shown while Y loads")
	assert.Empty(t, mid.Reviews)

	close(gate)
	v := <-done
	assert.Equal(t, "Loft Y", v.Spot.Name)
	assert.Equal(t, "New", v.Rating.Average)
}

func TestControllerDiscardsStaleResponse(t *testing.T) {
	loader := newGatedLoader()
	loader.snaps[1] = Snapshot{Spot: spotFixture(1, 9, "Cabin X")}
	loader.snaps[2] = Snapshot{Spot: spotFixture(2, 9, "Loft Y")}
	slow := make(chan struct{})
	loader.gates[1] = slow
	ctrl := NewController(loader, testLogger())

	stale := make(chan View)
	go func() { stale <- ctrl.Navigate(context.Background(), 1, nil) }()
	require.Equal(t, int64(1), <-loader.started)

	v := ctrl.Navigate(context.Background(), 2, nil)
	<-loader.started
	assert.Equal(t, "Loft Y", v.Spot.Name)

	close(slow)
	select {
	case sv := <-stale:
		assert.Equal(t, "Loft Y", sv.Spot.Name)
	case <-time.After(2 * time.Second):
		t.Fatal("stale navigation did not return")
	}

	assert.Equal(t, "Loft Y", ctrl.Current().Spot.Name)
}

func TestControllerUserChangeRecomputesHasReviewed(t *testing.T) {
	loader := newGatedLoader()
	loader.snaps[1] = Snapshot{Spot: spotFixture(1, 9, "Cabin"), Reviews: []spots.Review{reviewFixture(1, 5, 4)}}
	ctrl := NewController(loader, testLogger())

	v := ctrl.Navigate(context.Background(), 1, &session.User{ID: 5})
	<-loader.started
	assert.True(t, v.HasReviewed)
	assert.False(t, v.CanReview)

	v = ctrl.Navigate(context.Background(), 1, &session.User{ID: 6})
	<-loader.started
	assert.False(t, v.HasReviewed)
	assert.True(t, v.CanReview)

	v = ctrl.Navigate(context.Background(), 1, nil)
	<-loader.started
	assert.False(t, v.CanReview)
	assert.Equal(t, 3, loader.calls)
}
