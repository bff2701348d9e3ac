package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"haven/internal/detail"
	"haven/internal/ratelimiter"
	"haven/internal/render"
	"haven/internal/session"
	"haven/internal/spots"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeSpotsAPI is an in-memory spots.Client.
type fakeSpotsAPI struct {
	mu      sync.Mutex
	spots   map[int64]*spots.Spot
	reviews map[int64][]spots.Review
	failAll bool
	created []spots.NewReview
	tokens  []string
}

func newFakeSpotsAPI() *fakeSpotsAPI {
	return &fakeSpotsAPI{
		spots: map[int64]*spots.Spot{
			1: {ID: 1, Name: "River Cabin", City: "Bend", State: "OR", Country: "USA", Description: "Quiet",
				Price: 125, Owner: &spots.Owner{ID: 10, FirstName: "Ana", LastName: "Lee"}},
			2: {ID: 2, Name: "City Loft", City: "Austin", State: "TX", Country: "USA", Description: "Central",
				Price: 80, Owner: &spots.Owner{ID: 11, FirstName: "Bo", LastName: "Kim"}},
		},
		reviews: map[int64][]spots.Review{
			1: {
				{ID: 1, Review: "Great", Stars: 4, CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), User: spots.ReviewAuthor{ID: 20, FirstName: "Sam"}},
				{ID: 2, Review: "Superb", Stars: 5, CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), User: spots.ReviewAuthor{ID: 21, FirstName: "Kit"}},
			},
		},
	}
}

func (f *fakeSpotsAPI) GetSpot(ctx context.Context, spotID int64) (*spots.Spot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll {
		return nil, errors.New("connection refused")
	}
	spot, ok := f.spots[spotID]
	if !ok {
		return nil, &spots.StatusError{Code: http.StatusNotFound}
	}
	return spot, nil
}

func (f *fakeSpotsAPI) GetReviews(ctx context.Context, spotID int64) ([]spots.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]spots.Review{}, f.reviews[spotID]...), nil
}

func (f *fakeSpotsAPI) CreateReview(ctx context.Context, spotID int64, review spots.NewReview) (*spots.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, review)
	f.tokens = append(f.tokens, spots.BearerFromContext(ctx))
	created := spots.Review{ID: int64(100 + len(f.created)), Review: review.Review, Stars: review.Stars,
		CreatedAt: time.Now(), User: spots.ReviewAuthor{ID: review.UserID}}
	return &created, nil
}

type testApp struct {
	app    *application
	api    *fakeSpotsAPI
	auth   *session.JWTAuthenticator
	server http.Handler
}

func newTestApplication(t *testing.T, limit int) *testApp {
	t.Helper()

	api := newFakeSpotsAPI()
	logger := zap.NewNop().Sugar()
	renderer, err := render.New()
	require.NoError(t, err)

	auth := session.NewJWTAuthenticator("test-secret", "haven", "haven", time.Hour)
	loader := detail.NewLoader(api, logger)

	app := &application{
		config: config{
			env:         "test",
			auth:        authConfig{basic: basicConfig{user: "admin", pass: "pw"}},
			rateLimiter: ratelimiter.Config{RequestsPerTimeFrame: limit, TimeFrame: time.Minute, Enabled: limit > 0},
		},
		logger:        logger,
		loader:        loader,
		submitter:     detail.NewSubmitter(api, loader, Validate, logger),
		renderer:      renderer,
		authenticator: auth,
		rateLimiter:   ratelimiter.NewFixedWindowLimiter(limit, time.Minute),
	}

	return &testApp{app: app, api: api, auth: auth, server: app.mount()}
}

func (ta *testApp) token(t *testing.T, id int64) string {
	t.Helper()
	tok, err := ta.auth.GenerateToken(session.User{ID: id, FirstName: "User", LastName: fmt.Sprint(id)})
	require.NoError(t, err)
	return tok
}

func (ta *testApp) do(t *testing.T, method, target, token string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: token})
	}
	if strings.HasPrefix(body, "{") {
		req.Header.Set("Content-Type", "application/json")
	} else if body != "" {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	rr := httptest.NewRecorder()
	ta.server.ServeHTTP(rr, req)
	return rr
}

func form(review string, stars int) string {
	return url.Values{"review": {review}, "stars": {fmt.Sprint(stars)}}.Encode()
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	ta := newTestApplication(t, 0)
	ta.app.config.addr = "127.0.0.1:0"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ta.app.run(ctx, ta.server) }()

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestReadJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "body must not be empty"},
		{"syntax", `{"review":`, "badly-formed JSON"},
		{"wrong type", `{"stars":"five"}`, `wrong type for field "stars"`},
		{"unknown field", `{"userId":3}`, `unknown field "userId"`},
		{"trailing object", `{"stars":5}{}`, "single JSON object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst detail.ReviewInput
			err := readJSON(httptest.NewRecorder(), req, &dst)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.want)
		})
	}
}
