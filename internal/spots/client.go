package spots

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var ErrNotFound = errors.New("spot not found")

// StatusError is returned when the spots API answers with a non-2xx status.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("spots api %s %s: http=%d body=%s", e.Method, e.Path, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return ErrNotFound
	}
	return nil
}

type Client interface {
	GetSpot(ctx context.Context, spotID int64) (*Spot, error)
	GetReviews(ctx context.Context, spotID int64) ([]Review, error)
	CreateReview(ctx context.Context, spotID int64, review NewReview) (*Review, error)
}

type bearerKey struct{}

// WithBearer attaches the caller's session token so CreateReview can forward it.
func WithBearer(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, bearerKey{}, token)
}

// BearerFromContext returns the token set by WithBearer, or "".
func BearerFromContext(ctx context.Context) string {
	token, _ := ctx.Value(bearerKey{}).(string)
	return token
}

type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) GetSpot(ctx context.Context, spotID int64) (*Spot, error) {
	var spot Spot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/spots/%d", spotID), nil, &spot); err != nil {
		return nil, err
	}
	return &spot, nil
}

func (c *HTTPClient) GetReviews(ctx context.Context, spotID int64) ([]Review, error) {
	var list ReviewList
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/spots/%d/reviews", spotID), nil, &list); err != nil {
		return nil, err
	}
	if list.Reviews == nil {
		list.Reviews = []Review{}
	}
	return list.Reviews, nil
}

func (c *HTTPClient) CreateReview(ctx context.Context, spotID int64, review NewReview) (*Review, error) {
	body, err := json.Marshal(review)
	if err != nil {
		return nil, fmt.Errorf("encode review: %w", err)
	}

	var created Review
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/api/spots/%d/reviews", spotID), body, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("spots api %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := BearerFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("spots api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("spots api %s %s read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("spots api %s %s decode: %w", method, path, err)
	}
	return nil
}
