package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"haven/internal/session"
	"haven/internal/spots"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type server struct {
	store  *store
	auth   session.Authenticator // nil accepts any userId
	logger *zap.SugaredLogger
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/spots/{spotId}", func(r chi.Router) {
		r.Get("/", s.getSpot)
		r.Get("/reviews", s.getReviews)
		r.Post("/reviews", s.createReview)
	})
	return r
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

func spotIDParam(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "spotId"), 10, 64)
	return id, err == nil
}

func (s *server) getSpot(w http.ResponseWriter, r *http.Request) {
	id, ok := spotIDParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}

	spot, err := s.store.spot(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	writeJSON(w, http.StatusOK, spot)
}

func (s *server) getReviews(w http.ResponseWriter, r *http.Request) {
	id, ok := spotIDParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}

	list, err := s.store.spotReviews(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	writeJSON(w, http.StatusOK, spots.ReviewList{Reviews: list})
}

// anonymousAuthor names reviews whose author sent no first name and no token.
const anonymousAuthor = "Guest"

func (s *server) createReview(w http.ResponseWriter, r *http.Request) {
	id, ok := spotIDParam(r)
	if !ok {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}

	var payload spots.NewReview
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Bad Request")
		return
	}
	payload.Review = strings.TrimSpace(payload.Review)
	if payload.Review == "" || payload.Stars < 1 || payload.Stars > 5 {
		writeMessage(w, http.StatusBadRequest, "Review text is required and stars must be an integer from 1 to 5")
		return
	}

	author := spots.ReviewAuthor{ID: payload.UserID, FirstName: strings.TrimSpace(payload.FirstName)}
	if s.auth != nil {
		user, err := s.authenticate(r)
		if err != nil || user.ID != payload.UserID {
			writeMessage(w, http.StatusUnauthorized, "Authentication required")
			return
		}
		author.FirstName = user.FirstName
	}
	if author.FirstName == "" {
		author.FirstName = anonymousAuthor
	}

	spot, err := s.store.spot(id)
	if err != nil {
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}
	if spot.Owner != nil && spot.Owner.ID == payload.UserID {
		writeMessage(w, http.StatusForbidden, "Owners cannot review their own spot")
		return
	}

	created, err := s.store.addReview(id, author, payload.Review, payload.Stars)
	switch {
	case errors.Is(err, errAlreadyReviewed):
		writeMessage(w, http.StatusForbidden, "User already has a review for this spot")
		return
	case err != nil:
		writeMessage(w, http.StatusNotFound, "Spot couldn't be found")
		return
	}

	s.logger.Infow("review created", "spot_id", id, "review_id", created.ID, "user_id", payload.UserID)
	writeJSON(w, http.StatusCreated, created)
}

func (s *server) authenticate(r *http.Request) (*session.User, error) {
	token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return nil, errors.New("missing bearer token")
	}
	return s.auth.UserFromToken(token)
}
