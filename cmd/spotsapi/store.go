package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"haven/internal/spots"

	"gopkg.in/yaml.v3"
)

var (
	errSpotNotFound    = errors.New("spot couldn't be found")
	errAlreadyReviewed = errors.New("user already has a review for this spot")
)

type fixtureOwner struct {
	ID        int64  `yaml:"id"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
}

type fixtureReview struct {
	ID        int64     `yaml:"id"`
	UserID    int64     `yaml:"userId"`
	FirstName string    `yaml:"firstName"`
	Review    string    `yaml:"review"`
	Stars     int       `yaml:"stars"`
	CreatedAt time.Time `yaml:"createdAt"`
}

type fixtureSpot struct {
	ID          int64           `yaml:"id"`
	Name        string          `yaml:"name"`
	City        string          `yaml:"city"`
	State       string          `yaml:"state"`
	Country     string          `yaml:"country"`
	Description string          `yaml:"description"`
	Price       float64         `yaml:"price"`
	Owner       fixtureOwner    `yaml:"owner"`
	Reviews     []fixtureReview `yaml:"reviews"`
}

type fixtureFile struct {
	Spots []fixtureSpot `yaml:"spots"`
}

// store is the in-memory spot catalogue served by the stand-in API.
type store struct {
	mu      sync.RWMutex
	spots   map[int64]spots.Spot
	reviews map[int64][]spots.Review
	nextID  int64
	now     func() time.Time
}

func loadFixtures(path string) (*store, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}

	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}

	s := &store{
		spots:   make(map[int64]spots.Spot, len(file.Spots)),
		reviews: make(map[int64][]spots.Review, len(file.Spots)),
		now:     time.Now,
	}

	for _, fs := range file.Spots {
		if _, dup := s.spots[fs.ID]; dup {
			return nil, fmt.Errorf("parse fixtures %s: duplicate spot id %d", path, fs.ID)
		}
		if fs.Price < 0 {
			return nil, fmt.Errorf("parse fixtures %s: spot %d has negative price", path, fs.ID)
		}

		s.spots[fs.ID] = spots.Spot{
			ID:          fs.ID,
			Name:        fs.Name,
			City:        fs.City,
			State:       fs.State,
			Country:     fs.Country,
			Description: fs.Description,
			Price:       fs.Price,
			Owner:       &spots.Owner{ID: fs.Owner.ID, FirstName: fs.Owner.FirstName, LastName: fs.Owner.LastName},
		}

		list := make([]spots.Review, 0, len(fs.Reviews))
		for _, fr := range fs.Reviews {
			list = append(list, spots.Review{
				ID:        fr.ID,
				Review:    fr.Review,
				Stars:     fr.Stars,
				CreatedAt: fr.CreatedAt,
				User:      spots.ReviewAuthor{ID: fr.UserID, FirstName: fr.FirstName},
			})
			if fr.ID > s.nextID {
				s.nextID = fr.ID
			}
		}
		s.reviews[fs.ID] = list
	}

	return s, nil
}

func (s *store) spot(id int64) (spots.Spot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	spot, ok := s.spots[id]
	if !ok {
		return spots.Spot{}, errSpotNotFound
	}
	return spot, nil
}

// spotReviews returns the spot's reviews, newest first.
func (s *store) spotReviews(id int64) ([]spots.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.spots[id]; !ok {
		return nil, errSpotNotFound
	}

	list := append([]spots.Review{}, s.reviews[id]...)
	sort.SliceStable(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

func (s *store) addReview(spotID int64, author spots.ReviewAuthor, review string, stars int) (spots.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spots[spotID]; !ok {
		return spots.Review{}, errSpotNotFound
	}
	for _, r := range s.reviews[spotID] {
		if r.User.ID == author.ID {
			return spots.Review{}, errAlreadyReviewed
		}
	}

	s.nextID++
	created := spots.Review{
		ID:        s.nextID,
		Review:    review,
		Stars:     stars,
		CreatedAt: s.now().UTC(),
		User:      author,
	}
	s.reviews[spotID] = append(s.reviews[spotID], created)
	return created, nil
}
