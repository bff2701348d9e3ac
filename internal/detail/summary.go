package detail

import (
	"fmt"
	"strconv"

	"haven/internal/spots"
)

// NewLabel is shown in place of an average when a spot has no reviews.
const NewLabel = "New"

type RatingSummary struct {
	Average    string `json:"average"`
	Count      int    `json:"count"`
	CountLabel string `json:"countLabel,omitempty"`
	ShowCount  bool   `json:"showCount"`
}

// Summarize derives the average rating and review count label. The input is
// only read.
func Summarize(reviews []spots.Review) RatingSummary {
	count := len(reviews)
	if count == 0 {
		return RatingSummary{Average: NewLabel}
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Stars
	}

	return RatingSummary{
		Average:    strconv.FormatFloat(float64(sum)/float64(count), 'f', 2, 64),
		Count:      count,
		CountLabel: CountLabel(count),
		ShowCount:  true,
	}
}

func CountLabel(count int) string {
	if count == 1 {
		return "1 Review"
	}
	return fmt.Sprintf("%d Reviews", count)
}
