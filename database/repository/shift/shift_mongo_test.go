package shiftRepo

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

func TestDateRangeFilterIsHalfOpen(t *testing.T) {
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)

	filter := dateRangeFilter(start, end)
	date, ok := filter["date"].(bson.M)
	if !ok {
		t.Fatalf("expected a date sub-filter, got %+v", filter)
	}
	if got := date["$gte"]; got != start {
		t.Errorf("expected lower bound $gte %v, got %v", start, got)
	}
	if got := date["$lt"]; got != end {
		t.Errorf("expected upper bound $lt %v, got %v", end, got)
	}
	// Dates are midnight timestamps: with an inclusive upper bound a shift
	// dated exactly end would leak into the window.
	if _, present := date["$lte"]; present {
		t.Error("upper bound must be exclusive, found $lte")
	}
}
