package domain

import (
	"time"

	"github.com/google/uuid"
)

// DayLayout is the journal day key format (local calendar date).
const DayLayout = "2006-01-02"

// LoggedEntry is one food consumption recorded in the journal.
// Entries are never mutated; they are appended and removed.
type LoggedEntry struct {
	ID         uuid.UUID       `json:"id"`
	Day        string          `json:"day"`
	Food       FoodDetail      `json:"food"`
	Quantity   float64         `json:"quantity"`
	ConsumedAt time.Time       `json:"consumedAt"`
	Nutrients  ScaledNutrition `json:"calculatedNutrients"`
}

// DailyLog is the journal of a single day with its nutrition totals.
type DailyLog struct {
	Day     string          `json:"date"`
	Entries []LoggedEntry   `json:"foods"`
	Totals  NutrientProfile `json:"totalNutrients"`
}

// DayKey returns the journal key for t in loc.
func DayKey(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(DayLayout)
}

// ValidDay reports whether s is a well-formed YYYY-MM-DD day key.
func ValidDay(s string) bool {
	_, err := time.Parse(DayLayout, s)
	return err == nil
}
