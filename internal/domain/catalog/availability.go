package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/maebaconsulting/simonebeauty-sub003/internal/pkg/validators"
)

// DefaultTimezone applies when an availability query names none
const DefaultTimezone = "Europe/Paris"

// AvailabilityQuery asks which contractors can perform a service at a local date and time
type AvailabilityQuery struct {
	ServiceID string `validate:"required,uuid4"`
	Date      string `validate:"required,datetime=2006-01-02"`
	Time      string `validate:"required,clocktime"`
	Timezone  string `validate:"omitempty,timezone"`
}

// Validate for validating AvailabilityQuery struct
func (q *AvailabilityQuery) Validate() error {
	return validators.ValidateStruct(q)
}

// Start resolves the query's local date and time to an instant
func (q *AvailabilityQuery) Start() (time.Time, error) {
	tz := q.Timezone
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown timezone %q: %w", tz, err)
	}
	start, err := time.ParseInLocation("2006-01-02 15:04", q.Date+" "+q.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date or time: %w", err)
	}
	return start.UTC(), nil
}

// Slot is a half-open time range [Start, End)
type Slot struct {
	Start time.Time
	End   time.Time
}

// NewSlot returns the slot starting at start and lasting d
func NewSlot(start time.Time, d time.Duration) Slot {
	return Slot{Start: start, End: start.Add(d)}
}

// Overlaps reports whether two slots share any instant
func (s Slot) Overlaps(other Slot) bool {
	return s.Start.Before(other.End) && other.Start.Before(s.End)
}

// Availability is the answer to an AvailabilityQuery
type Availability struct {
	Service     *Service
	Slot        Slot
	Contractors []*Contractor
}

// RankContractors orders contractors by rating then booking count, best first
func RankContractors(contractors []*Contractor) {
	sort.SliceStable(contractors, func(i, j int) bool {
		if contractors[i].Rating != contractors[j].Rating {
			return contractors[i].Rating > contractors[j].Rating
		}
		return contractors[i].TotalBookings > contractors[j].TotalBookings
	})
}
