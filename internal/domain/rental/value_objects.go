package rental

import (
	"errors"
	"math"
	"time"
)

var ErrInvalidDateRange = errors.New("end date must not precede start date")

const day = 24 * time.Hour

// DateRange is a calendar date span. Times are normalized to midnight UTC
// so arithmetic never trips over wall-clock components.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	start = truncateToDate(start)
	end = truncateToDate(end)
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

// Days is ceil((end - start) / 1 day). Equal dates count as zero.
func (r DateRange) Days() int {
	return int(math.Ceil(r.end.Sub(r.start).Hours() / 24))
}

// Overlaps uses the inclusive-bounds test: two ranges conflict when each
// one starts no later than the other ends.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

// Contains reports whether other lies entirely within r.
func (r DateRange) Contains(other DateRange) bool {
	return !other.start.Before(r.start) && !other.end.After(r.end)
}

const dateLayout = "2006-01-02"

func (r DateRange) String() string {
	return r.start.Format(dateLayout) + " to " + r.end.Format(dateLayout)
}
