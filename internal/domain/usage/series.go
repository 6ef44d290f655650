package usage

import (
	"errors"
	"time"
)

const (
	DateLayout   = "2006-01-02"
	MaxRangeDays = 366
)

var ErrInvalidDateRange = errors.New("invalid date range")

type DateRange struct {
	start time.Time
	end   time.Time
}

// NewDateRange truncates both ends to whole days in loc. Both ends are inclusive.
func NewDateRange(start, end time.Time, loc *time.Location) (DateRange, error) {
	start = startOfDay(start, loc)
	end = startOfDay(end, loc)
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	if days(start, end) > MaxRangeDays {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: start, end: end}, nil
}

func ParseDateRange(start, end string, loc *time.Location) (DateRange, error) {
	s, err := time.ParseInLocation(DateLayout, start, loc)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	e, err := time.ParseInLocation(DateLayout, end, loc)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	return NewDateRange(s, e, loc)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// EndExclusive is the first instant after the range.
func (r DateRange) EndExclusive() time.Time { return r.end.AddDate(0, 0, 1) }

func (r DateRange) Days() int { return days(r.start, r.end) }

type DailyUsage struct {
	Date    time.Time
	Seconds int64
}

type Point struct {
	Date    string
	Minutes int64
}

type Series struct {
	Points       []Point
	TotalMinutes int64
}

// BuildSeries emits one point per day in r, zero-filled, rounding each day's
// talk time up to whole minutes.
func BuildSeries(r DateRange, daily []DailyUsage) Series {
	byDay := make(map[string]int64, len(daily))
	for _, d := range daily {
		byDay[d.Date.In(r.start.Location()).Format(DateLayout)] += d.Seconds
	}

	series := Series{Points: make([]Point, 0, r.Days())}
	for day := r.start; !day.After(r.end); day = day.AddDate(0, 0, 1) {
		key := day.Format(DateLayout)
		minutes := SecondsToMinutes(byDay[key])
		series.Points = append(series.Points, Point{Date: key, Minutes: minutes})
		series.TotalMinutes += minutes
	}
	return series
}

func SecondsToMinutes(seconds int64) int64 {
	if seconds <= 0 {
		return 0
	}
	return (seconds + 59) / 60
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func days(start, end time.Time) int {
	n := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		n++
		if n > MaxRangeDays {
			break
		}
	}
	return n
}
