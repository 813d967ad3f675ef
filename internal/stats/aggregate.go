// Package stats derives dashboard statistics from the current shift and
// position collections. Everything here is a pure function recomputed on
// read: malformed or partial records degrade to zero or exclusion, never to
// an error.
package stats

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/cbdowney09-alt/WorkProof/internal/models"
)

const minutesPerDay = 24 * 60

// parseClock converts an "HH:MM" string to minutes since midnight.
func parseClock(s string) (int, bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// HoursBetween returns the fractional hours between two "HH:MM" wall-clock
// times. An end time earlier than the start time means the shift crossed
// midnight, so a day's worth of minutes is added before subtracting. A
// missing or malformed input yields 0 ("not yet computable").
func HoursBetween(start, end string) float64 {
	startM, ok := parseClock(start)
	if !ok {
		return 0
	}
	endM, ok := parseClock(end)
	if !ok {
		return 0
	}
	if endM < startM {
		endM += minutesPerDay
	}
	return float64(endM-startM) / 60
}

// TotalHours sums the stored hours of all shifts at full precision.
// Use FormatHours for the one-decimal display rendering.
func TotalHours(shifts []models.Shift) float64 {
	var sum float64
	for _, s := range shifts {
		sum += s.Hours
	}
	return sum
}

// FormatHours renders an hours value with one decimal place for display.
func FormatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', 1, 64)
}

// HoursByPosition groups shift hours by resolved position name. Shifts whose
// positionId no longer resolves are silently excluded; no "unknown" entry is
// created.
func HoursByPosition(shifts []models.Shift, positions []models.Position) map[string]float64 {
	names := make(map[string]string, len(positions))
	for _, p := range positions {
		names[p.ID] = p.Name
	}

	byPos := make(map[string]float64)
	for _, s := range shifts {
		name, ok := names[s.PositionID]
		if !ok {
			continue
		}
		byPos[name] += s.Hours
	}
	return byPos
}

// WeekBucket groups the shifts of one calendar week. WeekStart is the
// Sunday the week begins on and Label its short month/day rendering.
type WeekBucket struct {
	WeekStart time.Time
	Label     string
	Shifts    []models.Shift
}

// parseDate reads a "2006-01-02" calendar day. Dates are naive local days;
// UTC keeps week starts exactly 7 days apart across DST changes.
func parseDate(s string) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// WeeklyBuckets partitions shifts into Sunday-aligned calendar weeks. Each
// shift lands in exactly one bucket determined by its own date. Buckets
// appear in the order first encountered while scanning shifts sorted
// newest-date-first, so the most recent week comes first. Shifts with an
// unparsable date are excluded.
func WeeklyBuckets(shifts []models.Shift) []WeekBucket {
	type dated struct {
		shift models.Shift
		day   time.Time
	}

	ds := make([]dated, 0, len(shifts))
	for _, s := range shifts {
		day, ok := parseDate(s.Date)
		if !ok {
			continue
		}
		ds = append(ds, dated{shift: s, day: day})
	}
	sort.SliceStable(ds, func(i, j int) bool { return ds[i].day.After(ds[j].day) })

	var buckets []WeekBucket
	index := make(map[time.Time]int)
	for _, d := range ds {
		weekStart := d.day.AddDate(0, 0, -int(d.day.Weekday()))
		i, ok := index[weekStart]
		if !ok {
			i = len(buckets)
			index[weekStart] = i
			buckets = append(buckets, WeekBucket{
				WeekStart: weekStart,
				Label:     weekStart.Format("Jan 2"),
			})
		}
		buckets[i].Shifts = append(buckets[i].Shifts, d.shift)
	}
	return buckets
}
