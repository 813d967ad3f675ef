package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/cbdowney09-alt/WorkProof/internal/models"
	"github.com/cbdowney09-alt/WorkProof/internal/stats"
)

func positionNames(positions []models.Position) map[string]string {
	names := make(map[string]string, len(positions))
	for _, p := range positions {
		names[p.ID] = p.Name
	}
	return names
}

// Stats prints the total hours and the per-position breakdown. Hours logged
// against deleted positions count toward the total but have no per-position
// line.
func (a *App) Stats(ctx context.Context) error {
	shifts := a.ledger.List()
	printlnFn("Total hours:", stats.FormatHours(stats.TotalHours(shifts)))
	printlnFn("Shifts:", len(shifts))

	byPos := stats.HoursByPosition(shifts, a.registry.List())
	if len(byPos) == 0 {
		return nil
	}

	names := make([]string, 0, len(byPos))
	for name := range byPos {
		names = append(names, name)
	}
	sort.Strings(names)

	printlnFn("By position:")
	for _, name := range names {
		printlnFn(fmt.Sprintf("  %s: %s hours", name, stats.FormatHours(byPos[name])))
	}
	return nil
}

// Weeks prints the weekly breakdown, newest week first.
func (a *App) Weeks(ctx context.Context) error {
	buckets := stats.WeeklyBuckets(a.ledger.List())
	if len(buckets) == 0 {
		printlnFn("No shifts yet.")
		return nil
	}

	for _, b := range buckets {
		printlnFn(fmt.Sprintf("Week of %s: %s hours (%d shifts)",
			b.Label, stats.FormatHours(stats.TotalHours(b.Shifts)), len(b.Shifts)))
	}
	return nil
}

// Mode shows the current plan flag and optionally switches it.
func (a *App) Mode(ctx context.Context) error {
	printlnFn("Current mode:", string(a.session.Mode()))

	raw, err := GetSimpleText(a.reader, "Enter new mode (free/premium, empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if raw == "" {
		return nil
	}

	mode := models.ParseMode(raw)
	if err := a.session.SetMode(ctx, mode); err != nil {
		printlnFn("Could not change mode:", err)
		return err
	}

	printlnFn("Mode set to", string(mode))
	return nil
}
