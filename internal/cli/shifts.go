package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/cbdowney09-alt/WorkProof/internal/services"
	"github.com/cbdowney09-alt/WorkProof/internal/stats"
)

// AddShift prompts for the shift fields and records the shift. The date may
// be left empty to use today; the photo path may be left empty to record the
// shift without timecard proof.
func (a *App) AddShift(ctx context.Context) error {
	positions := a.registry.List()
	if len(positions) == 0 {
		printlnFn("Add a position first ('addpos').")
		return nil
	}

	printlnFn("Positions:")
	for i, p := range positions {
		printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.ID))
	}

	positionID, err := GetSimpleText(a.reader, "Enter position id", os.Stdout)
	if err != nil {
		return err
	}
	date, err := GetSimpleText(a.reader, "Enter date (YYYY-MM-DD, empty for today)", os.Stdout)
	if err != nil {
		return err
	}
	start, err := GetSimpleText(a.reader, "Enter start time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	end, err := GetSimpleText(a.reader, "Enter end time (HH:MM)", os.Stdout)
	if err != nil {
		return err
	}
	photo, err := GetSimpleText(a.reader, "Enter timecard photo path (optional)", os.Stdout)
	if err != nil {
		return err
	}

	shift, err := a.ledger.Add(ctx, services.AddShiftParams{
		Date:       date,
		StartTime:  start,
		EndTime:    end,
		PositionID: positionID,
		PhotoPath:  photo,
	})
	if err != nil {
		printlnFn("Could not add shift:", err)
		return err
	}

	printlnFn(fmt.Sprintf("Shift recorded: %s %s-%s, %s hours",
		shift.Date, shift.StartTime, shift.EndTime, stats.FormatHours(shift.Hours)))
	return nil
}

// ListShifts prints the shifts with their stored hours.
func (a *App) ListShifts(ctx context.Context) error {
	shifts := a.ledger.List()
	if len(shifts) == 0 {
		printlnFn("No shifts yet. Use 'addshift' to log one.")
		return nil
	}

	names := positionNames(a.registry.List())
	for i, sh := range shifts {
		name := names[sh.PositionID]
		if name == "" {
			name = "(deleted position)"
		}
		line := fmt.Sprintf("%d. %s %s-%s  %s hours  %s  (%s)",
			i+1, sh.Date, sh.StartTime, sh.EndTime, stats.FormatHours(sh.Hours), name, sh.ID)
		if sh.TimecardPhoto != "" {
			line += "  [timecard]"
		}
		printlnFn(line)
	}
	return nil
}

// DeleteShift prompts for a shift id and removes it.
func (a *App) DeleteShift(ctx context.Context) error {
	if err := a.ListShifts(ctx); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter shift id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	if err := a.ledger.Remove(ctx, id); err != nil {
		printlnFn("Could not delete shift:", err)
		return err
	}

	printlnFn("Shift deleted.")
	return nil
}
