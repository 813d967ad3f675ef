package services

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/cbdowney09-alt/WorkProof/internal/common"
	"github.com/cbdowney09-alt/WorkProof/internal/filex"
	"github.com/cbdowney09-alt/WorkProof/internal/logging"
	"github.com/cbdowney09-alt/WorkProof/internal/models"
	"github.com/cbdowney09-alt/WorkProof/internal/stats"
)

const timecardDirName = "timecards"

// AddShiftParams carries the user-entered fields of a new shift. Date may
// be empty (defaults to today); PhotoPath may be empty (no timecard proof).
type AddShiftParams struct {
	Date       string
	StartTime  string
	EndTime    string
	PositionID string
	PhotoPath  string
}

// ShiftLedger is thin CRUD over the session's shift collection. A shift's
// hours are computed once here and stored with the record; they are never
// recomputed afterwards, so historical totals stay stable.
type ShiftLedger struct {
	session  *Session
	photoDir string
	log      logging.Logger
}

func NewShiftLedger(s *Session, photoDir string, log logging.Logger) *ShiftLedger {
	return &ShiftLedger{session: s, photoDir: photoDir, log: log}
}

// Add creates a shift from p and persists the resulting collection. A
// timecard photo that cannot be imported is dropped with a warning; the
// shift itself is still recorded.
func (l *ShiftLedger) Add(ctx context.Context, p AddShiftParams) (*models.Shift, error) {
	if p.StartTime == "" || p.EndTime == "" || p.PositionID == "" {
		return nil, common.ErrShiftFieldsRequired
	}

	date := p.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	shift := models.Shift{
		ID:         uuid.NewString(),
		Date:       date,
		StartTime:  p.StartTime,
		EndTime:    p.EndTime,
		PositionID: p.PositionID,
		Hours:      stats.HoursBetween(p.StartTime, p.EndTime),
	}

	if p.PhotoPath != "" {
		l.attachTimecard(ctx, &shift, p.PhotoPath)
	}

	if err := l.session.appendShift(ctx, shift); err != nil {
		return nil, err
	}
	return &shift, nil
}

// attachTimecard copies the photo into the timecard directory and embeds
// the preview bytes into the shift.
func (l *ShiftLedger) attachTimecard(ctx context.Context, shift *models.Shift, path string) {
	dir, err := filex.EnsureSubDir(l.photoDir, timecardDirName)
	if err != nil {
		l.log.Warn(ctx, "cannot create timecard directory, skipping photo", "error", err)
		return
	}

	name, err := filex.ImportFile(path, dir)
	if err != nil {
		l.log.Warn(ctx, "cannot import timecard photo, skipping", "path", path, "error", err)
		return
	}
	shift.TimecardPhoto = name

	preview, err := os.ReadFile(path)
	if err != nil {
		l.log.Warn(ctx, "cannot read photo preview", "path", path, "error", err)
		return
	}
	shift.PhotoPreview = preview
}

// Remove filters the id out of the collection and persists the result.
// Removing a nonexistent id is a no-op.
func (l *ShiftLedger) Remove(ctx context.Context, id string) error {
	return l.session.removeShift(ctx, id)
}

// List returns the current shifts in insertion order.
func (l *ShiftLedger) List() []models.Shift {
	return l.session.Shifts()
}
