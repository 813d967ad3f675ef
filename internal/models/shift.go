package models

// Shift is a single logged work shift. Hours is computed once at creation
// and stored, so later edits to positions or to the clock math never change
// historical totals.
//
// Date is a local calendar day ("2006-01-02"); StartTime/EndTime are "HH:MM"
// wall-clock strings. An end time earlier than the start time means the
// shift crossed midnight.
type Shift struct {
	ID            string  `json:"id"`
	Date          string  `json:"date"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	PositionID    string  `json:"positionId"`
	Hours         float64 `json:"hours"`
	TimecardPhoto string  `json:"timecardPhoto,omitempty"`
	PhotoPreview  []byte  `json:"photoPreview,omitempty"`
}
