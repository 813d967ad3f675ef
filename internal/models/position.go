package models

// Position is a job position a shift can reference. Deleting a position
// does not cascade: shifts keep their positionId and views degrade
// gracefully (unknown name, excluded from per-position aggregates).
type Position struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
