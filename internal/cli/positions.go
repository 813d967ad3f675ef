package cli

import (
	"context"
	"fmt"
	"os"
)

// AddPosition prompts for a position name and adds it to the registry.
func (a *App) AddPosition(ctx context.Context) error {
	name, err := GetSimpleText(a.reader, "Enter position name", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.registry.Add(ctx, name)
	if err != nil {
		printlnFn("Could not add position:", err)
		return err
	}

	printlnFn("Added position:", p.Name)
	return nil
}

// ListPositions prints the positions in insertion order.
func (a *App) ListPositions(ctx context.Context) error {
	positions := a.registry.List()
	if len(positions) == 0 {
		printlnFn("No positions yet. Use 'addpos' to add one.")
		return nil
	}

	for i, p := range positions {
		printlnFn(fmt.Sprintf("%d. %s (%s)", i+1, p.Name, p.ID))
	}
	return nil
}

// DeletePosition prompts for a position id and removes it. Shifts logged
// against the position are kept.
func (a *App) DeletePosition(ctx context.Context) error {
	if err := a.ListPositions(ctx); err != nil {
		return err
	}

	id, err := GetSimpleText(a.reader, "Enter position id to delete", os.Stdout)
	if err != nil {
		return err
	}
	if id == "" {
		return nil
	}

	if err := a.registry.Remove(ctx, id); err != nil {
		printlnFn("Could not delete position:", err)
		return err
	}

	printlnFn("Position deleted. Existing shifts keep their hours.")
	return nil
}
