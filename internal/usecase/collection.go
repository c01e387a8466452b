package usecase

import (
	"fmt"
	"strings"

	"studio-site/internal/data/entity"
	"studio-site/internal/dto/request"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
)

// parsePositions checks a bulk reorder payload: non-empty, valid unique ids, display_order >= 0.
func parsePositions(req *request.ReorderRequest) ([]reorder.Position, error) {
	if req == nil || len(req.Items) == 0 {
		return nil, fieldError("items", "This field is required")
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]bool, len(req.Items))
	positions := make([]reorder.Position, 0, len(req.Items))
	for i, item := range req.Items {
		field := fmt.Sprintf("items[%d].id", i)
		id, err := uuid.Parse(item.ID)
		if err != nil {
			return nil, fieldError(field, "Must be a valid UUID")
		}
		if seen[id] {
			return nil, fieldError(field, "Duplicate id")
		}
		if item.DisplayOrder < 0 {
			return nil, fieldError(fmt.Sprintf("items[%d].display_order", i), "Minimum value is 0")
		}
		seen[id] = true
		positions = append(positions, reorder.Position{ID: id.String(), DisplayOrder: item.DisplayOrder})
	}

	return positions, nil
}

// parseMove returns the canonical dragged and target ids.
func parseMove(req *request.MoveRequest) (string, string, error) {
	if err := validate(req); err != nil {
		return "", "", err
	}
	dragged, err := uuid.Parse(req.DraggedID)
	if err != nil {
		return "", "", fieldError("dragged_id", "Must be a valid UUID")
	}
	target, err := uuid.Parse(req.TargetID)
	if err != nil {
		return "", "", fieldError("target_id", "Must be a valid UUID")
	}
	return dragged.String(), target.String(), nil
}

// parseID handles the ?id= parameter of delete calls.
func parseID(kind, raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fmt.Errorf("%w: %s ID required", ErrInvalidInput, kind)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid %s ID", ErrInvalidInput, kind)
	}
	return id, nil
}

func categoryChoices() string {
	names := make([]string, len(entity.Categories))
	for i, c := range entity.Categories {
		names[i] = string(c.Value)
	}
	return "Must be one of: " + strings.Join(names, ", ")
}
