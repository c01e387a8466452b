// Package reorder implements drag-to-reorder over ordered record lists.
//
// Move and Positions are pure helpers shared by the API (server-side move) and
// Controller, which applies a move optimistically and rolls it back when the
// new order cannot be persisted.
package reorder

import "slices"

// Position pairs a record id with its 0-based display order.
type Position struct {
	ID           string `json:"id"`
	DisplayOrder int    `json:"display_order"`
}

// IndexOf returns the index of the element whose key is id, or -1.
func IndexOf[T any](items []T, key func(T) string, id string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

// Move returns a copy of items with the element at from relocated to to.
// Elements between the two indices shift by one; all other relative order is kept.
// Out of range indices return an unchanged copy.
func Move[T any](items []T, from, to int) []T {
	out := slices.Clone(items)
	if from < 0 || from >= len(out) || to < 0 || to >= len(out) || from == to {
		return out
	}

	moved := out[from]
	out = slices.Delete(out, from, from+1)
	return slices.Insert(out, to, moved)
}

// MoveByID moves draggedID onto targetID's position.
// ok is false when the move is a no-op: empty or equal ids, or either id missing.
func MoveByID[T any](items []T, key func(T) string, draggedID, targetID string) (out []T, ok bool) {
	if targetID == "" || draggedID == targetID {
		return items, false
	}
	from := IndexOf(items, key, draggedID)
	to := IndexOf(items, key, targetID)
	if from < 0 || to < 0 {
		return items, false
	}
	return Move(items, from, to), true
}

// Positions derives the bulk update payload: every item paired with its index.
func Positions[T any](items []T, key func(T) string) []Position {
	out := make([]Position, len(items))
	for i, item := range items {
		out[i] = Position{ID: key(item), DisplayOrder: i}
	}
	return out
}
