package request

type OrderItem struct {
	ID           string `json:"id" validate:"required,uuid"`
	DisplayOrder int    `json:"display_order" validate:"gte=0"`
}

// ReorderRequest rewrites display_order for the listed records.
type ReorderRequest struct {
	Items []OrderItem `json:"items" validate:"required,min=1,dive"`
}

// MoveRequest relocates dragged_id to the current position of target_id.
type MoveRequest struct {
	DraggedID string `json:"dragged_id" validate:"required,uuid"`
	TargetID  string `json:"target_id" validate:"required,uuid"`
}
