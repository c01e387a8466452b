package request

type CreatePackageRequest struct {
	Name          string   `json:"name" validate:"required,notblank,max=200"`
	Description   string   `json:"description" validate:"required,notblank"`
	StartingPrice int      `json:"starting_price" validate:"required,gte=1"`
	Deliverables  []string `json:"deliverables" validate:"required"`
	IsPopular     bool     `json:"is_popular"`
	DisplayOrder  int      `json:"display_order" validate:"gte=0"`
}

type UpdatePackageRequest struct {
	ID            string    `json:"id" validate:"required,uuid"`
	Name          *string   `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,min=1"`
	StartingPrice *int      `json:"starting_price,omitempty" validate:"omitempty,gte=1"`
	Deliverables  *[]string `json:"deliverables,omitempty"`
	IsPopular     *bool     `json:"is_popular,omitempty"`
	DisplayOrder  *int      `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}
