package request

type CreateTestimonialRequest struct {
	Name         string  `json:"name" validate:"required,notblank,max=200"`
	Role         *string `json:"role,omitempty"`
	Message      string  `json:"message" validate:"required,notblank"`
	ImageURL     string  `json:"image_url" validate:"required,notblank"`
	IsActive     *bool   `json:"is_active,omitempty"` // default true
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
}

type UpdateTestimonialRequest struct {
	ID           string  `json:"id" validate:"required,uuid"`
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Role         *string `json:"role,omitempty"`
	Message      *string `json:"message,omitempty" validate:"omitempty,min=1"`
	ImageURL     *string `json:"image_url,omitempty" validate:"omitempty,min=1"`
	IsActive     *bool   `json:"is_active,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}
