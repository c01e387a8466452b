package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type TestimonialResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Role         *string   `json:"role"`
	Message      string    `json:"message"`
	ImageURL     string    `json:"image_url"`
	IsActive     bool      `json:"is_active"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
}

func TestimonialToResponse(t *entity.Testimonial) TestimonialResponse {
	return TestimonialResponse{
		ID:           t.ID.String(),
		Name:         t.Name,
		Role:         t.Role,
		Message:      t.Message,
		ImageURL:     t.ImageURL,
		IsActive:     t.IsActive,
		DisplayOrder: t.DisplayOrder,
		CreatedAt:    t.CreatedAt,
	}
}

func TestimonialsToResponse(testimonials []*entity.Testimonial) []TestimonialResponse {
	out := make([]TestimonialResponse, 0, len(testimonials))
	for _, t := range testimonials {
		out = append(out, TestimonialToResponse(t))
	}
	return out
}
