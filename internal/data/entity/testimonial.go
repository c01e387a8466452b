package entity

type Testimonial struct {
	BaseSimple
	Name         string  `db:"name"`
	Role         *string `db:"role"`
	Message      string  `db:"message"`
	ImageURL     string  `db:"image_url"`
	IsActive     bool    `db:"is_active"`
	DisplayOrder int     `db:"display_order"`
}
