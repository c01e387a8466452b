package request

type CreatePortfolioRequest struct {
	Title        string  `json:"title" validate:"required,notblank,max=200"`
	Category     string  `json:"category" validate:"required,notblank"`
	VideoURL     string  `json:"video_url" validate:"required,notblank"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder int     `json:"display_order" validate:"gte=0"`
}

type UpdatePortfolioRequest struct {
	ID           string  `json:"id" validate:"required,uuid"`
	Title        *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Category     *string `json:"category,omitempty" validate:"omitempty,min=1"`
	VideoURL     *string `json:"video_url,omitempty" validate:"omitempty,min=1"`
	ThumbnailURL *string `json:"thumbnail_url,omitempty"`
	Description  *string `json:"description,omitempty"`
	DisplayOrder *int    `json:"display_order,omitempty" validate:"omitempty,gte=0"`
}
