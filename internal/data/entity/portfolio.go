package entity

type PortfolioItem struct {
	BaseNoDelete
	Title        string   `db:"title"`
	Category     Category `db:"category"`
	VideoURL     string   `db:"video_url"`
	ThumbnailURL *string  `db:"thumbnail_url"`
	Description  *string  `db:"description"`
	DisplayOrder int      `db:"display_order"`
}
