package response

import (
	"time"

	"studio-site/internal/data/entity"
	"studio-site/pkg/media"
)

type PortfolioResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	CategoryGroup string    `json:"category_group"`
	VideoURL      string    `json:"video_url"`
	EmbedURL      string    `json:"embed_url"`
	ThumbnailURL  *string   `json:"thumbnail_url"`
	Description   *string   `json:"description"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func PortfolioToResponse(item *entity.PortfolioItem) PortfolioResponse {
	return PortfolioResponse{
		ID:            item.ID.String(),
		Title:         item.Title,
		Category:      string(item.Category),
		CategoryLabel: item.Category.Label(),
		CategoryGroup: string(item.Category.Group()),
		VideoURL:      item.VideoURL,
		EmbedURL:      media.EmbedURL(item.VideoURL),
		ThumbnailURL:  item.ThumbnailURL,
		Description:   item.Description,
		DisplayOrder:  item.DisplayOrder,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

func PortfolioListToResponse(items []*entity.PortfolioItem) []PortfolioResponse {
	out := make([]PortfolioResponse, 0, len(items))
	for _, item := range items {
		out = append(out, PortfolioToResponse(item))
	}
	return out
}

type CategoryResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Group string `json:"group"`
}

func CategoriesToResponse(categories []entity.CategoryInfo) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, CategoryResponse{
			Value: string(c.Value),
			Label: c.Label,
			Group: string(c.Group),
		})
	}
	return out
}
