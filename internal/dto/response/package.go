package response

import (
	"time"

	"studio-site/internal/data/entity"
)

type PackageResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StartingPrice int       `json:"starting_price"`
	Deliverables  []string  `json:"deliverables"`
	IsPopular     bool      `json:"is_popular"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func PackageToResponse(p *entity.Package) PackageResponse {
	deliverables := p.Deliverables
	if deliverables == nil {
		deliverables = []string{}
	}
	return PackageResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		Description:   p.Description,
		StartingPrice: p.StartingPrice,
		Deliverables:  deliverables,
		IsPopular:     p.IsPopular,
		DisplayOrder:  p.DisplayOrder,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func PackagesToResponse(packages []*entity.Package) []PackageResponse {
	out := make([]PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, PackageToResponse(p))
	}
	return out
}
