package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/internal/dto/request"
	"studio-site/internal/dto/response"
	"studio-site/pkg/metrics"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PortfolioFilter narrows the public list. Both values go through the closed enumeration.
type PortfolioFilter struct {
	Category string
	Group    string
}

type PortfolioService interface {
	ListPortfolio(ctx context.Context, filter PortfolioFilter) ([]response.PortfolioResponse, error)
	Categories() []response.CategoryResponse
	CreatePortfolio(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error)
	UpdatePortfolio(ctx context.Context, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error)
	DeletePortfolio(ctx context.Context, id string) error
	ReorderPortfolio(ctx context.Context, req *request.ReorderRequest) error
	MovePortfolio(ctx context.Context, req *request.MoveRequest) ([]response.PortfolioResponse, error)
}

type portfolioService struct {
	repo repository.PortfolioRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewPortfolioService(repo repository.PortfolioRepository, log *zap.Logger) PortfolioService {
	return &portfolioService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "portfolio")),
	}
}

func portfolioKey(item *entity.PortfolioItem) string { return item.ID.String() }

func (s *portfolioService) Categories() []response.CategoryResponse {
	return response.CategoriesToResponse(entity.Categories)
}

func (s *portfolioService) ListPortfolio(ctx context.Context, filter PortfolioFilter) ([]response.PortfolioResponse, error) {
	var categories []entity.Category

	if filter.Group != "" {
		group, err := entity.ParseCategoryGroup(filter.Group)
		if err != nil {
			return nil, fieldError("group", "Must be one of: video, web, design")
		}
		categories = entity.CategoriesInGroup(group)
	}

	if filter.Category != "" {
		category, err := entity.ParseCategory(filter.Category)
		if err != nil {
			return nil, fieldError("category", categoryChoices())
		}
		if categories != nil && !slices.Contains(categories, category) {
			return []response.PortfolioResponse{}, nil
		}
		categories = []entity.Category{category}
	}

	items, err := s.repo.FindAll(ctx, categories)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}
	return response.PortfolioListToResponse(items), nil
}

func (s *portfolioService) CreatePortfolio(ctx context.Context, req *request.CreatePortfolioRequest) (*response.PortfolioResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create portfolio validation failed", zap.Error(err))
		return nil, err
	}

	category, err := entity.ParseCategory(req.Category)
	if err != nil {
		return nil, fieldError("category", categoryChoices())
	}

	now := s.now()
	item := &entity.PortfolioItem{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:        req.Title,
		Category:     category,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Description:  req.Description,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create portfolio item: %w", err)
	}

	s.log.Info("Portfolio item created",
		zap.String("portfolio_id", item.ID.String()),
		zap.String("category", string(category)),
	)
	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (s *portfolioService) UpdatePortfolio(ctx context.Context, req *request.UpdatePortfolioRequest) (*response.PortfolioResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: portfolio ID required", ErrInvalidInput)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	var category entity.Category
	if req.Category != nil {
		c, err := entity.ParseCategory(*req.Category)
		if err != nil {
			return nil, fieldError("category", categoryChoices())
		}
		category = c
	}

	id, _ := uuid.Parse(req.ID)
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find portfolio item: %w", err)
	}
	if item == nil {
		return nil, fmt.Errorf("portfolio item %s: %w", req.ID, ErrNotFound)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Category != nil {
		item.Category = category
	}
	if req.VideoURL != nil {
		item.VideoURL = *req.VideoURL
	}
	if req.ThumbnailURL != nil {
		item.ThumbnailURL = req.ThumbnailURL
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.DisplayOrder != nil {
		item.DisplayOrder = *req.DisplayOrder
	}
	item.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, item); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("portfolio item %s: %w", req.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("update portfolio item: %w", err)
	}

	s.log.Info("Portfolio item updated", zap.String("portfolio_id", req.ID))
	resp := response.PortfolioToResponse(item)
	return &resp, nil
}

func (s *portfolioService) DeletePortfolio(ctx context.Context, id string) error {
	itemID, err := parseID("portfolio", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("delete portfolio item: %w", err)
	}
	return nil
}

func (s *portfolioService) ReorderPortfolio(ctx context.Context, req *request.ReorderRequest) error {
	positions, err := parsePositions(req)
	if err != nil {
		return err
	}
	if err := s.repo.Reorder(ctx, positions); err != nil {
		return fmt.Errorf("reorder portfolio: %w", err)
	}
	metrics.IncReorder("portfolio")
	s.log.Info("Portfolio reordered", zap.Int("count", len(positions)))
	return nil
}

func (s *portfolioService) MovePortfolio(ctx context.Context, req *request.MoveRequest) ([]response.PortfolioResponse, error) {
	dragged, target, err := parseMove(req)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.FindAll(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("list portfolio: %w", err)
	}

	moved, ok := reorder.MoveByID(items, portfolioKey, dragged, target)
	if !ok {
		return response.PortfolioListToResponse(items), nil
	}

	if err := s.repo.Reorder(ctx, reorder.Positions(moved, portfolioKey)); err != nil {
		return nil, fmt.Errorf("reorder portfolio: %w", err)
	}
	for i, item := range moved {
		item.DisplayOrder = i
	}

	metrics.IncReorder("portfolio")
	return response.PortfolioListToResponse(moved), nil
}
