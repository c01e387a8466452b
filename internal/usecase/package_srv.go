package usecase

import (
	"context"
	"errors"
	"fmt"
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

type PackageService interface {
	ListPackages(ctx context.Context) ([]response.PackageResponse, error)
	CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error)
	UpdatePackage(ctx context.Context, req *request.UpdatePackageRequest) (*response.PackageResponse, error)
	DeletePackage(ctx context.Context, id string) error
	ReorderPackages(ctx context.Context, req *request.ReorderRequest) error
	MovePackage(ctx context.Context, req *request.MoveRequest) ([]response.PackageResponse, error)
}

type packageService struct {
	repo repository.PackageRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewPackageService(repo repository.PackageRepository, log *zap.Logger) PackageService {
	return &packageService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "package")),
	}
}

func packageKey(p *entity.Package) string { return p.ID.String() }

func (s *packageService) ListPackages(ctx context.Context) ([]response.PackageResponse, error) {
	packages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return response.PackagesToResponse(packages), nil
}

func (s *packageService) CreatePackage(ctx context.Context, req *request.CreatePackageRequest) (*response.PackageResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create package validation failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	pkg := &entity.Package{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:          req.Name,
		Description:   req.Description,
		StartingPrice: req.StartingPrice,
		Deliverables:  req.Deliverables,
		IsPopular:     req.IsPopular,
		DisplayOrder:  req.DisplayOrder,
	}

	if err := s.repo.Create(ctx, pkg); err != nil {
		return nil, fmt.Errorf("create package: %w", err)
	}

	s.log.Info("Package created", zap.String("package_id", pkg.ID.String()))
	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) UpdatePackage(ctx context.Context, req *request.UpdatePackageRequest) (*response.PackageResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: package ID required", ErrInvalidInput)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	id, _ := uuid.Parse(req.ID)
	pkg, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find package: %w", err)
	}
	if pkg == nil {
		return nil, fmt.Errorf("package %s: %w", req.ID, ErrNotFound)
	}

	if req.Name != nil {
		pkg.Name = *req.Name
	}
	if req.Description != nil {
		pkg.Description = *req.Description
	}
	if req.StartingPrice != nil {
		pkg.StartingPrice = *req.StartingPrice
	}
	if req.Deliverables != nil {
		pkg.Deliverables = *req.Deliverables
		if pkg.Deliverables == nil {
			pkg.Deliverables = []string{}
		}
	}
	if req.IsPopular != nil {
		pkg.IsPopular = *req.IsPopular
	}
	if req.DisplayOrder != nil {
		pkg.DisplayOrder = *req.DisplayOrder
	}
	pkg.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, pkg); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("package %s: %w", req.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("update package: %w", err)
	}

	s.log.Info("Package updated", zap.String("package_id", req.ID))
	resp := response.PackageToResponse(pkg)
	return &resp, nil
}

func (s *packageService) DeletePackage(ctx context.Context, id string) error {
	packageID, err := parseID("package", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, packageID); err != nil {
		return fmt.Errorf("delete package: %w", err)
	}
	return nil
}

func (s *packageService) ReorderPackages(ctx context.Context, req *request.ReorderRequest) error {
	positions, err := parsePositions(req)
	if err != nil {
		return err
	}
	if err := s.repo.Reorder(ctx, positions); err != nil {
		return fmt.Errorf("reorder packages: %w", err)
	}
	metrics.IncReorder("packages")
	s.log.Info("Packages reordered", zap.Int("count", len(positions)))
	return nil
}

func (s *packageService) MovePackage(ctx context.Context, req *request.MoveRequest) ([]response.PackageResponse, error) {
	dragged, target, err := parseMove(req)
	if err != nil {
		return nil, err
	}

	packages, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}

	moved, ok := reorder.MoveByID(packages, packageKey, dragged, target)
	if !ok {
		return response.PackagesToResponse(packages), nil
	}

	if err := s.repo.Reorder(ctx, reorder.Positions(moved, packageKey)); err != nil {
		return nil, fmt.Errorf("reorder packages: %w", err)
	}
	for i, p := range moved {
		p.DisplayOrder = i
	}

	metrics.IncReorder("packages")
	s.log.Info("Package moved",
		zap.String("dragged_id", dragged),
		zap.String("target_id", target),
	)
	return response.PackagesToResponse(moved), nil
}
