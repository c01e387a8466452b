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

type TestimonialService interface {
	// ListTestimonials returns active testimonials only when activeOnly is set (public view).
	ListTestimonials(ctx context.Context, activeOnly bool) ([]response.TestimonialResponse, error)
	CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error)
	UpdateTestimonial(ctx context.Context, req *request.UpdateTestimonialRequest) (*response.TestimonialResponse, error)
	DeleteTestimonial(ctx context.Context, id string) error
	ReorderTestimonials(ctx context.Context, req *request.ReorderRequest) error
	MoveTestimonial(ctx context.Context, req *request.MoveRequest) ([]response.TestimonialResponse, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
	now  func() time.Time
	log  *zap.Logger
}

func NewTestimonialService(repo repository.TestimonialRepository, log *zap.Logger) TestimonialService {
	return &testimonialService{
		repo: repo,
		now:  time.Now,
		log:  log.With(zap.String("service", "testimonial")),
	}
}

func testimonialKey(t *entity.Testimonial) string { return t.ID.String() }

func (s *testimonialService) ListTestimonials(ctx context.Context, activeOnly bool) ([]response.TestimonialResponse, error) {
	testimonials, err := s.repo.FindAll(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return response.TestimonialsToResponse(testimonials), nil
}

func (s *testimonialService) CreateTestimonial(ctx context.Context, req *request.CreateTestimonialRequest) (*response.TestimonialResponse, error) {
	if err := validate(req); err != nil {
		s.log.Warn("Create testimonial validation failed", zap.Error(err))
		return nil, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	t := &entity.Testimonial{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		Name:         req.Name,
		Role:         req.Role,
		Message:      req.Message,
		ImageURL:     req.ImageURL,
		IsActive:     isActive,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}

	s.log.Info("Testimonial created", zap.String("testimonial_id", t.ID.String()))
	resp := response.TestimonialToResponse(t)
	return &resp, nil
}

func (s *testimonialService) UpdateTestimonial(ctx context.Context, req *request.UpdateTestimonialRequest) (*response.TestimonialResponse, error) {
	if req.ID == "" {
		return nil, fmt.Errorf("%w: testimonial ID required", ErrInvalidInput)
	}
	if err := validate(req); err != nil {
		return nil, err
	}

	id, _ := uuid.Parse(req.ID)
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find testimonial: %w", err)
	}
	if t == nil {
		return nil, fmt.Errorf("testimonial %s: %w", req.ID, ErrNotFound)
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Role != nil {
		t.Role = req.Role
	}
	if req.Message != nil {
		t.Message = *req.Message
	}
	if req.ImageURL != nil {
		t.ImageURL = *req.ImageURL
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.DisplayOrder != nil {
		t.DisplayOrder = *req.DisplayOrder
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("testimonial %s: %w", req.ID, ErrNotFound)
		}
		return nil, fmt.Errorf("update testimonial: %w", err)
	}

	s.log.Info("Testimonial updated", zap.String("testimonial_id", req.ID))
	resp := response.TestimonialToResponse(t)
	return &resp, nil
}

func (s *testimonialService) DeleteTestimonial(ctx context.Context, id string) error {
	testimonialID, err := parseID("testimonial", id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, testimonialID); err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}

func (s *testimonialService) ReorderTestimonials(ctx context.Context, req *request.ReorderRequest) error {
	positions, err := parsePositions(req)
	if err != nil {
		return err
	}
	if err := s.repo.Reorder(ctx, positions); err != nil {
		return fmt.Errorf("reorder testimonials: %w", err)
	}
	metrics.IncReorder("testimonials")
	s.log.Info("Testimonials reordered", zap.Int("count", len(positions)))
	return nil
}

func (s *testimonialService) MoveTestimonial(ctx context.Context, req *request.MoveRequest) ([]response.TestimonialResponse, error) {
	dragged, target, err := parseMove(req)
	if err != nil {
		return nil, err
	}

	testimonials, err := s.repo.FindAll(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}

	moved, ok := reorder.MoveByID(testimonials, testimonialKey, dragged, target)
	if !ok {
		return response.TestimonialsToResponse(testimonials), nil
	}

	if err := s.repo.Reorder(ctx, reorder.Positions(moved, testimonialKey)); err != nil {
		return nil, fmt.Errorf("reorder testimonials: %w", err)
	}
	for i, t := range moved {
		t.DisplayOrder = i
	}

	metrics.IncReorder("testimonials")
	return response.TestimonialsToResponse(moved), nil
}
