package usecase

import (
	"context"
	"errors"
	"sync"

	"studio-site/internal/data/entity"
	"studio-site/internal/data/repository"
	"studio-site/pkg/mailer"
	"studio-site/pkg/reorder"

	"github.com/google/uuid"
)

var errDB = errors.New("connection refused")

type mockBookingRepo struct {
	bookings  []*entity.Booking
	createErr error
	calls     int
}

func (m *mockBookingRepo) Create(ctx context.Context, b *entity.Booking) error {
	m.calls++
	if m.createErr != nil {
		return m.createErr
	}
	m.bookings = append(m.bookings, b)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBookingRepo) FindAll(ctx context.Context, status *entity.BookingStatus) ([]*entity.Booking, error) {
	var out []*entity.Booking
	for _, b := range m.bookings {
		if status == nil || b.Status == *status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BookingStatus) (*entity.Booking, error) {
	for _, b := range m.bookings {
		if b.ID == id {
			b.Status = status
			return b, nil
		}
	}
	return nil, repository.ErrNotFound
}

type mockPackageRepo struct {
	packages   []*entity.Package
	reorders   [][]reorder.Position
	reorderErr error
	deleted    []uuid.UUID
}

func (m *mockPackageRepo) Create(ctx context.Context, p *entity.Package) error {
	m.packages = append(m.packages, p)
	return nil
}

func (m *mockPackageRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	for _, p := range m.packages {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockPackageRepo) FindAll(ctx context.Context) ([]*entity.Package, error) {
	return append([]*entity.Package(nil), m.packages...), nil
}

func (m *mockPackageRepo) Update(ctx context.Context, p *entity.Package) error {
	for i, existing := range m.packages {
		if existing.ID == p.ID {
			m.packages[i] = p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockPackageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleted = append(m.deleted, id)
	for i, p := range m.packages {
		if p.ID == id {
			m.packages = append(m.packages[:i], m.packages[i+1:]...)
			break
		}
	}
	return nil
}

func (m *mockPackageRepo) Reorder(ctx context.Context, positions []reorder.Position) error {
	if m.reorderErr != nil {
		return m.reorderErr
	}
	m.reorders = append(m.reorders, positions)
	return nil
}

type mockPortfolioRepo struct {
	items      []*entity.PortfolioItem
	lastFilter []entity.Category
	findCalls  int
	reorders   [][]reorder.Position
}

func (m *mockPortfolioRepo) Create(ctx context.Context, item *entity.PortfolioItem) error {
	m.items = append(m.items, item)
	return nil
}

func (m *mockPortfolioRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.PortfolioItem, error) {
	for _, item := range m.items {
		if item.ID == id {
			cp := *item
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockPortfolioRepo) FindAll(ctx context.Context, categories []entity.Category) ([]*entity.PortfolioItem, error) {
	m.findCalls++
	m.lastFilter = categories
	var out []*entity.PortfolioItem
	for _, item := range m.items {
		if len(categories) == 0 {
			out = append(out, item)
			continue
		}
		for _, c := range categories {
			if item.Category == c {
				out = append(out, item)
				break
			}
		}
	}
	return out, nil
}

func (m *mockPortfolioRepo) Update(ctx context.Context, item *entity.PortfolioItem) error {
	for i, existing := range m.items {
		if existing.ID == item.ID {
			m.items[i] = item
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockPortfolioRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockPortfolioRepo) Reorder(ctx context.Context, positions []reorder.Position) error {
	m.reorders = append(m.reorders, positions)
	return nil
}

type mockTestimonialRepo struct {
	testimonials []*entity.Testimonial
	activeOnly   []bool
}

func (m *mockTestimonialRepo) Create(ctx context.Context, t *entity.Testimonial) error {
	m.testimonials = append(m.testimonials, t)
	return nil
}

func (m *mockTestimonialRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Testimonial, error) {
	for _, t := range m.testimonials {
		if t.ID == id {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockTestimonialRepo) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Testimonial, error) {
	m.activeOnly = append(m.activeOnly, activeOnly)
	var out []*entity.Testimonial
	for _, t := range m.testimonials {
		if !activeOnly || t.IsActive {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockTestimonialRepo) Update(ctx context.Context, t *entity.Testimonial) error {
	for i, existing := range m.testimonials {
		if existing.ID == t.ID {
			m.testimonials[i] = t
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *mockTestimonialRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (m *mockTestimonialRepo) Reorder(ctx context.Context, positions []reorder.Position) error {
	return nil
}

type mockSessionRepo struct {
	sessions map[string]*entity.AdminSession
	revoked  []string
}

func newMockSessionRepo() *mockSessionRepo {
	return &mockSessionRepo{sessions: make(map[string]*entity.AdminSession)}
}

func (m *mockSessionRepo) Create(ctx context.Context, s *entity.AdminSession) error {
	m.sessions[s.Token.String()] = s
	return nil
}

func (m *mockSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.AdminSession, error) {
	s, ok := m.sessions[token]
	if !ok || s.RevokedAt != nil {
		return nil, nil
	}
	return s, nil
}

func (m *mockSessionRepo) Revoke(ctx context.Context, token string) error {
	s, ok := m.sessions[token]
	if !ok || s.RevokedAt != nil {
		return repository.ErrNotFound
	}
	now := s.CreatedAt
	s.RevokedAt = &now
	m.revoked = append(m.revoked, token)
	return nil
}

func (m *mockSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	return 0, nil
}

type mockSender struct {
	mu   sync.Mutex
	sent []mailer.Message
	err  error
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// mockNotifier records NotifyBooking calls.
type mockNotifier struct {
	NotificationService
	notified []BookingDetails
	err      error
}

func (m *mockNotifier) NotifyBooking(ctx context.Context, d BookingDetails) error {
	m.notified = append(m.notified, d)
	return m.err
}
