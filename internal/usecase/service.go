package usecase

import (
	"studio-site/internal/data/repository"
	"studio-site/pkg/mailer"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Booking      BookingService
	Notification NotificationService
	Package      PackageService
	Portfolio    PortfolioService
	Testimonial  TestimonialService
}

func NewService(repo *repository.Repository, sender mailer.Sender, config *utils.Config, log *zap.Logger) *Service {
	notification := NewNotificationService(sender, config.Email, log)

	return &Service{
		Auth:         NewAuthService(repo.Session, config.Admin, log),
		Booking:      NewBookingService(repo.Booking, notification, config.Email.Timeout, log),
		Notification: notification,
		Package:      NewPackageService(repo.Package, log),
		Portfolio:    NewPortfolioService(repo.Portfolio, log),
		Testimonial:  NewTestimonialService(repo.Testimonial, log),
	}
}
