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
	"studio-site/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClientMeta is recorded on the admin session for auditing.
type ClientMeta struct {
	UserAgent string
	IPAddress string
}

type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest, meta ClientMeta) (*response.LoginResponse, error)
	Logout(ctx context.Context, token string) error
	Session(ctx context.Context, method, token string) (*response.SessionResponse, error)
}

type authService struct {
	sessions repository.SessionRepository
	config   utils.AdminConfig
	now      func() time.Time
	log      *zap.Logger
}

func NewAuthService(sessions repository.SessionRepository, config utils.AdminConfig, log *zap.Logger) AuthService {
	if config.SessionTTL <= 0 {
		config.SessionTTL = 24 * time.Hour
	}
	return &authService{
		sessions: sessions,
		config:   config,
		now:      time.Now,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, meta ClientMeta) (*response.LoginResponse, error) {
	// 1. Validasi input
	if err := validate(req); err != nil {
		return nil, err
	}

	// 2. Cek kredensial admin
	if !s.checkCredentials(req.Username, req.Password) {
		s.log.Warn("Admin login failed",
			zap.String("username", req.Username),
			zap.String("ip", meta.IPAddress),
		)
		return nil, ErrUnauthorized
	}

	// 3. Buat session
	now := s.now()
	session := &entity.AdminSession{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Token:     utils.GenerateSessionToken(),
		UserAgent: optional(meta.UserAgent),
		IPAddress: optional(meta.IPAddress),
		ExpiresAt: now.Add(s.config.SessionTTL),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if n, err := s.sessions.CleanExpiredSessions(ctx); err != nil {
		s.log.Warn("Failed to clean expired sessions", zap.Error(err))
	} else if n > 0 {
		s.log.Debug("Expired sessions cleaned", zap.Int64("count", n))
	}

	s.log.Info("Admin logged in", zap.String("ip", meta.IPAddress))

	return &response.LoginResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// checkCredentials prefers the bcrypt hash when one is configured.
func (s *authService) checkCredentials(username, password string) bool {
	userOK := utils.SecretEqual(username, s.config.Username)

	var passOK bool
	switch {
	case s.config.PasswordHash != "":
		passOK = utils.CheckPasswordHash(password, s.config.PasswordHash)
	default:
		passOK = utils.SecretEqual(password, s.config.Password)
	}

	return userOK && passOK
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: no session token", ErrInvalidInput)
	}

	if err := s.sessions.Revoke(ctx, token); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("session: %w", ErrNotFound)
		}
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("Admin logged out")
	return nil
}

func (s *authService) Session(ctx context.Context, method, token string) (*response.SessionResponse, error) {
	resp := &response.SessionResponse{Authenticated: true, Method: method}
	if method != utils.AuthMethodSession {
		return resp, nil
	}

	session, err := s.sessions.FindValidSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	if session == nil {
		return &response.SessionResponse{Authenticated: false}, nil
	}

	resp.ExpiresAt = &session.ExpiresAt
	return resp, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
