package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studio-site/internal/dto/request"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

func TestLogin(t *testing.T) {
	hash, err := utils.HashPassword("hashed-secret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}

	tests := []struct {
		name    string
		config  utils.AdminConfig
		req     request.LoginRequest
		wantErr error
	}{
		{"plain password", utils.AdminConfig{Username: "admin", Password: "s3cret"}, request.LoginRequest{Username: "admin", Password: "s3cret"}, nil},
		{"bcrypt hash", utils.AdminConfig{Username: "admin", PasswordHash: hash}, request.LoginRequest{Username: "admin", Password: "hashed-secret"}, nil},
		{"hash wins over plain", utils.AdminConfig{Username: "admin", Password: "plain", PasswordHash: hash}, request.LoginRequest{Username: "admin", Password: "plain"}, ErrUnauthorized},
		{"wrong password", utils.AdminConfig{Username: "admin", Password: "s3cret"}, request.LoginRequest{Username: "admin", Password: "guess"}, ErrUnauthorized},
		{"wrong username", utils.AdminConfig{Username: "admin", Password: "s3cret"}, request.LoginRequest{Username: "root", Password: "s3cret"}, ErrUnauthorized},
		{"nothing configured", utils.AdminConfig{Username: "admin"}, request.LoginRequest{Username: "admin", Password: "x"}, ErrUnauthorized},
		{"missing password", utils.AdminConfig{Username: "admin", Password: "s3cret"}, request.LoginRequest{Username: "admin"}, ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newMockSessionRepo()
			s := NewAuthService(sessions, tt.config, zap.NewNop())

			resp, err := s.Login(context.Background(), &tt.req, ClientMeta{IPAddress: "10.0.0.1"})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
				if len(sessions.sessions) != 0 {
					t.Error("session created on failed login")
				}
				return
			}
			if err != nil {
				t.Fatalf("Login() error = %v", err)
			}
			if resp.Token == "" {
				t.Fatal("empty token")
			}
			if _, ok := sessions.sessions[resp.Token]; !ok {
				t.Error("session not stored")
			}
		})
	}
}

func TestLoginSessionTTL(t *testing.T) {
	sessions := newMockSessionRepo()
	s := NewAuthService(sessions, utils.AdminConfig{Username: "admin", Password: "pw", SessionTTL: 2 * time.Hour}, zap.NewNop()).(*authService)
	fixed := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	resp, err := s.Login(context.Background(), &request.LoginRequest{Username: "admin", Password: "pw"}, ClientMeta{})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if !resp.ExpiresAt.Equal(fixed.Add(2 * time.Hour)) {
		t.Errorf("expires_at = %v", resp.ExpiresAt)
	}
}

func TestLogoutAndSession(t *testing.T) {
	sessions := newMockSessionRepo()
	s := NewAuthService(sessions, utils.AdminConfig{Username: "admin", Password: "pw"}, zap.NewNop())
	ctx := context.Background()

	resp, err := s.Login(ctx, &request.LoginRequest{Username: "admin", Password: "pw"}, ClientMeta{})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	info, err := s.Session(ctx, utils.AuthMethodSession, resp.Token)
	if err != nil || !info.Authenticated || info.ExpiresAt == nil {
		t.Fatalf("Session() = %+v, %v", info, err)
	}

	if err := s.Logout(ctx, resp.Token); err != nil {
		t.Fatalf("Logout() error = %v", err)
	}
	if err := s.Logout(ctx, resp.Token); !errors.Is(err, ErrNotFound) {
		t.Errorf("second logout = %v, want ErrNotFound", err)
	}

	info, err = s.Session(ctx, utils.AuthMethodSession, resp.Token)
	if err != nil || info.Authenticated {
		t.Errorf("revoked session reported authenticated: %+v", info)
	}

	info, err = s.Session(ctx, utils.AuthMethodSharedSecret, "")
	if err != nil || !info.Authenticated || info.Method != utils.AuthMethodSharedSecret {
		t.Errorf("shared secret session = %+v, %v", info, err)
	}
}
