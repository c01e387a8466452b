package middleware

import (
	"context"
	"net/http"
	"strings"

	"studio-site/internal/data/entity"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

// AdminPasswordHeader carries the shared admin secret.
const AdminPasswordHeader = "x-admin-password"

// SessionFinder looks up a live admin session by token.
type SessionFinder interface {
	FindValidSession(ctx context.Context, token string) (*entity.AdminSession, error)
}

// AdminAuth gates the admin API. It accepts either a Bearer session token issued by
// /api/admin/login or the shared secret in the x-admin-password header.
func AdminAuth(sessions SessionFinder, sharedSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret := r.Header.Get(AdminPasswordHeader); secret != "" {
				if !utils.SecretEqual(secret, sharedSecret) {
					logger.Warn("Invalid admin shared secret",
						zap.String("path", r.URL.Path),
						zap.String("ip", r.RemoteAddr))
					utils.ResponseUnauthorized(w, "Unauthorized")
					return
				}
				ctx := utils.SetAuthMethodContext(r.Context(), utils.AuthMethodSharedSecret)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}
			token := strings.TrimSpace(parts[1])

			session, err := sessions.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetTokenContext(r.Context(), token)
			ctx = utils.SetAuthMethodContext(ctx, utils.AuthMethodSession)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
