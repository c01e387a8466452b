package adaptor

import (
	"net"
	"net/http"

	"studio-site/internal/dto/request"
	"studio-site/internal/usecase"
	"studio-site/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if !validateRequest(w, req) {
		return
	}

	meta := usecase.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: remoteIP(r),
	}

	resp, err := h.service.Login(r.Context(), &req, meta)
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/admin/logout (admin)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		// shared-secret callers have no session to revoke
		utils.ResponseSuccess(w, "No active session", nil)
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Session handles GET /api/admin/session (admin)
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	method, _ := utils.GetAuthMethodFromContext(r.Context())
	token, _ := utils.GetTokenFromContext(r.Context())

	resp, err := h.service.Session(r.Context(), method, token)
	if err != nil {
		handleServiceError(w, h.log, err, "check session")
		return
	}

	utils.ResponseSuccess(w, "success", resp)
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
