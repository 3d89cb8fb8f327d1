package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/frontandrew/cda/internal/delivery/http/middleware"
	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/notify"
	"github.com/frontandrew/cda/internal/pkg/jwt"
	"github.com/frontandrew/cda/internal/pkg/logger"
)

// AuthService - контракт сессионного хранилища со стороны HTTP слоя
type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout() error
	CurrentUser() *domain.User
}

// AuthHandler обрабатывает запросы аутентификации
type AuthHandler struct {
	authService  AuthService
	tokenService *jwt.TokenService
	toasts       *notify.Queue
	logger       logger.Logger
}

// NewAuthHandler создает новый handler
func NewAuthHandler(authService AuthService, tokenService *jwt.TokenService, toasts *notify.Queue, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		toasts:       toasts,
		logger:       log,
	}
}

// loginRequest - тело запроса на вход
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login обрабатывает вход пользователя
// POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.toasts.Push("Credenciales inválidas", notify.SeverityError)
			respondError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		h.logger.Error("Failed to login user", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	token, expiresAt, err := h.tokenService.Generate(user)
	if err != nil {
		h.logger.Error("Failed to issue session token", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to login")
		return
	}

	h.toasts.Push("Sesión iniciada correctamente", notify.SeveritySuccess)
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data": map[string]interface{}{
			"user":       user,
			"token":      token,
			"expires_at": expiresAt.Format("2006-01-02T15:04:05Z07:00"),
		},
	})
}

// Logout завершает текущую сессию
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.authService.Logout(); err != nil {
		h.logger.Error("Failed to logout", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to logout")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetMe возвращает пользователя текущей сессии
// GET /api/v1/auth/me
func (h *AuthHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user := h.authService.CurrentUser()
	if user == nil || user.ID != claims.UserID {
		respondError(w, http.StatusUnauthorized, "No active session")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    user,
	})
}
