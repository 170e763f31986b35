// Package session реализует HTTP-обработчик восстановления сессии.
//
// Обработчик проверяет токен из заголовка Authorization и возвращает данные
// пользователя. Отсутствующий, истёкший или отозванный токен не считается
// ошибкой: ответ — анонимная сессия (user = null). Повторные вызовы безопасны.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Handler обрабатывает HTTP-запросы восстановления сессии.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс проверки токена.
type Service interface {
	ValidateToken(ctx context.Context, token string) (*models.User, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Восстановление сессии
// @Description Проверяет токен и возвращает пользователя текущей сессии. Невалидный токен даёт анонимный ответ, а не ошибку.
// @Tags Auth
// @Produce  json
// @Success 200 {object} map[string]any "Текущая сессия"
// @Router /session [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.session"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		render.JSON(w, r, response.OKWithData(map[string]any{
			"authenticated": false,
			"user":          nil,
		}))
		return
	}
	tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

	user, err := h.service.ValidateToken(r.Context(), tokenStr)
	if err != nil {
		// Повреждённый или отозванный токен равносилен его отсутствию.
		log.Info("session restore yields anonymous", sl.Err(err))
		render.JSON(w, r, response.OKWithData(map[string]any{
			"authenticated": false,
			"user":          nil,
		}))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"authenticated": true,
		"user": map[string]any{
			"uid":          user.UID,
			"name":         user.Name,
			"username":     user.Username,
			"company_code": user.CompanyCode,
			"role":         user.Role,
		},
	}))
}
