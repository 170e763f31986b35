// Package toggle реализует административный HTTP-обработчик переключения
// признака активности учётной записи.
package toggle

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/middlewarectx"
	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Handler обрабатывает HTTP-запросы переключения активности пользователя.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики пользователей.
type Service interface {
	ToggleActive(ctx context.Context, actor *models.User, userUID string) (bool, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Переключение активности пользователя (админ)
// @Description Инвертирует признак активности учётной записи и возвращает новое значение. Отключённый пользователь не может войти.
// @Tags Admin
// @Produce  json
// @Param uid path string true "Идентификатор пользователя"
// @Success 200 {object} map[string]any "Новое значение признака активности"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при переключении"
// @Security BearerAuth
// @Router /admin/users/{uid}/toggle [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.toggle"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	actor, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	userUID := chi.URLParam(r, "uid")
	if userUID == "" {
		log.Error("empty user uid")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user uid"))
		return
	}

	isActive, err := h.service.ToggleActive(r.Context(), actor, userUID)
	if err != nil {
		log.Error("failed to toggle user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle user"))
		return
	}

	log.Info("user toggled", slog.String("uid", userUID), slog.Bool("is_active", isActive))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"is_active": isActive,
	}))
}
