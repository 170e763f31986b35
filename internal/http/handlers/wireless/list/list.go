// Package list реализует HTTP-обработчик выдачи анкет беспроводного
// подключения, принятых текущим сотрудником.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/middlewarectx"
	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

const defaultLimit = 20

// Handler обрабатывает HTTP-запросы списка анкет беспроводного подключения.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики анкет.
type Service interface {
	ListWireless(ctx context.Context, authorUID string, limit, offset int) ([]*models.WirelessForm, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Анкеты беспроводного подключения
// @Description Возвращает анкеты беспроводного подключения, принятые текущим сотрудником, новые первыми.
// @Tags Forms
// @Produce  json
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Список анкет"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении анкет"
// @Security BearerAuth
// @Router /forms/wireless [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.wireless.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	author, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	limit, offset := pageParams(r)

	forms, err := h.service.ListWireless(r.Context(), author.UID, limit, offset)
	if err != nil {
		log.Error("failed to list wireless forms", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list forms"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"forms": forms,
	}))
}

func pageParams(r *http.Request) (int, int) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	return limit, offset
}
