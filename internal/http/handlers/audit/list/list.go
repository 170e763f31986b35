// Package list реализует административный HTTP-обработчик выдачи журнала аудита.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

const defaultLimit = 50

// Handler обрабатывает HTTP-запросы журнала аудита.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс журнала аудита.
type Service interface {
	List(ctx context.Context, limit, offset int) ([]*models.AuditRecord, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Журнал аудита (админ)
// @Description Возвращает строки журнала аудита административных операций и приёма анкет, новые первыми.
// @Tags Admin
// @Produce  json
// @Param limit query int false "Размер страницы"
// @Param offset query int false "Смещение"
// @Success 200 {object} map[string]any "Строки журнала аудита"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении журнала"
// @Security BearerAuth
// @Router /admin/audit [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.audit.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	records, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		log.Error("failed to list audit records", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list audit records"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"records": records,
	}))
}
