// Package list реализует HTTP-обработчик выдачи активных словарных записей,
// сгруппированных по категориям, для заполнения полей выбора в анкетах.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
)

// Handler обрабатывает HTTP-запросы на получение сгруппированных словарей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики словарей.
type Service interface {
	GroupedActive(ctx context.Context) (map[string][]models.DictionaryEntry, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Словарные записи для анкет
// @Description Возвращает активные словарные записи, сгруппированные по категориям и упорядоченные по sort_order.
// @Tags Dictionaries
// @Produce  json
// @Success 200 {object} map[string]any "Сгруппированные словари"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении словарей"
// @Security BearerAuth
// @Router /dictionaries [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dictionary.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	grouped, err := h.service.GroupedActive(r.Context())
	if err != nil {
		log.Error("failed to load dictionaries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not load dictionaries"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"dictionaries": grouped,
	}))
}
