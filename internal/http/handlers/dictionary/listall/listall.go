// Package listall реализует административный HTTP-обработчик выдачи всех
// словарных записей, включая неактивные, с необязательным фильтром по категории.
package listall

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

// Handler обрабатывает HTTP-запросы на получение всех словарных записей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики словарей.
type Service interface {
	List(ctx context.Context, category string) ([]models.DictionaryEntry, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Все словарные записи (админ)
// @Description Возвращает все словарные записи без фильтра активности. Параметр category ограничивает выборку одной категорией.
// @Tags Admin
// @Produce  json
// @Param category query string false "Категория словаря"
// @Success 200 {object} map[string]any "Список словарных записей"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при чтении словарей"
// @Security BearerAuth
// @Router /admin/dictionaries [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dictionary.listall"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	category := r.URL.Query().Get("category")

	entries, err := h.service.List(r.Context(), category)
	if err != nil {
		log.Error("failed to list dictionary entries", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list dictionary entries"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"entries": entries,
	}))
}
