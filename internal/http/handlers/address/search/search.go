// Package search реализует HTTP-обработчик поиска адреса по строке запроса
// для заполнения адресных полей анкеты.
package search

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/address"
	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/kakao"
	"github.com/memora/intake/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы поиска адреса.
type Handler struct {
	log    *slog.Logger
	picker address.Picker
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, picker address.Picker) *Handler {
	return &Handler{log: log, picker: picker}
}

// ServeHTTP godoc
// @Summary Поиск адреса
// @Description Возвращает кандидатов адреса по строке запроса (минимум 2 символа). При потоке с виджетом поиск на сервере недоступен.
// @Tags Address
// @Produce  json
// @Param query query string true "Строка запроса"
// @Success 200 {object} map[string]any "Кандидаты адреса"
// @Failure 400 {object} response.ErrorResponse "Слишком короткий запрос или поиск не поддерживается"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при поиске адреса"
// @Security BearerAuth
// @Router /address/search [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.address.search"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	query := r.URL.Query().Get("query")

	candidates, err := h.picker.Candidates(r.Context(), query)
	if err != nil {
		switch {
		case errors.Is(err, kakao.ErrQueryTooShort):
			log.Info("query too short")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("query must be at least 2 characters"))
		case errors.Is(err, address.ErrSearchUnsupported):
			log.Info("search unsupported by configured picker")
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("address search is not available"))
		default:
			log.Error("failed to search address", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not search address"))
		}
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"candidates": candidates,
	}))
}
