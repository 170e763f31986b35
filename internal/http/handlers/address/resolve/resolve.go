// Package resolve реализует HTTP-обработчик выбора кандидата адреса:
// по выбранному кандидату возвращаются адрес и почтовый индекс.
package resolve

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/memora/intake/internal/address"
	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
)

// Handler обрабатывает HTTP-запросы выбора кандидата адреса.
type Handler struct {
	log    *slog.Logger
	picker address.Picker
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, picker address.Picker) *Handler {
	return &Handler{log: log, picker: picker}
}

// ServeHTTP godoc
// @Summary Выбор кандидата адреса
// @Description Возвращает адрес и почтовый индекс выбранного кандидата. Если индекс определить не удалось, поле zip_code пустое, а адрес возвращается всегда.
// @Tags Address
// @Accept  json
// @Produce  json
// @Param request body address.Candidate true "Выбранный кандидат"
// @Success 200 {object} map[string]any "Адрес и индекс"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при определении адреса"
// @Security BearerAuth
// @Router /address/resolve [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.address.resolve"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var c address.Candidate
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	sel, err := h.picker.Resolve(r.Context(), c)
	if err != nil {
		log.Error("failed to resolve address", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not resolve address"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"address":  sel.Address,
		"zip_code": sel.ZipCode,
	}))
}
