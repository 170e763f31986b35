// Package complete реализует HTTP-обработчик завершения встраиваемого
// виджета почтовых индексов: данные виджета нормализуются в адрес и индекс.
package complete

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

// Handler обрабатывает HTTP-запросы завершения виджета.
type Handler struct {
	log    *slog.Logger
	widget *address.WidgetPicker
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, widget *address.WidgetPicker) *Handler {
	return &Handler{log: log, widget: widget}
}

// ServeHTTP godoc
// @Summary Завершение виджета адреса
// @Description Нормализует данные завершения виджета почтовых индексов: приоритет у дорожного адреса, затем земельный.
// @Tags Address
// @Accept  json
// @Produce  json
// @Param request body address.WidgetResult true "Данные завершения виджета"
// @Success 200 {object} map[string]any "Адрес и индекс"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Security BearerAuth
// @Router /address/complete [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.address.complete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var res address.WidgetResult
	if err := json.NewDecoder(r.Body).Decode(&res); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	sel := h.widget.FromResult(res)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"address":  sel.Address,
		"zip_code": sel.ZipCode,
	}))
}
