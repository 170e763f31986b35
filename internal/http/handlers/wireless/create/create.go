// Package create реализует HTTP-обработчик приёма анкеты беспроводного
// подключения. Значение аутентификации обязательно для всех способов,
// кроме NONE; эту проверку выполняет сервис анкет.
package create

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/memora/intake/internal/http/middlewarectx"
	"github.com/memora/intake/internal/http/response"
	"github.com/memora/intake/internal/lib/sl"
	"github.com/memora/intake/internal/models"
	formsservice "github.com/memora/intake/internal/services/forms"
)

// Handler обрабатывает HTTP-запросы приёма анкет беспроводного подключения.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики анкет.
type Service interface {
	CreateWireless(ctx context.Context, author *models.User, req models.DummyWirelessForm) (string, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Приём анкеты беспроводного подключения
// @Description Принимает анкету беспроводного подключения. Значение аутентификации обязательно для всех способов, кроме NONE. Анкета сохраняется со статусом PENDING.
// @Tags Forms
// @Accept  json
// @Produce  json
// @Param request body models.DummyWirelessForm true "Данные анкеты"
// @Success 200 {object} map[string]any "Идентификатор и статус анкеты"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера при сохранении анкеты"
// @Security BearerAuth
// @Router /forms/wireless [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.wireless.create"
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

	var req models.DummyWirelessForm
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uid, err := h.service.CreateWireless(r.Context(), author, req)
	if err != nil {
		if formsservice.IsValidationError(err) {
			log.Error("form validation failed", sl.Err(err))
			w.WriteHeader(http.StatusUnprocessableEntity)
			render.JSON(w, r, response.Error(err.Error()))
			return
		}
		log.Error("failed to save wireless form", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not save form"))
		return
	}

	log.Info("wireless form accepted", slog.String("uid", uid))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"uid":    uid,
		"status": models.StatusPending,
	}))
}
