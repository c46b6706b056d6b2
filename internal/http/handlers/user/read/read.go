// Package read реализует HTTP-обработчик получения пользователя по ID.
//
// Handler извлекает ID из URL-параметров, вызывает бизнес-логику и возвращает
// данные пользователя в JSON-формате без хэша пароля.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-directory/internal/http/response"
	"github.com/magabrotheeeer/user-directory/internal/lib/sl"
	"github.com/magabrotheeeer/user-directory/internal/models"
)

// Handler обрабатывает запросы на получение пользователя по идентификатору.
type Handler struct {
	log     *slog.Logger // Логгер для записи информации и ошибок
	service Service      // Сервис бизнес-логики чтения пользователя
}

// Service описывает интерфейс бизнес-логики чтения пользователя.
type Service interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить пользователя по ID
// @Description Возвращает пользователя по положительному целому идентификатору.
// @Tags Users
// @Produce  json
// @Param id path int true "ID пользователя"
// @Success 200 {object} response.Response "Данные пользователя"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 404 {object} response.ErrorResponse "Пользователь не найден"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users/{id} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.read"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		log.Error("failed to decode id from url")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("id must be a positive integer"))
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		log.Info("user not found", slog.Int64("id", id))
		w.WriteHeader(http.StatusNotFound)
		render.JSON(w, r, response.Error("user not found"))
		return
	case errors.Is(err, models.ErrStorageUnavailable):
		log.Error("storage unavailable", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("storage unavailable"))
		return
	case err != nil:
		log.Error("failed to read user", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not read user"))
		return
	}

	log.Info("success to read user", slog.Int64("id", user.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"user": models.NewUserView(user),
	}))
}
