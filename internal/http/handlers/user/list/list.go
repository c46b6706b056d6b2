// Package list реализует HTTP-обработчик постраничного списка пользователей.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-directory/internal/http/response"
	"github.com/magabrotheeeer/user-directory/internal/lib/sl"
	"github.com/magabrotheeeer/user-directory/internal/models"
)

// Handler обрабатывает запросы на получение списка пользователей.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка пользователей.
type Service interface {
	List(ctx context.Context, offset, limit int) ([]*models.User, error)
}

// New создает новый Handler с переданным логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список пользователей
// @Description Возвращает страницу пользователей в порядке возрастания ID. Limit ограничен сотней записей.
// @Tags Users
// @Produce  json
// @Param offset query int false "Смещение (по умолчанию 0)"
// @Param limit query int false "Размер страницы (по умолчанию 100)"
// @Success 200 {object} response.Response "Страница пользователей"
// @Failure 400 {object} response.ErrorResponse "Некорректные offset или limit"
// @Failure 503 {object} response.ErrorResponse "Хранилище недоступно"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /users [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	offset, ok := queryInt(r, "offset", 0)
	if !ok {
		log.Error("failed to decode offset from query")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("offset must be an integer"))
		return
	}
	limit, ok := queryInt(r, "limit", 0)
	if !ok {
		log.Error("failed to decode limit from query")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("limit must be an integer"))
		return
	}

	users, err := h.service.List(r.Context(), offset, limit)
	switch {
	case errors.Is(err, models.ErrInvalidPagination):
		log.Error("invalid pagination", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("offset and limit must not be negative"))
		return
	case errors.Is(err, models.ErrStorageUnavailable):
		log.Error("storage unavailable", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("storage unavailable"))
		return
	case err != nil:
		log.Error("failed to list users", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list users"))
		return
	}

	views := make([]models.UserView, 0, len(users))
	for _, u := range users {
		views = append(views, models.NewUserView(u))
	}

	log.Info("list users", slog.Int("count", len(views)))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"list_count": len(views),
		"users":      views,
	}))
}

// queryInt читает целочисленный параметр запроса; пустое значение заменяется
// значением по умолчанию, нечисловое считается ошибкой вызывающей стороны.
func queryInt(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
