// Package health реализует проверку живости и готовности сервиса.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/user-directory/internal/http/response"
	"github.com/magabrotheeeer/user-directory/internal/lib/sl"
)

// Handler отвечает на запросы проверки живости.
type Handler struct {
	log     *slog.Logger
	checker Checker
}

// Checker описывает проверку готовности хранилища.
type Checker interface {
	CheckDatabaseReady() error
}

// New создает новый Handler.
func New(log *slog.Logger, checker Checker) *Handler {
	return &Handler{
		log:     log,
		checker: checker,
	}
}

// ServeHTTP godoc
// @Summary Проверка живости сервиса
// @Description Возвращает ok, если хранилище готово обслуживать запросы.
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response "Сервис работает"
// @Failure 503 {object} response.ErrorResponse "Хранилище не готово"
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.health"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.checker.CheckDatabaseReady(); err != nil {
		log.Error("storage is not ready", sl.Err(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		render.JSON(w, r, response.Error("storage is not ready"))
		return
	}

	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"status": "ok",
	}))
}
