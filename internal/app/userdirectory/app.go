// Package userdirectory собирает приложение: хранилище, кеш, сервис,
// маршруты и HTTP-сервер с корректным завершением.
package userdirectory

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/user-directory/internal/cache"
	"github.com/magabrotheeeer/user-directory/internal/config"
	"github.com/magabrotheeeer/user-directory/internal/lib/password"
	services "github.com/magabrotheeeer/user-directory/internal/services/user"
	"github.com/magabrotheeeer/user-directory/internal/storage/repository"
)

// App держит HTTP-сервер и ресурсы, которые нужно закрыть при остановке.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует все зависимости приложения по конфигу.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, err
	}
	if err = db.Init(ctx); err != nil {
		return nil, err
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	hasher := password.New(cfg.HashCost)
	userService := services.NewUserService(db, cacheRedis, hasher, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, userService, db)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
// Пулы кеша и хранилища закрываются на любом пути выхода.
func (a *App) Run(ctx context.Context) error {
	defer a.closeResources()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		return a.server.Shutdown(timeoutCtx)
	}
}

func (a *App) closeResources() {
	if cerr := a.cache.Close(); cerr != nil {
		a.logger.Warn("failed to close cache", slog.Any("err", cerr))
	}
	if dberr := a.db.DB.Close(); dberr != nil {
		a.logger.Warn("failed to close storage", slog.Any("err", dberr))
	}
}
