// Package services содержит бизнес-логику для работы с пользователями:
// регистрацию с хэшированием пароля, поиск по идентификатору и email,
// постраничный список. Сервис не хранит собственного состояния, каждая
// операция — независимая транзакция над хранилищем.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/user-directory/internal/models"
)

// UserRepository определяет методы для работы с пользователями в хранилище.
type UserRepository interface {
	// CreateUser добавляет пользователя и возвращает полностью заполненную запись.
	CreateUser(ctx context.Context, email, username, hashedPassword string) (*models.User, error)
	// GetUserByID возвращает пользователя по ID, (nil, nil) при отсутствии.
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	// GetUserByEmail возвращает пользователя по email, (nil, nil) при отсутствии.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// ListUsers возвращает страницу пользователей в порядке возрастания ID.
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
}

// Hasher описывает одностороннее преобразование пароля.
type Hasher interface {
	// Hash возвращает солёный хэш пароля.
	Hash(password string) (string, error)
	// Verify проверяет соответствие пароля хэшу.
	Verify(password, hash string) bool
}

const cacheTTL = time.Hour

// UserService реализует бизнес-логику работы с пользователями, включая кеширование чтений.
type UserService struct {
	repo   UserRepository
	cache  Cache
	hasher Hasher
	log    *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, cache Cache, hasher Hasher, log *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		cache:  cache,
		hasher: hasher,
		log:    log,
	}
}

// Register создает нового пользователя с хэшированием пароля.
//
// Предварительная проверка email — best effort: гонка двух одновременных
// регистраций разрешается уникальным ограничением базы, проигравший
// получает ErrEmailTaken или ErrUsernameTaken из репозитория.
func (s *UserService) Register(ctx context.Context, email, username, rawPassword string) (*models.User, error) {
	const op = "services.user.Register"

	existing, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrEmailTaken)
	}

	hashed, err := s.hasher.Hash(rawPassword)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	user, err := s.repo.CreateUser(ctx, email, username, hashed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("registered new user", slog.Int64("id", user.ID))

	cacheKey := fmt.Sprintf("user:%d", user.ID)
	if err := s.cache.Set(cacheKey, user, cacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return user, nil
}

// GetByID возвращает пользователя по ID, используя кеш или репозиторий.
// Отсутствие записи — ErrUserNotFound.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "services.user.GetByID"

	var result *models.User
	cacheKey := fmt.Sprintf("user:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("cache lookup failed", slog.String("key", cacheKey), slog.Any("err", err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if result == nil {
		return nil, fmt.Errorf("%s: %w", op, models.ErrUserNotFound)
	}

	if err := s.cache.Set(cacheKey, result, cacheTTL); err != nil {
		s.log.Warn("failed to cache user", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// GetByEmail возвращает пользователя по email. Отсутствие записи —
// не ошибка, (nil, nil): вызывающая сторона решает сама.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "services.user.GetByEmail"

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return user, nil
}

// List возвращает страницу пользователей без дополнительной фильтрации.
func (s *UserService) List(ctx context.Context, offset, limit int) ([]*models.User, error) {
	const op = "services.user.List"

	users, err := s.repo.ListUsers(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return users, nil
}

// VerifyPassword сверяет пароль с хэшем пользователя. Примитив для будущей
// аутентификации, токены сервис не выпускает.
func (s *UserService) VerifyPassword(user *models.User, rawPassword string) bool {
	return s.hasher.Verify(rawPassword, user.HashedPassword)
}
