// Package repository реализует хранилище данных на основе PostgreSQL
// для управления пользователями. Предоставляет методы создания и чтения
// записей, а также первоначальную инициализацию схемы.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	// Регистрация драйвера pgx для использования с database/sql.
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/magabrotheeeer/user-directory/internal/models"
)

// Storage инкапсулирует соединение с базой данных PostgreSQL
// и реализует методы работы с пользователями.
type Storage struct {
	DB *sql.DB
}

// New создаёт подключение к PostgreSQL и проверяет его доступность.
func New(storageConnectionString string) (*Storage, error) {
	const op = "storage.New"

	db, err := sql.Open("pgx", storageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = db.PingContext(context.Background()); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB: db,
	}, nil
}

// Init создаёт таблицу пользователей и уникальные индексы, если их ещё нет.
// Система не использует миграции, схема разворачивается при старте процесса.
func (s *Storage) Init(ctx context.Context) error {
	const op = "storage.Init"

	query := `CREATE TABLE IF NOT EXISTS users (
			      id BIGSERIAL PRIMARY KEY,
			      email TEXT NOT NULL UNIQUE,
			      username TEXT NOT NULL UNIQUE,
			      hashed_password TEXT NOT NULL,
			      is_active BOOLEAN NOT NULL DEFAULT TRUE,
			      created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			      updated_at TIMESTAMPTZ
			  );`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// CheckDatabaseReady проверяет готовность базы данных: схема развернута
// и таблица пользователей доступна. Используется обработчиком /health.
func (s *Storage) CheckDatabaseReady() error {
	var exists bool
	err := s.DB.QueryRow(`SELECT EXISTS (
        SELECT FROM information_schema.tables
        WHERE table_name = 'users'
    )`).Scan(&exists)
	if err != nil || !exists {
		return fmt.Errorf("required table users missing or query error: %w", err)
	}
	return nil
}

// storageErr переводит низкоуровневые ошибки базы в доменные.
// Нарушение уникальности становится ErrEmailTaken или ErrUsernameTaken
// в зависимости от сработавшего ограничения, отмена контекста проходит
// без изменения, всё остальное считается недоступностью хранилища.
func storageErr(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation {
			switch pgErr.ConstraintName {
			case "users_email_key":
				return fmt.Errorf("%s: %w", op, models.ErrEmailTaken)
			case "users_username_key":
				return fmt.Errorf("%s: %w", op, models.ErrUsernameTaken)
			}
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w", op, errors.Join(models.ErrStorageUnavailable, err))
}
