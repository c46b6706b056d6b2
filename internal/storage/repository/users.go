package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/magabrotheeeer/user-directory/internal/models"
)

const (
	// DefaultPageSize — размер страницы списка по умолчанию.
	DefaultPageSize = 100
	// MaxPageSize — верхняя граница limit, чтобы ограничить размер ответа.
	MaxPageSize = 100
)

// CreateUser сохраняет нового пользователя в базу данных и возвращает
// полностью заполненную запись, включая назначенный ID и created_at.
func (s *Storage) CreateUser(ctx context.Context, email, username, hashedPassword string) (*models.User, error) {
	const op = "storage.CreateUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, username, hashed_password)
			  VALUES ($1, $2, $3)
			  RETURNING id, email, username, hashed_password, is_active, created_at, updated_at;`
	u := &models.User{}
	var updatedAt sql.NullTime
	if err := s.DB.QueryRowContext(ctx, query, email, username, hashedPassword).Scan(
		&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.IsActive, &u.CreatedAt, &updatedAt); err != nil {
		return nil, storageErr(op, err)
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}

// GetUserByID возвращает пользователя по его ID.
// Отсутствие записи — не ошибка, возвращается (nil, nil).
func (s *Storage) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	const op = "storage.GetUserByID"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, hashed_password, is_active, created_at, updated_at
			  FROM users
			  WHERE id = $1`
	return s.scanUserRow(ctx, op, query, id)
}

// GetUserByEmail возвращает пользователя по email. Сравнение следует
// коллации хранилища (TEXT, чувствительно к регистру).
// Отсутствие записи — не ошибка, возвращается (nil, nil).
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, email, username, hashed_password, is_active, created_at, updated_at
			  FROM users
			  WHERE email = $1`
	return s.scanUserRow(ctx, op, query, email)
}

// ListUsers возвращает страницу пользователей в порядке возрастания ID.
// Отрицательные offset или limit отклоняются, limit ограничен MaxPageSize,
// нулевой limit заменяется значением по умолчанию.
func (s *Storage) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, error) {
	const op = "storage.ListUsers"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	if offset < 0 || limit < 0 {
		return nil, fmt.Errorf("%s: %w", op, models.ErrInvalidPagination)
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	query := `SELECT id, email, username, hashed_password, is_active, created_at, updated_at
			  FROM users
			  ORDER BY id
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.User
	for rows.Next() {
		var u models.User
		var updatedAt sql.NullTime
		if err = rows.Scan(&u.ID, &u.Email, &u.Username, &u.HashedPassword,
			&u.IsActive, &u.CreatedAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if updatedAt.Valid {
			u.UpdatedAt = &updatedAt.Time
		}
		result = append(result, &u)
	}
	if err = rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return result, nil
}

// scanUserRow выполняет запрос, возвращающий не более одной записи пользователя.
func (s *Storage) scanUserRow(ctx context.Context, op, query string, arg any) (*models.User, error) {
	u := &models.User{}
	var updatedAt sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.Username, &u.HashedPassword, &u.IsActive, &u.CreatedAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, storageErr(op, err)
	}
	if updatedAt.Valid {
		u.UpdatedAt = &updatedAt.Time
	}
	return u, nil
}
