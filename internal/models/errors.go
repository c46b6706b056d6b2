package models

import "errors"

// Доменные ошибки. Репозиторий и сервис возвращают их обёрнутыми через
// fmt.Errorf("%s: %w", op, err), поэтому на границе HTTP проверка идёт
// через errors.Is.
var (
	// ErrEmailTaken — email уже занят другим пользователем.
	ErrEmailTaken = errors.New("email already taken")
	// ErrUsernameTaken — username уже занят другим пользователем.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrUserNotFound — пользователь с таким идентификатором не найден.
	ErrUserNotFound = errors.New("user not found")
	// ErrStorageUnavailable — хранилище недоступно (сетевая или транспортная ошибка).
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrInvalidPagination — отрицательные offset или limit.
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	// ErrPasswordTooLong — пароль длиннее допустимого для bcrypt.
	ErrPasswordTooLong = errors.New("password too long")
)
