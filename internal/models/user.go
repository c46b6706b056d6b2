// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и временные метки.
// Структуры используются в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// Поле HashedPassword не должно покидать границу репозитория и сервиса.
type User struct {
	ID             int64      // Уникальный идентификатор, назначается базой
	Email          string     // Электронная почта (уникальная)
	Username       string     // Имя пользователя (уникальное)
	HashedPassword string     // Bcrypt-хэш пароля
	IsActive       bool       // Признак активности учётной записи
	CreatedAt      time.Time  // Дата создания записи
	UpdatedAt      *time.Time // Дата последнего изменения, nil до первого обновления
}

// DummyUser используется для приёма данных из JSON-запроса на регистрацию,
// прежде чем конвертировать их в User. Пароль приходит открытым текстом
// и хэшируется сервисом до записи в хранилище.
type DummyUser struct {
	Email    string `json:"email" validate:"required,email"`           // Электронная почта
	Username string `json:"username" validate:"required,min=3,max=50"` // Имя пользователя
	Password string `json:"password" validate:"required,min=6,max=72"` // Пароль открытым текстом
}

// UserView — форма ответа наружу. Никогда не содержит хэш пароля.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserView формирует UserView из доменной модели.
func NewUserView(u *User) UserView {
	return UserView{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
