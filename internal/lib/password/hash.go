// Package password реализует функции для безопасного хеширования и проверки паролей.
//
// Hash создает bcrypt-хеш пароля для безопасного хранения.
// Verify сравнивает bcrypt-хеш с введённым паролем, проверяя их соответствие.
package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/magabrotheeeer/user-directory/internal/models"
)

// MaxLength — максимальная длина пароля в байтах. Bcrypt учитывает только
// первые 72 байта входа, более длинные пароли отклоняются явно.
const MaxLength = 72

// Hasher хэширует пароли с настраиваемой стоимостью bcrypt.
type Hasher struct {
	cost int
}

// New возвращает Hasher с заданной стоимостью bcrypt.
// Стоимость вне допустимого диапазона заменяется на bcrypt.DefaultCost.
func New(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash принимает пароль пользователя и возвращает его bcrypt‑хэш.
// Каждый вызов даёт новый хэш из-за случайной соли.
//
// Используется для безопасного хранения паролей в базе данных.
func (h *Hasher) Hash(password string) (string, error) {
	const op = "password.Hash"
	if len(password) > MaxLength {
		return "", fmt.Errorf("%s: %w", op, models.ErrPasswordTooLong)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashedPassword), nil
}

// Verify сравнивает bcrypt‑хэш с введённым паролем.
//
// Возвращает false при несовпадении или некорректном хэше, никогда не паникует.
func (h *Hasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
