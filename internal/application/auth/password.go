package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/gestor-sucursal/internal/domain"
)

// MinPasswordLength longitud mínima de una contraseña nueva.
const MinPasswordLength = 4

// PasswordHasher hashea y verifica contraseñas con bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher cost fuera de rango usa bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash devuelve el hash bcrypt de password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches indica si password corresponde al hash.
func (h *PasswordHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidateNewPassword longitud mínima y confirmación idéntica.
func ValidateNewPassword(password, confirm string) error {
	if len([]rune(password)) < MinPasswordLength {
		return domain.ErrPasswordTooShort
	}
	if password != confirm {
		return domain.ErrPasswordMismatch
	}
	return nil
}
