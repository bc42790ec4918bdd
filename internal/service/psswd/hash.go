// Package psswd - bcrypt-хеширование паролей сотрудников мерчанта.
package psswd

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHash реализует service.PasswordHasher поверх bcrypt со стоимостью
// по умолчанию.
type PasswordHash string

func (PasswordHash) HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hashing password: %w", err)
	}
	return string(hashed), nil
}

func (PasswordHash) ComparePassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
