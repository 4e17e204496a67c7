package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// AdminCredentials holds the single configured admin account. The plain
// password is hashed once at startup and never kept.
type AdminCredentials struct {
	username     string
	passwordHash string
}

func NewAdminCredentials(username, password string) (*AdminCredentials, error) {
	if username == "" {
		return nil, errors.New("admin username is required")
	}
	if password == "" {
		return &AdminCredentials{username: username}, nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &AdminCredentials{username: username, passwordHash: hash}, nil
}

// Enabled is false when no admin password is configured; logins always fail.
func (a *AdminCredentials) Enabled() bool {
	return a.passwordHash != ""
}

func (a *AdminCredentials) Username() string {
	return a.username
}

func (a *AdminCredentials) Verify(username, password string) bool {
	if !a.Enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := CheckPasswordHash(password, a.passwordHash)
	return userOK && passOK
}
