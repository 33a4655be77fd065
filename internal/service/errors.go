package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrAccountDisabled    = errors.New("account disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrNoSecretQuestion   = errors.New("user has not configured a secret question")
	ErrWrongSecretAnswer  = errors.New("incorrect secret answer")
	ErrTooManyAttempts    = errors.New("too many attempts, try again later")
)

// notFound translates gorm's record-not-found into ErrNotFound
func notFound(err error, what string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s %w", what, ErrNotFound)
	}
	return err
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func notFoundErr(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
