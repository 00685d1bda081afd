package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sol1corejz/invoicedash/internal/models"
)

// ErrInvalidCredentials covers every sign-in refusal: malformed input, unknown
// email, wrong password. Store faults are returned as-is so the operator sees
// them instead of the user being told their password is wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

const MinPasswordLen = 6

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// UserGetter is the slice of the store the authorizer needs.
type UserGetter interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// Authenticate maps presented credentials to a user or a refusal. Malformed
// input is refused before any lookup happens.
func Authenticate(ctx context.Context, store UserGetter, email string, password string) (models.User, error) {

	if !emailPattern.MatchString(email) || len(password) < MinPasswordLen {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := store.GetUserByEmail(ctx, email)
	if err != nil {
		return models.User{}, fmt.Errorf("fetching user: %w", err)
	}

	if user.ID == uuid.Nil {
		return models.User{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}
