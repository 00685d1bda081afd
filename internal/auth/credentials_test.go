package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/sol1corejz/invoicedash/internal/models"
)

type fakeUserGetter struct {
	user    models.User
	err     error
	lookups int
}

func (f *fakeUserGetter) GetUserByEmail(_ context.Context, _ string) (models.User, error) {
	f.lookups++
	return f.user, f.err
}

func testUser(t *testing.T, password string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	return models.User{
		ID:           uuid.New(),
		Name:         "User",
		Email:        "user@nextmail.com",
		PasswordHash: string(hash),
	}
}

func TestAuthenticateSuccess(t *testing.T) {
	store := &fakeUserGetter{user: testUser(t, "123456")}

	user, err := Authenticate(context.Background(), store, "user@nextmail.com", "123456")

	require.NoError(t, err)
	assert.Equal(t, store.user.ID, user.ID)
	assert.Equal(t, 1, store.lookups)
}

func TestAuthenticateWrongPassword(t *testing.T) {
	store := &fakeUserGetter{user: testUser(t, "123456")}

	_, err := Authenticate(context.Background(), store, "user@nextmail.com", "654321")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticateShortPasswordSkipsLookup(t *testing.T) {
	store := &fakeUserGetter{user: testUser(t, "123456")}

	_, err := Authenticate(context.Background(), store, "user@nextmail.com", "12345")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Zero(t, store.lookups)
}

func TestAuthenticateMalformedEmailSkipsLookup(t *testing.T) {
	store := &fakeUserGetter{}

	for _, email := range []string{"", "not-an-email", "user@", "@nextmail.com", "user @nextmail.com"} {
		_, err := Authenticate(context.Background(), store, email, "123456")
		assert.ErrorIs(t, err, ErrInvalidCredentials, "email %q", email)
	}

	assert.Zero(t, store.lookups)
}

func TestAuthenticateUnknownUser(t *testing.T) {
	store := &fakeUserGetter{}

	_, err := Authenticate(context.Background(), store, "nobody@nextmail.com", "123456")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Equal(t, 1, store.lookups)
}

func TestAuthenticateLookupFaultIsFatal(t *testing.T) {
	lookupErr := errors.New("connection refused")
	store := &fakeUserGetter{err: lookupErr}

	_, err := Authenticate(context.Background(), store, "user@nextmail.com", "123456")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, lookupErr)
}
