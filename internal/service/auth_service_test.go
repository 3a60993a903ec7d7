package service

import (
	"context"
	"testing"
	"time"

	"foundercompass/internal/entity"
	"foundercompass/internal/utils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users *memUserRepo) *AuthService {
	manager := &utils.JWTManager{
		Secret:         []byte("test-secret"),
		Issuer:         "foundercompass-test",
		AccessTokenTTL: 30 * time.Minute,
	}
	logger := logrus.New()
	logger.SetOutput(discardWriter{})
	return NewAuthService(
		users,
		BcryptPasswordHasher{Cost: 4},
		JWTAccessIssuer{Manager: manager},
		fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		logger,
	)
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func validSignup() SignupInput {
	return SignupInput{
		FullName:    "Alice Founder",
		Email:       "alice@x.com",
		Password:    "correct-horse",
		CompanySize: entity.CompanySize36to60,
	}
}

func TestSignupThenLogin(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.True(t, user.IsActive)
	assert.True(t, user.ConsentAccepted)
	assert.Nil(t, user.LastLoginAt)
	assert.NotEqual(t, user.PasswordHash, "correct-horse")

	result, err := svc.Login(ctx, "alice@x.com", "correct-horse")
	require.NoError(t, err)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Equal(t, 30*time.Minute, result.ExpiresIn)

	manager := utils.JWTManager{Secret: []byte("test-secret")}
	claims, err := manager.ParseAccessToken(result.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", claims.Subject)
	assert.Equal(t, user.ID.String(), claims.UserID)
}

func TestSignupNormalizesEmail(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestAuthService(users)

	input := validSignup()
	input.Email = "  Alice@X.com "
	user, err := svc.Signup(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", user.Email)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, err = svc.Signup(ctx, validSignup())
	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
	assert.Equal(t, 1, users.count())
}

func TestSignupRejectsBadCompanySize(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())

	input := validSignup()
	input.CompanySize = "1-5"
	_, err := svc.Signup(context.Background(), input)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	_, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUnknownUser(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())

	_, err := svc.Login(context.Background(), "nobody@x.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStampsLastLogin(t *testing.T) {
	users := newMemUserRepo()
	svc := newTestAuthService(users)
	ctx := context.Background()

	user, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@x.com", "correct-horse")
	require.NoError(t, err)

	stored, err := users.FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLoginAt)
	assert.Equal(t, time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC), *stored.LastLoginAt)
}

func TestCurrentUserGoneSubject(t *testing.T) {
	svc := newTestAuthService(newMemUserRepo())

	_, err := svc.CurrentUser(context.Background(), "ghost@x.com")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
