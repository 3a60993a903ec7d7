package service

import (
	"context"
	"strings"
	"time"

	"foundercompass/internal/entity"
	"foundercompass/internal/repository"
	"foundercompass/internal/utils"

	"github.com/sirupsen/logrus"
)

// Constant-time decoy so a missing user costs the same as a wrong password.
const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type SignupInput struct {
	FullName    string
	Email       string
	Password    string
	CompanySize entity.CompanySize
}

type LoginResult struct {
	AccessToken string
	TokenType   string
	ExpiresIn   time.Duration
}

type AuthService struct {
	users        repository.UserRepository
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
	clock        Clock
	logger       *logrus.Logger
}

func NewAuthService(
	users repository.UserRepository,
	passwordHash PasswordHasher,
	accessTokens AccessTokenIssuer,
	clock Clock,
	logger *logrus.Logger,
) *AuthService {
	return &AuthService{
		users:        users,
		passwordHash: passwordHash,
		accessTokens: accessTokens,
		clock:        clock,
		logger:       logger,
	}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*entity.User, error) {
	if strings.TrimSpace(input.FullName) == "" || strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}
	if !input.CompanySize.Valid() {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FullName:        strings.TrimSpace(input.FullName),
		Email:           email,
		PasswordHash:    hash,
		CompanySize:     input.CompanySize,
		IsActive:        true,
		ConsentAccepted: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, password)
		return nil, ErrInvalidCredentials
	}
	if !s.passwordHash.Verify(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, ttl, err := s.accessTokens.IssueAccessToken(user.Email, user.ID.String())
	if err != nil {
		return nil, err
	}

	if err := s.users.TouchLastLogin(ctx, user.ID, s.now()); err != nil {
		s.logger.WithError(err).WithField("user_id", user.ID).Warn("failed to stamp last login")
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   ttl,
	}, nil
}

// CurrentUser resolves the token subject back to a user row. A subject that
// no longer matches an active user is treated as an invalid token.
func (s *AuthService) CurrentUser(ctx context.Context, email string) (*entity.User, error) {
	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}
