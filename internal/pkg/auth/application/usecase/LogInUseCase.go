package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	auth "github.com/carolinadevia11/Bridge/internal/pkg/auth/application/domain"
	repository "github.com/carolinadevia11/Bridge/internal/pkg/auth/persistence/repository/port"
	"github.com/carolinadevia11/Bridge/internal/pkg/auth/token"
)

// LogInInput carries the submitted credentials.
type LogInInput struct {
	Email    string
	Password string
}

// LogInOutput is a signed bearer token ready for the Authorization header.
type LogInOutput struct {
	AccessToken string
	TokenType   string
}

// LogInUseCase verifies credentials and issues an access token.
type LogInUseCase struct {
	Repo   repository.UserRepository
	Tokens *token.Manager
}

func NewLogInUseCase(repo repository.UserRepository, tokens *token.Manager) *LogInUseCase {
	return &LogInUseCase{Repo: repo, Tokens: tokens}
}

// Execute checks the bcrypt hash and signs a token. An unknown email and a
// wrong password produce the same error so accounts can't be enumerated.
func (uc *LogInUseCase) Execute(ctx context.Context, in LogInInput) (*LogInOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := uc.Repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, auth.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return nil, auth.ErrInvalidCredentials
	}

	signed, err := uc.Tokens.Issue(token.Identity{Email: user.Email, Role: user.Role}, time.Now())
	if err != nil {
		return nil, err
	}
	return &LogInOutput{AccessToken: signed, TokenType: "bearer"}, nil
}
