package service

import (
	"context"
	"crypto/subtle"

	"github.com/a2sh3r/bono/internal/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// OperatorService authenticates the single configured back-office operator.
type OperatorService interface {
	Authenticate(ctx context.Context, login, password string) error
}

type operatorService struct {
	login        string
	passwordHash string
}

func NewOperatorService(login, passwordHash string) OperatorService {
	return &operatorService{login: login, passwordHash: passwordHash}
}

func (s *operatorService) Authenticate(_ context.Context, login, password string) error {
	if s.passwordHash == "" || s.login == "" {
		return apperrors.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(login), []byte(s.login)) != 1 {
		return apperrors.ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password))
	if err != nil {
		return apperrors.ErrInvalidCredentials
	}

	return nil
}
