package service

import (
	"context"

	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/repository"
)

type LedgerService interface {
	GetUserTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error)
	GetCreatorTransactions(ctx context.Context, creatorID int64, limit int) ([]models.Transaction, error)
}

type ledgerService struct {
	ledger   repository.LedgerRepository
	users    repository.UserRepository
	creators repository.CreatorRepository
}

func NewLedgerService(ledger repository.LedgerRepository, users repository.UserRepository, creators repository.CreatorRepository) LedgerService {
	return &ledgerService{ledger: ledger, users: users, creators: creators}
}

func (s *ledgerService) GetUserTransactions(ctx context.Context, userID int64, limit int) ([]models.Transaction, error) {
	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.ledger.GetUserTransactions(ctx, userID, limit)
}

func (s *ledgerService) GetCreatorTransactions(ctx context.Context, creatorID int64, limit int) ([]models.Transaction, error) {
	if _, err := s.creators.GetCreatorByID(ctx, creatorID); err != nil {
		return nil, err
	}
	return s.ledger.GetCreatorTransactions(ctx, creatorID, limit)
}
