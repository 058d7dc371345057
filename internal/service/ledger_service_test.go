package service

import (
	"context"
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/mocks/repository_mocks"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ctx := context.Background()

	ledger := repository_mocks.NewMockLedgerRepository(ctrl)
	users := repository_mocks.NewMockUserRepository(ctrl)
	creators := repository_mocks.NewMockCreatorRepository(ctrl)
	s := NewLedgerService(ledger, users, creators)

	users.EXPECT().GetUserByID(ctx, int64(1)).Return(&models.User{ID: 1}, nil)
	ledger.EXPECT().GetUserTransactions(ctx, int64(1), 0).Return([]models.Transaction{{ID: 2}, {ID: 1}}, nil)
	txs, err := s.GetUserTransactions(ctx, 1, 0)
	require.NoError(t, err)
	assert.Len(t, txs, 2)

	users.EXPECT().GetUserByID(ctx, int64(9)).Return(nil, apperrors.ErrUserNotFound)
	_, err = s.GetUserTransactions(ctx, 9, 0)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)

	creators.EXPECT().GetCreatorByID(ctx, int64(3)).Return(&models.Creator{ID: 3}, nil)
	ledger.EXPECT().GetCreatorTransactions(ctx, int64(3), 10).Return([]models.Transaction{}, nil)
	txs, err = s.GetCreatorTransactions(ctx, 3, 10)
	require.NoError(t, err)
	assert.Empty(t, txs)

	creators.EXPECT().GetCreatorByID(ctx, int64(9)).Return(nil, apperrors.ErrCreatorNotFound)
	_, err = s.GetCreatorTransactions(ctx, 9, 10)
	assert.ErrorIs(t, err, apperrors.ErrCreatorNotFound)
}
