package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/mocks/repository_mocks"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/a2sh3r/bono/internal/payment"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockPaymentProvider struct {
	verifications map[string]*payment.Verification
	errors        map[string]error
	initialized   []payment.InitializeRequest
	initErr       error
}

func (m *mockPaymentProvider) Initialize(_ context.Context, req payment.InitializeRequest) (*payment.Checkout, error) {
	if m.initErr != nil {
		return nil, m.initErr
	}
	m.initialized = append(m.initialized, req)
	return &payment.Checkout{CheckoutURL: "https://pay.example/" + req.Reference}, nil
}

func (m *mockPaymentProvider) Verify(_ context.Context, reference string) (*payment.Verification, error) {
	if err, ok := m.errors[reference]; ok {
		return nil, err
	}
	if v, ok := m.verifications[reference]; ok {
		return v, nil
	}
	return nil, apperrors.ErrPaymentNotFound
}

func verification(ref string, status payment.Status, userID, coins string) *payment.Verification {
	return &payment.Verification{
		Reference: ref,
		Status:    status,
		Metadata:  payment.Metadata{UserID: json.Number(userID), Coins: dec(coins)},
	}
}

type purchaseMocks struct {
	balances *repository_mocks.MockBalanceRepository
	users    *repository_mocks.MockUserRepository
	payments *repository_mocks.MockPaymentRepository
}

func newPurchaseService(ctrl *gomock.Controller, provider payment.Provider) (PurchaseService, purchaseMocks) {
	m := purchaseMocks{
		balances: repository_mocks.NewMockBalanceRepository(ctrl),
		users:    repository_mocks.NewMockUserRepository(ctrl),
		payments: repository_mocks.NewMockPaymentRepository(ctrl),
	}
	s := NewPurchaseService(m.balances, m.users, m.payments, provider, PurchaseOptions{
		CoinPrice:   dec("0.5"),
		CallbackURL: "http://localhost/api/payment/callback",
	})
	return s, m
}

func TestPurchaseService_Purchase(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		userID    int64
		amount    string
		reference string
		mockSetup func(m *repository_mocks.MockBalanceRepository)
		want      models.PurchaseResult
		wantErr   error
	}{
		{
			name:      "зачисление монет",
			userID:    1,
			amount:    "100",
			reference: "ref-1",
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Purchase(ctx, gomock.AssignableToTypeOf(models.PurchaseRequest{})).DoAndReturn(
					func(_ context.Context, req models.PurchaseRequest) (models.PurchaseResult, error) {
						assert.Equal(t, "ref-1", req.Reference)
						assert.True(t, dec("100").Equal(req.Amount))
						return models.PurchaseResult{TransactionID: 1, Balance: dec("100"), Reference: "ref-1"}, nil
					}).Times(1)
			},
			want: models.PurchaseResult{TransactionID: 1, Balance: dec("100"), Reference: "ref-1"},
		},
		{
			name:      "повтор ссылки не зачисляет монеты",
			userID:    1,
			amount:    "100",
			reference: "ref-1",
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Purchase(ctx, gomock.Any()).Return(models.PurchaseResult{Balance: dec("100"), Reference: "ref-1", Duplicate: true}, nil).Times(1)
			},
			want: models.PurchaseResult{Balance: dec("100"), Reference: "ref-1", Duplicate: true},
		},
		{
			name:      "пустая ссылка генерируется",
			userID:    1,
			amount:    "5",
			reference: "  ",
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Purchase(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, req models.PurchaseRequest) (models.PurchaseResult, error) {
						assert.True(t, strings.HasPrefix(req.Reference, "purchase_"))
						assert.Len(t, req.Reference, len("purchase_")+36)
						return models.PurchaseResult{Reference: req.Reference}, nil
					}).Times(1)
			},
		},
		{
			name:      "некорректная сумма",
			userID:    1,
			amount:    "0",
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {},
			wantErr:   apperrors.ErrInvalidAmount,
		},
		{
			name:      "неизвестный пользователь",
			userID:    99,
			amount:    "5",
			mockSetup: func(m *repository_mocks.MockBalanceRepository) {
				m.EXPECT().Purchase(ctx, gomock.Any()).Return(models.PurchaseResult{}, apperrors.ErrUserNotFound).Times(1)
			},
			wantErr: apperrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newPurchaseService(ctrl, &mockPaymentProvider{})
			tt.mockSetup(m.balances)

			got, err := s.Purchase(ctx, tt.userID, dec(tt.amount), tt.reference)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			if tt.want.Reference != "" {
				assert.Equal(t, tt.want.Reference, got.Reference)
				assert.Equal(t, tt.want.Duplicate, got.Duplicate)
				assert.True(t, tt.want.Balance.Equal(got.Balance))
			}
		})
	}
}

func TestPurchaseService_InitiatePurchase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	provider := &mockPaymentProvider{}
	s, m := newPurchaseService(ctrl, provider)
	ctx := context.Background()

	m.users.EXPECT().GetUserByID(ctx, int64(7)).Return(&models.User{ID: 7}, nil)
	m.payments.EXPECT().CreateIntent(ctx, gomock.AssignableToTypeOf(&models.PaymentIntent{})).DoAndReturn(
		func(_ context.Context, p *models.PaymentIntent) error {
			assert.Equal(t, int64(7), p.UserID)
			assert.True(t, dec("100").Equal(p.Coins))
			assert.Equal(t, "https://pay.example/"+p.Reference, p.CheckoutURL)
			return nil
		})

	checkout, err := s.InitiatePurchase(ctx, 7, dec("100"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(checkout.Reference, "bono_7_"))
	assert.Equal(t, "https://pay.example/"+checkout.Reference, checkout.CheckoutURL)

	require.Len(t, provider.initialized, 1)
	assert.True(t, dec("50").Equal(provider.initialized[0].Amount))
	assert.Equal(t, "http://localhost/api/payment/callback", provider.initialized[0].CallbackURL)
}

func TestPurchaseService_InitiatePurchaseErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("провайдер не настроен", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newPurchaseService(ctrl, &mockPaymentProvider{initErr: apperrors.ErrProviderNotConfigured})
		m.users.EXPECT().GetUserByID(ctx, int64(7)).Return(&models.User{ID: 7}, nil)

		_, err := s.InitiatePurchase(ctx, 7, dec("10"))
		assert.ErrorIs(t, err, apperrors.ErrProviderNotConfigured)
	})

	t.Run("неизвестный пользователь", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, m := newPurchaseService(ctrl, &mockPaymentProvider{})
		m.users.EXPECT().GetUserByID(ctx, int64(8)).Return(nil, apperrors.ErrUserNotFound)

		_, err := s.InitiatePurchase(ctx, 8, dec("10"))
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("некорректное количество монет", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newPurchaseService(ctrl, &mockPaymentProvider{})
		_, err := s.InitiatePurchase(ctx, 7, dec("-1"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})
}

func TestPurchaseService_HandleCallback(t *testing.T) {
	ctx := context.Background()
	const ref = "bono_7_abc"

	tests := []struct {
		name      string
		provider  *mockPaymentProvider
		mockSetup func(m purchaseMocks)
		wantErr   error
	}{
		{
			name: "подтверждённый платёж зачисляется",
			provider: &mockPaymentProvider{verifications: map[string]*payment.Verification{
				ref: verification(ref, payment.StatusSuccess, "7", "100"),
			}},
			mockSetup: func(m purchaseMocks) {
				m.payments.EXPECT().GetIntent(ctx, ref).Return(&models.PaymentIntent{Reference: ref, UserID: 7, Coins: dec("100")}, nil)
				m.balances.EXPECT().Purchase(ctx, gomock.AssignableToTypeOf(models.PurchaseRequest{})).DoAndReturn(
					func(_ context.Context, req models.PurchaseRequest) (models.PurchaseResult, error) {
						assert.Equal(t, int64(7), req.UserID)
						assert.Equal(t, ref, req.Reference)
						assert.True(t, dec("100").Equal(req.Amount))
						return models.PurchaseResult{TransactionID: 1, Reference: ref, Balance: dec("100")}, nil
					})
				m.payments.EXPECT().UpdateIntentStatus(ctx, ref, models.PaymentCompleted).Return(nil)
			},
		},
		{
			name: "платёж без локального намерения зачисляется по метаданным",
			provider: &mockPaymentProvider{verifications: map[string]*payment.Verification{
				ref: verification(ref, payment.StatusSuccess, "7", "20"),
			}},
			mockSetup: func(m purchaseMocks) {
				m.payments.EXPECT().GetIntent(ctx, ref).Return(nil, apperrors.ErrPaymentNotFound)
				m.balances.EXPECT().Purchase(ctx, gomock.Any()).Return(models.PurchaseResult{Reference: ref}, nil)
				m.payments.EXPECT().UpdateIntentStatus(ctx, ref, models.PaymentCompleted).Return(nil)
			},
		},
		{
			name: "метаданные расходятся с намерением",
			provider: &mockPaymentProvider{verifications: map[string]*payment.Verification{
				ref: verification(ref, payment.StatusSuccess, "7", "1000"),
			}},
			mockSetup: func(m purchaseMocks) {
				m.payments.EXPECT().GetIntent(ctx, ref).Return(&models.PaymentIntent{Reference: ref, UserID: 7, Coins: dec("100")}, nil)
			},
			wantErr: apperrors.ErrPaymentNotVerified,
		},
		{
			name: "неуспешный платёж закрывает намерение",
			provider: &mockPaymentProvider{verifications: map[string]*payment.Verification{
				ref: verification(ref, payment.StatusFailed, "7", "100"),
			}},
			mockSetup: func(m purchaseMocks) {
				m.payments.EXPECT().UpdateIntentStatus(ctx, ref, models.PaymentFailed).Return(nil)
			},
			wantErr: apperrors.ErrPaymentNotVerified,
		},
		{
			name: "платёж ещё обрабатывается",
			provider: &mockPaymentProvider{verifications: map[string]*payment.Verification{
				ref: verification(ref, payment.StatusPending, "7", "100"),
			}},
			mockSetup: func(m purchaseMocks) {},
			wantErr:   apperrors.ErrPaymentNotVerified,
		},
		{
			name:      "провайдер не знает ссылку",
			provider:  &mockPaymentProvider{},
			mockSetup: func(m purchaseMocks) {},
			wantErr:   apperrors.ErrPaymentNotFound,
		},
		{
			name:      "ошибка провайдера",
			provider:  &mockPaymentProvider{errors: map[string]error{ref: errors.New("timeout")}},
			mockSetup: func(m purchaseMocks) {},
			wantErr:   errors.New("timeout"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newPurchaseService(ctrl, tt.provider)
			tt.mockSetup(m)

			_, err := s.HandleCallback(ctx, ref)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			if errors.Is(tt.wantErr, apperrors.ErrPaymentNotVerified) || errors.Is(tt.wantErr, apperrors.ErrPaymentNotFound) {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.EqualError(t, err, tt.wantErr.Error())
			}
		})
	}
}

func TestPurchaseService_HandleCallbackEmptyReference(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, _ := newPurchaseService(ctrl, &mockPaymentProvider{})
	_, err := s.HandleCallback(context.Background(), " ")
	assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
}
