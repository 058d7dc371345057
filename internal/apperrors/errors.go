package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRequest     = errors.New("invalid request")
	ErrInvalidAmount      = errors.New("amount must be a positive number with at most 4 decimal places")
	ErrMissingBankAccount = errors.New("bank account details are required")
	ErrSelfTransfer       = errors.New("cannot send coins to your own creator profile")

	ErrUserNotFound       = errors.New("user not found")
	ErrCreatorNotFound    = errors.New("creator not found")
	ErrWithdrawalNotFound = errors.New("withdrawal request not found")
	ErrPaymentNotFound    = errors.New("payment not found")

	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidState        = errors.New("withdrawal request is not pending")
	ErrCreatorExists       = errors.New("user already has a creator profile")
	ErrHandleTaken         = errors.New("handle is already taken")

	ErrPaymentNotVerified    = errors.New("payment verification failed")
	ErrProviderNotConfigured = errors.New("payment provider is not configured")

	ErrInvalidAuthHeader  = errors.New("invalid or missing Authorization header")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid login or password")
	ErrInvalidSignature   = errors.New("invalid payload signature")

	ErrPersistence    = errors.New("persistence error")
	ErrInternalServer = errors.New("internal server error")
)

// PersistenceError reports a storage failure that happened after input validation.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// Persistence wraps err unless it already carries a domain error.
func Persistence(op string, err error) error {
	if err == nil || IsDomain(err) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

var domainErrors = []error{
	ErrInvalidRequest, ErrInvalidAmount, ErrMissingBankAccount, ErrSelfTransfer,
	ErrUserNotFound, ErrCreatorNotFound, ErrWithdrawalNotFound, ErrPaymentNotFound,
	ErrInsufficientBalance, ErrInvalidState, ErrCreatorExists, ErrHandleTaken,
}

func IsDomain(err error) bool {
	for _, target := range domainErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
