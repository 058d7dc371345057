package handlers

import (
	"net/http"
	"strings"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/middleware"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/shopspring/decimal"
)

type withdrawalRequest struct {
	CreatorID     int64           `json:"creatorId" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	BankAccount   string          `json:"bankAccount" validate:"max=500"`
	AccountHolder string          `json:"accountHolder" validate:"max=128"`
}

type reviewRequest struct {
	WithdrawalID int64  `json:"withdrawalId" validate:"required,gt=0"`
	AdminID      string `json:"adminId"`
	Reason       string `json:"reason" validate:"max=500"`
}

func (h *Handler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req withdrawalRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	account := models.BankAccount{Details: strings.TrimSpace(req.BankAccount)}
	if holder := strings.TrimSpace(req.AccountHolder); holder != "" {
		account.AccountHolder = &holder
	}

	receipt, err := h.withdrawalService.RequestWithdrawal(r.Context(), models.NewWithdrawal{
		CreatorID:   req.CreatorID,
		Amount:      req.Amount,
		BankAccount: account,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, receipt)
}

func (h *Handler) ListCreatorWithdrawals(w http.ResponseWriter, r *http.Request) {
	creatorID, err := queryID(r, "creatorId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.withdrawalService.ListWithdrawals(r.Context(), creatorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.WithdrawalRequest{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ListPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	list, err := h.withdrawalService.ListPending(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if list == nil {
		list = []models.WithdrawalRequest{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) ApproveWithdrawal(w http.ResponseWriter, r *http.Request) {
	req, operatorID, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	wr, err := h.withdrawalService.ApproveWithdrawal(r.Context(), req.WithdrawalID, operatorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wr)
}

func (h *Handler) RejectWithdrawal(w http.ResponseWriter, r *http.Request) {
	req, operatorID, ok := h.decodeReview(w, r)
	if !ok {
		return
	}

	wr, err := h.withdrawalService.RejectWithdrawal(r.Context(), req.WithdrawalID, operatorID, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wr)
}

// decodeReview reads an approve/reject body. The acting operator is the token
// subject; an adminId in the body must match it.
func (h *Handler) decodeReview(w http.ResponseWriter, r *http.Request) (reviewRequest, string, bool) {
	var req reviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return req, "", false
	}

	operatorID, ok := middleware.GetOperatorID(r.Context())
	if !ok {
		writeError(w, r, apperrors.ErrInvalidToken)
		return req, "", false
	}
	if req.AdminID != "" && req.AdminID != operatorID {
		writeErrorMessage(w, "adminId does not match the authenticated operator", http.StatusBadRequest)
		return req, "", false
	}
	return req, operatorID, true
}
