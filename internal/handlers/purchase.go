package handlers

import (
	"net/http"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/shopspring/decimal"
)

type purchaseRequest struct {
	UserID         int64           `json:"userId" validate:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount"`
	TransactionRef string          `json:"transactionRef" validate:"max=128"`
}

type purchaseResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	Reference string          `json:"reference"`
	Duplicate bool            `json:"duplicate"`
}

type initiatePurchaseRequest struct {
	UserID int64           `json:"userId" validate:"required,gt=0"`
	Coins  decimal.Decimal `json:"coins"`
}

// callbackRequest accepts every reference field spelling used by providers.
type callbackRequest struct {
	Reference string `json:"reference"`
	TxRef     string `json:"tx_ref"`
	TrxRef    string `json:"trx_ref"`
}

func (c callbackRequest) ref() string {
	switch {
	case c.Reference != "":
		return c.Reference
	case c.TxRef != "":
		return c.TxRef
	default:
		return c.TrxRef
	}
}

type callbackResponse struct {
	Status    string          `json:"status"`
	Reference string          `json:"reference"`
	Balance   decimal.Decimal `json:"balance"`
	Duplicate bool            `json:"duplicate"`
}

func (h *Handler) Purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.purchaseService.Purchase(r.Context(), req.UserID, req.Amount, req.TransactionRef)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, purchaseResponse{
		Balance:   result.Balance,
		Reference: result.Reference,
		Duplicate: result.Duplicate,
	})
}

func (h *Handler) InitiatePurchase(w http.ResponseWriter, r *http.Request) {
	var req initiatePurchaseRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	checkout, err := h.purchaseService.InitiatePurchase(r.Context(), req.UserID, req.Coins)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, checkout)
}

func (h *Handler) PaymentCallback(w http.ResponseWriter, r *http.Request) {
	var req callbackRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	reference := req.ref()
	if reference == "" {
		writeError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	result, err := h.purchaseService.HandleCallback(r.Context(), reference)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, callbackResponse{
		Status:    "success",
		Reference: result.Reference,
		Balance:   result.Balance,
		Duplicate: result.Duplicate,
	})
}
