package handlers

import (
	"net/http"

	"github.com/a2sh3r/bono/internal/models"
	"github.com/shopspring/decimal"
)

type transferRequest struct {
	FromUserID    int64           `json:"fromUserId" validate:"required,gt=0"`
	ToCreatorID   int64           `json:"toCreatorId" validate:"required,gt=0"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message" validate:"max=500"`
	SupporterName string          `json:"supporterName" validate:"max=64"`
}

func (h *Handler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.transferService.Transfer(r.Context(), models.TransferRequest{
		FromUserID:    req.FromUserID,
		ToCreatorID:   req.ToCreatorID,
		Amount:        req.Amount,
		Message:       req.Message,
		SupporterName: req.SupporterName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
