package handlers

import (
	"net/http"

	"github.com/a2sh3r/bono/internal/models"
)

type identityRequest struct {
	ExternalID string `json:"externalId" validate:"required,max=64"`
	Username   string `json:"username" validate:"max=64"`
	FirstName  string `json:"firstName" validate:"max=128"`
	LastName   string `json:"lastName" validate:"max=128"`
}

type userResponse struct {
	User    *models.User    `json:"user"`
	Creator *models.Creator `json:"creator"`
}

// Identify resolves the caller's external identity to a user, creating the
// user on first sight.
func (h *Handler) Identify(w http.ResponseWriter, r *http.Request) {
	var req identityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.userService.GetOrCreateUser(r.Context(), req.ExternalID, models.Profile{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	user, creator, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{User: user, Creator: creator})
}

func (h *Handler) GetUserTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	txs, err := h.ledgerService.GetUserTransactions(r.Context(), userID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}

	writeJSON(w, http.StatusOK, txs)
}
