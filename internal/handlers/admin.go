package handlers

import (
	"net/http"

	"github.com/a2sh3r/bono/internal/logger"
	"github.com/a2sh3r/bono/internal/middleware"
	"go.uber.org/zap"
)

type adminLoginRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req adminLoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.operatorService.Authenticate(r.Context(), req.Login, req.Password); err != nil {
		logger.Log.Warn("operator login failed", zap.String("login", req.Login))
		writeError(w, r, err)
		return
	}

	token, err := middleware.IssueOperatorToken(h.secretKey, req.Login, operatorTokenTTL)
	if err != nil {
		logger.Log.Error("could not sign operator token", zap.Error(err))
		writeErrorMessage(w, "could not create token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+token)
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
