package handlers

import (
	"net/http"
	"strconv"

	"github.com/a2sh3r/bono/internal/apperrors"
	"github.com/a2sh3r/bono/internal/models"
	"github.com/go-chi/chi/v5"
)

type createCreatorRequest struct {
	UserID      int64  `json:"userId" validate:"required,gt=0"`
	Handle      string `json:"handle" validate:"required"`
	DisplayName string `json:"displayName" validate:"required,max=128"`
	Bio         string `json:"bio" validate:"max=1000"`
}

type updateCreatorRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=128"`
	Bio         *string `json:"bio" validate:"omitempty,max=1000"`
}

type handleAvailability struct {
	Handle    string `json:"handle"`
	Available bool   `json:"available"`
}

func (h *Handler) CreateCreator(w http.ResponseWriter, r *http.Request) {
	var req createCreatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	creator, err := h.userService.CreateCreator(r.Context(), models.NewCreator{
		UserID:      req.UserID,
		Handle:      req.Handle,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, creator)
}

func (h *Handler) UpdateCreator(w http.ResponseWriter, r *http.Request) {
	creatorID, err := strconv.ParseInt(chi.URLParam(r, "creatorId"), 10, 64)
	if err != nil || creatorID <= 0 {
		writeError(w, r, apperrors.ErrInvalidRequest)
		return
	}

	var req updateCreatorRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	creator, err := h.userService.UpdateCreator(r.Context(), creatorID, models.CreatorUpdate{
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, creator)
}

func (h *Handler) GetPublicCreator(w http.ResponseWriter, r *http.Request) {
	creator, err := h.userService.GetCreatorBySupportLink(r.Context(), chi.URLParam(r, "linkId"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, creator)
}

// LookupCreator accepts a support URL, a support link id or a handle in ?q=.
func (h *Handler) LookupCreator(w http.ResponseWriter, r *http.Request) {
	creator, err := h.userService.LookupCreator(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, creator)
}

func (h *Handler) CheckHandle(w http.ResponseWriter, r *http.Request) {
	handle := r.URL.Query().Get("handle")
	available, err := h.userService.IsHandleAvailable(r.Context(), handle)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, handleAvailability{Handle: handle, Available: available})
}

func (h *Handler) GetCreatorByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := queryID(r, "userId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	creator, err := h.userService.GetCreatorByUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, creator)
}

func (h *Handler) ListSupporters(w http.ResponseWriter, r *http.Request) {
	creatorID, err := queryID(r, "creatorId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	supporters, err := h.userService.ListSupporters(r.Context(), creatorID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if supporters == nil {
		supporters = []models.Supporter{}
	}
	writeJSON(w, http.StatusOK, supporters)
}

func (h *Handler) GetCreatorTransactions(w http.ResponseWriter, r *http.Request) {
	creatorID, err := queryID(r, "creatorId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	limit, err := queryLimit(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	txs, err := h.ledgerService.GetCreatorTransactions(r.Context(), creatorID, limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}
