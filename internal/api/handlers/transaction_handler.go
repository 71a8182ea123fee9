package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alcanciapp/alcanciapp-be/internal/auth"
	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// TransactionHandler handles HTTP requests for goal contributions.
type TransactionHandler struct {
	service services.TransactionServiceProvider
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(service services.TransactionServiceProvider) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// TransactionPayload defines the structure for contribution requests. Amount
// is a pointer so an absent field is distinguishable from zero.
type TransactionPayload struct {
	Amount *float64 `json:"amount"`
}

// Create records a contribution against a goal the authenticated user owns.
// A goal owned by someone else is reported as forbidden, not absent: the
// caller referenced a parent resource it cannot use.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	goalID := chi.URLParam(r, "id")

	var payload TransactionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Amount == nil {
		writeError(w, http.StatusBadRequest, "Amount must be a number")
		return
	}

	txn, err := h.service.CreateTransaction(r.Context(), userID, goalID, *payload.Amount)
	if err != nil {
		if errors.Is(err, services.ErrGoalForbidden) {
			writeError(w, http.StatusForbidden, "Goal inaccessible")
			return
		}
		log.Error().Err(err).Str("goal_id", goalID).Msg("Failed to create transaction")
		writeError(w, http.StatusInternalServerError, "Failed to create transaction")
		return
	}

	writeJSON(w, http.StatusCreated, envelope{
		"transaction": map[string]interface{}{"id": txn.ID, "amount": txn.Amount},
	})
}

// GetAll lists a goal's contributions, scoped to the authenticated user.
func (h *TransactionHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	goalID := chi.URLParam(r, "id")

	txns, err := h.service.GetTransactions(r.Context(), userID, goalID)
	if err != nil {
		log.Error().Err(err).Str("goal_id", goalID).Msg("Failed to list transactions")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve transactions")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"transactions": txns})
}

// Delete removes a contribution owned by the authenticated user.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteTransaction(r.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Error().Err(err).Str("transaction_id", id).Msg("Failed to delete transaction")
		writeError(w, http.StatusInternalServerError, "Failed to delete transaction")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"deleted": id})
}
