package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alcanciapp/alcanciapp-be/internal/auth"
	"github.com/alcanciapp/alcanciapp-be/internal/models"
	"github.com/alcanciapp/alcanciapp-be/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// GoalHandler handles HTTP requests for savings goals.
type GoalHandler struct {
	service services.GoalServiceProvider
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(service services.GoalServiceProvider) *GoalHandler {
	return &GoalHandler{service: service}
}

// GoalPayload defines the structure for goal creation requests.
type GoalPayload struct {
	Name           string `json:"name"`
	DurationMonths int    `json:"duration_months"`
	Frequency      string `json:"frequency"`
	Privacy        string `json:"privacy"`
}

// Create handles goal creation for the authenticated user.
func (h *GoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	var payload GoalPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Name == "" || payload.DurationMonths <= 0 || payload.Frequency == "" || payload.Privacy == "" {
		writeError(w, http.StatusBadRequest, "Missing fields (name, duration_months, frequency, privacy)")
		return
	}

	goal, err := h.service.CreateGoal(r.Context(), userID, models.Goal{
		Name:           payload.Name,
		DurationMonths: payload.DurationMonths,
		Frequency:      payload.Frequency,
		Privacy:        payload.Privacy,
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to create goal")
		writeError(w, http.StatusInternalServerError, "Failed to create goal")
		return
	}

	writeJSON(w, http.StatusCreated, envelope{"goal": goal})
}

// GetAll lists the authenticated user's goals.
func (h *GoalHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())

	goals, err := h.service.GetGoals(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("Failed to list goals")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve goals")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"goals": goals})
}

// Get reads a single goal. A goal owned by someone else reads as not found.
func (h *GoalHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := chi.URLParam(r, "id")

	goal, err := h.service.GetGoalByID(r.Context(), userID, id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to get goal")
		writeError(w, http.StatusInternalServerError, "Failed to retrieve goal")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"goal": goal})
}

// Delete removes a goal owned by the authenticated user.
func (h *GoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserID(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteGoal(r.Context(), userID, id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Goal not found")
			return
		}
		log.Error().Err(err).Str("goal_id", id).Msg("Failed to delete goal")
		writeError(w, http.StatusInternalServerError, "Failed to delete goal")
		return
	}

	writeJSON(w, http.StatusOK, envelope{"deleted": id})
}
