package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/campusmeet/sportsapp/internal/ctxkeys"
	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/campusmeet/sportsapp/internal/service"
)

type slotHandler struct {
	slotService    *service.SlotService
	sessionService *service.SessionService
}

func NewSlotHandler(slotService *service.SlotService, sessionService *service.SessionService) *slotHandler {
	return &slotHandler{
		slotService:    slotService,
		sessionService: sessionService,
	}
}

type addTimeRequest struct {
	Sport    string `json:"sport"`
	Location string `json:"location"`
	Time     string `json:"time"`
	Duration int    `json:"duration"`
}

// AddTime creates a slot owned by the session's user. Validation and
// duplicate failures are client errors (400); unexpected storage failures
// are logged and surfaced opaquely as 500.
func (h *slotHandler) AddTime(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	var req addTimeRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	slot, err := h.slotService.AddSlot(session.UserID, req.Sport, req.Location, req.Time, req.Duration)
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Reason})
		case errors.Is(err, service.ErrDuplicateSlot):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "You already posted this time slot"})
		default:
			slog.Error("failed to add time slot", "error", err, "user_id", session.UserID)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"slot": map[string]any{
			"sport":    slot.Sport,
			"location": slot.Location,
			"time":     slot.StartTime,
			"duration": slot.DurationMinutes,
		},
	})
}

// GetTimes lists active slots for a sport and location, any owner.
func (h *slotHandler) GetTimes(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	sport := r.URL.Query().Get("sport")
	location := r.URL.Query().Get("location")

	times, err := h.slotService.ActiveSlots(sport, location)
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": vErr.Reason})
			return
		}
		slog.Error("failed to list time slots", "error", err, "user_id", session.UserID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"times": times})
}

type selectSportRequest struct {
	Sport string `json:"sport"`
}

// SelectSport stores a session-scoped scratch value; it does not outlive
// the session.
func (h *slotHandler) SelectSport(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	var req selectSportRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
		return
	}

	if req.Sport != "" && !model.IsKnownSport(req.Sport) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Unknown sport"})
		return
	}

	err = h.sessionService.SetSelectedSport(session.ID, req.Sport)
	if err != nil {
		slog.Error("failed to set selected sport", "error", err, "user_id", session.UserID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"selectedSport": req.Sport})
}

func (h *slotHandler) SelectedSport(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	sport, err := h.sessionService.SelectedSport(session.ID)
	if err != nil {
		slog.Error("failed to get selected sport", "error", err, "user_id", session.UserID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Server error"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"selectedSport": sport})
}
