package handler

import (
	"encoding/json"
	"net/http"

	"github.com/campusmeet/sportsapp/internal/ctxkeys"
	"github.com/campusmeet/sportsapp/internal/model"
)

type dashboardHandler struct{}

func NewDashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

func (h *dashboardHandler) DashboardPage(w http.ResponseWriter, r *http.Request) {
	serveAsset(w, r, "dashboard.html")
}

// Me returns the authenticated user's display identity for the dashboard.
func (h *dashboardHandler) Me(w http.ResponseWriter, r *http.Request) {
	session := ctxkeys.Session(r.Context())

	writeJSON(w, http.StatusOK, map[string]string{
		"username": session.Username,
	})
}

// Sports lists the offered sports for the dashboard buttons.
func (h *dashboardHandler) Sports(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"sports": model.Sports,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
