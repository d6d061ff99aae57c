package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dnlklmn/wpr-presence/internal/mockapi"
	"github.com/dnlklmn/wpr-presence/internal/models"

	"go.uber.org/zap"
)

// LoginRequest is the credentials body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// HoursHandler serves the presence wire contract backed by the mock data
// service, so the real client can be exercised without the production
// backend.
type HoursHandler struct {
	api    *mockapi.Service
	logger *zap.Logger
}

// NewHoursHandler creates a handler over the given mock service.
func NewHoursHandler(api *mockapi.Service, logger *zap.Logger) *HoursHandler {
	return &HoursHandler{
		api:    api,
		logger: logger,
	}
}

func (h *HoursHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode login request", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.api.Login(req.Username, req.Password)
	if err != nil {
		h.logger.Error("Login failed", zap.Error(err))
		http.Error(w, "Login failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *HoursHandler) Employees(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.authorized(w, r) {
		return
	}

	resp, err := h.api.Employees()
	if err != nil {
		h.logger.Error("Failed to list employees", zap.Error(err))
		http.Error(w, "Failed to list employees", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HoursHandler) Locations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if !h.authorized(w, r) {
		return
	}

	resp, err := h.api.Locations()
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		http.Error(w, "Failed to list locations", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Hours dispatches POST (submit) and GET (history) on /hours.
func (h *HoursHandler) Hours(w http.ResponseWriter, r *http.Request) {
	if !h.authorized(w, r) {
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.submitHours(w, r)
	case http.MethodGet:
		h.history(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *HoursHandler) submitHours(w http.ResponseWriter, r *http.Request) {
	var data models.HoursData
	if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
		h.logger.Warn("Failed to decode hours submission", zap.Error(err))
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.api.SubmitHours(data)
	if err != nil {
		h.logger.Error("Failed to submit hours", zap.Error(err))
		http.Error(w, "Failed to submit hours", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *HoursHandler) history(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	resp, err := h.api.HoursHistory(start, end)
	if err != nil {
		h.logger.Error("Failed to fetch history", zap.Error(err))
		http.Error(w, "Failed to fetch history", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// authorized enforces the demo trust model: any non-empty bearer token.
func (h *HoursHandler) authorized(w http.ResponseWriter, r *http.Request) bool {
	auth := r.Header.Get("Authorization")
	token := strings.TrimPrefix(auth, "Bearer ")
	if !strings.HasPrefix(auth, "Bearer ") || token == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
