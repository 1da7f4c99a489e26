package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/Dorian509/BackEnd/internal/hydration"
)

type ProfileHandler struct {
	svc *hydration.Service
}

func NewProfileHandler(svc *hydration.Service) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

type profileRequest struct {
	WeightKg      int     `json:"weightKg"`
	ActivityLevel string  `json:"activityLevel,omitempty"`
	Climate       string  `json:"climate,omitempty"`
	Timezone      *string `json:"timezone,omitempty"`
}

func (h *ProfileHandler) decode(w http.ResponseWriter, r *http.Request) (*hydration.ProfileInput, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}
	if err := validateBody(r.Context(), profileSchema, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	var req profileRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return nil, false
	}

	level, climate, err := parseAttributes(req.ActivityLevel, req.Climate)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	return &hydration.ProfileInput{
		WeightKg:      req.WeightKg,
		ActivityLevel: level,
		Climate:       climate,
		Timezone:      req.Timezone,
	}, true
}

// CreateProfile stores a standalone profile without identity fields; the
// register endpoint is the usual entry point.
func (h *ProfileHandler) CreateProfile(w http.ResponseWriter, r *http.Request) {
	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	profile, err := h.svc.CreateProfile(r.Context(), "", "", "", *in)
	if err != nil {
		serviceError(w, err, "failed to create profile")
		return
	}

	writeJSON(w, profile, http.StatusCreated)
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	profile, err := h.svc.GetProfile(r.Context(), id)
	if err != nil {
		serviceError(w, err, "failed to get profile")
		return
	}

	writeJSON(w, profile, http.StatusOK)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	in, ok := h.decode(w, r)
	if !ok {
		return
	}

	profile, err := h.svc.UpdateProfile(r.Context(), id, *in)
	if err != nil {
		serviceError(w, err, "failed to update profile")
		return
	}

	writeJSON(w, profile, http.StatusOK)
}
