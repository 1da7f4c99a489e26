package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/Dorian509/BackEnd/internal/hydration"
	"github.com/Dorian509/BackEnd/pkg/models"
)

type IntakesHandler struct {
	svc *hydration.Service
}

func NewIntakesHandler(svc *hydration.Service) *IntakesHandler {
	return &IntakesHandler{svc: svc}
}

type intakeRequest struct {
	UserID   int64  `json:"userId"`
	VolumeMl int    `json:"volumeMl"`
	Source   string `json:"source,omitempty"`
}

func (h *IntakesHandler) CreateIntake(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}
	if err := validateBody(r.Context(), intakeSchema, body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req intakeRequest
	if err := json.Unmarshal(body, &req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	source := models.SourceSip
	if req.Source != "" {
		if source, err = models.ParseIntakeSource(req.Source); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	event, err := h.svc.RecordIntake(r.Context(), req.UserID, req.VolumeMl, source)
	if err != nil {
		serviceError(w, err, "failed to record intake")
		return
	}

	writeJSON(w, event, http.StatusCreated)
}

func (h *IntakesHandler) RecentIntakes(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}

	limit := 0
	if l := r.URL.Query().Get("limit"); l != "" {
		v, err := strconv.Atoi(l)
		if err != nil || v <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = v
	}

	events, err := h.svc.RecentIntakes(r.Context(), userID, limit)
	if err != nil {
		serviceError(w, err, "failed to list intakes")
		return
	}

	writeJSON(w, events, http.StatusOK)
}

func (h *IntakesHandler) DeleteIntake(w http.ResponseWriter, r *http.Request) {
	intakeID, ok := pathID(r, "intakeId")
	if !ok {
		http.Error(w, "invalid intakeId", http.StatusBadRequest)
		return
	}

	if err := h.svc.DeleteIntake(r.Context(), intakeID); err != nil {
		serviceError(w, err, "failed to delete intake")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
