package api

import (
	"net/http"

	"github.com/Dorian509/BackEnd/internal/hydration"
)

type HydrationHandler struct {
	svc *hydration.Service
}

func NewHydrationHandler(svc *hydration.Service) *HydrationHandler {
	return &HydrationHandler{svc: svc}
}

// TodayStatus returns goal, consumed, remaining and percentage for the
// current day in the user's timezone.
func (h *HydrationHandler) TodayStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}

	status, err := h.svc.TodayStatus(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "failed to get today status")
		return
	}

	writeJSON(w, status, http.StatusOK)
}

// TodayIntakes lists the events logged inside the current day window,
// oldest first.
func (h *HydrationHandler) TodayIntakes(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "userId")
	if !ok {
		http.Error(w, "invalid userId", http.StatusBadRequest)
		return
	}

	events, err := h.svc.TodayIntakes(r.Context(), userID)
	if err != nil {
		serviceError(w, err, "failed to list today intakes")
		return
	}

	writeJSON(w, events, http.StatusOK)
}
