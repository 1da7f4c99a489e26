package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"log/slog"

	"github.com/Dorian509/BackEnd/internal/hydration"
	"github.com/gorilla/mux"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// pathID parses a numeric path variable; the second return is false when the
// variable is missing or not a positive integer.
func pathID(r *http.Request, name string) (int64, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// serviceError maps engine failures onto HTTP: NotFound becomes 404,
// everything else is logged and becomes 500 with the fallback message.
func serviceError(w http.ResponseWriter, err error, fallback string) {
	if hydration.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	logger.Error(fallback, slog.Any("err", err))
	http.Error(w, fallback, http.StatusInternalServerError)
}
