package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/nirvachan/onoe-sim/internal/seat"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// ListSeatsHandler serves GET /api/seats/{level}.
func ListSeatsHandler(store seat.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tier, err := seat.ParseTier(chi.URLParam(r, "level"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		seats, err := store.FindByTier(r.Context(), tier)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, seats)
	}
}

// GetSeatHandler serves GET /api/seats/id/{seatID}.
func GetSeatHandler(store seat.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s, err := store.FindByID(r.Context(), chi.URLParam(r, "seatID"))
		if errors.Is(err, seat.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "Seat not found"})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}
