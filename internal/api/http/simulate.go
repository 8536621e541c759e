package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nirvachan/onoe-sim/internal/commentary"
	"github.com/nirvachan/onoe-sim/internal/impact"
	"github.com/nirvachan/onoe-sim/internal/seat"
)

type simulateResponse struct {
	SeatInfo seat.Seat              `json:"seat_info"`
	Metrics  impact.Report          `json:"metrics"`
	Insight  commentary.TierInsight `json:"insight"`
}

// SimulateHandler serves POST /api/simulate {"seatId": "..."}.
func SimulateHandler(svc *impact.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			SeatID string `json:"seatId"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		s, report, err := svc.SimulateByID(r.Context(), req.SeatID)
		if errors.Is(err, seat.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "Seat not found"})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, simulateResponse{
			SeatInfo: s,
			Metrics:  report,
			Insight:  commentary.Insight(s.Tier),
		})
	}
}

// AnalyzeHandler serves POST /api/ai-analyze. Upstream failures come back
// as the fallback sentence with 200.
func AnalyzeHandler(svc *commentary.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req commentary.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"analysis": svc.Analyze(r.Context(), req)})
	}
}
