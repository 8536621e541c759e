package http

import (
	"net/http"
	"strconv"

	"github.com/nirvachan/onoe-sim/internal/pressure"
)

type pressureResponse struct {
	Factors pressure.Factors  `json:"factors"`
	Results []pressure.Result `json:"results"`
	Verdict string            `json:"verdict"`
}

func StakeholdersHandler(profiles []pressure.Stakeholder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, profiles)
	}
}

// PressureHandler serves GET /api/stakeholders/pressure?cost=&turnout=.
// Missing factors take the slider defaults.
func PressureHandler(profiles []pressure.Stakeholder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f := pressure.DefaultFactors
		var err error
		if f.Cost, err = parseFloatDefault(r.URL.Query().Get("cost"), f.Cost); err != nil {
			writeError(w, http.StatusBadRequest, "cost: "+err.Error())
			return
		}
		if f.Turnout, err = parseFloatDefault(r.URL.Query().Get("turnout"), f.Turnout); err != nil {
			writeError(w, http.StatusBadRequest, "turnout: "+err.Error())
			return
		}
		if err := f.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, pressureResponse{
			Factors: f,
			Results: pressure.Rank(profiles, f),
			Verdict: pressure.Verdict,
		})
	}
}

func parseFloatDefault(s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	return strconv.ParseFloat(s, 64)
}
