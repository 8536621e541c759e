// Package pressure scores how hard a synchronized cycle presses on each
// stakeholder group.
package pressure

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var ErrInvalidFactors = errors.New("invalid sensitivity factors")

// Verdict is the summary line shown under the stakeholder chart.
const Verdict = "At low cost and disruption, national parties and wealthier states face manageable pressure, " +
	"but as assumptions move towards a Philippine-style mega election, regional parties and lower-capacity " +
	"states become the most stressed actors in India's ONOE transition."

const scale = 50

// Factors is the slider snapshot owned by the presentation layer.
type Factors struct {
	Cost    float64 `json:"costFactor"`
	Turnout float64 `json:"turnoutFactor"`
}

var DefaultFactors = Factors{Cost: 0.9, Turnout: 1.0}

func (f Factors) Validate() error {
	for _, v := range []float64{f.Cost, f.Turnout} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %v", ErrInvalidFactors, f)
		}
	}
	return nil
}

// RawScore is the unclamped pressure.
func RawScore(s Stakeholder, f Factors) float64 {
	return f.Cost*s.CostSensitivity*scale + f.Turnout*(1-s.Reach)*scale
}

// Score is RawScore clamped to [0, 100]. An undefined raw score (NaN from
// non-finite inputs) scores 0.
func Score(s Stakeholder, f Factors) float64 {
	raw := RawScore(s, f)
	if math.IsNaN(raw) {
		return 0
	}
	return math.Max(0, math.Min(100, raw))
}

// Result is one stakeholder's row in the chart. Share is the pressure as a
// percentage of the batch maximum.
type Result struct {
	Stakeholder
	Pressure float64 `json:"pressure"`
	Share    float64 `json:"share"`
	Rank     int     `json:"rank"`
}

// Normalize maps each pressure to a percentage of the maximum. An all-zero
// batch divides by 1.
func Normalize(pressures []float64) []float64 {
	top := 0.0
	for _, p := range pressures {
		top = math.Max(top, p)
	}
	if top == 0 {
		top = 1
	}
	out := make([]float64, len(pressures))
	for i, p := range pressures {
		out[i] = p / top * 100
	}
	return out
}

// Rank scores every profile and orders by descending pressure. Equal
// scores keep declaration order.
func Rank(profiles []Stakeholder, f Factors) []Result {
	pressures := make([]float64, len(profiles))
	for i, s := range profiles {
		pressures[i] = Score(s, f)
	}
	shares := Normalize(pressures)

	out := make([]Result, len(profiles))
	for i, s := range profiles {
		out[i] = Result{Stakeholder: s, Pressure: pressures[i], Share: shares[i]}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Pressure > out[j].Pressure })
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
