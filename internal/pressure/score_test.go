package pressure

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regional() Stakeholder {
	return Stakeholder{Key: "regional", Name: "Regional parties", Reach: 0.65, CostSensitivity: 1.15}
}

func TestScoreScenario(t *testing.T) {
	got := Score(regional(), Factors{Cost: 0.9, Turnout: 1.0})
	assert.InDelta(t, 69.25, got, 1e-9)
}

func TestScoreClamps(t *testing.T) {
	heavy := Stakeholder{Key: "h", Reach: 0, CostSensitivity: 3}
	assert.Equal(t, 100.0, Score(heavy, Factors{Cost: 2, Turnout: 2}))
	assert.Greater(t, RawScore(heavy, Factors{Cost: 2, Turnout: 2}), 100.0)

	assert.Equal(t, 0.0, Score(heavy, Factors{}))
}

func TestScoreStaysInRangeForNonFiniteInputs(t *testing.T) {
	nanReach := Stakeholder{Key: "x", Reach: math.NaN(), CostSensitivity: 1}
	infCost := Stakeholder{Key: "y", Reach: 0.5, CostSensitivity: math.Inf(1)}

	assert.Equal(t, 0.0, Score(regional(), Factors{Cost: math.NaN(), Turnout: 1}))
	assert.Equal(t, 0.0, Score(nanReach, DefaultFactors))
	assert.Equal(t, 0.0, Score(infCost, Factors{Cost: 0, Turnout: 0}))
	assert.Equal(t, 100.0, Score(infCost, DefaultFactors))

	for _, r := range Rank([]Stakeholder{nanReach, infCost, regional()}, DefaultFactors) {
		assert.False(t, math.IsNaN(r.Pressure), r.Key)
		assert.False(t, math.IsNaN(r.Share), r.Key)
		assert.GreaterOrEqual(t, r.Pressure, 0.0)
		assert.LessOrEqual(t, r.Pressure, 100.0)
	}
}

func TestScoreMonotonic(t *testing.T) {
	s := regional()
	prev := -1.0
	for c := 0.0; c <= 3; c += 0.05 {
		p := Score(s, Factors{Cost: c, Turnout: 1})
		require.GreaterOrEqual(t, p, prev, "cost %v", c)
		require.True(t, p >= 0 && p <= 100)
		prev = p
	}
	prev = -1.0
	for tf := 0.0; tf <= 3; tf += 0.05 {
		p := Score(s, Factors{Cost: 0.5, Turnout: tf})
		require.GreaterOrEqual(t, p, prev, "turnout %v", tf)
		require.True(t, p >= 0 && p <= 100)
		prev = p
	}
}

func TestFullReachIgnoresTurnout(t *testing.T) {
	s := Stakeholder{Key: "n", Reach: 1, CostSensitivity: 0.7}
	assert.Equal(t, Score(s, Factors{Cost: 0.9, Turnout: 0}), Score(s, Factors{Cost: 0.9, Turnout: 5}))
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, []float64{100, 0, 0}, Normalize([]float64{10, 0, 0}))
	assert.Equal(t, []float64{0, 0, 0}, Normalize([]float64{0, 0, 0}))
	assert.Equal(t, []float64{50, 100}, Normalize([]float64{20, 40}))
	assert.Empty(t, Normalize(nil))
}

func TestRankOrdersAndKeepsTies(t *testing.T) {
	profiles := []Stakeholder{
		{Key: "a", Reach: 1, CostSensitivity: 0.5},
		{Key: "b", Reach: 1, CostSensitivity: 1},
		{Key: "c", Reach: 1, CostSensitivity: 0.5},
		{Key: "d", Reach: 1, CostSensitivity: 1},
	}
	got := Rank(profiles, Factors{Cost: 1, Turnout: 1})
	keys := make([]string, len(got))
	for i, r := range got {
		keys[i] = r.Key
		assert.Equal(t, i+1, r.Rank)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, keys)
	assert.Equal(t, 100.0, got[0].Share)
	assert.Equal(t, 50.0, got[2].Share)
}

func TestRankAllZero(t *testing.T) {
	got := Rank(Default(), Factors{})
	for i, r := range got {
		assert.Equal(t, 0.0, r.Pressure)
		assert.Equal(t, 0.0, r.Share)
		assert.Equal(t, Default()[i].Key, r.Key)
	}
}

func TestRankDefaults(t *testing.T) {
	got := Rank(Default(), DefaultFactors)
	require.Len(t, got, 4)
	assert.Equal(t, "lowcap_states", got[0].Key)
	assert.Equal(t, "regional", got[1].Key)
	assert.InDelta(t, 69.25, got[1].Pressure, 1e-9)
}

func TestFactorsValidate(t *testing.T) {
	assert.NoError(t, DefaultFactors.Validate())
	assert.ErrorIs(t, Factors{Cost: -1}.Validate(), ErrInvalidFactors)
	assert.ErrorIs(t, Factors{Turnout: math.NaN()}.Validate(), ErrInvalidFactors)
	assert.ErrorIs(t, Factors{Cost: math.Inf(1)}.Validate(), ErrInvalidFactors)
}
