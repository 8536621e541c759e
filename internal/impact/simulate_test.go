package impact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvachan/onoe-sim/internal/seat"
	"github.com/nirvachan/onoe-sim/internal/synth"
)

func chandniChowk() seat.Seat {
	return seat.Seat{
		ID:       "cc",
		Name:     "Chandni Chowk",
		Tier:     seat.TierNational,
		Category: "Commercial-Historic",
		Baseline: seat.Baseline{MCCDays: 1300, CostLakhs: 95, StaffDeployments: 18, VoterTurnout: 58},
	}
}

func TestSimulateRules(t *testing.T) {
	r := Simulate(chandniChowk())

	assert.Equal(t, IntDelta{Curr: 1300, ONOE: 650}, r.Gov.MCC)
	assert.Equal(t, 95.0, r.Fin.Cost.Curr)
	assert.Equal(t, 61.8, r.Fin.Cost.ONOE)
	assert.Equal(t, IntDelta{Curr: 18, ONOE: 5}, r.Admin.Deployments)
	assert.Equal(t, IntDelta{Curr: 60, ONOE: 90}, r.Const.Stability)
}

func TestSimulateStabilityByTier(t *testing.T) {
	for _, tier := range []seat.Tier{seat.TierState, seat.TierMunicipal} {
		s := chandniChowk()
		s.Tier = tier
		assert.Equal(t, IntDelta{Curr: 45, ONOE: 90}, Simulate(s).Const.Stability, tier)
	}
}

func TestSimulateRoundsHalfUp(t *testing.T) {
	s := chandniChowk()
	s.Baseline.MCCDays = 951
	assert.Equal(t, 476, Simulate(s).Gov.MCC.ONOE)
}

func TestSimulateDeterministic(t *testing.T) {
	seats, err := synth.NewSeeded(3).BuildDataset()
	require.NoError(t, err)
	for _, s := range seats {
		a, b := Simulate(s), Simulate(s)
		require.Equal(t, a, b)
		assert.Equal(t, 5, a.Admin.Deployments.ONOE)
		assert.Equal(t, 90, a.Const.Stability.ONOE)
		assert.LessOrEqual(t, a.Fin.Cost.ONOE, s.Baseline.CostLakhs)
	}
}

func TestServiceSimulateByID(t *testing.T) {
	ctx := context.Background()
	store := seat.NewInMemoryStore()
	require.NoError(t, store.BulkInsert(ctx, []seat.Seat{chandniChowk()}))
	svc := NewService(store, nil)

	s, r, err := svc.SimulateByID(ctx, "cc")
	require.NoError(t, err)
	assert.Equal(t, "Chandni Chowk", s.Name)
	assert.Equal(t, 650, r.Gov.MCC.ONOE)

	_, r, err = svc.SimulateByID(ctx, "missing")
	assert.ErrorIs(t, err, seat.ErrNotFound)
	assert.Equal(t, Report{}, r)

	_, _, err = svc.SimulateByID(ctx, "")
	assert.ErrorIs(t, err, seat.ErrNotFound)
}
