package seat_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvachan/onoe-sim/internal/db"
	"github.com/nirvachan/onoe-sim/internal/seat"
)

func sample() []seat.Seat {
	return []seat.Seat{
		{ID: "ls-1", Name: "Chandni Chowk", Tier: seat.TierNational, Category: "Commercial-Historic",
			Baseline: seat.Baseline{MCCDays: 1300, CostLakhs: 95.12, StaffDeployments: 9, VoterTurnout: 58.5}},
		{ID: "vs-1", Name: "Narela", Tier: seat.TierState, Category: "Rural",
			Baseline: seat.Baseline{MCCDays: 950, CostLakhs: 35.5, StaffDeployments: 10, VoterTurnout: 66.1}},
		{ID: "vs-2", Name: "Chandni Chowk", Tier: seat.TierState, Category: "Commercial",
			Baseline: seat.Baseline{MCCDays: 900, CostLakhs: 50, StaffDeployments: 11, VoterTurnout: 58}},
		{ID: "mcd-1", Name: "Ward 1 (Narela)", Tier: seat.TierMunicipal, Category: "Rural",
			Baseline: seat.Baseline{MCCDays: 650, CostLakhs: 12.34, StaffDeployments: 8, VoterTurnout: 68}},
	}
}

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	dbh, err := db.Open(context.Background(), db.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() { dbh.Close() })
	return dbh
}

// runStoreContract exercises the behaviour both stores must share.
func runStoreContract(t *testing.T, st seat.Store) {
	ctx := context.Background()
	require.NoError(t, st.BulkInsert(ctx, sample()))

	vs, err := st.FindByTier(ctx, seat.TierState)
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "Narela", vs[0].Name)
	assert.Equal(t, "Chandni Chowk", vs[1].Name)

	got, err := st.FindByID(ctx, "mcd-1")
	require.NoError(t, err)
	assert.Equal(t, sample()[3], got)

	_, err = st.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, seat.ErrNotFound)

	// a batch with a name clash inside a tier is rejected whole
	bad := []seat.Seat{
		{ID: "vs-3", Name: "Burari", Tier: seat.TierState, Category: "Mixed",
			Baseline: seat.Baseline{MCCDays: 900, CostLakhs: 40, StaffDeployments: 9, VoterTurnout: 60}},
		{ID: "vs-4", Name: "Narela", Tier: seat.TierState, Category: "Rural",
			Baseline: seat.Baseline{MCCDays: 900, CostLakhs: 40, StaffDeployments: 9, VoterTurnout: 60}},
	}
	assert.Error(t, st.BulkInsert(ctx, bad))
	_, err = st.FindByID(ctx, "vs-3")
	assert.ErrorIs(t, err, seat.ErrNotFound)

	require.NoError(t, st.ClearAll(ctx))
	vs, err = st.FindByTier(ctx, seat.TierState)
	require.NoError(t, err)
	assert.Empty(t, vs)

	// retry from scratch after clearing
	require.NoError(t, seat.Replace(ctx, st, sample()))
	ls, err := st.FindByTier(ctx, seat.TierNational)
	require.NoError(t, err)
	assert.Len(t, ls, 1)
}

func TestMemoryStore(t *testing.T) {
	runStoreContract(t, seat.NewInMemoryStore())
}

func TestSQLStore(t *testing.T) {
	runStoreContract(t, seat.NewSQLStore(openSQLite(t), "sqlite"))
}

func TestSQLStoreReplaceKeepsOldDataOnFailure(t *testing.T) {
	ctx := context.Background()
	st := seat.NewSQLStore(openSQLite(t), "sqlite")
	require.NoError(t, st.BulkInsert(ctx, sample()))

	dup := append(sample(), sample()[0])
	assert.Error(t, seat.Replace(ctx, st, dup))

	ls, err := st.FindByTier(ctx, seat.TierNational)
	require.NoError(t, err)
	assert.Len(t, ls, 1)
}

func TestBulkInsertRejectsInvalidRecord(t *testing.T) {
	bad := sample()[:1]
	bad[0].Baseline.VoterTurnout = 101
	for name, st := range map[string]seat.Store{
		"memory": seat.NewInMemoryStore(),
		"sql":    seat.NewSQLStore(openSQLite(t), "sqlite"),
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, st.BulkInsert(context.Background(), bad), seat.ErrInvalidRecord)
		})
	}
}
