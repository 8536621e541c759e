package syncx

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvachan/onoe-sim/internal/db"
)

func TestEventRepoLatest(t *testing.T) {
	ctx := context.Background()
	dbh, err := db.Open(ctx, db.DriverSQLite, "file::memory:")
	require.NoError(t, err)
	defer dbh.Close()
	repo := NewEventRepo(dbh)

	_, err = repo.Latest(ctx, TypeDatasetReseeded)
	assert.ErrorIs(t, err, ErrNoEvents)

	require.NoError(t, repo.Append(ctx, TypeDatasetReseeded, "admin", map[string]int{"total": 1}))
	require.NoError(t, repo.Append(ctx, "Other", "x", nil))
	require.NoError(t, repo.Append(ctx, TypeDatasetReseeded, "cli", map[string]int{"total": 2}))

	e, err := repo.Latest(ctx, TypeDatasetReseeded)
	require.NoError(t, err)
	assert.Equal(t, "cli", e.Key)
	assert.Equal(t, "local", e.SiteID)
	assert.JSONEq(t, `{"total":2}`, string(e.Data))
	assert.Equal(t, int64(3), e.Offset)
	assert.NotZero(t, e.CreatedAt)
}
