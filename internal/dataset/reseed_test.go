package dataset

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirvachan/onoe-sim/internal/seat"
	"github.com/nirvachan/onoe-sim/internal/storage"
	syncx "github.com/nirvachan/onoe-sim/internal/sync"
)

type recordedEvent struct {
	typ, key string
	payload  any
}

type fakeEvents struct {
	got []recordedEvent
	err error
}

func (f *fakeEvents) Append(_ context.Context, typ, key string, payload any) error {
	f.got = append(f.got, recordedEvent{typ, key, payload})
	return f.err
}

func TestReseedReplacesDataset(t *testing.T) {
	ctx := context.Background()
	store := seat.NewInMemoryStore()
	blobs, err := storage.NewFSStore(t.TempDir())
	require.NoError(t, err)
	events := &fakeEvents{}
	r := &Reseeder{Store: store, Blobs: blobs, Events: events}

	first, err := r.Reseed(ctx, 7, "cli")
	require.NoError(t, err)
	assert.Equal(t, 327, first.Total)
	assert.Equal(t, uint64(7), first.Seed)
	require.NotEmpty(t, first.Snapshot)

	rc, err := blobs.Get(first.Snapshot)
	require.NoError(t, err)
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	require.NoError(t, err)
	var snap []seat.Seat
	require.NoError(t, json.Unmarshal(raw, &snap))
	assert.Len(t, snap, 327)

	// reseeding does not accumulate
	_, err = r.Reseed(ctx, 8, "cli")
	require.NoError(t, err)
	for _, tier := range seat.Tiers {
		got, err := store.FindByTier(ctx, tier)
		require.NoError(t, err)
		assert.Equal(t, first.Counts[tier], len(got), tier)
	}

	require.Len(t, events.got, 2)
	assert.Equal(t, syncx.TypeDatasetReseeded, events.got[0].typ)
	assert.Equal(t, "cli", events.got[0].key)
	assert.Equal(t, first, events.got[0].payload)
}

func TestReseedIsReproducible(t *testing.T) {
	ctx := context.Background()
	a, b := seat.NewInMemoryStore(), seat.NewInMemoryStore()
	_, err := (&Reseeder{Store: a}).Reseed(ctx, 99, "")
	require.NoError(t, err)
	_, err = (&Reseeder{Store: b}).Reseed(ctx, 99, "")
	require.NoError(t, err)

	for _, tier := range seat.Tiers {
		x, _ := a.FindByTier(ctx, tier)
		y, _ := b.FindByTier(ctx, tier)
		assert.Equal(t, x, y)
	}
}

func TestReseedSurvivesEventFailure(t *testing.T) {
	r := &Reseeder{Store: seat.NewInMemoryStore(), Events: &fakeEvents{err: errors.New("db gone")}}
	res, err := r.Reseed(context.Background(), 1, "")
	require.NoError(t, err)
	assert.Equal(t, 327, res.Total)
}
