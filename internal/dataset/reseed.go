// Package dataset regenerates the stored constituency dataset.
package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/nirvachan/onoe-sim/internal/seat"
	"github.com/nirvachan/onoe-sim/internal/storage"
	syncx "github.com/nirvachan/onoe-sim/internal/sync"
	"github.com/nirvachan/onoe-sim/internal/synth"
)

// EventAppender records reseeds; *syncx.EventRepo satisfies it.
type EventAppender interface {
	Append(ctx context.Context, typ, key string, payload any) error
}

// Reseeder builds a full batch and swaps it into the store. Snapshot and
// event are best effort once the store has the new data.
type Reseeder struct {
	Store  seat.Store
	Blobs  storage.BlobStore // optional
	Events EventAppender     // optional
	Log    *zap.Logger
}

// SnapshotPrefix is the blob key prefix of dataset exports.
const SnapshotPrefix = "snapshots/"

type Result struct {
	Seed     uint64            `json:"seed"`
	Counts   map[seat.Tier]int `json:"counts"`
	Total    int               `json:"total"`
	Snapshot string            `json:"snapshot,omitempty"`
}

// Reseed regenerates every tier from seed (0 = time-seeded). actor names
// who asked, for the event log.
func (r *Reseeder) Reseed(ctx context.Context, seed uint64, actor string) (Result, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	seats, err := synth.NewSeeded(seed).BuildDataset()
	if err != nil {
		return Result{}, fmt.Errorf("build dataset: %w", err)
	}
	if err := seat.Replace(ctx, r.Store, seats); err != nil {
		return Result{}, err
	}

	res := Result{Seed: seed, Counts: seat.CountByTier(seats), Total: len(seats)}
	for _, t := range seat.Tiers {
		log.Info("inserted seats", zap.String("tier", string(t)), zap.Int("count", res.Counts[t]))
	}
	log.Info("dataset ready", zap.Int("total", res.Total), zap.Uint64("seed", seed))

	if r.Blobs != nil {
		key, err := r.snapshot(seats)
		if err != nil {
			log.Warn("dataset snapshot failed", zap.Error(err))
		} else {
			res.Snapshot = key
		}
	}
	if r.Events != nil {
		if err := r.Events.Append(ctx, syncx.TypeDatasetReseeded, actor, res); err != nil {
			log.Warn("event log append failed", zap.Error(err))
		}
	}
	return res, nil
}

func (r *Reseeder) snapshot(seats []seat.Seat) (string, error) {
	buf, err := json.MarshalIndent(seats, "", "  ")
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("%sdataset-%d.json", SnapshotPrefix, time.Now().Unix())
	return r.Blobs.Put(key, bytes.NewReader(buf))
}
