package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	authmw "github.com/nirvachan/onoe-sim/internal/auth/middleware"
	"github.com/nirvachan/onoe-sim/internal/dataset"
	"github.com/nirvachan/onoe-sim/internal/storage"
	syncx "github.com/nirvachan/onoe-sim/internal/sync"
)

// ReseedHandler serves POST /api/admin/reseed {"seed": N}. The body is
// optional; seed 0 or absent picks a time-based seed.
func ReseedHandler(rs *dataset.Reseeder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Seed uint64 `json:"seed"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "bad json")
			return
		}
		res, err := rs.Reseed(r.Context(), req.Seed, authmw.SubjectFromContext(r.Context()))
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// LatestEvent reads the newest event of a type; *syncx.EventRepo satisfies it.
type LatestEvent interface {
	Latest(ctx context.Context, typ string) (syncx.Event, error)
}

// DatasetStatusHandler serves GET /api/dataset/status with the last reseed.
func DatasetStatusHandler(events LatestEvent) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := events.Latest(r.Context(), syncx.TypeDatasetReseeded)
		if errors.Is(err, syncx.ErrNoEvents) {
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "dataset never seeded"})
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

// SnapshotHandler serves GET /api/dataset/snapshots/{name}, the JSON export
// written by a reseed.
func SnapshotHandler(blobs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rc, err := blobs.Get(dataset.SnapshotPrefix + chi.URLParam(r, "name"))
		switch {
		case errors.Is(err, storage.ErrBadKey):
			writeError(w, http.StatusBadRequest, err.Error())
			return
		case errors.Is(err, fs.ErrNotExist):
			writeJSON(w, http.StatusNotFound, map[string]string{"msg": "snapshot not found"})
			return
		case err != nil:
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.Copy(w, rc)
	}
}
