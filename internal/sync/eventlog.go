package syncx

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

const TypeDatasetReseeded = "DatasetReseeded"

var ErrNoEvents = errors.New("no events")

type Event struct {
	Offset    int64           `json:"offset"`
	SiteID    string          `json:"site_id"`
	Type      string          `json:"type"`
	Key       string          `json:"key"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"`
}

type EventRepo struct{ db *sql.DB }

func NewEventRepo(db *sql.DB) *EventRepo { return &EventRepo{db: db} }

// Append stores payload as the event's JSON data.
func (r *EventRepo) Append(ctx context.Context, typ, key string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO event_log (site_id, typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		"local", typ, key, string(data), time.Now().Unix())
	return err
}

// Latest returns the most recent event of typ.
func (r *EventRepo) Latest(ctx context.Context, typ string) (Event, error) {
	var e Event
	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT "offset", site_id, typ, key, data, created_at FROM event_log
		  WHERE typ=$1 ORDER BY "offset" DESC LIMIT 1`, typ).
		Scan(&e.Offset, &e.SiteID, &e.Type, &e.Key, &data, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Event{}, ErrNoEvents
	}
	if err != nil {
		return Event{}, err
	}
	e.Data = json.RawMessage(data)
	return e, nil
}
