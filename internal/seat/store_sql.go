package seat

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

const seatColumns = `id,name,tier,category,mcc_days,cost_lakhs,staff_deployments,voter_turnout`

func scanSeat(row interface{ Scan(...any) error }) (Seat, error) {
	var s Seat
	var tier string
	err := row.Scan(&s.ID, &s.Name, &tier, &s.Category,
		&s.Baseline.MCCDays, &s.Baseline.CostLakhs, &s.Baseline.StaffDeployments, &s.Baseline.VoterTurnout)
	s.Tier = Tier(tier)
	return s, err
}

func (s *SQLStore) FindByTier(ctx context.Context, tier Tier) ([]Seat, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+seatColumns+` FROM constituencies WHERE tier=$1 ORDER BY position`, string(tier))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Seat{}
	for rows.Next() {
		st, err := scanSeat(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

func (s *SQLStore) FindByID(ctx context.Context, id string) (Seat, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+seatColumns+` FROM constituencies WHERE id=$1`, id)
	st, err := scanSeat(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Seat{}, ErrNotFound
		}
		return Seat{}, err
	}
	return st, nil
}

func (s *SQLStore) ClearAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM constituencies`)
	return err
}

// BulkInsert writes the batch in one transaction; any failure rolls back
// every row of the batch.
func (s *SQLStore) BulkInsert(ctx context.Context, seats []Seat) error {
	return s.inTx(ctx, seats, func(tx *sql.Tx) (int, error) {
		var base int
		err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position),0) FROM constituencies`).Scan(&base)
		return base, err
	})
}

// ReplaceAll clears and reloads the table inside a single transaction, so a
// failed reload leaves the previous dataset in place.
func (s *SQLStore) ReplaceAll(ctx context.Context, seats []Seat) error {
	return s.inTx(ctx, seats, func(tx *sql.Tx) (int, error) {
		_, err := tx.ExecContext(ctx, `DELETE FROM constituencies`)
		return 0, err
	})
}

func (s *SQLStore) inTx(ctx context.Context, seats []Seat, prepare func(*sql.Tx) (int, error)) (err error) {
	for _, st := range seats {
		if err := st.Validate(); err != nil {
			return err
		}
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	base, err := prepare(tx)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO constituencies (`+seatColumns+`,position)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, st := range seats {
		b := st.Baseline
		if _, err = stmt.ExecContext(ctx, st.ID, st.Name, string(st.Tier), st.Category,
			b.MCCDays, b.CostLakhs, b.StaffDeployments, b.VoterTurnout, base+i+1); err != nil {
			return fmt.Errorf("insert %s/%s: %w", st.Tier, st.Name, err)
		}
	}
	return tx.Commit()
}
