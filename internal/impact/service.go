package impact

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/nirvachan/onoe-sim/internal/seat"
)

// Service resolves seats through the store before simulating.
type Service struct {
	store seat.Store
	log   *zap.Logger
}

func NewService(store seat.Store, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, log: log}
}

// SimulateByID returns the seat and its report, or seat.ErrNotFound.
func (s *Service) SimulateByID(ctx context.Context, id string) (seat.Seat, Report, error) {
	if strings.TrimSpace(id) == "" {
		return seat.Seat{}, Report{}, seat.ErrNotFound
	}
	st, err := s.store.FindByID(ctx, id)
	if err != nil {
		return seat.Seat{}, Report{}, fmt.Errorf("simulate %s: %w", id, err)
	}
	r := Simulate(st)
	s.log.Debug("simulated seat",
		zap.String("id", st.ID),
		zap.String("tier", string(st.Tier)),
		zap.Int("mcc_onoe", r.Gov.MCC.ONOE),
		zap.Float64("cost_onoe", r.Fin.Cost.ONOE))
	return st, r, nil
}
