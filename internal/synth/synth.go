// Package synth builds the synthetic constituency dataset.
package synth

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nirvachan/onoe-sim/internal/rules"
	"github.com/nirvachan/onoe-sim/internal/seat"
)

var (
	ErrInvalidInput  = errors.New("invalid synthesis input")
	ErrDuplicateName = errors.New("duplicate seat name")
)

// Draw windows around the base parameters. The cost window is skewed
// upwards on purpose.
const (
	costBelow     = 3.0
	costAbove     = 5.0
	turnoutSpread = 4.0
	mccSpread     = 20.0
	minDeploy     = 8.0
	maxDeploy     = 12.0
)

// Synthesizer draws every metric and every seat id from one source, so a
// seeded synthesizer reproduces the same dataset.
type Synthesizer struct {
	src *rand.ChaCha8
	rng *rand.Rand
}

func New(src *rand.ChaCha8) *Synthesizer {
	return &Synthesizer{src: src, rng: rand.New(src)}
}

// NewSeeded returns a synthesizer for seed. Seed 0 picks a time-based seed.
func NewSeeded(seed uint64) *Synthesizer {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var key [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(key[i*8:], seed+uint64(i)*0x9e3779b97f4a7c15)
	}
	return New(rand.NewChaCha8(key))
}

// uniform draws from [lo, hi).
func (s *Synthesizer) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// Synthesize produces one seat around p. Draws happen in a fixed order:
// cost, turnout, MCC days, deployments. Bases whose windows could leave the
// valid ranges (turnout within 4 of 0 or 100, cost under 3, MCC under 20)
// fail with ErrInvalidInput rather than yield an out-of-range seat.
func (s *Synthesizer) Synthesize(name string, tier seat.Tier, category string, p rules.Params) (seat.Seat, error) {
	if err := checkInput(name, tier, category, p); err != nil {
		return seat.Seat{}, err
	}
	id, err := uuid.NewRandomFromReader(s.src)
	if err != nil {
		return seat.Seat{}, fmt.Errorf("seat id: %w", err)
	}

	cost := round(s.uniform(p.BaseCost-costBelow, p.BaseCost+costAbove), 2)
	turnout := round(s.uniform(p.BaseTurnout-turnoutSpread, p.BaseTurnout+turnoutSpread), 1)
	mcc := int(math.Floor(s.uniform(p.BaseMCC-mccSpread, p.BaseMCC+mccSpread)))
	deploy := int(math.Floor(s.uniform(minDeploy, maxDeploy)))

	return seat.Seat{
		ID:       id.String(),
		Name:     name,
		Tier:     tier,
		Category: category,
		Baseline: seat.Baseline{
			MCCDays:          mcc,
			CostLakhs:        cost,
			StaffDeployments: deploy,
			VoterTurnout:     turnout,
		},
	}, nil
}

// checkInput rejects base parameters whose draw windows would leave the
// valid metric ranges. The draws themselves are never clamped.
func checkInput(name string, tier seat.Tier, category string, p rules.Params) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidInput)
	case !tier.Valid():
		return fmt.Errorf("%w: %s: tier %q", ErrInvalidInput, name, tier)
	case strings.TrimSpace(category) == "":
		return fmt.Errorf("%w: %s: empty category", ErrInvalidInput, name)
	case !finite(p.BaseCost) || !finite(p.BaseTurnout) || !finite(p.BaseMCC):
		return fmt.Errorf("%w: %s: non-finite base parameters", ErrInvalidInput, name)
	case p.BaseCost-costBelow < 0:
		return fmt.Errorf("%w: %s: base cost %.2f below %.0f", ErrInvalidInput, name, p.BaseCost, costBelow)
	case p.BaseTurnout-turnoutSpread < 0 || p.BaseTurnout+turnoutSpread > 100:
		return fmt.Errorf("%w: %s: base turnout %.1f", ErrInvalidInput, name, p.BaseTurnout)
	case p.BaseMCC-mccSpread < 0:
		return fmt.Errorf("%w: %s: base mcc %.0f", ErrInvalidInput, name, p.BaseMCC)
	}
	return nil
}

func round(x float64, places int32) float64 {
	return decimal.NewFromFloat(x).Round(places).InexactFloat64()
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
