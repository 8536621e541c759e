package seat

import (
	"errors"
	"fmt"
	"strings"
)

// Tier is the administrative level of an election. Values match the wire
// format used by the dashboard ("ls", "vs", "mcd").
type Tier string

const (
	TierNational  Tier = "ls"  // Lok Sabha
	TierState     Tier = "vs"  // Vidhan Sabha
	TierMunicipal Tier = "mcd" // MCD wards
)

// Tiers lists every tier in display order.
var Tiers = []Tier{TierNational, TierState, TierMunicipal}

var (
	ErrNotFound      = errors.New("seat not found")
	ErrInvalidRecord = errors.New("invalid seat record")
	ErrUnknownTier   = errors.New("unknown tier")
)

// ParseTier accepts the wire codes and the long tier names.
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ls", "national", "lok_sabha", "lok sabha":
		return TierNational, nil
	case "vs", "state", "vidhan_sabha", "vidhan sabha":
		return TierState, nil
	case "mcd", "municipal":
		return TierMunicipal, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

func (t Tier) Valid() bool {
	return t == TierNational || t == TierState || t == TierMunicipal
}

// Baseline is the per-seat snapshot the simulator works from.
type Baseline struct {
	MCCDays          int     `json:"mcc_days"`
	CostLakhs        float64 `json:"cost_lakhs"`
	StaffDeployments int     `json:"staff_deployments"`
	VoterTurnout     float64 `json:"voter_turnout"`
}

type Seat struct {
	ID       string   `json:"_id"`
	Name     string   `json:"name"`
	Tier     Tier     `json:"level"`
	Category string   `json:"type"`
	Baseline Baseline `json:"baseline"`
}

// Validate checks the record-level invariants. Name uniqueness is a
// property of a batch and is checked by the synthesizer and the stores.
func (s Seat) Validate() error {
	switch {
	case strings.TrimSpace(s.Name) == "":
		return fmt.Errorf("%w: empty name", ErrInvalidRecord)
	case !s.Tier.Valid():
		return fmt.Errorf("%w: %s: tier %q", ErrInvalidRecord, s.Name, s.Tier)
	case strings.TrimSpace(s.Category) == "":
		return fmt.Errorf("%w: %s: empty category", ErrInvalidRecord, s.Name)
	case s.Baseline.MCCDays < 0, s.Baseline.CostLakhs < 0, s.Baseline.StaffDeployments < 0:
		return fmt.Errorf("%w: %s: negative metric", ErrInvalidRecord, s.Name)
	case s.Baseline.VoterTurnout < 0 || s.Baseline.VoterTurnout > 100:
		return fmt.Errorf("%w: %s: turnout %.1f out of range", ErrInvalidRecord, s.Name, s.Baseline.VoterTurnout)
	}
	return nil
}
