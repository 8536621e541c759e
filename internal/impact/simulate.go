// Package impact projects a seat's baseline under a synchronized cycle.
package impact

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/nirvachan/onoe-sim/internal/seat"
)

const (
	mccFactor        = 0.5  // MCC days roughly halve
	costFactor       = 0.65 // shared logistics save ~35%
	onoeDeployments  = 5    // one fixed cycle
	stabilityNation  = 60
	stabilityDefault = 45
	stabilityONOE    = 90
)

type IntDelta struct {
	Curr int `json:"curr"`
	ONOE int `json:"onoe"`
}

type FloatDelta struct {
	Curr float64 `json:"curr"`
	ONOE float64 `json:"onoe"`
}

type Governance struct {
	MCC IntDelta `json:"mcc"`
}

type Financial struct {
	Cost FloatDelta `json:"cost"`
}

type Administrative struct {
	Deployments IntDelta `json:"deployments"`
}

type Constitutional struct {
	Stability IntDelta `json:"stability"`
}

// Report is the before/after comparison for one seat.
type Report struct {
	Gov   Governance     `json:"gov"`
	Fin   Financial      `json:"fin"`
	Admin Administrative `json:"admin"`
	Const Constitutional `json:"const"`
}

// Simulate applies the fixed ONOE rules to s. It is pure.
func Simulate(s seat.Seat) Report {
	b := s.Baseline
	stability := stabilityDefault
	if s.Tier == seat.TierNational {
		stability = stabilityNation
	}
	return Report{
		Gov: Governance{MCC: IntDelta{
			Curr: b.MCCDays,
			ONOE: int(math.Round(float64(b.MCCDays) * mccFactor)),
		}},
		Fin: Financial{Cost: FloatDelta{
			Curr: b.CostLakhs,
			ONOE: decimal.NewFromFloat(b.CostLakhs * costFactor).Round(1).InexactFloat64(),
		}},
		Admin: Administrative{Deployments: IntDelta{
			Curr: b.StaffDeployments,
			ONOE: onoeDeployments,
		}},
		Const: Constitutional{Stability: IntDelta{
			Curr: stability,
			ONOE: stabilityONOE,
		}},
	}
}
