package rules

import (
	"fmt"

	"github.com/nirvachan/onoe-sim/internal/seat"
)

// State is the Vidhan Sabha table. Categories are free text and may carry
// several keywords, so predicates are substring checks.
var State = Table{
	Name:    "state",
	Default: Params{BaseCost: 40, BaseTurnout: 60, BaseMCC: 900},
	Rules: []Rule{
		{Name: "rural", Match: Contains("Rural"), Params: Params{35, 66, 950}},
		{Name: "affluent", Match: Contains("Posh", "VVIP"), Params: Params{55, 52, 880}},
		{Name: "commercial", Match: Contains("Commercial"), Params: Params{50, 58, 900}},
		{Name: "dense", Match: Contains("High-Density", "Congested"), Params: Params{42, 64, 920}},
		{Name: "planned", Match: Contains("Planned"), Params: Params{45, 59, 900}},
	},
}

// Municipal is the MCD table. Zone categories are fixed labels and match
// whole, so "Rural-Urban" stays on the default.
var Municipal = Table{
	Name:    "municipal",
	Default: Params{BaseCost: 15, BaseTurnout: 58, BaseMCC: 600},
	Rules: []Rule{
		{Name: "rural", Match: Equals("Rural"), Params: Params{12, 68, 650}},
		{Name: "affluent", Match: Equals("Posh"), Params: Params{22, 48, 580}},
		{Name: "commercial", Match: Equals("Commercial"), Params: Params{20, 55, 600}},
		{Name: "dense", Match: Equals("Congested"), Params: Params{16, 62, 610}},
		{Name: "planned", Match: Equals("Planned"), Params: Params{18, 56, 600}},
	},
}

// National has only a default. Lok Sabha seats carry explicit parameters in
// their roster; the table lets every tier resolve the same way.
var National = Table{
	Name:    "national",
	Default: Params{BaseCost: 95, BaseTurnout: 59, BaseMCC: 1300},
}

// ForTier returns the table used for tier.
func ForTier(t seat.Tier) (Table, error) {
	switch t {
	case seat.TierNational:
		return National, nil
	case seat.TierState:
		return State, nil
	case seat.TierMunicipal:
		return Municipal, nil
	}
	return Table{}, fmt.Errorf("%w: %q", seat.ErrUnknownTier, t)
}
