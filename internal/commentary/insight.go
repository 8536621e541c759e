package commentary

import "github.com/nirvachan/onoe-sim/internal/seat"

// TierInsight is the canned per-tier analysis shown next to a simulation
// while (or instead of) waiting for the LLM.
type TierInsight struct {
	Focus        string `json:"focus"`
	BaseAnalysis string `json:"baseAnalysis"`
	Metric       string `json:"metric"`
}

var tierInsights = map[seat.Tier]TierInsight{
	seat.TierMunicipal: {
		Focus:        "Grassroots Governance",
		BaseAnalysis: "Synchronization is projected to reduce voter fatigue in municipal wards.",
		Metric:       "Turnout Boost: +12-15%",
	},
	seat.TierState: {
		Focus:        "State Stability",
		BaseAnalysis: "Mid-term policy paralysis reduced. Governance continuity improves significantly.",
		Metric:       "Policy Uptime: +20%",
	},
	seat.TierNational: {
		Focus:        "National Policy",
		BaseAnalysis: "Unified election cycle minimizes Model Code of Conduct interruptions.",
		Metric:       "Cost Efficiency: +30%",
	},
}

var generalInsight = TierInsight{
	Focus:        "General Analysis",
	BaseAnalysis: "Data processing for this region is stable.",
	Metric:       "Stability: Normal",
}

// Insight returns the canned insight for tier, or a general one.
func Insight(tier seat.Tier) TierInsight {
	if in, ok := tierInsights[tier]; ok {
		return in
	}
	return generalInsight
}
