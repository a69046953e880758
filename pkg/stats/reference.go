package stats

import (
	tiervalues "winalyze/pkg/riotvalues/tier"
)

// RankReference holds the expected performance of an average player in a tier.
type RankReference struct {
	Tier              string  `json:"tier"`
	KDA               float64 `json:"kda"`
	CSPerMin          float64 `json:"csPerMin"`
	VisionPerMin      float64 `json:"visionPerMin"`
	ObjectivesPerGame float64 `json:"objectivesPerGame"`
}

// Values returns the quadruple in radar axis order.
func (r RankReference) Values() [4]float64 {
	return [4]float64{r.KDA, r.CSPerMin, r.VisionPerMin, r.ObjectivesPerGame}
}

// Built-in reference table, one entry per tier.
var defaultReferences = map[string]RankReference{
	"IRON":        {Tier: "IRON", KDA: 1.8, CSPerMin: 4.5, VisionPerMin: 0.6, ObjectivesPerGame: 0.3},
	"BRONZE":      {Tier: "BRONZE", KDA: 2.0, CSPerMin: 5.0, VisionPerMin: 0.7, ObjectivesPerGame: 0.4},
	"SILVER":      {Tier: "SILVER", KDA: 2.3, CSPerMin: 5.5, VisionPerMin: 0.8, ObjectivesPerGame: 0.5},
	"GOLD":        {Tier: "GOLD", KDA: 2.6, CSPerMin: 6.0, VisionPerMin: 0.9, ObjectivesPerGame: 0.6},
	"PLATINUM":    {Tier: "PLATINUM", KDA: 2.9, CSPerMin: 6.5, VisionPerMin: 1.0, ObjectivesPerGame: 0.7},
	"EMERALD":     {Tier: "EMERALD", KDA: 3.1, CSPerMin: 6.8, VisionPerMin: 1.1, ObjectivesPerGame: 0.8},
	"DIAMOND":     {Tier: "DIAMOND", KDA: 3.3, CSPerMin: 7.2, VisionPerMin: 1.2, ObjectivesPerGame: 0.9},
	"MASTER":      {Tier: "MASTER", KDA: 3.6, CSPerMin: 7.6, VisionPerMin: 1.3, ObjectivesPerGame: 1.0},
	"GRANDMASTER": {Tier: "GRANDMASTER", KDA: 3.8, CSPerMin: 7.9, VisionPerMin: 1.4, ObjectivesPerGame: 1.1},
	"CHALLENGER":  {Tier: "CHALLENGER", KDA: 4.0, CSPerMin: 8.2, VisionPerMin: 1.5, ObjectivesPerGame: 1.2},
}

// DefaultReferences returns the built-in table ordered from IRON to CHALLENGER.
func DefaultReferences() []RankReference {
	names := tiervalues.TierNames()
	references := make([]RankReference, 0, len(names))
	for _, name := range names {
		references = append(references, defaultReferences[name])
	}
	return references
}

// LookupReference returns the built-in reference for a tier.
func LookupReference(tier string) (RankReference, bool) {
	normalized, ok := tiervalues.NormalizeTier(tier)
	if !ok {
		return RankReference{}, false
	}
	reference, ok := defaultReferences[normalized]
	return reference, ok
}

// ReferenceOrDefault returns the built-in reference for a tier, GOLD when the tier is unknown or empty.
func ReferenceOrDefault(tier string) RankReference {
	if reference, ok := LookupReference(tier); ok {
		return reference
	}
	return defaultReferences[tiervalues.DefaultTier]
}
