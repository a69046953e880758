package tiervalues

import (
	"slices"
	"strings"
)

// Pre-sorted tier list, lowest first.
var tierNames = []string{"IRON", "BRONZE", "SILVER", "GOLD", "PLATINUM", "EMERALD", "DIAMOND", "MASTER", "GRANDMASTER", "CHALLENGER"}

// DefaultTier is the mid tier used when none, or an unknown one, is selected.
const DefaultTier = "GOLD"

// TierNames returns a copy of the ordered tier list.
func TierNames() []string {
	return slices.Clone(tierNames)
}

// NormalizeTier converts a user provided tier into its canonical form.
// Returns false when the tier doesn't exist.
func NormalizeTier(tier string) (string, bool) {
	tier = strings.ToUpper(strings.TrimSpace(tier))
	if !slices.Contains(tierNames, tier) {
		return "", false
	}
	return tier, true
}

// TierIndex returns the position of the tier in the ladder, -1 if unknown.
func TierIndex(tier string) int {
	normalized, ok := NormalizeTier(tier)
	if !ok {
		return -1
	}
	return slices.Index(tierNames, normalized)
}

// DisplayName returns the tier formatted for display, "GOLD" becomes "Gold".
func DisplayName(tier string) string {
	normalized, ok := NormalizeTier(tier)
	if !ok {
		return ""
	}
	return normalized[:1] + strings.ToLower(normalized[1:])
}
