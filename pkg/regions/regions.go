package regions

import (
	"fmt"
	"strings"
	"winalyze/pkg/messages"
)

// Simple package containing the region list.
// Create the types for clarity.
type (
	MainRegion string
	SubRegion  string
)

// List of regions.
var RegionList = map[MainRegion][]SubRegion{
	"AMERICAS": {"BR1", "LA1", "LA2", "NA1"},
	"EUROPE":   {"EUN1", "EUW1", "TR1", "ME1", "RU"},
	"ASIA":     {"KR", "JP1"},
	"SEA":      {"OC1", "PH2", "SG2", "TH2", "TW2", "VN2"},
}

// Reverse lookup, built once.
var subToMain = func() map[SubRegion]MainRegion {
	lookup := make(map[SubRegion]MainRegion)
	for main, subs := range RegionList {
		for _, sub := range subs {
			lookup[sub] = main
		}
	}
	return lookup
}()

// ParseSubRegion normalizes a platform code like "euw1" into a known sub region.
func ParseSubRegion(region string) (SubRegion, error) {
	sub := SubRegion(strings.ToUpper(strings.TrimSpace(region)))
	if _, ok := subToMain[sub]; !ok {
		return "", fmt.Errorf(messages.UnknownRegion, region)
	}
	return sub, nil
}

// GetMainRegion returns the routing region that owns the given sub region.
func GetMainRegion(sub SubRegion) (MainRegion, error) {
	main, ok := subToMain[sub]
	if !ok {
		return "", fmt.Errorf(messages.UnknownRegion, sub)
	}
	return main, nil
}

// GetAccountRegion returns the route serving account-v1 for a main region.
// The account service has no SEA cluster, those players resolve through ASIA.
func GetAccountRegion(main MainRegion) MainRegion {
	if main == "SEA" {
		return "ASIA"
	}
	return main
}
