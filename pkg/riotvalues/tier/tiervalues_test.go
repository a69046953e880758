package tiervalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		ok       bool
	}{
		{name: "display case", input: "Gold", expected: "GOLD", ok: true},
		{name: "padded lowercase", input: "  diamond ", expected: "DIAMOND", ok: true},
		{name: "unknown", input: "wood", ok: false},
		{name: "empty", input: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := NormalizeTier(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestTierOrder(t *testing.T) {
	names := TierNames()
	for i := 0; i < len(names)-1; i++ {
		assert.Less(t, TierIndex(names[i]), TierIndex(names[i+1]))
	}
	assert.Equal(t, -1, TierIndex("wood"))
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Gold", DisplayName("GOLD"))
	assert.Equal(t, "Grandmaster", DisplayName("grandmaster"))
	assert.Equal(t, "", DisplayName("wood"))
}

func TestTierNamesIsACopy(t *testing.T) {
	names := TierNames()
	names[0] = "CHANGED"
	assert.Equal(t, "IRON", TierNames()[0])
}
