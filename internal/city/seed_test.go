package city

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Golden value: floor(1000 * (0.525*69.83 + 0.164*11.17)) = 38492.
func TestSeedGoldenValue(t *testing.T) {
	p := DefaultParams()
	require.EqualValues(t, 38492, p.Seed(0, 0))
}

// Negative dot products truncate toward zero, not toward minus infinity:
// 1000 * (0.525*69.83 + (-9.836)*11.17) = -73207.37.
func TestSeedTruncatesTowardZero(t *testing.T) {
	p := DefaultParams()
	require.EqualValues(t, -73207, p.Seed(0, -10))
}

func TestSeedDeterminism(t *testing.T) {
	p := DefaultParams()
	for lat := 0; lat < GridSize; lat++ {
		for depth := -50; depth <= 50; depth++ {
			require.Equal(t, p.Seed(lat, depth), p.Seed(lat, depth),
				"seed must be stable at (%d, %d)", lat, depth)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	p := DefaultParams()
	require.NoError(t, p.Validate())

	bad := DefaultParams()
	bad.HardSeed = [2]float64{0, 0}
	require.Error(t, bad.Validate())

	bad = DefaultParams()
	bad.WidthMax = bad.WidthMin - 0.1
	require.Error(t, bad.Validate())

	bad = DefaultParams()
	bad.WindowSize = 0.5 // step no longer fits the narrowest building
	require.Error(t, bad.Validate())
}
