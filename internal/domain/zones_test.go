package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeDestructionZones(t *testing.T) {
	t.Run("ordered smallest first with all five rings", func(t *testing.T) {
		zones, err := ComputeDestructionZones(5800)
		require.NoError(t, err)
		require.Len(t, zones, 5)

		assert.Equal(t, ZoneFireball, zones[0].Label)
		assert.Equal(t, ZoneTotalDestruction, zones[1].Label)
		assert.Equal(t, ZoneSevereDamage, zones[2].Label)
		assert.Equal(t, ZoneModerateDamage, zones[3].Label)
		assert.Equal(t, ZoneLightDamage, zones[4].Label)

		for i := 1; i < len(zones); i++ {
			assert.Greater(t, zones[i].RadiusKm, zones[i-1].RadiusKm)
		}
	})

	t.Run("strict ordering holds even for tiny yields", func(t *testing.T) {
		zones, err := ComputeDestructionZones(1e-9)
		require.NoError(t, err)
		for i := 1; i < len(zones); i++ {
			assert.Greater(t, zones[i].RadiusKm, zones[i-1].RadiusKm)
		}
	})

	t.Run("radius scales with cube root of yield", func(t *testing.T) {
		small, err := ComputeDestructionZones(1000)
		require.NoError(t, err)
		large, err := ComputeDestructionZones(8000)
		require.NoError(t, err)

		for i := range small {
			assert.InEpsilon(t, 2.0, large[i].RadiusKm/small[i].RadiusKm, 1e-12)
		}
	})

	t.Run("one megaton reference radii", func(t *testing.T) {
		zones, err := ComputeDestructionZones(1000)
		require.NoError(t, err)

		expected := map[ZoneLabel]float64{
			ZoneFireball:         0.5,
			ZoneTotalDestruction: 2.5,
			ZoneSevereDamage:     5.0,
			ZoneModerateDamage:   10.0,
			ZoneLightDamage:      20.0,
		}
		for _, z := range zones {
			assert.InDelta(t, expected[z.Label], z.RadiusKm, 1e-9)
		}
	})

	t.Run("rejects non-positive yield", func(t *testing.T) {
		for _, yield := range []float64{0, -1, math.Inf(-1)} {
			_, err := ComputeDestructionZones(yield)
			var invalid *InvalidInputError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, "yield", invalid.Param)
		}
	})
}

func TestZoneRank(t *testing.T) {
	assert.Equal(t, 0, ZoneRank(ZoneFireball))
	assert.Equal(t, 4, ZoneRank(ZoneLightDamage))
	assert.Equal(t, -1, ZoneRank("shockwave"))

	// Rank order matches radius order for any positive yield.
	zones, err := ComputeDestructionZones(42)
	require.NoError(t, err)
	for i, z := range zones {
		assert.Equal(t, i, ZoneRank(z.Label))
	}
}
