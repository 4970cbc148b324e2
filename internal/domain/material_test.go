package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialDensity(t *testing.T) {
	tests := []struct {
		material Material
		density  float64
	}{
		{MaterialIron, 7870},
		{MaterialStone, 3300},
		{MaterialIce, 917},
		{MaterialNickelIron, 8000},
	}
	for _, tc := range tests {
		t.Run(string(tc.material), func(t *testing.T) {
			density, err := MaterialDensity(tc.material)
			require.NoError(t, err)
			assert.Equal(t, tc.density, density)
		})
	}

	t.Run("unknown material", func(t *testing.T) {
		_, err := MaterialDensity("basalt")
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "material", invalid.Param)
	})
}

func TestMaterials(t *testing.T) {
	all := Materials()
	require.Len(t, all, 4)

	// Sorted by identifier.
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Material, all[i].Material)
	}

	info, err := MaterialInfo(MaterialNickelIron)
	require.NoError(t, err)
	assert.Equal(t, "Nickel-Iron", info.Name)
	assert.NotEmpty(t, info.Description)
}

func TestSurfaceDensity(t *testing.T) {
	land, err := SurfaceDensity(SurfaceLand)
	require.NoError(t, err)
	ocean, err := SurfaceDensity(SurfaceOcean)
	require.NoError(t, err)
	ice, err := SurfaceDensity(SurfaceIce)
	require.NoError(t, err)

	assert.Greater(t, land, ocean)
	assert.Greater(t, ocean, ice)

	_, err = SurfaceDensity("swamp")
	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)

	assert.Len(t, Surfaces(), 3)
}
