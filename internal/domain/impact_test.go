package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMass(t *testing.T) {
	t.Run("sphere volume times density", func(t *testing.T) {
		// 10 m diameter iron impactor.
		mass, err := ComputeMass(10, 7870)
		require.NoError(t, err)

		expectedVolume := (4.0 / 3.0) * math.Pi * 125.0
		assert.InEpsilon(t, expectedVolume*7870, mass, 1e-12)
	})

	t.Run("cube law: doubling diameter gives 8x mass", func(t *testing.T) {
		m1, err := ComputeMass(50, 3300)
		require.NoError(t, err)
		m2, err := ComputeMass(100, 3300)
		require.NoError(t, err)

		assert.InEpsilon(t, 8*m1, m2, 1e-12)
	})

	t.Run("monotonic in density", func(t *testing.T) {
		m1, err := ComputeMass(50, 917)
		require.NoError(t, err)
		m2, err := ComputeMass(50, 8000)
		require.NoError(t, err)

		assert.Greater(t, m2, m1)
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			diameter float64
			density  float64
			param    string
		}{
			{"zero diameter", 0, 3300, "diameter"},
			{"negative diameter", -50, 3300, "diameter"},
			{"zero density", 50, 0, "density"},
			{"negative density", 50, -3300, "density"},
		} {
			t.Run(tc.name, func(t *testing.T) {
				_, err := ComputeMass(tc.diameter, tc.density)
				var invalid *InvalidInputError
				require.ErrorAs(t, err, &invalid)
				assert.Equal(t, tc.param, invalid.Param)
				assert.Contains(t, err.Error(), "must be positive")
			})
		}
	})
}

func TestComputeKineticEnergy(t *testing.T) {
	t.Run("half m v squared", func(t *testing.T) {
		energy, err := ComputeKineticEnergy(1000, 20000)
		require.NoError(t, err)
		assert.Equal(t, 2e11, energy)
	})

	t.Run("square law: doubling velocity exactly quadruples energy", func(t *testing.T) {
		e1, err := ComputeKineticEnergy(1000, 15000)
		require.NoError(t, err)
		e2, err := ComputeKineticEnergy(1000, 30000)
		require.NoError(t, err)

		// Must hold exactly, not approximately.
		assert.Equal(t, 4*e1, e2)
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		_, err := ComputeKineticEnergy(0, 20000)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "mass", invalid.Param)

		_, err = ComputeKineticEnergy(1000, -1)
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "velocity", invalid.Param)
		assert.Contains(t, err.Error(), "velocity must be positive")
	})
}

func TestToTNTKilotons(t *testing.T) {
	t.Run("hiroshima is about 15 kt", func(t *testing.T) {
		assert.InDelta(t, 15, ToTNTKilotons(6.276e13), 0.01)
	})

	t.Run("linear in energy", func(t *testing.T) {
		assert.Equal(t, 2*ToTNTKilotons(1e15), ToTNTKilotons(2e15))
	})
}

func TestEstimateCraterDiameter(t *testing.T) {
	t.Run("strictly increasing in energy", func(t *testing.T) {
		prev := 0.0
		for _, energy := range []float64{1e12, 1e14, 1e16, 1e18, 1e20} {
			d, err := EstimateCraterDiameter(energy, 3300, 2500)
			require.NoError(t, err)
			assert.Greater(t, d, prev)
			prev = d
		}
	})

	t.Run("sub-linear: 8x energy less than doubles", func(t *testing.T) {
		d1, err := EstimateCraterDiameter(1e16, 3300, 2500)
		require.NoError(t, err)
		d2, err := EstimateCraterDiameter(8e16, 3300, 2500)
		require.NoError(t, err)

		assert.Less(t, d2, 8*d1)
		// 8^(1/3.4) ≈ 1.84
		assert.InDelta(t, 1.843, d2/d1, 0.01)
	})

	t.Run("denser impactor digs a larger crater", func(t *testing.T) {
		stone, err := EstimateCraterDiameter(1e16, 3300, 2500)
		require.NoError(t, err)
		iron, err := EstimateCraterDiameter(1e16, 7870, 2500)
		require.NoError(t, err)

		assert.Greater(t, iron, stone)
	})

	t.Run("chicxulub-scale energy gives ~180 km crater", func(t *testing.T) {
		// 10 km stony impactor at 20 km/s.
		mass, err := ComputeMass(10_000, 3300)
		require.NoError(t, err)
		energy, err := ComputeKineticEnergy(mass, 20_000)
		require.NoError(t, err)

		d, err := EstimateCraterDiameter(energy, 3300, 2500)
		require.NoError(t, err)
		assert.InDelta(t, 180_000, d, 20_000)
	})

	t.Run("rejects non-positive inputs", func(t *testing.T) {
		var invalid *InvalidInputError

		_, err := EstimateCraterDiameter(0, 3300, 2500)
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "energy", invalid.Param)

		_, err = EstimateCraterDiameter(1e16, -1, 2500)
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "impactor density", invalid.Param)

		_, err = EstimateCraterDiameter(1e16, 3300, 0)
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "target density", invalid.Param)
	})
}

func TestEstimateCraterDepth(t *testing.T) {
	assert.Equal(t, 240.0, EstimateCraterDepth(1200))
}

func TestSimulate(t *testing.T) {
	t.Run("tunguska-class scenario", func(t *testing.T) {
		// 50 m stony impactor at 15 km/s: a few megatons, total
		// destruction out to several kilometers.
		result, err := Simulate(ImpactParameters{
			DiameterM:   50,
			VelocityMps: 15_000,
			Material:    MaterialStone,
		})
		require.NoError(t, err)

		assert.Greater(t, result.TNTKilotons, 1000.0)
		assert.Less(t, result.TNTKilotons, 20_000.0)

		var total float64
		for _, z := range result.Zones {
			if z.Label == ZoneTotalDestruction {
				total = z.RadiusKm
			}
		}
		assert.Greater(t, total, 2.0)
		assert.Less(t, total, 10.0)
	})

	t.Run("chicxulub-class scenario", func(t *testing.T) {
		// 10 km stony impactor at 20 km/s: tens of billions of kilotons,
		// classified nearest to Chicxulub.
		result, err := Simulate(ImpactParameters{
			DiameterM:   10_000,
			VelocityMps: 20_000,
			Material:    MaterialStone,
		})
		require.NoError(t, err)

		assert.Greater(t, result.TNTKilotons, 1e10)
		assert.Equal(t, "Chicxulub impact", result.Comparison.Nearest.Name)
	})

	t.Run("energy scales exactly with density ratio", func(t *testing.T) {
		ice, err := Simulate(ImpactParameters{
			DiameterM:   100,
			VelocityMps: 20_000,
			Material:    MaterialIce,
		})
		require.NoError(t, err)
		nickelIron, err := Simulate(ImpactParameters{
			DiameterM:   100,
			VelocityMps: 20_000,
			Material:    MaterialNickelIron,
		})
		require.NoError(t, err)

		assert.InEpsilon(t, 8000.0/917.0, nickelIron.KineticEnergyJ/ice.KineticEnergyJ, 1e-9)
		assert.InEpsilon(t, 8000.0/917.0, nickelIron.TNTKilotons/ice.TNTKilotons, 1e-9)
	})

	t.Run("density ordering carries through mass, energy, and yield", func(t *testing.T) {
		order := []Material{MaterialIce, MaterialStone, MaterialIron, MaterialNickelIron}
		results := make([]ImpactResult, len(order))
		for i, m := range order {
			r, err := Simulate(ImpactParameters{DiameterM: 200, VelocityMps: 17_000, Material: m})
			require.NoError(t, err)
			results[i] = r
		}
		for i := 1; i < len(results); i++ {
			assert.Greater(t, results[i].MassKg, results[i-1].MassKg)
			assert.Greater(t, results[i].KineticEnergyJ, results[i-1].KineticEnergyJ)
			assert.Greater(t, results[i].TNTKilotons, results[i-1].TNTKilotons)
		}
	})

	t.Run("surface defaults to land", func(t *testing.T) {
		result, err := Simulate(ImpactParameters{DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone})
		require.NoError(t, err)
		assert.Equal(t, SurfaceLand, result.Parameters.Surface)
	})

	t.Run("ocean target enlarges the crater", func(t *testing.T) {
		land, err := Simulate(ImpactParameters{
			DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone, Surface: SurfaceLand,
		})
		require.NoError(t, err)
		ocean, err := Simulate(ImpactParameters{
			DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone, Surface: SurfaceOcean,
		})
		require.NoError(t, err)

		// Same energy, lower target density, bigger excavation.
		assert.Equal(t, land.KineticEnergyJ, ocean.KineticEnergyJ)
		assert.Greater(t, ocean.CraterDiameterM, land.CraterDiameterM)
	})

	t.Run("unknown material is an error, never a default", func(t *testing.T) {
		_, err := Simulate(ImpactParameters{DiameterM: 50, VelocityMps: 15_000, Material: "basalt"})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "material", invalid.Param)
		assert.Contains(t, err.Error(), "basalt")
	})

	t.Run("unknown surface is an error", func(t *testing.T) {
		_, err := Simulate(ImpactParameters{
			DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone, Surface: "swamp",
		})
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "target surface", invalid.Param)
	})

	t.Run("invalid physical inputs surface from the pipeline", func(t *testing.T) {
		var invalid *InvalidInputError

		_, err := Simulate(ImpactParameters{DiameterM: 0, VelocityMps: 15_000, Material: MaterialStone})
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "diameter", invalid.Param)

		_, err = Simulate(ImpactParameters{DiameterM: 50, VelocityMps: -1, Material: MaterialStone})
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "velocity", invalid.Param)
	})

	t.Run("city label passes through untouched", func(t *testing.T) {
		withCity, err := Simulate(ImpactParameters{
			DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone, City: "Tokyo",
		})
		require.NoError(t, err)
		without, err := Simulate(ImpactParameters{
			DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone,
		})
		require.NoError(t, err)

		assert.Equal(t, "Tokyo", withCity.Parameters.City)
		assert.Equal(t, without.KineticEnergyJ, withCity.KineticEnergyJ)
	})

	t.Run("report timestamp comes from the clock", func(t *testing.T) {
		frozen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		SetClock(clockwork.NewFakeClockAt(frozen))
		defer SetClock(nil)

		result, err := Simulate(ImpactParameters{DiameterM: 50, VelocityMps: 15_000, Material: MaterialStone})
		require.NoError(t, err)
		assert.Equal(t, frozen, result.GeneratedAt)
	})
}

func TestInvalidInputErrorUnwrapping(t *testing.T) {
	_, err := ComputeMass(-1, 3300)
	require.Error(t, err)

	var invalid *InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}
