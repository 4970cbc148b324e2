package domain

import (
	"math"
	"time"
)

// Physical constants.
const (
	// KilotonTNTJoules is the energy released by one kiloton of TNT.
	KilotonTNTJoules = 4.184e12

	// craterScalingCoefficient and craterEnergyExponent parameterize the
	// empirical crater relation. Calibrated so a 10 km stony impactor at
	// 20 km/s excavates a ~180 km crater (Chicxulub) and a ~13 Mt event
	// produces a Barringer-class crater. See the package documentation.
	craterScalingCoefficient = 0.02
	craterEnergyExponent     = 1.0 / 3.4

	// craterDepthRatio is the typical final depth/diameter ratio for
	// simple craters.
	craterDepthRatio = 5.0
)

// ImpactParameters are the validated physical inputs to a simulation run.
// Surface defaults to land when empty; City is a report label only and has
// no effect on the physics.
type ImpactParameters struct {
	DiameterM   float64  `json:"diameter_m"`
	VelocityMps float64  `json:"velocity_mps"`
	Material    Material `json:"material"`
	Surface     Surface  `json:"surface,omitempty"`
	City        string   `json:"city,omitempty"`
}

// Zone is a single destruction ring around the impact point.
type Zone struct {
	Label    ZoneLabel `json:"label"`
	RadiusKm float64   `json:"radius_km"`
}

// ImpactResult is the complete report produced by Simulate. It is never
// mutated after creation.
type ImpactResult struct {
	Parameters ImpactParameters `json:"parameters"`

	DensityKgM3     float64 `json:"density_kg_m3"`
	MassKg          float64 `json:"mass_kg"`
	KineticEnergyJ  float64 `json:"kinetic_energy_joules"`
	TNTKilotons     float64 `json:"tnt_equivalent_kt"`
	CraterDiameterM float64 `json:"crater_diameter_m"`
	CraterDepthM    float64 `json:"crater_depth_m"`

	// Zones are ordered smallest radius first so consumers can render
	// them as concentric rings.
	Zones []Zone `json:"zones"`

	Comparison Comparison `json:"comparison"`

	GeneratedAt time.Time `json:"generated_at"`
}

// ComputeMass returns the mass in kg of a spherical impactor with the
// given diameter (m) and bulk density (kg/m³).
func ComputeMass(diameterM, densityKgM3 float64) (float64, error) {
	if diameterM <= 0 {
		return 0, invalidInput("diameter", "must be positive", diameterM)
	}
	if densityKgM3 <= 0 {
		return 0, invalidInput("density", "must be positive", densityKgM3)
	}
	radius := diameterM / 2
	volume := (4.0 / 3.0) * math.Pi * radius * radius * radius
	return volume * densityKgM3, nil
}

// ComputeKineticEnergy returns ½mv² in joules.
func ComputeKineticEnergy(massKg, velocityMps float64) (float64, error) {
	if massKg <= 0 {
		return 0, invalidInput("mass", "must be positive", massKg)
	}
	if velocityMps <= 0 {
		return 0, invalidInput("velocity", "must be positive", velocityMps)
	}
	return 0.5 * massKg * velocityMps * velocityMps, nil
}

// ToTNTKilotons converts an energy in joules to kilotons of TNT.
func ToTNTKilotons(energyJ float64) float64 {
	return energyJ / KilotonTNTJoules
}

// EstimateCraterDiameter returns the final crater diameter in meters for
// an impact of the given energy (J). The relation is a power law in
// energy, sub-linear so that doubling the energy less than doubles the
// crater, scaled by the cube root of the impactor/target density ratio.
func EstimateCraterDiameter(energyJ, impactorDensity, targetDensity float64) (float64, error) {
	if energyJ <= 0 {
		return 0, invalidInput("energy", "must be positive", energyJ)
	}
	if impactorDensity <= 0 {
		return 0, invalidInput("impactor density", "must be positive", impactorDensity)
	}
	if targetDensity <= 0 {
		return 0, invalidInput("target density", "must be positive", targetDensity)
	}
	densityTerm := math.Cbrt(impactorDensity / targetDensity)
	return craterScalingCoefficient * densityTerm * math.Pow(energyJ, craterEnergyExponent), nil
}

// EstimateCraterDepth returns the typical depth in meters for a crater of
// the given diameter.
func EstimateCraterDepth(craterDiameterM float64) float64 {
	return craterDiameterM / craterDepthRatio
}

// Simulate runs the full estimation pipeline for one set of parameters.
// It is a pure function of its inputs apart from the report timestamp.
func Simulate(p ImpactParameters) (ImpactResult, error) {
	if p.Surface == "" {
		p.Surface = SurfaceLand
	}

	impactorDensity, err := MaterialDensity(p.Material)
	if err != nil {
		return ImpactResult{}, err
	}
	targetDensity, err := SurfaceDensity(p.Surface)
	if err != nil {
		return ImpactResult{}, err
	}

	mass, err := ComputeMass(p.DiameterM, impactorDensity)
	if err != nil {
		return ImpactResult{}, err
	}
	energy, err := ComputeKineticEnergy(mass, p.VelocityMps)
	if err != nil {
		return ImpactResult{}, err
	}
	tnt := ToTNTKilotons(energy)

	crater, err := EstimateCraterDiameter(energy, impactorDensity, targetDensity)
	if err != nil {
		return ImpactResult{}, err
	}

	zones, err := ComputeDestructionZones(tnt)
	if err != nil {
		return ImpactResult{}, err
	}

	comparison, err := ClassifyAgainstHistory(tnt)
	if err != nil {
		return ImpactResult{}, err
	}

	return ImpactResult{
		Parameters:      p,
		DensityKgM3:     impactorDensity,
		MassKg:          mass,
		KineticEnergyJ:  energy,
		TNTKilotons:     tnt,
		CraterDiameterM: crater,
		CraterDepthM:    EstimateCraterDepth(crater),
		Zones:           zones,
		Comparison:      comparison,
		GeneratedAt:     clock.Now(),
	}, nil
}
