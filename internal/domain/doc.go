// Package domain estimates the physical effects of an asteroid or comet
// impact. Every operation is a pure, stateless function over immutable
// records; the only shared state is the read-only material, surface, zone,
// and reference-event tables built at process start.
//
// # Units
//
// Inputs: diameter in meters, velocity in m/s, densities in kg/m³.
// Outputs: mass in kg, energy in joules, yield in kilotons of TNT
// (1 kt = 4.184e12 J), crater dimensions in meters, zone radii in km.
//
// # Formulas
//
// The impactor is treated as a sphere:
//
//	mass   = (4/3)·π·(d/2)³ · ρ
//	energy = ½·m·v²
//
// Crater diameter follows an empirical power law, sub-linear in energy
// and scaled by the impactor/target density ratio:
//
//	D_m = 0.02 · (ρi/ρt)^(1/3) · E^(1/3.4)
//
// The constants are a curve fit against well-studied events: a 10 km
// stony impactor at 20 km/s (≈3.5e23 J) yields a ~180 km crater,
// matching Chicxulub, and a ~13 Mt event yields a Barringer-class crater
// of ~1.2 km. Depth is estimated as diameter/5, the typical ratio for
// simple craters.
//
// Destruction-zone radii use standard blast-yield scaling, radius
// proportional to the cube root of yield:
//
//	r_km = k · Mt^(1/3)
//
// with k = 0.5 (fireball), 2.5 (total destruction), 5 (severe damage),
// 10 (moderate damage), 20 (light damage). The thresholds for the outer
// four rings approximate the 20, 5, 2, and 1 psi overpressure contours
// of nuclear-weapons-effects literature.
//
// # Simplifications
//
// No atmospheric entry or fragmentation, no impact-angle dependence, no
// seismic or tsunami modeling. This is a deliberately simplified
// educational estimator, not a scientific simulation.
//
// # Error taxonomy
//
// Non-positive diameter, velocity, density, or energy, and unknown
// material or surface keys, produce *InvalidInputError naming the
// offending parameter. Inputs are never clamped or defaulted. Malformed
// static tables produce *ConfigurationError from [ValidateTables].
package domain
