package domain

import "math"

// ZoneLabel names a destruction ring. Labels are ordered by severity;
// rank 0 (fireball) is always the innermost ring.
type ZoneLabel string

const (
	ZoneFireball         ZoneLabel = "fireball"
	ZoneTotalDestruction ZoneLabel = "total_destruction"
	ZoneSevereDamage     ZoneLabel = "severe_damage"
	ZoneModerateDamage   ZoneLabel = "moderate_damage"
	ZoneLightDamage      ZoneLabel = "light_damage"
)

// zoneCoefficients are km of radius per cube root of megaton, following
// standard blast-yield scaling (radius ∝ yield^(1/3)). The ladder is
// strictly increasing, so for any positive yield each ring is strictly
// larger than the one before it.
var zoneCoefficients = []struct {
	label       ZoneLabel
	kmPerCbrtMt float64
}{
	{ZoneFireball, 0.5},
	{ZoneTotalDestruction, 2.5},
	{ZoneSevereDamage, 5.0},
	{ZoneModerateDamage, 10.0},
	{ZoneLightDamage, 20.0},
}

// ComputeDestructionZones returns the named destruction rings for a yield
// in kilotons of TNT, ordered smallest radius first.
func ComputeDestructionZones(tntKilotons float64) ([]Zone, error) {
	if tntKilotons <= 0 {
		return nil, invalidInput("yield", "must be positive", tntKilotons)
	}

	megatons := tntKilotons / 1000.0
	cbrt := math.Cbrt(megatons)

	zones := make([]Zone, 0, len(zoneCoefficients))
	for _, zc := range zoneCoefficients {
		zones = append(zones, Zone{Label: zc.label, RadiusKm: zc.kmPerCbrtMt * cbrt})
	}
	return zones, nil
}

// ZoneRank returns the severity rank of a label, innermost first, or -1
// for an unknown label.
func ZoneRank(label ZoneLabel) int {
	for i, zc := range zoneCoefficients {
		if zc.label == label {
			return i
		}
	}
	return -1
}
