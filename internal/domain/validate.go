package domain

// ValidateTables checks the static material, surface, zone, and
// reference-event tables for internal consistency. Call once at startup;
// any error is a *ConfigurationError and should be treated as fatal.
func ValidateTables() error {
	if len(materials) == 0 {
		return &ConfigurationError{Table: "material", Reason: "empty"}
	}
	for m, props := range materials {
		if props.Density <= 0 {
			return &ConfigurationError{Table: "material", Reason: "non-positive density for " + string(m)}
		}
	}

	if len(surfaceDensities) == 0 {
		return &ConfigurationError{Table: "surface", Reason: "empty"}
	}
	for s, density := range surfaceDensities {
		if density <= 0 {
			return &ConfigurationError{Table: "surface", Reason: "non-positive density for " + string(s)}
		}
	}

	if len(zoneCoefficients) == 0 {
		return &ConfigurationError{Table: "zone", Reason: "empty"}
	}
	for i, zc := range zoneCoefficients {
		if zc.kmPerCbrtMt <= 0 {
			return &ConfigurationError{Table: "zone", Reason: "non-positive coefficient for " + string(zc.label)}
		}
		if i > 0 && zc.kmPerCbrtMt <= zoneCoefficients[i-1].kmPerCbrtMt {
			return &ConfigurationError{Table: "zone", Reason: "coefficients not strictly increasing at " + string(zc.label)}
		}
	}

	if len(referenceEvents) == 0 {
		return &ConfigurationError{Table: "reference event", Reason: "empty"}
	}
	for i, ev := range referenceEvents {
		if ev.TNTKilotons <= 0 {
			return &ConfigurationError{Table: "reference event", Reason: "non-positive yield for " + ev.Name}
		}
		if i > 0 && ev.TNTKilotons <= referenceEvents[i-1].TNTKilotons {
			return &ConfigurationError{Table: "reference event", Reason: "yields not ascending at " + ev.Name}
		}
	}

	return nil
}
