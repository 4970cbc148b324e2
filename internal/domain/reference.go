package domain

import "math"

// ReferenceEvent is a historical impact or explosion used for intuitive
// magnitude comparison.
type ReferenceEvent struct {
	Name        string  `json:"name"`
	Year        int     `json:"year,omitempty"`
	TNTKilotons float64 `json:"tnt_equivalent_kt"`
}

// referenceEvents is the read-only comparison table, ordered by yield
// ascending. Yields for the natural events are the commonly cited
// estimates, not precise measurements.
var referenceEvents = []ReferenceEvent{
	{Name: "Hiroshima atomic bomb", Year: 1945, TNTKilotons: 15},
	{Name: "Chelyabinsk airburst", Year: 2013, TNTKilotons: 500},
	{Name: "Barringer Crater impact", TNTKilotons: 10_000},
	{Name: "Tunguska event", Year: 1908, TNTKilotons: 12_000},
	{Name: "Castle Bravo test", Year: 1954, TNTKilotons: 15_000},
	{Name: "Tsar Bomba test", Year: 1961, TNTKilotons: 50_000},
	{Name: "Eltanin ocean impact", TNTKilotons: 1e8},
	{Name: "Chicxulub impact", TNTKilotons: 1e11},
}

// Comparison places a yield relative to the reference-event table.
type Comparison struct {
	Nearest ReferenceEvent `json:"nearest"`
	// Ratio is yield / nearest event yield, e.g. 2.0 means twice the
	// nearest event.
	Ratio float64 `json:"ratio"`
}

// EventMultiple expresses a yield as a multiple of one reference event.
type EventMultiple struct {
	Event    ReferenceEvent `json:"event"`
	Multiple float64        `json:"multiple"`
}

// ReferenceEvents returns a copy of the comparison table, yield ascending.
func ReferenceEvents() []ReferenceEvent {
	out := make([]ReferenceEvent, len(referenceEvents))
	copy(out, referenceEvents)
	return out
}

// ClassifyAgainstHistory returns the reference event nearest to the given
// yield. Distance is measured in log space so that, say, 40 Mt matches
// Tsar Bomba even though the absolute kiloton difference from smaller
// events may be less. Ties go to the smaller event.
func ClassifyAgainstHistory(tntKilotons float64) (Comparison, error) {
	if tntKilotons <= 0 {
		return Comparison{}, invalidInput("yield", "must be positive", tntKilotons)
	}

	logYield := math.Log10(tntKilotons)

	best := referenceEvents[0]
	bestDist := math.Abs(logYield - math.Log10(best.TNTKilotons))
	for _, ev := range referenceEvents[1:] {
		dist := math.Abs(logYield - math.Log10(ev.TNTKilotons))
		if dist < bestDist {
			best = ev
			bestDist = dist
		}
	}

	return Comparison{Nearest: best, Ratio: tntKilotons / best.TNTKilotons}, nil
}

// EventMultiples returns the yield expressed as a multiple of every
// reference event it meaningfully clears (multiple >= 0.001), largest
// event last. Used by report rendering for the comparisons section.
func EventMultiples(tntKilotons float64) ([]EventMultiple, error) {
	if tntKilotons <= 0 {
		return nil, invalidInput("yield", "must be positive", tntKilotons)
	}

	var out []EventMultiple
	for _, ev := range referenceEvents {
		multiple := tntKilotons / ev.TNTKilotons
		if multiple >= 0.001 {
			out = append(out, EventMultiple{Event: ev, Multiple: multiple})
		}
	}
	return out, nil
}
