package domain

import "sort"

// Material identifies an impactor composition class.
type Material string

const (
	MaterialIron       Material = "iron"
	MaterialStone      Material = "stone"
	MaterialIce        Material = "ice"
	MaterialNickelIron Material = "nickel_iron"
)

// MaterialProperties describes a single impactor composition.
type MaterialProperties struct {
	Material    Material `json:"material"`
	Name        string   `json:"name"`
	Density     float64  `json:"density_kg_m3"`
	Description string   `json:"description"`
}

// materials is the read-only composition table. Densities are bulk values
// for the corresponding meteorite classes.
var materials = map[Material]MaterialProperties{
	MaterialIron: {
		Material:    MaterialIron,
		Name:        "Iron",
		Density:     7870,
		Description: "Dense metallic asteroid",
	},
	MaterialStone: {
		Material:    MaterialStone,
		Name:        "Stone",
		Density:     3300,
		Description: "Rocky asteroid",
	},
	MaterialIce: {
		Material:    MaterialIce,
		Name:        "Ice",
		Density:     917,
		Description: "Icy comet",
	},
	MaterialNickelIron: {
		Material:    MaterialNickelIron,
		Name:        "Nickel-Iron",
		Density:     8000,
		Description: "Dense metallic asteroid with nickel",
	},
}

// MaterialDensity returns the bulk density for a material in kg/m³.
// Unknown materials are an error, never silently defaulted.
func MaterialDensity(m Material) (float64, error) {
	props, ok := materials[m]
	if !ok {
		return 0, invalidInput("material", "must be a known composition", string(m))
	}
	return props.Density, nil
}

// MaterialInfo returns the full property record for a material.
func MaterialInfo(m Material) (MaterialProperties, error) {
	props, ok := materials[m]
	if !ok {
		return MaterialProperties{}, invalidInput("material", "must be a known composition", string(m))
	}
	return props, nil
}

// Materials returns all known compositions sorted by identifier.
func Materials() []MaterialProperties {
	out := make([]MaterialProperties, 0, len(materials))
	for _, props := range materials {
		out = append(out, props)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Material < out[j].Material })
	return out
}

// Surface identifies the target terrain at the impact site. It feeds the
// target-density term of the crater scaling relation; it has no effect on
// kinetic energy or blast radii.
type Surface string

const (
	SurfaceLand  Surface = "land"
	SurfaceOcean Surface = "ocean"
	SurfaceIce   Surface = "ice"
)

// surfaceDensities maps target terrain to bulk density in kg/m³.
var surfaceDensities = map[Surface]float64{
	SurfaceLand:  2500, // crustal rock
	SurfaceOcean: 1025, // seawater
	SurfaceIce:   917,
}

// SurfaceDensity returns the target density for a terrain type in kg/m³.
func SurfaceDensity(s Surface) (float64, error) {
	density, ok := surfaceDensities[s]
	if !ok {
		return 0, invalidInput("target surface", "must be land, ocean, or ice", string(s))
	}
	return density, nil
}

// Surfaces returns the supported terrain types sorted by identifier.
func Surfaces() []Surface {
	out := make([]Surface, 0, len(surfaceDensities))
	for s := range surfaceDensities {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
