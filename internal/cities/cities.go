// Package cities provides the static table of impact target cities. A
// city only supplies the report label, coordinates, and population
// figures; it has no effect on the physics.
package cities

import (
	"sort"
	"strings"
)

// City is one entry in the target table.
type City struct {
	Name            string  `json:"name"`
	Country         string  `json:"country"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Population      int     `json:"population"`
	MetroPopulation int     `json:"metro_population"`
}

// table is the read-only city database, keyed by lowercase name.
var table = map[string]City{}

func init() {
	for _, c := range []City{
		{"New York", "USA", 40.7128, -74.0060, 8_336_817, 20_140_470},
		{"Los Angeles", "USA", 34.0522, -118.2437, 3_979_576, 13_200_998},
		{"London", "UK", 51.5074, -0.1278, 9_002_488, 14_257_962},
		{"Paris", "France", 48.8566, 2.3522, 2_165_423, 12_405_426},
		{"Tokyo", "Japan", 35.6762, 139.6503, 13_960_000, 37_400_068},
		{"Beijing", "China", 39.9042, 116.4074, 21_540_000, 24_900_000},
		{"Moscow", "Russia", 55.7558, 37.6173, 12_500_123, 17_125_000},
		{"Mumbai", "India", 19.0760, 72.8777, 12_442_373, 20_961_472},
		{"São Paulo", "Brazil", -23.5505, -46.6333, 12_325_232, 21_846_507},
		{"Cairo", "Egypt", 30.0444, 31.2357, 9_500_000, 20_900_604},
		{"Mexico City", "Mexico", 19.4326, -99.1332, 9_209_944, 21_804_515},
		{"Sydney", "Australia", -33.8688, 151.2093, 5_312_163, 5_312_163},
		{"Singapore", "Singapore", 1.3521, 103.8198, 5_685_807, 5_685_807},
		{"Dubai", "UAE", 25.2048, 55.2708, 3_331_420, 3_331_420},
		{"Berlin", "Germany", 52.5200, 13.4050, 3_769_495, 6_120_000},
		{"Toronto", "Canada", 43.6532, -79.3832, 2_930_000, 6_417_516},
		{"Hong Kong", "China", 22.3193, 114.1694, 7_496_981, 7_496_981},
		{"Seoul", "South Korea", 37.5665, 126.9780, 9_776_000, 25_514_000},
		{"Istanbul", "Turkey", 41.0082, 28.9784, 15_462_452, 15_462_452},
		{"Buenos Aires", "Argentina", -34.6037, -58.3816, 3_075_646, 15_153_729},
	} {
		table[strings.ToLower(c.Name)] = c
	}
}

// Get looks up a city by name, case-insensitively. The second return is
// false when the city is unknown.
func Get(name string) (City, bool) {
	c, ok := table[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// All returns every city sorted by name.
func All() []City {
	out := make([]City, 0, len(table))
	for _, c := range table {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Search returns cities whose name contains the term, case-insensitively,
// sorted by name.
func Search(term string) []City {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []City
	for _, c := range table {
		if strings.Contains(strings.ToLower(c.Name), term) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// ByCountry returns all cities in the given country, sorted by name.
func ByCountry(country string) []City {
	var out []City
	for _, c := range table {
		if strings.EqualFold(c.Country, country) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
