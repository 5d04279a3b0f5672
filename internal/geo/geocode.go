package geo

import (
	"sort"
	"strings"
)

// builtinCities is the lookup table used in place of a real geocoding service
var builtinCities = map[string]Coordinates{
	"bangalore": {Lat: 12.9716, Lng: 77.5946},
	"delhi":     {Lat: 28.7041, Lng: 77.1025},
	"mumbai":    {Lat: 19.0760, Lng: 72.8777},
	"pune":      {Lat: 18.5204, Lng: 73.8567},
	"chennai":   {Lat: 13.0827, Lng: 80.2707},
	"hyderabad": {Lat: 17.3850, Lng: 78.4867},
}

// Geocoder resolves free-form addresses to coordinates by city name
type Geocoder struct {
	cities map[string]Coordinates
	keys   []string
}

// NewGeocoder creates a Geocoder from the built-in table plus extra entries.
// Extra entries override built-in ones with the same (case-insensitive) name.
func NewGeocoder(extra map[string]Coordinates) *Geocoder {
	cities := make(map[string]Coordinates, len(builtinCities)+len(extra))
	for name, c := range builtinCities {
		cities[name] = c
	}
	for name, c := range extra {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" || !c.Valid() {
			continue
		}
		cities[name] = c
	}

	keys := make([]string, 0, len(cities))
	for name := range cities {
		keys = append(keys, name)
	}
	sort.Strings(keys)

	return &Geocoder{cities: cities, keys: keys}
}

// Lookup returns the coordinates of the first known city contained in address
func (g *Geocoder) Lookup(address string) (Coordinates, bool) {
	addr := strings.ToLower(address)
	if strings.TrimSpace(addr) == "" {
		return Coordinates{}, false
	}

	for _, name := range g.keys {
		if strings.Contains(addr, name) {
			return g.cities[name], true
		}
	}
	return Coordinates{}, false
}

// Cities returns the known city names in sorted order
func (g *Geocoder) Cities() []string {
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}
