package geo

import "testing"

func TestGeocoder_Lookup(t *testing.T) {
	g := NewGeocoder(nil)

	tests := []struct {
		address  string
		expected Coordinates
		found    bool
	}{
		{"123 MG Road, Bangalore", Coordinates{Lat: 12.9716, Lng: 77.5946}, true},
		{"DELHI", Coordinates{Lat: 28.7041, Lng: 77.1025}, true},
		{"FC Road, Pune, Maharashtra", Coordinates{Lat: 18.5204, Lng: 73.8567}, true},
		{"Kolkata", Coordinates{}, false},
		{"", Coordinates{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			got, ok := g.Lookup(tt.address)
			if ok != tt.found {
				t.Fatalf("Lookup(%q) found = %v, want %v", tt.address, ok, tt.found)
			}
			if got != tt.expected {
				t.Errorf("Lookup(%q) = %+v, want %+v", tt.address, got, tt.expected)
			}
		})
	}
}

func TestGeocoder_ExtraCities(t *testing.T) {
	g := NewGeocoder(map[string]Coordinates{
		"Kolkata":   {Lat: 22.5726, Lng: 88.3639},
		"Bangalore": {Lat: 1, Lng: 2},
		"  ":        {Lat: 3, Lng: 4},
	})

	if got, ok := g.Lookup("Salt Lake, Kolkata"); !ok || got.Lat != 22.5726 {
		t.Errorf("Lookup(kolkata) = %+v, %v", got, ok)
	}
	if got, _ := g.Lookup("bangalore"); got != (Coordinates{Lat: 1, Lng: 2}) {
		t.Errorf("expected override for bangalore, got %+v", got)
	}
	if n := len(g.Cities()); n != 7 {
		t.Errorf("Cities() has %d entries, want 7", n)
	}
}
