package geodata

import (
	"testing"
)

func TestLoadTracks_Polygon(t *testing.T) {
	path := writeFile(t, "border.geojson", `{
		"type": "Polygon",
		"coordinates": [
			[[5.9, 47.3], [15.0, 47.3], [15.0, 55.1], [5.9, 55.1], [5.9, 47.3]],
			[[8.0, 50.0], [9.0, 50.0], [9.0, 51.0], [8.0, 50.0]]
		]
	}`)
	tracks, err := LoadTracks(path)
	if err != nil {
		t.Fatal(err)
	}
	// Only the outer ring; the hole is ignored.
	if len(tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(tracks))
	}
	if len(tracks[0]) != 5 {
		t.Errorf("outer ring has %d points, want 5", len(tracks[0]))
	}
	if p := tracks[0][0]; p.X != 5.9 || p.Y != 47.3 {
		t.Errorf("first point = %v", p)
	}
}

func TestLoadTracks_FeatureCollectionMultiPolygon(t *testing.T) {
	// Mainland plus one island, wrapped the way country extracts
	// usually ship.
	path := writeFile(t, "country.geojson", `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"properties": {"name": "DE"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [
					[[[6.0, 47.0], [15.0, 47.0], [15.0, 55.0], [6.0, 47.0]]],
					[[[8.3, 54.5], [8.6, 54.5], [8.6, 54.8], [8.3, 54.5]]]
				]
			}
		}]
	}`)
	tracks, err := LoadTracks(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Fatalf("got %d tracks, want mainland + island", len(tracks))
	}
	if len(tracks[0]) != 4 || len(tracks[1]) != 4 {
		t.Errorf("track sizes = %d, %d, want 4, 4", len(tracks[0]), len(tracks[1]))
	}
}

func TestLoadTracks_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not geojson at all"},
		{"no polygons", `{"type": "Point", "coordinates": [1.0, 2.0]}`},
		{"empty collection", `{"type": "FeatureCollection", "features": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.geojson", tt.content)
			if _, err := LoadTracks(path); err == nil {
				t.Error("want error, got nil")
			}
		})
	}
}
