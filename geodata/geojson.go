package geodata

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/gogpu/gg"

	"plzmap"
)

// LoadTracks reads country border tracks from a GeoJSON file. The outer
// ring of every Polygon and MultiPolygon becomes one Track; holes and
// non-area geometries are ignored. Bare geometries, Features, and
// FeatureCollections are all accepted.
func LoadTracks(path string) ([]plzmap.Track, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	tracks := walkGeoJSON(raw, nil)
	if len(tracks) == 0 {
		return nil, fmt.Errorf("%s: no polygon geometry found", path)
	}
	return tracks, nil
}

// walkGeoJSON descends through FeatureCollection/Feature wrappers and
// collects polygon outer rings. GeoJSON in the wild is loosely typed,
// so parsing is tolerant: anything not shaped like a coordinate is
// skipped rather than rejected.
func walkGeoJSON(obj map[string]any, tracks []plzmap.Track) []plzmap.Track {
	typ, _ := obj["type"].(string)
	switch typ {
	case "FeatureCollection":
		features, _ := obj["features"].([]any)
		for _, f := range features {
			if fo, ok := f.(map[string]any); ok {
				tracks = walkGeoJSON(fo, tracks)
			}
		}
	case "Feature":
		if geom, ok := obj["geometry"].(map[string]any); ok {
			tracks = walkGeoJSON(geom, tracks)
		}
	case "Polygon":
		if ring := outerRing(obj["coordinates"]); len(ring) > 0 {
			tracks = append(tracks, ring)
		}
	case "MultiPolygon":
		polys, _ := obj["coordinates"].([]any)
		for _, poly := range polys {
			if ring := outerRing(poly); len(ring) > 0 {
				tracks = append(tracks, ring)
			}
		}
	case "GeometryCollection":
		geoms, _ := obj["geometries"].([]any)
		for _, g := range geoms {
			if gm, ok := g.(map[string]any); ok {
				tracks = walkGeoJSON(gm, tracks)
			}
		}
	}
	return tracks
}

// outerRing extracts the first ring of a polygon coordinate array.
func outerRing(coords any) plzmap.Track {
	rings, ok := coords.([]any)
	if !ok || len(rings) == 0 {
		return nil
	}
	pts, ok := rings[0].([]any)
	if !ok {
		return nil
	}
	track := make(plzmap.Track, 0, len(pts))
	for _, p := range pts {
		pair, ok := p.([]any)
		if !ok || len(pair) < 2 {
			continue
		}
		lon, lok := pair[0].(float64)
		lat, aok := pair[1].(float64)
		if !lok || !aok {
			continue
		}
		track = append(track, gg.Point{X: lon, Y: lat})
	}
	return track
}
