// Package plzmap renders choropleth-style maps of postal-code regions.
//
// # Overview
//
// Given one geographic site per postal code and a country outline, plzmap
// partitions the plane into per-code regions with a Voronoi diagram,
// reconstructs each region boundary as a closed polygon, projects all
// coordinates into a normalized drawing space, and resolves display colors
// from hierarchical prefix rule tables.
//
// # Quick Start
//
//	import "plzmap"
//
//	cfg := plzmap.Config{
//	    Size:         1000,
//	    Output:       "map.png",
//	    FillAreas:    true,
//	    DrawCenters:  true,
//	    CenterRadius: 2,
//	    Clip:         true,
//	}
//	err := plzmap.Render(cfg, sites, border)
//
// # Architecture
//
// The pipeline is a single synchronous pass:
//
//	sites -> diagram oracle -> polygon assembly -> projection -> surface
//
// The diagram computation (diagram.go) and the drawing surface (surface.go)
// are replaceable seams: any Oracle producing the {vertices, lines, edges}
// triple and any Surface accepting path commands will do. The default oracle
// wraps github.com/zzwx/voronoi; the default surfaces target PNG via
// github.com/gogpu/gg and SVG via github.com/ajstarks/svgo.
//
// # Coordinate System
//
// Geographic input is (longitude, latitude). Projection maps it to a unit
// drawing space with x in [0,1] and y in [0,AspectK], top-down, which the
// renderer scales to canvas pixels.
package plzmap
