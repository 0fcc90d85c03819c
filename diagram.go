package plzmap

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
	"github.com/zzwx/voronoi"
)

// NoVertex marks a RawEdge endpoint that extends to infinity.
const NoVertex = -1

// BisectorLine is the line equidistant between two sites, in the form
// a*x + b*y = c. Site1 and Site2 index into the site slice handed to
// the oracle; the line separates their two regions.
type BisectorLine struct {
	A, B, C      float64
	Site1, Site2 int
}

// RawEdge is one diagram edge: a reference to its BisectorLine plus up
// to two vertex indices. An index of NoVertex means the edge is
// unbounded in that direction.
type RawEdge struct {
	Line   int
	V1, V2 int
}

// Diagram is the output of a proximity-diagram computation.
type Diagram struct {
	Vertices []gg.Point
	Lines    []BisectorLine
	Edges    []RawEdge
}

// Oracle computes a proximity diagram for a set of 2D sites.
// plzmap treats the computation as a black box; FortuneOracle is the
// default implementation.
type Oracle func(sites []gg.Point) (*Diagram, error)

// fortunePad widens the clipping box handed to the sweep so that hull
// regions keep a visible extent instead of collapsing onto their sites.
const fortunePad = 1.0

// FortuneOracle computes the diagram with Fortune's sweep line
// algorithm (github.com/zzwx/voronoi), converted to the
// {vertices, lines, edges} form consumed by Assemble.
//
// Box-frame edges produced by the sweep's clipping step carry no second
// site and are dropped; every returned edge references a bisector line
// between two distinct input sites.
func FortuneOracle(sites []gg.Point) (*Diagram, error) {
	if len(sites) < 2 {
		return nil, fmt.Errorf("voronoi: need at least 2 sites, got %d", len(sites))
	}

	minX, maxX := sites[0].X, sites[0].X
	minY, maxY := sites[0].Y, sites[0].Y
	for _, p := range sites[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}

	in := make([]voronoi.Vertex, len(sites))
	siteIndex := make(map[voronoi.Vertex]int, len(sites))
	for i, p := range sites {
		v := voronoi.Vertex{X: p.X, Y: p.Y}
		in[i] = v
		if _, dup := siteIndex[v]; dup {
			return nil, fmt.Errorf("voronoi: duplicate site position (%g, %g)", p.X, p.Y)
		}
		siteIndex[v] = i
	}

	bbox := voronoi.NewBBox(minX-fortunePad, minY-fortunePad, maxX+fortunePad, maxY+fortunePad)
	vd := voronoi.ComputeDiagram(in, bbox, false)

	d := &Diagram{}
	vertexIndex := make(map[voronoi.Vertex]int)
	resolve := func(v voronoi.Vertex) int {
		if v == voronoi.NoVertex {
			return NoVertex
		}
		if i, ok := vertexIndex[v]; ok {
			return i
		}
		i := len(d.Vertices)
		vertexIndex[v] = i
		d.Vertices = append(d.Vertices, gg.Point{X: v.X, Y: v.Y})
		return i
	}

	for _, e := range vd.Edges {
		if e.LeftCell == nil || e.RightCell == nil {
			continue // clipping-box frame, not a bisector
		}
		s1, ok1 := siteIndex[e.LeftCell.Site]
		s2, ok2 := siteIndex[e.RightCell.Site]
		if !ok1 || !ok2 {
			continue
		}
		li := len(d.Lines)
		d.Lines = append(d.Lines, Bisector(sites[s1], sites[s2], s1, s2))
		d.Edges = append(d.Edges, RawEdge{
			Line: li,
			V1:   resolve(e.Va.Vertex),
			V2:   resolve(e.Vb.Vertex),
		})
	}

	Logger().Debug("computed proximity diagram",
		slog.Int("sites", len(sites)),
		slog.Int("vertices", len(d.Vertices)),
		slog.Int("edges", len(d.Edges)))
	return d, nil
}

// Bisector returns the perpendicular bisector of the segment p-q as a
// BisectorLine separating site indices i and j. Points on the line are
// equidistant from p and q:
//
//	2(qx-px)*x + 2(qy-py)*y = qx²+qy² - px²-py²
func Bisector(p, q gg.Point, i, j int) BisectorLine {
	return BisectorLine{
		A:     2 * (q.X - p.X),
		B:     2 * (q.Y - p.Y),
		C:     q.X*q.X + q.Y*q.Y - p.X*p.X - p.Y*p.Y,
		Site1: i,
		Site2: j,
	}
}
