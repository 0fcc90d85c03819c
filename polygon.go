package plzmap

import (
	"log/slog"

	"github.com/gogpu/gg"
)

// Segment is a fully bounded line piece derived from a RawEdge.
// Segments are ephemeral: they exist only between edge resolution and
// ring stitching.
type Segment struct {
	A, B gg.Point
}

// segOffset is the geographic distance used to synthesize an endpoint
// for an edge the oracle reported as unbounded. The synthesized point
// lies on the bisector line, past the known endpoint, far enough to
// leave the visible map once clipped.
const segOffset = 0.25

// ResolveSegments converts every RawEdge of the diagram into a bounded
// Segment, synthesizing endpoints for unbounded edges. Edges unbounded
// at both ends carry no usable position and are dropped.
//
// The returned slice preserves edge order and is suitable for drawing
// every bisector directly, without per-site grouping.
func ResolveSegments(d *Diagram) []Segment {
	segs := make([]Segment, 0, len(d.Edges))
	for _, e := range d.Edges {
		s, ok := resolveEdge(d, e)
		if !ok {
			continue
		}
		segs = append(segs, s)
	}
	return segs
}

// resolveEdge turns one RawEdge into a Segment. The boolean is false
// for the degenerate both-ends-unbounded case.
func resolveEdge(d *Diagram, e RawEdge) (Segment, bool) {
	if e.V1 == NoVertex && e.V2 == NoVertex {
		return Segment{}, false
	}
	line := d.Lines[e.Line]
	switch {
	case e.V1 == NoVertex:
		b := d.Vertices[e.V2]
		return Segment{A: extendAlong(line, b, -segOffset), B: b}, true
	case e.V2 == NoVertex:
		a := d.Vertices[e.V1]
		return Segment{A: a, B: extendAlong(line, a, +segOffset)}, true
	default:
		return Segment{A: d.Vertices[e.V1], B: d.Vertices[e.V2]}, true
	}
}

// extendAlong synthesizes a point on the line a*x + b*y = c at the given
// offset from a known point. For a non-vertical line the x coordinate is
// shifted and y solved from the line equation; a vertical line (b == 0)
// shifts y instead.
func extendAlong(l BisectorLine, from gg.Point, offset float64) gg.Point {
	if l.B == 0 {
		return gg.Point{X: l.C / l.A, Y: from.Y + offset}
	}
	x := from.X + offset
	return gg.Point{X: x, Y: -(l.A*x - l.C) / l.B}
}

// Assemble reconstructs one closed polygon per site from the diagram's
// unordered edge set. The result maps postal codes to point rings; a
// well-formed per-site edge cycle of n segments yields n+1 points whose
// first and last entries coincide.
//
// Malformed or disconnected input never fails: stitching stops when no
// segment extends the chain, the partial chain stands, and chains of
// fewer than 3 points are discarded. Codes without segments are absent
// from the result.
func Assemble(d *Diagram, sites []Site) map[string][]gg.Point {
	// A segment borders exactly the two regions its bisector separates,
	// so it is filed under both sites.
	pools := make(map[int][]Segment)
	for _, e := range d.Edges {
		s, ok := resolveEdge(d, e)
		if !ok {
			continue
		}
		line := d.Lines[e.Line]
		pools[line.Site1] = append(pools[line.Site1], s)
		pools[line.Site2] = append(pools[line.Site2], s)
	}

	polys := make(map[string][]gg.Point, len(pools))
	for idx, pool := range pools {
		if idx < 0 || idx >= len(sites) {
			continue
		}
		ring := stitch(pool)
		if len(ring) < 3 {
			Logger().Warn("degenerate region skipped",
				slog.String("plz", sites[idx].Code),
				slog.Int("segments", len(pool)))
			continue
		}
		polys[sites[idx].Code] = ring
	}
	return polys
}

// stitch grows a single chain from an unordered segment pool. Each pass
// tries to extend the tail (append) and the head (prepend) by consuming
// a segment whose endpoint exactly equals the chain end. Endpoint
// matching is exact float equality: shared endpoints originate from the
// same vertex value, never recomputed, so no tolerance is needed.
//
// A pass with no extension on either end terminates stitching, which
// bounds the loop even for disconnected input.
func stitch(pool []Segment) []gg.Point {
	if len(pool) == 0 {
		return nil
	}
	rest := make([]Segment, len(pool)-1)
	copy(rest, pool[1:])
	ring := []gg.Point{pool[0].A, pool[0].B}

	for len(rest) > 0 {
		grown := false
		if next, ok := takeMatch(&rest, ring[len(ring)-1]); ok {
			ring = append(ring, next)
			grown = true
		}
		if prev, ok := takeMatch(&rest, ring[0]); ok {
			ring = append([]gg.Point{prev}, ring...)
			grown = true
		}
		if !grown {
			break
		}
	}
	return ring
}

// takeMatch removes the first segment in the pool with an endpoint equal
// to p and returns the segment's other endpoint. Pool order decides ties;
// for a valid planar subdivision at most one candidate exists.
func takeMatch(pool *[]Segment, p gg.Point) (gg.Point, bool) {
	for i, s := range *pool {
		var other gg.Point
		switch p {
		case s.A:
			other = s.B
		case s.B:
			other = s.A
		default:
			continue
		}
		*pool = append((*pool)[:i], (*pool)[i+1:]...)
		return other, true
	}
	return gg.Point{}, false
}
