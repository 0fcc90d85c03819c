package plzmap

import "github.com/gogpu/gg"

// AspectK is the fixed vertical aspect constant of the drawing space.
// It compresses latitude relative to longitude roughly the way a
// mid-European map expects; it is an illustrative constant, not a
// geodesic projection.
const AspectK = 1.35

// Projection maps geographic coordinates into the unit drawing space:
// x in [0, 1], y in [0, AspectK], top-down.
type Projection struct {
	minX, minY float64
	scale      float64
}

// NewProjection builds a projection for the given bounding box.
// The box must be non-degenerate: max(width, height) > 0 is a caller
// precondition, a zero extent would make the scale infinite.
func NewProjection(minX, width, minY, height float64) *Projection {
	m := width
	if height > m {
		m = height
	}
	return &Projection{minX: minX, minY: minY, scale: 1 / m}
}

// Project maps a geographic coordinate into drawing space. The vertical
// axis is flipped: geographic north-up becomes surface top-down, so the
// box origin lands at y = AspectK (the bottom edge).
func (p *Projection) Project(x, y float64) (float64, float64) {
	return (x - p.minX) * p.scale,
		(y-p.minY)*p.scale*-AspectK + AspectK
}

// ProjectPoint is Project over a gg.Point.
func (p *Projection) ProjectPoint(pt gg.Point) gg.Point {
	x, y := p.Project(pt.X, pt.Y)
	return gg.Point{X: x, Y: y}
}
