package plzmap

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
)

// Default drawing parameters, in canvas-relative units.
const (
	defaultSize    = 1000
	frontierWidth  = 0.0015 // of canvas width
	bisectorWidth  = 0.0008
	markerWidth    = 0.001
	labelDotRadius = 0.004
	labelOffset    = 0.006
)

// defaultCenterColor marks site centers with no matching center rule.
var defaultCenterColor = gg.RGB(1, 0, 0)

// Config is the immutable configuration of one rendering run.
// The zero value renders a bare white canvas; callers enable the passes
// they want.
type Config struct {
	// Size is the canvas width in pixels; the height follows from
	// AspectK. Zero means the default of 1000.
	Size int
	// Output is the artifact path. The extension picks the format,
	// see NewSurface.
	Output string

	// FillAreas enables filled per-code regions, colored through
	// AreaRules. Regions without a matching rule stay unfilled.
	FillAreas bool
	AreaRules RuleTable

	// DrawBisectors strokes every diagram edge directly, without
	// per-site polygon assembly.
	DrawBisectors bool

	// DrawFrontier strokes the country border tracks.
	DrawFrontier bool

	// DrawCenters marks every included site with a stroked circle of
	// CenterRadius pixels, colored through CenterRules or the default
	// center color.
	DrawCenters  bool
	CenterRadius float64
	CenterRules  RuleTable

	// Labels are display names to mark with a dot and text at the
	// centroid of all sites sharing the name. Unknown names log a
	// warning and are skipped.
	Labels []string

	// Prefixes is the site inclusion filter: with any configured, a
	// site is included only if its code starts with one of them.
	Prefixes []string

	// Clip limits all drawing to the union of the border tracks.
	Clip bool
	// Stride is the border subsampling stride; zero means
	// DefaultStride.
	Stride int

	// Oracle computes the proximity diagram; nil means FortuneOracle.
	Oracle Oracle
}

// ErrNoGeometry is returned when neither sites nor border tracks
// contribute a single point, leaving no bounding box to project from.
var ErrNoGeometry = errors.New("no sites or border points to render")

// Render runs the whole pipeline: bounding box, projection, optional
// clipping, diagram assembly and area fills, frontier, markers, labels,
// and finalizes the surface exactly once on every path.
func Render(cfg Config, sites []Site, border []Track) error {
	size := cfg.Size
	if size <= 0 {
		size = defaultSize
	}
	surf, err := NewSurface(cfg.Output, size, int(AspectK*float64(size)))
	if err != nil {
		return err
	}
	rerr := renderTo(cfg, surf, float64(size), sites, border)
	cerr := surf.Close()
	if rerr != nil {
		return rerr
	}
	return cerr
}

// renderTo draws the map on an existing surface. Split from Render so
// tests can substitute a recording surface.
func renderTo(cfg Config, surf Surface, scale float64, sites []Site, border []Track) error {
	included := filterSites(sites, cfg.Prefixes)
	box, err := boundsOver(included, border)
	if err != nil {
		return err
	}
	stride := cfg.Stride
	if stride <= 0 {
		stride = DefaultStride
	}

	r := &renderer{
		surf:  surf,
		proj:  NewProjection(box.MinX, box.Width, box.MinY, box.Height),
		scale: scale,
	}

	r.background()

	if cfg.Clip && len(border) > 0 {
		r.installClip(border, stride)
	}

	if cfg.FillAreas || cfg.DrawBisectors {
		oracle := cfg.Oracle
		if oracle == nil {
			oracle = FortuneOracle
		}
		positions := make([]gg.Point, len(included))
		for i, s := range included {
			positions[i] = s.Pos
		}
		diagram, err := oracle(positions)
		if err != nil {
			return fmt.Errorf("proximity diagram: %w", err)
		}
		if cfg.FillAreas {
			r.fillAreas(diagram, included, cfg.AreaRules)
		}
		if cfg.DrawBisectors {
			r.strokeBisectors(diagram)
		}
	}

	if cfg.DrawFrontier && len(border) > 0 {
		r.strokeFrontier(border, stride, gg.Black, frontierWidth*scale)
	}

	if cfg.DrawCenters && cfg.CenterRadius > 0 {
		r.drawCenters(included, cfg.CenterRadius, cfg.CenterRules)
	}

	for _, name := range cfg.Labels {
		r.drawLabel(sites, name)
	}

	return nil
}

// BoundingBox spans the union of all site and border coordinates.
type BoundingBox struct {
	MinX, Width  float64
	MinY, Height float64
}

func boundsOver(sites []Site, border []Track) (BoundingBox, error) {
	first := true
	var minX, maxX, minY, maxY float64
	grow := func(p gg.Point) {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			return
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for _, s := range sites {
		grow(s.Pos)
	}
	for _, t := range border {
		for _, p := range t {
			grow(p)
		}
	}
	if first {
		return BoundingBox{}, ErrNoGeometry
	}
	return BoundingBox{MinX: minX, Width: maxX - minX, MinY: minY, Height: maxY - minY}, nil
}

// renderer binds the surface to the projected, pixel-scaled coordinate
// mapping used by every drawing pass.
type renderer struct {
	surf  Surface
	proj  *Projection
	scale float64
}

func (r *renderer) device(p gg.Point) (float64, float64) {
	x, y := r.proj.Project(p.X, p.Y)
	return x * r.scale, y * r.scale
}

func (r *renderer) moveTo(p gg.Point) {
	x, y := r.device(p)
	r.surf.MoveTo(x, y)
}

func (r *renderer) lineTo(p gg.Point) {
	x, y := r.device(p)
	r.surf.LineTo(x, y)
}

func (r *renderer) background() {
	r.surf.SetColor(gg.White)
	r.surf.MoveTo(0, 0)
	r.surf.LineTo(r.scale, 0)
	r.surf.LineTo(r.scale, AspectK*r.scale)
	r.surf.LineTo(0, AspectK*r.scale)
	r.surf.ClosePath()
	r.surf.Fill()
}

// fillAreas assembles the per-code polygons and fills those with a
// matching area rule, in site order.
func (r *renderer) fillAreas(d *Diagram, sites []Site, rules RuleTable) {
	polys := Assemble(d, sites)
	Logger().Debug("assembled regions", slog.Int("count", len(polys)))
	for _, s := range sites {
		ring, ok := polys[s.Code]
		if !ok {
			continue
		}
		color, ok := rules.Resolve(s.Code)
		if !ok {
			continue
		}
		r.surf.SetColor(color)
		r.moveTo(ring[0])
		for _, p := range ring[1:] {
			r.lineTo(p)
		}
		r.surf.ClosePath()
		r.surf.Fill()
	}
}

// strokeBisectors draws every resolved diagram edge as a thin line.
func (r *renderer) strokeBisectors(d *Diagram) {
	r.surf.SetColor(gg.Black)
	r.surf.SetLineWidth(bisectorWidth * r.scale)
	for _, s := range ResolveSegments(d) {
		r.moveTo(s.A)
		r.lineTo(s.B)
	}
	r.surf.Stroke()
}

// drawCenters strokes one circle marker per site, radius in pixels.
func (r *renderer) drawCenters(sites []Site, radius float64, rules RuleTable) {
	r.surf.SetLineWidth(markerWidth * r.scale)
	for _, s := range sites {
		color, ok := rules.Resolve(s.Code)
		if !ok {
			color = defaultCenterColor
		}
		r.surf.SetColor(color)
		x, y := r.device(s.Pos)
		r.surf.Circle(x, y, radius)
		r.surf.Stroke()
	}
}

// drawLabel marks the centroid of all sites sharing the display name
// with a filled dot and the name itself. A name matching no site is a
// data error: warn and continue.
func (r *renderer) drawLabel(sites []Site, name string) {
	var sum gg.Point
	n := 0
	for _, s := range sites {
		if s.Name == name {
			sum = sum.Add(s.Pos)
			n++
		}
	}
	if n == 0 {
		Logger().Warn("label not found among sites", slog.String("name", name))
		return
	}
	x, y := r.device(sum.Div(float64(n)))
	r.surf.SetColor(gg.Black)
	r.surf.Circle(x, y, labelDotRadius*r.scale)
	r.surf.Fill()
	r.surf.Text(name, x+labelOffset*r.scale, y-labelOffset*r.scale)
}
