package plzmap

import (
	"fmt"
	"image/color"
	"os"
	"strings"

	svg "github.com/ajstarks/svgo/float"
	"github.com/gogpu/gg"
)

// svgSurface draws into a vector document. Path commands accumulate in
// SVG path-data form and are emitted as <path> elements when filled or
// stroked; a clip installs a <clipPath> plus a wrapping group that stays
// open until Close. Repeated clips nest their groups, so the regions
// intersect and every group is balanced when the document ends.
type svgSurface struct {
	canvas    *svg.SVG
	file      *os.File
	width     float64
	path      strings.Builder
	color     string
	lineWidth float64
	groups    int
	clips     int
	closed    bool
}

var _ Surface = (*svgSurface)(nil)

func newSVGSurface(path string, width, height int) (*svgSurface, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	canvas := svg.New(f)
	canvas.Start(float64(width), float64(height))
	return &svgSurface{
		canvas:    canvas,
		file:      f,
		width:     float64(width),
		color:     "#000000",
		lineWidth: 1,
	}, nil
}

func (s *svgSurface) SetColor(c gg.RGBA)     { s.color = cssColor(c) }
func (s *svgSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *svgSurface) MoveTo(x, y float64) {
	fmt.Fprintf(&s.path, "M%.3f %.3f ", x, y)
}

func (s *svgSurface) LineTo(x, y float64) {
	fmt.Fprintf(&s.path, "L%.3f %.3f ", x, y)
}

func (s *svgSurface) ClosePath() {
	s.path.WriteString("Z ")
}

// Circle appends a full circle as two arc segments so that circles and
// polygon paths travel through the same fill/stroke pipeline.
func (s *svgSurface) Circle(x, y, r float64) {
	fmt.Fprintf(&s.path, "M%.3f %.3f A%.3f %.3f 0 1 0 %.3f %.3f A%.3f %.3f 0 1 0 %.3f %.3f Z ",
		x+r, y, r, r, x-r, y, r, r, x+r, y)
}

func (s *svgSurface) Fill() {
	d := s.takePath()
	if d == "" {
		return
	}
	s.canvas.Path(d, fmt.Sprintf("fill:%s;stroke:none", s.color))
}

func (s *svgSurface) Stroke() {
	d := s.takePath()
	if d == "" {
		return
	}
	s.canvas.Path(d, fmt.Sprintf("fill:none;stroke:%s;stroke-width:%.3f", s.color, s.lineWidth))
}

func (s *svgSurface) Clip() {
	d := s.takePath()
	if d == "" {
		return
	}
	id := fmt.Sprintf("clip%d", s.clips)
	s.clips++
	s.canvas.ClipPath(fmt.Sprintf(`id=%q`, id))
	s.canvas.Path(d)
	s.canvas.ClipEnd()
	s.canvas.Group(fmt.Sprintf(`clip-path="url(#%s)"`, id))
	s.groups++
}

func (s *svgSurface) Text(str string, x, y float64) {
	s.canvas.Text(x, y, str,
		fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%.1fpx", s.color, labelScale*s.width))
}

// Close ends every open clip group, finishes the document, and closes
// the file. Idempotent.
func (s *svgSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	for ; s.groups > 0; s.groups-- {
		s.canvas.Gend()
	}
	s.canvas.End()
	return s.file.Close()
}

func (s *svgSurface) takePath() string {
	d := strings.TrimSpace(s.path.String())
	s.path.Reset()
	return d
}

func cssColor(c gg.RGBA) string {
	n := c.Color().(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
