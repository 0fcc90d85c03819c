package plzmap

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// labelScale sizes label text relative to the canvas width.
const labelScale = 0.014

// rasterSurface draws on a gg software context and serializes to PNG
// when closed.
type rasterSurface struct {
	dc     *gg.Context
	path   string
	face   text.Face
	closed bool
}

var _ Surface = (*rasterSurface)(nil)

func newRasterSurface(path string, width, height int) *rasterSurface {
	dc := gg.NewContext(width, height)
	return &rasterSurface{dc: dc, path: path}
}

func (s *rasterSurface) SetColor(c gg.RGBA)     { s.dc.SetColor(c.Color()) }
func (s *rasterSurface) SetLineWidth(w float64) { s.dc.SetLineWidth(w) }
func (s *rasterSurface) MoveTo(x, y float64)    { s.dc.MoveTo(x, y) }
func (s *rasterSurface) LineTo(x, y float64)    { s.dc.LineTo(x, y) }
func (s *rasterSurface) ClosePath()             { s.dc.ClosePath() }
func (s *rasterSurface) Clip()                  { s.dc.Clip() }
func (s *rasterSurface) Circle(x, y, r float64) { s.dc.DrawCircle(x, y, r) }

func (s *rasterSurface) Fill() {
	if err := s.dc.Fill(); err != nil {
		Logger().Warn("fill failed", slog.Any("error", err))
	}
}

func (s *rasterSurface) Stroke() {
	if err := s.dc.Stroke(); err != nil {
		Logger().Warn("stroke failed", slog.Any("error", err))
	}
}

// Text draws with the embedded Go Regular face, loaded on first use.
// Canvas labels are few, so one face at one size is enough.
func (s *rasterSurface) Text(str string, x, y float64) {
	if s.face == nil {
		source, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			Logger().Warn("label font unavailable", slog.Any("error", err))
			return
		}
		s.face = source.Face(labelScale * float64(s.dc.Width()))
		s.dc.SetFont(s.face)
	}
	s.dc.DrawString(str, x, y)
}

// Close writes the PNG and releases the context. Idempotent.
func (s *rasterSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.dc.SavePNG(s.path); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return s.dc.Close()
}
