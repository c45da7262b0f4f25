// Package render rasterizes curves and control point markers to images
// without a window.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"spline-canvas/internal/common"
	"spline-canvas/internal/scene"
)

// Drawing defaults.
const (
	CurveWidth = 2.0
	MarkerSize = 5.0
)

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorCurve      = color.RGBA{0, 0, 0, 255}
	ColorOverlay    = color.RGBA{160, 160, 160, 255}
)

// Canvas is an RGBA image drawn at a multiple of its output size.
type Canvas struct {
	img           *image.RGBA
	width, height int
	scale         float64
}

// NewCanvas returns a width x height canvas filled with bg. Drawing happens at
// supersample times the size and is filtered down by Image.
func NewCanvas(width, height, supersample int, bg color.Color) *Canvas {
	supersample = max(supersample, 1)
	img := image.NewRGBA(image.Rect(0, 0, width*supersample, height*supersample))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return &Canvas{
		img:    img,
		width:  width,
		height: height,
		scale:  float64(supersample),
	}
}

func (c *Canvas) pt(p common.Vec2) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*c.scale, p.Y*c.scale)
}

func (c *Canvas) scanner() *rasterx.ScannerGV {
	b := c.img.Bounds()
	return rasterx.NewScannerGV(b.Dx(), b.Dy(), c.img, b)
}

// Polyline strokes the path through points with round caps and joins.
func (c *Canvas) Polyline(points []common.Vec2, width float64, col color.Color) {
	if len(points) < 2 {
		return
	}
	b := c.img.Bounds()
	d := rasterx.NewDasher(b.Dx(), b.Dy(), c.scanner())
	d.SetStroke(fixed.Int26_6(width*c.scale*64), 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.ArcClip, nil, 0)
	d.SetColor(col)
	d.Start(c.pt(points[0]))
	for _, p := range points[1:] {
		d.Line(c.pt(p))
	}
	d.Stop(false)
	d.Draw()
}

// Marker fills a size x size square centered on p.
func (c *Canvas) Marker(p common.Vec2, size float64, col color.Color) {
	b := c.img.Bounds()
	f := rasterx.NewFiller(b.Dx(), b.Dy(), c.scanner())
	f.SetColor(col)
	h := size / 2
	f.Start(c.pt(p.Add(common.V(-h, -h))))
	f.Line(c.pt(p.Add(common.V(h, -h))))
	f.Line(c.pt(p.Add(common.V(h, h))))
	f.Line(c.pt(p.Add(common.V(-h, h))))
	f.Stop(true)
	f.Draw()
}

// Image returns the canvas at its output size.
func (c *Canvas) Image() image.Image {
	if c.scale == 1 {
		return c.img
	}
	return imaging.Resize(c.img, c.width, c.height, imaging.Lanczos)
}

// EncodePNG writes the output image to w.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return imaging.Encode(w, c.Image(), imaging.PNG)
}

// Save writes the output image to path, picking the format by extension.
func (c *Canvas) Save(path string) error {
	return imaging.Save(c.Image(), path)
}

// DrawScene draws curve, an optional overlay, and the control points of s
// colored by index.
func (c *Canvas) DrawScene(s scene.Scene, curve, overlay []common.Vec2) {
	c.Polyline(overlay, CurveWidth/2, ColorOverlay)
	c.Polyline(curve, CurveWidth, ColorCurve)
	for i, p := range s.Controls {
		c.Marker(p, MarkerSize, scene.ControlColor(i))
	}
}
