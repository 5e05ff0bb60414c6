// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image/color"
	"math"

	"github.com/littlebuttermilk/funplay/paintings"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Options sets the physical size of a chart.
type Options struct {
	// Width and Height are in inches.
	Width, Height float64

	// DPI is the number of pixels per inch of raster output.
	DPI int
}

// DefaultOptions is a 12x8 inch figure at 100 DPI.
var DefaultOptions = Options{Width: 12, Height: 8, DPI: 100}

// Pixels returns the size of o in pixels.
func (o Options) Pixels() (w, h int) {
	o = o.orDefault()
	return int(math.Round(o.Width * float64(o.DPI))), int(math.Round(o.Height * float64(o.DPI)))
}

// size returns the size of o in vg units.
func (o Options) size() (w, h vg.Length) {
	return vg.Length(o.Width) * vg.Inch, vg.Length(o.Height) * vg.Inch
}

func (o Options) orDefault() Options {
	if o.Width <= 0 {
		o.Width = DefaultOptions.Width
	}
	if o.Height <= 0 {
		o.Height = DefaultOptions.Height
	}
	if o.DPI <= 0 {
		o.DPI = DefaultOptions.DPI
	}
	return o
}

// A Chart is anything that can be laid out as a gonum plot.
type Chart interface {
	// Plot returns the chart as a plot sized for o.
	Plot(o Options) (*plot.Plot, error)
}

// Scatter is a palette chart: colored discs on a fixed square of
// [-Limit, Limit]² with no axes.
type Scatter struct {
	Title  string
	Points []Point

	// MarkerArea is the area of each disc in square points
	// (1/72 inch), like matplotlib's scatter size.
	MarkerArea float64

	// Alpha is the opacity of each disc.
	Alpha float64

	// Labels draws the color name on each point.
	Labels bool
}

// BlobChart returns the chart for points from Blobs.
func BlobChart(title string, pts []Point) *Scatter {
	return &Scatter{Title: title, Points: pts, MarkerArea: 8000, Alpha: 0.7, Labels: true}
}

// CloudChart returns the chart for points from Cloud.
func CloudChart(title string, pts []Point) *Scatter {
	return &Scatter{Title: title, Points: pts, MarkerArea: 3000, Alpha: 0.7}
}

// radius returns the disc radius.
func (s *Scatter) radius() vg.Length {
	return vg.Points(math.Sqrt(s.MarkerArea) / 2)
}

// visible returns the points of s inside the axis limits.
func (s *Scatter) visible() []Point {
	var pts []Point
	for _, p := range s.Points {
		if math.Abs(p.X) > Limit || math.Abs(p.Y) > Limit {
			continue
		}
		pts = append(pts, p)
	}
	return pts
}

func (s *Scatter) Plot(o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Title

	pts := s.visible()
	xys := make(plotter.XYs, len(pts))
	names := make([]string, len(pts))
	styles := make([]draw.GlyphStyle, len(pts))
	r := s.radius()
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
		names[i] = pt.Name
		styles[i] = draw.GlyphStyle{
			Color:  withAlpha(hexColor(pt.Hex), s.Alpha),
			Radius: r,
			Shape:  draw.CircleGlyph{},
		}
	}
	if len(pts) > 0 {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle { return styles[i] }
		p.Add(sc)

		if s.Labels {
			l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: names})
			if err != nil {
				return nil, err
			}
			for i := range l.TextStyle {
				l.TextStyle[i].XAlign = draw.XCenter
				l.TextStyle[i].YAlign = draw.YCenter
			}
			p.Add(l)
		}
	}

	// Add widens the axes to the data, so the limits go last.
	p.X.Min, p.X.Max = -Limit, Limit
	p.Y.Min, p.Y.Max = -Limit, Limit
	p.HideAxes()
	return p, nil
}

// fallbackColor is used for colors without a usable hex code.
var fallbackColor = color.RGBA{0x80, 0x80, 0x80, 0xff}

func hexColor(hex string) color.RGBA {
	c, err := paintings.ParseHex(hex)
	if err != nil {
		return fallbackColor
	}
	return c
}

func withAlpha(c color.RGBA, alpha float64) color.NRGBA {
	a := math.Max(0, math.Min(1, alpha))
	return color.NRGBA{c.R, c.G, c.B, uint8(math.Round(a * 0xff))}
}
