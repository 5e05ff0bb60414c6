// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"image/color"
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/scale"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Series is one line of a Lines chart or one group of bars of a
// Bars chart.
type Series struct {
	Name  string
	Color color.RGBA
	X, Y  []float64
}

// Lines is a line chart with one line per series.
type Lines struct {
	Title          string
	XLabel, YLabel string
	Series         []Series
}

// seasonSeries splits a season summary from Dataset.ColorsBySeason
// into its seasons and one series per color column. Series are named
// and colored after the paint when ct knows the column.
func seasonSeries(summary *table.Table, ct *paintings.ColorTable) ([]int, []Series, error) {
	seasons, ok := summary.Column("season").([]int)
	if !ok {
		return nil, nil, errors.New("summary has no int season column")
	}
	xs := make([]float64, len(seasons))
	for i, s := range seasons {
		xs[i] = float64(s)
	}

	byCol := make(map[string]string)
	for _, name := range ct.Names() {
		byCol[paintings.ColumnName(name)] = name
	}

	var series []Series
	for _, col := range summary.Columns() {
		if col == "season" {
			continue
		}
		ys, ok := summary.Column(col).([]float64)
		if !ok {
			return nil, nil, errors.Errorf("summary column %s is not float64", col)
		}
		s := Series{Name: col, Color: fallbackColor, X: xs, Y: ys}
		if name, ok := byCol[col]; ok {
			s.Name = name
			if hex, ok := ct.Hex(name); ok {
				s.Color = hexColor(hex)
			}
		}
		series = append(series, s)
	}
	return seasons, series, nil
}

// SeasonChart returns a line chart of a season summary from
// Dataset.ColorsBySeason, with one line per color drawn in that
// color.
func SeasonChart(summary *table.Table, ct *paintings.ColorTable, title string) (*Lines, error) {
	_, series, err := seasonSeries(summary, ct)
	if err != nil {
		return nil, err
	}
	return &Lines{Title: title, XLabel: "season", Series: series}, nil
}

func (l *Lines) Plot(o Options) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = l.Title
	p.X.Label.Text = l.XLabel
	p.Y.Label.Text = l.YLabel
	p.Add(plotter.NewGrid())

	for _, s := range l.Series {
		if len(s.X) != len(s.Y) {
			return nil, errors.Errorf("series %s has %d x values and %d y values", s.Name, len(s.X), len(s.Y))
		}
		if len(s.X) == 0 {
			continue
		}
		xys := make(plotter.XYs, len(s.X))
		for i := range s.X {
			xys[i].X, xys[i].Y = s.X[i], s.Y[i]
		}
		line, pts, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, errors.Wrapf(err, "series %s", s.Name)
		}
		line.Color = s.Color
		line.Width = vg.Points(2)
		pts.Color = s.Color
		pts.Shape = draw.CircleGlyph{}
		p.Add(line, pts)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	x, y := l.extent()
	p.X.Min, p.X.Max = x.Min, x.Max
	p.Y.Min, p.Y.Max = y.Min, y.Max
	return p, nil
}

// extent returns the axis ranges of l. Both ranges are non-empty
// even when all the data is equal.
func (l *Lines) extent() (x, y scale.Linear) {
	x = scale.Linear{Min: math.Inf(1), Max: math.Inf(-1)}
	ymax := math.Inf(-1)
	for _, s := range l.Series {
		for i := range s.X {
			x.Min, x.Max = math.Min(x.Min, s.X[i]), math.Max(x.Max, s.X[i])
			if i < len(s.Y) {
				ymax = math.Max(ymax, s.Y[i])
			}
		}
	}
	if math.IsInf(x.Min, 0) {
		x.Min, x.Max = 0, 1
	}
	if x.Min == x.Max {
		x.Min, x.Max = x.Min-1, x.Max+1
	}
	return x, valueRange(ymax)
}

// valueRange returns a y range from 0 to at least max(1, ymax),
// rounded out to tick marks.
func valueRange(ymax float64) scale.Linear {
	y := scale.Linear{Min: 0, Max: ymax}
	if math.IsInf(ymax, 0) || math.IsNaN(ymax) || ymax < 1 {
		y.Max = 1
	}
	y.Nice(scale.TickOptions{Max: 8})
	return y
}
