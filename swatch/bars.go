// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"math"
	"strconv"

	"github.com/aclements/go-gg/table"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Bars is a bar chart with one bar per series in each category.
// Only the Y values of each series are used; Y[i] belongs to
// Categories[i].
type Bars struct {
	Title          string
	XLabel, YLabel string
	Categories     []string
	Series         []Series

	// Stacked stacks the bars of a category on top of each other
	// instead of placing them side by side.
	Stacked bool
}

// SeasonBars returns a bar chart of a season summary from
// Dataset.ColorsBySeason with one category per season and one bar
// per color.
func SeasonBars(summary *table.Table, ct *paintings.ColorTable, title string, stacked bool) (*Bars, error) {
	seasons, series, err := seasonSeries(summary, ct)
	if err != nil {
		return nil, err
	}
	b := &Bars{Title: title, XLabel: "season", Series: series, Stacked: stacked}
	for _, s := range seasons {
		b.Categories = append(b.Categories, strconv.Itoa(s))
	}
	return b, nil
}

// groupFrac is the fraction of a category's width covered by its
// bars.
const groupFrac = 0.8

func (b *Bars) Plot(o Options) (*plot.Plot, error) {
	o = o.orDefault()
	p := plot.New()
	p.Title.Text = b.Title
	p.X.Label.Text = b.XLabel
	p.Y.Label.Text = b.YLabel

	n := len(b.Categories)
	if n == 0 {
		return nil, errors.New("bar chart has no categories")
	}
	for _, s := range b.Series {
		if len(s.Y) != n {
			return nil, errors.Errorf("series %s has %d values for %d categories", s.Name, len(s.Y), n)
		}
	}

	// The data area is most of the chart width, so this slightly
	// overestimates the space per category.
	width, _ := o.size()
	group := width / vg.Length(n) * groupFrac
	barWidth := group
	if !b.Stacked && len(b.Series) > 0 {
		barWidth = group / vg.Length(len(b.Series))
	}

	var prev *plotter.BarChart
	ymax := math.Inf(-1)
	totals := make([]float64, n)
	for j, s := range b.Series {
		bc, err := plotter.NewBarChart(plotter.Values(s.Y), barWidth)
		if err != nil {
			return nil, errors.Wrapf(err, "series %s", s.Name)
		}
		bc.Color = s.Color
		bc.LineStyle.Width = vg.Points(0.5)
		if b.Stacked {
			if prev != nil {
				bc.StackOn(prev)
			}
			prev = bc
		} else {
			bc.Offset = vg.Length(float64(j)-float64(len(b.Series)-1)/2) * barWidth
		}
		for i, y := range s.Y {
			totals[i] += y
			ymax = math.Max(ymax, y)
		}
		p.Add(bc)
		p.Legend.Add(s.Name, bc)
	}
	if b.Stacked {
		for _, t := range totals {
			ymax = math.Max(ymax, t)
		}
	}
	p.Legend.Top = true
	p.NominalX(b.Categories...)

	y := valueRange(ymax)
	p.X.Min, p.X.Max = -0.5, float64(n)-0.5
	p.Y.Min, p.Y.Max = y.Min, y.Max
	return p, nil
}
