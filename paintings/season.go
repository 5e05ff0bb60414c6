// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/aclements/go-moremath/vec"
	"github.com/pkg/errors"
)

// Arguments accepted by ColorsBySeason.
const (
	StatTotal = "total"
	StatMean  = "mean"
	AllColors = "all"
)

// ArgError reports an invalid argument to a summary function. Its
// message is meant to be shown to the user as is.
type ArgError struct {
	Arg, Value string
	Msg        string
}

func (e *ArgError) Error() string {
	return e.Msg
}

const (
	badStatMsg  = `Invalid stat argument. Use "total" or "mean", for average number of uses by season.`
	badColorMsg = `Invalid color argument. Use "all" to see all colors or one color name (with caps!), e.g. "Dark Sienna", as they appear in the colors column. Check available colors with "bobross colors".`
)

// ColorsBySeason summarizes how often colors were used in each
// season.
//
// stat is either StatTotal, which counts the paintings in each season
// that use a color, or StatMean, which is that count divided by the
// number of paintings in the season. color is either AllColors or the
// name of a single color from the color table (for example,
// "Alizarin Crimson").
//
// The result has an int "season" column in ascending order followed
// by one float64 column per color, named by ColumnName. Invalid
// arguments return an *ArgError.
func (d *Dataset) ColorsBySeason(stat, color string) (*table.Table, error) {
	ct := d.ColorTable()
	var names []string
	if color == AllColors {
		names = ct.Names()
	} else if !ct.Has(color) {
		return nil, &ArgError{"color", color, badColorMsg}
	} else {
		names = []string{color}
	}

	var agg func([]float64) float64
	switch stat {
	case StatTotal:
		agg = vec.Sum
	case StatMean:
		agg = stats.Mean
	default:
		return nil, &ArgError{"stat", stat, badStatMsg}
	}

	cols := make([]string, len(names))
	for i, name := range names {
		cols[i] = ColumnName(name)
		if _, ok := d.Uses[cols[i]]; !ok {
			return nil, errors.Errorf("color %q has no indicator column %q", name, cols[i])
		}
	}

	seasons := make([]int, len(d.Paintings))
	for i, p := range d.Paintings {
		seasons[i] = p.Season
	}
	b := new(table.Builder).Add("season", seasons)
	for _, col := range cols {
		b.Add(col, d.Uses[col])
	}
	g := table.GroupBy(b.Done(), "season")

	// Reduce each season group to one row.
	type seasonRow struct {
		season int
		vals   []float64
	}
	var rows []seasonRow
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		if t.Len() == 0 {
			continue
		}
		row := seasonRow{season: t.MustColumn("season").([]int)[0]}
		for _, col := range cols {
			row.vals = append(row.vals, agg(t.MustColumn(col).([]float64)))
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].season < rows[j].season
	})

	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = row.season
	}
	nb := new(table.Builder).Add("season", out)
	for j, col := range cols {
		vals := make([]float64, len(rows))
		for i, row := range rows {
			vals[i] = row.vals[j]
		}
		nb.Add(col, vals)
	}
	return nb.Done(), nil
}

// ColumnTotals returns the sum of every indicator column over all
// paintings.
func (d *Dataset) ColumnTotals() map[string]float64 {
	totals := make(map[string]float64, len(d.Indicators))
	for _, col := range d.Indicators {
		totals[col] = vec.Sum(d.Uses[col])
	}
	return totals
}
