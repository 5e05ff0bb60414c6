// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/littlebuttermilk/funplay/internal/tsv"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/littlebuttermilk/funplay/swatch"
)

func cmdSeason(s *session, args []string) error {
	fs := flag.NewFlagSet("season", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bobross season [flags]\n")
		fs.PrintDefaults()
	}
	flagStat := fs.String("stat", paintings.StatTotal, "`stat` per season: total or mean")
	flagColor := fs.String("color", paintings.AllColors, "summarize `color`, or all colors")
	flagOut := fs.String("o", "", "also write a chart to `file` (.svg, .png, .jpg, or .pdf)")
	flagChart := fs.String("chart", chartBar, "`kind` of chart for -o: bar, stacked, or line")
	flagTSV := fs.Bool("tsv", false, "print tab-separated values")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return &usageError{}
	}
	switch *flagChart {
	case chartBar, chartStacked, chartLine:
	default:
		return usagef("unknown chart kind %q; want bar, stacked, or line", *flagChart)
	}

	d, err := s.dataset()
	if err != nil {
		return err
	}
	summary, err := d.ColorsBySeason(*flagStat, *flagColor)
	if err != nil {
		return err
	}
	if *flagTSV {
		if err := tsv.Write(s.out, summary, true); err != nil {
			return err
		}
	} else {
		table.Fprint(s.out, summary)
	}

	if *flagOut != "" {
		title := fmt.Sprintf("Paintings using each color by season (%s)", *flagStat)
		if *flagColor != paintings.AllColors {
			title = fmt.Sprintf("Paintings using %s by season (%s)", *flagColor, *flagStat)
		}
		chart, err := seasonChart(summary, d.ColorTable(), title, *flagChart, *flagStat)
		if err != nil {
			return err
		}
		return writeChart(s, chart, *flagOut)
	}
	return nil
}

// Chart kinds for season -chart.
const (
	chartBar     = "bar"
	chartStacked = "stacked"
	chartLine    = "line"
)

func seasonChart(summary *table.Table, ct *paintings.ColorTable, title, kind, stat string) (swatch.Chart, error) {
	if kind == chartLine {
		l, err := swatch.SeasonChart(summary, ct, title)
		if err != nil {
			return nil, err
		}
		l.YLabel = stat
		return l, nil
	}
	b, err := swatch.SeasonBars(summary, ct, title, kind == chartStacked)
	if err != nil {
		return nil, err
	}
	b.YLabel = stat
	return b, nil
}
