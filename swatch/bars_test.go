// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"bytes"
	"testing"

	"github.com/aclements/go-gg/table"
)

func TestSeasonBars(t *testing.T) {
	summary := new(table.Builder).
		Add("season", []int{1, 2, 3}).
		Add("Bright_Red", []float64{3, 0, 1}).
		Add("Phthalo_Green", []float64{2, 1, 0}).
		Done()
	for _, stacked := range []bool{false, true} {
		b, err := SeasonBars(summary, seasonColors, "total", stacked)
		if err != nil {
			t.Fatal(err)
		}
		if want := []string{"1", "2", "3"}; len(b.Categories) != 3 || b.Categories[0] != want[0] || b.Categories[2] != want[2] {
			t.Errorf("want categories %v; got %v", want, b.Categories)
		}
		if len(b.Series) != 2 || b.Series[1].Name != "Phthalo Green" {
			t.Fatalf("want Bright Red and Phthalo Green series; got %+v", b.Series)
		}

		p, err := b.Plot(smallOptions)
		if err != nil {
			t.Fatal(err)
		}
		if p.X.Min != -0.5 || p.X.Max != 2.5 {
			t.Errorf("stacked=%v: want x [-0.5, 2.5]; got [%v, %v]", stacked, p.X.Min, p.X.Max)
		}
		// Stacked bars reach the season total.
		wantMax := 3.0
		if stacked {
			wantMax = 5
		}
		if p.Y.Min != 0 || p.Y.Max < wantMax {
			t.Errorf("stacked=%v: want y from 0 to at least %v; got [%v, %v]", stacked, wantMax, p.Y.Min, p.Y.Max)
		}

		for _, format := range []string{FormatSVG, FormatPNG, FormatPDF} {
			var buf bytes.Buffer
			if err := Write(&buf, format, b, smallOptions); err != nil {
				t.Errorf("stacked=%v %s: %v", stacked, format, err)
			}
		}
	}
}

func TestFlatSeasonBars(t *testing.T) {
	for _, test := range flatSummaries {
		for _, stacked := range []bool{false, true} {
			b, err := SeasonBars(test.summary, seasonColors, test.name, stacked)
			if err != nil {
				t.Fatal(err)
			}
			p, err := b.Plot(smallOptions)
			if err != nil {
				t.Fatalf("%s: %v", test.name, err)
			}
			if !(p.X.Min < p.X.Max) || p.Y.Min != 0 || p.Y.Max < 1 {
				t.Errorf("%s stacked=%v: want non-empty axes with y from 0; got x [%v, %v] y [%v, %v]",
					test.name, stacked, p.X.Min, p.X.Max, p.Y.Min, p.Y.Max)
			}
			var buf bytes.Buffer
			if err := Write(&buf, FormatPNG, b, smallOptions); err != nil {
				t.Errorf("%s stacked=%v: %v", test.name, stacked, err)
			}
		}
	}
}

func TestBarsErrors(t *testing.T) {
	for _, b := range []*Bars{
		{},
		{Categories: []string{"1", "2"}, Series: []Series{{Name: "short", Y: []float64{1}}}},
	} {
		if _, err := b.Plot(smallOptions); err == nil {
			t.Errorf("%+v: want error", b)
		}
	}
}
