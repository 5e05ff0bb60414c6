// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aclements/go-moremath/stats"
	"github.com/littlebuttermilk/funplay/paintings"
)

var testPainting = &paintings.Painting{
	Title:     "A Walk in the Woods",
	Season:    1,
	Episode:   1,
	NumColors: 5,
	Colors:    []string{"Alizarin Crimson", " Bright Red", "Dark Sienna", "Phthalo Green", "Titanium White"},
	Hexes:     []string{"#4E1500", "#DB0000", "#5F2E1F", "#102E3C", " #FFFFFF"},
}

func TestBlobs(t *testing.T) {
	pts := Blobs(testPainting, rand.New(rand.NewSource(1)))
	if len(pts) != len(testPainting.Colors) {
		t.Fatalf("want %d points; got %d", len(testPainting.Colors), len(pts))
	}
	for i, p := range pts {
		if p.X < -Box || p.X >= Box || p.Y < -Box || p.Y >= Box {
			t.Errorf("point %d (%v, %v) outside box", i, p.X, p.Y)
		}
	}
	if pts[1].Name != "Bright Red" {
		t.Errorf("want trimmed name %q; got %q", "Bright Red", pts[1].Name)
	}
	if pts[4].Hex != "#FFFFFF" {
		t.Errorf("want trimmed hex %q; got %q", "#FFFFFF", pts[4].Hex)
	}
}

func TestCloud(t *testing.T) {
	const seed = 42
	centers := Blobs(testPainting, rand.New(rand.NewSource(seed)))
	pts := Cloud(testPainting, rand.New(rand.NewSource(seed)), CloudSize)
	if want := CloudSize * len(testPainting.Colors); len(pts) != want {
		t.Fatalf("want %d points; got %d", want, len(pts))
	}
	for ci, c := range centers {
		group := pts[ci*CloudSize : (ci+1)*CloudSize]
		xs, ys := make([]float64, len(group)), make([]float64, len(group))
		for i, p := range group {
			if p.Name != c.Name || p.Hex != c.Hex {
				t.Fatalf("point %d of group %d is %s; want %s", i, ci, p.Name, c.Name)
			}
			xs[i], ys[i] = p.X, p.Y
		}
		// The standard error of each mean is 0.1.
		if mx, my := stats.Mean(xs), stats.Mean(ys); math.Abs(mx-c.X) > 0.5 || math.Abs(my-c.Y) > 0.5 {
			t.Errorf("%s: want mean near (%.2f, %.2f); got (%.2f, %.2f)", c.Name, c.X, c.Y, mx, my)
		}
		if sd := stats.StdDev(xs); sd < 0.7 || sd > 1.3 {
			t.Errorf("%s: want x standard deviation near 1; got %.2f", c.Name, sd)
		}
	}

	if got := Cloud(testPainting, nil, 0); len(got) != 0 {
		t.Errorf("n=0: want no points; got %d", len(got))
	}
	if got := Cloud(&paintings.Painting{}, nil, 10); len(got) != 0 {
		t.Errorf("no colors: want no points; got %d", len(got))
	}
}

func TestNormal2PDF(t *testing.T) {
	d := Normal2{MuX: 3, MuY: -2, Sigma: 1}
	if got, want := d.PDF(3, -2), 1/(2*math.Pi); math.Abs(got-want) > 1e-12 {
		t.Errorf("peak: want %v; got %v", want, got)
	}
	if d.PDF(4, -2) >= d.PDF(3, -2) {
		t.Errorf("density should fall away from the mean")
	}
	if a, b := d.PDF(4, -2), d.PDF(3, -1); math.Abs(a-b) > 1e-12 {
		t.Errorf("density should be isotropic: %v != %v", a, b)
	}
}
