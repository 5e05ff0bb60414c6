// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package swatch draws the palette of a painting.
//
// A blob chart places one large labeled disc for each color of a
// painting at a random spot. A cloud chart replaces each disc with a
// cloud of points sampled around that spot, so the picture reads as
// a smear of paint rather than a legend.
//
// Charts can be written as SVG (through go-gg) or rendered to PNG and
// JPEG images.
package swatch

import (
	"math/rand"
	"strings"

	"github.com/littlebuttermilk/funplay/paintings"
)

// DefaultPainting is the painting drawn when none is named.
const DefaultPainting = "Downstream View"

const (
	// Box bounds the anchor positions: anchors are uniform in
	// [-Box, Box] on both axes.
	Box = 10

	// Limit is the extent of both axes of a palette chart.
	Limit = 12

	// CloudSize is the default number of points per color in a
	// cloud.
	CloudSize = 100
)

// A Point is one mark on a palette chart.
type Point struct {
	X, Y float64

	// Name and Hex are the paint color this point belongs to.
	Name, Hex string
}

// anchors places each color of p uniformly at random in the box.
func anchors(p *paintings.Painting, r *rand.Rand) []Point {
	pts := make([]Point, len(p.Colors))
	for i, name := range p.Colors {
		pts[i] = Point{
			X:    uniform(r, -Box, Box),
			Y:    uniform(r, -Box, Box),
			Name: strings.TrimSpace(name),
			Hex:  strings.TrimSpace(p.Hexes[i]),
		}
	}
	return pts
}

// Blobs returns one point per color of p, placed uniformly at random
// in [-Box, Box]².
func Blobs(p *paintings.Painting, r *rand.Rand) []Point {
	return anchors(p, r)
}

// Cloud returns n points per color of p. Each color gets a random
// anchor as in Blobs, and its n points are drawn from a unit normal
// distribution centered on that anchor. The result lists all points
// of the first color, then all points of the second, and so on, so
// it has exactly n*len(p.Colors) points.
func Cloud(p *paintings.Painting, r *rand.Rand, n int) []Point {
	if n < 0 {
		n = 0
	}
	centers := anchors(p, r)
	pts := make([]Point, 0, n*len(centers))
	for _, c := range centers {
		dist := Normal2{MuX: c.X, MuY: c.Y, Sigma: 1}
		for i := 0; i < n; i++ {
			x, y := dist.Rand(r)
			pts = append(pts, Point{x, y, c.Name, c.Hex})
		}
	}
	return pts
}
