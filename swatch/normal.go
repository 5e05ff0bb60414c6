// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"math"
	"math/rand"
)

// Normal2 is an isotropic bivariate normal distribution: X and Y are
// independent normal variables with means MuX and MuY and common
// standard deviation Sigma.
type Normal2 struct {
	MuX, MuY float64
	Sigma    float64
}

// PDF returns the probability density at (x, y).
func (d Normal2) PDF(x, y float64) float64 {
	dx, dy := x-d.MuX, y-d.MuY
	v := d.Sigma * d.Sigma
	return math.Exp(-(dx*dx+dy*dy)/(2*v)) / (2 * math.Pi * v)
}

// Rand draws a point from d using r, or the default source if r is
// nil.
func (d Normal2) Rand(r *rand.Rand) (x, y float64) {
	if r == nil {
		x, y = rand.NormFloat64(), rand.NormFloat64()
	} else {
		x, y = r.NormFloat64(), r.NormFloat64()
	}
	return d.MuX + d.Sigma*x, d.MuY + d.Sigma*y
}

// uniform returns a value drawn uniformly from [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	var u float64
	if r == nil {
		u = rand.Float64()
	} else {
		u = r.Float64()
	}
	return lo + (hi-lo)*u
}
