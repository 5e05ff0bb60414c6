// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package paintings loads and summarizes the Bob Ross painting
// dataset.
//
// The dataset is a CSV file with one row per painting. Each row has a
// title, a season and episode number, the list of colors used in the
// painting and their hex codes, and one indicator column per color
// (for example, "Alizarin_Crimson") that is 1 if the painting uses
// that color and 0 otherwise.
//
// A Dataset is built once by Parse or Fetch and is never modified
// after that. All views of it (go-gg tables, seasonal summaries,
// title lists) are new values.
package paintings

// DefaultURL is the public copy of the painting dataset.
const DefaultURL = "https://raw.githubusercontent.com/littlebuttermilk/ncssm_sessions/master/data/bob_ross_paintings.csv"

// Painting is a single row of the dataset.
type Painting struct {
	// Index is the painting_index column. Titles are not unique,
	// but indexes are.
	Index int

	Title   string
	Season  int
	Episode int

	// NumColors is the num_colors column as recorded in the file.
	// It normally equals len(Colors).
	NumColors int

	ImageURL string
	VideoURL string

	// Colors and Hexes are positionally paired: Hexes[i] is the
	// hex code of Colors[i].
	Colors []string
	Hexes  []string
}

// Dataset is the in-memory painting table.
type Dataset struct {
	Paintings []*Painting

	// Columns lists the columns of the source file in order.
	Columns []string

	// Indicators lists the per-color indicator columns in source
	// order.
	Indicators []string

	// Uses maps each indicator column to its value in each row.
	// Uses[col][i] belongs to Paintings[i].
	Uses map[string][]float64
}

// Len returns the number of paintings in d.
func (d *Dataset) Len() int {
	return len(d.Paintings)
}
