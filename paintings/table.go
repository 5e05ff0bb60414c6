// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"strings"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/pkg/errors"
)

// Table returns d as a go-gg table with the columns painting_title,
// season, episode, num_colors, and then every indicator column.
func (d *Dataset) Table() *table.Table {
	n := len(d.Paintings)
	titles := make([]string, n)
	seasons, episodes, ncolors := make([]int, n), make([]int, n), make([]int, n)
	for i, p := range d.Paintings {
		titles[i] = p.Title
		seasons[i] = p.Season
		episodes[i] = p.Episode
		ncolors[i] = p.NumColors
	}

	b := new(table.Builder).
		Add(colTitle, titles).
		Add(colSeason, seasons).
		Add(colEpisode, episodes).
		Add(colNum, ncolors)
	for _, col := range d.Indicators {
		b.Add(col, d.Uses[col])
	}
	return b.Done()
}

// SelectColumns picks columns out of cols by label. spec is either a
// comma-separated list of labels or a range "first:last" that
// includes both ends. Either end of a range may be omitted to mean
// the first or last column.
func SelectColumns(cols []string, spec string) ([]string, error) {
	index := func(label string) (int, error) {
		for i, c := range cols {
			if c == label {
				return i, nil
			}
		}
		return 0, errors.Errorf("unknown column %q", label)
	}

	spec = strings.TrimSpace(spec)
	if spec == "" || spec == ":" {
		return append([]string(nil), cols...), nil
	}

	if i := strings.IndexByte(spec, ':'); i >= 0 {
		lo, hi := 0, len(cols)-1
		var err error
		if first := strings.TrimSpace(spec[:i]); first != "" {
			if lo, err = index(first); err != nil {
				return nil, err
			}
		}
		if last := strings.TrimSpace(spec[i+1:]); last != "" {
			if hi, err = index(last); err != nil {
				return nil, err
			}
		}
		if lo > hi {
			return []string{}, nil
		}
		return append([]string(nil), cols[lo:hi+1]...), nil
	}

	var out []string
	for _, label := range strings.Split(spec, ",") {
		label = strings.TrimSpace(label)
		if _, err := index(label); err != nil {
			return nil, err
		}
		out = append(out, label)
	}
	return out, nil
}

// Project returns a table with rows [lo, hi) and the named columns of
// t, in the order given.
func Project(t *table.Table, lo, hi int, cols []string) (*table.Table, error) {
	if lo < 0 || hi > t.Len() || lo > hi {
		return nil, errors.Errorf("rows %d:%d out of range for %d rows", lo, hi, t.Len())
	}
	idx := make([]int, hi-lo)
	for i := range idx {
		idx[i] = lo + i
	}
	b := new(table.Builder)
	for _, col := range cols {
		seq := t.Column(col)
		if seq == nil {
			return nil, errors.Errorf("unknown column %q", col)
		}
		b.Add(col, slice.Select(seq, idx))
	}
	return b.Done(), nil
}

// FilterSeason returns the rows of t from the given season, keeping
// every column.
func FilterSeason(t *table.Table, season int) (*table.Table, error) {
	seasons, ok := t.Column(colSeason).([]int)
	if !ok {
		return nil, errors.Errorf("no int %s column", colSeason)
	}
	idx := []int{}
	for i, s := range seasons {
		if s == season {
			idx = append(idx, i)
		}
	}
	b := new(table.Builder)
	for _, col := range t.Columns() {
		b.Add(col, slice.Select(t.Column(col), idx))
	}
	return b.Done(), nil
}
