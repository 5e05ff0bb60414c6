// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"context"
	"encoding/csv"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Columns with a fixed meaning. Every other named column is an
// indicator column.
const (
	colIndex    = "painting_index"
	colImage    = "img_src"
	colTitle    = "painting_title"
	colSeason   = "season"
	colEpisode  = "episode"
	colNum      = "num_colors"
	colVideo    = "youtube_src"
	colColors   = "colors"
	colColorHex = "color_hex"
)

var metaCols = map[string]bool{
	"":           true, // unnamed row number written by pandas
	"Unnamed: 0": true,
	colIndex:     true,
	colImage:     true,
	colTitle:     true,
	colSeason:    true,
	colEpisode:   true,
	colNum:       true,
	colVideo:     true,
	colColors:    true,
	colColorHex:  true,
}

var requiredCols = []string{colTitle, colSeason, colColors, colColorHex}

// listJunk matches the escaped line breaks, brackets, and quotes
// that surround the elements of a list-valued cell.
var listJunk = regexp.MustCompile(`\\r|\\n|[\r\n\[\]']`)

var listSep = regexp.MustCompile(`\s*,\s*`)

// splitList turns a list-valued cell such as
// "['Bright Red', 'Sap Green']" into its elements.
func splitList(s string) []string {
	s = strings.TrimSpace(listJunk.ReplaceAllString(s, ""))
	if s == "" {
		return []string{}
	}
	parts := listSep.Split(s, -1)
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// parseIndicator parses an indicator cell. The published dataset
// uses 0 and 1, but re-exports sometimes write booleans.
func parseIndicator(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return 0, errors.Errorf("%q is not a number or boolean", s)
	}
	if b {
		return 1, nil
	}
	return 0, nil
}

func parseInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	// Some exports write integer columns as floats.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		return 0, errors.Errorf("%q is not an integer", s)
	}
	return int(f), nil
}

// Parse reads the painting dataset in CSV form from r.
func Parse(r io.Reader) (*Dataset, error) {
	cr := csv.NewReader(r)
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("empty dataset")
	} else if err != nil {
		return nil, errors.Wrap(err, "reading header")
	}

	colIdx := make(map[string]int)
	d := &Dataset{Uses: make(map[string][]float64)}
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		d.Columns = append(d.Columns, name)
		if metaCols[name] {
			colIdx[name] = i
			continue
		}
		if _, ok := d.Uses[name]; ok {
			return nil, errors.Errorf("duplicate column %q", name)
		}
		colIdx[name] = i
		d.Indicators = append(d.Indicators, name)
		d.Uses[name] = []float64{}
	}
	for _, col := range requiredCols {
		if _, ok := colIdx[col]; !ok {
			return nil, errors.Errorf("missing column %q", col)
		}
	}

	get := func(rec []string, col string) string {
		if i, ok := colIdx[col]; ok {
			return rec[i]
		}
		return ""
	}

	for row := 0; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, errors.Wrap(err, "reading dataset")
		}

		p := &Painting{
			Title:    strings.TrimSpace(get(rec, colTitle)),
			ImageURL: get(rec, colImage),
			VideoURL: get(rec, colVideo),
			Colors:   splitList(get(rec, colColors)),
			Hexes:    splitList(get(rec, colColorHex)),
		}
		for _, f := range []struct {
			col string
			dst *int
		}{
			{colIndex, &p.Index},
			{colSeason, &p.Season},
			{colEpisode, &p.Episode},
			{colNum, &p.NumColors},
		} {
			v, err := parseInt(get(rec, f.col))
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %s", row, f.col)
			}
			*f.dst = v
		}
		if len(p.Colors) != len(p.Hexes) {
			return nil, errors.Errorf("row %d (%q): %d colors but %d hex codes", row, p.Title, len(p.Colors), len(p.Hexes))
		}

		for _, col := range d.Indicators {
			v, err := parseIndicator(rec[colIdx[col]])
			if err != nil {
				return nil, errors.Wrapf(err, "row %d, column %s", row, col)
			}
			d.Uses[col] = append(d.Uses[col], v)
		}
		d.Paintings = append(d.Paintings, p)
	}
	return d, nil
}

// Progress is called as a download proceeds with the number of bytes
// read so far and the expected total, which is -1 if unknown.
type Progress func(read, total int64)

type progressReader struct {
	r      io.Reader
	read   int64
	total  int64
	report Progress
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.read += int64(n)
	if p.report != nil {
		p.report(p.read, p.total)
	}
	return n, err
}

// Fetch downloads the dataset at url and parses it. If client is nil,
// http.DefaultClient is used. progress may be nil.
//
// Fetch does not retry. Any transport error, non-2xx status, or parse
// error is returned.
func Fetch(ctx context.Context, client *http.Client, url string, progress Progress) (*Dataset, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "fetching dataset")
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetching dataset")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("fetching dataset %s: %s", url, resp.Status)
	}

	body := &progressReader{r: resp.Body, total: resp.ContentLength, report: progress}
	d, err := Parse(body)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing %s", url)
	}
	return d, nil
}
