// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"fmt"
	"image/color"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

var hexRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var spaceRe = regexp.MustCompile(`\s+`)

// ValidHex reports whether s is a "#RRGGBB" color code.
func ValidHex(s string) bool {
	return hexRe.MatchString(s)
}

// ParseHex parses a "#RRGGBB" color code.
func ParseHex(s string) (color.RGBA, error) {
	if !ValidHex(s) {
		return color.RGBA{}, errors.Errorf("bad hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}, nil
}

// ColumnName returns the indicator column for the color called name.
func ColumnName(name string) string {
	return spaceRe.ReplaceAllString(strings.TrimSpace(name), "_")
}

// A ColorTable maps color names to hex codes. It remembers the order
// in which names were added.
type ColorTable struct {
	names []string
	hex   map[string]string
}

// NewColorTable pairs names[i] with hexes[i]. If a name appears more
// than once, the first pairing wins.
func NewColorTable(names, hexes []string) *ColorTable {
	ct := &ColorTable{hex: make(map[string]string)}
	for i, name := range names {
		if i >= len(hexes) {
			break
		}
		name = strings.TrimSpace(name)
		if _, ok := ct.hex[name]; ok {
			continue
		}
		ct.names = append(ct.names, name)
		ct.hex[name] = strings.TrimSpace(hexes[i])
	}
	return ct
}

// ColorTable returns the color lookup table of d.
//
// The table comes from a single row: the first painting that uses
// the largest number of colors. Every other row is assumed to use the
// same hex code for the same name; use CheckColors to verify that.
func (d *Dataset) ColorTable() *ColorTable {
	var best *Painting
	for _, p := range d.Paintings {
		if best == nil || len(p.Colors) > len(best.Colors) {
			best = p
		}
	}
	if best == nil {
		return NewColorTable(nil, nil)
	}
	return NewColorTable(best.Colors, best.Hexes)
}

// Len returns the number of colors in ct.
func (ct *ColorTable) Len() int {
	return len(ct.names)
}

// Names returns the color names in ct in order.
func (ct *ColorTable) Names() []string {
	return append([]string(nil), ct.names...)
}

// Has reports whether ct contains a color called name. Names are
// case sensitive.
func (ct *ColorTable) Has(name string) bool {
	_, ok := ct.hex[name]
	return ok
}

// Hex returns the hex code of the color called name.
func (ct *ColorTable) Hex(name string) (string, bool) {
	h, ok := ct.hex[name]
	return h, ok
}

// Color returns the color called name, or false if name is unknown
// or its hex code is malformed.
func (ct *ColorTable) Color(name string) (color.Color, bool) {
	h, ok := ct.hex[name]
	if !ok {
		return nil, false
	}
	c, err := ParseHex(h)
	if err != nil {
		return nil, false
	}
	return c, true
}

// ColorMismatchError reports a row that disagrees with an earlier row
// about the hex code of a color.
type ColorMismatchError struct {
	Row       int
	Title     string
	Color     string
	Hex, Want string
}

func (e *ColorMismatchError) Error() string {
	return fmt.Sprintf("row %d (%q) gives %s as %s, but earlier rows use %s", e.Row, e.Title, e.Color, e.Hex, e.Want)
}

// CheckColors verifies that every row maps each color name to the
// same hex code and that every hex code is well formed. It returns
// the first problem it finds.
func (d *Dataset) CheckColors() error {
	seen := make(map[string]string)
	for row, p := range d.Paintings {
		for i, name := range p.Colors {
			h := p.Hexes[i]
			if !ValidHex(h) {
				return errors.Errorf("row %d (%q): bad hex code %q for %s", row, p.Title, h, name)
			}
			want, ok := seen[name]
			if !ok {
				seen[name] = h
				continue
			}
			if !strings.EqualFold(want, h) {
				return &ColorMismatchError{row, p.Title, name, h, want}
			}
		}
	}
	return nil
}
