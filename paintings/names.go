// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/unicode/norm"
)

// Titles returns the title of every painting in d, in order.
func (d *Dataset) Titles() []string {
	titles := make([]string, len(d.Paintings))
	for i, p := range d.Paintings {
		titles[i] = p.Title
	}
	return titles
}

// RandomTitle returns the title of a painting chosen uniformly at
// random using r. If r is nil, it uses the default source. It returns
// "" if d is empty.
func (d *Dataset) RandomTitle(r *rand.Rand) string {
	if len(d.Paintings) == 0 {
		return ""
	}
	var i int
	if r == nil {
		i = rand.Intn(len(d.Paintings))
	} else {
		i = r.Intn(len(d.Paintings))
	}
	return d.Paintings[i].Title
}

// NotFoundError is returned when no painting has a given title.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no painting titled %q", e.Title)
}

func normTitle(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Find returns the first painting titled title. Titles are compared
// after Unicode normalization, so composed and decomposed accents
// match.
func (d *Dataset) Find(title string) (*Painting, error) {
	want := normTitle(title)
	for _, p := range d.Paintings {
		if normTitle(p.Title) == want {
			return p, nil
		}
	}
	return nil, &NotFoundError{title}
}

// SliceRange parses a half-open index range "lo:hi" over a sequence
// of length n. Either bound may be omitted. Like Python slices,
// bounds are clamped to [0, n] and a range with lo > hi is empty.
func SliceRange(n int, spec string) (lo, hi int, err error) {
	i := strings.IndexByte(spec, ':')
	if i < 0 {
		return 0, 0, errors.Errorf("bad range %q: want lo:hi", spec)
	}
	bound := func(s string, def int) (int, error) {
		s = strings.TrimSpace(s)
		if s == "" {
			return def, nil
		}
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return 0, errors.Errorf("bad range %q: %q is not a non-negative integer", spec, s)
		}
		if v > n {
			v = n
		}
		return v, nil
	}
	if lo, err = bound(spec[:i], 0); err != nil {
		return 0, 0, err
	}
	if hi, err = bound(spec[i+1:], n); err != nil {
		return 0, 0, err
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi, nil
}
