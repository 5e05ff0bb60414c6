// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"math/rand"
	"testing"
)

func TestTitles(t *testing.T) {
	d := loadTestdata(t)
	want := []string{"A Walk in the Woods", "Mt. McKinley", "Downstream View", "Winter Glow", "Ebony Sunset"}
	got := d.Titles()
	if !de(want, got) {
		t.Fatalf("want %q; got %q", want, got)
	}
	got[0] = "changed"
	if d.Paintings[0].Title != "A Walk in the Woods" {
		t.Errorf("modifying Titles result changed the dataset")
	}
}

func TestRandomTitle(t *testing.T) {
	d := loadTestdata(t)
	titles := make(map[string]bool)
	for _, title := range d.Titles() {
		titles[title] = true
	}
	r := rand.New(rand.NewSource(1))
	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		title := d.RandomTitle(r)
		if !titles[title] {
			t.Fatalf("RandomTitle returned unknown title %q", title)
		}
		seen[title] = true
	}
	if len(seen) != len(titles) {
		t.Errorf("200 draws covered only %d of %d titles", len(seen), len(titles))
	}
	if got := new(Dataset).RandomTitle(r); got != "" {
		t.Errorf("empty dataset: want \"\"; got %q", got)
	}
}

func TestFind(t *testing.T) {
	d := loadTestdata(t)
	p, err := d.Find(" Downstream View ")
	if err != nil {
		t.Fatal(err)
	}
	if p.Season != 2 || len(p.Colors) != 4 {
		t.Errorf("found wrong painting %+v", p)
	}

	nd := &Dataset{Paintings: []*Painting{{Title: "Caf\u00e9 Sunset"}}}
	if _, err := nd.Find("Cafe\u0301 Sunset"); err != nil {
		t.Errorf("decomposed accent should match: %v", err)
	}

	_, err = d.Find("No Such Painting")
	if _, ok := err.(*NotFoundError); !ok {
		t.Errorf("want *NotFoundError; got %v", err)
	}
}

func TestSliceRange(t *testing.T) {
	for _, test := range []struct {
		n      int
		spec   string
		lo, hi int
		err    bool
	}{
		{10, ":5", 0, 5, false},
		{10, "2:7", 2, 7, false},
		{10, "3:", 3, 10, false},
		{10, ":", 0, 10, false},
		{10, "8:20", 8, 10, false},
		{10, "7:2", 2, 2, false},
		{10, "5", 0, 0, true},
		{10, "-1:3", 0, 0, true},
		{10, "a:b", 0, 0, true},
	} {
		lo, hi, err := SliceRange(test.n, test.spec)
		if test.err {
			if err == nil {
				t.Errorf("SliceRange(%d, %q): want error", test.n, test.spec)
			}
			continue
		}
		if err != nil || lo != test.lo || hi != test.hi {
			t.Errorf("SliceRange(%d, %q): want %d, %d; got %d, %d, %v", test.n, test.spec, test.lo, test.hi, lo, hi, err)
		}
	}
}
