// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package paintings

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strings"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func loadTestdata(t *testing.T) *Dataset {
	t.Helper()
	f, err := os.Open("testdata/paintings.csv")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	d, err := Parse(f)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestSplitList(t *testing.T) {
	for _, test := range []struct {
		in   string
		want []string
	}{
		{`['Bright Red', 'Sap Green']`, []string{"Bright Red", "Sap Green"}},
		{`['Alizarin Crimson', 'Dark Sienna',\r\n 'Titanium White']`, []string{"Alizarin Crimson", "Dark Sienna", "Titanium White"}},
		{"['#4E1500',\r\n'#FFFFFF']", []string{"#4E1500", "#FFFFFF"}},
		{`['Liquid Clear']`, []string{"Liquid Clear"}},
		{`[]`, []string{}},
		{``, []string{}},
		{`a ,b,  c`, []string{"a", "b", "c"}},
	} {
		got := splitList(test.in)
		if !de(test.want, got) {
			t.Errorf("splitList(%q): want %q; got %q", test.in, test.want, got)
		}
	}
}

func TestParse(t *testing.T) {
	d := loadTestdata(t)

	if d.Len() != 5 {
		t.Fatalf("want 5 paintings; got %d", d.Len())
	}
	wantInd := []string{"Alizarin_Crimson", "Bright_Red", "Dark_Sienna", "Phthalo_Green", "Titanium_White"}
	if !de(wantInd, d.Indicators) {
		t.Errorf("want indicators %v; got %v", wantInd, d.Indicators)
	}
	if len(d.Columns) != 15 {
		t.Errorf("want 15 columns; got %d", len(d.Columns))
	}

	p := d.Paintings[1]
	if p.Title != "Mt. McKinley" || p.Season != 1 || p.Episode != 2 || p.Index != 283 {
		t.Errorf("bad row 1: %+v", p)
	}
	if want := []string{"Alizarin Crimson", "Dark Sienna", "Titanium White"}; !de(want, p.Colors) {
		t.Errorf("want colors %q; got %q", want, p.Colors)
	}

	// Boolean indicator cells.
	if got := d.Uses["Alizarin_Crimson"][4]; got != 1 {
		t.Errorf("want True parsed as 1; got %v", got)
	}
	if got := d.Uses["Bright_Red"][4]; got != 0 {
		t.Errorf("want False parsed as 0; got %v", got)
	}
}

func TestParseAligned(t *testing.T) {
	d := loadTestdata(t)
	for i, p := range d.Paintings {
		if len(p.Colors) != len(p.Hexes) {
			t.Errorf("row %d: %d colors but %d hex codes", i, len(p.Colors), len(p.Hexes))
		}
		if len(p.Colors) != p.NumColors {
			t.Errorf("row %d: num_colors is %d but %d colors listed", i, p.NumColors, len(p.Colors))
		}
	}
}

func TestParseErrors(t *testing.T) {
	const header = "painting_title,season,colors,color_hex,Bright_Red\n"
	for _, test := range []struct {
		input string
		want  string
	}{
		{"", "empty dataset"},
		{"painting_title,season,colors\n", `missing column "color_hex"`},
		{header + `X,1,"['A', 'B']",['#000000'],1` + "\n", "2 colors but 1 hex codes"},
		{header + `X,one,['A'],['#000000'],1` + "\n", "column season"},
		{header + `X,1,['A'],['#000000'],maybe` + "\n", "column Bright_Red"},
		{"painting_title,season,colors,color_hex,A,A\n", "duplicate column"},
	} {
		_, err := Parse(strings.NewReader(test.input))
		if err == nil {
			t.Errorf("Parse(%q): want error containing %q; got nil", test.input, test.want)
		} else if !strings.Contains(err.Error(), test.want) {
			t.Errorf("Parse(%q): want error containing %q; got %v", test.input, test.want, err)
		}
	}
}

func TestFetch(t *testing.T) {
	data, err := os.ReadFile("testdata/paintings.csv")
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/paintings.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Length", fmt.Sprint(len(data)))
		w.Write(data)
	}))
	defer srv.Close()

	var lastRead, lastTotal int64
	d, err := Fetch(context.Background(), srv.Client(), srv.URL+"/paintings.csv", func(read, total int64) {
		lastRead, lastTotal = read, total
	})
	if err != nil {
		t.Fatal(err)
	}
	if d.Len() != 5 {
		t.Errorf("want 5 paintings; got %d", d.Len())
	}
	if lastRead != int64(len(data)) || lastTotal != int64(len(data)) {
		t.Errorf("want progress %d/%d; got %d/%d", len(data), len(data), lastRead, lastTotal)
	}

	_, err = Fetch(context.Background(), srv.Client(), srv.URL+"/missing.csv", nil)
	if err == nil || !strings.Contains(err.Error(), "404") {
		t.Errorf("want 404 error; got %v", err)
	}
}
