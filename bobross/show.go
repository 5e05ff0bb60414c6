// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/littlebuttermilk/funplay/internal/tsv"
	"github.com/littlebuttermilk/funplay/paintings"
)

func cmdShow(s *session, args []string) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bobross show [flags]\n\n")
		fmt.Fprintf(fs.Output(), "Columns are selected by name: a comma separated list, or an\n")
		fmt.Fprintf(fs.Output(), "inclusive range first:last where either end may be omitted.\n\n")
		fs.PrintDefaults()
	}
	flagSeason := fs.Int("season", 0, "show only rows from `season` (default all)")
	flagRows := fs.String("rows", ":", "show rows with index in `lo:hi`")
	flagCols := fs.String("cols", "", "show only `columns`")
	flagShape := fs.Bool("shape", false, "print only the number of rows and columns")
	flagTSV := fs.Bool("tsv", false, "print tab-separated values")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return &usageError{}
	}
	if *flagSeason < 0 {
		return usagef("bad season %d", *flagSeason)
	}

	d, err := s.dataset()
	if err != nil {
		return err
	}
	t := d.Table()
	if *flagSeason > 0 {
		// Row ranges apply within the season.
		if t, err = paintings.FilterSeason(t, *flagSeason); err != nil {
			return err
		}
	}
	lo, hi, err := paintings.SliceRange(t.Len(), *flagRows)
	if err != nil {
		return usagef("%v", err)
	}
	cols, err := paintings.SelectColumns(t.Columns(), *flagCols)
	if err != nil {
		return usagef("%v", err)
	}
	t, err = paintings.Project(t, lo, hi, cols)
	if err != nil {
		return err
	}

	switch {
	case *flagShape:
		fmt.Fprintf(s.out, "%d rows, %d columns\n", t.Len(), len(t.Columns()))
	case *flagTSV:
		return tsv.Write(s.out, t, true)
	default:
		table.Fprint(s.out, t)
	}
	return nil
}
