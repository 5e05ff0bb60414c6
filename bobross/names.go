// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"

	"github.com/aclements/go-gg/table"
	"github.com/littlebuttermilk/funplay/paintings"
)

func cmdNames(s *session, args []string) error {
	fs := flag.NewFlagSet("names", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bobross names [flags]\n")
		fs.PrintDefaults()
	}
	flagRandom := fs.Bool("random", false, "print one title chosen at random")
	flagRows := fs.String("rows", ":", "print titles with index in `lo:hi`")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return &usageError{}
	}

	d, err := s.dataset()
	if err != nil {
		return err
	}
	if *flagRandom {
		fmt.Fprintln(s.out, d.RandomTitle(s.rng))
		return nil
	}
	titles := d.Titles()
	lo, hi, err := paintings.SliceRange(len(titles), *flagRows)
	if err != nil {
		return usagef("%v", err)
	}
	for _, title := range titles[lo:hi] {
		fmt.Fprintln(s.out, title)
	}
	return nil
}

func cmdColors(s *session, args []string) error {
	fs := flag.NewFlagSet("colors", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bobross colors [flags]\n")
		fs.PrintDefaults()
	}
	flagCheck := fs.Bool("check", false, "check that every painting uses the same hex code for each color")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return &usageError{}
	}

	d, err := s.dataset()
	if err != nil {
		return err
	}
	if *flagCheck {
		if err := d.CheckColors(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "hex codes agree across %d paintings\n", d.Len())
		return nil
	}

	ct := d.ColorTable()
	names := ct.Names()
	hexes := make([]string, len(names))
	for i, name := range names {
		hexes[i], _ = ct.Hex(name)
	}
	table.Fprint(s.out, new(table.Builder).
		Add("color", names).
		Add("hex", hexes).
		Done())
	return nil
}
