// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"
)

// tourScript is run by the tour subcommand. Lines starting with # are
// printed as headings. Every other line is a subcommand; -o paths are
// relative to the tour directory.
const tourScript = `
# The first few paintings
names -rows :5
# A painting picked at random
names -random
# The paint colors
colors
colors -check
# The first rows of the dataset, title through number of colors
show -rows :5 -cols painting_title:num_colors
show -shape
# Indicator columns for a few paintings
show -rows 2:7 -cols Alizarin_Crimson:Bright_Red
# Paintings using each color in every season
season -stat total -color all -o season-total.svg
season -stat total -color all -chart stacked -o season-stacked.pdf
# Paintings using Alizarin Crimson by season, and the season 3 rows
season -stat total -color "Alizarin Crimson" -chart bar -o alizarin-crimson.png
show -season 3 -cols painting_title,Alizarin_Crimson
# Fraction of paintings in each season using Dark Sienna
season -stat mean -color "Dark Sienna" -chart line -o dark-sienna.png
# The palette of a single painting
blobs -o blobs.png "Downstream View"
cloud -o cloud.png "Downstream View"
# The palette of a random painting
cloud -random -n 50 -o random-cloud.png
`

// A tourStep is one line of the tour script.
type tourStep struct {
	line    string
	heading bool
	args    []string
}

// parseTour splits script into steps and places -o outputs in dir.
func parseTour(script, dir string) ([]tourStep, error) {
	var steps []tourStep
	for i, line := range strings.Split(script, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			steps = append(steps, tourStep{line: strings.TrimSpace(line[1:]), heading: true})
			continue
		}
		args, err := shellquote.Split(line)
		if err != nil {
			return nil, errors.Wrapf(err, "tour line %d", i+1)
		}
		if lookup(args[0]) == nil {
			return nil, errors.Errorf("tour line %d: unknown subcommand %q", i+1, args[0])
		}
		for j := 1; j+1 < len(args); j++ {
			if args[j] == "-o" {
				args[j+1] = filepath.Join(dir, args[j+1])
			}
		}
		steps = append(steps, tourStep{line: line, args: args})
	}
	return steps, nil
}

func cmdTour(s *session, args []string) error {
	fs := flag.NewFlagSet("tour", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: bobross tour [flags]\n")
		fs.PrintDefaults()
	}
	flagDir := fs.String("d", ".", "write charts to `dir`")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return &usageError{}
	}
	if err := os.MkdirAll(*flagDir, 0777); err != nil {
		return err
	}

	steps, err := parseTour(tourScript, *flagDir)
	if err != nil {
		return err
	}
	for _, step := range steps {
		if step.heading {
			fmt.Fprintf(s.out, "\n== %s\n", step.line)
			continue
		}
		fmt.Fprintf(s.out, "$ bobross %s\n", step.line)
		if err := lookup(step.args[0]).run(s, step.args[1:]); err != nil {
			return errors.Wrapf(err, "%s", step.line)
		}
	}
	return nil
}
