// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/littlebuttermilk/funplay/internal/status"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/littlebuttermilk/funplay/swatch"
	log "github.com/sirupsen/logrus"
)

func cmdBlobs(s *session, args []string) error {
	return drawPaintings(s, "blobs", args, func(fs *flag.FlagSet) func(*paintings.Painting) swatch.Chart {
		return func(p *paintings.Painting) swatch.Chart {
			return swatch.BlobChart(p.Title, swatch.Blobs(p, s.rng))
		}
	})
}

func cmdCloud(s *session, args []string) error {
	return drawPaintings(s, "cloud", args, func(fs *flag.FlagSet) func(*paintings.Painting) swatch.Chart {
		n := fs.Int("n", swatch.CloudSize, "draw `n` points per color")
		return func(p *paintings.Painting) swatch.Chart {
			return swatch.CloudChart(p.Title, swatch.Cloud(p, s.rng, *n))
		}
	})
}

// drawPaintings implements the blobs and cloud subcommands. setup
// registers any extra flags and returns the chart constructor.
func drawPaintings(s *session, name string, args []string, setup func(*flag.FlagSet) func(*paintings.Painting) swatch.Chart) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: bobross %s [flags] [titles...]\n\n", name)
		fmt.Fprintf(w, "With no titles, draws the configured painting (default %q).\n", swatch.DefaultPainting)
		fmt.Fprintf(w, "With several titles, -o file.ext writes file-1.ext, file-2.ext, and so on.\n\n")
		fs.PrintDefaults()
	}
	flagOut := fs.String("o", "", "write chart to `file` (.svg, .png, .jpg, or .pdf; default SVG on stdout)")
	flagRandom := fs.Bool("random", false, "draw a painting chosen at random")
	chart := setup(fs)
	if err := parseFlags(fs, args); err != nil {
		return err
	}

	d, err := s.dataset()
	if err != nil {
		return err
	}
	titles := fs.Args()
	if *flagRandom {
		titles = append(titles, d.RandomTitle(s.rng))
	}
	if len(titles) == 0 {
		titles = []string{s.cfg.Painting}
	}
	if len(titles) > 1 && *flagOut == "" {
		return usagef("%s: -o is required to draw more than one painting", name)
	}

	// Look up every title before drawing anything.
	ps := make([]*paintings.Painting, len(titles))
	for i, title := range titles {
		if ps[i], err = d.Find(title); err != nil {
			return err
		}
	}

	sr := status.New()
	defer sr.Stop()
	for i, p := range ps {
		sr.Progress(fmt.Sprintf("drawing %d/%d: %s", i+1, len(ps), p.Title), float64(i)/float64(len(ps)))
		path := outputPath(*flagOut, i, len(ps))
		if err := writeChart(s, chart(p), path); err != nil {
			return err
		}
		if path != "" {
			sr.Message(fmt.Sprintf("wrote %s (%s)", path, p.Title))
		}
	}
	return nil
}

// outputPath returns the output file for the i'th of n charts, which
// is base itself if n is 1.
func outputPath(base string, i, n int) string {
	if base == "" || n == 1 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(base, ext), i+1, ext)
}

// writeChart writes c to path, or as SVG to the session output if
// path is empty.
func writeChart(s *session, c swatch.Chart, path string) error {
	o := s.cfg.options()
	if path == "" {
		return swatch.Write(s.out, swatch.FormatSVG, c, o)
	}
	if err := swatch.WriteFile(path, c, o); err != nil {
		return err
	}
	log.Debugf("wrote %s", path)
	return nil
}
