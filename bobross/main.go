// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bobross explores the colors of Bob Ross paintings.
//
// bobross loads the painting dataset (from the network by default, or
// from a local CSV with -data) and runs one subcommand against it:
//
//	names    list painting titles, or pick one at random
//	colors   list the paint colors and their hex codes
//	show     print rows and columns of the dataset
//	blobs    draw one labeled disc per color of a painting
//	cloud    draw a cloud of points per color of a painting
//	season   summarize color use by season
//	tour     run a guided sequence of the above
//
// Charts are written as SVG, PNG, JPEG, or PDF depending on the
// extension of the -o file. Without -o, a single chart is written to
// stdout as SVG. The dpi setting only affects PNG and JPEG.
//
// Defaults can be set in a TOML file, by default
// $XDG_CONFIG_HOME/bobross/config.toml:
//
//	url = "https://example.com/bob_ross_paintings.csv"
//	painting = "Mt. McKinley"
//	seed = 1
//	width = 6
//	height = 4
//	dpi = 150
//
// Command line flags override the file.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/littlebuttermilk/funplay/internal/status"
	"github.com/littlebuttermilk/funplay/paintings"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetOutput(os.Stderr)

	err := run(os.Args[1:], os.Stdout)
	switch err := errors.Cause(err).(type) {
	case nil:
	case *usageError:
		if err.msg != "" {
			fmt.Fprintln(os.Stderr, err.msg)
		}
		os.Exit(2)
	case *paintings.ArgError:
		fmt.Fprintln(os.Stderr, err.Msg)
		os.Exit(2)
	default:
		log.Fatal(err)
	}
}

// usageError reports bad command line arguments. Its message has
// already been printed if it is empty.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	if e.msg == "" {
		return "usage error"
	}
	return e.msg
}

func usagef(format string, args ...interface{}) error {
	return &usageError{fmt.Sprintf(format, args...)}
}

// parseFlags parses args with fs and converts flag errors into
// usage errors. fs must use flag.ContinueOnError.
func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return &usageError{}
	}
	return nil
}

// A session holds everything a subcommand needs.
type session struct {
	cfg *Config
	out io.Writer
	rng *rand.Rand

	data *paintings.Dataset
}

// dataset returns the painting dataset, loading it on first use.
func (s *session) dataset() (*paintings.Dataset, error) {
	if s.data != nil {
		return s.data, nil
	}
	var d *paintings.Dataset
	var err error
	if s.cfg.Data != "" {
		log.Debugf("reading %s", s.cfg.Data)
		var f *os.File
		f, err = os.Open(s.cfg.Data)
		if err != nil {
			return nil, err
		}
		d, err = paintings.Parse(f)
		f.Close()
		if err != nil {
			return nil, errors.Wrap(err, s.cfg.Data)
		}
	} else {
		log.Debugf("fetching %s", s.cfg.URL)
		var read int64
		sr := status.New()
		progress := func(n, total int64) {
			read = n
			if total > 0 {
				sr.Progress(fmt.Sprintf("fetching dataset: %d/%d KiB", n>>10, total>>10), float64(n)/float64(total))
			}
		}
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		d, err = paintings.Fetch(ctx, nil, s.cfg.URL, progress)
		sr.Stop()
		if err != nil {
			return nil, err
		}
		log.Debugf("read %d bytes", read)
	}
	log.Debugf("parsed %d paintings with %d color columns", d.Len(), len(d.Indicators))
	s.data = d
	return d, nil
}

type subcommand struct {
	name, desc string
	run        func(s *session, args []string) error
}

var subcommands []subcommand

func init() {
	// Assigned in init to break the initialization cycle through
	// cmdTour.
	subcommands = []subcommand{
		{"names", "list painting titles", cmdNames},
		{"colors", "list paint colors and hex codes", cmdColors},
		{"show", "print rows and columns of the dataset", cmdShow},
		{"blobs", "draw one labeled disc per color of a painting", cmdBlobs},
		{"cloud", "draw a cloud of points per color of a painting", cmdCloud},
		{"season", "summarize color use by season", cmdSeason},
		{"tour", "run a guided tour of the other subcommands", cmdTour},
	}
}

func lookup(name string) *subcommand {
	for i := range subcommands {
		if subcommands[i].name == name {
			return &subcommands[i]
		}
	}
	return nil
}

// run parses the global flags in args and runs a subcommand, writing
// results to out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("bobross", flag.ContinueOnError)
	fs.Usage = func() {
		w := fs.Output()
		fmt.Fprintf(w, "Usage: bobross [flags] <subcommand> [args...]\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nSubcommands:\n")
		for _, sub := range subcommands {
			fmt.Fprintf(w, "  %-8s %s\n", sub.name, sub.desc)
		}
	}
	var (
		flagURL     = fs.String("url", paintings.DefaultURL, "fetch the dataset from `url`")
		flagData    = fs.String("data", "", "read the dataset from CSV `file` instead of fetching it")
		flagConfig  = fs.String("config", "", "read defaults from TOML `file` (default "+defaultConfigPath()+")")
		flagSeed    = fs.Int64("seed", 0, "random `seed` (default: time based)")
		flagVerbose = fs.Bool("v", false, "print debug logging")
	)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	if *flagVerbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.WarnLevel)
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return &usageError{}
	}

	cfgPath, explicit := *flagConfig, true
	if cfgPath == "" {
		cfgPath, explicit = defaultConfigPath(), false
	}
	cfg, err := loadConfig(cfgPath, explicit)
	if err != nil {
		return err
	}
	// Flags set on the command line override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "url":
			cfg.URL = *flagURL
		case "data":
			cfg.Data = *flagData
		case "seed":
			cfg.Seed = *flagSeed
		}
	})
	if cfg.URL == "" {
		cfg.URL = paintings.DefaultURL
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debugf("random seed %d", seed)

	name := fs.Arg(0)
	sub := lookup(name)
	if sub == nil {
		fs.Usage()
		return usagef("unknown subcommand %q", name)
	}
	s := &session{
		cfg: cfg,
		out: out,
		rng: rand.New(rand.NewSource(seed)),
	}
	return sub.run(s, fs.Args()[1:])
}
