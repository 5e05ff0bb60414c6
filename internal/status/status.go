// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package status shows a live progress line with an estimated time
// of completion on a terminal.
package status

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aclements/go-moremath/fit"
	"golang.org/x/crypto/ssh/terminal"
)

// A Reporter prints progress to a terminal. If its output is not a
// terminal, progress updates are dropped and messages are printed
// one per line.
type Reporter struct {
	w      io.Writer
	update chan<- update
	done   chan bool
}

type update struct {
	progress float64
	message  string
}

// New returns a Reporter that writes to standard error.
func New() *Reporter {
	live := os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(os.Stderr.Fd()))
	return newReporter(os.Stderr, live)
}

func newReporter(w io.Writer, live bool) *Reporter {
	r := &Reporter{w: w}
	if live {
		ch := make(chan update)
		r.update = ch
		go r.loop(ch)
	}
	return r
}

// Progress sets the status line to msg with frac of the work done.
func (r *Reporter) Progress(msg string, frac float64) {
	if r.update != nil {
		r.update <- update{message: msg, progress: frac}
	}
}

// Message prints msg above the status line.
func (r *Reporter) Message(msg string) {
	if r.update == nil {
		fmt.Fprintln(r.w, msg)
	} else {
		r.update <- update{message: msg, progress: -1}
	}
}

// Stop clears the status line. The Reporter prints messages one per
// line after Stop.
func (r *Reporter) Stop() {
	if r.update != nil {
		r.done = make(chan bool)
		close(r.update)
		<-r.done
		r.update = nil
	}
}

// halfLife is the decay of the weight of old progress samples in the
// completion estimate.
const halfLife = 150 * time.Second

// estimateEnd fits a line to progress over times (in nanoseconds
// since some start) and returns the time at which progress reaches 1.
// Samples are weighted by their age relative to now.
func estimateEnd(now float64, times, progress []float64) (float64, bool) {
	if len(times) < 2 {
		return 0, false
	}
	weights := make([]float64, len(times))
	for i, t := range times {
		weights[i] = math.Exp(-math.Ln2 / float64(halfLife) * (now - t))
	}
	params := fit.PolynomialRegression(times, progress, weights, 1).Coefficients
	a, b := params[0], params[1]
	if b <= 0 || math.IsNaN(a) || math.IsNaN(b) {
		return 0, false
	}
	return (1 - a) / b, true
}

func (r *Reporter) loop(updates <-chan update) {
	const resetLine = "\r\x1b[2K"
	const wrapOff = "\x1b[?7l"
	const wrapOn = "\x1b[?7h"

	tick := time.NewTicker(time.Second / 4)
	defer tick.Stop()

	var end time.Time
	t0 := time.Now()

	var times, progress []float64
	var msg string
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				fmt.Fprint(r.w, resetLine)
				close(r.done)
				return
			}
			if u.progress == -1 {
				fmt.Fprint(r.w, resetLine)
				fmt.Fprintln(r.w, u.message)
				break
			}
			now := float64(time.Since(t0))
			times = append(times, now)
			progress = append(progress, u.progress)
			msg = u.message

			end = time.Time{}
			if e, ok := estimateEnd(now, times, progress); ok {
				end = t0.Add(time.Duration(e))
			}

		case <-tick.C:
		}

		eta := "unknown"
		if !end.IsZero() {
			d := time.Until(end)
			d -= d % time.Second
			if d <= 0 {
				eta = "0s"
			} else {
				eta = d.String()
			}
		}
		if msg == "" {
			eta = "ETA " + eta
		} else {
			eta = ", ETA " + eta
		}
		fmt.Fprintf(r.w, "%s%s%s%s%s", resetLine, wrapOff, msg, eta, wrapOn)
	}
}
