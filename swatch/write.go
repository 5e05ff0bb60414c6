// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swatch

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Output formats understood by Write.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
	FormatPDF  = "pdf"
)

// FormatOf returns the output format for path based on its
// extension.
func FormatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".svg":
		return FormatSVG, nil
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".pdf":
		return FormatPDF, nil
	case "":
		return "", errors.Errorf("%s: no file extension; use .svg, .png, .jpg, or .pdf", path)
	default:
		return "", errors.Errorf("%s: unsupported format %s; use .svg, .png, .jpg, or .pdf", path, ext)
	}
}

// canvas returns a canvas for format at the size given by o. DPI
// only affects raster formats.
func canvas(format string, o Options) (vg.CanvasWriterTo, error) {
	w, h := o.size()
	switch format {
	case FormatSVG:
		return vgsvg.New(w, h), nil
	case FormatPDF:
		return vgpdf.New(w, h), nil
	case FormatPNG:
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(o.DPI))}, nil
	case FormatJPEG:
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(o.DPI))}, nil
	}
	return nil, errors.Errorf("unknown format %q", format)
}

// Write writes c to w in format at the size given by o.
func Write(w io.Writer, format string, c Chart, o Options) error {
	o = o.orDefault()
	cw, err := canvas(format, o)
	if err != nil {
		return err
	}
	p, err := c.Plot(o)
	if err != nil {
		return err
	}
	p.Draw(draw.New(cw))
	_, err = cw.WriteTo(w)
	return err
}

// WriteFile writes c to path. The format is chosen from the
// extension of path.
func WriteFile(path string, c Chart, o Options) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)
	if err := Write(bw, format, c, o); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing %s", path)
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
