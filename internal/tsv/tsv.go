// Copyright 2021 The funplay Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tsv writes go-gg tables as tab-separated values.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/table"
)

// Write writes every group of g to w, one row per line. If header is
// true, the first line lists the column names.
func Write(w io.Writer, g table.Grouping, header bool) (err error) {
	buf := bufio.NewWriter(w)
	defer func() {
		if ferr := buf.Flush(); err == nil {
			err = ferr
		}
	}()

	cols := g.Columns()
	if header {
		fmt.Fprintf(buf, "%s\n", strings.Join(cols, "\t"))
	}

	for _, gid := range g.Tables() {
		t := g.Table(gid)
		vs := make([]reflect.Value, len(cols))
		for i, name := range cols {
			vs[i] = reflect.ValueOf(t.Column(name))
		}
		for i := 0; i < t.Len(); i++ {
			for j, v := range vs {
				if j > 0 {
					buf.WriteString("\t")
				}
				buf.WriteString(clean(fmt.Sprint(v.Index(i))))
			}
			if _, err := buf.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// clean replaces characters that would break the row structure.
func clean(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}
