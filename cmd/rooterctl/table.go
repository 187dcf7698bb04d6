package main

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// table aligns tab separated rows into columns and holds the first write error.
type table struct {
	w   *tabwriter.Writer
	err error
}

func newTable(output io.Writer) *table {
	return &table{w: tabwriter.NewWriter(output, 0, 1, 4, ' ', 0)}
}

// row formats a row, doing nothing once a write failed.
func (t *table) row(format string, a ...any) {
	if t.err == nil {
		_, t.err = fmt.Fprintf(t.w, format, a...)
	}
}

// flush writes out buffered rows and returns the first error encountered.
func (t *table) flush() error {
	if t.err != nil {
		return t.err
	}
	return t.w.Flush()
}
