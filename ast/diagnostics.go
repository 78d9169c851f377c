package ast

import (
	"fmt"
	"sort"
)

// DiagnosticCategory classifies a Diagnostic; only the recoverable
// category is produced by this module today, but the field exists so a
// caller merging checker diagnostics in can tell them apart.
type DiagnosticCategory int

const (
	CategoryError DiagnosticCategory = iota
	CategoryWarning
)

// Diagnostic is one entry in the emit result's diagnostics list.
type Diagnostic struct {
	FileName string
	Pos      int
	Length   int
	Category DiagnosticCategory
	Code     int
	Message  string
}

// DiagnosticList accumulates diagnostics during emission and produces a
// sorted, deduplicated final list: duplicate diagnostics (same file,
// position, code, and message) are removed by the final sort-and-dedup
// step.
type DiagnosticList struct {
	items []Diagnostic
}

// Add appends d to the list.
func (l *DiagnosticList) Add(d Diagnostic) {
	l.items = append(l.items, d)
}

// Errorf is a convenience wrapper around Add for the common
// position+message case.
func (l *DiagnosticList) Errorf(fileName string, pos, length, code int, format string, args ...any) {
	l.Add(Diagnostic{
		FileName: fileName,
		Pos:      pos,
		Length:   length,
		Category: CategoryError,
		Code:     code,
		Message:  fmt.Sprintf(format, args...),
	})
}

// SortedUnique returns the accumulated diagnostics sorted by
// (FileName, Pos, Code) with exact duplicates removed.
func (l *DiagnosticList) SortedUnique() []Diagnostic {
	items := append([]Diagnostic(nil), l.items...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].FileName != items[j].FileName {
			return items[i].FileName < items[j].FileName
		}
		if items[i].Pos != items[j].Pos {
			return items[i].Pos < items[j].Pos
		}
		if items[i].Code != items[j].Code {
			return items[i].Code < items[j].Code
		}
		return items[i].Message < items[j].Message
	})

	out := items[:0:0]
	for i, d := range items {
		if i > 0 {
			p := items[i-1]
			if p.FileName == d.FileName && p.Pos == d.Pos && p.Code == d.Code && p.Message == d.Message {
				continue
			}
		}
		out = append(out, d)
	}
	return out
}
