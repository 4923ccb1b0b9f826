// Package exprtest provides a minimal in-memory FieldSpace for table-
// driven tests across the ast, engine, and compile packages.
package exprtest

import (
	"github.com/malloydata/exprcore/fieldspace"
	"github.com/malloydata/exprcore/valtype"
)

// Space is a map-backed fieldspace.FieldSpace.
type Space map[string]Entry

// Entry is a fieldspace.FieldEntry literal, safe to construct inline in
// test tables.
type Entry struct {
	DataType  valtype.DataType
	Aggregate bool
	Filters   []fieldspace.FilterCond
	HasFilter bool
}

func (s Space) Field(name string) (fieldspace.FieldEntry, bool) {
	e, ok := s[name]
	return e, ok
}

func (e Entry) Type() (valtype.DataType, bool) { return e.DataType, e.Aggregate }

func (e Entry) FilterList() ([]fieldspace.FilterCond, bool) {
	if !e.HasFilter {
		return nil, false
	}
	return e.Filters, true
}
