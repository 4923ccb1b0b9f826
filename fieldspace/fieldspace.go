// Package fieldspace declares the external namespace capability the
// expression core depends on. A concrete FieldSpace (symbol table, query
// planner scope, etc.) is supplied by the caller; this package owns only
// the interface.
package fieldspace

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// FieldSpace resolves a dotted field name to a FieldEntry.
type FieldSpace interface {
	Field(name string) (FieldEntry, bool)
}

// FieldEntry describes one resolvable name: its type and, for fields that
// carry a row-level filter, its filter list.
type FieldEntry interface {
	Type() (dataType valtype.DataType, aggregate bool)
	FilterList() ([]FilterCond, bool)
}

// FilterCond is one condition in a field's filter list, as supplied by the
// FieldSpace rather than by an ExprFilter node written in the query.
type FilterCond struct {
	Value     fragment.Seq
	Aggregate bool
}
