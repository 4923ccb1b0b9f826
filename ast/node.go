// Package ast defines the expression abstract syntax tree: one Go type
// per syntactic form, each implementing the Translate/Apply/
// RequestTranslation contract against a fieldspace.FieldSpace and a
// diag.Sink. Nodes are constructed by the parser (out of scope here),
// never mutated after construction except to record diagnostics against
// their own source location, and own their children outright: the AST is
// a tree, never a DAG.
package ast

import (
	"github.com/malloydata/exprcore/diag"
	"github.com/malloydata/exprcore/fieldspace"
	"github.com/malloydata/exprcore/valtype"
)

// Node is the position contract every AST node satisfies, matching
// compiler/ast's Pos()/End() convention.
type Node interface {
	Pos() int
	End() int
}

// Loc is the embeddable source-location struct every concrete node type
// carries.
type Loc struct {
	First int
	Last  int
}

func (l Loc) Pos() int { return l.First }
func (l Loc) End() int { return l.Last }

// Ctx bundles the two collaborators every Translate/Apply call needs: the
// namespace to resolve field references against and the sink diagnostics
// are appended to.
type Ctx struct {
	FS   fieldspace.FieldSpace
	Sink *diag.Sink
}

// Expr is the interface every expression AST node implements.
type Expr interface {
	Node

	// Translate returns this node's value. For a node with no value in
	// isolation (Range, ExprAlternationTree, a Pick missing its else
	// clause), Translate logs a diagnostic and returns an error-typed
	// ExprValue — see RequestTranslation for the non-diagnosing variant
	// a caller can probe first.
	Translate(cx *Ctx) valtype.ExprValue

	// RequestTranslation behaves like Translate, except that ok is false
	// (with no diagnostic logged) when this node cannot yield a value in
	// isolation — Range, ExprAlternationTree, and a Pick missing its else
	// clause; ExprParens forwards to its inner node and so denies exactly
	// when that node does. Every other node is fully value-bearing and
	// implements this as Translate(cx), true: it denies nothing, so it logs whatever
	// Translate itself would. A caller that needs a true side-effect-free
	// probe (e.g. Pick's value-mode check) only gets that guarantee
	// against the genuinely partial nodes, which is the case that matters:
	// those are the ones a caller must be able to try without committing
	// to a diagnostic.
	RequestTranslation(cx *Ctx) (value valtype.ExprValue, ok bool)

	// Apply composes this node (as the right-hand operand) against left
	// under op. The default implementation translates both sides and
	// delegates to engine.ApplyBinary; Range, ExprAlternationTree, and
	// Pick override it to implement partial-expression distribution.
	Apply(cx *Ctx, op string, left Expr) valtype.ExprValue
}

// ElementType is implemented by nodes that carry a human-readable tag
// distinct from their Go type name. Type-check diagnostics do not read it:
// they use the elementType string each caller passes to typeCheck.
type ElementType interface {
	ElementType() string
}
