package ast

import (
	"github.com/malloydata/exprcore/engine"
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// PickWhen is one "when ... pick ..." clause. Pick is nil when the clause
// omits its pick expression — legal only in apply mode, where the omitted
// pick defaults to the expression Pick.Apply is being composed against.
type PickWhen struct {
	Loc
	Pick Expr // may be nil
	When Expr
}

// Pick is Malloy's "pick"/"case"-like construct. It is two-modal:
//
//   - Value mode: legal only when Else is set and every choice's When is
//     a full value-bearing boolean expression and every choice has a
//     Pick. Lowers to CASE WHEN when THEN pick ... ELSE else END.
//   - Apply mode: Pick.Apply(fs, op, other) treats each choice's When as
//     a partial compared against other via When.Apply(fs, "=", other),
//     and each choice's Pick (defaulting to other when nil) as the
//     then-branch. Else defaults to other.
type Pick struct {
	Loc
	Choices []PickWhen
	Else    Expr // nil when absent
}

func (e *Pick) ElementType() string { return "pick" }

func (e *Pick) Translate(cx *Ctx) valtype.ExprValue {
	v, ok := e.RequestTranslation(cx)
	if !ok {
		cx.Sink.Log(e, "pick expression has no value")
		return valtype.ErrorFor("pick is partial")
	}
	return v
}

// RequestTranslation is Pick's value-mode attempt: it denies (ok=false)
// without logging only for the structural reasons a caller composing Pick
// as a partial (via Apply) needs to distinguish from a real error: a
// missing Else, a choice missing its Pick, or a When that itself denies.
// A diagnosable failure reached once the walk is underway — a type
// mismatch, an untypable all-null result — is reported as an error-typed
// value with ok=true instead, since by then a diagnostic has already
// been logged once and denying here would make Translate log again.
func (e *Pick) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	if e.Else == nil {
		return valtype.ExprValue{}, false
	}
	whens := make([]valtype.ExprValue, len(e.Choices))
	for i, c := range e.Choices {
		if c.Pick == nil {
			return valtype.ExprValue{}, false
		}
		when, ok := c.When.RequestTranslation(cx)
		if !ok {
			return valtype.ExprValue{}, false
		}
		whens[i] = when
	}

	var resultType *valtype.ExprValue
	aggregate := false
	seq := fragment.Seq{fragment.Text("CASE")}
	for i, c := range e.Choices {
		when := whens[i]
		if !typeCheck(cx, c.When, "pick", when, []valtype.Shape{valtype.ShapeBoolean}) {
			return valtype.ErrorFor("non-boolean pick condition"), true
		}
		pick, _ := c.Pick.RequestTranslation(cx)
		aggregate = aggregate || when.Aggregate || pick.Aggregate
		resultType = foldPickType(cx, c.Pick, resultType, pick)
		seq = append(seq, fragment.Text(" WHEN "))
		seq = append(seq, when.Value...)
		seq = append(seq, fragment.Text(" THEN "))
		seq = append(seq, pick.Value...)
	}
	els, ok := e.Else.RequestTranslation(cx)
	if !ok {
		return valtype.ExprValue{}, false
	}
	aggregate = aggregate || els.Aggregate
	resultType = foldPickType(cx, e.Else, resultType, els)
	seq = append(seq, fragment.Text(" ELSE "))
	seq = append(seq, els.Value...)
	seq = append(seq, fragment.Text(" END"))

	// Past this point a failure is diagnosed exactly once (a type mismatch
	// by foldPickType, an untypable all-null result here): report the
	// error value itself rather than denying, so Translate doesn't
	// double-log.
	if resultType != nil && resultType.DataType == valtype.Null {
		cx.Sink.Log(e, "pick statement type not computable")
		return valtype.ErrorFor("pick statement type not computable"), true
	}
	if resultType == nil || resultType.DataType == valtype.Error {
		return valtype.ErrorFor("pick statement type not computable"), true
	}
	return valtype.ExprValue{DataType: resultType.DataType, Aggregate: aggregate, Value: fragment.Compress(seq)}, true
}

// foldPickType accumulates the branch-by-branch result type for Pick and
// ExprCoalesce under the same loose-equality discipline ExprCase applies
// inline. A mismatch turns acc into the error sentinel rather than merely
// logging: every later branch is then a no-op fold, so the caller's final
// nil/Error check reliably reports the mismatch instead of silently
// keeping the first branch's type.
func foldPickType(cx *Ctx, loc Node, acc *valtype.ExprValue, v valtype.ExprValue) *valtype.ExprValue {
	if v.DataType == valtype.Error {
		return acc
	}
	if acc == nil {
		return &v
	}
	if acc.DataType == valtype.Error {
		return acc
	}
	if v.DataType != valtype.Null && !valtype.LooseTypeEqual(*acc, v) {
		cx.Sink.Log(loc, "Mismatched pick clause types")
		errVal := valtype.ErrorFor("mismatched clause types")
		return &errVal
	}
	if acc.DataType == valtype.Null && v.DataType != valtype.Null {
		return &v
	}
	return acc
}

// Apply implements apply mode: compare left against every choice's When
// with "=" and combine with the choice's (or default) then-branch in a
// synthesized CASE expression.
func (e *Pick) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	otherVal := left.Translate(cx)
	if otherVal.IsError() {
		return valtype.ErrorFor("other operand is already an error")
	}

	var resultType *valtype.ExprValue
	aggregate := otherVal.Aggregate
	seq := fragment.Seq{fragment.Text("CASE")}
	for _, c := range e.Choices {
		cond := c.When.Apply(cx, engine.Eq, left)
		if cond.IsError() {
			return valtype.ErrorFor("pick when-clause apply failed")
		}
		then := otherVal
		if c.Pick != nil {
			v, ok := c.Pick.RequestTranslation(cx)
			if !ok {
				cx.Sink.Log(c.Pick, "pick then-clause has no value")
				return valtype.ErrorFor("pick then-clause is partial")
			}
			then = v
		}
		aggregate = aggregate || cond.Aggregate || then.Aggregate
		resultType = foldPickType(cx, e, resultType, then)
		seq = append(seq, fragment.Text(" WHEN "))
		seq = append(seq, cond.Value...)
		seq = append(seq, fragment.Text(" THEN "))
		seq = append(seq, then.Value...)
	}
	elseVal := otherVal
	if e.Else != nil {
		v, ok := e.Else.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(e.Else, "pick else-clause has no value")
			return valtype.ErrorFor("pick else-clause is partial")
		}
		elseVal = v
	}
	aggregate = aggregate || elseVal.Aggregate
	resultType = foldPickType(cx, e, resultType, elseVal)
	seq = append(seq, fragment.Text(" ELSE "))
	seq = append(seq, elseVal.Value...)
	seq = append(seq, fragment.Text(" END"))

	// resultType.DataType == Error means foldPickType already logged a
	// mismatch diagnostic; only the nil case (no branch ever produced a
	// usable type) still needs its own diagnostic here.
	if resultType == nil {
		cx.Sink.Log(e, "pick statement type not computable")
		return valtype.ErrorFor("pick statement type not computable")
	}
	if resultType.DataType == valtype.Error {
		return valtype.ErrorFor("pick statement type not computable")
	}
	return valtype.ExprValue{DataType: resultType.DataType, Aggregate: aggregate, Value: fragment.Compress(seq)}
}
