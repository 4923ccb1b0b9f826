package ast

import (
	"github.com/malloydata/exprcore/fragment"
	"github.com/malloydata/exprcore/valtype"
)

// When is one WHEN cond THEN then clause of an ExprCase.
type When struct {
	Cond Expr
	Then Expr
}

// ExprCase is a standard SQL CASE WHEN ... THEN ... ELSE ... END. Its
// result type is the first non-null THEN/ELSE branch; every non-null
// branch must be loosely type-equal to it.
type ExprCase struct {
	Loc
	Whens []When
	Else  Expr // nil when absent
}

func (e *ExprCase) ElementType() string { return "case" }

func (e *ExprCase) Translate(cx *Ctx) valtype.ExprValue {
	var resultType *valtype.ExprValue
	aggregate := false
	seq := fragment.Seq{fragment.Text("CASE")}
	anyError := false

	for _, w := range e.Whens {
		cond, ok := w.Cond.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(w.Cond, "case when-clause has no value")
			anyError = true
			continue
		}
		if !typeCheck(cx, w.Cond, "case", cond, []valtype.Shape{valtype.ShapeBoolean}) {
			anyError = true
			continue
		}
		then, ok := w.Then.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(w.Then, "case then-clause has no value")
			anyError = true
			continue
		}
		aggregate = aggregate || cond.Aggregate || then.Aggregate
		if then.DataType != valtype.Error {
			if resultType == nil {
				resultType = &then
			} else if then.DataType != valtype.Null && !valtype.LooseTypeEqual(*resultType, then) {
				cx.Sink.Log(w.Then, "Mismatched case clause types")
				anyError = true
			} else if resultType.DataType == valtype.Null && then.DataType != valtype.Null {
				resultType = &then
			}
		}
		seq = append(seq, fragment.Text(" WHEN "))
		seq = append(seq, cond.Value...)
		seq = append(seq, fragment.Text(" THEN "))
		seq = append(seq, then.Value...)
	}

	if e.Else != nil {
		els, ok := e.Else.RequestTranslation(cx)
		if !ok {
			cx.Sink.Log(e.Else, "case else-clause has no value")
			anyError = true
		} else {
			aggregate = aggregate || els.Aggregate
			if els.DataType != valtype.Error {
				if resultType == nil {
					resultType = &els
				} else if els.DataType != valtype.Null && !valtype.LooseTypeEqual(*resultType, els) {
					cx.Sink.Log(e.Else, "Mismatched case clause types")
					anyError = true
				} else if resultType.DataType == valtype.Null && els.DataType != valtype.Null {
					resultType = &els
				}
			}
			seq = append(seq, fragment.Text(" ELSE "))
			seq = append(seq, els.Value...)
		}
	}
	seq = append(seq, fragment.Text(" END"))

	if anyError {
		return valtype.ErrorFor("case clause error")
	}
	if resultType == nil || resultType.DataType == valtype.Null {
		cx.Sink.Log(e, "case statement type not computable")
		return valtype.ErrorFor("case statement type not computable")
	}
	return valtype.ExprValue{
		DataType:  resultType.DataType,
		Aggregate: aggregate,
		Value:     fragment.Compress(seq),
	}
}

func (e *ExprCase) RequestTranslation(cx *Ctx) (valtype.ExprValue, bool) {
	return e.Translate(cx), true
}

func (e *ExprCase) Apply(cx *Ctx, op string, left Expr) valtype.ExprValue {
	return applyDefault(cx, e, op, left)
}
