// Package fragment defines the SQL fragment ABI that the expression core
// emits. A fragment sequence interleaves literal SQL text with structured
// placeholders that a downstream dialect writer splices into executable SQL.
package fragment

// Fragment is one element of a Seq. The concrete variants below are the
// stable ABI between this package and a downstream SQL writer; their Kind
// strings must not change.
type Fragment interface {
	Kind() string
}

type (
	// Text is an opaque literal SQL text chunk.
	Text string

	// Field is a reference to a dotted field path.
	Field struct {
		Path string
	}

	// Aggregate is an aggregate-function call over an inner fragment
	// sequence, optionally scoped to a relation via StructPath.
	Aggregate struct {
		Function   string
		Expr       Seq
		StructPath string // empty when the aggregate is not struct-scoped
	}

	// FilterExpr wraps an inner fragment sequence with a list of boolean
	// filter conditions to be applied before the inner expression is
	// aggregated.
	FilterExpr struct {
		Expr       Seq
		FilterList []Cond
	}
)

// Cond is one condition in a FilterExpr's filter list.
type Cond struct {
	Value     Seq
	Aggregate bool
}

func (Text) Kind() string       { return "text" }
func (Field) Kind() string      { return "field" }
func (Aggregate) Kind() string  { return "aggregate" }
func (FilterExpr) Kind() string { return "filterExpression" }

// Seq is an ordered fragment sequence.
type Seq []Fragment

// Of builds a single-fragment sequence from a literal string, the common
// case for literal-valued expression nodes.
func Of(text string) Seq {
	return Seq{Text(text)}
}

// Compose concatenates left, an infix literal operator, and right into a
// single fragment sequence: [...left, " op ", ...right]. Unlike Wrap and
// Join, Compose does not compress: compression is a separate step applied
// once at the public compile entry (spec §4.G), not at every composition.
func Compose(left Seq, op string, right Seq) Seq {
	out := make(Seq, 0, len(left)+len(right)+1)
	out = append(out, left...)
	out = append(out, Text(" "+op+" "))
	out = append(out, right...)
	return out
}

// Prefix returns [text, ...seq], compressed: text merges with a leading
// Text fragment of seq.
func Prefix(text string, seq Seq) Seq {
	return Compress(append(Seq{Text(text)}, seq...))
}

// Wrap returns [open, ...seq, close], compressed, so open and close merge
// with adjacent Text fragments of seq.
func Wrap(open string, seq Seq, close string) Seq {
	out := make(Seq, 0, len(seq)+2)
	out = append(out, Text(open))
	out = append(out, seq...)
	out = append(out, Text(close))
	return Compress(out)
}

// Join concatenates seqs with sep inserted as a literal-text separator
// between each pair, e.g. for variadic function-call arguments.
func Join(seqs []Seq, sep string) Seq {
	var out Seq
	for i, s := range seqs {
		if i > 0 {
			out = append(out, Text(sep))
		}
		out = append(out, s...)
	}
	return Compress(out)
}

// Compress merges adjacent Text fragments into one. Compression is
// idempotent and preserves the relative order and identity of non-Text
// placeholders.
func Compress(seq Seq) Seq {
	if len(seq) < 2 {
		return seq
	}
	out := make(Seq, 0, len(seq))
	for _, f := range seq {
		if t, ok := f.(Text); ok {
			if n := len(out); n > 0 {
				if prev, ok := out[n-1].(Text); ok {
					out[n-1] = prev + t
					continue
				}
			}
		}
		out = append(out, f)
	}
	return out
}
