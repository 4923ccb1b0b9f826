// Package diag implements the per-compilation diagnostics sink. Nodes
// append diagnostics tagged with a source location; translation never
// aborts on a user-level diagnosable condition.
package diag

// Loc is the minimal source-location contract a diagnostic is tagged with.
// ast.Node satisfies this.
type Loc interface {
	Pos() int
	End() int
}

// Diagnostic is one recorded compile-time message.
type Diagnostic struct {
	Pos, End int
	Message  string
}

// Sink collects diagnostics in the order they are logged for a single
// compilation. It
// is not safe for concurrent use; callers compiling independent ASTs
// concurrently must construct one Sink per compilation.
type Sink struct {
	diags []Diagnostic
}

// NewSink returns an empty diagnostics sink.
func NewSink() *Sink {
	return &Sink{}
}

// Log appends a diagnostic tagged with loc's source position.
func (s *Sink) Log(loc Loc, message string) {
	s.diags = append(s.diags, Diagnostic{Pos: loc.Pos(), End: loc.End(), Message: message})
}

// Diagnostics returns the recorded diagnostics in the order they were
// logged.
func (s *Sink) Diagnostics() []Diagnostic {
	return s.diags
}

// HasErrors reports whether any diagnostic has been recorded.
func (s *Sink) HasErrors() bool {
	return len(s.diags) > 0
}
