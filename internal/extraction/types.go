package extraction

import (
	"encoding/json"

	"github.com/mvp-joe/javadecl/internal/syntax"
)

// Kind classifies a declaration record.
type Kind string

const (
	KindPackage     Kind = "package"
	KindImport      Kind = "import"
	KindClass       Kind = "class"
	KindInterface   Kind = "interface"
	KindEnum        Kind = "enum"
	KindAnnotation  Kind = "annotation"
	KindField       Kind = "field"
	KindConstructor Kind = "constructor"
	KindMethod      Kind = "method"
)

// Kinds lists every kind in traversal order.
var Kinds = []Kind{
	KindPackage,
	KindImport,
	KindClass,
	KindInterface,
	KindEnum,
	KindAnnotation,
	KindField,
	KindConstructor,
	KindMethod,
}

// Record describes one named declaration in a source file.
type Record struct {
	Kind     Kind
	Name     string
	Span     syntax.Span // start_line/end_line are omitted when unresolved
	Code     string
	FilePath string
}

// recordJSON is the wire shape of a Record. Field order is the output order.
type recordJSON struct {
	Kind      Kind   `json:"kind"`
	Name      string `json:"name"`
	StartLine *int   `json:"start_line,omitempty"`
	EndLine   *int   `json:"end_line,omitempty"`
	Code      string `json:"code"`
	FilePath  string `json:"file_path"`
}

// MarshalJSON writes both line keys or neither.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Kind:     r.Kind,
		Name:     r.Name,
		Code:     r.Code,
		FilePath: r.FilePath,
	}
	if start, end, ok := r.Span.Lines(); ok {
		out.StartLine = &start
		out.EndLine = &end
	}
	return json.Marshal(out)
}
