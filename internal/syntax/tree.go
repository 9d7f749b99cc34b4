// Package syntax defines the parsed view of a Java compilation unit that the
// declaration extractor consumes. Parsers produce it; nothing downstream
// mutates it.
package syntax

import (
	"context"
	"fmt"
)

// Parser turns source text into a CompilationUnit.
// A syntactically invalid source yields a *ParseError.
type Parser interface {
	Parse(ctx context.Context, source []byte) (*CompilationUnit, error)
}

// Span is an optional 1-based, inclusive line range.
// The zero value is an unresolved span.
type Span struct {
	start int
	end   int
	ok    bool
}

// NewSpan returns a resolved span covering startLine..endLine.
func NewSpan(startLine, endLine int) Span {
	return Span{start: startLine, end: endLine, ok: true}
}

// NoSpan returns an unresolved span.
func NoSpan() Span {
	return Span{}
}

// Lines returns the start and end line and whether the span was resolved.
func (s Span) Lines() (start, end int, ok bool) {
	return s.start, s.end, s.ok
}

// Node is the part every declaration shares: its identifier, where it is,
// and its exact source text.
type Node struct {
	Name string
	Span Span
	Text string
}

// CompilationUnit is a whole source file.
type CompilationUnit struct {
	Package *PackageClause // nil when the file has no package statement
	Imports []ImportClause
	Types   []TypeDecl
}

// PackageClause is a package statement; Name is the dotted path.
type PackageClause struct {
	Node
}

// ImportClause is an import statement; Name is the dotted path without a
// trailing wildcard.
type ImportClause struct {
	Node
	Static   bool
	Wildcard bool
}

// Members groups the direct members of a type declaration, each list in
// declaration order.
type Members struct {
	Fields       []FieldDecl
	Constructors []ConstructorDecl
	Methods      []MethodDecl
}

// TypeDecl is a top-level type declaration. The set of implementations is
// closed to this package.
type TypeDecl interface {
	Decl() Node
	Body() Members
	typeDecl()
}

// ClassDecl is a class declaration.
type ClassDecl struct {
	Node
	Members
}

// InterfaceDecl is an interface declaration.
type InterfaceDecl struct {
	Node
	Members
}

// EnumDecl is an enum declaration.
type EnumDecl struct {
	Node
	Members
}

// AnnotationDecl is an annotation type declaration (@interface).
type AnnotationDecl struct {
	Node
	Members
}

// OtherTypeDecl is a top-level declaration of a variant not listed above,
// such as a record or a module declaration. Variant holds the grammar's
// name for it.
type OtherTypeDecl struct {
	Node
	Members
	Variant string
}

func (d *ClassDecl) Decl() Node      { return d.Node }
func (d *InterfaceDecl) Decl() Node  { return d.Node }
func (d *EnumDecl) Decl() Node       { return d.Node }
func (d *AnnotationDecl) Decl() Node { return d.Node }
func (d *OtherTypeDecl) Decl() Node  { return d.Node }

func (d *ClassDecl) Body() Members      { return d.Members }
func (d *InterfaceDecl) Body() Members  { return d.Members }
func (d *EnumDecl) Body() Members       { return d.Members }
func (d *AnnotationDecl) Body() Members { return d.Members }
func (d *OtherTypeDecl) Body() Members  { return d.Members }

func (*ClassDecl) typeDecl()      {}
func (*InterfaceDecl) typeDecl()  {}
func (*EnumDecl) typeDecl()       {}
func (*AnnotationDecl) typeDecl() {}
func (*OtherTypeDecl) typeDecl()  {}

// FieldDecl is one field statement. Span and Text cover the whole statement;
// Variables lists the declared names in order.
type FieldDecl struct {
	Span      Span
	Text      string
	Variables []Variable
}

// Variable is a single declarator within a field statement.
type Variable struct {
	Name string
}

// ConstructorDecl is a constructor declaration.
type ConstructorDecl struct {
	Node
}

// MethodDecl is a method declaration.
type MethodDecl struct {
	Node
}

// ParseError reports that the source is not syntactically valid.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
	}
	return e.Message
}
