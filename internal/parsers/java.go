package parsers

import (
	"context"

	sitter "github.com/tree-sitter/go-tree-sitter"
	java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/mvp-joe/javadecl/internal/syntax"
)

// javaParser builds a syntax.CompilationUnit from Java source.
type javaParser struct {
	*treeSitterParser
}

// NewJavaParser creates a new Java parser.
func NewJavaParser() *javaParser {
	lang := sitter.NewLanguage(java.Language())
	return &javaParser{
		treeSitterParser: newTreeSitterParser(lang, "java"),
	}
}

var _ syntax.Parser = (*javaParser)(nil)

// Parse parses Java source. Only top-level declarations and the direct
// members of top-level types are collected.
func (p *javaParser) Parse(ctx context.Context, source []byte) (*syntax.CompilationUnit, error) {
	tree, err := p.parseTree(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	unit := &syntax.CompilationUnit{
		Imports: []syntax.ImportClause{},
		Types:   []syntax.TypeDecl{},
	}

	for i := 0; i < int(rootNode.ChildCount()); i++ {
		child := rootNode.Child(uint(i))
		switch child.Kind() {
		case "package_declaration":
			if unit.Package == nil {
				unit.Package = p.extractPackage(child, source)
			}
		case "import_declaration":
			if imp, ok := p.extractImport(child, source); ok {
				unit.Imports = append(unit.Imports, imp)
			}
		default:
			if decl := p.extractType(child, source); decl != nil {
				unit.Types = append(unit.Types, decl)
			}
		}
	}

	return unit, nil
}

// qualifiedName returns the dotted name child of a package or import statement.
func qualifiedName(node *sitter.Node, source []byte) string {
	nameNode := findChildByType(node, "scoped_identifier")
	if nameNode == nil {
		nameNode = findChildByType(node, "identifier")
	}
	return extractNodeText(nameNode, source)
}

// extractPackage extracts the package statement.
func (p *javaParser) extractPackage(node *sitter.Node, source []byte) *syntax.PackageClause {
	name := qualifiedName(node, source)
	if name == "" {
		return nil
	}
	return &syntax.PackageClause{Node: syntax.Node{
		Name: name,
		Span: nodeSpan(node),
		Text: extractNodeText(node, source),
	}}
}

// extractImport extracts an import statement. Static and wildcard imports are
// named by their dotted path alone.
func (p *javaParser) extractImport(node *sitter.Node, source []byte) (syntax.ImportClause, bool) {
	name := qualifiedName(node, source)
	if name == "" {
		return syntax.ImportClause{}, false
	}
	return syntax.ImportClause{
		Node: syntax.Node{
			Name: name,
			Span: nodeSpan(node),
			Text: extractNodeText(node, source),
		},
		Static:   findChildByType(node, "static") != nil,
		Wildcard: findChildByType(node, "asterisk") != nil,
	}, true
}

// extractType classifies a top-level node. It returns nil for nodes that are
// not type declarations (comments, stray statements).
func (p *javaParser) extractType(node *sitter.Node, source []byte) syntax.TypeDecl {
	name := fieldText(node, "name", source)
	if name == "" {
		return nil
	}

	decl := syntax.Node{
		Name: name,
		Span: nodeSpan(node),
		Text: extractNodeText(node, source),
	}
	body := node.ChildByFieldName("body")

	switch node.Kind() {
	case "class_declaration":
		return &syntax.ClassDecl{Node: decl, Members: p.classMembers(body, source)}
	case "interface_declaration":
		return &syntax.InterfaceDecl{Node: decl, Members: p.interfaceMembers(body, source)}
	case "enum_declaration":
		// Enum members follow the constant list, after the ';'.
		return &syntax.EnumDecl{Node: decl, Members: p.classMembers(findChildByType(body, "enum_body_declarations"), source)}
	case "annotation_type_declaration":
		return &syntax.AnnotationDecl{Node: decl, Members: p.interfaceMembers(body, source)}
	case "record_declaration", "module_declaration":
		return &syntax.OtherTypeDecl{Node: decl, Members: p.classMembers(body, source), Variant: node.Kind()}
	}
	return nil
}

// classMembers collects fields, constructors and methods declared directly in
// a class body (or an enum's body declarations).
func (p *javaParser) classMembers(body *sitter.Node, source []byte) syntax.Members {
	return p.collectMembers(body, "field_declaration", source)
}

// interfaceMembers collects constants and methods declared directly in an
// interface or annotation body.
func (p *javaParser) interfaceMembers(body *sitter.Node, source []byte) syntax.Members {
	return p.collectMembers(body, "constant_declaration", source)
}

func (p *javaParser) collectMembers(body *sitter.Node, fieldKind string, source []byte) syntax.Members {
	members := syntax.Members{
		Fields:       []syntax.FieldDecl{},
		Constructors: []syntax.ConstructorDecl{},
		Methods:      []syntax.MethodDecl{},
	}
	if body == nil {
		return members
	}

	for i := 0; i < int(body.ChildCount()); i++ {
		child := body.Child(uint(i))
		switch child.Kind() {
		case fieldKind:
			if field, ok := p.extractField(child, source); ok {
				members.Fields = append(members.Fields, field)
			}
		case "constructor_declaration", "compact_constructor_declaration":
			if node, ok := namedNode(child, source); ok {
				members.Constructors = append(members.Constructors, syntax.ConstructorDecl{Node: node})
			}
		case "method_declaration":
			if node, ok := namedNode(child, source); ok {
				members.Methods = append(members.Methods, syntax.MethodDecl{Node: node})
			}
		}
	}
	return members
}

// extractField extracts a field statement and each of its declarators.
// int a, b; yields one FieldDecl with two Variables.
func (p *javaParser) extractField(node *sitter.Node, source []byte) (syntax.FieldDecl, bool) {
	field := syntax.FieldDecl{
		Span:      nodeSpan(node),
		Text:      extractNodeText(node, source),
		Variables: []syntax.Variable{},
	}

	for _, declarator := range findChildrenByType(node, "variable_declarator") {
		name := fieldText(declarator, "name", source)
		if name == "" {
			continue
		}
		field.Variables = append(field.Variables, syntax.Variable{Name: name})
	}

	return field, len(field.Variables) > 0
}

// namedNode builds a syntax.Node from a declaration with a name field.
func namedNode(node *sitter.Node, source []byte) (syntax.Node, bool) {
	name := fieldText(node, "name", source)
	if name == "" {
		return syntax.Node{}, false
	}
	return syntax.Node{
		Name: name,
		Span: nodeSpan(node),
		Text: extractNodeText(node, source),
	}, true
}
