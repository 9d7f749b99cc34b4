package parsers

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/mvp-joe/javadecl/internal/syntax"
)

// treeSitterParser provides common tree-sitter parsing functionality.
type treeSitterParser struct {
	language *sitter.Language
	lang     string
}

// newTreeSitterParser creates a new tree-sitter parser for the given language.
func newTreeSitterParser(language *sitter.Language, lang string) *treeSitterParser {
	return &treeSitterParser{
		language: language,
		lang:     lang,
	}
}

// parseTree parses source into a tree-sitter tree. The caller must close the
// returned tree. A tree containing ERROR or MISSING nodes is reported as a
// *syntax.ParseError.
func (p *treeSitterParser) parseTree(ctx context.Context, source []byte) (*sitter.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	defer parser.Close()

	if err := parser.SetLanguage(p.language); err != nil {
		return nil, fmt.Errorf("failed to load %s grammar: %w", p.lang, err)
	}

	tree := parser.Parse(source, nil)
	if tree == nil {
		return nil, &syntax.ParseError{Message: fmt.Sprintf("%s parser produced no syntax tree", p.lang)}
	}

	if root := tree.RootNode(); root.HasError() {
		err := syntaxError(root, source)
		tree.Close()
		return nil, err
	}

	return tree, nil
}

// syntaxError describes the first ERROR or MISSING node under root.
func syntaxError(root *sitter.Node, source []byte) *syntax.ParseError {
	var bad *sitter.Node
	walkTree(root, func(n *sitter.Node) bool {
		if bad != nil {
			return false
		}
		if n.IsError() || n.IsMissing() {
			bad = n
			return false
		}
		return n.HasError()
	})

	if bad == nil {
		return &syntax.ParseError{Message: "syntax error"}
	}

	pos := bad.StartPosition()
	msg := "syntax error"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %s", bad.Kind())
	} else if snippet := firstLine(extractNodeText(bad, source)); snippet != "" {
		msg = fmt.Sprintf("syntax error near %q", snippet)
	}

	return &syntax.ParseError{
		Message: msg,
		Line:    int(pos.Row) + 1,
		Column:  int(pos.Column) + 1,
	}
}

// firstLine trims text to its first line, capped for readable diagnostics.
func firstLine(text string) string {
	const maxLen = 40
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = text[:i]
	}
	text = strings.TrimSpace(text)
	if len(text) > maxLen {
		text = text[:maxLen] + "..."
	}
	return text
}

// extractNodeText extracts the text content of a tree-sitter node.
func extractNodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	return string(source[node.StartByte():node.EndByte()])
}

// nodeSpan returns the 1-based line span of node, unresolved for nodes the
// parser synthesized or that cover no source.
func nodeSpan(node *sitter.Node) syntax.Span {
	if node == nil || node.IsMissing() || node.StartByte() == node.EndByte() {
		return syntax.NoSpan()
	}
	return syntax.NewSpan(int(node.StartPosition().Row)+1, int(node.EndPosition().Row)+1)
}

// fieldText returns the text of the named field child of node.
func fieldText(node *sitter.Node, field string, source []byte) string {
	return extractNodeText(node.ChildByFieldName(field), source)
}

// walkTree recursively walks a tree-sitter tree and calls the visitor for each node.
func walkTree(node *sitter.Node, visitor func(*sitter.Node) bool) {
	if node == nil {
		return
	}

	if !visitor(node) {
		return
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		walkTree(child, visitor)
	}
}

// findChildByType finds the first child node with the given type.
func findChildByType(node *sitter.Node, nodeType string) *sitter.Node {
	if node == nil {
		return nil
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			return child
		}
	}
	return nil
}

// findChildrenByType finds all child nodes with the given type.
func findChildrenByType(node *sitter.Node, nodeType string) []*sitter.Node {
	var results []*sitter.Node
	if node == nil {
		return results
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(uint(i))
		if child.Kind() == nodeType {
			results = append(results, child)
		}
	}
	return results
}
