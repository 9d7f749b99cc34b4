package extraction

import (
	"github.com/mvp-joe/javadecl/internal/syntax"
)

// Extract walks unit and returns one record per declaration in traversal
// order: package, imports, then for each top-level type the type itself
// followed by its fields, constructors and methods.
//
// A field statement declaring several variables yields one record per
// variable, all sharing the statement's span and code. Top-level types of a
// variant without a kind (records, modules) are skipped along with their
// members. The result is never nil.
func Extract(unit *syntax.CompilationUnit, filePath string) []Record {
	records := []Record{}
	if unit == nil {
		return records
	}

	newRecord := func(kind Kind, node syntax.Node) Record {
		return Record{
			Kind:     kind,
			Name:     node.Name,
			Span:     node.Span,
			Code:     node.Text,
			FilePath: filePath,
		}
	}

	if unit.Package != nil {
		records = append(records, newRecord(KindPackage, unit.Package.Node))
	}

	for _, imp := range unit.Imports {
		records = append(records, newRecord(KindImport, imp.Node))
	}

	for _, decl := range unit.Types {
		kind, ok := typeKind(decl)
		if !ok {
			continue
		}
		records = append(records, newRecord(kind, decl.Decl()))

		body := decl.Body()
		for _, field := range body.Fields {
			for _, v := range field.Variables {
				records = append(records, Record{
					Kind:     KindField,
					Name:     v.Name,
					Span:     field.Span,
					Code:     field.Text,
					FilePath: filePath,
				})
			}
		}
		for _, ctor := range body.Constructors {
			records = append(records, newRecord(KindConstructor, ctor.Node))
		}
		for _, method := range body.Methods {
			records = append(records, newRecord(KindMethod, method.Node))
		}
	}

	return records
}

// typeKind maps a type declaration variant to its record kind.
func typeKind(decl syntax.TypeDecl) (Kind, bool) {
	switch decl.(type) {
	case *syntax.ClassDecl:
		return KindClass, true
	case *syntax.InterfaceDecl:
		return KindInterface, true
	case *syntax.EnumDecl:
		return KindEnum, true
	case *syntax.AnnotationDecl:
		return KindAnnotation, true
	case *syntax.OtherTypeDecl:
		return "", false
	}
	return "", false
}
