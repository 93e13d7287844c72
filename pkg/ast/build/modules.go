package build

import "estree/pkg/ast"

// ImportDefault builds `import local from "source";`.
func ImportDefault(local, source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{
		Specifiers: []*ast.ImportSpecifier{{Kind: ast.ImportDefault, Local: Ident(local)}},
		Source:     String(source),
	}
}

// ImportNamed builds `import { a, b } from "source";` from pre-built
// specifiers.
func ImportNamed(source string, specs ...*ast.ImportSpecifier) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{Specifiers: specs, Source: String(source)}
}

// ImportNamespace builds `import * as local from "source";`.
func ImportNamespace(local, source string) *ast.ImportDeclaration {
	return &ast.ImportDeclaration{
		Specifiers: []*ast.ImportSpecifier{{Kind: ast.ImportNamespace, Local: Ident(local)}},
		Source:     String(source),
	}
}

// NamedSpec builds one `imported as local` specifier; an empty local keeps
// the imported name.
func NamedSpec(imported, local string) *ast.ImportSpecifier {
	spec := &ast.ImportSpecifier{Kind: ast.ImportNamed, Imported: Ident(imported)}
	if local == "" {
		local = imported
	}
	spec.Local = Ident(local)
	return spec
}

// ExportDecl builds `export <declaration>;`.
func ExportDecl(decl ast.Statement) *ast.ExportNamedDeclaration {
	return &ast.ExportNamedDeclaration{Declaration: decl}
}

// ExportNames builds `export { a, b };`, optionally re-exported from a
// source module (empty source for the local form).
func ExportNames(source string, specs ...*ast.ExportSpecifier) *ast.ExportNamedDeclaration {
	decl := &ast.ExportNamedDeclaration{Specifiers: specs}
	if source != "" {
		decl.Source = String(source)
	}
	return decl
}

// ExportSpec builds one `local as exported` specifier; an empty exported
// name keeps the local one.
func ExportSpec(local, exported string) *ast.ExportSpecifier {
	if exported == "" {
		exported = local
	}
	return &ast.ExportSpecifier{Local: Ident(local), Exported: Ident(exported)}
}

// ExportDefault builds `export default <expr or declaration>;`.
func ExportDefault(decl ast.Node) *ast.ExportDefaultDeclaration {
	return &ast.ExportDefaultDeclaration{Declaration: decl}
}

// ExportAll builds `export * from "source";` or, with a non-empty alias,
// `export * as alias from "source";`.
func ExportAll(alias, source string) *ast.ExportAllDeclaration {
	decl := &ast.ExportAllDeclaration{Source: String(source)}
	if alias != "" {
		decl.Exported = Ident(alias)
	}
	return decl
}
