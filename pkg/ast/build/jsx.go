package build

import "estree/pkg/ast"

// Element builds a JSX element. When selfClosing is true the closing tag is
// absent; otherwise it is synthesized from the same name, so a mismatched
// open/close pair cannot be produced through this constructor.
func Element(name string, selfClosing bool, attrs []ast.JSXAttr, children []ast.JSXChild) *ast.JSXElement {
	el := &ast.JSXElement{
		Opening: &ast.JSXOpeningElement{
			Name:        &ast.JSXIdentifier{Name: name},
			Attributes:  attrs,
			SelfClosing: selfClosing,
		},
		Children: children,
	}
	if !selfClosing {
		el.Closing = &ast.JSXClosingElement{Name: &ast.JSXIdentifier{Name: name}}
	}
	return el
}

// Attr builds a `name={value}` attribute; a nil value yields the bare
// boolean form. String literal values render as quoted text, anything else
// is wrapped in an expression container.
func Attr(name string, value ast.Expression) *ast.JSXAttribute {
	attr := &ast.JSXAttribute{Name: &ast.JSXIdentifier{Name: name}}
	switch v := value.(type) {
	case nil:
	case *ast.StringLiteral, *ast.JSXExpressionContainer:
		attr.Value = v
	default:
		attr.Value = &ast.JSXExpressionContainer{Expression: v}
	}
	return attr
}

// SpreadAttr builds a `{...expr}` attribute.
func SpreadAttr(e ast.Expression) *ast.JSXSpreadAttribute {
	return &ast.JSXSpreadAttribute{Argument: e}
}

// Text builds a literal text child.
func Text(s string) *ast.JSXText {
	return &ast.JSXText{Value: s}
}

// ChildExpr wraps an expression as a `{expr}` child.
func ChildExpr(e ast.Expression) *ast.JSXExpressionContainer {
	return &ast.JSXExpressionContainer{Expression: e}
}
