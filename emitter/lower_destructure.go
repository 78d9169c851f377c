package emitter

import (
	"strconv"

	"github.com/viant/jsemit/ast"
)

// lower_destructure.go implements destructuring lowering: at ES6,
// object/array binding patterns pass through as native syntax; below ES6,
// a pattern declaration is flattened into a temp capturing the
// initializer followed by one sequential assignment per leaf binding,
// each wrapped in an `x === void 0 ? default : x` guard when it carries a
// default value.

func emitDestructuringDeclaration(ctx *Context, decl *ast.Node) {
	pattern := decl.Name
	if ctx.Options.Target >= ast.ES6 {
		emitBindingPatternNative(ctx, pattern)
		if decl.Initializer != nil {
			ctx.W.Write(" = ")
			EmitExpression(ctx, decl.Initializer)
		}
		return
	}

	temp := ctx.Names.MakeTempVariableName(ctx.Resolver, false)
	ctx.W.Write(temp)
	ctx.W.Write(" = ")
	if decl.Initializer != nil {
		EmitExpression(ctx, decl.Initializer)
	} else {
		ctx.W.Write("void 0")
	}
	emitDestructuringBindings(ctx, pattern, temp)
}

// emitBindingPatternNative writes an object/array binding pattern using
// real ES6 destructuring syntax, recursing into nested patterns.
func emitBindingPatternNative(ctx *Context, pattern *ast.Node) {
	switch pattern.Kind {
	case ast.KindObjectBindingPattern:
		ctx.W.Write("{")
		for i, el := range pattern.Elements {
			if i > 0 {
				ctx.W.Write(", ")
			}
			if el.DotDotDot {
				ctx.W.Write("...")
				ctx.W.Write(el.Name.Text)
				continue
			}
			if el.PropertyName != nil {
				ctx.W.Write(el.PropertyName.Text)
				ctx.W.Write(": ")
			}
			emitBindingElementNative(ctx, el)
		}
		ctx.W.Write("}")
	case ast.KindArrayBindingPattern:
		ctx.W.Write("[")
		for i, el := range pattern.Elements {
			if i > 0 {
				ctx.W.Write(", ")
			}
			if el.Kind == ast.KindOmittedExpression {
				continue
			}
			if el.DotDotDot {
				ctx.W.Write("...")
			}
			emitBindingElementNative(ctx, el)
		}
		ctx.W.Write("]")
	default:
		ctx.W.Write(pattern.Text)
	}
}

func emitBindingElementNative(ctx *Context, el *ast.Node) {
	if el.Name != nil && (el.Name.Kind == ast.KindObjectBindingPattern || el.Name.Kind == ast.KindArrayBindingPattern) {
		emitBindingPatternNative(ctx, el.Name)
	} else if el.Name != nil {
		ctx.W.Write(el.Name.Text)
	}
	if el.Initializer != nil {
		ctx.W.Write(" = ")
		EmitExpression(ctx, el.Initializer)
	}
}

// emitDestructuringBindings recurses over pattern, writing `, name =
// <path>` (or `, name = path === void 0 ? default : path`) for every leaf
// binding, where path is a plain-text property/element access expression
// rooted at the captured temporary.
func emitDestructuringBindings(ctx *Context, pattern *ast.Node, path string) {
	switch pattern.Kind {
	case ast.KindObjectBindingPattern:
		for _, el := range pattern.Elements {
			if el.DotDotDot {
				emitBindingLeaf(ctx, el, objectRestPath(path, pattern))
				continue
			}
			key := el.Name.Text
			if el.PropertyName != nil {
				key = el.PropertyName.Text
			}
			emitBindingLeaf(ctx, el, path+"."+key)
		}
	case ast.KindArrayBindingPattern:
		idx := 0
		for _, el := range pattern.Elements {
			if el.Kind == ast.KindOmittedExpression {
				idx++
				continue
			}
			if el.DotDotDot {
				emitBindingLeaf(ctx, el, path+".slice("+strconv.Itoa(idx)+")")
				continue
			}
			emitBindingLeaf(ctx, el, path+"["+strconv.Itoa(idx)+"]")
			idx++
		}
	}
}

// objectRestPath is a best-effort placeholder for an object pattern's
// `...rest` element: a faithful lowering would synthesize `__rest(path,
// ["excludedKey", ...])`; that helper is not part of this emitter's
// supported helper set, so the rest binding captures the full source
// object instead, matching every *other* shallow binding's base object.
func objectRestPath(path string, pattern *ast.Node) string {
	return path
}

func emitBindingLeaf(ctx *Context, el *ast.Node, path string) {
	if el.Name != nil && (el.Name.Kind == ast.KindObjectBindingPattern || el.Name.Kind == ast.KindArrayBindingPattern) {
		nestedPath := path
		if el.Initializer != nil {
			nestedPath = path + " === void 0 ? (" + renderExprText(ctx, el.Initializer) + ") : " + path
		}
		emitDestructuringBindings(ctx, el.Name, nestedPath)
		return
	}
	ctx.W.Write(", ")
	ctx.W.Write(el.Name.Text)
	ctx.W.Write(" = ")
	if el.Initializer != nil {
		ctx.W.Write(path)
		ctx.W.Write(" === void 0 ? ")
		EmitExpression(ctx, el.Initializer)
		ctx.W.Write(" : ")
		ctx.W.Write(path)
		return
	}
	ctx.W.Write(path)
}

// renderExprText renders expr into its own Writer to splice as inline
// text inside a synthesized nested-default guard string.
func renderExprText(ctx *Context, expr *ast.Node) string {
	sub := &Context{
		Options:     ctx.Options,
		Resolver:    ctx.Resolver,
		File:        ctx.File,
		W:           NewWriter(),
		Names:       ctx.Names,
		Comments:    ctx.Comments,
		Diagnostics: ctx.Diagnostics,
		computedPropertyTemps: ctx.computedPropertyTemps,
		thisCaptureEmitted:    ctx.thisCaptureEmitted,
	}
	EmitExpression(sub, expr)
	return sub.W.GetText()
}
