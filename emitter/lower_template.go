package emitter

import "github.com/viant/jsemit/ast"

// lower_template.go implements template-literal lowering: at ES6,
// templates pass through as backtick text; below ES6 they become a binary
// `+` chain of string literals and parenthesized expressions, and a tagged
// template becomes a call against a synthesized cooked/raw strings array.
//
// A KindTemplateLiteral node's Elements alternate TemplateSpan nodes
// (Text holds the cooked literal text; Expression holds the interpolated
// expression, nil for the trailing span) in source order; the first span's
// Text is the literal head.

func emitTemplateLiteral(ctx *Context, node *ast.Node, tag *ast.Node) {
	if tag == nil && ctx.Options.Target >= ast.ES6 {
		emitNativeTemplate(ctx, node)
		return
	}
	if tag != nil {
		emitTaggedTemplateCall(ctx, tag, node)
		return
	}
	emitConcatenatedTemplate(ctx, node)
}

func emitNativeTemplate(ctx *Context, node *ast.Node) {
	ctx.W.Write("`")
	for _, span := range node.Elements {
		ctx.W.Write(span.Text)
		if span.Expression != nil {
			ctx.W.Write("${")
			EmitExpression(ctx, span.Expression)
			ctx.W.Write("}")
		}
	}
	ctx.W.Write("`")
}

// emitConcatenatedTemplate writes the below-ES6 `"head" + (expr) + "mid" +
// (expr2) + "tail"` form. An empty literal segment between two
// interpolations is omitted; an all-literal template (no expressions)
// collapses to a single string.
func emitConcatenatedTemplate(ctx *Context, node *ast.Node) {
	first := true
	emitPiece := func(write func()) {
		if !first {
			ctx.W.Write(" + ")
		}
		first = false
		write()
	}
	for _, span := range node.Elements {
		if span.Text != "" || span.Expression == nil {
			text := span.Text
			emitPiece(func() { ctx.W.Write(quoteJSString(text)) })
		}
		if span.Expression != nil {
			expr := span.Expression
			needParens := NeedsParensForBinaryPlus(expr)
			emitPiece(func() { EmitExpressionParenthesized(ctx, expr, needParens) })
		}
	}
	if first {
		ctx.W.Write(`""`)
	}
}

func emitTaggedTemplate(ctx *Context, node *ast.Node) {
	emitTemplateLiteral(ctx, node.TemplateExpr, node.Callee)
}

// emitTaggedTemplateCall lowers `` tag`head${a}tail` `` below ES6 to:
//
//	(_a = ["head", "tail"], _a.raw = ["head", "tail"], tag(_a, a))
//
// Cooked and raw text are identical here since this emitter has no
// separate raw-text capture in the span; that is recorded as an
// open-question decision.
func emitTaggedTemplateCall(ctx *Context, tag *ast.Node, template *ast.Node) {
	temp := ctx.Names.MakeTempVariableName(ctx.Resolver, false)

	ctx.W.Write("(")
	ctx.W.Write(temp)
	ctx.W.Write(" = [")
	emitCookedStringList(ctx, template)
	ctx.W.Write("], ")
	ctx.W.Write(temp)
	ctx.W.Write(".raw = [")
	emitCookedStringList(ctx, template)
	ctx.W.Write("], ")

	prec := precCallNew
	EmitExpressionParenthesized(ctx, tag, NeedsParensForParent(tag, prec, false))
	ctx.W.Write("(")
	ctx.W.Write(temp)
	for _, span := range template.Elements {
		if span.Expression != nil {
			ctx.W.Write(", ")
			EmitExpression(ctx, span.Expression)
		}
	}
	ctx.W.Write("))")
}

func emitCookedStringList(ctx *Context, template *ast.Node) {
	for i, span := range template.Elements {
		if i > 0 {
			ctx.W.Write(", ")
		}
		ctx.W.Write(quoteJSString(span.Text))
	}
}
