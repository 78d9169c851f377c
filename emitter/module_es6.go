package emitter

import "github.com/viant/jsemit/ast"

// module_es6.go is the passthrough envelope: import/export statements are
// re-emitted using native ES module syntax, unchanged in meaning.

func emitES6Module(ctx *Context, info *moduleInfo, statements []*ast.Node) {
	_ = info // the pre-pass isn't needed for a pure passthrough
	for _, stmt := range statements {
		ctx.Comments.EmitLeading(ctx.W, stmt)
		switch stmt.Kind {
		case ast.KindImportDeclaration:
			emitNativeImportDeclaration(ctx, stmt)
		case ast.KindExportDeclaration:
			emitNativeExportDeclaration(ctx, stmt)
		case ast.KindExportStar:
			ctx.W.Write("export * from ")
			ctx.W.Write(quoteJSString(stmt.ModuleSpecifier.Text))
			ctx.W.Write(";")
		case ast.KindExportAssignment:
			if stmt.Flags.Has(ast.FlagDefault) {
				ctx.W.Write("export default ")
				EmitExpression(ctx, stmt.Expression)
				ctx.W.Write(";")
			} else {
				ctx.W.Write("export = ")
				EmitExpression(ctx, stmt.Expression)
				ctx.W.Write(";")
			}
		default:
			EmitStatement(ctx, stmt)
			continue
		}
		ctx.W.WriteLine()
	}
}

func emitNativeImportDeclaration(ctx *Context, stmt *ast.Node) {
	ctx.W.Write("import ")
	if clause := stmt.ImportClause; clause != nil {
		wrote := false
		if clause.Name != nil {
			ctx.W.Write(clause.Name.Text)
			wrote = true
		}
		if nb := clause.NamedBindings; nb != nil {
			if wrote {
				ctx.W.Write(", ")
			}
			emitNamedBindings(ctx, nb)
		}
		ctx.W.Write(" from ")
	}
	ctx.W.Write(quoteJSString(stmt.ModuleSpecifier.Text))
	ctx.W.Write(";")
}

func emitNamedBindings(ctx *Context, nb *ast.Node) {
	if nb.Kind == ast.KindNamespaceImport {
		ctx.W.Write("* as ")
		ctx.W.Write(nb.Name.Text)
		return
	}
	ctx.W.Write("{ ")
	for i, spec := range nb.Specifiers {
		if i > 0 {
			ctx.W.Write(", ")
		}
		if spec.PropertyName != nil {
			ctx.W.Write(spec.PropertyName.Text)
			ctx.W.Write(" as ")
		}
		ctx.W.Write(spec.Name.Text)
	}
	ctx.W.Write(" }")
}

func emitNativeExportDeclaration(ctx *Context, stmt *ast.Node) {
	ctx.W.Write("export { ")
	for i, spec := range stmt.Specifiers {
		if i > 0 {
			ctx.W.Write(", ")
		}
		if spec.PropertyName != nil {
			ctx.W.Write(spec.PropertyName.Text)
			ctx.W.Write(" as ")
		}
		ctx.W.Write(spec.Name.Text)
	}
	ctx.W.Write(" }")
	if stmt.ModuleSpecifier != nil {
		ctx.W.Write(" from ")
		ctx.W.Write(quoteJSString(stmt.ModuleSpecifier.Text))
	}
	ctx.W.Write(";")
}
