package emitter

import "github.com/viant/jsemit/ast"

// lower_forof.go implements `for`-`of` lowering. At ES6 it passes
// through natively; below ES6 it lowers to an indexed loop over the
// iterated expression, assuming the iterated value is array-like (an
// Open Question decision recorded in the design ledger: this emitter has
// no iterator-protocol runtime helper, so a below-ES6 target can only
// support array-like `for`-`of` sources).
func emitForOfStatement(ctx *Context, node *ast.Node) {
	if ctx.Options.Target >= ast.ES6 {
		ctx.W.Write("for (")
		emitForInitializer(ctx, node.Init)
		ctx.W.Write(" of ")
		EmitExpression(ctx, node.Expression)
		ctx.W.Write(") ")
		EmitStatementInline(ctx, node.Body)
		return
	}

	iName := ctx.Names.ReserveI()
	arrName := ctx.Names.MakeTempVariableName(ctx.Resolver, false)

	ctx.W.Write("for (var ")
	ctx.W.Write(iName)
	ctx.W.Write(" = 0, ")
	ctx.W.Write(arrName)
	ctx.W.Write(" = ")
	EmitExpression(ctx, node.Expression)
	ctx.W.Write("; ")
	ctx.W.Write(iName)
	ctx.W.Write(" < ")
	ctx.W.Write(arrName)
	ctx.W.Write(".length; ")
	ctx.W.Write(iName)
	ctx.W.Write("++) {")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()

	emitForOfBinding(ctx, node.Init, arrName, iName)

	if node.Body != nil && node.Body.Kind == ast.KindBlock {
		for _, s := range node.Body.Statements {
			EmitStatement(ctx, s)
		}
	} else if node.Body != nil {
		EmitStatement(ctx, node.Body)
	}

	ctx.W.DecreaseIndent()
	ctx.W.WriteLine()
	ctx.W.Write("}")
}

func syntheticIdentifier(text string) *ast.Node {
	n := ast.NewNode(ast.KindIdentifier)
	n.Text = text
	return n
}

func syntheticElementAccess(exprName, indexName string) *ast.Node {
	n := ast.NewNode(ast.KindElementAccessExpression)
	n.Expression = syntheticIdentifier(exprName)
	n.ArgumentExpr = syntheticIdentifier(indexName)
	return n
}

// emitForOfBinding writes the per-iteration binding: either a fresh `var`
// declaration (`for (var x of ...)`, possibly a destructuring pattern) or
// an assignment into a pre-existing reference (`for (x of ...)`).
func emitForOfBinding(ctx *Context, init *ast.Node, arrName, iName string) {
	element := syntheticElementAccess(arrName, iName)

	if init.Kind == ast.KindVariableDeclarationList && len(init.DeclarationList) == 1 {
		decl := init.DeclarationList[0].Clone()
		decl.Initializer = element
		ctx.W.Write("var ")
		emitVariableDeclaration(ctx, decl)
		ctx.W.Write(";")
		ctx.W.WriteLine()
		return
	}

	EmitExpression(ctx, init)
	ctx.W.Write(" = ")
	EmitExpression(ctx, element)
	ctx.W.Write(";")
	ctx.W.WriteLine()
}
