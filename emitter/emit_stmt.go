package emitter

import "github.com/viant/jsemit/ast"

// emit_stmt.go is the statement-level counterpart of emit_expr.go: a single
// dispatch on node kind that writes each statement shape, fusing in the
// below-ES6 lowerings that are statement-shaped rather than
// expression-shaped (`for`-`of`, destructuring declarations, class
// declarations).

func EmitStatement(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}
	ctx.Comments.EmitDetached(ctx.W, node)
	ctx.Comments.EmitLeading(ctx.W, node)
	ctx.RecordNodeStart(node)
	emitStatementWorker(ctx, node)
	ctx.RecordNodeEnd(node)
	ctx.Comments.EmitTrailing(ctx.W, node)
	ctx.W.WriteLine()
}

func emitStatementWorker(ctx *Context, node *ast.Node) {
	switch node.Kind {
	case ast.KindEmptyStatement:
		ctx.W.Write(";")
	case ast.KindBlock:
		emitBlockStatement(ctx, node)
	case ast.KindExpressionStatement:
		EmitExpression(ctx, node.Expression)
		ctx.W.Write(";")
	case ast.KindIfStatement:
		emitIfStatement(ctx, node)
	case ast.KindDoStatement:
		emitDoStatement(ctx, node)
	case ast.KindWhileStatement:
		emitWhileStatement(ctx, node)
	case ast.KindForStatement:
		emitForStatement(ctx, node)
	case ast.KindForInStatement:
		emitForInStatement(ctx, node)
	case ast.KindForOfStatement:
		emitForOfStatement(ctx, node)
	case ast.KindContinueStatement:
		emitJumpStatement(ctx, "continue", node)
	case ast.KindBreakStatement:
		emitJumpStatement(ctx, "break", node)
	case ast.KindReturnStatement:
		ctx.W.Write("return")
		if node.Expression != nil {
			ctx.W.Write(" ")
			EmitExpression(ctx, node.Expression)
		}
		ctx.W.Write(";")
	case ast.KindWithStatement:
		ctx.W.Write("with (")
		EmitExpression(ctx, node.Expression)
		ctx.W.Write(") ")
		EmitStatementInline(ctx, node.Body)
	case ast.KindSwitchStatement:
		emitSwitchStatement(ctx, node)
	case ast.KindLabeledStatement:
		ctx.W.Write(node.Label.Text)
		ctx.W.Write(": ")
		EmitStatementInline(ctx, node.Body)
	case ast.KindThrowStatement:
		ctx.W.Write("throw ")
		EmitExpression(ctx, node.Expression)
		ctx.W.Write(";")
	case ast.KindTryStatement:
		emitTryStatement(ctx, node)
	case ast.KindDebuggerStatement:
		ctx.W.Write("debugger;")
	case ast.KindVariableStatement:
		emitVariableStatement(ctx, node)
	case ast.KindFunctionDeclaration:
		emitFunctionLike(ctx, node, "function")
	case ast.KindClassDeclaration:
		EmitClassDeclarationStatement(ctx, node)
	case ast.KindImportDeclaration, ast.KindExportDeclaration, ast.KindExportAssignment:
		// Module-shaped statements are rewritten by the module framer
		// , which replaces them outright rather than emitting them
		// through this generic dispatch; reaching here means the caller
		// is emitting a file body directly (e.g. a fixture/test), so the
		// statement is not written at all; only diagnostic 9003 is recorded.
		ctx.Diagnostics.Errorf(ctx.File.FileName, node.Pos, node.End-node.Pos, 9003,
			"module-shaped statement %s must be emitted via the module framer", node.Kind)
	default:
		ctx.Diagnostics.Errorf(ctx.File.FileName, node.Pos, node.End-node.Pos, 9001,
			"unsupported statement kind %s", node.Kind)
	}
}

// EmitStatementInline emits a statement used as the body of an
// if/for/while/labeled statement without a caller-added trailing newline,
// matching the writer convention that EmitStatement always WriteLines
// after itself but a single-statement clause (`if (x) return;`) reads
// better on the consequent line.
func EmitStatementInline(ctx *Context, node *ast.Node) {
	if node == nil {
		ctx.W.Write(";")
		return
	}
	if node.Kind == ast.KindBlock {
		emitBlockStatement(ctx, node)
		return
	}
	ctx.Comments.EmitLeading(ctx.W, node)
	ctx.RecordNodeStart(node)
	emitStatementWorker(ctx, node)
	ctx.RecordNodeEnd(node)
	ctx.Comments.EmitTrailing(ctx.W, node)
}

func emitBlockStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("{")
	if len(node.Statements) == 0 {
		ctx.W.Write("}")
		return
	}
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()
	for _, s := range node.Statements {
		EmitStatement(ctx, s)
	}
	ctx.W.DecreaseIndent()
	ctx.W.Write("}")
}

func emitIfStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("if (")
	EmitExpression(ctx, node.Condition)
	ctx.W.Write(") ")
	EmitStatementInline(ctx, node.Then)
	if node.Else != nil {
		if node.Then != nil && node.Then.Kind == ast.KindBlock {
			ctx.W.Write(" else ")
		} else {
			ctx.W.WriteLine()
			ctx.W.Write("else ")
		}
		EmitStatementInline(ctx, node.Else)
	}
}

func emitDoStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("do ")
	EmitStatementInline(ctx, node.Body)
	ctx.W.Write(" while (")
	EmitExpression(ctx, node.Condition)
	ctx.W.Write(");")
}

func emitWhileStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("while (")
	EmitExpression(ctx, node.Condition)
	ctx.W.Write(") ")
	EmitStatementInline(ctx, node.Body)
}

func emitForStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("for (")
	emitForInitializer(ctx, node.Init)
	ctx.W.Write("; ")
	if node.Condition != nil {
		EmitExpression(ctx, node.Condition)
	}
	ctx.W.Write("; ")
	if node.Update != nil {
		EmitExpression(ctx, node.Update)
	}
	ctx.W.Write(") ")
	EmitStatementInline(ctx, node.Body)
}

func emitForInitializer(ctx *Context, init *ast.Node) {
	if init == nil {
		return
	}
	if init.Kind == ast.KindVariableDeclarationList {
		emitVariableDeclarationList(ctx, init)
		return
	}
	EmitExpression(ctx, init)
}

func emitForInStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("for (")
	emitForInitializer(ctx, node.Init)
	ctx.W.Write(" in ")
	EmitExpression(ctx, node.Expression)
	ctx.W.Write(") ")
	EmitStatementInline(ctx, node.Body)
}

func emitJumpStatement(ctx *Context, keyword string, node *ast.Node) {
	ctx.W.Write(keyword)
	if node.Label != nil {
		ctx.W.Write(" ")
		ctx.W.Write(node.Label.Text)
	}
	ctx.W.Write(";")
}

func emitSwitchStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("switch (")
	EmitExpression(ctx, node.Expression)
	ctx.W.Write(") {")
	ctx.W.IncreaseIndent()
	for _, clause := range node.Clauses {
		ctx.W.WriteLine()
		emitCaseOrDefaultClause(ctx, clause)
	}
	ctx.W.DecreaseIndent()
	ctx.W.WriteLine()
	ctx.W.Write("}")
}

func emitCaseOrDefaultClause(ctx *Context, clause *ast.Node) {
	if clause.Kind == ast.KindCaseClause {
		ctx.W.Write("case ")
		EmitExpression(ctx, clause.Expression)
		ctx.W.Write(":")
	} else {
		ctx.W.Write("default:")
	}
	if len(clause.Statements) == 0 {
		return
	}
	ctx.W.IncreaseIndent()
	for _, s := range clause.Statements {
		ctx.W.WriteLine()
		EmitStatement(ctx, s)
	}
	ctx.W.DecreaseIndent()
}

func emitTryStatement(ctx *Context, node *ast.Node) {
	ctx.W.Write("try ")
	emitBlockStatement(ctx, node.TryBlock)
	if node.CatchBlock != nil {
		ctx.W.Write(" catch ")
		if node.CatchVar != nil {
			ctx.W.Write("(")
			EmitExpression(ctx, node.CatchVar)
			ctx.W.Write(") ")
		}
		emitBlockStatement(ctx, node.CatchBlock)
	}
	if node.Finally != nil {
		ctx.W.Write(" finally ")
		emitBlockStatement(ctx, node.Finally)
	}
}

func emitVariableStatement(ctx *Context, node *ast.Node) {
	if len(node.DeclarationList) == 1 {
		emitVariableDeclarationList(ctx, node.DeclarationList[0])
	}
	ctx.W.Write(";")
}

func declarationKeyword(ctx *Context, list *ast.Node) string {
	if ctx.Options.Target >= ast.ES6 {
		if list.Flags.Has(ast.FlagConst) {
			return "const"
		}
		if list.Flags.Has(ast.FlagLet) {
			return "let"
		}
	}
	return "var"
}

func emitVariableDeclarationList(ctx *Context, list *ast.Node) {
	ctx.W.Write(declarationKeyword(ctx, list))
	ctx.W.Write(" ")
	for i, decl := range list.DeclarationList {
		if i > 0 {
			ctx.W.Write(", ")
		}
		emitVariableDeclaration(ctx, decl)
	}
}

// emitVariableDeclaration writes one binding, lowering an object/array
// destructuring pattern into sequential assignments against a captured
// temporary when the declared name is a pattern rather than a plain
// identifier.
func emitVariableDeclaration(ctx *Context, decl *ast.Node) {
	if decl.Name != nil && (decl.Name.Kind == ast.KindObjectBindingPattern || decl.Name.Kind == ast.KindArrayBindingPattern) {
		emitDestructuringDeclaration(ctx, decl)
		return
	}
	EmitExpression(ctx, decl.Name)
	if decl.Initializer != nil {
		ctx.W.Write(" = ")
		EmitExpression(ctx, decl.Initializer)
	}
}
