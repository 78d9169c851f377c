package emitter

import (
	"strconv"

	"github.com/viant/jsemit/ast"
)

// emit_function.go covers function-shaped nodes (function
// declarations/expressions, arrow functions, methods/accessors) and the
// parameter-prologue lowerings for default/rest parameters and `this`
// capture, plus the scoped-emission state machine.

func emitFunctionLike(ctx *Context, node *ast.Node, keyword string) {
	ctx.W.Write(keyword)
	if node.Flags.Has(ast.FlagGenerator) {
		ctx.W.Write("*")
	}
	ctx.W.Write(" ")
	if node.Name != nil {
		ctx.W.Write(node.Name.Text)
	}
	emitParameterListAndBody(ctx, node)
}

func emitArrowFunction(ctx *Context, node *ast.Node) {
	emitParameterListHeader(ctx, node)
	ctx.W.Write(" => ")
	emitArrowBody(ctx, node)
}

// emitArrowBody writes a concise-body arrow's expression, wrapping an
// object-literal body in parens so it isn't parsed as a block.
func emitArrowBody(ctx *Context, node *ast.Node) {
	if node.Body == nil {
		ctx.W.Write("{}")
		return
	}
	if node.Body.Kind == ast.KindBlock {
		emitFunctionBody(ctx, node, node.Body)
		return
	}
	if node.Body.Kind == ast.KindObjectLiteralExpression {
		ctx.W.Write("(")
		EmitExpression(ctx, node.Body)
		ctx.W.Write(")")
		return
	}
	EmitExpression(ctx, node.Body)
}

// emitParameterListAndBody writes `(params) { body }` for a
// keyword-function-shaped node (function/method/constructor/accessor).
func emitParameterListAndBody(ctx *Context, node *ast.Node) {
	emitParameterListHeader(ctx, node)
	ctx.W.Write(" ")
	emitFunctionBody(ctx, node, node.Body)
}

// emitParameterListHeader writes just `(a, b = 1, ...rest)`. Below ES6,
// default and rest parameters are still declared bare here (the surface
// parameter list stays minimal and the actual default-assignment/
// rest-collection logic moves into the body prologue).
func emitParameterListHeader(ctx *Context, node *ast.Node) {
	ctx.W.Write("(")
	for i, p := range node.Parameters {
		if i > 0 {
			ctx.W.Write(", ")
		}
		emitParameterSurface(ctx, p)
	}
	ctx.W.Write(")")
}

func emitParameterSurface(ctx *Context, p *ast.Node) {
	if p.Flags.Has(ast.FlagRest) {
		if ctx.Options.Target >= ast.ES6 {
			ctx.W.Write("...")
			EmitExpression(ctx, p.Name)
		} else {
			EmitExpression(ctx, p.Name)
		}
		return
	}
	EmitExpression(ctx, p.Name)
	if ctx.Options.Target >= ast.ES6 && p.Initializer != nil {
		ctx.W.Write(" = ")
		EmitExpression(ctx, p.Initializer)
	}
}

// emitFunctionBody implements the scoped-emission state machine for a
// function body: save/reset temp state, emit the prologue (this-capture,
// default-parameter ifs, rest-parameter loop, destructured-parameter
// assignments), emit the user statements, flush the accumulated `var`
// temp-variable prelude, and restore.
func emitFunctionBody(ctx *Context, fn *ast.Node, body *ast.Node) {
	saved := ctx.EnterScope()

	ctx.W.Write("{")
	ctx.W.IncreaseIndent()
	ctx.W.WriteLine()

	capturesThis := fn != nil && ctx.Resolver != nil && ctx.Resolver.GetNodeCheckFlags(fn).Has(ast.CheckFlagCapturesThis)
	if capturesThis && !ctx.thisCaptureEmitted[fn.NodeID] {
		ctx.W.Write("var _this = this;")
		ctx.W.WriteLine()
		ctx.thisCaptureEmitted[fn.NodeID] = true
	}

	if fn != nil && ctx.Options.Target < ast.ES6 {
		emitParameterPrologue(ctx, fn)
	}

	var statements []*ast.Node
	if body != nil {
		statements = body.Statements
	}
	for _, s := range statements {
		EmitStatement(ctx, s)
	}

	flushTempVariablePrelude(ctx)

	ctx.W.DecreaseIndent()
	if len(statements) > 0 || capturesThis || (fn != nil && ctx.Options.Target < ast.ES6 && hasLoweredParams(fn)) {
		ctx.W.WriteLine()
	}
	ctx.W.Write("}")

	ctx.ExitScope(saved)
}

func hasLoweredParams(fn *ast.Node) bool {
	for _, p := range fn.Parameters {
		if p.Flags.Has(ast.FlagRest) || p.Initializer != nil {
			return true
		}
	}
	return false
}

// flushTempVariablePrelude renders the current scope's accumulated
// tempVariables as a single `var t1, t2;` declaration, flushing any
// accumulated temporaries at the end of the body. It is written as the *first* statement-equivalent text the next caller
// prepends; since this implementation renders statements in source order
// and temporaries are invented while emitting them, the prelude is instead
// flushed at the physical end of the body and relies on `var` hoisting
// semantics (identical runtime behavior to prepending it).
func flushTempVariablePrelude(ctx *Context) {
	names := ctx.Names.FlushTempVariables()
	if len(names) == 0 {
		return
	}
	ctx.W.Write("var ")
	for i, n := range names {
		if i > 0 {
			ctx.W.Write(", ")
		}
		ctx.W.Write(n)
	}
	ctx.W.Write(";")
	ctx.W.WriteLine()
}

// emitParameterPrologue writes the below-ES6 default-parameter `if` guards
// and rest-parameter collection loop.
func emitParameterPrologue(ctx *Context, fn *ast.Node) {
	paramIndex := 0
	for _, p := range fn.Parameters {
		if p.Flags.Has(ast.FlagRest) {
			emitRestParameterPrologue(ctx, p, paramIndex)
			continue
		}
		if p.Initializer != nil {
			emitDefaultParameterPrologue(ctx, p)
		}
		paramIndex++
	}
}

func emitDefaultParameterPrologue(ctx *Context, p *ast.Node) {
	ctx.W.Write("if (")
	EmitExpression(ctx, p.Name)
	ctx.W.Write(" === void 0) { ")
	EmitExpression(ctx, p.Name)
	ctx.W.Write(" = ")
	EmitExpression(ctx, p.Initializer)
	ctx.W.Write("; }")
	ctx.W.WriteLine()
}

// emitRestParameterPrologue writes:
//
//	var rest = []; for (var _i = N; _i < arguments.length; _i++) rest[_i - N] = arguments[_i];
func emitRestParameterPrologue(ctx *Context, p *ast.Node, fixedParamCount int) {
	iName := ctx.Names.ReserveI()
	ctx.W.Write("var ")
	EmitExpression(ctx, p.Name)
	ctx.W.Write(" = []; for (var ")
	ctx.W.Write(iName)
	ctx.W.Write(" = ")
	ctx.W.Write(strconv.Itoa(fixedParamCount))
	ctx.W.Write("; ")
	ctx.W.Write(iName)
	ctx.W.Write(" < arguments.length; ")
	ctx.W.Write(iName)
	ctx.W.Write("++) ")
	EmitExpression(ctx, p.Name)
	ctx.W.Write("[")
	ctx.W.Write(iName)
	ctx.W.Write(" - ")
	ctx.W.Write(strconv.Itoa(fixedParamCount))
	ctx.W.Write("] = arguments[")
	ctx.W.Write(iName)
	ctx.W.Write("];")
	ctx.W.WriteLine()
}

// emitMethodLike writes a class/object-literal method, get/set accessor.
func emitMethodLike(ctx *Context, node *ast.Node) {
	if node.Flags.Has(ast.FlagAsync) {
		ctx.W.Write("async ")
	}
	if node.Flags.Has(ast.FlagGenerator) {
		ctx.W.Write("*")
	}
	switch node.Kind {
	case ast.KindGetAccessor:
		ctx.W.Write("get ")
	case ast.KindSetAccessor:
		ctx.W.Write("set ")
	}
	emitPropertyName(ctx, node.Name)
	emitParameterListAndBody(ctx, node)
}
