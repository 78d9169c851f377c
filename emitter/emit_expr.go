package emitter

import (
	"strconv"

	"github.com/viant/jsemit/ast"
)

// EmitExpression is the single dispatch entry point for expression nodes.
// Below-ES6 lowering rules are consulted inline rather than as a separate
// rewrite pass: lowering is fused with emission.
func EmitExpression(ctx *Context, node *ast.Node) {
	if node == nil {
		return
	}
	ctx.Comments.EmitLeading(ctx.W, node)
	ctx.RecordNodeStart(node)
	emitExpressionWorker(ctx, node)
	ctx.RecordNodeEnd(node)
	ctx.Comments.EmitTrailing(ctx.W, node)
}

// EmitExpressionParenthesized emits expr, wrapping it in parentheses if
// needParens is true — the shared helper every parenthesization decision
// funnels through.
func EmitExpressionParenthesized(ctx *Context, expr *ast.Node, needParens bool) {
	if needParens {
		ctx.W.Write("(")
	}
	EmitExpression(ctx, expr)
	if needParens {
		ctx.W.Write(")")
	}
}

func emitExpressionWorker(ctx *Context, node *ast.Node) {
	switch node.Kind {
	case ast.KindNumericLiteral:
		ctx.W.Write(node.Text)
	case ast.KindStringLiteral:
		ctx.W.Write(quoteJSString(node.Text))
	case ast.KindBooleanLiteral:
		ctx.W.Write(node.Text)
	case ast.KindNullLiteral:
		ctx.W.Write("null")
	case ast.KindRegularExpressionLiteral:
		ctx.W.Write(node.Text)
	case ast.KindIdentifier:
		emitIdentifier(ctx, node)
	case ast.KindPrivateIdentifier:
		ctx.W.Write("#" + node.Text)
	case ast.KindThisExpression:
		emitThisExpression(ctx, node)
	case ast.KindSuperExpression:
		ctx.W.Write("super")
	case ast.KindArrayLiteralExpression:
		emitArrayLiteral(ctx, node)
	case ast.KindObjectLiteralExpression:
		emitObjectLiteral(ctx, node)
	case ast.KindPropertyAccessExpression:
		emitPropertyAccess(ctx, node)
	case ast.KindElementAccessExpression:
		emitElementAccess(ctx, node)
	case ast.KindCallExpression:
		emitCallExpression(ctx, node, false)
	case ast.KindNewExpression:
		emitNewExpression(ctx, node)
	case ast.KindTaggedTemplateExpression:
		emitTaggedTemplate(ctx, node)
	case ast.KindTypeAssertionExpression:
		// Type assertions carry no runtime meaning; peel them per 
		// ("type-assertion peeling").
		EmitExpression(ctx, node.Expression)
	case ast.KindParenthesizedExpression:
		ctx.W.Write("(")
		EmitExpression(ctx, node.Expression)
		ctx.W.Write(")")
	case ast.KindFunctionExpression:
		emitFunctionLike(ctx, node, "function")
	case ast.KindArrowFunction:
		emitArrowFunction(ctx, node)
	case ast.KindClassExpression:
		EmitClassExpression(ctx, node)
	case ast.KindSpreadElement, ast.KindSpreadAssignment:
		ctx.W.Write("...")
		EmitExpression(ctx, node.Expression)
	case ast.KindUnaryExpression, ast.KindPrefixUnaryExpression:
		emitPrefixUnary(ctx, node)
	case ast.KindPostfixUnaryExpression:
		prec := ExpressionPrecedence(node)
		EmitExpressionParenthesized(ctx, node.Expression, NeedsParensForParent(node.Expression, prec, false))
		ctx.W.Write(node.Operator)
	case ast.KindBinaryExpression:
		emitBinaryExpression(ctx, node)
	case ast.KindConditionalExpression:
		emitConditionalExpression(ctx, node)
	case ast.KindAssignmentExpression:
		emitAssignmentExpression(ctx, node)
	case ast.KindCommaListExpression:
		emitCommaList(ctx, node)
	case ast.KindYieldExpression:
		ctx.W.Write("yield")
		if node.Flags.Has(ast.FlagAsync) { // reused bit to mean `yield*`
			ctx.W.Write("*")
		}
		if node.Expression != nil {
			ctx.W.Write(" ")
			EmitExpression(ctx, node.Expression)
		}
	case ast.KindAwaitExpression:
		ctx.W.Write("await ")
		prec := ExpressionPrecedence(node)
		EmitExpressionParenthesized(ctx, node.Expression, NeedsParensForParent(node.Expression, prec, false))
	case ast.KindTemplateLiteral:
		emitTemplateLiteral(ctx, node, nil)
	case ast.KindOmittedExpression:
		// nothing written; caller handles the comma for array elisions.
	default:
		ctx.Diagnostics.Errorf(ctx.File.FileName, node.Pos, node.End-node.Pos, 9001,
			"unsupported expression kind %s", node.Kind)
	}
}

func emitIdentifier(ctx *Context, node *ast.Node) {
	if ctx.Resolver != nil {
		if text, ok := ctx.Resolver.GetExpressionNameSubstitution(node); ok {
			ctx.W.Write(text)
			return
		}
	}
	if node.NodeID != 0 {
		if ctx.Resolver != nil {
			if vid := ctx.Resolver.GetBlockScopedVariableID(node); vid != 0 {
				if renamed, ok := ctx.Names.ResolveBlockScoped(vid); ok {
					ctx.W.Write(renamed)
					return
				}
			}
		}
	}
	ctx.W.Write(node.Text)
}

func emitThisExpression(ctx *Context, node *ast.Node) {
	if enclosing := enclosingCapturingFunction(ctx, node); enclosing != 0 {
		ctx.W.Write("_this")
		return
	}
	ctx.W.Write("this")
}

// enclosingCapturingFunction walks up from node to the nearest function
// ancestor and returns its node id if the Resolver reports it captures
// lexical `this`, else 0.
func enclosingCapturingFunction(ctx *Context, node *ast.Node) int {
	for p := node.Parent; p != nil; p = p.Parent {
		switch p.Kind {
		case ast.KindFunctionDeclaration, ast.KindFunctionExpression, ast.KindMethodDeclaration,
			ast.KindConstructor, ast.KindGetAccessor, ast.KindSetAccessor:
			if ctx.Resolver != nil && ctx.Resolver.GetNodeCheckFlags(p).Has(ast.CheckFlagCapturesThis) {
				return p.NodeID
			}
			return 0
		case ast.KindArrowFunction:
			continue // arrow functions don't introduce a new `this` binding
		}
	}
	return 0
}

func emitArrayLiteral(ctx *Context, node *ast.Node) {
	ctx.W.Write("[")
	for i, el := range node.Elements {
		if i > 0 {
			ctx.W.Write(", ")
		}
		if el == nil || el.Kind == ast.KindOmittedExpression {
			continue
		}
		EmitExpression(ctx, el)
	}
	ctx.W.Write("]")
}

func emitObjectLiteral(ctx *Context, node *ast.Node) {
	if len(node.Properties) == 0 {
		ctx.W.Write("{}")
		return
	}
	multiLine := node.Flags.Has(ast.FlagMultiLine)
	ctx.W.Write("{")
	if multiLine {
		ctx.W.IncreaseIndent()
		ctx.W.WriteLine()
	}
	for i, prop := range node.Properties {
		if i > 0 {
			ctx.W.Write(",")
			if multiLine {
				ctx.W.WriteLine()
			} else {
				ctx.W.Write(" ")
			}
		}
		emitObjectProperty(ctx, prop)
	}
	if multiLine {
		ctx.W.DecreaseIndent()
		ctx.W.WriteLine()
	}
	ctx.W.Write("}")
}

func emitObjectProperty(ctx *Context, prop *ast.Node) {
	switch prop.Kind {
	case ast.KindPropertyAssignment:
		emitPropertyName(ctx, prop.PropertyName)
		ctx.W.Write(": ")
		EmitExpression(ctx, prop.Initializer)
	case ast.KindShorthandPropertyAssignment:
		EmitExpression(ctx, prop.Name)
	case ast.KindSpreadAssignment:
		ctx.W.Write("...")
		EmitExpression(ctx, prop.Expression)
	case ast.KindMethodDeclaration, ast.KindGetAccessor, ast.KindSetAccessor:
		emitMethodLike(ctx, prop)
	default:
		ctx.Diagnostics.Errorf(ctx.File.FileName, prop.Pos, prop.End-prop.Pos, 9002, "unsupported object property kind %s", prop.Kind)
	}
}

func emitPropertyName(ctx *Context, name *ast.Node) {
	if name == nil {
		return
	}
	if name.Kind == ast.KindComputedPropertyName {
		ctx.W.Write("[")
		EmitExpression(ctx, computedPropertyExpression(ctx, name))
		ctx.W.Write("]")
		return
	}
	if name.Kind == ast.KindStringLiteral {
		ctx.W.Write(quoteJSString(name.Text))
		return
	}
	ctx.W.Write(name.Text)
}

// computedPropertyExpression returns the expression a computed property
// name should emit: a captured temporary reference when one was recorded
// for it, else the literal expression.
func computedPropertyExpression(ctx *Context, name *ast.Node) *ast.Node {
	if temp, ok := ctx.computedPropertyTemps[name.NodeID]; ok {
		ref := ast.NewNode(ast.KindIdentifier)
		ref.Text = temp
		return ref
	}
	return name.ArgumentExpr
}

func emitPropertyAccess(ctx *Context, node *ast.Node) {
	prec := ExpressionPrecedence(node)
	EmitExpressionParenthesized(ctx, node.Expression, NeedsParensForParent(node.Expression, prec, false))
	ctx.W.Write(".")
	ctx.W.Write(node.PropertyName.Text)
}

func emitElementAccess(ctx *Context, node *ast.Node) {
	prec := ExpressionPrecedence(node)
	EmitExpressionParenthesized(ctx, node.Expression, NeedsParensForParent(node.Expression, prec, false))
	ctx.W.Write("[")
	EmitExpression(ctx, node.ArgumentExpr)
	ctx.W.Write("]")
}

// emitCallExpression handles both plain calls and the below-ES6 `super(...)`
// / `super.m(...)` / spread-argument lowering for spread call sites.
func emitCallExpression(ctx *Context, node *ast.Node, isNewTarget bool) {
	if !isNewTarget && ctx.Options.Target < ast.ES6 && node.Callee != nil && node.Callee.Kind == ast.KindSuperExpression {
		emitLoweredSuperCall(ctx, node)
		return
	}
	if !isNewTarget && ctx.Options.Target < ast.ES6 && node.Callee != nil &&
		node.Callee.Kind == ast.KindPropertyAccessExpression && node.Callee.Expression.Kind == ast.KindSuperExpression {
		emitLoweredSuperMethodCall(ctx, node)
		return
	}

	if hasSpreadArgument(node.Arguments) && ctx.Options.Target < ast.ES6 {
		emitSpreadCall(ctx, node)
		return
	}

	prec := ExpressionPrecedence(node)
	EmitExpressionParenthesized(ctx, node.Callee, NeedsParensForParent(node.Callee, prec, false))
	ctx.W.Write("(")
	emitArgumentList(ctx, node.Arguments)
	ctx.W.Write(")")
}

func hasSpreadArgument(args []*ast.Node) bool {
	for _, a := range args {
		if a != nil && a.Kind == ast.KindSpreadElement {
			return true
		}
	}
	return false
}

func emitArgumentList(ctx *Context, args []*ast.Node) {
	for i, a := range args {
		if i > 0 {
			ctx.W.Write(", ")
		}
		EmitExpression(ctx, a)
	}
}

// emitSpreadCall lowers `f(a, ...b, c)` to `f.apply(void 0, [a].concat(b,
// [c]))`-equivalent form using the generic `.apply(target, [head].concat(tail))`
// shape.
func emitSpreadCall(ctx *Context, node *ast.Node) {
	ctx.W.Write("(")
	EmitExpression(ctx, node.Callee)
	ctx.W.Write(").apply(void 0, ")
	emitConcatArgs(ctx, node.Arguments)
	ctx.W.Write(")")
}

func emitLoweredSuperCall(ctx *Context, node *ast.Node) {
	if hasSpreadArgument(node.Arguments) {
		ctx.W.Write("_super.apply(this, ")
		emitConcatArgs(ctx, node.Arguments)
		ctx.W.Write(")")
		return
	}
	ctx.W.Write("_super.call(this")
	for _, a := range node.Arguments {
		ctx.W.Write(", ")
		EmitExpression(ctx, a)
	}
	ctx.W.Write(")")
}

func emitLoweredSuperMethodCall(ctx *Context, node *ast.Node) {
	method := node.Callee.PropertyName.Text
	ctx.W.Write("_super.prototype." + method + ".call(this")
	for _, a := range node.Arguments {
		ctx.W.Write(", ")
		EmitExpression(ctx, a)
	}
	ctx.W.Write(")")
}

// emitConcatArgs renders an argument list containing spreads as
// `[head,...].concat(spreadExpr, [tail,...])` chains, grouping consecutive
// non-spread arguments into a single array literal between concat calls.
func emitConcatArgs(ctx *Context, args []*ast.Node) {
	type group struct {
		isSpread bool
		plain    []*ast.Node
		spread   *ast.Node
	}
	var groups []group
	for _, a := range args {
		if a.Kind == ast.KindSpreadElement {
			groups = append(groups, group{isSpread: true, spread: a.Expression})
		} else {
			if len(groups) > 0 && !groups[len(groups)-1].isSpread {
				groups[len(groups)-1].plain = append(groups[len(groups)-1].plain, a)
			} else {
				groups = append(groups, group{plain: []*ast.Node{a}})
			}
		}
	}
	if len(groups) == 0 {
		ctx.W.Write("[]")
		return
	}

	first := groups[0]
	if first.isSpread {
		ctx.W.Write("[]")
	} else {
		ctx.W.Write("[")
		emitArgumentList(ctx, first.plain)
		ctx.W.Write("]")
	}
	rest := groups
	if !first.isSpread {
		rest = groups[1:]
	}
	for _, g := range rest {
		ctx.W.Write(".concat(")
		if g.isSpread {
			EmitExpression(ctx, g.spread)
		} else {
			ctx.W.Write("[")
			emitArgumentList(ctx, g.plain)
			ctx.W.Write("]")
		}
		ctx.W.Write(")")
	}
}

func emitNewExpression(ctx *Context, node *ast.Node) {
	ctx.W.Write("new ")
	prec := precCallNew
	EmitExpressionParenthesized(ctx, node.Callee, NeedsParensForParent(node.Callee, prec, false))
	ctx.W.Write("(")
	emitArgumentList(ctx, node.Arguments)
	ctx.W.Write(")")
}

func emitPrefixUnary(ctx *Context, node *ast.Node) {
	ctx.W.Write(node.Operator)
	if isWordOperator(node.Operator) {
		ctx.W.Write(" ")
	}
	prec := ExpressionPrecedence(node)
	EmitExpressionParenthesized(ctx, node.Expression, NeedsParensForParent(node.Expression, prec, false))
}

func isWordOperator(op string) bool {
	switch op {
	case "typeof", "void", "delete":
		return true
	default:
		return false
	}
}

func emitBinaryExpression(ctx *Context, node *ast.Node) {
	prec := binaryPrecedence(node.Operator)
	EmitExpressionParenthesized(ctx, node.Left, NeedsParensForParent(node.Left, prec, false))
	ctx.W.Write(" " + node.Operator + " ")
	EmitExpressionParenthesized(ctx, node.Right, NeedsParensForParent(node.Right, prec, true))
}

func emitConditionalExpression(ctx *Context, node *ast.Node) {
	prec := precConditional
	EmitExpressionParenthesized(ctx, node.Left, NeedsParensForParent(node.Left, prec+1, false))
	ctx.W.Write(" ? ")
	EmitExpression(ctx, node.WhenTrue)
	ctx.W.Write(" : ")
	EmitExpression(ctx, node.WhenFalse)
}

func emitAssignmentExpression(ctx *Context, node *ast.Node) {
	op := node.Operator
	if op == "" {
		op = "="
	}
	prec := precAssignment
	EmitExpressionParenthesized(ctx, node.Left, NeedsParensForParent(node.Left, prec+1, false))
	ctx.W.Write(" " + op + " ")
	EmitExpressionParenthesized(ctx, node.Right, NeedsParensForParent(node.Right, prec, true))
}

func emitCommaList(ctx *Context, node *ast.Node) {
	for i, e := range node.Arguments {
		if i > 0 {
			ctx.W.Write(", ")
		}
		EmitExpression(ctx, e)
	}
}

// quoteJSString renders text (the unescaped string value) as a
// double-quoted JS string literal.
func quoteJSString(text string) string {
	quoted := strconv.Quote(text)
	return quoted
}
