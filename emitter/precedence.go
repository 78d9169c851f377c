package emitter

import "github.com/viant/jsemit/ast"

// precedence.go assigns a numeric binding power to binary/unary operators,
// used two ways: wrapping parentheses based on comparing an
// expression's precedence to its parent's, and — specifically for
// below-ES6 template literal lowering — comparing an interpolated
// expression's precedence to binary `+` to decide whether it needs
// wrapping when spliced into a string-concatenation chain.

const (
	precComma = iota + 1
	precAssignment
	precYield
	precConditional
	precNullish
	precLogicalOr
	precLogicalAnd
	precBitwiseOr
	precBitwiseXor
	precBitwiseAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
	precUnary
	precPostfix
	precCallNew
	precPrimary
)

// binaryPrecedence returns the binding power of a binary operator token.
func binaryPrecedence(op string) int {
	switch op {
	case ",":
		return precComma
	case "=", "+=", "-=", "*=", "/=", "%=", "**=", "<<=", ">>=", ">>>=", "&=", "^=", "|=", "&&=", "||=", "??=":
		return precAssignment
	case "??":
		return precNullish
	case "||":
		return precLogicalOr
	case "&&":
		return precLogicalAnd
	case "|":
		return precBitwiseOr
	case "^":
		return precBitwiseXor
	case "&":
		return precBitwiseAnd
	case "==", "!=", "===", "!==":
		return precEquality
	case "<", ">", "<=", ">=", "instanceof", "in":
		return precRelational
	case "<<", ">>", ">>>":
		return precShift
	case "+", "-":
		return precAdditive
	case "*", "/", "%":
		return precMultiplicative
	case "**":
		return precExponent
	default:
		return precPrimary
	}
}

// ExpressionPrecedence returns the binding power of node as it would be
// printed standalone, the basis for every parenthesization decision.
func ExpressionPrecedence(node *ast.Node) int {
	if node == nil {
		return precPrimary
	}
	switch node.Kind {
	case ast.KindCommaListExpression:
		return precComma
	case ast.KindAssignmentExpression:
		return precAssignment
	case ast.KindYieldExpression:
		return precYield
	case ast.KindConditionalExpression:
		return precConditional
	case ast.KindBinaryExpression:
		return binaryPrecedence(node.Operator)
	case ast.KindPrefixUnaryExpression, ast.KindUnaryExpression, ast.KindAwaitExpression, ast.KindTypeAssertionExpression:
		return precUnary
	case ast.KindPostfixUnaryExpression:
		return precPostfix
	case ast.KindNewExpression:
		if len(node.Arguments) == 0 {
			// `new Foo` without a call parenthesis binds looser than a
			// member access chained onto the result (`new Foo.x` is
			// `new (Foo.x)`), so `(new Foo).x` keeps its parentheses.
			return precUnary
		}
		return precCallNew
	case ast.KindCallExpression, ast.KindTaggedTemplateExpression:
		return precCallNew
	case ast.KindPropertyAccessExpression, ast.KindElementAccessExpression:
		return precCallNew
	case ast.KindSpreadElement, ast.KindSpreadAssignment:
		return precAssignment
	case ast.KindArrowFunction:
		return precAssignment
	case ast.KindParenthesizedExpression:
		return precPrimary
	default:
		return precPrimary
	}
}

// NeedsParensForBinaryPlus reports whether expr needs wrapping when spliced
// as one operand of a string-concatenation chain built from binary `+`:
// each interpolated expression is wrapped in parentheses unless its
// precedence is at least that of binary `+`.
func NeedsParensForBinaryPlus(expr *ast.Node) bool {
	return ExpressionPrecedence(expr) < precAdditive
}

// NeedsParensForParent reports whether child needs wrapping given its
// parent's operator precedence, the general parenthesization rule used by
// the binary/unary/conditional emitters. isRightOperand matters for
// same-precedence non-associative cases (e.g. `a - (b - c)` still needs
// parens even though `-` and `-` share precedence).
func NeedsParensForParent(child *ast.Node, parentPrecedence int, isRightOperand bool) bool {
	childPrec := ExpressionPrecedence(child)
	if childPrec < parentPrecedence {
		return true
	}
	if childPrec == parentPrecedence && isRightOperand {
		return true
	}
	return false
}
