package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/fixtures"
)

// TestEmitVariableStatement_DestructuringNativeES6 covers the ES6-target
// passthrough: an object pattern declaration is emitted as real syntax.
func TestEmitVariableStatement_DestructuringNativeES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES6))

	pattern := objectBindingPattern(bindingElement("x", nil), bindingElement("y", nil))
	decl := variableDeclaration(pattern, ident("point"))
	stmt := variableStatement(variableDeclarationList(ast.FlagConst, decl))

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, "const {x, y} = point;")
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitVariableStatement_DestructuringLoweredBelowES6 covers below-ES6
// lowering: the pattern is flattened into a temp capture followed by one
// sequential assignment per leaf binding.
func TestEmitVariableStatement_DestructuringLoweredBelowES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	pattern := objectBindingPattern(bindingElement("x", nil), bindingElement("y", nil))
	decl := variableDeclaration(pattern, ident("point"))
	stmt := variableStatement(variableDeclarationList(ast.FlagNone, decl))

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, "var _a = point, x = _a.x, y = _a.y;")

	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}
