package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/fixtures"
)

// TestEmitForOfStatement_NativeES6 covers the ES6-target passthrough: the
// statement is emitted verbatim as `for (... of ...) ...`.
func TestEmitForOfStatement_NativeES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES6))

	init := variableDeclarationList(ast.FlagConst, variableDeclaration(ident("item"), nil))
	stmt := forOfStatement(init, ident("items"), block(exprStmt(call(propertyAccess(ident("console"), "log"), ident("item")))))

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, "for (const item of items)")
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitForOfStatement_LoweredBelowES6 covers the below-ES6 indexed-loop
// lowering over an array-like iterated expression.
func TestEmitForOfStatement_LoweredBelowES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	init := variableDeclarationList(ast.FlagNone, variableDeclaration(ident("item"), nil))
	stmt := forOfStatement(init, ident("items"), block(exprStmt(call(propertyAccess(ident("console"), "log"), ident("item")))))

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, "_i = 0")
	assert.Contains(t, text, "_a = items")
	assert.Contains(t, text, "_i < _a.length")
	assert.Contains(t, text, "var item = _a[_i];")

	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}
