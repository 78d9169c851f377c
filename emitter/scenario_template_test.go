package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/fixtures"
)

// TestEmitTemplateLiteral_NativeES6 covers the ES6-target passthrough: a
// template literal is emitted verbatim with backticks and `${...}` holes.
func TestEmitTemplateLiteral_NativeES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES6))

	tmpl := templateLiteral(
		templateSpan("hello, ", ident("name")),
		templateSpan("!", nil),
	)
	stmt := exprStmt(tmpl)

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, "`hello, ${name}!`")
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitTemplateLiteral_ConcatenatedBelowES6 covers below-ES6 lowering to
// a `+` chain of string literals and parenthesized holes.
func TestEmitTemplateLiteral_ConcatenatedBelowES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	tmpl := templateLiteral(
		templateSpan("hello, ", ident("name")),
		templateSpan("!", nil),
	)
	stmt := exprStmt(tmpl)

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, `"hello, " + name + "!"`)
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitTaggedTemplate_LoweredBelowES6 covers a tagged template below
// ES6: a cooked/raw strings array is captured in a temp and passed to the
// tag call alongside each interpolated expression.
func TestEmitTaggedTemplate_LoweredBelowES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	tmpl := templateLiteral(
		templateSpan("hello, ", ident("name")),
		templateSpan("!", nil),
	)
	tagged := taggedTemplate(ident("tag"), tmpl)
	stmt := exprStmt(tagged)

	text := emitStatementText(ctx, stmt)

	assert.Contains(t, text, `_a = ["hello, ", "!"]`)
	assert.Contains(t, text, "_a.raw = ")
	assert.Contains(t, text, "tag(_a, name)")

	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}
