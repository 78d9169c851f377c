package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/fixtures"
)

func superExpr() *ast.Node { return ast.NewNode(ast.KindSuperExpression) }

// TestEmitClassDeclaration_NativeES6 covers a plain ES6-target class: it
// should pass through as real `class ... extends ... { }` syntax.
func TestEmitClassDeclaration_NativeES6(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES6))

	greet := method("greet", nil, block(returnStmt(strLit("hi"))))
	class := classDecl("Greeter", nil, greet)

	text := emitStatementText(ctx, class)

	assert.Contains(t, text, "class Greeter {")
	assert.Contains(t, text, "greet()")
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitClassDeclaration_LoweredIIFE_WithSuper covers below-ES6 class
// lowering: extends becomes an IIFE taking `_super`, with `__extends`
// injected once and the constructor's `super(...)` call rewritten to
// `_super.call(this, ...)`.
func TestEmitClassDeclaration_LoweredIIFE_WithSuper(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	ctor := constructor(
		[]*ast.Node{parameter("name")},
		block(exprStmt(call(superExpr(), ident("name")))),
	)
	class := classDecl("Dog", ident("Animal"), ctor)

	text := emitStatementText(ctx, class)

	assert.Contains(t, text, "__extends")
	assert.Contains(t, text, "(function (_super) {")
	assert.Contains(t, text, "function Dog(name)")
	assert.Contains(t, text, "_super.call(this, name)")
	assert.Contains(t, text, "return Dog;")
	assert.Contains(t, text, "}(Animal))")

	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitClassDeclaration_Decorators covers class- and member-level
// decorator lowering: a class decorator wraps the bound class value in
// `__decorate`, and a decorated method gets its own `__decorate` call
// against the prototype once the class exists.
func TestEmitClassDeclaration_Decorators(t *testing.T) {
	ctx := newTestContext(esOptions(ast.ES5))

	logged := method("run", nil, block())
	logged.Decorators = []*ast.Node{decorator(ident("log"))}

	class := classDecl("Service", nil, logged)
	class.Decorators = []*ast.Node{decorator(call(ident("injectable")))}

	text := emitStatementText(ctx, class)

	assert.Contains(t, text, "var Service = (function (_super) {")
	assert.Contains(t, text, "Service = __decorate([injectable()], Service);")
	assert.Contains(t, text, `__decorate([log], Service.prototype, "run", null);`)

	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}
