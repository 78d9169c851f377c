package emitter

import "github.com/viant/jsemit/ast"

// stubResolver is a hand-rolled ast.Resolver double: every method returns
// the zero/no-op answer except where a test explicitly overrides a field,
// matching the package doc's "tests back it with a hand-rolled stub" note.
type stubResolver struct {
	globalNames     map[string]bool
	capturesThis    map[*ast.Node]bool
	blockScopedVars map[*ast.Node]int
}

func newStubResolver() *stubResolver {
	return &stubResolver{
		globalNames:     map[string]bool{},
		capturesThis:    map[*ast.Node]bool{},
		blockScopedVars: map[*ast.Node]int{},
	}
}

func (r *stubResolver) HasGlobalName(name string) bool { return r.globalNames[name] }

func (r *stubResolver) GetConstantValue(node *ast.Node) (any, bool) { return nil, false }

func (r *stubResolver) GetExpressionNameSubstitution(node *ast.Node) (string, bool) {
	return "", false
}

func (r *stubResolver) GetBlockScopedVariableID(node *ast.Node) int {
	return r.blockScopedVars[node]
}

func (r *stubResolver) ResolvesToSomeValue(scope *ast.Node, name string) bool { return false }

func (r *stubResolver) GetNodeCheckFlags(node *ast.Node) ast.CheckFlags {
	if r.capturesThis[node] {
		return ast.CheckFlagCapturesThis
	}
	return ast.CheckFlagNone
}

func (r *stubResolver) IsReferencedAliasDeclaration(node *ast.Node) bool { return true }
func (r *stubResolver) IsValueAliasDeclaration(node *ast.Node) bool      { return true }

func (r *stubResolver) SerializeTypeOfNode(node *ast.Node) *ast.Node           { return nil }
func (r *stubResolver) SerializeParameterTypesOfNode(node *ast.Node) *ast.Node { return nil }
func (r *stubResolver) SerializeReturnTypeOfNode(node *ast.Node) *ast.Node     { return nil }

// newTestContext builds a Context over a throwaway SourceFile, the way a
// fixture-driven test exercises one emitter entry point in isolation
// without going through the full Orchestrator.
func newTestContext(options *ast.CompilerOptions) *Context {
	file := ast.NewSourceFile("test.ts", "")
	return NewContext(file, options, newStubResolver(), "test.js")
}

func esOptions(target ast.ScriptTarget) *ast.CompilerOptions {
	return &ast.CompilerOptions{Target: target, Module: ast.ModuleNone}
}

func ident(text string) *ast.Node {
	n := ast.NewNode(ast.KindIdentifier)
	n.Text = text
	return n
}

func numLit(text string) *ast.Node {
	n := ast.NewNode(ast.KindNumericLiteral)
	n.Text = text
	return n
}

func strLit(text string) *ast.Node {
	n := ast.NewNode(ast.KindStringLiteral)
	n.Text = text
	return n
}

func exprStmt(expr *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindExpressionStatement)
	n.Expression = expr
	return n
}

func returnStmt(expr *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindReturnStatement)
	n.Expression = expr
	return n
}

func block(statements ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindBlock)
	n.Statements = statements
	return n
}

func binary(op string, left, right *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindBinaryExpression)
	n.Operator = op
	n.Left = left
	n.Right = right
	return n
}

func assign(left, right *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindAssignmentExpression)
	n.Operator = "="
	n.Left = left
	n.Right = right
	return n
}

func call(callee *ast.Node, args ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindCallExpression)
	n.Callee = callee
	n.Arguments = args
	return n
}

func propertyAccess(expr *ast.Node, property string) *ast.Node {
	n := ast.NewNode(ast.KindPropertyAccessExpression)
	n.Expression = expr
	n.PropertyName = ident(property)
	return n
}

func decorator(expr *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindDecorator)
	n.Expression = expr
	return n
}

func parameter(name string) *ast.Node {
	n := ast.NewNode(ast.KindParameter)
	n.Name = ident(name)
	return n
}

func method(name string, params []*ast.Node, body *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindMethodDeclaration)
	n.Name = ident(name)
	n.Parameters = params
	n.Body = body
	return n
}

func classDecl(name string, base *ast.Node, members ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindClassDeclaration)
	n.Name = ident(name)
	n.Members = members
	if base != nil {
		heritage := ast.NewNode(ast.KindHeritageClause)
		heritage.Arguments = []*ast.Node{base}
		n.HeritageClauses = []*ast.Node{heritage}
	}
	return n
}

func constructor(params []*ast.Node, body *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindConstructor)
	n.Parameters = params
	n.Body = body
	return n
}

func variableDeclarationList(flags ast.NodeFlags, decls ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindVariableDeclarationList)
	n.Flags = flags
	n.DeclarationList = decls
	return n
}

func variableDeclaration(name *ast.Node, initializer *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindVariableDeclaration)
	n.Name = name
	n.Initializer = initializer
	return n
}

func variableStatement(list *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindVariableStatement)
	n.DeclarationList = []*ast.Node{list}
	return n
}

func bindingElement(name string, propertyName *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindBindingElement)
	n.Name = ident(name)
	n.PropertyName = propertyName
	return n
}

func objectBindingPattern(elements ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindObjectBindingPattern)
	n.Elements = elements
	return n
}

func forOfStatement(init *ast.Node, iterable *ast.Node, body *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindForOfStatement)
	n.Init = init
	n.Expression = iterable
	n.Body = body
	return n
}

func templateSpan(text string, expr *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindTemplateSpan)
	n.Text = text
	n.Expression = expr
	return n
}

func templateLiteral(spans ...*ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindTemplateLiteral)
	n.Elements = spans
	return n
}

func taggedTemplate(tag *ast.Node, template *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindTaggedTemplateExpression)
	n.Callee = tag
	n.TemplateExpr = template
	return n
}

func importDeclaration(specifier string, clause *ast.Node) *ast.Node {
	n := ast.NewNode(ast.KindImportDeclaration)
	n.ModuleSpecifier = strLit(specifier)
	n.ImportClause = clause
	return n
}

func importClauseDefault(name string) *ast.Node {
	n := ast.NewNode(ast.KindImportClause)
	n.Name = ident(name)
	return n
}

// emitStatementText renders node through EmitStatement into a fresh Writer
// and returns the accumulated text, for tests that only need one
// statement's output in isolation.
func emitStatementText(ctx *Context, node *ast.Node) string {
	ctx.W = NewWriter()
	EmitStatement(ctx, node)
	return ctx.W.GetText()
}
