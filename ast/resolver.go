package ast

// Resolver is the emitter's only window onto semantics. Every
// method is read-only from the emitter's perspective; a real compiler
// backs this with its type checker and binder, but nothing in this module
// depends on that — tests back it with a hand-rolled stub.
type Resolver interface {
	// HasGlobalName reports whether name is bound by the global scope the
	// checker sees (used so a generated name never shadows a global).
	HasGlobalName(name string) bool

	// GetConstantValue returns the constant value of an enum member or
	// `const` declaration reference, and ok=false when node has none.
	GetConstantValue(node *Node) (value any, ok bool)

	// GetExpressionNameSubstitution returns a replacement identifier text
	// for an expression node (e.g. an enum member reference rewritten to
	// its numeric/string constant, or an import alias rewritten to its
	// target), and ok=false when no substitution applies.
	GetExpressionNameSubstitution(node *Node) (text string, ok bool)

	// GetBlockScopedVariableID returns a stable non-zero id for a
	// let/const declaration (or a reference to one), shared between a
	// declaration and every reference resolving to it. Returns 0 when
	// node is not a block-scoped binding.
	GetBlockScopedVariableID(node *Node) int

	// ResolvesToSomeValue reports whether a name used inside a block
	// scope already resolves to a value in an enclosing scope. The emitter
	// in this module does not call it; NameGenerator.RenameBlockScoped
	// does not consult it.
	ResolvesToSomeValue(scope *Node, name string) bool

	// GetNodeCheckFlags reports checker-computed facts about node: today
	// only whether a nested function captures the lexical `this` of its
	// enclosing function (CheckFlagCapturesThis), consulted by the `this`
	// capture lowering.
	GetNodeCheckFlags(node *Node) CheckFlags

	// IsReferencedAliasDeclaration reports whether an import/export alias
	// declaration is actually referenced anywhere in value position. The
	// Module Framer does not call it: no alias is elided on this basis.
	IsReferencedAliasDeclaration(node *Node) bool

	// IsValueAliasDeclaration reports whether an import/export alias
	// declaration aliases a value (as opposed to a type-only construct).
	// Like IsReferencedAliasDeclaration, the Module Framer does not call it.
	IsValueAliasDeclaration(node *Node) bool

	// SerializeTypeOfNode, SerializeParameterTypesOfNode and
	// SerializeReturnTypeOfNode return a runtime expression (as an *Node,
	// typically an Identifier or ArrayLiteralExpression) describing the
	// design-time type information `emitDecoratorMetadata` needs for
	// "design:type" / "design:paramtypes" / "design:returntype".
	SerializeTypeOfNode(node *Node) *Node
	SerializeParameterTypesOfNode(node *Node) *Node
	SerializeReturnTypeOfNode(node *Node) *Node
}

// CheckFlags is a small bitset of checker-computed facts about a node,
// separate from NodeFlags because these are Resolver-derived rather than
// syntactic.
type CheckFlags uint32

const (
	CheckFlagNone CheckFlags = 0
	// CheckFlagCapturesThis marks a function whose body (or a function
	// nested inside it) references the lexical `this` of this function.
	CheckFlagCapturesThis CheckFlags = 1 << iota
)
