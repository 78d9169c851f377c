package ast

// Node is a tagged-variant AST node: kind-specific data hangs off a
// handful of general-purpose struct fields instead of minting one Go
// type per production. A real checker's AST has ~180 discrete node shapes;
// collapsing them into one struct keeps the single `emit(node)` dispatch
// cheap to write and lets every lowering rule operate on the same shape.
type Node struct {
	Kind Kind

	// Pos/End are byte offsets into SourceFile.Text. Synthesized nodes
	// carry Pos == End == -1 and must never be fed to the Source-Map
	// Recorder (invariant: synthesized spans suppress recording).
	Pos int
	End int

	Parent   *Node
	Children []*Node

	Flags      NodeFlags
	Decorators []*Node

	// Text is the verbatim identifier/literal text for leaf kinds
	// (KindIdentifier, KindStringLiteral, KindNumericLiteral, ...).
	Text string

	// Operator holds the token text for unary/binary/assignment
	// expressions ("+", "===", "??=", ...).
	Operator string

	// NodeID is a stable per-source-file identity used by the Name
	// Generator's node-id -> generated-name map and by the Resolver's
	// block-scoped-variable-id queries. Zero means "not assigned".
	NodeID int

	// Name-bearing children, shared across several kinds.
	Name *Node // declaration name (function/class/variable/parameter/import specifier local name)

	// Expression-only fields.
	Expression *Node   // operand of a unary/await/yield/spread/parenthesized/type-assertion node
	Left       *Node   // LHS of a binary/assignment expression, condition of conditional
	Right      *Node   // RHS of a binary/assignment expression
	WhenTrue   *Node   // conditional expression consequent
	WhenFalse  *Node   // conditional expression alternate
	Arguments  []*Node // call/new arguments, array literal elements, comma-list elements
	Elements   []*Node // array literal / array binding pattern elements
	Properties []*Node // object literal / object binding pattern properties

	// Call/new/property-access/element-access.
	Callee           *Node // call/new/tagged-template expression target
	PropertyName     *Node // `.member` on a property access, or the key of a property assignment
	ArgumentExpr     *Node // `[expr]` on an element access, or a computed property name's inner expression
	TemplateExpr     *Node // template literal attached to a tagged template
	TypeArguments    []*Node

	// Function-shaped nodes (function/arrow/method/constructor/accessor declarations and expressions).
	Parameters []*Node
	Body       *Node // Block for statement-bodied functions, an Expression for concise arrow bodies
	TypeParams []*Node

	// Parameter-only.
	Initializer *Node // default value (parameter, binding element, variable declaration)
	DotDotDot   bool  // true for rest parameters/elements (kept alongside FlagRest for call-site spreads)

	// Class-shaped nodes.
	HeritageClauses []*Node // extends/implements clauses
	Members         []*Node // class/interface body members

	// Statement containers.
	Statements []*Node // block/source-file/case-clause statement lists
	Then       *Node   // if-statement consequent
	Else       *Node   // if-statement alternate
	Condition  *Node   // while/do/for condition
	Init       *Node   // for-statement initializer (VariableDeclarationList or Expression)
	Update     *Node   // for-statement update expression
	Label      *Node   // labeled-statement / break/continue target

	// Variable declarations.
	DeclarationList []*Node // VariableDeclarationList -> []VariableDeclaration

	// Switch/try.
	Clauses    []*Node // switch-statement case/default clauses
	TryBlock   *Node
	CatchVar   *Node
	CatchBlock *Node
	Finally    *Node

	// Module-shaped nodes.
	ModuleSpecifier *Node   // string literal module path
	ImportClause    *Node
	NamedBindings   *Node // NamedImports / NamespaceImport
	Specifiers      []*Node

	// Raw flag text for the rare case a consumer needs to print something
	// this shape doesn't otherwise model (kept intentionally small).
	Raw string

	// LeadingComments/TrailingComments are populated by the external
	// comment-range collaborator; DetachedComments holds a
	// header-style comment block the Comment Router should emit once, up
	// front, and then suppress from LeadingComments for this node.
	LeadingComments   []CommentRange
	TrailingComments  []CommentRange
	DetachedComments  []CommentRange
}

// NewNode allocates a Node of the given kind with default (invalid, i.e.
// synthesized) span. Call SetSpan afterwards for nodes that came from real
// source text.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind, Pos: -1, End: -1, Flags: FlagSynthesized}
}

// SetSpan marks the node as having come from real source text at [pos,end).
func (n *Node) SetSpan(pos, end int) *Node {
	n.Pos, n.End = pos, end
	n.Flags = n.Flags.Clear(FlagSynthesized)
	return n
}

// IsSynthesized reports whether the node has no valid source span, per the
// data model's "synthesized nodes carry no valid span" rule.
func (n *Node) IsSynthesized() bool {
	return n.Flags.Has(FlagSynthesized) || n.Pos < 0 || n.End < 0
}

// AddChild appends child to Children and sets its Parent back-reference.
// Most kind-specific slices (Statements, Members, Parameters, ...) are also
// tracked in Children so a generic walk (comment attachment, source-map
// node-boundary dispatch) never needs a kind-specific switch.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.Parent = n
	n.Children = append(n.Children, child)
}

// AddChildren appends each non-nil child via AddChild.
func (n *Node) AddChildren(children ...*Node) {
	for _, c := range children {
		n.AddChild(c)
	}
}

// FirstNonTriviaPos returns the position the Source-Map Recorder should use
// for this node's start span. It returns the node's own Pos; decorators
// that precede the node are not skipped.
func (n *Node) FirstNonTriviaPos() int {
	return n.Pos
}

// Clone produces a shallow copy of n with Parent cleared: it copies scalar
// fields and re-allocates the Children slice, so appending to the copy's
// Children never touches the original's. Every other slice field
// (Statements, Members, Decorators, ...) is shared with the original.
// Children
// are NOT deep-copied here: lowering rules that need a deep copy (e.g.
// duplicating a simple identifier reference into two evaluation sites)
// build a fresh Node from the scalar fields intentionally rather than
// cloning a whole subtree.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := *n
	clone.Parent = nil
	clone.Children = append([]*Node(nil), n.Children...)
	return &clone
}
