package emitter

import "github.com/viant/jsemit/ast"

// helperFlags tracks which once-per-file runtime helpers have
// already been emitted.
type helperFlags struct {
	extends  bool
	decorate bool
	param    bool
	metadata bool
	export   bool // __export, used by CommonJS `export * from`
}

// Context is the EmitContext threaded through the traversal (Design Notes:
// "pass an EmitContext through the traversal" instead of global mutable
// state). It bundles every per-source-file collaborator the emitter needs.
type Context struct {
	Options  *ast.CompilerOptions
	Resolver ast.Resolver
	File     *ast.SourceFile

	// Project is the multi-file compile unit File belongs to, or nil for a
	// standalone single-file Emit call. The System module framer consults
	// it for a stable, file-specific registrar index (exports_N) instead
	// of always naming the registrar exports_1.
	Project *ast.Project

	W        *Writer
	Names    *NameGenerator
	Comments *CommentRouter
	Map      *SourceMapRecorder // nil when sourceMap is off

	Diagnostics *ast.DiagnosticList

	helpers helperFlags

	// computedPropertyTemps maps a ComputedPropertyName node id to a
	// temporary holding its evaluated value; computedPropertyExpression
	// returns that temporary instead of the expression when an entry
	// exists. Nothing in
	// this package adds entries, so computed names are always written
	// inline.
	computedPropertyTemps map[int]string

	// thisCaptureEmitted tracks, per enclosing function (by node id),
	// whether `var _this = this;` has already been emitted for it, so a
	// second nested closure reuses the same `_this` binding.
	thisCaptureEmitted map[int]bool

	nextNodeID int
}

// NewContext builds a fresh per-source-file Context. sourceMap controls
// whether a SourceMapRecorder is installed: the Orchestrator decides
// whether source maps are requested and installs the mapping wrapper.
func NewContext(file *ast.SourceFile, options *ast.CompilerOptions, resolver ast.Resolver, outputFile string) *Context {
	ctx := &Context{
		Options:                options,
		Resolver:               resolver,
		File:                   file,
		W:                      NewWriter(),
		Names:                  NewNameGenerator(file),
		Comments:               NewCommentRouter(file.Text, options.RemoveComments),
		Diagnostics:            &ast.DiagnosticList{},
		computedPropertyTemps:  map[int]string{},
		thisCaptureEmitted:     map[int]bool{},
	}
	if options.SourceMap {
		ctx.Map = NewSourceMapRecorder(outputFile, options.SourceRoot)
		ctx.Map.PushSourceFile(file.FileName)
	}
	return ctx
}

// AssignNodeID assigns node a stable, file-local, non-zero id if it
// doesn't already have one, for use as a NameGenerator/computed-property
// memo key.
func (c *Context) AssignNodeID(node *ast.Node) int {
	if node.NodeID != 0 {
		return node.NodeID
	}
	c.nextNodeID++
	node.NodeID = c.nextNodeID
	return node.NodeID
}

// scopeState is the full save/restore bundle for a function-body,
// class-body, or module-body boundary.
type scopeState struct {
	names namegenState
}

// EnterScope saves the per-scope NameGenerator state and resets it to
// empty.
func (c *Context) EnterScope() scopeState {
	return scopeState{names: c.Names.Save()}
}

// ExitScope restores the NameGenerator state saved by EnterScope. Callers
// must have already flushed (via c.Names.FlushTempVariables) and rendered
// whatever temp-variable prelude the nested scope accumulated.
func (c *Context) ExitScope(saved scopeState) {
	c.Names.Restore(saved.names)
}

// RecordNodeStart/RecordNodeEnd bracket a node's emission with source-map
// spans. For a synthesized node both return without recording, so its
// text falls under the span recorded for its parent.
func (c *Context) RecordNodeStart(node *ast.Node) {
	if c.Map == nil || node == nil || node.IsSynthesized() {
		return
	}
	line, col := c.File.LineAndColumnOf(node.FirstNonTriviaPos())
	c.Map.RecordEmitPos(c.W.GetLine(), c.W.GetColumn(), line, col, true)
}

func (c *Context) RecordNodeEnd(node *ast.Node) {
	if c.Map == nil || node == nil || node.IsSynthesized() {
		return
	}
	line, col := c.File.LineAndColumnOf(node.End)
	c.Map.RecordEmitPos(c.W.GetLine(), c.W.GetColumn(), line, col, false)
}

// RecordToken brackets a synthesized or real token's span, using the
// given source position (pos<0 for a purely synthesized token, which
// records nothing).
func (c *Context) RecordToken(pos int) {
	if c.Map == nil || pos < 0 {
		return
	}
	line, col := c.File.LineAndColumnOf(pos)
	c.Map.RecordEmitPos(c.W.GetLine(), c.W.GetColumn(), line, col, false)
}
