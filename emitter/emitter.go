package emitter

import "github.com/viant/jsemit/ast"

// emitter.go is the Orchestrator: the single per-source-file entry
// point that threads a Context through the statement/expression emitters
// and the module framer, and assembles the final `.js` text plus optional
// `.map` JSON sidecar. generalized from a fixed fallback
// template to the full tree-directed dispatch built up across this
// package.
type Emitter struct{}

// EmitResult is the per-file output of Emit.
type EmitResult struct {
	FileName      string
	Text          []byte
	SourceMapText []byte // nil when source maps are disabled
	Diagnostics   []ast.Diagnostic
	Skipped       bool
}

// Emit converts a SourceFile to JavaScript text (and, if requested, a
// source map) under the given options and resolver.
func (e *Emitter) Emit(file *ast.SourceFile, options *ast.CompilerOptions, resolver ast.Resolver) (*EmitResult, error) {
	return e.emit(file, options, resolver, nil)
}

// emit is Emit's project-aware core: proj is nil for a standalone file and
// non-nil when called from EmitProject, so the System module framer can
// assign file-stable exports_N registrar names across a multi-file build.
func (e *Emitter) emit(file *ast.SourceFile, options *ast.CompilerOptions, resolver ast.Resolver, proj *ast.Project) (*EmitResult, error) {
	if options == nil {
		options = ast.DefaultCompilerOptions()
	}
	outputFile := outputFileName(file.FileName, options)

	ctx := NewContext(file, options, resolver, outputFile)
	ctx.Project = proj

	var statements []*ast.Node
	if file.Root != nil {
		statements = file.Root.Statements
	}
	EmitModule(ctx, statements)

	result := &EmitResult{
		FileName:    outputFile,
		Text:        []byte(ctx.W.GetText()),
		Diagnostics: ctx.Diagnostics.SortedUnique(),
	}
	if ctx.Map != nil {
		ctx.Map.Flush()
		data, err := ctx.Map.Data().Marshal()
		if err != nil {
			return nil, err
		}
		result.SourceMapText = data
	}
	return result, nil
}

// outputFileName derives the emitted file name from the source file name,
// swapping its extension for `.js` (TypeScript/JSX/etc. sources all
// compile down to plain JavaScript text here; this module performs no
// parsing, only emission of an already-built tree).
func outputFileName(sourceName string, options *ast.CompilerOptions) string {
	if options.Out != "" {
		return options.Out
	}
	base := sourceName
	for i := len(base) - 1; i >= 0 && i > len(base)-6; i-- {
		if base[i] == '.' {
			return base[:i] + ".js"
		}
	}
	return base + ".js"
}

// EmitProject emits every source file in every package of proj, in the
// Project's stable module-registration order, returning one EmitResult
// per file.
func EmitProject(proj *ast.Project, options *ast.CompilerOptions, resolver ast.Resolver) ([]*EmitResult, error) {
	e := &Emitter{}
	var results []*EmitResult
	for _, pkg := range proj.Packages {
		for _, file := range pkg.Files {
			result, err := e.emit(file, options, resolver, proj)
			if err != nil {
				return nil, err
			}
			results = append(results, result)
		}
	}
	return results, nil
}
