package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/fixtures"
)

func moduleOptions(kind ast.ModuleKind) *ast.CompilerOptions {
	return &ast.CompilerOptions{Target: ast.ES5, Module: kind}
}

func exportedVarStatement(name string, value *ast.Node) *ast.Node {
	decl := variableDeclaration(ident(name), value)
	list := variableDeclarationList(ast.FlagNone, decl)
	stmt := variableStatement(list)
	stmt.Flags |= ast.FlagExport
	return stmt
}

func fileWithStatements(name string, statements ...*ast.Node) *ast.SourceFile {
	file := ast.NewSourceFile(name, "")
	file.Root.Statements = statements
	file.IsExternalModule = true
	return file
}

// TestEmitProject_SystemModule_AssignsDistinctExportsParamPerFile covers
// System module registration across a multi-file project: each file gets
// its own stable exports_N registrar name instead of always exports_1.
func TestEmitProject_SystemModule_AssignsDistinctExportsParamPerFile(t *testing.T) {
	fileA := fileWithStatements("a.ts", exportedVarStatement("value", numLit("1")))
	fileB := fileWithStatements("b.ts", exportedVarStatement("other", numLit("2")))

	pkg := &ast.Package{Name: "main"}
	pkg.AddFile(fileA)
	pkg.AddFile(fileB)

	proj := &ast.Project{Name: "proj"}
	proj.AddPackage(pkg)

	results, err := EmitProject(proj, moduleOptions(ast.ModuleSystem), newStubResolver())
	require.NoError(t, err)
	require.Len(t, results, 2)

	textA := string(results[0].Text)
	textB := string(results[1].Text)

	assert.Contains(t, textA, "function (exports_1)")
	assert.Contains(t, textA, `exports_1("value", value = 1);`)

	assert.Contains(t, textB, "function (exports_2)")
	assert.Contains(t, textB, `exports_2("other", other = 2);`)

	for _, text := range []string{textA, textB} {
		errs, err := fixtures.AssertParses([]byte(text))
		require.NoError(t, err)
		assert.Empty(t, errs, "emitted text: %s", text)
	}
}

// TestEmitProject_SystemModule_StandaloneFallsBackToExports1 covers a
// single file emitted with no enclosing Project: the registrar falls back
// to exports_1.
func TestEmitProject_SystemModule_StandaloneFallsBackToExports1(t *testing.T) {
	e := &Emitter{}
	file := fileWithStatements("solo.ts", exportedVarStatement("value", numLit("1")))

	result, err := e.Emit(file, moduleOptions(ast.ModuleSystem), newStubResolver())
	require.NoError(t, err)

	text := string(result.Text)
	assert.Contains(t, text, "function (exports_1)")
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}

// TestEmitModule_CommonJS covers the CommonJS envelope: an exported var
// statement assigns directly onto the `exports` object.
func TestEmitModule_CommonJS(t *testing.T) {
	e := &Emitter{}
	file := fileWithStatements("mod.ts", exportedVarStatement("value", numLit("1")))

	result, err := e.Emit(file, moduleOptions(ast.ModuleCommonJS), newStubResolver())
	require.NoError(t, err)

	text := string(result.Text)
	assert.Contains(t, text, `exports.value = value;`)
	errs, err := fixtures.AssertParses([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, errs, "emitted text: %s", text)
}
