package emitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
	"github.com/viant/jsemit/emitcache"
)

// TestEmitCache_SkipsUnchangedSourceReemission covers the skip-cache
// contract: a second Emit call against unchanged source text is never
// needed because Lookup reports a hit with the entry already stored by
// Store on the prior Emit.
func TestEmitCache_SkipsUnchangedSourceReemission(t *testing.T) {
	cache := emitcache.New()
	e := &Emitter{}

	source := []byte("var x = 1;")
	file := ast.NewSourceFile("cached.ts", string(source))
	file.Root.Statements = []*ast.Node{
		variableStatement(variableDeclarationList(ast.FlagNone, variableDeclaration(ident("x"), numLit("1")))),
	}

	_, hit, err := cache.Lookup(file.FileName, source)
	require.NoError(t, err)
	assert.False(t, hit, "cache should start empty")

	result, err := e.Emit(file, ast.DefaultCompilerOptions(), newStubResolver())
	require.NoError(t, err)

	require.NoError(t, cache.Store(file.FileName, source, result.Text, result.SourceMapText))
	assert.Equal(t, 1, cache.Len())

	entry, hit, err := cache.Lookup(file.FileName, source)
	require.NoError(t, err)
	require.True(t, hit, "re-emitting identical source should be a cache hit")
	assert.Equal(t, result.Text, entry.Text)

	changed := []byte("var x = 2;")
	_, hit, err = cache.Lookup(file.FileName, changed)
	require.NoError(t, err)
	assert.False(t, hit, "changed source must miss even under the same file name")
}
