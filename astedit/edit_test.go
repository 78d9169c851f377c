package astedit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/jsemit/ast"
)

func namedStatement(name string) *ast.Node {
	n := ast.NewNode(ast.KindExpressionStatement)
	n.Text = name
	return n
}

func TestInsertAppendPrependStatement(t *testing.T) {
	block := ast.NewNode(ast.KindBlock)
	require.NoError(t, AppendStatement(block, namedStatement("a")))
	require.NoError(t, AppendStatement(block, namedStatement("c")))
	require.NoError(t, InsertStatement(block, 1, namedStatement("b")))
	require.NoError(t, PrependStatement(block, namedStatement("first")))

	var order []string
	for _, s := range block.Statements {
		order = append(order, s.Text)
		assert.Equal(t, block, s.Parent)
	}
	assert.Equal(t, []string{"first", "a", "b", "c"}, order)
}

func TestRemoveAndReplaceStatement(t *testing.T) {
	block := ast.NewNode(ast.KindBlock)
	require.NoError(t, AppendStatement(block, namedStatement("a")))
	require.NoError(t, AppendStatement(block, namedStatement("b")))

	require.NoError(t, ReplaceStatement(block, 1, namedStatement("b2")))
	assert.Equal(t, "b2", block.Statements[1].Text)

	require.NoError(t, RemoveStatement(block, 0))
	assert.Len(t, block.Statements, 1)
	assert.Equal(t, "b2", block.Statements[0].Text)
}

func TestStatementBoundsErrors(t *testing.T) {
	block := ast.NewNode(ast.KindBlock)
	assert.Error(t, InsertStatement(block, 1, namedStatement("x")))
	assert.Error(t, RemoveStatement(block, 0))
	assert.Error(t, ReplaceStatement(block, 0, namedStatement("x")))
}

func TestFindStatementIndex(t *testing.T) {
	block := ast.NewNode(ast.KindBlock)
	require.NoError(t, AppendStatement(block, namedStatement("a")))
	require.NoError(t, AppendStatement(block, namedStatement("target")))

	idx := FindStatementIndex(block, func(n *ast.Node) bool { return n.Text == "target" })
	assert.Equal(t, 1, idx)
	assert.Equal(t, -1, FindStatementIndex(block, func(n *ast.Node) bool { return n.Text == "missing" }))
}

func TestMemberCRUD(t *testing.T) {
	class := ast.NewNode(ast.KindClassDeclaration)

	m1 := ast.NewNode(ast.KindMethodDeclaration)
	m1.Name = &ast.Node{Text: "foo"}
	m2 := ast.NewNode(ast.KindMethodDeclaration)
	m2.Name = &ast.Node{Text: "bar"}

	require.NoError(t, AppendMember(class, m1))
	require.NoError(t, InsertMember(class, 0, m2))
	assert.Equal(t, "bar", class.Members[0].Name.Text)
	assert.Equal(t, "foo", class.Members[1].Name.Text)

	assert.True(t, HasMemberNamed(class, "foo"))
	assert.False(t, HasMemberNamed(class, "baz"))

	require.NoError(t, RemoveMember(class, 0))
	assert.Len(t, class.Members, 1)
	assert.Equal(t, "foo", class.Members[0].Name.Text)
}
