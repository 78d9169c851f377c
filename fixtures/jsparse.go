// Package fixtures gives tests a way to assert that emitted output is
// syntactically well-formed JavaScript. It drives
// github.com/smacker/go-tree-sitter with the JavaScript grammar and walks
// the parsed tree for error/missing nodes rather than extracting any
// declarations - the emitter already knows what it emitted, it only needs
// confirmation that a downstream JS engine would accept the text.
package fixtures

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
)

// SyntaxError describes one parse error tree-sitter located in a source
// text, by byte offset and the offending node's type.
type SyntaxError struct {
	StartByte uint32
	EndByte   uint32
	NodeType  string
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("syntax error (%s) at bytes %d-%d", e.NodeType, e.StartByte, e.EndByte)
}

// AssertParses parses source as JavaScript and returns every syntax error
// tree-sitter's error recovery located. An empty list with a nil error
// means the text parsed cleanly; emitter tests call this on emitted output the
// same way a round-trip test would re-parse generated code.
func AssertParses(source []byte) ([]SyntaxError, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var errs []SyntaxError
	collectSyntaxErrors(tree.RootNode(), &errs)
	return errs, nil
}

func collectSyntaxErrors(node *sitter.Node, errs *[]SyntaxError) {
	if node == nil {
		return
	}
	if node.IsError() || node.IsMissing() {
		*errs = append(*errs, SyntaxError{
			StartByte: node.StartByte(),
			EndByte:   node.EndByte(),
			NodeType:  node.Type(),
		})
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		collectSyntaxErrors(node.Child(i), errs)
	}
}

// ParseFixture parses source and panics on a read error, for use in table-
// driven tests that want the root node of a known-good fixture without
// threading an error return through every case.
func ParseFixture(source []byte) *sitter.Node {
	parser := sitter.NewParser()
	parser.SetLanguage(javascript.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		panic(err)
	}
	return tree.RootNode()
}
