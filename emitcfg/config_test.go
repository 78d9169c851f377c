package emitcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/jsemit/ast"
)

func TestParse(t *testing.T) {
	tests := []struct {
		description string
		yaml        string
		expect      *ast.CompilerOptions
		expectErr   bool
	}{
		{
			description: "defaults when document is empty",
			yaml:        ``,
			expect:      ast.DefaultCompilerOptions(),
		},
		{
			description: "es6 commonjs with source maps",
			yaml: `
target: es6
module: commonjs
sourceMap: true
sourceRoot: /src
removeComments: true
`,
			expect: &ast.CompilerOptions{
				Target:         ast.ES6,
				Module:         ast.ModuleCommonJS,
				SourceMap:      true,
				SourceRoot:     "/src",
				RemoveComments: true,
			},
		},
		{
			description: "unknown target is an error",
			yaml:        `target: es7`,
			expectErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			got, err := Parse([]byte(tc.yaml))
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expect, got)
		})
	}
}
