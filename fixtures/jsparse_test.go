package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssertParses_CleanSource(t *testing.T) {
	errs, err := AssertParses([]byte(`var x = 1;
function f(a, b) { return a + b; }
`))
	assert.NoError(t, err)
	assert.Empty(t, errs)
}

func TestAssertParses_ReportsBrokenSource(t *testing.T) {
	errs, err := AssertParses([]byte(`function f( { return; }`))
	assert.NoError(t, err)
	assert.NotEmpty(t, errs)
}

func TestParseFixture_RootNodeType(t *testing.T) {
	root := ParseFixture([]byte(`var x = 1;`))
	assert.Equal(t, "program", root.Type())
}
