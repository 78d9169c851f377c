package emitcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCache_LookupMissThenHit(t *testing.T) {
	c := New()

	_, hit, err := c.Lookup("a.ts", []byte("const x = 1;"))
	assert.NoError(t, err)
	assert.False(t, hit)

	assert.NoError(t, c.Store("a.ts", []byte("const x = 1;"), []byte("var x = 1;"), nil))

	entry, hit, err := c.Lookup("a.ts", []byte("const x = 1;"))
	assert.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []byte("var x = 1;"), entry.Text)
}

func TestCache_LookupMissesOnChangedSource(t *testing.T) {
	c := New()
	assert.NoError(t, c.Store("a.ts", []byte("const x = 1;"), []byte("var x = 1;"), nil))

	_, hit, err := c.Lookup("a.ts", []byte("const x = 2;"))
	assert.NoError(t, err)
	assert.False(t, hit)
}

func TestCache_Invalidate(t *testing.T) {
	c := New()
	assert.NoError(t, c.Store("a.ts", []byte("const x = 1;"), []byte("var x = 1;"), nil))
	assert.Equal(t, 1, c.Len())

	c.Invalidate("a.ts")
	assert.Equal(t, 0, c.Len())

	_, hit, err := c.Lookup("a.ts", []byte("const x = 1;"))
	assert.NoError(t, err)
	assert.False(t, hit)
}
