package docview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDShape(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 24)
		assert.True(t, ValidID(id))
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID("65a1b2c3d4e5f60718293a4b"))
	assert.False(t, ValidID(""))
	assert.False(t, ValidID("123"))
	assert.False(t, ValidID("zz a1b2c3d4e5f60718293a4b"))
	assert.False(t, ValidID("65a1b2c3d4e5f60718293a4bff"))
}

func TestKnownCollection(t *testing.T) {
	assert.True(t, KnownCollection(CollectionNews))
	assert.True(t, KnownCollection(CollectionMusic))
	assert.False(t, KnownCollection("payments"))
}
