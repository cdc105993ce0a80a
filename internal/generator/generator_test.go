package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDLength(t *testing.T) {
	for _, length := range []int{4, 7, 12} {
		g := New(length)
		id, err := g.NewID()
		require.NoError(t, err)
		assert.Len(t, id, length)
	}
}

func TestNewDefaultsLength(t *testing.T) {
	assert.Equal(t, DefaultLength, New(0).Length())
	assert.Equal(t, DefaultLength, New(-3).Length())
}

func TestNewIDAlphabet(t *testing.T) {
	g := New(64)

	id, err := g.NewID()
	require.NoError(t, err)

	for _, c := range id {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}
}

func TestNewIDVariety(t *testing.T) {
	g := New(8)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := g.NewID()
		require.NoError(t, err)
		seen[id] = true
	}

	// 100 draws from 62^8 should never collide.
	assert.Len(t, seen, 100)
}
