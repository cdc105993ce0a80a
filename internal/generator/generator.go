// Package generator mints the random identifiers used as short-link path
// segments. Uniqueness is not guaranteed here; the store's create-only Put
// rejects a taken id and callers mint again.
package generator

import (
	"crypto/rand"
	"math/big"
	"strings"
)

// alphabet is the 62-symbol set identifiers are drawn from.
const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultLength keeps the collision space large enough that the bounded
// retry on duplicate keys practically never triggers. Four-character codes
// saturate quickly at scale.
const DefaultLength = 7

// Generator produces fixed-length random identifiers.
type Generator struct {
	length int
}

// New returns a Generator producing ids of the given length. Non-positive
// lengths fall back to DefaultLength.
func New(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Length returns the configured identifier length.
func (g *Generator) Length() int {
	return g.length
}

// NewID returns a fresh identifier drawn uniformly from the alphabet.
func (g *Generator) NewID() (string, error) {
	var sb strings.Builder
	sb.Grow(g.length)

	max := big.NewInt(int64(len(alphabet)))
	for i := 0; i < g.length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		sb.WriteByte(alphabet[n.Int64()])
	}
	return sb.String(), nil
}
