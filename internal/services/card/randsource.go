package card

import (
	"math/rand"
	"strings"
)

// RandomSource supplies the randomness used at issuance. Injectable so
// tests can assert deterministic card numbers and holder names.
type RandomSource interface {
	Digits(n int) string
	Intn(n int) int
}

type mathRandomSource struct{}

// NewRandomSource returns a RandomSource backed by math/rand.
func NewRandomSource() RandomSource {
	return mathRandomSource{}
}

func (mathRandomSource) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + rand.Intn(10)))
	}
	return b.String()
}

func (mathRandomSource) Intn(n int) int {
	return rand.Intn(n)
}
