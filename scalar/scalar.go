package scalar

import (
	"git.gammaspectra.live/P2Pool/edwards25519" //nolint:depguard
)

// Scalar is an element of the prime-order scalar field of the Ed25519
// curve, always kept in canonical reduced form by the field library.
type Scalar = edwards25519.Scalar

// groupOrder is the order of the Ed25519 basepoint in wire form, i.e., l = 2^252 + 27742317777372353535851937790883648493.
var groupOrder = Buffer{0xed, 0xd3, 0xf5, 0x5c, 0x1a, 0x63, 0x12, 0x58, 0xd6, 0x9c, 0xf7, 0xa2, 0xde, 0xf9, 0xde, 0x14, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10}

// IsReduced reports whether the buffer denotes a canonical field
// element, that is a value strictly below the group order.
func (b *Buffer) IsReduced() bool {
	for n := BufferSize - 1; n >= 0; n-- {
		if b[n] < groupOrder[n] {
			return true
		} else if b[n] > groupOrder[n] {
			return false
		}
	}

	return false
}

// BytesToScalar reconstructs a field element from its wire form using
// the field library's own reduction rule. The 256-bit pattern is
// zero-extended and reduced wide, so the mapping is total: a buffer
// denoting a value at or above the group order silently aliases onto
// its residue. Callers that require canonical semantics must supply
// reduced buffers.
//
//go:nosplit
func BytesToScalar(c *Scalar, buf Buffer) *Scalar {
	var wide [BufferSize * 2]byte
	copy(wide[:], buf[:])
	_, _ = c.SetUniformBytes(wide[:])
	return c
}

// Scalar decodes the buffer into a freshly allocated field element.
func (b *Buffer) Scalar() *Scalar {
	return BytesToScalar(new(Scalar), *b)
}

// SetScalar encodes c into b as the canonical little-endian bit
// decomposition produced by the field library. The result always
// satisfies IsReduced.
func (b *Buffer) SetScalar(c *Scalar) *Buffer {
	copy(b[:], c.Bytes())
	return b
}
