package scalar

// Multiply sets out to the product of a and b modulo the group order
// and returns out. Multiplication is closed over the field, so every
// pair of field elements yields a field element with no failure mode.
func Multiply(out, a, b *Scalar) *Scalar {
	return out.Multiply(a, b)
}

// MultiplyBuffers runs the whole buffer-level path: decode both
// operands, multiply, re-encode the product into out. This is the
// entire per-call data path of the exported boundary. out may alias
// either input.
func MultiplyBuffers(out, s1, s2 *Buffer) *Buffer {
	var a, b Scalar
	BytesToScalar(&a, *s1)
	BytesToScalar(&b, *s2)
	return out.SetScalar(a.Multiply(&a, &b))
}
