package simd

// V128Not, V128And, etc. operate on the vector as a flat 128-bit bitmask,
// independent of any lane interpretation.

func V128Not(a V128) V128 {
	var r V128
	for i := range a {
		r[i] = ^a[i]
	}
	return r
}

func V128And(a, b V128) V128 {
	var r V128
	for i := range a {
		r[i] = a[i] & b[i]
	}
	return r
}

func V128Or(a, b V128) V128 {
	var r V128
	for i := range a {
		r[i] = a[i] | b[i]
	}
	return r
}

func V128Xor(a, b V128) V128 {
	var r V128
	for i := range a {
		r[i] = a[i] ^ b[i]
	}
	return r
}

// V128Andnot computes a & ~b.
func V128Andnot(a, b V128) V128 {
	var r V128
	for i := range a {
		r[i] = a[i] &^ b[i]
	}
	return r
}

// V128Bitselect chooses bits from a where mask is 1, from b where mask is 0.
func V128Bitselect(a, b, mask V128) V128 {
	var r V128
	for i := range a {
		r[i] = (a[i] & mask[i]) | (b[i] &^ mask[i])
	}
	return r
}

func V128AnyTrue(a V128) int32 {
	for _, b := range a {
		if b != 0 {
			return 1
		}
	}
	return 0
}
