package num512

type RandSource interface {
	Uint64() uint64
}

// DifferenceU512 subtracts the smaller of a and b from the larger.
func DifferenceU512(a, b U512) U512 {
	if a.Cmp(b) >= 0 {
		d, _ := a.Sub(b) // cannot underflow
		return d
	}
	d, _ := b.Sub(a) // cannot underflow
	return d
}

func LargerU512(a, b U512) U512 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU512(a, b U512) U512 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceI512 returns |a - b| as a U512, which always fits.
func DifferenceI512(a, b I512) U512 {
	lo, hi := a, b
	if a.GreaterThan(b) {
		lo, hi = b, a
	}
	d, _ := subWords(&hi.w, &lo.w) // the true difference is in [0, 2^512)
	return U512{w: d}
}

// RandU512 generates an unsigned 512-bit random integer from an external source.
func RandU512(source RandSource) (out U512) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	return out
}

// RandI512 generates a positive signed 512-bit random integer from an external
// source.
func RandI512(source RandSource) (out I512) {
	for i := range out.w {
		out.w[i] = source.Uint64()
	}
	out.w[wordCount-1] &= maxInt64
	return out
}
