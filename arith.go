package num512

import (
	"math/bits"
)

// words is the representation shared by U512 and I512: eight 64-bit words,
// least significant first. All engine routines take and return words by
// value, so callers never need to worry about a destination aliasing an
// operand.
type words [wordCount]uint64

func (x *words) isZero() bool {
	return x[0]|x[1]|x[2]|x[3]|x[4]|x[5]|x[6]|x[7] == 0
}

// cmpWords compares x and y as unsigned integers, most significant word first.
func cmpWords(x, y *words) int {
	for i := wordCount - 1; i >= 0; i-- {
		if x[i] > y[i] {
			return 1
		} else if x[i] < y[i] {
			return -1
		}
	}
	return 0
}

// addWords returns x + y mod 2^512 and the carry out of the top word.
func addWords(x, y *words) (z words, carry uint64) {
	for i := 0; i < wordCount; i++ {
		z[i], carry = bits.Add64(x[i], y[i], carry)
	}
	return z, carry
}

// subWords returns x - y mod 2^512 and the borrow out of the top word.
func subWords(x, y *words) (z words, borrow uint64) {
	for i := 0; i < wordCount; i++ {
		z[i], borrow = bits.Sub64(x[i], y[i], borrow)
	}
	return z, borrow
}

// mulWords returns the low 512 bits of x * y. overflow is set if any partial
// product lands beyond the top word, which happens exactly when the full
// product is >= 2^512.
func mulWords(x, y *words) (z words, overflow bool) {
	for i := 0; i < wordCount; i++ {
		if y[i] == 0 {
			continue
		}

		var carry uint64
		for j := 0; j < wordCount; j++ {
			if i+j >= wordCount {
				if x[j] != 0 {
					overflow = true
				}
				continue
			}

			// x[j]*y[i] + z[i+j] + carry never exceeds 2^128-1.
			hi, lo := bits.Mul64(x[j], y[i])
			var c uint64
			lo, c = bits.Add64(lo, z[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c

			z[i+j] = lo
			carry = hi
		}
		if carry != 0 {
			overflow = true
		}
	}
	return z, overflow
}

// negWords returns the two's complement of x: every bit flipped, then one
// added with a ripple carry. negWords of 1<<511 is 1<<511.
func negWords(x *words) (z words) {
	carry := uint64(1)
	for i := 0; i < wordCount; i++ {
		z[i], carry = bits.Add64(^x[i], 0, carry)
	}
	return z
}

// bitLen returns the index of the most significant set bit plus one, or 0 if
// x is zero.
func bitLen(x *words) int {
	for i := wordCount - 1; i >= 0; i-- {
		if x[i] != 0 {
			return i*wordBits + bits.Len64(x[i])
		}
	}
	return 0
}

func trailingZeros(x *words) int {
	for i := 0; i < wordCount; i++ {
		if x[i] != 0 {
			return i*wordBits + bits.TrailingZeros64(x[i])
		}
	}
	return totalBits
}

func bitAt(x *words, i int) uint64 {
	return (x[i/wordBits] >> uint(i%wordBits)) & 1
}

// shl1 shifts x left by one bit, setting the low bit to in.
func shl1(x *words, in uint64) {
	for i := 0; i < wordCount; i++ {
		out := x[i] >> 63
		x[i] = (x[i] << 1) | in
		in = out
	}
}

func lshWords(x *words, n uint) (z words) {
	if n >= totalBits {
		return z
	}
	ws, bs := int(n/wordBits), n%wordBits
	for i := wordCount - 1; i >= ws; i-- {
		z[i] = x[i-ws] << bs
		if bs > 0 && i-ws-1 >= 0 {
			z[i] |= x[i-ws-1] >> (wordBits - bs)
		}
	}
	return z
}

func rshWords(x *words, n uint) (z words) {
	if n >= totalBits {
		return z
	}
	ws, bs := int(n/wordBits), n%wordBits
	for i := 0; i < wordCount-ws; i++ {
		z[i] = x[i+ws] >> bs
		if bs > 0 && i+ws+1 < wordCount {
			z[i] |= x[i+ws+1] << (wordBits - bs)
		}
	}
	return z
}

// quoRemWords divides u by a nonzero by. Callers must check for a zero
// divisor first.
func quoRemWords(u, by *words) (q, r words) {
	if cmpWords(u, by) < 0 {
		return q, *u // it's 100% remainder
	}

	byLen := bitLen(by)
	if byLen <= wordBits {
		return quoRemWordsBy64(u, by[0])
	}
	return quoRemWordsBin(u, by, bitLen(u), byLen)
}

// quoRemWordsBy64 divides u by a single word using the hardware 128/64
// division, one word at a time from the top.
func quoRemWordsBy64(u *words, by uint64) (q, r words) {
	var rem uint64
	for i := wordCount - 1; i >= 0; i-- {
		// rem < by always holds here, so Div64 cannot panic.
		q[i], rem = bits.Div64(rem, u[i], by)
	}
	r[0] = rem
	return q, r
}

// quoRemWordsBin is binary long division. Bits of u are shifted into a running
// partial remainder from the most significant end; whenever the partial
// remainder reaches by it is reduced and the matching quotient bit set.
func quoRemWordsBin(u, by *words, uLen, byLen int) (q, r words) {
	for i := uLen - 1; i >= 0; i-- {
		shl1(&r, bitAt(u, i))

		// Until byLen bits have been shifted in, r < by.
		if uLen-i < byLen {
			continue
		}

		if cmpWords(&r, by) >= 0 {
			r, _ = subWords(&r, by)
			q[i/wordBits] |= 1 << uint(i%wordBits)
		}
	}
	return q, r
}
