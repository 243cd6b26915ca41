package num512

import (
	"encoding/binary"
	"fmt"
	"math/big"
)

// I512 is a signed 512-bit two's complement integer. It shares the U512
// layout; bit 511 is the sign bit. The zero value is 0.
type I512 struct {
	w words
}

// I512FromRaw is the complement to I512.Raw(); it creates an I512 from eight
// words holding the two's complement bit pattern, least significant first.
func I512FromRaw(w [wordCount]uint64) I512 { return I512{w: w} }

func I512From64(v int64) (out I512) {
	out.w[0] = uint64(v)
	if v < 0 {
		for i := 1; i < wordCount; i++ {
			out.w[i] = maxUint64
		}
	}
	return out
}

func I512From32(v int32) I512   { return I512From64(int64(v)) }
func I512From16(v int16) I512   { return I512From64(int64(v)) }
func I512From8(v int8) I512     { return I512From64(int64(v)) }
func I512FromInt(v int) I512    { return I512From64(int64(v)) }
func I512FromU64(v uint64) I512 { return I512{w: words{v}} }

// I512FromString parses a base 10 string, see ParseI512.
func I512FromString(s string) (out I512, err error) {
	return ParseI512(s, 10)
}

// I512FromBigInt creates an I512 from a big.Int. Overflow truncates to
// MaxI512/MinI512 and sets accurate to 'false'.
func I512FromBigInt(v *big.Int) (out I512, accurate bool) {
	neg := v.Sign() < 0

	var mag big.Int
	mag.Abs(v)
	u, accurate := U512FromBigInt(&mag)

	if !neg {
		if cmp := u.Cmp(maxI512AsU512); cmp > 0 {
			return MaxI512, false
		}
		return u.AsI512(), accurate
	}

	if !accurate {
		return MinI512, false
	} else if cmp := u.Cmp(minI512AsAbsU512); cmp == 0 {
		return MinI512, true
	} else if cmp > 0 {
		return MinI512, false
	}
	return I512{w: negWords(&u.w)}, true
}

// I512FromBigEndian creates an I512 from the 64 big-endian bytes of its two's
// complement bit pattern.
func I512FromBigEndian(b [totalBits / 8]byte) (out I512) {
	for i := 0; i < wordCount; i++ {
		out.w[wordCount-1-i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return out
}

func (i I512) IsZero() bool { return i.w.isZero() }

// IsNegative reports whether the sign bit is set.
func (i I512) IsNegative() bool { return i.w[wordCount-1]&signBit != 0 }

// Raw returns the two's complement bit pattern of the I512 as eight words,
// least significant first.
func (i I512) Raw() [wordCount]uint64 { return i.w }

// PutBigEndian writes the two's complement bit pattern of i into b as 64
// big-endian bytes.
func (i I512) PutBigEndian(b *[totalBits / 8]byte) {
	for n := 0; n < wordCount; n++ {
		binary.BigEndian.PutUint64(b[n*8:], i.w[wordCount-1-n])
	}
}

func (i I512) String() string {
	var buf [maxDigits + 1]byte
	n, _ := i.PutText(buf[:], 10) // buf always fits base 10
	return string(buf[:n])
}

func (i I512) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	i.AsBigInt().Format(s, c)
}

// IntoBigInt copies this I512 into a big.Int, allowing you to retain and
// recycle memory.
func (i I512) IntoBigInt(b *big.Int) {
	i.AbsU512().IntoBigInt(b)
	if i.IsNegative() {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I512 into it.
func (i I512) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU512 performs a direct cast of an I512 to a U512. Negative numbers
// become values > MaxI512.
func (i I512) AsU512() U512 {
	return U512{w: i.w}
}

// IsU512 reports whether i can be represented in a U512.
func (i I512) IsU512() bool {
	return !i.IsNegative()
}

// AsInt64 truncates the I512 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert.
func (i I512) AsInt64() int64 {
	return int64(i.w[0])
}

// IsInt64 reports whether i can be represented as a int64.
func (i I512) IsInt64() bool {
	var fill uint64
	if i.IsNegative() {
		fill = maxUint64
		if i.w[0]&signBit == 0 {
			return false
		}
	} else if i.w[0]&signBit != 0 {
		return false
	}
	for n := 1; n < wordCount; n++ {
		if i.w[n] != fill {
			return false
		}
	}
	return true
}

func (i I512) Sign() int {
	if i.IsZero() {
		return 0
	} else if i.IsNegative() {
		return -1
	}
	return 1
}

// negate flips the sign of i. negate(MinI512) is MinI512; callers that need
// to know must check for it.
func (i I512) negate() I512 {
	return I512{w: negWords(&i.w)}
}

// Neg returns -i. MinI512 has no positive counterpart: Neg(MinI512) returns
// MinI512 along with ErrOverflow.
func (i I512) Neg() (v I512, err error) {
	v = i.negate()
	if i == MinI512 {
		return v, ErrOverflow
	}
	return v, nil
}

// Abs returns the absolute value of i. Abs(MinI512) wraps to MinI512; use
// AbsU512 for an exact magnitude.
func (i I512) Abs() I512 {
	if i.IsNegative() {
		return i.negate()
	}
	return i
}

// AbsU512 returns the magnitude of i. Unlike Abs, it is exact for MinI512.
func (i I512) AbsU512() U512 {
	if i.IsNegative() {
		return U512{w: negWords(&i.w)}
	}
	return U512{w: i.w}
}

// Add returns i + n. If the sum falls outside the I512 range, the wrapped
// result is returned with ErrOverflow (both operands non-negative) or
// ErrUnderflow (both operands negative).
func (i I512) Add(n I512) (v I512, err error) {
	iNeg, nNeg := i.IsNegative(), n.IsNegative()
	v.w, _ = addWords(&i.w, &n.w)

	if iNeg == nNeg && v.IsNegative() != iNeg {
		if iNeg {
			return v, ErrUnderflow
		}
		return v, ErrOverflow
	}
	return v, nil
}

// Sub returns i - n. If the difference falls outside the I512 range, the
// wrapped result is returned with ErrOverflow (i non-negative) or ErrUnderflow
// (i negative).
func (i I512) Sub(n I512) (out I512, err error) {
	iNeg, nNeg := i.IsNegative(), n.IsNegative()
	out.w, _ = subWords(&i.w, &n.w)

	if iNeg != nNeg && out.IsNegative() != iNeg {
		if iNeg {
			return out, ErrUnderflow
		}
		return out, ErrOverflow
	}
	return out, nil
}

// Mul returns i * n. If the product falls outside the I512 range, the low 512
// bits of the two's complement product are returned with ErrOverflow.
func (i I512) Mul(n I512) (dest I512, err error) {
	neg := i.IsNegative() != n.IsNegative()
	ia, na := i.AbsU512(), n.AbsU512()

	var overflow bool
	dest.w, overflow = mulWords(&ia.w, &na.w)
	if neg {
		dest = dest.negate()
	}

	if overflow {
		return dest, ErrOverflow
	} else if !neg && dest.IsNegative() {
		return dest, ErrOverflow
	} else if neg && !dest.IsNegative() && !dest.IsZero() {
		return dest, ErrOverflow
	}
	return dest, nil
}

// QuoRem returns the quotient q and remainder r for by != 0.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// r has the sign of i (or is zero) and |r| < |by|. If by == 0,
// ErrDivideByZero is returned. MinI512 / -1 is the one quotient that does
// not fit; it wraps to MinI512 and ErrOverflow is returned.
func (i I512) QuoRem(by I512) (q, r I512, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}

	qNeg := i.IsNegative() != by.IsNegative()
	rNeg := i.IsNegative()
	ia, ba := i.AbsU512(), by.AbsU512()

	qu, ru, err := ia.QuoRem(ba)
	if err != nil {
		return q, r, err
	}
	q, r = qu.AsI512(), ru.AsI512()
	if qNeg {
		q = q.negate()
	}
	if rNeg {
		r = r.negate()
	}

	if !qNeg && q.IsNegative() {
		return q, r, ErrOverflow
	}
	return q, r, nil
}

// Quo returns the quotient i/by, truncated towards zero. See QuoRem.
func (i I512) Quo(by I512) (q I512, err error) {
	q, _, err = i.QuoRem(by)
	return q, err
}

// Rem returns the remainder i%by, which has the sign of i. See QuoRem.
func (i I512) Rem(by I512) (r I512, err error) {
	_, r, err = i.QuoRem(by)
	if err == ErrOverflow {
		// Only MinI512 / -1 overflows, and its remainder is exactly 0.
		return r, nil
	}
	return r, err
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i I512) Cmp(n I512) int {
	iNeg, nNeg := i.IsNegative(), n.IsNegative()
	if iNeg != nNeg {
		if iNeg {
			return -1
		}
		return 1
	}
	return cmpWords(&i.w, &n.w)
}

func (i I512) Equal(n I512) bool            { return i.w == n.w }
func (i I512) GreaterThan(n I512) bool      { return i.Cmp(n) > 0 }
func (i I512) GreaterOrEqualTo(n I512) bool { return i.Cmp(n) >= 0 }
func (i I512) LessThan(n I512) bool         { return i.Cmp(n) < 0 }
func (i I512) LessOrEqualTo(n I512) bool    { return i.Cmp(n) <= 0 }

func (i I512) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I512) UnmarshalText(bts []byte) (err error) {
	if i == nil {
		return makeError(ErrNilPointer, "num512: UnmarshalText into nil *I512")
	}
	v, err := I512FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i I512) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I512) UnmarshalJSON(bts []byte) (err error) {
	if i == nil {
		return makeError(ErrNilPointer, "num512: UnmarshalJSON into nil *I512")
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return makeError(ErrInvalidString, fmt.Sprintf("num512: i512 invalid JSON %q", string(bts)))
		}
		bts = bts[1 : ln-1]
	}

	v, err := I512FromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
