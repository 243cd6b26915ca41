package num512

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"strconv"
)

// U512 is an unsigned 512-bit integer. The zero value is 0.
type U512 struct {
	w words
}

// U512FromRaw creates a U512 from eight words, least significant first. See
// Raw() for the counterpart.
func U512FromRaw(w [wordCount]uint64) U512 { return U512{w: w} }

func U512From64(v uint64) U512 { return U512{w: words{v}} }
func U512From32(v uint32) U512 { return U512{w: words{uint64(v)}} }
func U512From16(v uint16) U512 { return U512{w: words{uint64(v)}} }
func U512From8(v uint8) U512   { return U512{w: words{uint64(v)}} }

// U512FromString parses a base 10 string, see ParseU512.
func U512FromString(s string) (out U512, err error) {
	return ParseU512(s, 10)
}

// U512FromBigInt creates a U512 from a big.Int. Overflow truncates to MaxU512
// and sets accurate to 'false'. Negative numbers become 0, also inaccurate.
func U512FromBigInt(v *big.Int) (out U512, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	if v.BitLen() > totalBits {
		return MaxU512, false
	}

	ws := v.Bits()

	switch intSize {
	case 64:
		for i, w := range ws {
			out.w[i] = uint64(w)
		}

	case 32:
		for i, w := range ws {
			out.w[i/2] |= uint64(w) << (32 * uint(i%2))
		}

	default:
		panic("num512: unsupported bit size")
	}

	return out, true
}

// U512FromBigEndian creates a U512 from 64 big-endian bytes. See PutBigEndian.
func U512FromBigEndian(b [totalBits / 8]byte) (out U512) {
	for i := 0; i < wordCount; i++ {
		out.w[wordCount-1-i] = binary.BigEndian.Uint64(b[i*8:])
	}
	return out
}

func (u U512) IsZero() bool { return u.w.isZero() }

// Raw returns the U512 as eight words, least significant first.
func (u U512) Raw() [wordCount]uint64 { return u.w }

// PutBigEndian writes u into b as 64 big-endian bytes.
func (u U512) PutBigEndian(b *[totalBits / 8]byte) {
	for i := 0; i < wordCount; i++ {
		binary.BigEndian.PutUint64(b[i*8:], u.w[wordCount-1-i])
	}
}

func (u U512) String() string {
	if u.IsZero() {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.w[0], 10)
	}
	var buf [maxDigits]byte
	n, _ := u.PutText(buf[:], 10) // buf always fits base 10
	return string(buf[:n])
}

func (u U512) Format(s fmt.State, c rune) {
	// FIXME: This is good enough for now, but not forever.
	u.AsBigInt().Format(s, c)
}

// IntoBigInt copies this U512 into a big.Int, allowing you to retain and
// recycle memory.
func (u U512) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		ws := b.Bits()
		if cap(ws) < wordCount {
			ws = make([]big.Word, wordCount)
		}
		ws = ws[:wordCount]
		for i := 0; i < wordCount; i++ {
			ws[i] = big.Word(u.w[i])
		}
		b.SetBits(ws)

	case 32:
		ws := b.Bits()
		if cap(ws) < wordCount*2 {
			ws = make([]big.Word, wordCount*2)
		}
		ws = ws[:wordCount*2]
		for i := 0; i < wordCount; i++ {
			ws[i*2] = big.Word(u.w[i] & 0xFFFFFFFF)
			ws[i*2+1] = big.Word(u.w[i] >> 32)
		}
		b.SetBits(ws)

	default:
		b.SetUint64(0)
		var word big.Int
		for i := wordCount - 1; i >= 0; i-- {
			b.Lsh(b, wordBits)
			word.SetUint64(u.w[i])
			b.Add(b, &word)
		}
	}
}

// AsBigInt allocates a new big.Int and copies this U512 into it.
func (u U512) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI512 performs a direct cast of a U512 to an I512, which will interpret it
// as a two's complement value.
func (u U512) AsI512() I512 {
	return I512{w: u.w}
}

// IsI512 reports whether u can be represented in an I512.
func (u U512) IsI512() bool {
	return u.w[wordCount-1]&signBit == 0
}

// AsUint64 truncates the U512 to fit in a uint64. Values outside the range
// will over/underflow. See IsUint64() if you want to check before you convert.
func (u U512) AsUint64() uint64 {
	return u.w[0]
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U512) IsUint64() bool {
	return u.w[1]|u.w[2]|u.w[3]|u.w[4]|u.w[5]|u.w[6]|u.w[7] == 0
}

// Add returns u + n. If the sum does not fit in 512 bits, the wrapped result
// is returned along with ErrOverflow.
func (u U512) Add(n U512) (v U512, err error) {
	var carry uint64
	v.w, carry = addWords(&u.w, &n.w)
	if carry != 0 {
		return v, ErrOverflow
	}
	return v, nil
}

// Sub returns u - n. If n > u, the wrapped result is returned along with
// ErrUnderflow.
func (u U512) Sub(n U512) (v U512, err error) {
	var borrow uint64
	v.w, borrow = subWords(&u.w, &n.w)
	if borrow != 0 {
		return v, ErrUnderflow
	}
	return v, nil
}

// Mul returns u * n. If the product does not fit in 512 bits, the low 512 bits
// are returned along with ErrOverflow.
func (u U512) Mul(n U512) (dest U512, err error) {
	var overflow bool
	dest.w, overflow = mulWords(&u.w, &n.w)
	if overflow {
		return dest, ErrOverflow
	}
	return dest, nil
}

// QuoRem returns the quotient q and remainder r of u / by, such that
//
//	u == by*q + r, 0 <= r < by
//
// If by == 0, ErrDivideByZero is returned and q and r are zero.
func (u U512) QuoRem(by U512) (q, r U512, err error) {
	if by.IsZero() {
		return q, r, ErrDivideByZero
	}
	q.w, r.w = quoRemWords(&u.w, &by.w)
	return q, r, nil
}

// Quo returns the quotient u/by. See QuoRem.
func (u U512) Quo(by U512) (q U512, err error) {
	q, _, err = u.QuoRem(by)
	return q, err
}

// Rem returns the remainder u%by. See QuoRem.
func (u U512) Rem(by U512) (r U512, err error) {
	_, r, err = u.QuoRem(by)
	return r, err
}

// Cmp compares u to n and returns -1, 0 or 1.
func (u U512) Cmp(n U512) int {
	return cmpWords(&u.w, &n.w)
}

func (u U512) Equal(n U512) bool            { return u.w == n.w }
func (u U512) GreaterThan(n U512) bool      { return u.Cmp(n) > 0 }
func (u U512) GreaterOrEqualTo(n U512) bool { return u.Cmp(n) >= 0 }
func (u U512) LessThan(n U512) bool         { return u.Cmp(n) < 0 }
func (u U512) LessOrEqualTo(n U512) bool    { return u.Cmp(n) <= 0 }

// BitLen returns the number of bits required to represent u; 0 for 0.
func (u U512) BitLen() int { return bitLen(&u.w) }

func (u U512) LeadingZeros() uint  { return uint(totalBits - bitLen(&u.w)) }
func (u U512) TrailingZeros() uint { return uint(trailingZeros(&u.w)) }

// Bit returns the value of the i'th bit of u. i must be in [0, 512).
func (u U512) Bit(i int) uint {
	if i < 0 || i >= totalBits {
		panic("num512: bit index out of range")
	}
	return uint(bitAt(&u.w, i))
}

// Lsh shifts u left by n bits. Bits shifted past bit 511 are discarded.
func (u U512) Lsh(n uint) U512 { return U512{w: lshWords(&u.w, n)} }

// Rsh shifts u right by n bits.
func (u U512) Rsh(n uint) U512 { return U512{w: rshWords(&u.w, n)} }

func (u U512) And(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] & n.w[i]
	}
	return out
}

func (u U512) Or(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] | n.w[i]
	}
	return out
}

func (u U512) Xor(n U512) (out U512) {
	for i := range u.w {
		out.w[i] = u.w[i] ^ n.w[i]
	}
	return out
}

func (u U512) Not() (out U512) {
	for i := range u.w {
		out.w[i] = ^u.w[i]
	}
	return out
}

func (u U512) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U512) UnmarshalText(bts []byte) (err error) {
	if u == nil {
		return makeError(ErrNilPointer, "num512: UnmarshalText into nil *U512")
	}
	v, err := U512FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U512) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U512) UnmarshalJSON(bts []byte) (err error) {
	if u == nil {
		return makeError(ErrNilPointer, "num512: UnmarshalJSON into nil *U512")
	}
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return makeError(ErrInvalidString, fmt.Sprintf("num512: u512 invalid JSON %q", string(bts)))
		}
		bts = bts[1 : ln-1]
	}

	v, err := U512FromString(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}
