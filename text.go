package num512

import (
	"fmt"
)

const (
	// MinBase and MaxBase bound the radix accepted by the text conversions.
	// Digits above 9 are the letters 'a' to 'z', case-insensitive on input and
	// lower case on output.
	MinBase = 2
	MaxBase = 36

	// maxDigits is the length of MaxU512 in base 2, the longest any U512 can
	// format to.
	maxDigits = totalBits
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

func checkBase(base int) error {
	if base < MinBase || base > MaxBase {
		return ErrInvalidBase
	}
	return nil
}

// digitValue maps '0'-'9', 'a'-'z' and 'A'-'Z' to 0-35. Anything else maps to
// a value no base accepts.
func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return MaxBase
}

// PutText writes the digits of u in the given base into buf and returns the
// number of bytes written. ErrInvalidBase is returned for a base outside
// [MinBase, MaxBase], and ErrInvalidString if buf is too short to hold every
// digit; nothing useful is written in either case.
func (u U512) PutText(buf []byte, base int) (n int, err error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}

	if u.IsZero() {
		if len(buf) < 1 {
			return 0, ErrInvalidString
		}
		buf[0] = '0'
		return 1, nil
	}

	// Digits come out least significant first; collect them here and
	// reverse into buf once we know they fit.
	var scratch [maxDigits]byte
	radix := words{uint64(base)}
	for !u.w.isZero() {
		var r words
		u.w, r = quoRemWords(&u.w, &radix)
		scratch[n] = digitChars[r[0]]
		n++
	}

	if n > len(buf) {
		return 0, ErrInvalidString
	}
	for i := 0; i < n; i++ {
		buf[i] = scratch[n-1-i]
	}
	return n, nil
}

// Text returns the string representation of u in the given base.
func (u U512) Text(base int) (string, error) {
	var buf [maxDigits]byte
	n, err := u.PutText(buf[:], base)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// PutText writes i in the given base into buf, prefixed with '-' if i is
// negative, and returns the number of bytes written. Errors are as for
// U512.PutText.
func (i I512) PutText(buf []byte, base int) (n int, err error) {
	if err := checkBase(base); err != nil {
		return 0, err
	}
	if !i.IsNegative() {
		return i.AsU512().PutText(buf, base)
	}

	if len(buf) < 2 {
		return 0, ErrInvalidString
	}
	buf[0] = '-'
	n, err = i.AbsU512().PutText(buf[1:], base)
	if err != nil {
		return 0, err
	}
	return n + 1, nil
}

// Text returns the string representation of i in the given base.
func (i I512) Text(base int) (string, error) {
	var buf [maxDigits + 1]byte
	n, err := i.PutText(buf[:], base)
	if err != nil {
		return "", err
	}
	return string(buf[:n]), nil
}

// ParseU512 parses s as an unsigned integer in the given base. Leading spaces
// and tabs are skipped, then a single optional '+'. Every remaining character
// must be a digit valid in base. Values that do not fit in 512 bits return
// ErrOverflow.
func ParseU512(s string, base int) (out U512, err error) {
	if err := checkBase(base); err != nil {
		return out, err
	}
	out, err = parseUnsigned(s, 0, base)
	if err != nil {
		return U512{}, err
	}
	return out, nil
}

// ParseI512 parses s as a signed integer in the given base. Leading spaces and
// tabs are skipped, then a single optional '-' or '+'. The rest is read as by
// ParseU512, so "- 5" and "-+5" are both -5. Values above MaxI512 return
// ErrOverflow, values below MinI512 return ErrUnderflow.
func ParseI512(s string, base int) (out I512, err error) {
	if err := checkBase(base); err != nil {
		return out, err
	}

	i := skipBlanks(s, 0)
	neg := false
	if i < len(s) {
		switch s[i] {
		case '-':
			neg = true
			i++
		case '+':
			i++
		}
	}

	mag, err := parseUnsigned(s, i, base)
	if IsErrorCode(err, ErrOverflow) && neg {
		return out, makeError(ErrUnderflow, fmt.Sprintf("num512: i512 string %q below minimum", s))
	} else if err != nil {
		return out, err
	}

	if neg {
		if mag.Cmp(minI512AsAbsU512) > 0 {
			return out, makeError(ErrUnderflow, fmt.Sprintf("num512: i512 string %q below minimum", s))
		}
		return I512{w: negWords(&mag.w)}, nil
	}

	if mag.Cmp(maxI512AsU512) > 0 {
		return out, makeError(ErrOverflow, fmt.Sprintf("num512: i512 string %q above maximum", s))
	}
	return mag.AsI512(), nil
}

// parseUnsigned reads s[start:] as ParseU512 does: blanks, at most one '+',
// then digits.
func parseUnsigned(s string, start int, base int) (out U512, err error) {
	i := skipBlanks(s, start)
	if i < len(s) && s[i] == '+' {
		i++
	}
	return parseMagnitude(s, i, base)
}

func skipBlanks(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return i
}

// parseMagnitude accumulates the digits in s[start:] as v = v*base + digit.
func parseMagnitude(s string, start int, base int) (out U512, err error) {
	if start >= len(s) {
		return out, makeError(ErrInvalidString, fmt.Sprintf("num512: string %q has no digits", s))
	}

	radix := words{uint64(base)}
	for i := start; i < len(s); i++ {
		d := digitValue(s[i])
		if d >= uint64(base) {
			return out, makeError(ErrInvalidString,
				fmt.Sprintf("num512: invalid base %d digit %q at offset %d in %q", base, s[i], i, s))
		}

		var overflow bool
		out.w, overflow = mulWords(&out.w, &radix)
		if overflow {
			return out, makeError(ErrOverflow, fmt.Sprintf("num512: string %q overflows 512 bits", s))
		}

		var carry uint64
		out.w, carry = addWords(&out.w, &words{d})
		if carry != 0 {
			return out, makeError(ErrOverflow, fmt.Sprintf("num512: string %q overflows 512 bits", s))
		}
	}
	return out, nil
}
