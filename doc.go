/*
Package num512 provides fixed-width uint512 (U512) and int512 (I512) types with
checked arithmetic.

U512 and I512 are value types backed by eight 64-bit words; all operations
return new values and none of the arithmetic allocates. Instead of wrapping
silently, every fallible operation returns an error alongside its (wrapped)
result:

	u1 := num512.MaxU512
	sum, err := u1.Add(num512.OneU512)
	fmt.Println(sum, err)
	// Output: 0 num512: overflow

The error is an ErrorCode (or an Error wrapping one), so it can be tested with
errors.Is:

	errors.Is(err, num512.ErrOverflow)

Division is truncating, like Go's / and % operators:

	q, r, err := num512.I512From64(-7).QuoRem(num512.I512From64(2))
	// q == -3, r == -1

U512 and I512 can be created from a variety of sources:

	U512FromRaw(w [8]uint64) U512
	U512From64(v uint64) U512
	U512From32(v uint32) U512
	U512From16(v uint16) U512
	U512From8(v uint8) U512
	U512FromString(s string) (U512, error)
	ParseU512(s string, base int) (U512, error)
	U512FromBigInt(v *big.Int) (out U512, accurate bool)
	U512FromBigEndian(b [64]byte) U512

Text conversion supports any base from 2 to 36. PutText formats into a
caller-supplied buffer without allocating:

	var buf [512]byte
	n, err := u.PutText(buf[:], 16)

U512 and I512 support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - msgpack.CustomEncoder
  - msgpack.CustomDecoder
*/
package num512
