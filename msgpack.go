package num512

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = U512{}
	_ msgpack.CustomDecoder = (*U512)(nil)
	_ msgpack.CustomEncoder = I512{}
	_ msgpack.CustomDecoder = (*I512)(nil)
)

// EncodeMsgpack writes u as a msgpack bin holding its 64 big-endian bytes.
func (u U512) EncodeMsgpack(enc *msgpack.Encoder) error {
	var b [totalBits / 8]byte
	u.PutBigEndian(&b)
	return enc.EncodeBytes(b[:])
}

func (u *U512) DecodeMsgpack(dec *msgpack.Decoder) error {
	if u == nil {
		return makeError(ErrNilPointer, "num512: DecodeMsgpack into nil *U512")
	}
	b, err := decodeMsgpackBytes(dec, "u512")
	if err != nil {
		return err
	}
	*u = U512FromBigEndian(b)
	return nil
}

// EncodeMsgpack writes the two's complement bit pattern of i as a msgpack bin
// holding 64 big-endian bytes.
func (i I512) EncodeMsgpack(enc *msgpack.Encoder) error {
	var b [totalBits / 8]byte
	i.PutBigEndian(&b)
	return enc.EncodeBytes(b[:])
}

func (i *I512) DecodeMsgpack(dec *msgpack.Decoder) error {
	if i == nil {
		return makeError(ErrNilPointer, "num512: DecodeMsgpack into nil *I512")
	}
	b, err := decodeMsgpackBytes(dec, "i512")
	if err != nil {
		return err
	}
	*i = I512FromBigEndian(b)
	return nil
}

func decodeMsgpackBytes(dec *msgpack.Decoder, kind string) (out [totalBits / 8]byte, err error) {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return out, err
	}
	if len(bts) != len(out) {
		return out, makeError(ErrInvalidString,
			fmt.Sprintf("num512: %s msgpack bin has %d bytes, expected %d", kind, len(bts), len(out)))
	}
	copy(out[:], bts)
	return out, nil
}
