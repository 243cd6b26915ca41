package num512

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

var i64 = I512From64

func i512s(s string) I512 {
	s = strings.Replace(s, " ", "", -1)
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		panic(fmt.Errorf("num512: i512 string %q invalid", s))
	}
	out, acc := I512FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("num512: inaccurate i512 %s", s))
	}
	return out
}

func TestI512Consts(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(maxBigI512.String(), MaxI512.String())
	tt.MustEqual(minBigI512.String(), MinI512.String())
	tt.MustEqual("0", ZeroI512.String())
	tt.MustEqual("1", OneI512.String())
}

func TestI512FromInt(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("-1", I512From64(-1).String())
	tt.MustEqual("-128", I512From8(-128).String())
	tt.MustEqual("-32768", I512From16(-32768).String())
	tt.MustEqual("-2147483648", I512From32(-2147483648).String())
	tt.MustEqual("-9223372036854775808", I512From64(-9223372036854775808).String())
	tt.MustEqual("18446744073709551615", I512FromU64(maxUint64).String())
	tt.MustEqual("42", I512FromInt(42).String())
	tt.MustAssert(I512From64(-1).AsU512().Equal(MaxU512))
}

func TestI512FromBigInt(t *testing.T) {
	for idx, tc := range []struct {
		b   *big.Int
		out I512
		acc bool
	}{
		{big.NewInt(-2), i64(-2), true},
		{maxBigI512, MaxI512, true},
		{minBigI512, MinI512, true},
		{new(big.Int).Add(maxBigI512, big1), MaxI512, false},
		{new(big.Int).Sub(minBigI512, big1), MinI512, false},
		{new(big.Int).Neg(new(big.Int).Lsh(big1, 600)), MinI512, false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, acc := I512FromBigInt(tc.b)
			tt.MustEqual(tc.acc, acc)
			tt.MustAssert(tc.out.Equal(out), "found: %s", out)
		})
	}
}

func TestI512Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I512
		code    ErrorCode
	}{
		{i64(-2), i64(-1), i64(-3), OK},
		{i64(-2), i64(1), i64(-1), OK},
		{i64(-1), i64(1), i64(0), OK},
		{i64(1), i64(2), i64(3), OK},
		{MaxI512, i64(1), MinI512, ErrOverflow},
		{MinI512, i64(-1), MaxI512, ErrUnderflow},
		{MaxI512, MinI512, i64(-1), OK},
		{i64(-1), i512s("0x 1 0000000000000000"), I512FromU64(maxUint64), OK},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.a.Add(tc.b)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.c.Equal(v), "found: %s", v)
		})
	}
}

func TestI512Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c I512
		code    ErrorCode
	}{
		{i64(-2), i64(-1), i64(-1), OK},
		{i64(-2), i64(1), i64(-3), OK},
		{i64(2), i64(1), i64(1), OK},
		{i64(0), i64(1), i64(-1), OK},
		{MinI512, i64(1), MaxI512, ErrUnderflow},
		{MaxI512, i64(-1), MinI512, ErrOverflow},
		{i64(0), MinI512, MinI512, ErrOverflow},
		{i64(-1), MinI512, MaxI512, OK},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.a.Sub(tc.b)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.c.Equal(v), "found: %s", v)
		})
	}
}

func TestI512Mul(t *testing.T) {
	two256 := I512FromRaw([8]uint64{4: 1})
	two255 := I512FromRaw([8]uint64{3: signBit})
	negTwo255, _ := two255.Neg()

	for idx, tc := range []struct {
		a, b, c I512
		code    ErrorCode
	}{
		{i64(10), i64(-20), i64(-200), OK},
		{i64(-10), i64(-20), i64(200), OK},
		{i64(-10), i64(0), i64(0), OK},
		{two256, negTwo255, MinI512, OK},
		{two256, two255, MinI512, ErrOverflow},
		{MaxI512, i64(-1), MinI512.addOne(), OK},
		{MinI512, i64(-1), MinI512, ErrOverflow},
		{MinI512, i64(1), MinI512, OK},
		{MaxI512, i64(2), i64(-2), ErrOverflow},
		{MinI512, i64(2), i64(0), ErrOverflow},
	} {
		t.Run(fmt.Sprintf("%d/%s*%s=%s", idx, tc.a, tc.b, tc.c), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.a.Mul(tc.b)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.c.Equal(v), "found: %s", v)
		})
	}
}

func TestI512QuoRem(t *testing.T) {
	for idx, tc := range []struct {
		i, by, q, r I512
		code        ErrorCode
	}{
		{i64(7), i64(2), i64(3), i64(1), OK},
		{i64(-7), i64(2), i64(-3), i64(-1), OK},
		{i64(7), i64(-2), i64(-3), i64(1), OK},
		{i64(-7), i64(-2), i64(3), i64(-1), OK},
		{i64(-100), i64(30), i64(-3), i64(-10), OK},
		{i64(1), i64(0), i64(0), i64(0), ErrDivideByZero},
		{MinI512, i64(-1), MinI512, i64(0), ErrOverflow},
		{MinI512, i64(1), MinI512, i64(0), OK},
		{MinI512, MinI512, i64(1), i64(0), OK},
		{MaxI512, MinI512, i64(0), MaxI512, OK},
	} {
		t.Run(fmt.Sprintf("%d/%s÷%s=%s,%s", idx, tc.i, tc.by, tc.q, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			q, r, err := tc.i.QuoRem(tc.by)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.q.Equal(q), "quo found: %s", q)
			tt.MustAssert(tc.r.Equal(r), "rem found: %s", r)

			qv, err := tc.i.Quo(tc.by)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.q.Equal(qv), "quo found: %s", qv)
		})
	}
}

func TestI512Rem(t *testing.T) {
	for idx, tc := range []struct {
		i, by, r I512
		code     ErrorCode
	}{
		{i64(-7), i64(2), i64(-1), OK},
		{i64(7), i64(-2), i64(1), OK},
		{MinI512, i64(-1), i64(0), OK},
		{i64(1), i64(0), i64(0), ErrDivideByZero},
	} {
		t.Run(fmt.Sprintf("%d/%s%%%s=%s", idx, tc.i, tc.by, tc.r), func(t *testing.T) {
			tt := assert.WrapTB(t)
			r, err := tc.i.Rem(tc.by)
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.r.Equal(r), "found: %s", r)
		})
	}
}

func TestI512Neg(t *testing.T) {
	for idx, tc := range []struct {
		a, b I512
		code ErrorCode
	}{
		{i64(0), i64(0), OK},
		{i64(-2), i64(2), OK},
		{i64(2), i64(-2), OK},
		{MaxI512, MinI512.addOne(), OK},
		{MinI512, MinI512, ErrOverflow},
	} {
		t.Run(fmt.Sprintf("%d/-%s=%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			v, err := tc.a.Neg()
			tt.MustEqual(tc.code, Code(err))
			tt.MustAssert(tc.b.Equal(v), "found: %s", v)
		})
	}
}

func TestI512Abs(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(i64(5).Equal(i64(-5).Abs()))
	tt.MustAssert(i64(5).Equal(i64(5).Abs()))
	tt.MustAssert(MinI512.Equal(MinI512.Abs()))
	tt.MustAssert(minI512AsAbsU512.Equal(MinI512.AbsU512()))
	tt.MustAssert(U512From64(5).Equal(i64(-5).AbsU512()))
}

func TestI512Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b   I512
		result int
	}{
		{i64(0), i64(0), 0},
		{i64(1), i64(0), 1},
		{i64(10), i64(9), 1},
		{i64(-1), i64(1), -1},
		{i64(1), i64(-1), 1},
		{MinI512, MaxI512, -1},
		{MaxI512, MinI512, 1},
		{i64(-2), i64(-1), -1},
		{MinI512, i64(-1), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.result, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.result == 0, tc.a.Equal(tc.b))
			tt.MustEqual(tc.result > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.result >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.result < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.result <= 0, tc.a.LessOrEqualTo(tc.b))
		})
	}
}

func TestI512Conversions(t *testing.T) {
	tt := assert.WrapTB(t)

	tt.MustEqual(0, ZeroI512.Sign())
	tt.MustEqual(-1, MinI512.Sign())
	tt.MustEqual(1, MaxI512.Sign())

	tt.MustAssert(i64(-1).IsInt64())
	tt.MustAssert(i64(-9223372036854775808).IsInt64())
	tt.MustAssert(i64(9223372036854775807).IsInt64())
	tt.MustAssert(!I512FromU64(1 << 63).IsInt64())
	tt.MustAssert(!i512s("-9223372036854775809").IsInt64())
	tt.MustEqual(int64(-5), i64(-5).AsInt64())

	tt.MustAssert(i64(1).IsU512())
	tt.MustAssert(!i64(-1).IsU512())
}

func TestI512BigEndian(t *testing.T) {
	tt := assert.WrapTB(t)
	var b [64]byte
	i64(-2).PutBigEndian(&b)
	for n := 0; n < 63; n++ {
		tt.MustEqual(byte(0xff), b[n])
	}
	tt.MustEqual(byte(0xfe), b[63])
	tt.MustAssert(i64(-2).Equal(I512FromBigEndian(b)))
}

func TestI512JSON(t *testing.T) {
	type payload struct {
		Value I512 `json:"value"`
	}

	tt := assert.WrapTB(t)
	for _, v := range []I512{MinI512, MaxI512, i64(-12345), ZeroI512} {
		bts, err := json.Marshal(payload{v})
		tt.MustOK(err)
		tt.MustEqual(`{"value":"`+v.String()+`"}`, string(bts))

		var out payload
		tt.MustOK(json.Unmarshal(bts, &out))
		tt.MustAssert(v.Equal(out.Value), "found: %s", out.Value)
	}

	var out payload
	err := json.Unmarshal([]byte(`{"value":"-"}`), &out)
	tt.MustAssert(IsErrorCode(err, ErrInvalidString), "found: %v", err)
}

func TestI512Util(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(U512From64(7).Equal(DifferenceI512(i64(-3), i64(4))))
	tt.MustAssert(MaxU512.Equal(DifferenceI512(MinI512, MaxI512)))

	for i := 0; i < 100; i++ {
		tt.MustAssert(!RandI512(globalRNG).IsNegative())
	}
}

func (i I512) addOne() I512 {
	v, _ := i.Add(OneI512)
	return v
}
