package num512

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func TestErrorCodeStringer(t *testing.T) {
	for code := OK; code < numErrorCodes; code++ {
		t.Run(fmt.Sprintf("%d", int(code)), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustAssert(errorCodeStrings[code] != "", "missing name for %d", int(code))
			tt.MustAssert(errorCodeMessages[code] != "", "missing message for %d", int(code))
			tt.MustEqual(errorCodeStrings[code], code.String())
			tt.MustEqual(errorCodeMessages[code], code.Error())
		})
	}

	tt := assert.WrapTB(t)
	tt.MustEqual("Unknown ErrorCode (99)", ErrorCode(99).String())
	tt.MustEqual("num512: unknown error code 99", ErrorCode(99).Error())
}

func TestErrorUnwrap(t *testing.T) {
	tt := assert.WrapTB(t)

	err := error(makeError(ErrInvalidString, "bad digit"))
	tt.MustEqual("bad digit", err.Error())
	tt.MustAssert(errors.Is(err, ErrInvalidString))
	tt.MustAssert(!errors.Is(err, ErrOverflow))
	tt.MustAssert(IsErrorCode(err, ErrInvalidString))
	tt.MustEqual(ErrInvalidString, Code(err))

	var e Error
	tt.MustAssert(errors.As(err, &e))
	tt.MustEqual(ErrInvalidString, e.ErrorCode)

	wrapped := fmt.Errorf("reading input: %w", err)
	tt.MustEqual(ErrInvalidString, Code(wrapped))
}

func TestCode(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual(OK, Code(nil))
	tt.MustEqual(ErrOverflow, Code(ErrOverflow))
	tt.MustEqual(ErrorCode(-1), Code(io.EOF))
	tt.MustAssert(!IsErrorCode(nil, ErrOverflow))
	tt.MustAssert(!IsErrorCode(io.EOF, ErrOverflow))
}

func TestArithmeticErrorsAreBareCodes(t *testing.T) {
	tt := assert.WrapTB(t)

	_, err := MaxU512.Add(OneU512)
	tt.MustAssert(err == ErrOverflow)

	_, err = ZeroU512.Sub(OneU512)
	tt.MustAssert(err == ErrUnderflow)

	_, _, err = OneU512.QuoRem(ZeroU512)
	tt.MustAssert(err == ErrDivideByZero)
}
