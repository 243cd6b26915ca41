// Package calc evaluates num512 operations given as text, one at a time or as
// a batch of lines.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	num512 "github.com/shabbyrobe/go-num512"
	"github.com/shabbyrobe/go-num512/internal/config"
)

type Op string

const (
	OpAdd  Op = "add"
	OpSub  Op = "sub"
	OpMul  Op = "mul"
	OpDiv  Op = "div"
	OpCmp  Op = "cmp"
	OpConv Op = "conv"
)

var (
	ErrUnknownOp = errors.New("calc: unknown op")
	ErrArity     = errors.New("calc: wrong number of operands")
)

// Ops lists every supported op.
var Ops = []Op{OpAdd, OpSub, OpMul, OpDiv, OpCmp, OpConv}

// Arity returns the number of operands op takes, or 0 if op is unknown.
func (op Op) Arity() int {
	switch op {
	case OpAdd, OpSub, OpMul, OpDiv, OpCmp:
		return 2
	case OpConv:
		return 1
	}
	return 0
}

// Result is the outcome of a single evaluation. Value holds the result in the
// evaluator's output base; for OpDiv, Remainder holds the remainder. When Code
// is ErrOverflow or ErrUnderflow, Value is the wrapped result.
type Result struct {
	Op        Op
	Value     string
	Remainder string
	Code      num512.ErrorCode
}

func (r Result) Failed() bool { return r.Code != num512.OK }

func (r Result) String() string {
	if r.Failed() {
		return "ERR " + r.Code.String()
	}
	if r.Remainder != "" {
		return r.Value + " " + r.Remainder
	}
	return r.Value
}

type Evaluator struct {
	Signed  bool
	InBase  int
	OutBase int

	logger zerolog.Logger
}

func New(cfg config.Config) *Evaluator {
	return &Evaluator{
		Signed:  cfg.Signed,
		InBase:  cfg.InBase,
		OutBase: cfg.OutBase,
		logger:  zerolog.Nop(),
	}
}

// SetLogger configures the logger for evaluation events.
func (e *Evaluator) SetLogger(l zerolog.Logger) {
	e.logger = l
}

// Eval parses args in the input base and applies op to them. An error is
// returned for an unknown op, the wrong number of operands, or an operand
// that does not parse; arithmetic failures are reported in Result.Code.
func (e *Evaluator) Eval(op Op, args []string) (Result, error) {
	want := op.Arity()
	if want == 0 {
		return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
	} else if len(args) != want {
		return Result{}, fmt.Errorf("%w: %s takes %d, got %d", ErrArity, op, want, len(args))
	}

	var res Result
	var err error
	if e.Signed {
		res, err = e.evalI512(op, args)
	} else {
		res, err = e.evalU512(op, args)
	}
	if err != nil {
		return Result{}, err
	}

	e.logger.Debug().
		Str("op", string(op)).
		Strs("args", args).
		Bool("signed", e.Signed).
		Str("code", res.Code.String()).
		Msg("evaluated")
	return res, nil
}

type texter interface {
	Text(base int) (string, error)
}

func (e *Evaluator) evalU512(op Op, args []string) (Result, error) {
	xs := make([]num512.U512, len(args))
	for i, a := range args {
		v, err := num512.ParseU512(a, e.InBase)
		if err != nil {
			return Result{}, fmt.Errorf("calc: operand %d: %w", i+1, err)
		}
		xs[i] = v
	}

	switch op {
	case OpAdd:
		v, err := xs[0].Add(xs[1])
		return e.result(op, err, v)
	case OpSub:
		v, err := xs[0].Sub(xs[1])
		return e.result(op, err, v)
	case OpMul:
		v, err := xs[0].Mul(xs[1])
		return e.result(op, err, v)
	case OpDiv:
		q, r, err := xs[0].QuoRem(xs[1])
		return e.result(op, err, q, r)
	case OpCmp:
		return Result{Op: op, Value: strconv.Itoa(xs[0].Cmp(xs[1]))}, nil
	case OpConv:
		return e.result(op, nil, xs[0])
	}
	return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
}

func (e *Evaluator) evalI512(op Op, args []string) (Result, error) {
	xs := make([]num512.I512, len(args))
	for i, a := range args {
		v, err := num512.ParseI512(a, e.InBase)
		if err != nil {
			return Result{}, fmt.Errorf("calc: operand %d: %w", i+1, err)
		}
		xs[i] = v
	}

	switch op {
	case OpAdd:
		v, err := xs[0].Add(xs[1])
		return e.result(op, err, v)
	case OpSub:
		v, err := xs[0].Sub(xs[1])
		return e.result(op, err, v)
	case OpMul:
		v, err := xs[0].Mul(xs[1])
		return e.result(op, err, v)
	case OpDiv:
		q, r, err := xs[0].QuoRem(xs[1])
		return e.result(op, err, q, r)
	case OpCmp:
		return Result{Op: op, Value: strconv.Itoa(xs[0].Cmp(xs[1]))}, nil
	case OpConv:
		return e.result(op, nil, xs[0])
	}
	return Result{}, fmt.Errorf("%w %q", ErrUnknownOp, op)
}

func (e *Evaluator) result(op Op, status error, vals ...texter) (Result, error) {
	res := Result{Op: op, Code: num512.Code(status)}
	if res.Code < 0 {
		return Result{}, status
	}
	for i, v := range vals {
		s, err := v.Text(e.OutBase)
		if err != nil {
			return Result{}, fmt.Errorf("calc: output base %d: %w", e.OutBase, err)
		}
		if i == 0 {
			res.Value = s
		} else {
			res.Remainder = s
		}
	}
	return res, nil
}

// ParseLine splits a batch line of the form "op a [b]" into its op and
// operands. Blank lines and lines starting with '#' return ok == false.
func ParseLine(line string) (op Op, args []string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return "", nil, false
	}
	fields := strings.Fields(line)
	return Op(strings.ToLower(fields[0])), fields[1:], true
}
