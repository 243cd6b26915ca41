package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shabbyrobe/go-num512/internal/calc"
)

var opShort = map[calc.Op]string{
	calc.OpAdd:  "Add two integers",
	calc.OpSub:  "Subtract b from a",
	calc.OpMul:  "Multiply two integers",
	calc.OpDiv:  "Divide a by b, printing the quotient and remainder",
	calc.OpCmp:  "Compare two integers, printing -1, 0 or 1",
	calc.OpConv: "Convert an integer from the input base to the output base",
}

func opCommand(op calc.Op) *cobra.Command {
	use := string(op) + " a b"
	if op.Arity() == 1 {
		use = string(op) + " a"
	}
	return &cobra.Command{
		Use:   use,
		Short: opShort[op],
		Args:  cobra.ExactArgs(op.Arity()),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd.OutOrStdout(), cmd.ErrOrStderr(), op, args)
		},
	}
}

// runOp prints the result of op. If the arithmetic failed, the wrapped value
// (if any) is still printed, the status goes to errw and an error is returned
// so the process exits non-zero.
func runOp(w, errw io.Writer, op calc.Op, args []string) error {
	res, err := current.eval.Eval(op, args)
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, strings.Join(args, " "), err)
	}

	if !res.Failed() {
		_, err := fmt.Fprintln(w, res.String())
		return err
	}

	if res.Value != "" && op != calc.OpDiv {
		wrapColor.Fprintf(errw, "wrapped: ")
		fmt.Fprintln(w, res.Value)
	}
	errColor.Fprintln(errw, "ERR", res.Code.String())
	return fmt.Errorf("%s %s: %w", op, strings.Join(args, " "), res.Code)
}
