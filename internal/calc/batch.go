package calc

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	num512 "github.com/shabbyrobe/go-num512"
)

// maxLineSize fits two base 2 operands of MinI512 with room to spare.
const maxLineSize = 4096

type batchLine struct {
	num  int
	op   Op
	args []string
}

// RunBatch reads "op a [b]" lines from r, evaluates them with at most jobs
// running at once, and writes one output line per input line to w in input
// order. A line that fails to evaluate is written as "ERR <code>" and does not
// stop the batch; only read, write and context errors are returned.
func (e *Evaluator) RunBatch(ctx context.Context, r io.Reader, w io.Writer, jobs int) error {
	if jobs < 1 {
		jobs = 1
	}

	var lines []batchLine
	scn := bufio.NewScanner(r)
	scn.Buffer(make([]byte, 0, maxLineSize), maxLineSize)
	num := 0
	for scn.Scan() {
		num++
		op, args, ok := ParseLine(scn.Text())
		if !ok {
			continue
		}
		lines = append(lines, batchLine{num: num, op: op, args: args})
	}
	if err := scn.Err(); err != nil {
		return fmt.Errorf("calc: reading batch: %w", err)
	}

	e.logger.Info().Int("lines", len(lines)).Int("jobs", jobs).Msg("batch started")

	out := make([]string, len(lines))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, ln := range lines {
		idx, ln := i, ln
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := e.Eval(ln.op, ln.args)
			if err != nil {
				e.logger.Warn().Int("line", ln.num).Err(err).Msg("batch line failed")
				out[idx] = "ERR " + lineCode(err)
				return nil
			}
			out[idx] = res.String()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	for _, s := range out {
		if _, err := bw.WriteString(s + "\n"); err != nil {
			return fmt.Errorf("calc: writing batch: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("calc: writing batch: %w", err)
	}

	e.logger.Info().Int("lines", len(lines)).Msg("batch finished")
	return nil
}

// lineCode names the failure of a batch line: the num512 error code, or
// ErrUsage for an unknown op or the wrong operand count.
func lineCode(err error) string {
	if c := num512.Code(err); c > num512.OK {
		return c.String()
	}
	return "ErrUsage"
}
