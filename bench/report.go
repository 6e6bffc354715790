// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Operation names a timed operator pair.
type Operation int

const (
	OpTranspose Operation = iota
	OpAdd
	OpMultiply
)

// Operations lists every Operation in report order.
var Operations = [...]Operation{OpTranspose, OpAdd, OpMultiply}

// String returns the display name of op.
func (op Operation) String() string {
	switch op {
	case OpTranspose:
		return "Transpose"
	case OpAdd:
		return "Add"
	case OpMultiply:
		return "Multiply"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Timing is the averaged cost of one operation at one size.
type Timing struct {
	Op     Operation
	Dense  time.Duration
	Sparse time.Duration
}

// Speedup returns Dense/Sparse. It is 0 when the sparse time is zero, since
// the clock did not resolve the call and no ratio can be stated.
func (t Timing) Speedup() float64 {
	if t.Sparse <= 0 {
		return 0
	}

	return float64(t.Dense) / float64(t.Sparse)
}

// SizeResult holds the averaged timings of one matrix size.
type SizeResult struct {
	Size    int
	Timings [len(Operations)]Timing // indexed by Operation
}

// Report is the outcome of Run.
type Report struct {
	Config  Config
	Results []SizeResult
}

const tableRule = "--------------------------------------------------------------------\n"

// ms renders a duration in fractional milliseconds.
func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }

// WriteTable writes the fixed-width result table:
//
//	Size       Operation    Dense (ms)      Sparse (ms)     Speedup
//
// one block of three rows per size, each block closed by a rule.
func (r *Report) WriteTable(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %-12s %-15s %-15s %s\n", "Size", "Operation", "Dense (ms)", "Sparse (ms)", "Speedup")
	b.WriteString(tableRule)
	for _, res := range r.Results {
		label := fmt.Sprintf("%dx%d", res.Size, res.Size)
		for _, t := range res.Timings {
			fmt.Fprintf(&b, "%-10s %-12s %-15.2f %-15.2f %.2fx\n",
				label, t.Op, ms(t.Dense), ms(t.Sparse), t.Speedup())
			label = ""
		}
		b.WriteString(tableRule)
	}

	_, err := io.WriteString(w, b.String())

	return err
}
