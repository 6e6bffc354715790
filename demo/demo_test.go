// SPDX-License-Identifier: MIT
package demo_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsebench/builder"
	"github.com/katalvlaran/sparsebench/demo"
)

func TestRun_Sections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, demo.Run(&buf, builder.WithSeed(42)))
	out := buf.String()

	for _, want := range []string{
		"SPARSE MATRIX OPERATIONS DEMO",
		"Matrix A (Dense) (5x5):",
		"Matrix A (Sparse) (Sparse 5x5,",
		"--- TRANSPOSE ---",
		"A^T (Transpose) (Sparse 5x5,",
		"Matrix B (Sparse 5x5,",
		"A + B (Sparse 5x5,",
		"A - B (Sparse 5x5,",
		"A x B (Sparse 5x5,",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "--- TRANSPOSE ---"), strings.Index(out, "--- MULTIPLICATION ---"))
}

func TestRun_Deterministic(t *testing.T) {
	var x, y bytes.Buffer
	require.NoError(t, demo.Run(&x, builder.WithSeed(7)))
	require.NoError(t, demo.Run(&y, builder.WithSeed(7)))
	assert.Equal(t, x.String(), y.String())
}

func TestRun_NeedsRand(t *testing.T) {
	err := demo.Run(&bytes.Buffer{})
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

// failingWriter rejects every write.
type failingWriter struct{}

var errSink = errors.New("sink closed")

func (failingWriter) Write([]byte) (int, error) { return 0, errSink }

func TestRun_WriterError(t *testing.T) {
	err := demo.Run(failingWriter{}, builder.WithSeed(1))
	require.ErrorIs(t, err, errSink)
}
