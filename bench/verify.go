// SPDX-License-Identifier: MIT

package bench

import (
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/sparsebench/matrix"
)

// verifyTolerance bounds the element-wise difference accepted between two
// products. Integer-valued operands normally agree exactly.
const verifyTolerance = 1e-9

// results holds the six operator outputs of one iteration.
type results struct {
	dt, da, dm *matrix.Dense
	st, sa, sm *matrix.Sparse
}

// verify checks each sparse result against its dense twin and the dense
// product against gonum's mat.Dense.Mul.
func verify(size, iter int, a, b *matrix.Dense, r *results) error {
	pairs := []struct {
		op     Operation
		dense  *matrix.Dense
		sparse *matrix.Sparse
	}{
		{OpTranspose, r.dt, r.st},
		{OpAdd, r.da, r.sa},
		{OpMultiply, r.dm, r.sm},
	}
	for _, p := range pairs {
		back, err := matrix.SparseToDense(p.sparse)
		if err != nil {
			return verifyErrorf(size, iter, p.op, err.Error())
		}
		same, err := agree(p.dense, back)
		_ = back.Release()
		if err != nil {
			return verifyErrorf(size, iter, p.op, err.Error())
		}
		if !same {
			return verifyErrorf(size, iter, p.op, "dense and sparse results differ")
		}
	}

	ga, err := toGonum(a)
	if err != nil {
		return verifyErrorf(size, iter, OpMultiply, err.Error())
	}
	gb, err := toGonum(b)
	if err != nil {
		return verifyErrorf(size, iter, OpMultiply, err.Error())
	}
	gm, err := toGonum(r.dm)
	if err != nil {
		return verifyErrorf(size, iter, OpMultiply, err.Error())
	}
	var oracle mat.Dense
	oracle.Mul(ga, gb)
	if !mat.EqualApprox(&oracle, gm, verifyTolerance) {
		return verifyErrorf(size, iter, OpMultiply, "dense product differs from gonum")
	}

	return nil
}

// agree compares two dense matrices within verifyTolerance.
func agree(x, y *matrix.Dense) (bool, error) {
	gx, err := toGonum(x)
	if err != nil {
		return false, err
	}
	gy, err := toGonum(y)
	if err != nil {
		return false, err
	}

	return mat.EqualApprox(gx, gy, verifyTolerance), nil
}

// toGonum copies d into a *mat.Dense.
func toGonum(d *matrix.Dense) (*mat.Dense, error) {
	vals, err := d.Values()
	if err != nil {
		return nil, err
	}

	return mat.NewDense(d.Rows(), d.Cols(), vals), nil
}
