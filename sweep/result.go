// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Result holds the samples of one sweep. It is read-only after construction.
type Result struct {
	Plane    Plane
	Quantity Quantity

	// U and V are the sample coordinates along the plane axes.
	U, V []float64

	// Vectors is row-major: the sample at (i, j) is Vectors[j*len(U)+i].
	Vectors []r3.Vec

	// Magnitude holds |Vectors| with rows along V and columns along U.
	Magnitude *mat.Dense

	// NonFinite counts samples with a NaN or infinite component.
	NonFinite int
}

// NewResult assembles a Result from row-major vectors.
// Returns ErrBadAxis/ErrBadPlane for an invalid plane and ErrShape when
// len(vectors) differs from plane.Size().
// Complexity: O(U·V).
func NewResult(plane Plane, q Quantity, vectors []r3.Vec) (*Result, error) {
	if err := plane.validate(); err != nil {
		return nil, err
	}
	if len(vectors) != plane.Size() {
		return nil, fmt.Errorf("%w: got %d, want %d×%d", ErrShape, len(vectors), plane.U.N, plane.V.N)
	}

	res := &Result{
		Plane:     plane,
		Quantity:  q,
		U:         plane.U.Values(),
		V:         plane.V.Values(),
		Vectors:   vectors,
		Magnitude: mat.NewDense(plane.V.N, plane.U.N, nil),
	}
	for idx, v := range vectors {
		i, j := plane.Coordinate(idx)
		if !finiteVec(v) {
			res.NonFinite++
		}
		res.Magnitude.Set(j, i, r3.Norm(v))
	}

	return res, nil
}

func finiteVec(v r3.Vec) bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// At returns the vector at grid index (i, j): i along U, j along V.
// Panics if (i, j) is out of bounds.
func (r *Result) At(i, j int) r3.Vec {
	if !r.Plane.InBounds(i, j) {
		panic(fmt.Sprintf("sweep: index (%d, %d) out of range", i, j))
	}

	return r.Vectors[r.Plane.index(i, j)]
}

// Point returns the lab point of grid index (i, j).
func (r *Result) Point(i, j int) r3.Vec {
	return r.Plane.Point(r.U[i], r.V[j])
}

// finiteMagnitudes returns the finite entries of Magnitude.
func (r *Result) finiteMagnitudes() []float64 {
	raw := r.Magnitude.RawMatrix()
	out := make([]float64, 0, raw.Rows*raw.Cols)
	for row := 0; row < raw.Rows; row++ {
		for _, v := range raw.Data[row*raw.Stride : row*raw.Stride+raw.Cols] {
			if isFinite(v) {
				out = append(out, v)
			}
		}
	}

	return out
}

// Max returns the largest finite magnitude, false when every sample is non-finite.
func (r *Result) Max() (float64, bool) {
	fin := r.finiteMagnitudes()
	if len(fin) == 0 {
		return 0, false
	}

	return floats.Max(fin), true
}

// Min returns the smallest finite magnitude, false when every sample is non-finite.
func (r *Result) Min() (float64, bool) {
	fin := r.finiteMagnitudes()
	if len(fin) == 0 {
		return 0, false
	}

	return floats.Min(fin), true
}

// Dims, X, Y and Z implement plotter.GridXYZ over the magnitude.

// Dims returns the number of columns (U samples) and rows (V samples).
func (r *Result) Dims() (c, rows int) { return len(r.U), len(r.V) }

// Z returns the magnitude at column c, row rw.
func (r *Result) Z(c, rw int) float64 { return r.Magnitude.At(rw, c) }

// X returns the U coordinate of column c.
func (r *Result) X(c int) float64 { return r.U[c] }

// Y returns the V coordinate of row rw.
func (r *Result) Y(rw int) float64 { return r.V[rw] }
