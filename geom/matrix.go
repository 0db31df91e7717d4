package geom

import (
	"errors"
	"math"
)

// Matrix is a 2D affine transform in the usual PDF order
// [a b c d e f], mapping (x, y) to (a*x + c*y + e, b*x + d*y + f).
type Matrix [6]float64

// Identity returns the identity transform.
func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

// Translation returns a transform that shifts by (tx, ty).
func Translation(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

// Scaling returns a transform that scales by (sx, sy) about the origin.
func Scaling(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

// Multiply returns m followed by o, i.e. o.Transform(m.Transform(p)).
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

// Point is a location in either canvas or PDF space; the caller keeps
// track of which.
type Point struct {
	X, Y float64
}

// Transform applies m to p.
func (m Matrix) Transform(p Point) Point {
	return Point{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ErrSingular is returned by Inverse for transforms that collapse the
// plane, such as a zero render scale.
var ErrSingular = errors.New("geom: matrix is singular")

// Inverse returns the transform that undoes m.
func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, ErrSingular
	}
	return Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}
