package vantage

import "math"

// Matrix is a 2D affine transform in the row-major 6-tuple convention used
// by Canvas2D's setTransform:
//
//	| A  C  E |
//	| B  D  F |
//	| 0  0  1 |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity returns the identity matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Apply transforms the point p by the matrix.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

// Mul returns m * n, the matrix that applies n first and then m.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Invert computes the inverse of the matrix.
// Returns the identity matrix if the matrix is singular (determinant ≈ 0).
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.C*m.B
	if det > -1e-12 && det < 1e-12 {
		return Identity()
	}
	invDet := 1.0 / det
	a := m.D * invDet
	b := -m.B * invDet
	c := -m.C * invDet
	d := m.A * invDet
	return Matrix{
		A: a, B: b, C: c, D: d,
		E: -(a*m.E + c*m.F),
		F: -(b*m.E + d*m.F),
	}
}

// translation returns a matrix translating by (tx, ty).
func translation(tx, ty float64) Matrix {
	return Matrix{A: 1, D: 1, E: tx, F: ty}
}

// scaling returns a matrix scaling by (sx, sy).
func scaling(sx, sy float64) Matrix {
	return Matrix{A: sx, D: sy}
}

// rotation returns a matrix rotating by angle radians.
func rotation(angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// --- Angle arithmetic ---

const twoPi = 2 * math.Pi

// NormalizeAngle maps any angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}

// AngleSpan returns the shortest signed arc from a to b, in (-π, π].
// a + AngleSpan(a, b) is congruent to b modulo 2π. Rotation deltas always go
// through this, never raw subtraction, so crossing the 0/2π seam never
// produces a >180° jump.
func AngleSpan(a, b float64) float64 {
	d := math.Mod(b-a, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}
