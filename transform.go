package ranger

import "math"

// AffineTransform is a 2D affine matrix.
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0   1 |
//
// Positive rotation turns +X toward +Y, which points down on screen.
type AffineTransform struct {
	A, B, C, D, Tx, Ty float64
}

// IdentityTransform is the identity affine matrix.
var IdentityTransform = AffineTransform{A: 1, D: 1}

// NewTranslate returns a translation matrix.
func NewTranslate(x, y float64) AffineTransform {
	return AffineTransform{A: 1, D: 1, Tx: x, Ty: y}
}

// NewRotate returns a rotation matrix for the given angle in degrees.
func NewRotate(degrees float64) AffineTransform {
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return AffineTransform{A: cos, B: sin, C: -sin, D: cos}
}

// NewScale returns a nonuniform scale matrix.
func NewScale(sx, sy float64) AffineTransform {
	return AffineTransform{A: sx, D: sy}
}

// composeTRS builds Translate(x, y) * Rotate(degrees) * Scale(sx, sy)
// without intermediate multiplies.
func composeTRS(x, y, degrees, sx, sy float64) AffineTransform {
	if degrees == 0 {
		return AffineTransform{A: sx, D: sy, Tx: x, Ty: y}
	}
	sin, cos := math.Sincos(degrees * math.Pi / 180)
	return AffineTransform{
		A:  cos * sx,
		B:  sin * sx,
		C:  -sin * sy,
		D:  cos * sy,
		Tx: x,
		Ty: y,
	}
}

// Multiply returns t * child: child is applied first, then t.
func (t AffineTransform) Multiply(child AffineTransform) AffineTransform {
	return AffineTransform{
		A:  t.A*child.A + t.C*child.B,
		B:  t.B*child.A + t.D*child.B,
		C:  t.A*child.C + t.C*child.D,
		D:  t.B*child.C + t.D*child.D,
		Tx: t.A*child.Tx + t.C*child.Ty + t.Tx,
		Ty: t.B*child.Tx + t.D*child.Ty + t.Ty,
	}
}

// Invert returns the inverse matrix, or the identity if t is singular.
func (t AffineTransform) Invert() AffineTransform {
	det := t.A*t.D - t.C*t.B
	if det > -1e-12 && det < 1e-12 {
		return IdentityTransform
	}
	inv := 1.0 / det
	a := t.D * inv
	b := -t.B * inv
	c := -t.C * inv
	d := t.A * inv
	return AffineTransform{
		A:  a,
		B:  b,
		C:  c,
		D:  d,
		Tx: -(a*t.Tx + c*t.Ty),
		Ty: -(b*t.Tx + d*t.Ty),
	}
}

// TransformPoint applies the full matrix, including translation.
func (t AffineTransform) TransformPoint(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.Tx, t.B*x + t.D*y + t.Ty
}

// TransformVector applies only the linear part of the matrix.
func (t AffineTransform) TransformVector(x, y float64) (float64, float64) {
	return t.A*x + t.C*y, t.B*x + t.D*y
}

// IsIdentity reports whether t is exactly the identity.
func (t AffineTransform) IsIdentity() bool {
	return t == IdentityTransform
}

// --- Node transform properties ---

// localTransform returns the node's composed local matrix, recomputing it
// only when the node is dirty.
func (n *Node) localTransform() AffineTransform {
	if n.dirty {
		n.local = composeTRS(n.x, n.y, n.rotation, n.scaleX, n.scaleY)
		n.inverse = n.local.Invert()
		n.dirty = false
		n.recomputes++
	}
	return n.local
}

// LocalTransform returns the node's cached local matrix.
func (n *Node) LocalTransform() AffineTransform {
	return n.localTransform()
}

// InverseTransform returns the inverse of the node's local matrix.
func (n *Node) InverseTransform() AffineTransform {
	n.localTransform()
	return n.inverse
}

// filteredTransform rebuilds the node's local matrix using only the
// components that are not excluded.
func (n *Node) filteredTransform(excludeTranslation, excludeRotation, excludeScale bool) AffineTransform {
	x, y := n.x, n.y
	if excludeTranslation {
		x, y = 0, 0
	}
	rot := n.rotation
	if excludeRotation {
		rot = 0
	}
	sx, sy := n.scaleX, n.scaleY
	if excludeScale {
		sx, sy = 1, 1
	}
	return composeTRS(x, y, rot, sx, sy)
}
