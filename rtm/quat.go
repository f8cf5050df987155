package rtm

import "math"

// Quaternion support. Quat shares Vector4's bit layout; the casts below
// reinterpret between the two losslessly, they are not numeric conversions.

// QuatIdentity returns the identity rotation [0, 0, 0, 1].
func QuatIdentity() Quat {
	return Quat{W: 1.0}
}

// VectorToQuat reinterprets a vector as a quaternion. Lossless.
func VectorToQuat(v Vector4) Quat {
	return Quat{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

// QuatToVector reinterprets a quaternion as a vector. Lossless.
func QuatToVector(q Quat) Vector4 {
	return Vector4{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// QuatLoad reads 4 values from src into a quaternion.
func QuatLoad(src []float64) Quat {
	return Quat{X: src[0], Y: src[1], Z: src[2], W: src[3]}
}

// QuatStore writes all 4 lanes to dst.
func QuatStore(q Quat, dst []float64) {
	_ = dst[3]
	dst[0] = q.X
	dst[1] = q.Y
	dst[2] = q.Z
	dst[3] = q.W
}

// QuatConjugate returns the conjugate rotation [-x, -y, -z, w].
func QuatConjugate(q Quat) Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// QuatNeg returns the per-component negation. Note that -q represents the
// same rotation as q.
func QuatNeg(q Quat) Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: -q.W}
}

// QuatDot returns the 4D dot product of the two inputs.
func QuatDot(lhs, rhs Quat) float64 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z) + (lhs.W * rhs.W)
}

// QuatLengthSquared returns the squared length/norm of the quaternion.
func QuatLengthSquared(q Quat) float64 {
	return QuatDot(q, q)
}

// QuatLength returns the length/norm of the quaternion.
func QuatLength(q Quat) float64 {
	return math.Sqrt(QuatLengthSquared(q))
}

// QuatNormalize returns the input normalized to unit length. If the input
// length is zero or not finite, the result is undefined.
func QuatNormalize(q Quat) Quat {
	invLen := scalarSqrtReciprocal(QuatLengthSquared(q))
	return Quat{X: q.X * invLen, Y: q.Y * invLen, Z: q.Z * invLen, W: q.W * invLen}
}

// QuatIsFinite returns true if all 4 components are finite (not NaN/Inf).
func QuatIsFinite(q Quat) bool {
	return scalarIsFinite(q.X) && scalarIsFinite(q.Y) && scalarIsFinite(q.Z) && scalarIsFinite(q.W)
}
