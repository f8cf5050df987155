// Copyright 2026 go-rtm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rtm

import "math"

// Per-component arithmetic. All operations follow IEEE-754 semantics
// exactly: division by zero yields a signed infinity and NaN propagates.

// Add returns the per-component sum: lhs + rhs.
func Add(lhs, rhs Vector4) Vector4 {
	return Vector4{lhs.X + rhs.X, lhs.Y + rhs.Y, lhs.Z + rhs.Z, lhs.W + rhs.W}
}

// Sub returns the per-component difference: lhs - rhs.
func Sub(lhs, rhs Vector4) Vector4 {
	return Vector4{lhs.X - rhs.X, lhs.Y - rhs.Y, lhs.Z - rhs.Z, lhs.W - rhs.W}
}

// Mul returns the per-component product: lhs * rhs.
func Mul(lhs, rhs Vector4) Vector4 {
	return Vector4{lhs.X * rhs.X, lhs.Y * rhs.Y, lhs.Z * rhs.Z, lhs.W * rhs.W}
}

// MulScalar multiplies every lane of the vector by a scalar: lhs * rhs.
func MulScalar(lhs Vector4, rhs float64) Vector4 {
	return Vector4{lhs.X * rhs, lhs.Y * rhs, lhs.Z * rhs, lhs.W * rhs}
}

// Div returns the per-component quotient: lhs / rhs.
func Div(lhs, rhs Vector4) Vector4 {
	return Vector4{lhs.X / rhs.X, lhs.Y / rhs.Y, lhs.Z / rhs.Z, lhs.W / rhs.W}
}

// Max returns the per-component maximum of the two inputs.
// When either lane is NaN, the rhs lane is returned, matching the native
// max instruction rather than a sanitized result.
func Max(lhs, rhs Vector4) Vector4 {
	return Vector4{
		scalarMax(lhs.X, rhs.X),
		scalarMax(lhs.Y, rhs.Y),
		scalarMax(lhs.Z, rhs.Z),
		scalarMax(lhs.W, rhs.W),
	}
}

// Min returns the per-component minimum of the two inputs.
// When either lane is NaN, the rhs lane is returned, matching the native
// min instruction rather than a sanitized result.
func Min(lhs, rhs Vector4) Vector4 {
	return Vector4{
		scalarMin(lhs.X, rhs.X),
		scalarMin(lhs.Y, rhs.Y),
		scalarMin(lhs.Z, rhs.Z),
		scalarMin(lhs.W, rhs.W),
	}
}

// Clamp clamps each lane between lo and hi: min(hi, max(lo, v)).
// The max is evaluated first; this fixes the behavior with NaN bounds.
func Clamp(v, lo, hi Vector4) Vector4 {
	return Min(hi, Max(lo, v))
}

// Abs returns the per-component absolute value.
func Abs(v Vector4) Vector4 {
	return Vector4{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z), math.Abs(v.W)}
}

// Neg returns the per-component negation: -v.
func Neg(v Vector4) Vector4 {
	return MulScalar(v, -1.0)
}

// Reciprocal returns the per-component reciprocal: 1 / v.
func Reciprocal(v Vector4) Vector4 {
	return Div(Broadcast(1.0), v)
}

// Fraction returns the per-component fractional part: v - trunc(v).
func Fraction(v Vector4) Vector4 {
	return Vector4{
		scalarFraction(v.X),
		scalarFraction(v.Y),
		scalarFraction(v.Z),
		scalarFraction(v.W),
	}
}

// MulAdd returns per component v0 * v1 + v2 with a single rounding step.
// The fused result may differ in the last bit from a separate multiply and
// add; that divergence is part of the contract, not a defect.
func MulAdd(v0, v1, v2 Vector4) Vector4 {
	return Vector4{
		math.FMA(v0.X, v1.X, v2.X),
		math.FMA(v0.Y, v1.Y, v2.Y),
		math.FMA(v0.Z, v1.Z, v2.Z),
		math.FMA(v0.W, v1.W, v2.W),
	}
}

// MulAddScalar returns per component v0 * s1 + v2 with a single rounding
// step, broadcasting the scalar multiplier.
func MulAddScalar(v0 Vector4, s1 float64, v2 Vector4) Vector4 {
	return Vector4{
		math.FMA(v0.X, s1, v2.X),
		math.FMA(v0.Y, s1, v2.Y),
		math.FMA(v0.Z, s1, v2.Z),
		math.FMA(v0.W, s1, v2.W),
	}
}

// NegMulSub returns per component v2 - v0 * v1 with a single rounding step.
func NegMulSub(v0, v1, v2 Vector4) Vector4 {
	return Vector4{
		math.FMA(-v0.X, v1.X, v2.X),
		math.FMA(-v0.Y, v1.Y, v2.Y),
		math.FMA(-v0.Z, v1.Z, v2.Z),
		math.FMA(-v0.W, v1.W, v2.W),
	}
}

// NegMulSubScalar returns per component v2 - v0 * s1 with a single rounding
// step, broadcasting the scalar multiplier.
func NegMulSubScalar(v0 Vector4, s1 float64, v2 Vector4) Vector4 {
	return Vector4{
		math.FMA(-v0.X, s1, v2.X),
		math.FMA(-v0.Y, s1, v2.Y),
		math.FMA(-v0.Z, s1, v2.Z),
		math.FMA(-v0.W, s1, v2.W),
	}
}

// Lerp interpolates per component from start towards end by alpha:
// ((1 - alpha) * start) + (alpha * end). The mul_add/neg_mul_sub form is
// used because it returns start exactly at alpha 0 and end exactly at
// alpha 1, which the naive start + alpha*(end-start) form does not.
func Lerp(start, end Vector4, alpha float64) Vector4 {
	return MulAddScalar(end, alpha, NegMulSubScalar(start, alpha, start))
}

// Dot returns the 4D dot product of the two inputs.
func Dot(lhs, rhs Vector4) float64 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z) + (lhs.W * rhs.W)
}

// DotScalar returns the 4D dot product in the scalar register domain.
// Value-equivalent to Dot.
func DotScalar(lhs, rhs Vector4) Scalar {
	return Scalar(Dot(lhs, rhs))
}

// Dot3 returns the 3D dot product of the [XYZ] lanes. The [W] lanes are
// never read.
func Dot3(lhs, rhs Vector4) float64 {
	return (lhs.X * rhs.X) + (lhs.Y * rhs.Y) + (lhs.Z * rhs.Z)
}

// Dot3Scalar returns the 3D dot product in the scalar register domain.
// Value-equivalent to Dot3.
func Dot3Scalar(lhs, rhs Vector4) Scalar {
	return Scalar(Dot3(lhs, rhs))
}

// Cross3 returns the 3D cross product of the [XYZ] lanes:
// cross(a, b) = (a.yzx * b.zxy) - (a.zxy * b.yzx). The [W] lane of the
// result is zero and the input [W] lanes are never read.
func Cross3(lhs, rhs Vector4) Vector4 {
	return Set(
		(lhs.Y*rhs.Z)-(lhs.Z*rhs.Y),
		(lhs.Z*rhs.X)-(lhs.X*rhs.Z),
		(lhs.X*rhs.Y)-(lhs.Y*rhs.X),
		0.0,
	)
}

// LengthSquared returns the squared length/norm of the 4D vector.
func LengthSquared(v Vector4) float64 {
	return Dot(v, v)
}

// LengthSquared3 returns the squared length/norm of the [XYZ] lanes.
func LengthSquared3(v Vector4) float64 {
	return Dot3(v, v)
}

// Length returns the length/norm of the 4D vector.
func Length(v Vector4) float64 {
	return math.Sqrt(LengthSquared(v))
}

// Length3 returns the length/norm of the [XYZ] lanes.
func Length3(v Vector4) float64 {
	return math.Sqrt(LengthSquared3(v))
}

// LengthReciprocal returns the reciprocal length/norm of the 4D vector.
func LengthReciprocal(v Vector4) float64 {
	return scalarSqrtReciprocal(LengthSquared(v))
}

// LengthReciprocal3 returns the reciprocal length/norm of the [XYZ] lanes.
func LengthReciprocal3(v Vector4) float64 {
	return scalarSqrtReciprocal(LengthSquared3(v))
}

// Distance3 returns the distance between two 3D points held in the [XYZ]
// lanes.
func Distance3(lhs, rhs Vector4) float64 {
	return Length3(Sub(lhs, rhs))
}

// Normalize3 returns the input with the [XYZ] lanes normalized to unit
// length. The reciprocal square root is used because it is more accurate
// than dividing by the length. If the input length is zero or not finite,
// the result is undefined; use Normalize3Safe for a guarded alternative.
func Normalize3(v Vector4) Vector4 {
	lenSq := LengthSquared3(v)
	return MulScalar(v, scalarSqrtReciprocal(lenSq))
}

// DefaultNormalizeThreshold is the squared-length threshold below which
// Normalize3Safe returns its fallback.
const DefaultNormalizeThreshold = 1.0e-8

// Normalize3Safe returns the input with the [XYZ] lanes normalized to unit
// length, or fallback unchanged when the squared length of the input is
// below threshold.
func Normalize3Safe(v, fallback Vector4, threshold float64) Vector4 {
	lenSq := LengthSquared3(v)
	if lenSq >= threshold {
		return MulScalar(v, scalarSqrtReciprocal(lenSq))
	}
	return fallback
}
