package rtm

import "math"

// This file provides the scalar counterparts of the vector operations.
// The vector kernels are built on the unexported float64 helpers; the
// exported Scalar forms let call sites chain work in the scalar register
// domain without converting back and forth.

// fractionalLimit is 2^52, the smallest positive double whose neighbors
// are at least 1 apart. Values at or beyond this magnitude carry no
// fractional part and must survive rounding unchanged.
const fractionalLimit = 4503599627370496.0

func scalarMin(lhs, rhs float64) float64 {
	// Matches the minpd/fmin operand convention: when the comparison is
	// false (including NaN lanes) the right-hand operand wins.
	if lhs < rhs {
		return lhs
	}
	return rhs
}

func scalarMax(lhs, rhs float64) float64 {
	if lhs > rhs {
		return lhs
	}
	return rhs
}

func scalarIsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func scalarFraction(v float64) float64 {
	return v - math.Trunc(v)
}

func scalarSqrtReciprocal(v float64) float64 {
	return 1.0 / math.Sqrt(v)
}

func scalarRoundSymmetric(v float64) float64 {
	// NaN, +-Inf, and magnitudes >= 2^52 have no fractional part and
	// pass through unchanged.
	if math.IsNaN(v) || math.Abs(v) >= fractionalLimit {
		return v
	}
	if v >= 0.0 {
		return math.Floor(v + 0.5)
	}
	return math.Ceil(v - 0.5)
}

func scalarSign(v float64) float64 {
	// Uses >=, so sign(-0.0) is +1.0 and sign(NaN) is -1.0. Downstream
	// rotation math depends on this convention; do not switch to copysign.
	if v >= 0.0 {
		return 1.0
	}
	return -1.0
}

// ScalarMin returns the smaller input. When either input is NaN, the
// right-hand operand is returned, matching the native min instruction.
func ScalarMin(lhs, rhs Scalar) Scalar {
	return Scalar(scalarMin(float64(lhs), float64(rhs)))
}

// ScalarMax returns the larger input. When either input is NaN, the
// right-hand operand is returned, matching the native max instruction.
func ScalarMax(lhs, rhs Scalar) Scalar {
	return Scalar(scalarMax(float64(lhs), float64(rhs)))
}

// ScalarClamp clamps the input between lo and hi as min(hi, max(lo, s)).
// The max is evaluated first, fixing the behavior with NaN bounds.
func ScalarClamp(s, lo, hi Scalar) Scalar {
	return ScalarMin(hi, ScalarMax(lo, s))
}

// ScalarAbs returns the absolute value of the input.
func ScalarAbs(s Scalar) Scalar {
	return Scalar(math.Abs(float64(s)))
}

// ScalarSqrt returns the square root of the input.
func ScalarSqrt(s Scalar) Scalar {
	return Scalar(math.Sqrt(float64(s)))
}

// ScalarSqrtReciprocal returns the reciprocal square root of the input.
func ScalarSqrtReciprocal(s Scalar) Scalar {
	return Scalar(scalarSqrtReciprocal(float64(s)))
}

// ScalarReciprocal returns 1 / s.
func ScalarReciprocal(s Scalar) Scalar {
	return 1.0 / s
}

// ScalarFraction returns the fractional part of the input: s - trunc(s).
func ScalarFraction(s Scalar) Scalar {
	return Scalar(scalarFraction(float64(s)))
}

// ScalarMulAdd returns s0 * s1 + s2 with a single rounding step.
func ScalarMulAdd(s0, s1, s2 Scalar) Scalar {
	return Scalar(math.FMA(float64(s0), float64(s1), float64(s2)))
}

// ScalarNegMulSub returns s2 - s0 * s1 with a single rounding step.
func ScalarNegMulSub(s0, s1, s2 Scalar) Scalar {
	return Scalar(math.FMA(-float64(s0), float64(s1), float64(s2)))
}

// ScalarLerp linearly interpolates from start to end with the given alpha.
// Exact at alpha 0 and 1.
func ScalarLerp(start, end, alpha Scalar) Scalar {
	return ScalarMulAdd(end, alpha, ScalarNegMulSub(start, alpha, start))
}

// ScalarRoundSymmetric rounds the input to the nearest whole number with
// half-values rounding away from zero. NaN, +-Inf, and magnitudes at or
// above 2^52 are returned unchanged.
func ScalarRoundSymmetric(s Scalar) Scalar {
	return Scalar(scalarRoundSymmetric(float64(s)))
}

// ScalarRoundBankers rounds the input to the nearest whole number with
// half-values rounding to the nearest even. NaN, +-Inf, and magnitudes at
// or above 2^52 are returned unchanged.
func ScalarRoundBankers(s Scalar) Scalar {
	return Scalar(math.RoundToEven(float64(s)))
}

// ScalarCeil returns the smallest whole number not less than the input.
func ScalarCeil(s Scalar) Scalar {
	return Scalar(math.Ceil(float64(s)))
}

// ScalarFloor returns the largest whole number not greater than the input.
func ScalarFloor(s Scalar) Scalar {
	return Scalar(math.Floor(float64(s)))
}

// ScalarSign returns 1.0 when s >= 0.0, otherwise -1.0.
// Note that ScalarSign(-0.0) is +1.0 because -0.0 >= 0.0 under IEEE-754.
func ScalarSign(s Scalar) Scalar {
	return Scalar(scalarSign(float64(s)))
}

// ScalarCopySign combines the magnitude of s with the sign bit of control.
func ScalarCopySign(s, control Scalar) Scalar {
	return Scalar(math.Copysign(float64(s), float64(control)))
}

// ScalarIsFinite returns true if the input is neither NaN nor infinite.
func ScalarIsFinite(s Scalar) bool {
	return scalarIsFinite(float64(s))
}

// ScalarSin returns the sine of the input angle.
func ScalarSin(s Scalar) Scalar {
	return Scalar(math.Sin(float64(s)))
}

// ScalarCos returns the cosine of the input angle.
func ScalarCos(s Scalar) Scalar {
	return Scalar(math.Cos(float64(s)))
}

// ScalarTan returns the tangent of the input angle, computed as
// sin(angle) / cos(angle). When cos is exactly zero the result is an
// infinity carrying the angle's sign.
func ScalarTan(s Scalar) Scalar {
	sin, cos := math.Sincos(float64(s))
	if cos == 0.0 {
		return Scalar(math.Copysign(math.Inf(1), float64(s)))
	}
	return Scalar(sin / cos)
}

// ScalarASin returns the arc-sine of the input.
// The input must be in the range [-1.0, 1.0].
func ScalarASin(s Scalar) Scalar {
	return Scalar(math.Asin(float64(s)))
}

// ScalarACos returns the arc-cosine of the input.
// The input must be in the range [-1.0, 1.0].
func ScalarACos(s Scalar) Scalar {
	return Scalar(math.Acos(float64(s)))
}

// ScalarATan returns the arc-tangent of the input.
func ScalarATan(s Scalar) Scalar {
	return Scalar(math.Atan(float64(s)))
}

// ScalarATan2 returns the arc-tangent of y/x, using the signs of both to
// determine the quadrant.
func ScalarATan2(y, x Scalar) Scalar {
	return Scalar(math.Atan2(float64(y), float64(x)))
}
