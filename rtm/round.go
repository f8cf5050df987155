package rtm

import "math"

// Rounding and sign handling. Both rounding policies leave NaN, +-Inf, and
// magnitudes at or above 2^52 unchanged: such values carry no representable
// fractional part, and a naive round-trip through a narrower integer type
// would corrupt them.

// RoundSymmetric rounds each lane to the nearest whole number with
// half-values rounding away from zero.
//
//	RoundSymmetric([1.5, 1.2, -1.5, -1.2]) = [2.0, 1.0, -2.0, -1.0]
func RoundSymmetric(v Vector4) Vector4 {
	return Vector4{
		scalarRoundSymmetric(v.X),
		scalarRoundSymmetric(v.Y),
		scalarRoundSymmetric(v.Z),
		scalarRoundSymmetric(v.W),
	}
}

// RoundBankers rounds each lane to the nearest whole number with
// half-values rounding to the nearest even.
//
//	RoundBankers([2.5, 1.5, -1.5, -1.2]) = [2.0, 2.0, -2.0, -1.0]
func RoundBankers(v Vector4) Vector4 {
	return Vector4{
		math.RoundToEven(v.X),
		math.RoundToEven(v.Y),
		math.RoundToEven(v.Z),
		math.RoundToEven(v.W),
	}
}

// Ceil returns per lane the smallest whole number not less than the input.
//
//	Ceil([1.8, 1.0, -1.8, -1.0]) = [2.0, 1.0, -1.0, -1.0]
func Ceil(v Vector4) Vector4 {
	return Vector4{math.Ceil(v.X), math.Ceil(v.Y), math.Ceil(v.Z), math.Ceil(v.W)}
}

// Floor returns per lane the largest whole number not greater than the
// input.
//
//	Floor([1.8, 1.0, -1.8, -1.0]) = [1.0, 1.0, -2.0, -1.0]
func Floor(v Vector4) Vector4 {
	return Vector4{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z), math.Floor(v.W)}
}

// Sign returns per lane input >= 0.0 ? 1.0 : -1.0.
//
// The comparison is >=, so Sign of -0.0 is +1.0 and Sign of a NaN lane is
// -1.0. This matches the comparison-driven select the hardware paths use;
// CopySign is the sign-bit-exact alternative.
func Sign(v Vector4) Vector4 {
	mask := GreaterEqual(v, Zero())
	return Select(mask, Broadcast(1.0), Broadcast(-1.0))
}

// CopySign combines per lane the magnitude of the input with the sign bit
// of the control value.
func CopySign(v, control Vector4) Vector4 {
	return Vector4{
		math.Copysign(v.X, control.X),
		math.Copysign(v.Y, control.Y),
		math.Copysign(v.Z, control.Z),
		math.Copysign(v.W, control.W),
	}
}
