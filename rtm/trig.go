package rtm

import "math"

// Trigonometry applies the scalar transcendental to each lane
// independently; there is no cross-lane interaction.

// Sin returns per lane the sine of the input angle.
func Sin(v Vector4) Vector4 {
	return Vector4{math.Sin(v.X), math.Sin(v.Y), math.Sin(v.Z), math.Sin(v.W)}
}

// Cos returns per lane the cosine of the input angle.
func Cos(v Vector4) Vector4 {
	return Vector4{math.Cos(v.X), math.Cos(v.Y), math.Cos(v.Z), math.Cos(v.W)}
}

// Tan returns per lane the tangent of the input angle, computed as
// sin(angle) / cos(angle). Lanes where cos is exactly zero return an
// infinity carrying the angle's sign instead of the quotient.
func Tan(angle Vector4) Vector4 {
	sin := Sin(angle)
	cos := Cos(angle)

	isCosZero := Equal(cos, Zero())
	signedInfinity := CopySign(Broadcast(math.Inf(1)), angle)
	result := Div(sin, cos)
	return Select(isCosZero, signedInfinity, result)
}

// ASin returns per lane the arc-sine of the input.
// Input lanes must be in the range [-1.0, 1.0].
func ASin(v Vector4) Vector4 {
	return Vector4{math.Asin(v.X), math.Asin(v.Y), math.Asin(v.Z), math.Asin(v.W)}
}

// ACos returns per lane the arc-cosine of the input.
// Input lanes must be in the range [-1.0, 1.0].
func ACos(v Vector4) Vector4 {
	return Vector4{math.Acos(v.X), math.Acos(v.Y), math.Acos(v.Z), math.Acos(v.W)}
}

// ATan returns per lane the arc-tangent of the input. Due to the sign
// ambiguity, atan cannot determine which quadrant the value resides in;
// use ATan2 when the quadrant matters.
func ATan(v Vector4) Vector4 {
	return Vector4{math.Atan(v.X), math.Atan(v.Y), math.Atan(v.Z), math.Atan(v.W)}
}

// ATan2 returns per lane the arc-tangent of y/x, using the signs of the
// arguments to determine the correct quadrant.
func ATan2(y, x Vector4) Vector4 {
	return Vector4{
		math.Atan2(y.X, x.X),
		math.Atan2(y.Y, x.Y),
		math.Atan2(y.Z, x.Z),
		math.Atan2(y.W, x.W),
	}
}
