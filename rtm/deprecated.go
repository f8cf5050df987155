package rtm

// Thin forwarders kept for compatibility with earlier releases.

// DotAsScalar returns the 4D dot product in the scalar register domain.
//
// Deprecated: Use DotScalar instead.
func DotAsScalar(lhs, rhs Vector4) Scalar {
	return DotScalar(lhs, rhs)
}

// DotAsVector returns the 4D dot product replicated in all components.
//
// Deprecated: Use Dot with Broadcast instead.
func DotAsVector(lhs, rhs Vector4) Vector4 {
	return Broadcast(Dot(lhs, rhs))
}

// SymmetricRound rounds each lane to the nearest whole number with
// half-values rounding away from zero.
//
// Deprecated: Use RoundSymmetric instead.
func SymmetricRound(v Vector4) Vector4 {
	return RoundSymmetric(v)
}
