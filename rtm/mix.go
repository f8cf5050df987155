package rtm

// Swizzling, permutations, and mixing.

// Mix builds each output lane from one of the 8 source lanes: selectors
// X..W pick from input0 and A..D pick from input1. With constant selectors
// the lane dispatch folds away at compile time; there is no runtime
// branching left once inlined.
func Mix(input0, input1 Vector4, c0, c1, c2, c3 Component) Vector4 {
	return Vector4{
		mixLane(input0, input1, c0),
		mixLane(input0, input1, c1),
		mixLane(input0, input1, c2),
		mixLane(input0, input1, c3),
	}
}

func mixLane(input0, input1 Vector4, c Component) float64 {
	if c.isFirstInput() {
		return GetComponent(input0, c)
	}
	return GetComponent(input1, c)
}

// DupX replicates the [X] lane into all four lanes.
func DupX(v Vector4) Vector4 {
	return Mix(v, v, ComponentX, ComponentX, ComponentX, ComponentX)
}

// DupY replicates the [Y] lane into all four lanes.
func DupY(v Vector4) Vector4 {
	return Mix(v, v, ComponentY, ComponentY, ComponentY, ComponentY)
}

// DupZ replicates the [Z] lane into all four lanes.
func DupZ(v Vector4) Vector4 {
	return Mix(v, v, ComponentZ, ComponentZ, ComponentZ, ComponentZ)
}

// DupW replicates the [W] lane into all four lanes.
func DupW(v Vector4) Vector4 {
	return Mix(v, v, ComponentW, ComponentW, ComponentW, ComponentW)
}
