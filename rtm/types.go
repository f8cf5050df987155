// Package rtm provides realtime math primitives: a 4-wide float64 vector,
// a quaternion, per-lane masks, and a flat catalogue of pure per-component
// operations over them (load/store, arithmetic, comparison, trigonometry,
// rounding, swizzling).
//
// It follows the Realtime Math C++ library's design: small value types that
// are never mutated in place, no allocation, no error paths beyond IEEE-754
// edge values. Operations pick the best implementation for the detected CPU
// capability level (see CurrentLevel), and every level produces identical
// bits for identical inputs.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-rtm/rtm"
//
//	a := rtm.Set(1, 2, 3, 4)
//	b := rtm.Broadcast(0.5)
//	c := rtm.MulAdd(a, b, rtm.Zero())
//	rtm.Store(c, out)
package rtm

// Vector4 is an ordered 4-tuple of float64 lanes [X, Y, Z, W].
//
// It represents points, directions, or packed scalar broadcasts. No
// operation implicitly clamps or normalizes; lanes may hold any IEEE-754
// double including NaN and infinities unless an operation's contract says
// otherwise. Vector4 values are passed and returned by value and never
// mutated.
type Vector4 struct {
	X, Y, Z, W float64
}

// Quat is a rotation quaternion with float64 lanes [X, Y, Z, W].
//
// It shares Vector4's bit layout; VectorToQuat and QuatToVector reinterpret
// between the two losslessly.
type Quat struct {
	X, Y, Z, W float64
}

// Scalar is a single float64 kept in the library's scalar register domain.
//
// It exists so call sites can chain scalar operations without committing to
// a raw float64, mirroring how hardware-resident scalars avoid round-trips
// through general-purpose registers. Converting between Scalar and float64
// is free and the two are value-equivalent at every API boundary.
type Scalar float64

// Float64 returns the plain numeric value of the scalar.
func (s Scalar) Float64() float64 {
	return float64(s)
}

// maskTrue is the all-1-bits lane pattern produced by comparisons.
const maskTrue = ^uint64(0)

// Mask4 holds four boolean lanes, each encoded as an all-0s or all-1s bit
// pattern so that masks compose bitwise and drive Select without any
// per-lane boolean test.
//
// Mask4 values should not be created directly; use comparison operations
// like Equal, LessThan, or GreaterEqual, or NewMask for tests.
type Mask4 struct {
	X, Y, Z, W uint64
}

// NewMask builds a mask from four booleans, encoding each as all-0s or
// all-1s bits.
func NewMask(x, y, z, w bool) Mask4 {
	return Mask4{maskLane(x), maskLane(y), maskLane(z), maskLane(w)}
}

func maskLane(b bool) uint64 {
	if b {
		return maskTrue
	}
	return 0
}

// AllTrue returns true if all 4 lanes are set.
func (m Mask4) AllTrue() bool {
	return m.X != 0 && m.Y != 0 && m.Z != 0 && m.W != 0
}

// AllTrue2 returns true if the [XY] lanes are set.
func (m Mask4) AllTrue2() bool {
	return m.X != 0 && m.Y != 0
}

// AllTrue3 returns true if the [XYZ] lanes are set.
func (m Mask4) AllTrue3() bool {
	return m.X != 0 && m.Y != 0 && m.Z != 0
}

// AnyTrue returns true if at least one of the 4 lanes is set.
func (m Mask4) AnyTrue() bool {
	return m.X != 0 || m.Y != 0 || m.Z != 0 || m.W != 0
}

// AnyTrue2 returns true if at least one of the [XY] lanes is set.
func (m Mask4) AnyTrue2() bool {
	return m.X != 0 || m.Y != 0
}

// AnyTrue3 returns true if at least one of the [XYZ] lanes is set.
func (m Mask4) AnyTrue3() bool {
	return m.X != 0 || m.Y != 0 || m.Z != 0
}

// Lane returns whether lane i (0..3 for X..W) is set.
func (m Mask4) Lane(i int) bool {
	switch i {
	case 0:
		return m.X != 0
	case 1:
		return m.Y != 0
	case 2:
		return m.Z != 0
	case 3:
		return m.W != 0
	default:
		return false
	}
}

// Component identifies one of the 8 lanes across two input vectors:
// X, Y, Z, W index into the first input while A, B, C, D index into the
// second. Mix resolves one Component per output lane; the single-input
// accessors fold A..D back onto X..W.
type Component int

const (
	ComponentX Component = iota
	ComponentY
	ComponentZ
	ComponentW
	ComponentA
	ComponentB
	ComponentC
	ComponentD
)

// isFirstInput reports whether the component indexes into the first input.
func (c Component) isFirstInput() bool {
	return c <= ComponentW
}

// xyzw folds the component onto the X..W range of a single input.
func (c Component) xyzw() Component {
	return c % 4
}

// String returns the lane name, e.g. "x" or "a".
func (c Component) String() string {
	switch c {
	case ComponentX:
		return "x"
	case ComponentY:
		return "y"
	case ComponentZ:
		return "z"
	case ComponentW:
		return "w"
	case ComponentA:
		return "a"
	case ComponentB:
		return "b"
	case ComponentC:
		return "c"
	case ComponentD:
		return "d"
	default:
		return "unknown"
	}
}

// Float2 is a tightly packed 2-component float64 struct for load/store.
type Float2 struct {
	X, Y float64
}

// Float3 is a tightly packed 3-component float64 struct for load/store.
type Float3 struct {
	X, Y, Z float64
}

// Float4 is a tightly packed 4-component float64 struct for load/store.
type Float4 struct {
	X, Y, Z, W float64
}

// Float2F is a tightly packed 2-component float32 struct for load/store.
type Float2F struct {
	X, Y float32
}

// Float3F is a tightly packed 3-component float32 struct for load/store.
type Float3F struct {
	X, Y, Z float32
}

// Float4F is a tightly packed 4-component float32 struct for load/store.
type Float4F struct {
	X, Y, Z, W float32
}
