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

// Per-component comparisons produce a Mask4 whose lanes are all-1-bits
// where the relation holds, never a boolean 0/1. The all/any reduction
// families test the full 4 lanes, the [XY] lanes (suffix 2), or the [XYZ]
// lanes (suffix 3) and short-circuit without building a mask.

// Equal returns per component lhs == rhs as an all-bits mask lane.
func Equal(lhs, rhs Vector4) Mask4 {
	return Mask4{
		maskLane(lhs.X == rhs.X),
		maskLane(lhs.Y == rhs.Y),
		maskLane(lhs.Z == rhs.Z),
		maskLane(lhs.W == rhs.W),
	}
}

// LessThan returns per component lhs < rhs as an all-bits mask lane.
func LessThan(lhs, rhs Vector4) Mask4 {
	return Mask4{
		maskLane(lhs.X < rhs.X),
		maskLane(lhs.Y < rhs.Y),
		maskLane(lhs.Z < rhs.Z),
		maskLane(lhs.W < rhs.W),
	}
}

// LessEqual returns per component lhs <= rhs as an all-bits mask lane.
func LessEqual(lhs, rhs Vector4) Mask4 {
	return Mask4{
		maskLane(lhs.X <= rhs.X),
		maskLane(lhs.Y <= rhs.Y),
		maskLane(lhs.Z <= rhs.Z),
		maskLane(lhs.W <= rhs.W),
	}
}

// GreaterThan returns per component lhs > rhs as an all-bits mask lane.
func GreaterThan(lhs, rhs Vector4) Mask4 {
	return Mask4{
		maskLane(lhs.X > rhs.X),
		maskLane(lhs.Y > rhs.Y),
		maskLane(lhs.Z > rhs.Z),
		maskLane(lhs.W > rhs.W),
	}
}

// GreaterEqual returns per component lhs >= rhs as an all-bits mask lane.
func GreaterEqual(lhs, rhs Vector4) Mask4 {
	return Mask4{
		maskLane(lhs.X >= rhs.X),
		maskLane(lhs.Y >= rhs.Y),
		maskLane(lhs.Z >= rhs.Z),
		maskLane(lhs.W >= rhs.W),
	}
}

// AllEqual returns true if all 4 components are equal: all(lhs == rhs).
func AllEqual(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y && lhs.Z == rhs.Z && lhs.W == rhs.W
}

// AllEqual2 returns true if the [XY] components are equal.
func AllEqual2(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y
}

// AllEqual3 returns true if the [XYZ] components are equal.
func AllEqual3(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X && lhs.Y == rhs.Y && lhs.Z == rhs.Z
}

// AnyEqual returns true if any of the 4 components are equal.
func AnyEqual(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X || lhs.Y == rhs.Y || lhs.Z == rhs.Z || lhs.W == rhs.W
}

// AnyEqual2 returns true if any of the [XY] components are equal.
func AnyEqual2(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X || lhs.Y == rhs.Y
}

// AnyEqual3 returns true if any of the [XYZ] components are equal.
func AnyEqual3(lhs, rhs Vector4) bool {
	return lhs.X == rhs.X || lhs.Y == rhs.Y || lhs.Z == rhs.Z
}

// AllLessThan returns true if all 4 components satisfy lhs < rhs.
func AllLessThan(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X && lhs.Y < rhs.Y && lhs.Z < rhs.Z && lhs.W < rhs.W
}

// AllLessThan2 returns true if the [XY] components satisfy lhs < rhs.
func AllLessThan2(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X && lhs.Y < rhs.Y
}

// AllLessThan3 returns true if the [XYZ] components satisfy lhs < rhs.
func AllLessThan3(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X && lhs.Y < rhs.Y && lhs.Z < rhs.Z
}

// AnyLessThan returns true if any of the 4 components satisfy lhs < rhs.
func AnyLessThan(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X || lhs.Y < rhs.Y || lhs.Z < rhs.Z || lhs.W < rhs.W
}

// AnyLessThan2 returns true if any of the [XY] components satisfy lhs < rhs.
func AnyLessThan2(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X || lhs.Y < rhs.Y
}

// AnyLessThan3 returns true if any of the [XYZ] components satisfy lhs < rhs.
func AnyLessThan3(lhs, rhs Vector4) bool {
	return lhs.X < rhs.X || lhs.Y < rhs.Y || lhs.Z < rhs.Z
}

// AllLessEqual returns true if all 4 components satisfy lhs <= rhs.
func AllLessEqual(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X && lhs.Y <= rhs.Y && lhs.Z <= rhs.Z && lhs.W <= rhs.W
}

// AllLessEqual2 returns true if the [XY] components satisfy lhs <= rhs.
func AllLessEqual2(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X && lhs.Y <= rhs.Y
}

// AllLessEqual3 returns true if the [XYZ] components satisfy lhs <= rhs.
func AllLessEqual3(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X && lhs.Y <= rhs.Y && lhs.Z <= rhs.Z
}

// AnyLessEqual returns true if any of the 4 components satisfy lhs <= rhs.
func AnyLessEqual(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X || lhs.Y <= rhs.Y || lhs.Z <= rhs.Z || lhs.W <= rhs.W
}

// AnyLessEqual2 returns true if any of the [XY] components satisfy lhs <= rhs.
func AnyLessEqual2(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X || lhs.Y <= rhs.Y
}

// AnyLessEqual3 returns true if any of the [XYZ] components satisfy lhs <= rhs.
func AnyLessEqual3(lhs, rhs Vector4) bool {
	return lhs.X <= rhs.X || lhs.Y <= rhs.Y || lhs.Z <= rhs.Z
}

// AllGreaterThan returns true if all 4 components satisfy lhs > rhs.
func AllGreaterThan(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X && lhs.Y > rhs.Y && lhs.Z > rhs.Z && lhs.W > rhs.W
}

// AllGreaterThan2 returns true if the [XY] components satisfy lhs > rhs.
func AllGreaterThan2(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X && lhs.Y > rhs.Y
}

// AllGreaterThan3 returns true if the [XYZ] components satisfy lhs > rhs.
func AllGreaterThan3(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X && lhs.Y > rhs.Y && lhs.Z > rhs.Z
}

// AnyGreaterThan returns true if any of the 4 components satisfy lhs > rhs.
func AnyGreaterThan(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X || lhs.Y > rhs.Y || lhs.Z > rhs.Z || lhs.W > rhs.W
}

// AnyGreaterThan2 returns true if any of the [XY] components satisfy lhs > rhs.
func AnyGreaterThan2(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X || lhs.Y > rhs.Y
}

// AnyGreaterThan3 returns true if any of the [XYZ] components satisfy lhs > rhs.
func AnyGreaterThan3(lhs, rhs Vector4) bool {
	return lhs.X > rhs.X || lhs.Y > rhs.Y || lhs.Z > rhs.Z
}

// AllGreaterEqual returns true if all 4 components satisfy lhs >= rhs.
func AllGreaterEqual(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X && lhs.Y >= rhs.Y && lhs.Z >= rhs.Z && lhs.W >= rhs.W
}

// AllGreaterEqual2 returns true if the [XY] components satisfy lhs >= rhs.
func AllGreaterEqual2(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X && lhs.Y >= rhs.Y
}

// AllGreaterEqual3 returns true if the [XYZ] components satisfy lhs >= rhs.
func AllGreaterEqual3(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X && lhs.Y >= rhs.Y && lhs.Z >= rhs.Z
}

// AnyGreaterEqual returns true if any of the 4 components satisfy lhs >= rhs.
func AnyGreaterEqual(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X || lhs.Y >= rhs.Y || lhs.Z >= rhs.Z || lhs.W >= rhs.W
}

// AnyGreaterEqual2 returns true if any of the [XY] components satisfy lhs >= rhs.
func AnyGreaterEqual2(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X || lhs.Y >= rhs.Y
}

// AnyGreaterEqual3 returns true if any of the [XYZ] components satisfy lhs >= rhs.
func AnyGreaterEqual3(lhs, rhs Vector4) bool {
	return lhs.X >= rhs.X || lhs.Y >= rhs.Y || lhs.Z >= rhs.Z
}

// DefaultNearEqualThreshold is the per-component tolerance conventionally
// used with the near-equal comparisons.
const DefaultNearEqualThreshold = 1.0e-5

// AllNearEqual returns true if all 4 components are within threshold of
// each other: all(abs(lhs - rhs) <= threshold).
func AllNearEqual(lhs, rhs Vector4, threshold float64) bool {
	return AllLessEqual(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// AllNearEqual2 returns true if the [XY] components are within threshold of
// each other.
func AllNearEqual2(lhs, rhs Vector4, threshold float64) bool {
	return AllLessEqual2(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// AllNearEqual3 returns true if the [XYZ] components are within threshold
// of each other.
func AllNearEqual3(lhs, rhs Vector4, threshold float64) bool {
	return AllLessEqual3(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// AnyNearEqual returns true if any of the 4 components are within threshold
// of each other.
func AnyNearEqual(lhs, rhs Vector4, threshold float64) bool {
	return AnyLessEqual(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// AnyNearEqual2 returns true if any of the [XY] components are within
// threshold of each other.
func AnyNearEqual2(lhs, rhs Vector4, threshold float64) bool {
	return AnyLessEqual2(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// AnyNearEqual3 returns true if any of the [XYZ] components are within
// threshold of each other.
func AnyNearEqual3(lhs, rhs Vector4, threshold float64) bool {
	return AnyLessEqual3(Abs(Sub(lhs, rhs)), Broadcast(threshold))
}

// IsFinite returns true if all 4 components are finite (not NaN/Inf).
func IsFinite(v Vector4) bool {
	return scalarIsFinite(v.X) && scalarIsFinite(v.Y) && scalarIsFinite(v.Z) && scalarIsFinite(v.W)
}

// IsFinite2 returns true if the [XY] components are finite (not NaN/Inf).
func IsFinite2(v Vector4) bool {
	return scalarIsFinite(v.X) && scalarIsFinite(v.Y)
}

// IsFinite3 returns true if the [XYZ] components are finite (not NaN/Inf).
func IsFinite3(v Vector4) bool {
	return scalarIsFinite(v.X) && scalarIsFinite(v.Y) && scalarIsFinite(v.Z)
}

// Select blends the two inputs per lane: mask != 0 ? ifTrue : ifFalse.
// The blend is a bitwise OR/AND/ANDNOT on the raw lane bits, so it works
// uniformly regardless of the payload's meaning; the mask's bit pattern,
// not a tested boolean, drives selection.
func Select(mask Mask4, ifTrue, ifFalse Vector4) Vector4 {
	return Vector4{
		selectLane(mask.X, ifTrue.X, ifFalse.X),
		selectLane(mask.Y, ifTrue.Y, ifFalse.Y),
		selectLane(mask.Z, ifTrue.Z, ifFalse.Z),
		selectLane(mask.W, ifTrue.W, ifFalse.W),
	}
}

func selectLane(mask uint64, ifTrue, ifFalse float64) float64 {
	bits := (mask & math.Float64bits(ifTrue)) | (^mask & math.Float64bits(ifFalse))
	return math.Float64frombits(bits)
}
