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

// This file provides constructors, accessors, and the load/store boundary.
// Loads zero-fill the trailing lanes they do not populate; stores write
// exactly N values and never touch the destination beyond them. Buffers are
// the caller's responsibility: undersized slices panic per normal Go bounds
// checking rather than being silently truncated.

// Set builds a vector from four lane values.
func Set(x, y, z, w float64) Vector4 {
	return Vector4{X: x, Y: y, Z: z, W: w}
}

// Broadcast replicates a single value into all four lanes.
func Broadcast(v float64) Vector4 {
	return Vector4{X: v, Y: v, Z: v, W: v}
}

// BroadcastScalar replicates a scalar into all four lanes.
func BroadcastScalar(s Scalar) Vector4 {
	return Broadcast(float64(s))
}

// Zero returns the vector with all lanes set to zero.
func Zero() Vector4 {
	return Vector4{}
}

// Load reads 4 values from src into a vector.
func Load(src []float64) Vector4 {
	return Vector4{X: src[0], Y: src[1], Z: src[2], W: src[3]}
}

// Load1 reads 1 value from src into the [X] lane and zero-fills [YZW].
func Load1(src []float64) Vector4 {
	return Vector4{X: src[0]}
}

// Load2 reads 2 values from src into the [XY] lanes and zero-fills [ZW].
func Load2(src []float64) Vector4 {
	return Vector4{X: src[0], Y: src[1]}
}

// Load3 reads 3 values from src into the [XYZ] lanes and zero-fills [W].
func Load3(src []float64) Vector4 {
	return Vector4{X: src[0], Y: src[1], Z: src[2]}
}

// LoadFloat4 reads a packed Float4 into a vector.
func LoadFloat4(src *Float4) Vector4 {
	return Vector4{X: src.X, Y: src.Y, Z: src.Z, W: src.W}
}

// LoadFloat3 reads a packed Float3 into the [XYZ] lanes and zero-fills [W].
func LoadFloat3(src *Float3) Vector4 {
	return Vector4{X: src.X, Y: src.Y, Z: src.Z}
}

// LoadFloat2 reads a packed Float2 into the [XY] lanes and zero-fills [ZW].
func LoadFloat2(src *Float2) Vector4 {
	return Vector4{X: src.X, Y: src.Y}
}

// LoadFloat4F widens a packed Float4F into a vector.
func LoadFloat4F(src *Float4F) Vector4 {
	return Vector4{X: float64(src.X), Y: float64(src.Y), Z: float64(src.Z), W: float64(src.W)}
}

// LoadFloat3F widens a packed Float3F into the [XYZ] lanes and zero-fills [W].
func LoadFloat3F(src *Float3F) Vector4 {
	return Vector4{X: float64(src.X), Y: float64(src.Y), Z: float64(src.Z)}
}

// LoadFloat2F widens a packed Float2F into the [XY] lanes and zero-fills [ZW].
func LoadFloat2F(src *Float2F) Vector4 {
	return Vector4{X: float64(src.X), Y: float64(src.Y)}
}

// Store writes all 4 lanes to dst.
func Store(v Vector4, dst []float64) {
	_ = dst[3]
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
	dst[3] = v.W
}

// Store1 writes the [X] lane to dst. Lanes beyond it are not written.
func Store1(v Vector4, dst []float64) {
	dst[0] = v.X
}

// Store2 writes the [XY] lanes to dst. Lanes beyond them are not written.
func Store2(v Vector4, dst []float64) {
	_ = dst[1]
	dst[0] = v.X
	dst[1] = v.Y
}

// Store3 writes the [XYZ] lanes to dst. The [W] lane is not written.
func Store3(v Vector4, dst []float64) {
	_ = dst[2]
	dst[0] = v.X
	dst[1] = v.Y
	dst[2] = v.Z
}

// StoreFloat4 writes all 4 lanes to a packed Float4.
func StoreFloat4(v Vector4, dst *Float4) {
	dst.X = v.X
	dst.Y = v.Y
	dst.Z = v.Z
	dst.W = v.W
}

// StoreFloat3 writes the [XYZ] lanes to a packed Float3.
func StoreFloat3(v Vector4, dst *Float3) {
	dst.X = v.X
	dst.Y = v.Y
	dst.Z = v.Z
}

// StoreFloat2 writes the [XY] lanes to a packed Float2.
func StoreFloat2(v Vector4, dst *Float2) {
	dst.X = v.X
	dst.Y = v.Y
}

// StoreFloat4F narrows all 4 lanes into a packed Float4F.
func StoreFloat4F(v Vector4, dst *Float4F) {
	dst.X = float32(v.X)
	dst.Y = float32(v.Y)
	dst.Z = float32(v.Z)
	dst.W = float32(v.W)
}

// StoreFloat3F narrows the [XYZ] lanes into a packed Float3F.
func StoreFloat3F(v Vector4, dst *Float3F) {
	dst.X = float32(v.X)
	dst.Y = float32(v.Y)
	dst.Z = float32(v.Z)
}

// StoreFloat2F narrows the [XY] lanes into a packed Float2F.
func StoreFloat2F(v Vector4, dst *Float2F) {
	dst.X = float32(v.X)
	dst.Y = float32(v.Y)
}

// GetX returns the [X] lane.
func GetX(v Vector4) float64 {
	return v.X
}

// GetY returns the [Y] lane.
func GetY(v Vector4) float64 {
	return v.Y
}

// GetZ returns the [Z] lane.
func GetZ(v Vector4) float64 {
	return v.Z
}

// GetW returns the [W] lane.
func GetW(v Vector4) float64 {
	return v.W
}

// GetXScalar returns the [X] lane in the scalar register domain.
// Value-equivalent to GetX.
func GetXScalar(v Vector4) Scalar {
	return Scalar(v.X)
}

// GetYScalar returns the [Y] lane in the scalar register domain.
// Value-equivalent to GetY.
func GetYScalar(v Vector4) Scalar {
	return Scalar(v.Y)
}

// GetZScalar returns the [Z] lane in the scalar register domain.
// Value-equivalent to GetZ.
func GetZScalar(v Vector4) Scalar {
	return Scalar(v.Z)
}

// GetWScalar returns the [W] lane in the scalar register domain.
// Value-equivalent to GetW.
func GetWScalar(v Vector4) Scalar {
	return Scalar(v.W)
}

// GetComponent returns the lane selected by c. Selectors A..D fold back
// onto X..W, so GetComponent(v, ComponentA) == GetComponent(v, ComponentX).
// This is the runtime-selector form; with a selector known at the call
// site, GetX..GetW resolve without the lane dispatch.
func GetComponent(v Vector4, c Component) float64 {
	switch c.xyzw() {
	case ComponentX:
		return v.X
	case ComponentY:
		return v.Y
	case ComponentZ:
		return v.Z
	default:
		return v.W
	}
}

// GetComponentScalar returns the lane selected by c in the scalar register
// domain. Value-equivalent to GetComponent.
func GetComponentScalar(v Vector4, c Component) Scalar {
	return Scalar(GetComponent(v, c))
}

// SetX returns a copy of v with the [X] lane replaced. v is unchanged.
func SetX(v Vector4, lane float64) Vector4 {
	v.X = lane
	return v
}

// SetY returns a copy of v with the [Y] lane replaced. v is unchanged.
func SetY(v Vector4, lane float64) Vector4 {
	v.Y = lane
	return v
}

// SetZ returns a copy of v with the [Z] lane replaced. v is unchanged.
func SetZ(v Vector4, lane float64) Vector4 {
	v.Z = lane
	return v
}

// SetW returns a copy of v with the [W] lane replaced. v is unchanged.
func SetW(v Vector4, lane float64) Vector4 {
	v.W = lane
	return v
}

// GetMinComponent returns the smallest of the 4 lanes, reduced pairwise:
// min(min(x, y), min(z, w)).
func GetMinComponent(v Vector4) float64 {
	return scalarMin(scalarMin(v.X, v.Y), scalarMin(v.Z, v.W))
}

// GetMaxComponent returns the largest of the 4 lanes, reduced pairwise:
// max(max(x, y), max(z, w)).
func GetMaxComponent(v Vector4) float64 {
	return scalarMax(scalarMax(v.X, v.Y), scalarMax(v.Z, v.W))
}
