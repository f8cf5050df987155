package rtm

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q != (Quat{0.0, 0.0, 0.0, 1.0}) {
		t.Errorf("QuatIdentity = %v", q)
	}
	if QuatLength(q) != 1.0 {
		t.Errorf("identity length = %v", QuatLength(q))
	}
}

func TestQuatVectorCastLossless(t *testing.T) {
	v := Set(0.1, 0.2, 0.3, 0.4)

	q := VectorToQuat(v)
	back := QuatToVector(q)
	for i := range lanes(v) {
		if math.Float64bits(lanes(back)[i]) != math.Float64bits(lanes(v)[i]) {
			t.Errorf("cast round trip: lane %d changed bits", i)
		}
	}

	// The cast reinterprets, it does not convert: NaN payloads and signed
	// zeros survive untouched.
	payload := math.Float64frombits(0xFFF8_0000_0000_0042)
	v = Set(payload, math.Copysign(0.0, -1.0), math.Inf(-1), 1.0)
	back = QuatToVector(VectorToQuat(v))
	for i := range lanes(v) {
		if math.Float64bits(lanes(back)[i]) != math.Float64bits(lanes(v)[i]) {
			t.Errorf("cast round trip: edge lane %d changed bits", i)
		}
	}
}

func TestQuatLoadStore(t *testing.T) {
	buf := []float64{0.5, -0.5, 0.5, -0.5}

	q := QuatLoad(buf)
	if q != (Quat{0.5, -0.5, 0.5, -0.5}) {
		t.Errorf("QuatLoad = %v", q)
	}

	out := make([]float64, 4)
	QuatStore(q, out)
	for i := range buf {
		if out[i] != buf[i] {
			t.Errorf("QuatStore: index %d = %v, want %v", i, out[i], buf[i])
		}
	}
}

func TestQuatConjugateNeg(t *testing.T) {
	q := Quat{1.0, 2.0, 3.0, 4.0}

	if got := QuatConjugate(q); got != (Quat{-1.0, -2.0, -3.0, 4.0}) {
		t.Errorf("QuatConjugate = %v", got)
	}
	if got := QuatNeg(q); got != (Quat{-1.0, -2.0, -3.0, -4.0}) {
		t.Errorf("QuatNeg = %v", got)
	}
}

func TestQuatDotLength(t *testing.T) {
	q := Quat{1.0, 2.0, 3.0, 4.0}
	r := Quat{5.0, 6.0, 7.0, 8.0}

	if got := QuatDot(q, r); got != 70.0 {
		t.Errorf("QuatDot = %v, want 70", got)
	}
	if got := QuatLengthSquared(q); got != 30.0 {
		t.Errorf("QuatLengthSquared = %v, want 30", got)
	}
	if got := QuatLength(Quat{0.0, 3.0, 4.0, 0.0}); got != 5.0 {
		t.Errorf("QuatLength = %v, want 5", got)
	}
}

func TestQuatNormalize(t *testing.T) {
	q := QuatNormalize(Quat{1.0, 2.0, 3.0, 4.0})
	if err := math.Abs(QuatLength(q) - 1.0); err > 1e-12 {
		t.Errorf("QuatNormalize off unit length by %v", err)
	}
}

func TestQuatIsFinite(t *testing.T) {
	if !QuatIsFinite(QuatIdentity()) {
		t.Error("QuatIsFinite(identity)")
	}
	if QuatIsFinite(Quat{math.NaN(), 0.0, 0.0, 1.0}) {
		t.Error("QuatIsFinite with NaN lane")
	}
	if QuatIsFinite(Quat{0.0, 0.0, 0.0, math.Inf(1)}) {
		t.Error("QuatIsFinite with Inf lane")
	}
}
