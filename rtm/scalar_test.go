package rtm

import (
	"math"
	"testing"
)

func TestScalarFloat64RoundTrip(t *testing.T) {
	s := Scalar(3.25)
	if s.Float64() != 3.25 {
		t.Errorf("Float64() = %v", s.Float64())
	}
	if Scalar(s.Float64()) != s {
		t.Error("Scalar/float64 conversion is not value-preserving")
	}
}

func TestScalarMinMaxClamp(t *testing.T) {
	if got := ScalarMin(1.0, 2.0); got != 1.0 {
		t.Errorf("ScalarMin = %v", got)
	}
	if got := ScalarMax(1.0, 2.0); got != 2.0 {
		t.Errorf("ScalarMax = %v", got)
	}
	if got := ScalarClamp(5.0, -1.0, 1.0); got != 1.0 {
		t.Errorf("ScalarClamp high = %v", got)
	}
	if got := ScalarClamp(-5.0, -1.0, 1.0); got != -1.0 {
		t.Errorf("ScalarClamp low = %v", got)
	}
	if got := ScalarClamp(0.5, -1.0, 1.0); got != 0.5 {
		t.Errorf("ScalarClamp inside = %v", got)
	}

	// The rhs-wins NaN convention matches the vector Min/Max.
	nan := Scalar(math.NaN())
	if got := ScalarMin(nan, 1.0); got != 1.0 {
		t.Errorf("ScalarMin(NaN, 1) = %v", got)
	}
	if got := ScalarMax(1.0, nan); !math.IsNaN(float64(got)) {
		t.Errorf("ScalarMax(1, NaN) = %v", got)
	}
}

func TestScalarSqrtReciprocal(t *testing.T) {
	if got := ScalarSqrtReciprocal(25.0); got != 0.2 {
		t.Errorf("ScalarSqrtReciprocal(25) = %v, want 0.2", got)
	}
	if got := ScalarSqrt(16.0); got != 4.0 {
		t.Errorf("ScalarSqrt(16) = %v", got)
	}
	if got := ScalarReciprocal(4.0); got != 0.25 {
		t.Errorf("ScalarReciprocal(4) = %v", got)
	}
}

func TestScalarRounding(t *testing.T) {
	if got := ScalarRoundSymmetric(1.5); got != 2.0 {
		t.Errorf("ScalarRoundSymmetric(1.5) = %v", got)
	}
	if got := ScalarRoundSymmetric(-1.5); got != -2.0 {
		t.Errorf("ScalarRoundSymmetric(-1.5) = %v", got)
	}
	if got := ScalarRoundBankers(2.5); got != 2.0 {
		t.Errorf("ScalarRoundBankers(2.5) = %v", got)
	}
	if got := ScalarRoundBankers(1.5); got != 2.0 {
		t.Errorf("ScalarRoundBankers(1.5) = %v", got)
	}
	if got := ScalarCeil(1.2); got != 2.0 {
		t.Errorf("ScalarCeil(1.2) = %v", got)
	}
	if got := ScalarFloor(-1.2); got != -2.0 {
		t.Errorf("ScalarFloor(-1.2) = %v", got)
	}
	if got := ScalarFraction(-1.25); got != -0.25 {
		t.Errorf("ScalarFraction(-1.25) = %v", got)
	}
}

func TestScalarLerpEndpoints(t *testing.T) {
	start, end := Scalar(1.25), Scalar(-3.5)

	if got := ScalarLerp(start, end, 0.0); got != start {
		t.Errorf("ScalarLerp at 0 = %v, want %v", got, start)
	}
	if got := ScalarLerp(start, end, 1.0); got != end {
		t.Errorf("ScalarLerp at 1 = %v, want %v", got, end)
	}
	if got := ScalarLerp(0.0, 10.0, 0.5); got != 5.0 {
		t.Errorf("ScalarLerp midpoint = %v", got)
	}
}

func TestScalarSignAndCopySign(t *testing.T) {
	if got := ScalarSign(3.0); got != 1.0 {
		t.Errorf("ScalarSign(3) = %v", got)
	}
	if got := ScalarSign(-3.0); got != -1.0 {
		t.Errorf("ScalarSign(-3) = %v", got)
	}
	if got := ScalarSign(Scalar(math.Copysign(0.0, -1.0))); got != 1.0 {
		t.Errorf("ScalarSign(-0.0) = %v, want +1 (>= comparison)", got)
	}
	if got := ScalarCopySign(3.0, -1.0); got != -3.0 {
		t.Errorf("ScalarCopySign = %v", got)
	}
}

func TestScalarFMA(t *testing.T) {
	if got := ScalarMulAdd(2.0, 3.0, 4.0); got != 10.0 {
		t.Errorf("ScalarMulAdd = %v", got)
	}
	if got := ScalarNegMulSub(2.0, 3.0, 4.0); got != -2.0 {
		t.Errorf("ScalarNegMulSub = %v", got)
	}
}

func TestScalarTrig(t *testing.T) {
	if got := ScalarSin(0.0); got != 0.0 {
		t.Errorf("ScalarSin(0) = %v", got)
	}
	if got := ScalarCos(0.0); got != 1.0 {
		t.Errorf("ScalarCos(0) = %v", got)
	}
	if got := ScalarTan(Scalar(math.Pi / 4)); math.Abs(float64(got)-1.0) > 1e-15 {
		t.Errorf("ScalarTan(pi/4) = %v", got)
	}
	if got := ScalarASin(1.0); float64(got) != math.Pi/2 {
		t.Errorf("ScalarASin(1) = %v", got)
	}
	if got := ScalarACos(1.0); got != 0.0 {
		t.Errorf("ScalarACos(1) = %v", got)
	}
	if got := ScalarATan2(1.0, 1.0); float64(got) != math.Pi/4 {
		t.Errorf("ScalarATan2(1, 1) = %v", got)
	}
}

func TestScalarIsFinite(t *testing.T) {
	if !ScalarIsFinite(1.0) {
		t.Error("ScalarIsFinite(1)")
	}
	if ScalarIsFinite(Scalar(math.NaN())) {
		t.Error("ScalarIsFinite(NaN)")
	}
	if ScalarIsFinite(Scalar(math.Inf(1))) {
		t.Error("ScalarIsFinite(+Inf)")
	}
}
