package rtm

import (
	"math"
	"testing"
)

func TestComparisonMaskLanes(t *testing.T) {
	a := Set(1.0, 5.0, 3.0, 3.0)
	b := Set(2.0, 4.0, 3.0, 9.0)

	tests := []struct {
		name string
		mask Mask4
		want [4]bool
	}{
		{"Equal", Equal(a, b), [4]bool{false, false, true, false}},
		{"LessThan", LessThan(a, b), [4]bool{true, false, false, true}},
		{"LessEqual", LessEqual(a, b), [4]bool{true, false, true, true}},
		{"GreaterThan", GreaterThan(a, b), [4]bool{false, true, false, false}},
		{"GreaterEqual", GreaterEqual(a, b), [4]bool{false, true, true, false}},
	}
	for _, tt := range tests {
		for i, want := range tt.want {
			if tt.mask.Lane(i) != want {
				t.Errorf("%s: lane %d = %v, want %v", tt.name, i, tt.mask.Lane(i), want)
			}
		}
	}
}

func TestMaskLanesAreAllBits(t *testing.T) {
	m := LessThan(Broadcast(1.0), Broadcast(2.0))
	for i, lane := range [4]uint64{m.X, m.Y, m.Z, m.W} {
		if lane != ^uint64(0) {
			t.Errorf("true lane %d = %#x, want all bits set", i, lane)
		}
	}

	m = LessThan(Broadcast(2.0), Broadcast(1.0))
	for i, lane := range [4]uint64{m.X, m.Y, m.Z, m.W} {
		if lane != 0 {
			t.Errorf("false lane %d = %#x, want 0", i, lane)
		}
	}
}

func TestMaskReductions(t *testing.T) {
	m := NewMask(true, true, true, false)

	if m.AllTrue() {
		t.Error("AllTrue with a false w lane")
	}
	if !m.AllTrue3() || !m.AllTrue2() {
		t.Error("AllTrue3/AllTrue2 should ignore the w lane")
	}
	if !m.AnyTrue() {
		t.Error("AnyTrue with three true lanes")
	}

	m = NewMask(false, false, false, true)
	if !m.AnyTrue() || m.AnyTrue3() || m.AnyTrue2() {
		t.Errorf("w-only mask: AnyTrue=%v AnyTrue3=%v AnyTrue2=%v", m.AnyTrue(), m.AnyTrue3(), m.AnyTrue2())
	}
}

func TestAllAnyReductionWidths(t *testing.T) {
	// Relation holds on [XY], fails on Z, holds on W.
	a := Set(1.0, 1.0, 5.0, 1.0)
	b := Set(2.0, 2.0, 2.0, 2.0)

	if AllLessThan(a, b) {
		t.Error("AllLessThan should fail on the z lane")
	}
	if AllLessThan3(a, b) {
		t.Error("AllLessThan3 should fail on the z lane")
	}
	if !AllLessThan2(a, b) {
		t.Error("AllLessThan2 should ignore the z lane")
	}
	if !AnyLessThan(a, b) || !AnyLessThan3(a, b) || !AnyLessThan2(a, b) {
		t.Error("AnyLessThan variants should all hold")
	}

	// Relation holds only on W.
	a = Set(5.0, 5.0, 5.0, 1.0)
	if !AnyLessThan(a, b) {
		t.Error("AnyLessThan should see the w lane")
	}
	if AnyLessThan3(a, b) || AnyLessThan2(a, b) {
		t.Error("narrow AnyLessThan variants must not read the w lane")
	}

	if !AllGreaterEqual3(Set(2.0, 3.0, 4.0, -9.0), b) {
		t.Error("AllGreaterEqual3 should ignore the w lane")
	}
	if !AnyGreaterThan2(Set(3.0, 0.0, 0.0, 0.0), b) {
		t.Error("AnyGreaterThan2 should see the x lane")
	}
	if !AllEqual2(Set(2.0, 2.0, 0.0, 0.0), b) {
		t.Error("AllEqual2 should ignore the zw lanes")
	}
	if AnyEqual3(Set(0.0, 0.0, 0.0, 2.0), b) {
		t.Error("AnyEqual3 must not read the w lane")
	}
	if !AllLessEqual(Set(2.0, 2.0, 2.0, 2.0), b) {
		t.Error("AllLessEqual should hold on equal inputs")
	}
}

func TestNearEqual(t *testing.T) {
	a := Set(1.0, 2.0, 3.0, 4.0)
	b := Set(1.000001, 2.000001, 3.000001, 4.000001)

	if !AllNearEqual(a, b, DefaultNearEqualThreshold) {
		t.Error("AllNearEqual within default threshold")
	}
	if AllNearEqual(a, b, 1e-9) {
		t.Error("AllNearEqual with tightened threshold")
	}

	c := Set(1.0, 2.0, 3.0, 100.0)
	if AllNearEqual(a, c, DefaultNearEqualThreshold) {
		t.Error("AllNearEqual should fail on the w lane")
	}
	if !AllNearEqual3(a, c, DefaultNearEqualThreshold) {
		t.Error("AllNearEqual3 should ignore the w lane")
	}
	if !AnyNearEqual(a, c, DefaultNearEqualThreshold) {
		t.Error("AnyNearEqual should see the matching lanes")
	}

	d := Set(10.0, 20.0, 2.9999999, 40.0)
	if !AnyNearEqual3(a, d, DefaultNearEqualThreshold) {
		t.Error("AnyNearEqual3 should see the z lane")
	}
	if AnyNearEqual2(a, d, DefaultNearEqualThreshold) {
		t.Error("AnyNearEqual2 must not read the z lane")
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(Set(1.0, 2.0, 3.0, 4.0)) {
		t.Error("IsFinite on finite input")
	}
	if IsFinite(Set(math.NaN(), 0.0, 0.0, 0.0)) {
		t.Error("IsFinite with NaN lane")
	}
	if IsFinite(Set(math.Inf(1), 0.0, 0.0, 0.0)) {
		t.Error("IsFinite with +Inf lane")
	}
	if IsFinite(Set(0.0, 0.0, 0.0, math.Inf(-1))) {
		t.Error("IsFinite with -Inf lane")
	}

	// Narrow variants ignore the trailing lanes.
	v := Set(1.0, 2.0, math.NaN(), math.Inf(1))
	if !IsFinite2(v) {
		t.Error("IsFinite2 must not read the zw lanes")
	}
	if IsFinite3(v) {
		t.Error("IsFinite3 should see the NaN z lane")
	}
}

func TestSelect(t *testing.T) {
	a := Set(1.0, 2.0, 3.0, 4.0)
	b := Set(-1.0, -2.0, -3.0, -4.0)

	if got := Select(NewMask(true, true, true, true), a, b); got != a {
		t.Errorf("Select(all true) = %v, want %v", got, a)
	}
	if got := Select(NewMask(false, false, false, false), a, b); got != b {
		t.Errorf("Select(all false) = %v, want %v", got, b)
	}

	got := Select(NewMask(true, false, true, false), a, b)
	if got != Set(1.0, -2.0, 3.0, -4.0) {
		t.Errorf("Select(mixed) = %v", got)
	}
}

func TestSelectPreservesPayloadBits(t *testing.T) {
	// Selection is a bitwise blend: arbitrary payloads, including NaN bit
	// patterns, must pass through untouched.
	payload := math.Float64frombits(0x7FF8_0000_0000_0123)
	a := Broadcast(payload)
	b := Broadcast(math.Float64frombits(0xFFF8_0000_0000_0456))

	got := Select(NewMask(true, false, true, false), a, b)
	if math.Float64bits(got.X) != 0x7FF8_0000_0000_0123 {
		t.Errorf("true lane payload = %#x", math.Float64bits(got.X))
	}
	if math.Float64bits(got.Y) != 0xFFF8_0000_0000_0456 {
		t.Errorf("false lane payload = %#x", math.Float64bits(got.Y))
	}
}

func TestSelectFromComparison(t *testing.T) {
	v := Set(-1.0, 2.0, -3.0, 4.0)
	mask := GreaterEqual(v, Zero())

	got := Select(mask, Broadcast(1.0), Broadcast(-1.0))
	if got != Set(-1.0, 1.0, -1.0, 1.0) {
		t.Errorf("Select from comparison = %v", got)
	}
}
