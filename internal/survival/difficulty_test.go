package survival

import (
	"math"
	"testing"
)

func TestSteppedCurve(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{-5, 1},
		{0, 1},
		{9.99, 1},
		{10, 1 + 10.0/30},
		{29.5, 1 + 20.0/30},
		{30, 2},
		{300, 11},
	}
	for _, tt := range tests {
		if got := Stepped(tt.seconds); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Stepped(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestContinuousCurve(t *testing.T) {
	tests := []struct {
		seconds float64
		want    float64
	}{
		{-1, 1},
		{0, 1},
		{15, 1.5},
		{30, 2},
		{300, 11},
	}
	for _, tt := range tests {
		if got := Continuous(tt.seconds); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Continuous(%v) = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestCurvesAreMonotonicAndAtLeastOne(t *testing.T) {
	for name, curve := range map[string]Curve{"stepped": Stepped, "continuous": Continuous} {
		prev := curve(0)
		for s := 0.0; s <= 400; s += 0.25 {
			got := curve(s)
			if got < 1 {
				t.Fatalf("%s(%v) = %v, want >= 1", name, s, got)
			}
			if got < prev {
				t.Fatalf("%s decreased at %v: %v -> %v", name, s, prev, got)
			}
			prev = got
		}
	}
}

func TestCurveByName(t *testing.T) {
	for _, name := range []string{"", "stepped", "continuous"} {
		curve, err := CurveByName(name)
		if err != nil {
			t.Fatalf("CurveByName(%q) error: %v", name, err)
		}
		if curve == nil {
			t.Fatalf("CurveByName(%q) returned nil curve", name)
		}
	}

	c, _ := CurveByName("continuous")
	if got := c(15); got != 1.5 {
		t.Errorf("continuous curve at 15s = %v, want 1.5", got)
	}

	if _, err := CurveByName("exponential"); err == nil {
		t.Error("expected error for unknown curve")
	}
}
