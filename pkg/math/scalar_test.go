package math

import (
	"math"
	"testing"
)

// rangePairs are the domain/range pairs the lion and fan use.
var rangePairs = []struct {
	name                         string
	inMin, inMax, outMin, outMax float32
}{
	{"head rot look", -200, 200, -Pi / 4, Pi / 4},
	{"head rot cool", -200, 200, Pi / 4, -Pi / 4},
	{"head pos x", -200, 200, 70, -70},
	{"head pos y", -140, 260, 20, 100},
	{"iris pos y", -200, 200, 35, 15},
	{"smile rot", -200, 200, -Pi - .3, -Pi + .3},
	{"knee", -200, 200, .3 - Pi/8, .3 + Pi/8},
	{"fan x", -200, 200, -250, 250},
	{"fan y", -200, 200, 250, -250},
}

func TestMapRangeEndpoints(t *testing.T) {
	for _, p := range rangePairs {
		t.Run(p.name, func(t *testing.T) {
			if got := MapRange(p.inMin, p.inMin, p.inMax, p.outMin, p.outMax); got != p.outMin {
				t.Errorf("MapRange(inMin) = %v, want %v", got, p.outMin)
			}
			if got := MapRange(p.inMax, p.inMin, p.inMax, p.outMin, p.outMax); abs(got-p.outMax) > 1e-5 {
				t.Errorf("MapRange(inMax) = %v, want %v", got, p.outMax)
			}
		})
	}
}

func TestMapRangeLinear(t *testing.T) {
	samples := [][2]float32{{-200, 200}, {-50, 120}, {0, 75}, {-300, 310}}
	for _, p := range rangePairs {
		for _, s := range samples {
			a, b := s[0], s[1]
			mid := MapRange((a+b)/2, p.inMin, p.inMax, p.outMin, p.outMax)
			avg := (MapRange(a, p.inMin, p.inMax, p.outMin, p.outMax) +
				MapRange(b, p.inMin, p.inMax, p.outMin, p.outMax)) / 2
			if abs(mid-avg) > 1e-3 {
				t.Errorf("%s: map((%v+%v)/2) = %v, average = %v", p.name, a, b, mid, avg)
			}
		}
	}
}

func TestMapRangeExtrapolates(t *testing.T) {
	got := MapRange(400, -200, 200, -250, 250)
	if got != 500 {
		t.Errorf("MapRange(400) = %v, want 500 (unclamped)", got)
	}
}

func TestApproachConverges(t *testing.T) {
	for _, rate := range []float32{1, 1.5, 10, 20} {
		current, target := float32(-37), float32(112)
		prevErr := abs(target - current)
		for i := 0; i < 2000; i++ {
			current = Approach(current, target, rate)
			e := abs(target - current)
			if e > prevErr {
				t.Fatalf("rate %v step %d: error grew from %v to %v", rate, i, prevErr, e)
			}
			if current > target {
				t.Fatalf("rate %v step %d: overshoot to %v", rate, i, current)
			}
			prevErr = e
		}
		if prevErr > 1e-3 {
			t.Errorf("rate %v: did not converge, error %v", rate, prevErr)
		}
	}
}

func TestApproachStep(t *testing.T) {
	if got := Approach(0, 100, 10); got != 10 {
		t.Errorf("Approach(0, 100, 10) = %v, want 10", got)
	}
	if got := Approach(1, 0.1, 20); abs(got-0.955) > 1e-6 {
		t.Errorf("Approach(1, 0.1, 20) = %v, want 0.955", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, want float32 }{
		{-1, 0}, {0.25, 0.25}, {0.75, 0.5},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 0.5); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(1) {
		t.Error("1 should be finite")
	}
	if IsFinite(float32(math.Inf(1))) || IsFinite(float32(math.NaN())) {
		t.Error("Inf and NaN should not be finite")
	}
}
