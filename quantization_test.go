package glic

import "testing"

func TestQuantValue(t *testing.T) {
	cases := map[int]float64{0: 0, 110: 55, 255: 127.5}
	for in, want := range cases {
		if got := QuantValue(in); got != want {
			t.Errorf("QuantValue(%d) = %v, want %v", in, got, want)
		}
	}
}

func TestTransCompressionValue(t *testing.T) {
	if got := TransCompressionValue(0); got != 0 {
		t.Errorf("TransCompressionValue(0) = %v, want 0", got)
	}
	if got := TransCompressionValue(255); got != 50 {
		t.Errorf("TransCompressionValue(255) = %v, want 50", got)
	}
}

func TestQuantizeNoOpBelowOne(t *testing.T) {
	p := NewPlanes(4, 4, RGB, NewRefColorRGB(0, 0, 0))
	p.Set(0, 0, 0, 42)
	seg := &Segment{X: 0, Y: 0, Size: 1}
	Quantize(p, 0, seg, 0.5, true)
	if got := p.Get(0, 0, 0); got != 42 {
		t.Fatalf("Quantize with val<=1 should be a no-op, got %d", got)
	}
}

func TestQuantizeForwardReverseApproximatelyInverts(t *testing.T) {
	p := NewPlanes(4, 4, RGB, NewRefColorRGB(0, 0, 0))
	seg := &Segment{X: 0, Y: 0, Size: 2}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			p.Set(0, x, y, 100+x*10+y)
		}
	}

	val := QuantValue(40)
	Quantize(p, 0, seg, val, true)
	Quantize(p, 0, seg, val, false)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			got := p.Get(0, x, y)
			want := 100 + x*10 + y
			if diff := got - want; diff < -int(val) || diff > int(val) {
				t.Errorf("at (%d,%d): got %d, want near %d", x, y, got, want)
			}
		}
	}
}
