package glic

import "testing"

func TestPlanesGetOutOfRangeFallsBackToRef(t *testing.T) {
	p := NewPlanes(4, 4, RGB, NewRefColorRGB(9, 8, 7))
	if got := p.Get(0, -1, 0); got != 9 {
		t.Errorf("Get out of range = %d, want ref 9", got)
	}
	if got := p.Get(1, 4, 0); got != 8 {
		t.Errorf("Get out of range = %d, want ref 8", got)
	}
}

func TestPlanesSetOutOfRangeIsNoOp(t *testing.T) {
	p := NewPlanes(4, 4, RGB, NewRefColorRGB(0, 0, 0))
	p.Set(0, 10, 10, 99) // should not panic or affect in-range reads
	if got := p.Get(0, 0, 0); got != 0 {
		t.Errorf("unexpected mutation, got %d", got)
	}
}

func TestPlanesSubtractAddInverse(t *testing.T) {
	p := NewPlanes(4, 4, RGB, NewRefColorRGB(0, 0, 0))
	seg := &Segment{X: 0, Y: 0, Size: 2}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			p.Set(0, x, y, 50+x*10+y)
		}
	}
	pred := [][]int{{5, 6}, {7, 8}}

	p.Subtract(0, seg, pred, ClampNone)
	p.Add(0, seg, pred, ClampNone)

	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			want := 50 + x*10 + y
			if got := p.Get(0, x, y); got != want {
				t.Errorf("at (%d,%d) got %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 5: 8, 16: 16, 17: 32}
	for in, want := range cases {
		if got := nextPow2(in); got != want {
			t.Errorf("nextPow2(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestPlanesToPixelsRoundTripsRGB(t *testing.T) {
	pixels := []Color{
		MakeColor(10, 20, 30),
		MakeColor(200, 100, 50),
		MakeColor(0, 0, 0),
		MakeColor(255, 255, 255),
	}
	ref := NewRefColor(MakeColor(128, 128, 128), RGB)
	p := NewPlanesFromPixels(pixels, 2, 2, RGB, ref)
	got := p.ToPixels(nil)

	for i, c := range pixels {
		if GetR(got[i]) != GetR(c) || GetG(got[i]) != GetG(c) || GetB(got[i]) != GetB(c) {
			t.Errorf("pixel %d: got %v, want %v", i, got[i], c)
		}
	}
}
