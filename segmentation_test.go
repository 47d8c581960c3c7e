package glic

import "testing"

func TestMakeSegmentationReadSegmentationRoundTrip(t *testing.T) {
	p := NewPlanes(16, 16, RGB, NewRefColorRGB(0, 0, 0))
	for x := 0; x < 16; x++ {
		for y := 0; y < 16; y++ {
			v := 0
			if x >= 8 && y >= 8 {
				v = 200
			}
			p.Set(0, x, y, v)
		}
	}

	w := NewBitWriter()
	segs := MakeSegmentation(w, p, 0, 2, 256, 15.0)
	w.Align()

	r := NewBitReader(w.Bytes())
	got := ReadSegmentation(r, p.PaddedWidth(), p.PaddedHeight(), p.Width(), p.Height())

	if len(got) != len(segs) {
		t.Fatalf("got %d segments, want %d", len(got), len(segs))
	}
	for i, s := range segs {
		if got[i].X != s.X || got[i].Y != s.Y || got[i].Size != s.Size {
			t.Errorf("segment %d: got (%d,%d,%d), want (%d,%d,%d)", i, got[i].X, got[i].Y, got[i].Size, s.X, s.Y, s.Size)
		}
	}
}

func TestMakeSegmentationLeavesCoverTheWholeImage(t *testing.T) {
	p := NewPlanes(8, 8, RGB, NewRefColorRGB(0, 0, 0))
	w := NewBitWriter()
	segs := MakeSegmentation(w, p, 0, 1, 256, 15.0)

	covered := make([][]bool, 8)
	for i := range covered {
		covered[i] = make([]bool, 8)
	}
	for _, s := range segs {
		for x := 0; x < s.Size && s.X+x < 8; x++ {
			for y := 0; y < s.Size && s.Y+y < 8; y++ {
				if covered[s.X+x][s.Y+y] {
					t.Fatalf("pixel (%d,%d) covered by more than one segment", s.X+x, s.Y+y)
				}
				covered[s.X+x][s.Y+y] = true
			}
		}
	}
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if !covered[x][y] {
				t.Fatalf("pixel (%d,%d) not covered by any segment", x, y)
			}
		}
	}
}

func TestNewSegmentDefaults(t *testing.T) {
	s := newSegment(3, 4, 8)
	if s.PredType != NONE {
		t.Errorf("PredType = %v, want NONE", s.PredType)
	}
	if s.RefX != unsearchedRef || s.RefY != unsearchedRef {
		t.Errorf("RefX/RefY = %d/%d, want sentinel %d", s.RefX, s.RefY, unsearchedRef)
	}
}
