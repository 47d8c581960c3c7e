package glic

import "testing"

func predictionTestPlanes() (*Planes, *Segment) {
	p := NewPlanes(8, 8, RGB, NewRefColorRGB(42, 42, 42))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p.Set(0, x, y, (x+1)*10+y)
		}
	}
	seg := &Segment{X: 2, Y: 2, Size: 4, PredType: NONE, Angle: -1, RefAngle: -1, RefX: unsearchedRef, RefY: unsearchedRef}
	return p, seg
}

func TestPredictNoneIsZeroMatrix(t *testing.T) {
	p, seg := predictionTestPlanes()
	pred := Predict(NONE, p, 0, seg)
	for x := 0; x < seg.Size; x++ {
		for y := 0; y < seg.Size; y++ {
			if pred[x][y] != 0 {
				t.Fatalf("NONE predictor should be all zero, got %d at (%d,%d)", pred[x][y], x, y)
			}
		}
	}
}

func TestPredictCornerUsesTopLeftNeighbor(t *testing.T) {
	p, seg := predictionTestPlanes()
	pred := predCorner(p, 0, seg)
	want := p.Get(0, seg.X-1, seg.Y-1)
	for x := 0; x < seg.Size; x++ {
		for y := 0; y < seg.Size; y++ {
			if pred[x][y] != want {
				t.Fatalf("predCorner at (%d,%d) = %d, want %d", x, y, pred[x][y], want)
			}
		}
	}
}

func TestPredictAllConcreteMethodsProduceSizedMatrix(t *testing.T) {
	p, seg := predictionTestPlanes()
	for m := NONE; m < predictionCount; m++ {
		pred := Predict(m, p, 0, seg)
		if len(pred) != seg.Size {
			t.Fatalf("method %v: got %d rows, want %d", m, len(pred), seg.Size)
		}
		for _, row := range pred {
			if len(row) != seg.Size {
				t.Fatalf("method %v: got %d cols, want %d", m, len(row), seg.Size)
			}
		}
	}
}

func TestPredictSADResolvesToConcreteMethod(t *testing.T) {
	p, seg := predictionTestPlanes()
	_ = Predict(SAD, p, 0, seg)
	if seg.PredType < NONE || seg.PredType >= predictionCount {
		t.Fatalf("SAD predictor left PredType at %v, want a concrete method", seg.PredType)
	}
}

func TestGetDCAveragesNeighbors(t *testing.T) {
	p, seg := predictionTestPlanes()
	dc := getDC(p, 0, seg)
	if dc <= 0 {
		t.Fatalf("getDC should be positive for this fixture, got %d", dc)
	}
}
