package glic

import (
	"math"
	"math/rand"
)

// Segment is a single leaf of the quad-tree: the unit of prediction,
// transform, and entropy coding. RefX/RefY use MaxInt16 as the "not yet
// searched" sentinel for the REF predictor.
type Segment struct {
	X, Y      int
	Size      int
	PredType  PredictionMethod
	Angle     float64
	RefAngle  int
	RefX      int
	RefY      int
}

const unsearchedRef = 1<<15 - 1 // int16 max, the "not yet searched" sentinel

func newSegment(x, y, size int) *Segment {
	return &Segment{
		X: x, Y: y, Size: size,
		PredType: NONE,
		Angle:    -1.0,
		RefAngle: -1,
		RefX:     unsearchedRef,
		RefY:     unsearchedRef,
	}
}

// newStdevRNG returns the PRNG for the segmentation standard deviation
// sampler, seeded with the documented constant 42. MakeSegmentation
// creates a fresh one on every call, so identical inputs always produce
// identical trees, however many times it has run before.
func newStdevRNG() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

// calcStdDev estimates the standard deviation of channel ch over a random
// sample of pixels drawn from the size x size region at (x,y), using a
// Welford running estimator. The sample count is max(floor(0.1*size^2), 4).
func calcStdDev(p *Planes, ch, x, y, size int, rng *rand.Rand) float64 {
	limit := int(0.1 * float64(size) * float64(size))
	if limit < 4 {
		limit = 4
	}

	a, q := 0.0, 0.0
	for k := 1; k <= limit; k++ {
		posx := rng.Intn(size)
		posy := rng.Intn(size)
		xk := float64(p.Get(ch, x+posx, y+posy))
		oldA := a
		a += (xk - a) / float64(k)
		q += (xk - oldA) * (xk - a)
	}
	if limit <= 1 {
		return 0
	}
	return math.Sqrt(q / float64(limit-1))
}

// MakeSegmentation runs the encoder's quad-tree decomposition over channel
// ch, writing one split/leaf bit per visited node to w, and returns the
// flat leaf list in traversal order (TL, TR, BL, BR).
func MakeSegmentation(w *BitWriter, p *Planes, ch, minBlockSize, maxBlockSize int, precision float64) []*Segment {
	if minBlockSize < 1 {
		minBlockSize = 1
	}
	if maxBlockSize > 512 {
		maxBlockSize = 512
	}
	startSize := p.PaddedWidth()
	if p.PaddedHeight() > startSize {
		startSize = p.PaddedHeight()
	}
	rng := newStdevRNG()
	var segments []*Segment
	segmentRecursive(w, p, ch, 0, 0, startSize, minBlockSize, maxBlockSize, precision, rng, &segments)
	return segments
}

func segmentRecursive(w *BitWriter, p *Planes, ch, x, y, size, minSize, maxSize int, precision float64, rng *rand.Rand, out *[]*Segment) {
	if x >= p.Width() || y >= p.Height() {
		return
	}

	stdev := calcStdDev(p, ch, x, y, size, rng)
	split := size > maxSize || (size > minSize && stdev > precision)

	w.WriteBoolean(split)
	if !split {
		*out = append(*out, newSegment(x, y, size))
		return
	}

	mid := size / 2
	segmentRecursive(w, p, ch, x, y, mid, minSize, maxSize, precision, rng, out)
	segmentRecursive(w, p, ch, x+mid, y, mid, minSize, maxSize, precision, rng, out)
	segmentRecursive(w, p, ch, x, y+mid, mid, minSize, maxSize, precision, rng, out)
	segmentRecursive(w, p, ch, x+mid, y+mid, mid, minSize, maxSize, precision, rng, out)
}

// ReadSegmentation rebuilds the leaf list by reading split bits from r.
// The decoder's recursion cutoff is hardcoded to size > 2, NOT
// minBlockSize-aware, because minBlockSize/maxBlockSize are not part of
// the wire format; this mirrors the reference decoder exactly and is not
// a bug to "fix" here.
func ReadSegmentation(r *BitReader, ww, hh, width, height int) []*Segment {
	startSize := ww
	if hh > startSize {
		startSize = hh
	}
	var segments []*Segment
	readSegmentRecursive(r, 0, 0, startSize, width, height, &segments)
	return segments
}

func readSegmentRecursive(r *BitReader, x, y, size, width, height int, out *[]*Segment) {
	if x >= width || y >= height {
		return
	}

	decision, err := r.ReadBoolean()
	if err != nil {
		decision = false
	}

	if decision && size > 2 {
		mid := size / 2
		readSegmentRecursive(r, x, y, mid, width, height, out)
		readSegmentRecursive(r, x+mid, y, mid, width, height, out)
		readSegmentRecursive(r, x, y+mid, mid, width, height, out)
		readSegmentRecursive(r, x+mid, y+mid, mid, width, height, out)
		return
	}
	*out = append(*out, newSegment(x, y, size))
}
