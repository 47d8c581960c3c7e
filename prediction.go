package glic

import (
	"math"
	"math/rand"
)

// predRNG is the single shared PRNG for REF/ANGLE search and RANDOM
// selection, seeded with the documented constant 12345. One process-wide
// source matches the reference's single static generator; callers that
// need byte-identical output across runs must not call into prediction
// from multiple goroutines concurrently (see the concurrency notes).
var predRNG = rand.New(rand.NewSource(12345))

func getMedian(a, b, c int) int {
	return maxInt(minInt(a, b), minInt(maxInt(a, b), c))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampByteInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func getDC(p *Planes, ch int, s *Segment) int {
	v := 0
	for i := 0; i < s.Size; i++ {
		v += p.Get(ch, s.X-1, s.Y+i)
		v += p.Get(ch, s.X+i, s.Y-1)
	}
	v += p.Get(ch, s.X-1, s.Y-1)
	return v / (s.Size + s.Size + 1)
}

func getAngleRef(i, x, y int, a float64, w int) (xx, yy float64) {
	xx, yy = -1, -1
	switch i % 3 {
	case 0:
		v := float64(w-y-1) + float64(x)*a
		xx = (v - float64(w)) / a
		yy = float64(w) - 1 - a - v
	case 1:
		v := float64(w-x-1) + float64(y)*a
		yy = (v - float64(w)) / a
		xx = float64(w) - 1 - a - v
	case 2:
		v := float64(x) + float64(y)*a
		yy = -1.0
		xx = v + a
	}
	if xx > yy {
		return math.Round(xx), -1
	}
	return -1, math.Round(yy)
}

// GetSAD is the plain sum of absolute differences between pred and the
// segment's actual plane values.
func GetSAD(pred [][]int, p *Planes, ch int, s *Segment) int {
	sum := 0
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			sum += absInt(p.Get(ch, s.X+x, s.Y+y) - pred[x][y])
		}
	}
	return sum
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func newMatrix(size int) [][]int {
	m := make([][]int, size)
	for i := range m {
		m[i] = make([]int, size)
	}
	return m
}

// Predict dispatches to the named predictor and returns a size x size
// matrix of predicted channel values. REF, ANGLE, SAD, and BSAD mutate
// segment fields as a side effect (refX/refY, angle/refAngle, predType)
// — this is part of the wire contract, not an implementation detail to
// hide: the mutated fields are what gets serialized as prediction
// metadata. RANDOM recurses into one concretely chosen method and never
// selects RANDOM itself, since the sampled range excludes it.
func Predict(method PredictionMethod, p *Planes, ch int, s *Segment) [][]int {
	switch method {
	case CORNER:
		return predCorner(p, ch, s)
	case H:
		return predH(p, ch, s)
	case V:
		return predV(p, ch, s)
	case DC:
		return predDC(p, ch, s)
	case DCMEDIAN:
		return predDCMedian(p, ch, s)
	case MEDIAN:
		return predMedian(p, ch, s)
	case AVG:
		return predAvg(p, ch, s)
	case TRUEMOTION:
		return predTrueMotion(p, ch, s)
	case PAETH:
		return predPaeth(p, ch, s)
	case LDIAG:
		return predLDiag(p, ch, s)
	case HV:
		return predHV(p, ch, s)
	case JPEGLS:
		return predJpegLS(p, ch, s)
	case DIFF:
		return predDiff(p, ch, s)
	case REF:
		return predRef(p, ch, s)
	case ANGLE:
		return predAngle(p, ch, s)
	case SPIRAL:
		return predSpiral(p, ch, s)
	case NOISE:
		return predNoise(p, ch, s)
	case GRADIENT:
		return predGradient(p, ch, s)
	case MIRROR:
		return predMirror(p, ch, s)
	case WAVE:
		return predWave(p, ch, s)
	case CHECKERBOARD:
		return predCheckerboard(p, ch, s)
	case RADIAL:
		return predRadial(p, ch, s)
	case EDGE:
		return predEdge(p, ch, s)
	case RANDOM:
		m := PredictionMethod(predRNG.Intn(int(predictionCount)))
		return Predict(m, p, ch, s)
	case SAD:
		return predSAD(p, ch, s, true)
	case BSAD:
		return predSAD(p, ch, s, false)
	default:
		return newMatrix(s.Size)
	}
}

func predCorner(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	val := p.Get(ch, s.X-1, s.Y-1)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			res[x][y] = val
		}
	}
	return res
}

func predH(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			res[x][y] = p.Get(ch, s.X-1, s.Y+y)
		}
	}
	return res
}

func predV(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			res[x][y] = p.Get(ch, s.X+x, s.Y-1)
		}
	}
	return res
}

func predDC(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	c := getDC(p, ch, s)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			res[x][y] = c
		}
	}
	return res
}

func predDCMedian(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	c := getDC(p, ch, s)
	for x := 0; x < s.Size; x++ {
		v1 := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			v2 := p.Get(ch, s.X-1, s.Y+y)
			res[x][y] = getMedian(c, v1, v2)
		}
	}
	return res
}

func predMedian(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	c := p.Get(ch, s.X-1, s.Y-1)
	for x := 0; x < s.Size; x++ {
		v1 := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			v2 := p.Get(ch, s.X-1, s.Y+y)
			res[x][y] = getMedian(c, v1, v2)
		}
	}
	return res
}

func predAvg(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		v1 := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			v2 := p.Get(ch, s.X-1, s.Y+y)
			res[x][y] = (v1 + v2) >> 1
		}
	}
	return res
}

func predTrueMotion(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	c := p.Get(ch, s.X-1, s.Y-1)
	for x := 0; x < s.Size; x++ {
		v1 := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			v2 := p.Get(ch, s.X-1, s.Y+y)
			res[x][y] = clampByteInt(v1 + v2 - c)
		}
	}
	return res
}

func predPaeth(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	c := p.Get(ch, s.X-1, s.Y-1)
	for x := 0; x < s.Size; x++ {
		v1 := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			v2 := p.Get(ch, s.X-1, s.Y+y)
			pp := v1 + v2 - c
			pa := absInt(pp - v2)
			pb := absInt(pp - v1)
			pc := absInt(pp - c)
			var v int
			switch {
			case pa <= pb && pa <= pc:
				v = v2
			case pb <= pc:
				v = v1
			default:
				v = c
			}
			res[x][y] = clampByteInt(v)
		}
	}
	return res
}

func predLDiag(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			ss := x + y
			xi := s.Size - 1
			if ss+1 < s.Size {
				xi = ss + 1
			}
			yi := s.Size - 1
			if ss < s.Size {
				yi = ss
			}
			xx := p.Get(ch, s.X+xi, s.Y-1)
			yy := p.Get(ch, s.X-1, s.Y+yi)
			res[x][y] = ((x+1)*xx + (y+1)*yy) / (x + y + 2)
		}
	}
	return res
}

func predHV(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			var c int
			switch {
			case x > y:
				c = p.Get(ch, s.X+x, s.Y-1)
			case y > x:
				c = p.Get(ch, s.X-1, s.Y+y)
			default:
				c = (p.Get(ch, s.X+x, s.Y-1) + p.Get(ch, s.X-1, s.Y+y)) >> 1
			}
			res[x][y] = c
		}
	}
	return res
}

func predJpegLS(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		c := p.Get(ch, s.X+x-1, s.Y-1)
		a := p.Get(ch, s.X+x, s.Y-1)
		for y := 0; y < s.Size; y++ {
			b := p.Get(ch, s.X-1, s.Y+y)
			var v int
			switch {
			case c >= maxInt(a, b):
				v = minInt(a, b)
			case c <= minInt(a, b):
				v = maxInt(a, b)
			default:
				v = a + b - c
			}
			res[x][y] = v
		}
	}
	return res
}

func predDiff(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		x1 := p.Get(ch, s.X+x, s.Y-1)
		x2 := p.Get(ch, s.X+x, s.Y-2)
		for y := 0; y < s.Size; y++ {
			y1 := p.Get(ch, s.X-1, s.Y+y)
			y2 := p.Get(ch, s.X-2, s.Y+y)
			res[x][y] = clampByteInt((y2 + y2 - y1 + x2 + x2 - x1) >> 1)
		}
	}
	return res
}

func predRef(p *Planes, ch int, s *Segment) [][]int {
	s.PredType = REF

	if s.RefX != unsearchedRef && s.RefY != unsearchedRef {
		res := newMatrix(s.Size)
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				res[x][y] = p.Get(ch, s.RefX+x, s.RefY+y)
			}
		}
		return res
	}

	currSad := math.MaxInt32
	var currRes [][]int
	for i := 0; i < 45; i++ {
		xx := randRange(predRNG, -s.Size, s.X-1)
		var yy int
		if xx < s.X-s.Size {
			yy = randRange(predRNG, -s.Size, s.Y-1)
		} else {
			yy = randRange(predRNG, -s.Size, s.Y-s.Size-1)
		}

		res := newMatrix(s.Size)
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				res[x][y] = p.Get(ch, xx+x, yy+y)
			}
		}

		sad := GetSAD(res, p, ch, s)
		if sad < currSad {
			currRes = res
			currSad = sad
			s.RefX = xx
			s.RefY = yy
		}
	}
	return currRes
}

// randRange samples uniformly from [lo, hi] inclusive, matching the
// reference's std::uniform_int_distribution(lo, hi). hi may equal or be
// less than lo for degenerate tiny segments; rand.Intn panics on the
// non-positive width that hi < lo gives, so any hi <= lo returns lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func predAngle(p *Planes, ch int, s *Segment) [][]int {
	s.PredType = ANGLE

	if s.Angle >= 0 && s.RefAngle >= 0 {
		res := newMatrix(s.Size)
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				axf, ayf := getAngleRef(s.RefAngle, x, y, s.Angle, s.Size)
				xx := int(axf)
				if axf >= float64(s.Size) {
					xx = s.Size - 1
				}
				res[x][y] = p.Get(ch, xx+s.X, int(ayf)+s.Y)
			}
		}
		return res
	}

	stepA := 1.0 / float64(minInt(16, s.Size))
	var currRes [][]int
	currSad := math.MaxInt32

	for i := 0; i < 3; i++ {
		for a := 0.0; a < 1.0; a += stepA {
			aa := float64(int(a*0x8000)) / float64(0x8000)
			res := newMatrix(s.Size)
			for x := 0; x < s.Size; x++ {
				for y := 0; y < s.Size; y++ {
					axf, ayf := getAngleRef(i, x, y, aa, s.Size)
					xx := int(axf)
					if axf >= float64(s.Size) {
						xx = s.Size - 1
					}
					res[x][y] = p.Get(ch, xx+s.X, int(ayf)+s.Y)
				}
			}

			sad := GetSAD(res, p, ch, s)
			if sad < currSad {
				currRes = res
				currSad = sad
				s.Angle = a
				s.RefAngle = i
			}
		}
	}
	return currRes
}

func predSAD(p *Planes, ch int, s *Segment, doSad bool) [][]int {
	currSad := math.MaxInt32
	if !doSad {
		currSad = math.MinInt32
	}
	currType := NONE
	var currRes [][]int

	for i := 0; i < int(predictionCount); i++ {
		method := PredictionMethod(i)
		res := Predict(method, p, ch, s)
		sad := GetSAD(res, p, ch, s)

		if (doSad && sad < currSad) || (!doSad && sad > currSad) {
			currSad = sad
			currType = method
			currRes = res
		}
	}

	s.PredType = currType
	return currRes
}

func predSpiral(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	cx, cy := s.Size/2, s.Size/2

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			dx, dy := x-cx, y-cy
			layer := maxInt(absInt(dx), absInt(dy))

			if layer == 0 {
				res[x][y] = p.Get(ch, s.X-1, s.Y-1)
				continue
			}
			angle := math.Atan2(float64(dy), float64(dx))
			norm := (angle + math.Pi) / (2.0 * math.Pi)
			boundaryLen := s.Size * 2
			idx := int(norm*float64(boundaryLen)) % boundaryLen

			if idx < s.Size {
				res[x][y] = p.Get(ch, s.X+idx, s.Y-1)
			} else {
				res[x][y] = p.Get(ch, s.X-1, s.Y+(idx-s.Size))
			}
		}
	}
	return res
}

func predNoise(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	base := p.Get(ch, s.X-1, s.Y-1)

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			hash := uint32(s.X+x)*73856093 ^ uint32(s.Y+y)*19349663
			hash = ((hash >> 16) ^ hash) * 0x45d9f3b
			hash = ((hash >> 16) ^ hash) * 0x45d9f3b
			hash = (hash >> 16) ^ hash

			noise := int(int32(hash&0xFF)-128) / 4
			res[x][y] = clampByteInt(base + noise)
		}
	}
	return res
}

func predGradient(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)

	tl := p.Get(ch, s.X-1, s.Y-1)
	tr := p.Get(ch, s.X+s.Size-1, s.Y-1)
	bl := p.Get(ch, s.X-1, s.Y+s.Size-1)
	br := (tr + bl) / 2

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			fx, fy := 0.0, 0.0
			if s.Size > 1 {
				fx = float64(x) / float64(s.Size-1)
				fy = float64(y) / float64(s.Size-1)
			}
			top := float64(tl) + float64(tr-tl)*fx
			bot := float64(bl) + float64(br-bl)*fx
			res[x][y] = int(top + (bot-top)*fy)
		}
	}
	return res
}

func predMirror(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			mirrorY := s.Size - 1 - y
			res[x][y] = p.Get(ch, s.X-1, s.Y+mirrorY)
		}
	}
	return res
}

func predWave(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	freq := math.Pi * 2.0 / float64(s.Size)

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			wave := math.Sin(float64(x)*freq) + math.Sin(float64(y)*freq)
			offset := int(wave * 16)

			base := (p.Get(ch, s.X+x, s.Y-1) + p.Get(ch, s.X-1, s.Y+y)) / 2
			res[x][y] = clampByteInt(base + offset)
		}
	}
	return res
}

func predCheckerboard(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			if (x+y)%2 == 0 {
				res[x][y] = p.Get(ch, s.X+x, s.Y-1)
			} else {
				res[x][y] = p.Get(ch, s.X-1, s.Y+y)
			}
		}
	}
	return res
}

func predRadial(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)

	cx, cy := s.Size/2, s.Size/2
	maxDist := math.Sqrt(float64(cx*cx + cy*cy))
	if maxDist < 1.0 {
		maxDist = 1.0
	}

	center := p.Get(ch, s.X-1, s.Y-1)
	edge := (p.Get(ch, s.X+s.Size-1, s.Y-1) + p.Get(ch, s.X-1, s.Y+s.Size-1)) / 2

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			dist := math.Sqrt(float64((x-cx)*(x-cx) + (y-cy)*(y-cy)))
			t := dist / maxDist
			res[x][y] = int(float64(center) + float64(edge-center)*t)
		}
	}
	return res
}

func predEdge(p *Planes, ch int, s *Segment) [][]int {
	res := newMatrix(s.Size)

	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			gx := p.Get(ch, s.X+x, s.Y-1) - p.Get(ch, s.X-1, s.Y+y)
			gy := p.Get(ch, s.X+x, s.Y-1) - p.Get(ch, s.X-1, s.Y-1)

			base := (p.Get(ch, s.X+x, s.Y-1) + p.Get(ch, s.X-1, s.Y+y)) / 2
			edge := absInt(gx) + absInt(gy)

			res[x][y] = clampByteInt(base + edge/8)
		}
	}
	return res
}
