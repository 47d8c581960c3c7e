package glic

import "math"

// RefColor is the per-channel fallback triple returned whenever a
// predictor reads outside the padded image bounds. Index order matches
// plane channel order (0,1,2); index 3 holds alpha for pixel round-trip.
type RefColor struct {
	C [4]int
}

// NewRefColorRGB builds a RefColor directly from 8-bit components.
func NewRefColorRGB(r, g, b int, a ...int) RefColor {
	alpha := 255
	if len(a) > 0 {
		alpha = a[0]
	}
	return RefColor{C: [4]int{r, g, b, alpha}}
}

// NewRefColorFromColor decomposes a packed Color into a RefColor.
func NewRefColorFromColor(c Color) RefColor {
	return RefColor{C: [4]int{int(GetR(c)), int(GetG(c)), int(GetB(c)), int(GetA(c))}}
}

// NewRefColor projects c into cs before decomposing it, matching the
// reference's RefColor(Color, ColorSpace) constructor.
func NewRefColor(c Color, cs ColorSpace) RefColor {
	return NewRefColorFromColor(ToColorSpace(c, cs))
}

// defaultRefColor is used when no explicit border is supplied: (128,128,128,255).
func defaultRefColor() RefColor {
	return RefColor{C: [4]int{128, 128, 128, 255}}
}

// clampIn applies the subtract-direction clamp policy.
func clampIn(m ClampMethod, x int) int {
	if m == ClampMod256 {
		if x < 0 {
			return x + 256
		}
		if x > 255 {
			return x - 256
		}
	}
	return x
}

// clampOut applies the add-direction clamp policy.
func clampOut(m ClampMethod, x int) int {
	if m == ClampMod256 {
		if x < 0 {
			return x + 256
		}
		if x > 255 {
			return x - 256
		}
		return x
	}
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// clamp applies the internal (transform-stage) clamp policy.
func clamp(m ClampMethod, x int) int {
	if m == ClampMod256 {
		if x < 0 {
			return 0
		}
		if x > 255 {
			return 255
		}
		return x
	}
	if x < -255 {
		return -255
	}
	if x > 255 {
		return 255
	}
	return x
}

// nextPow2 returns the smallest power of two >= n (n >= 1). Matches the
// decoder's doubling-loop reconstruction of the padded extent exactly,
// rather than the encoder's float log2/ceil formula, to avoid floating
// point boundary error at exact powers of two.
func nextPow2(n int) int {
	v := 1
	for v < n {
		v *= 2
	}
	return v
}

// Planes holds three independent integer channel planes, padded out to a
// power-of-two extent in each dimension. Values outside the original
// width/height are never stored; out-of-range reads fall back to ref.
type Planes struct {
	width, height int
	ww, hh        int
	ref           RefColor
	cs            ColorSpace
	data          [3][][]int // [channel][x][y], sized width×height
}

// NewPlanes constructs an empty Planes of the given geometry.
func NewPlanes(width, height int, cs ColorSpace, ref RefColor) *Planes {
	p := &Planes{
		width:  width,
		height: height,
		cs:     cs,
		ref:    ref,
	}
	p.ww = nextPow2(width)
	p.hh = nextPow2(height)
	for ch := 0; ch < 3; ch++ {
		p.data[ch] = make([][]int, width)
		for x := 0; x < width; x++ {
			row := make([]int, height)
			for y := range row {
				row[y] = ref.C[ch]
			}
			p.data[ch][x] = row
		}
	}
	return p
}

// NewPlanesFromPixels projects each pixel through ToColorSpace(c, cs) and
// stores the resulting channel values.
func NewPlanesFromPixels(pixels []Color, width, height int, cs ColorSpace, ref RefColor) *Planes {
	p := NewPlanes(width, height, cs, ref)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := ToColorSpace(pixels[y*width+x], cs)
			p.data[0][x][y] = int(GetR(c))
			p.data[1][x][y] = int(GetG(c))
			p.data[2][x][y] = int(GetB(c))
		}
	}
	return p
}

// Clone returns an empty Planes with identical geometry and reference,
// used to hold the encoder's serialized snapshot separately from the
// working plane that gets locally reconstructed.
func (p *Planes) Clone() *Planes {
	return NewPlanes(p.width, p.height, p.cs, p.ref)
}

// Width, Height, PaddedWidth, PaddedHeight, RefColor, ColorSpace are
// read-only geometry/config accessors.
func (p *Planes) Width() int           { return p.width }
func (p *Planes) Height() int          { return p.height }
func (p *Planes) PaddedWidth() int     { return p.ww }
func (p *Planes) PaddedHeight() int    { return p.hh }
func (p *Planes) RefColorOf() RefColor { return p.ref }
func (p *Planes) ColorSpaceOf() ColorSpace { return p.cs }

// Get returns the channel value at (x,y), or the RefColor fallback when
// (x,y) falls outside [0,width)×[0,height).
func (p *Planes) Get(ch, x, y int) int {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return p.ref.C[ch]
	}
	return p.data[ch][x][y]
}

// Set writes the channel value at (x,y); out-of-range writes are no-ops.
func (p *Planes) Set(ch, x, y, v int) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[ch][x][y] = v
}

// GetSegment returns an s.Size x s.Size matrix of doubles scaled to [0,1].
func (p *Planes) GetSegment(ch int, s *Segment) [][]float64 {
	out := make([][]float64, s.Size)
	for x := 0; x < s.Size; x++ {
		row := make([]float64, s.Size)
		for y := 0; y < s.Size; y++ {
			row[y] = float64(p.Get(ch, s.X+x, s.Y+y)) / 255.0
		}
		out[x] = row
	}
	return out
}

// SetSegment writes values back into the segment, rounding to the
// nearest integer after scaling by 255 and applying the clamp policy.
func (p *Planes) SetSegment(ch int, s *Segment, values [][]float64, cm ClampMethod) {
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			v := clamp(cm, int(math.Round(values[x][y]*255.0)))
			p.Set(ch, s.X+x, s.Y+y, v)
		}
	}
}

// Subtract computes plane - pred element-wise over the segment, applying
// clampIn (the subtract-direction clamp).
func (p *Planes) Subtract(ch int, s *Segment, pred [][]int, cm ClampMethod) {
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			v := clampIn(cm, p.Get(ch, s.X+x, s.Y+y)-pred[x][y])
			p.Set(ch, s.X+x, s.Y+y, v)
		}
	}
}

// Add computes plane + pred element-wise over the segment, applying
// clampOut (the add-direction clamp).
func (p *Planes) Add(ch int, s *Segment, pred [][]int, cm ClampMethod) {
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			v := clampOut(cm, p.Get(ch, s.X+x, s.Y+y)+pred[x][y])
			p.Set(ch, s.X+x, s.Y+y, v)
		}
	}
}

// ToPixels packs the three channels back into ARGB pixels via
// FromColorSpace. Alpha is taken from originalPixels when supplied
// (matching it position-for-position), or defaults to 255.
func (p *Planes) ToPixels(originalPixels []Color) []Color {
	out := make([]Color, p.width*p.height)
	for x := 0; x < p.width; x++ {
		for y := 0; y < p.height; y++ {
			r := clampOut(ClampNone, p.Get(0, x, y))
			g := clampOut(ClampNone, p.Get(1, x, y))
			b := clampOut(ClampNone, p.Get(2, x, y))
			alpha := uint8(255)
			idx := y*p.width + x
			if originalPixels != nil && idx < len(originalPixels) {
				alpha = GetA(originalPixels[idx])
			}
			c := MakeColor(uint8(r), uint8(g), uint8(b), alpha)
			out[idx] = FromColorSpace(c, p.cs)
		}
	}
	return out
}
