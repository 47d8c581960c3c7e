package glic

import "math"

// QuantValue converts a wire quantization value (0..255) into the actual
// divisor used by Quantize.
func QuantValue(v int) float64 {
	return float64(v) / 2.0
}

// TransCompressionValue converts a wire transform-compression value
// (0..255) into the magnitude threshold consumed by MagnitudeCompressor.
func TransCompressionValue(v float64) float64 {
	return 50.0 * (v / 255.0) * (v / 255.0)
}

// Quantize divides (forward) or multiplies (inverse) every value in the
// segment by val, rounding to the nearest int. val<=1 is a no-op: there
// is nothing to gain quantizing to a step smaller than one intensity
// level, and dividing by val in (0,1] would amplify rather than compress.
func Quantize(p *Planes, ch int, s *Segment, val float64, forward bool) {
	if val <= 1 {
		return
	}
	for x := 0; x < s.Size; x++ {
		for y := 0; y < s.Size; y++ {
			col := float64(p.Get(ch, s.X+x, s.Y+y))
			if forward {
				col /= val
			} else {
				col *= val
			}
			p.Set(ch, s.X+x, s.Y+y, int(math.Round(col)))
		}
	}
}
