package glic

import "math"

// calcBits returns the bit width needed to represent a value scaled by
// scale, matching ceil(log2(scale)).
func calcBits(scale int) int {
	return int(math.Ceil(math.Log2(float64(scale))))
}

// emitPackedBits writes one channel value using the width implied by
// config: an untransformed (wavelet NONE) channel packs to a fixed
// 9-bit unsigned or 8-bit signed field depending on clamp policy;
// anything that went through a wavelet packs to bits+1 unsigned bits.
func emitPackedBits(w *BitWriter, bits, val int, cfg ChannelConfig) {
	if cfg.WaveletType == WaveletNone {
		if cfg.ClampMethod == ClampNone {
			w.WriteInt(int64(val), 9)
		} else {
			w.WriteInt(int64(val), 8)
		}
		return
	}
	w.WriteInt(int64(val), uint8(bits+1))
}

func readPackedBits(r *BitReader, bits int, cfg ChannelConfig) (int, error) {
	if cfg.WaveletType == WaveletNone {
		if cfg.ClampMethod == ClampNone {
			v, err := r.ReadInt(false, 9)
			return int(v), err
		}
		v, err := r.ReadInt(true, 8)
		return int(v), err
	}
	v, err := r.ReadInt(false, uint8(bits+1))
	return int(v), err
}

func zigzagEncode(n int32) uint32 {
	return uint32((n << 1) ^ (n >> 31))
}

func zigzagDecode(n uint32) int32 {
	return int32(n>>1) ^ -(int32(n) & 1)
}

// EncodeData dispatches to the encoding method named by method, falling
// back to EncodeRaw for any unrecognized value (matching the reference
// switch's default case).
func EncodeData(w *BitWriter, p *Planes, ch int, segs []*Segment, method EncodingMethod, cfg ChannelConfig) {
	switch method {
	case EncPacked:
		EncodePacked(w, p, ch, segs, cfg)
	case EncRLE:
		EncodeRLE(w, p, ch, segs, cfg)
	case EncDelta:
		EncodeDelta(w, p, ch, segs, cfg)
	case EncXOR:
		EncodeXOR(w, p, ch, segs, cfg)
	case EncZigzag:
		EncodeZigzag(w, p, ch, segs, cfg)
	default:
		EncodeRaw(w, p, ch, segs)
	}
}

// DecodeData dispatches to the decoding method named by method, falling
// back to DecodeRaw for any unrecognized value.
func DecodeData(r *BitReader, p *Planes, ch int, segs []*Segment, method EncodingMethod, cfg ChannelConfig) {
	switch method {
	case EncPacked:
		DecodePacked(r, p, ch, segs, cfg)
	case EncRLE:
		DecodeRLE(r, p, ch, segs, cfg)
	case EncDelta:
		DecodeDelta(r, p, ch, segs, cfg)
	case EncXOR:
		DecodeXOR(r, p, ch, segs, cfg)
	case EncZigzag:
		DecodeZigzag(r, p, ch, segs, cfg)
	default:
		DecodeRaw(r, p, ch, segs)
	}
}

// EncodeRaw writes every segment value as a full 32-bit field.
func EncodeRaw(w *BitWriter, p *Planes, ch int, segs []*Segment) {
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				w.WriteBits(uint64(uint32(p.Get(ch, s.X+x, s.Y+y))), 32)
			}
		}
	}
	w.Align()
}

// DecodeRaw is EncodeRaw's inverse. A truncated stream stops decoding
// mid-segment and returns without aligning, leaving the remaining
// values at whatever Planes already held — this mirrors the reference
// decoder's catch-and-return-early behavior exactly.
func DecodeRaw(r *BitReader, p *Planes, ch int, segs []*Segment) {
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				v, err := r.ReadBits(32)
				if err != nil {
					return
				}
				p.Set(ch, s.X+x, s.Y+y, int(int32(v)))
			}
		}
	}
	r.Align()
}

// EncodePacked writes every segment value using the config-dependent
// packed width (see emitPackedBits).
func EncodePacked(w *BitWriter, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				emitPackedBits(w, bits, p.Get(ch, s.X+x, s.Y+y), cfg)
			}
		}
	}
	w.Align()
}

// DecodePacked is EncodePacked's inverse; truncation stops early without
// aligning, same as DecodeRaw.
func DecodePacked(r *BitReader, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				v, err := readPackedBits(r, bits, cfg)
				if err != nil {
					return
				}
				p.Set(ch, s.X+x, s.Y+y, v)
			}
		}
	}
	r.Align()
}

// EncodeRLE run-length encodes the raster-order sequence of segment
// values: a single boolean flags whether a run of length 1 follows (no
// count field) or a longer run follows (7-bit signed count-2, capping
// runs at 129 so the count field never overflows).
func EncodeRLE(w *BitWriter, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	currentVal := 0
	firstVal := true
	currentCnt := 0

	flush := func() {
		if currentCnt == 1 {
			w.WriteBoolean(false)
		} else {
			w.WriteBoolean(true)
			w.WriteInt(int64(currentCnt-2), 7)
		}
		emitPackedBits(w, bits, currentVal, cfg)
	}

	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				val := p.Get(ch, s.X+x, s.Y+y)
				switch {
				case firstVal:
					currentVal = val
					currentCnt = 1
					firstVal = false
				case currentVal != val || currentCnt == 129:
					flush()
					currentVal = val
					currentCnt = 1
				default:
					currentCnt++
				}
			}
		}
	}
	if !firstVal {
		flush()
	}
	w.Align()
}

// DecodeRLE is EncodeRLE's inverse.
func DecodeRLE(r *BitReader, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	currentVal := 0
	doReadType := true
	currentCnt := 0

	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				if doReadType {
					isRun, err := r.ReadBoolean()
					if err != nil {
						return
					}
					if isRun {
						cnt, err := r.ReadInt(true, 7)
						if err != nil {
							return
						}
						currentCnt = int(cnt) + 2
						doReadType = false
					}
					v, err := readPackedBits(r, bits, cfg)
					if err != nil {
						return
					}
					currentVal = v
				}
				p.Set(ch, s.X+x, s.Y+y, currentVal)
				currentCnt--
				if currentCnt <= 0 {
					doReadType = true
				}
			}
		}
	}
	r.Align()
}

// EncodeDelta writes each value as a zigzag-encoded delta from the
// previous value in raster order, seeded with prevVal=0.
func EncodeDelta(w *BitWriter, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	prevVal := 0
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				val := p.Get(ch, s.X+x, s.Y+y)
				delta := int32(val - prevVal)
				w.WriteInt(int64(zigzagEncode(delta)), uint8(bits+2))
				prevVal = val
			}
		}
	}
	w.Align()
}

// DecodeDelta is EncodeDelta's inverse.
func DecodeDelta(r *BitReader, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	prevVal := 0
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				v, err := r.ReadInt(false, uint8(bits+2))
				if err != nil {
					return
				}
				delta := zigzagDecode(uint32(v))
				val := prevVal + int(delta)
				p.Set(ch, s.X+x, s.Y+y, val)
				prevVal = val
			}
		}
	}
	r.Align()
}

// EncodeXOR writes each value XORed against the previous value in
// raster order, packed via emitPackedBits.
func EncodeXOR(w *BitWriter, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	prevVal := 0
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				val := p.Get(ch, s.X+x, s.Y+y)
				emitPackedBits(w, bits, val^prevVal, cfg)
				prevVal = val
			}
		}
	}
	w.Align()
}

// DecodeXOR is EncodeXOR's inverse.
func DecodeXOR(r *BitReader, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	prevVal := 0
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				xorVal, err := readPackedBits(r, bits, cfg)
				if err != nil {
					return
				}
				val := xorVal ^ prevVal
				p.Set(ch, s.X+x, s.Y+y, val)
				prevVal = val
			}
		}
	}
	r.Align()
}

// EncodeZigzag writes each value zigzag-encoded directly (no delta).
func EncodeZigzag(w *BitWriter, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				val := int32(p.Get(ch, s.X+x, s.Y+y))
				w.WriteInt(int64(zigzagEncode(val)), uint8(bits+1))
			}
		}
	}
	w.Align()
}

// DecodeZigzag is EncodeZigzag's inverse.
func DecodeZigzag(r *BitReader, p *Planes, ch int, segs []*Segment, cfg ChannelConfig) {
	bits := calcBits(cfg.TransformScale)
	for _, s := range segs {
		for x := 0; x < s.Size; x++ {
			for y := 0; y < s.Size; y++ {
				v, err := r.ReadInt(false, uint8(bits+1))
				if err != nil {
					return
				}
				p.Set(ch, s.X+x, s.Y+y, int(zigzagDecode(uint32(v))))
			}
		}
	}
	r.Align()
}
