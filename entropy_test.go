package glic

import "testing"

func entropyTestSegs() []*Segment {
	return []*Segment{
		{X: 0, Y: 0, Size: 4},
		{X: 4, Y: 0, Size: 2},
		{X: 0, Y: 4, Size: 2},
	}
}

func entropyTestPlanes(vals func(x, y int) int) *Planes {
	p := NewPlanes(8, 8, RGB, NewRefColorRGB(0, 0, 0))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			p.Set(0, x, y, vals(x, y))
		}
	}
	return p
}

func TestEntropyMethodsRoundTrip(t *testing.T) {
	cfg := DefaultChannelConfig()
	cfg.TransformScale = 20

	cases := []struct {
		name   string
		method EncodingMethod
	}{
		{"Raw", EncRaw},
		{"Packed", EncPacked},
		{"RLE", EncRLE},
		{"Delta", EncDelta},
		{"XOR", EncXOR},
		{"Zigzag", EncZigzag},
	}

	valueFn := func(x, y int) int { return (x*3 + y*5) % 20 }

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			segs := entropyTestSegs()
			src := entropyTestPlanes(valueFn)

			w := NewBitWriter()
			EncodeData(w, src, 0, segs, tc.method, cfg)

			dst := NewPlanes(8, 8, RGB, NewRefColorRGB(0, 0, 0))
			r := NewBitReader(w.Bytes())
			DecodeData(r, dst, 0, segs, tc.method, cfg)

			for _, s := range segs {
				for x := 0; x < s.Size; x++ {
					for y := 0; y < s.Size; y++ {
						want := src.Get(0, s.X+x, s.Y+y)
						got := dst.Get(0, s.X+x, s.Y+y)
						if got != want {
							t.Errorf("%s: at (%d,%d) got %d want %d", tc.name, s.X+x, s.Y+y, got, want)
						}
					}
				}
			}
		})
	}
}

func TestEntropyRLERunOfConstantValue(t *testing.T) {
	cfg := DefaultChannelConfig()
	cfg.TransformScale = 20
	segs := []*Segment{{X: 0, Y: 0, Size: 8}}
	src := entropyTestPlanes(func(x, y int) int { return 7 })

	w := NewBitWriter()
	EncodeRLE(w, src, 0, segs, cfg)

	dst := NewPlanes(8, 8, RGB, NewRefColorRGB(0, 0, 0))
	r := NewBitReader(w.Bytes())
	DecodeRLE(r, dst, 0, segs, cfg)

	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			if got := dst.Get(0, x, y); got != 7 {
				t.Fatalf("at (%d,%d) got %d want 7", x, y, got)
			}
		}
	}
}

func TestZigzagEncodeDecodeInverse(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 127, -128, 1 << 20, -(1 << 20)} {
		if got := zigzagDecode(zigzagEncode(v)); got != v {
			t.Errorf("zigzag round trip of %d got %d", v, got)
		}
	}
}

func TestCalcBits(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 20: 5, 256: 8}
	for in, want := range cases {
		if got := calcBits(in); got != want {
			t.Errorf("calcBits(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestDecodeRawTruncatedStopsEarlyWithoutAlign(t *testing.T) {
	segs := []*Segment{{X: 0, Y: 0, Size: 2}}
	dst := NewPlanes(8, 8, RGB, NewRefColorRGB(5, 5, 5))
	r := NewBitReader([]byte{0x00}) // far fewer than 4 values x 32 bits
	DecodeRaw(r, dst, 0, segs)

	if got := dst.Get(0, 1, 1); got != 5 {
		t.Fatalf("expected untouched ref value 5, got %d", got)
	}
}
