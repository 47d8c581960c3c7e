package glic

import "testing"

func makeTestMatrix(size int) [][]float64 {
	m := make([][]float64, size)
	for x := range m {
		m[x] = make([]float64, size)
		for y := range m[x] {
			m[x][y] = float64((x*7+y*13)%97) - 48
		}
	}
	return m
}

func matricesClose(a, b [][]float64, tol float64) bool {
	for x := range a {
		for y := range a[x] {
			d := a[x][y] - b[x][y]
			if d < -tol || d > tol {
				return false
			}
		}
	}
	return true
}

func TestCreateWaveletAliasTable(t *testing.T) {
	cases := map[WaveletType]*Wavelet{
		Haar:           haarWavelet,
		HaarOrthogonal: haarWavelet,
		Daubechies2:    daubechies2Wavelet,
		Daubechies3:    daubechies4Wavelet,
		Daubechies4:    daubechies4Wavelet,
		Daubechies5:    haarWavelet, // falls through to the default, same as the reference factory
		Daubechies10:   haarWavelet,
		Symlet4:        symlet4Wavelet,
		Symlet8:        symlet8Wavelet,
		Coiflet2:       coiflet2Wavelet,
	}
	for wt, want := range cases {
		if got := CreateWavelet(wt); got != want {
			t.Errorf("CreateWavelet(%v) = %v, want %v", wt, got.Name, want.Name)
		}
	}
}

func TestFastWaveletTransformRoundTrip(t *testing.T) {
	for _, wt := range []WaveletType{Haar, Daubechies4, Symlet8, Coiflet2} {
		transform := CreateTransform(TransformFWT, CreateWavelet(wt))
		m := makeTestMatrix(8)
		out := transform.Reverse(transform.Forward(cloneMatrix(m)))
		if !matricesClose(m, out, 1e-6) {
			t.Errorf("FWT round trip mismatch for wavelet %v", wt)
		}
	}
}

func TestWaveletPacketTransformRoundTrip(t *testing.T) {
	for _, wt := range []WaveletType{Haar, Symlet4} {
		transform := CreateTransform(TransformWPT, CreateWavelet(wt))
		m := makeTestMatrix(8)
		out := transform.Reverse(transform.Forward(cloneMatrix(m)))
		if !matricesClose(m, out, 1e-6) {
			t.Errorf("WPT round trip mismatch for wavelet %v", wt)
		}
	}
}

func TestMagnitudeCompressorZeroesBelowThreshold(t *testing.T) {
	c := &MagnitudeCompressor{Threshold: 10}
	m := [][]float64{{3, 15}, {-5, -20}}
	out := c.Compress(cloneMatrix(m))
	if out[0][0] != 0 {
		t.Errorf("expected value below threshold to be zeroed, got %v", out[0][0])
	}
	if out[0][1] != 15 {
		t.Errorf("expected value above threshold to survive, got %v", out[0][1])
	}
}
