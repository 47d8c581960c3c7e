package glic

import "math"

// Wavelet bundles the four filter banks (decomposition/reconstruction,
// low-pass/high-pass) a transform needs. Filter lengths vary by family;
// callers must not assume a fixed length.
type Wavelet struct {
	Name string
	LPD  []float64
	HPD  []float64
	LPR  []float64
	HPR  []float64
}

var haarWavelet = &Wavelet{
	Name: "Haar",
	LPD:  []float64{0.7071067811865476, 0.7071067811865476},
	HPD:  []float64{-0.7071067811865476, 0.7071067811865476},
	LPR:  []float64{0.7071067811865476, 0.7071067811865476},
	HPR:  []float64{0.7071067811865476, -0.7071067811865476},
}

var daubechies2Wavelet = &Wavelet{
	Name: "Daubechies2",
	LPD: []float64{
		-0.12940952255092145, 0.22414386804185735,
		0.836516303737469, 0.48296291314469025,
	},
	HPD: []float64{
		-0.48296291314469025, 0.836516303737469,
		-0.22414386804185735, -0.12940952255092145,
	},
	LPR: []float64{
		0.48296291314469025, 0.836516303737469,
		0.22414386804185735, -0.12940952255092145,
	},
	HPR: []float64{
		-0.12940952255092145, -0.22414386804185735,
		0.836516303737469, -0.48296291314469025,
	},
}

var daubechies4Wavelet = &Wavelet{
	Name: "Daubechies4",
	LPD: []float64{
		-0.010597401784997278, 0.032883011666982945,
		0.030841381835986965, -0.18703481171888114,
		-0.02798376941698385, 0.6308807679295904,
		0.7148465705525415, 0.23037781330885523,
	},
	HPD: []float64{
		-0.23037781330885523, 0.7148465705525415,
		-0.6308807679295904, -0.02798376941698385,
		0.18703481171888114, 0.030841381835986965,
		-0.032883011666982945, -0.010597401784997278,
	},
	LPR: []float64{
		0.23037781330885523, 0.7148465705525415,
		0.6308807679295904, -0.02798376941698385,
		-0.18703481171888114, 0.030841381835986965,
		0.032883011666982945, -0.010597401784997278,
	},
	HPR: []float64{
		-0.010597401784997278, -0.032883011666982945,
		0.030841381835986965, 0.18703481171888114,
		-0.02798376941698385, -0.6308807679295904,
		0.7148465705525415, -0.23037781330885523,
	},
}

var symlet4Wavelet = &Wavelet{
	Name: "Symlet4",
	LPD: []float64{
		-0.07576571478927333, -0.02963552764599851,
		0.49761866763201545, 0.8037387518059161,
		0.29785779560527736, -0.09921954357684722,
		-0.012603967262037833, 0.032223100604042702,
	},
	HPD: []float64{
		-0.032223100604042702, -0.012603967262037833,
		0.09921954357684722, 0.29785779560527736,
		-0.8037387518059161, 0.49761866763201545,
		0.02963552764599851, -0.07576571478927333,
	},
	LPR: []float64{
		0.032223100604042702, -0.012603967262037833,
		-0.09921954357684722, 0.29785779560527736,
		0.8037387518059161, 0.49761866763201545,
		-0.02963552764599851, -0.07576571478927333,
	},
	HPR: []float64{
		-0.07576571478927333, 0.02963552764599851,
		0.49761866763201545, -0.8037387518059161,
		0.29785779560527736, 0.09921954357684722,
		-0.012603967262037833, -0.032223100604042702,
	},
}

var symlet8Wavelet = &Wavelet{
	Name: "Symlet8",
	LPD: []float64{
		-0.0033824159510061256, -0.0005421323317911481,
		0.03169508781149298, 0.007607487324917605,
		-0.1432942383508097, -0.061273359067658524,
		0.4813596512583722, 0.7771857516997478,
		0.3644418948353314, -0.05194583810770904,
		-0.027219029917056003, 0.049137179673607506,
		0.003808752013890615, -0.01495225833704823,
		-0.0003029205147213668, 0.0018899503327594609,
	},
	HPD: []float64{
		-0.0018899503327594609, -0.0003029205147213668,
		0.01495225833704823, 0.003808752013890615,
		-0.049137179673607506, -0.027219029917056003,
		0.05194583810770904, 0.3644418948353314,
		-0.7771857516997478, 0.4813596512583722,
		0.061273359067658524, -0.1432942383508097,
		-0.007607487324917605, 0.03169508781149298,
		0.0005421323317911481, -0.0033824159510061256,
	},
	LPR: []float64{
		0.0018899503327594609, -0.0003029205147213668,
		-0.01495225833704823, 0.003808752013890615,
		0.049137179673607506, -0.027219029917056003,
		-0.05194583810770904, 0.3644418948353314,
		0.7771857516997478, 0.4813596512583722,
		-0.061273359067658524, -0.1432942383508097,
		0.007607487324917605, 0.03169508781149298,
		-0.0005421323317911481, -0.0033824159510061256,
	},
	HPR: []float64{
		-0.0033824159510061256, 0.0005421323317911481,
		0.03169508781149298, -0.007607487324917605,
		-0.1432942383508097, 0.061273359067658524,
		0.4813596512583722, -0.7771857516997478,
		0.3644418948353314, 0.05194583810770904,
		-0.027219029917056003, -0.049137179673607506,
		0.003808752013890615, 0.01495225833704823,
		-0.0003029205147213668, -0.0018899503327594609,
	},
}

var coiflet2Wavelet = &Wavelet{
	Name: "Coiflet2",
	LPD: []float64{
		0.0007205494453645122, -0.0018232088707029932,
		-0.0056114348193944995, 0.023680171946334084,
		0.0594344186464569, -0.0764885990783064,
		-0.41700518442169254, 0.8127236354455423,
		0.3861100668211622, -0.06737255472196302,
		-0.04146493678175915, 0.016387336463522112,
	},
	HPD: []float64{
		-0.016387336463522112, -0.04146493678175915,
		0.06737255472196302, 0.3861100668211622,
		-0.8127236354455423, -0.41700518442169254,
		0.0764885990783064, 0.0594344186464569,
		-0.023680171946334084, -0.0056114348193944995,
		0.0018232088707029932, 0.0007205494453645122,
	},
	LPR: []float64{
		0.016387336463522112, -0.04146493678175915,
		-0.06737255472196302, 0.3861100668211622,
		0.8127236354455423, -0.41700518442169254,
		-0.0764885990783064, 0.0594344186464569,
		0.023680171946334084, -0.0056114348193944995,
		-0.0018232088707029932, 0.0007205494453645122,
	},
	HPR: []float64{
		0.0007205494453645122, 0.0018232088707029932,
		-0.0056114348193944995, -0.023680171946334084,
		0.0594344186464569, 0.0764885990783064,
		-0.41700518442169254, -0.8127236354455423,
		0.3861100668211622, 0.06737255472196302,
		-0.04146493678175915, -0.016387336463522112,
	},
}

// CreateWavelet maps a WaveletType to its concrete filter bank. Several
// wire values alias the same bank (e.g. all nine Symlet orders collapse
// onto just two concrete filter sets), matching the reference factory's
// coarser implementation than its enum suggests. WaveletRandom and any
// other unlisted value fall back to Haar.
func CreateWavelet(t WaveletType) *Wavelet {
	switch t {
	case Haar, HaarOrthogonal:
		return haarWavelet
	case Daubechies2:
		return daubechies2Wavelet
	case Daubechies3, Daubechies4:
		return daubechies4Wavelet
	case Symlet2, Symlet3, Symlet4:
		return symlet4Wavelet
	case Symlet5, Symlet6, Symlet7, Symlet8, Symlet9, Symlet10:
		return symlet8Wavelet
	case Coiflet1, Coiflet2, Coiflet3, Coiflet4, Coiflet5:
		return coiflet2Wavelet
	default:
		return haarWavelet
	}
}

// WaveletTransform is the 2D forward/reverse interface shared by FWT and
// WPT, matching the reference's WaveletTransform base class.
type WaveletTransform interface {
	Forward(data [][]float64) [][]float64
	Reverse(data [][]float64) [][]float64
	Name() string
}

// CreateTransform maps a TransformType to its concrete 2D transform.
// Every value other than TransformWPT, TransformRandom included, yields
// FWT.
func CreateTransform(t TransformType, w *Wavelet) WaveletTransform {
	if t == TransformWPT {
		return &WaveletPacketTransform{wavelet: w}
	}
	return &FastWaveletTransform{wavelet: w}
}

// FastWaveletTransform applies one level of decomposition per halving of
// the remaining length, across rows then columns.
type FastWaveletTransform struct {
	wavelet *Wavelet
}

func (t *FastWaveletTransform) Name() string { return "FWT" }

func (t *FastWaveletTransform) forward1D(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return data
	}
	result := make([]float64, n)
	lpd, hpd := t.wavelet.LPD, t.wavelet.HPD
	filterLen := len(lpd)
	half := n / 2
	for i := 0; i < half; i++ {
		var low, high float64
		for j := 0; j < filterLen; j++ {
			idx := (2*i + j) % n
			low += lpd[j] * data[idx]
			high += hpd[j] * data[idx]
		}
		result[i] = low
		result[half+i] = high
	}
	return result
}

func (t *FastWaveletTransform) reverse1D(data []float64) []float64 {
	n := len(data)
	if n < 2 {
		return data
	}
	result := make([]float64, n)
	lpr, hpr := t.wavelet.LPR, t.wavelet.HPR
	filterLen := len(lpr)
	half := n / 2
	for i := 0; i < half; i++ {
		for j := 0; j < filterLen; j++ {
			idx := (2*i + filterLen - 1 - j) % n
			result[idx] += lpr[j]*data[i] + hpr[j]*data[half+i]
		}
	}
	return result
}

func (t *FastWaveletTransform) Forward(data [][]float64) [][]float64 {
	rows := len(data)
	if rows == 0 {
		return data
	}
	cols := len(data[0])
	result := cloneMatrix(data)

	for i := 0; i < rows; i++ {
		for length := cols; length >= 2; length /= 2 {
			temp := append([]float64(nil), result[i][:length]...)
			transformed := t.forward1D(temp)
			copy(result[i][:length], transformed)
		}
	}

	for j := 0; j < cols; j++ {
		for length := rows; length >= 2; length /= 2 {
			temp := make([]float64, length)
			for i := 0; i < length; i++ {
				temp[i] = result[i][j]
			}
			transformed := t.forward1D(temp)
			for i := 0; i < length; i++ {
				result[i][j] = transformed[i]
			}
		}
	}
	return result
}

func (t *FastWaveletTransform) Reverse(data [][]float64) [][]float64 {
	rows := len(data)
	if rows == 0 {
		return data
	}
	cols := len(data[0])
	result := cloneMatrix(data)

	for j := 0; j < cols; j++ {
		for length := 2; length <= rows; length *= 2 {
			temp := make([]float64, length)
			for i := 0; i < length; i++ {
				temp[i] = result[i][j]
			}
			transformed := t.reverse1D(temp)
			for i := 0; i < length; i++ {
				result[i][j] = transformed[i]
			}
		}
	}

	for i := 0; i < rows; i++ {
		for length := 2; length <= cols; length *= 2 {
			temp := append([]float64(nil), result[i][:length]...)
			transformed := t.reverse1D(temp)
			copy(result[i][:length], transformed)
		}
	}
	return result
}

// WaveletPacketTransform fully decomposes both the low and high band at
// every level, instead of FWT's low-band-only recursion.
type WaveletPacketTransform struct {
	wavelet *Wavelet
}

func (t *WaveletPacketTransform) Name() string { return "WPT" }

func (t *WaveletPacketTransform) forward1D(data []float64, level int) []float64 {
	if level <= 0 || len(data) < 2 {
		return data
	}
	lpd, hpd := t.wavelet.LPD, t.wavelet.HPD
	n := len(data)
	filterLen := len(lpd)
	result := make([]float64, n)
	half := n / 2

	for i := 0; i < half; i++ {
		var low, high float64
		for j := 0; j < filterLen; j++ {
			idx := (2*i + j) % n
			low += lpd[j] * data[idx]
			high += hpd[j] * data[idx]
		}
		result[i] = low
		result[half+i] = high
	}

	lowPart := t.forward1D(result[:half], level-1)
	highPart := t.forward1D(result[half:], level-1)
	copy(result[:half], lowPart)
	copy(result[half:], highPart)
	return result
}

func (t *WaveletPacketTransform) reverse1D(data []float64, level int) []float64 {
	if level <= 0 || len(data) < 2 {
		return data
	}
	n := len(data)
	half := n / 2

	lowPart := t.reverse1D(data[:half], level-1)
	highPart := t.reverse1D(data[half:], level-1)

	lpr, hpr := t.wavelet.LPR, t.wavelet.HPR
	filterLen := len(lpr)
	result := make([]float64, n)

	for i := 0; i < half; i++ {
		for j := 0; j < filterLen; j++ {
			idx := (2*i + filterLen - 1 - j) % n
			result[idx] += lpr[j]*lowPart[i] + hpr[j]*highPart[i]
		}
	}
	return result
}

func (t *WaveletPacketTransform) Forward(data [][]float64) [][]float64 {
	rows := len(data)
	if rows == 0 {
		return data
	}
	cols := len(data[0])
	levels := int(math.Log2(float64(minInt(rows, cols))))
	result := cloneMatrix(data)

	for i := 0; i < rows; i++ {
		result[i] = t.forward1D(result[i], levels)
	}
	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = result[i][j]
		}
		col = t.forward1D(col, levels)
		for i := 0; i < rows; i++ {
			result[i][j] = col[i]
		}
	}
	return result
}

func (t *WaveletPacketTransform) Reverse(data [][]float64) [][]float64 {
	rows := len(data)
	if rows == 0 {
		return data
	}
	cols := len(data[0])
	levels := int(math.Log2(float64(minInt(rows, cols))))
	result := cloneMatrix(data)

	for j := 0; j < cols; j++ {
		col := make([]float64, rows)
		for i := 0; i < rows; i++ {
			col[i] = result[i][j]
		}
		col = t.reverse1D(col, levels)
		for i := 0; i < rows; i++ {
			result[i][j] = col[i]
		}
	}
	for i := 0; i < rows; i++ {
		result[i] = t.reverse1D(result[i], levels)
	}
	return result
}

func cloneMatrix(data [][]float64) [][]float64 {
	out := make([][]float64, len(data))
	for i, row := range data {
		out[i] = append([]float64(nil), row...)
	}
	return out
}

// MagnitudeCompressor zeroes every coefficient whose magnitude falls
// below threshold, the transform-domain analogue of quantization.
type MagnitudeCompressor struct {
	Threshold float64
}

func (c *MagnitudeCompressor) Compress(data [][]float64) [][]float64 {
	result := cloneMatrix(data)
	for _, row := range result {
		for i, v := range row {
			if math.Abs(v) < c.Threshold {
				row[i] = 0
			}
		}
	}
	return result
}
