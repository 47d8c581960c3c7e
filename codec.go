package glic

import (
	"fmt"
	"math"
	"os"
)

// Codec is a configured GLIC encoder/decoder. The zero value is not
// usable; construct with NewCodec.
type Codec struct {
	config      CodecConfig
	postEffects PostEffectsConfig
}

// NewCodec returns a Codec bound to config.
func NewCodec(config CodecConfig) *Codec {
	return &Codec{config: config}
}

// Config returns the codec's configuration.
func (c *Codec) Config() CodecConfig { return c.config }

// SetConfig replaces the codec's configuration.
func (c *Codec) SetConfig(config CodecConfig) { c.config = config }

// PostEffects returns the codec's post-processing chain.
func (c *Codec) PostEffects() PostEffectsConfig { return c.postEffects }

// SetPostEffects replaces the codec's post-processing chain.
func (c *Codec) SetPostEffects(effects PostEffectsConfig) { c.postEffects = effects }

// Encode packs pixels (row-major, width x height) into a GLIC buffer.
func (c *Codec) Encode(pixels []Color, width, height int) ([]byte, error) {
	cfg := c.config
	border := MakeColor(cfg.BorderColorR, cfg.BorderColorG, cfg.BorderColorB)
	ref := NewRefColor(border, cfg.ColorSpace)
	planes := NewPlanesFromPixels(pixels, width, height, cfg.ColorSpace, ref)

	var segments [3][]*Segment
	var segmentationData, predictionData, imageData [3][]byte

	for p := 0; p < 3; p++ {
		chConfig := cfg.Channels[p]

		segmWriter := NewBitWriter()
		segments[p] = MakeSegmentation(segmWriter, planes, p, chConfig.MinBlockSize, chConfig.MaxBlockSize, chConfig.SegmentationPrecision)
		segmWriter.Align()
		segmentationData[p] = append([]byte(nil), segmWriter.Bytes()...)

		var wavelet *Wavelet
		var transform WaveletTransform
		var compressor *MagnitudeCompressor
		if chConfig.WaveletType != WaveletNone {
			wavelet = CreateWavelet(chConfig.WaveletType)
			transform = CreateTransform(chConfig.TransformType, wavelet)
			if chConfig.TransformCompress > 0 {
				compressor = &MagnitudeCompressor{Threshold: TransCompressionValue(chConfig.TransformCompress)}
			}
		}

		pq := QuantValue(chConfig.QuantizationValue)
		resultPlanes := planes.Clone()

		for _, seg := range segments[p] {
			pred := Predict(chConfig.PredictionMethod, planes, p, seg)
			planes.Subtract(p, seg, pred, chConfig.ClampMethod)

			if pq > 0 {
				Quantize(planes, p, seg, pq, true)
			}

			if transform != nil {
				tr := planes.GetSegment(p, seg)
				tr = transform.Forward(tr)
				if compressor != nil {
					tr = compressor.Compress(tr)
				}
				for x := 0; x < seg.Size; x++ {
					for y := 0; y < seg.Size; y++ {
						val := int(math.Round(tr[x][y] * float64(chConfig.TransformScale) / float64(seg.Size)))
						planes.Set(p, seg.X+x, seg.Y+y, val)
					}
				}
			}

			for x := 0; x < seg.Size; x++ {
				for y := 0; y < seg.Size; y++ {
					resultPlanes.Set(p, seg.X+x, seg.Y+y, planes.Get(p, seg.X+x, seg.Y+y))
				}
			}

			if transform != nil {
				tr := make([][]float64, seg.Size)
				for x := 0; x < seg.Size; x++ {
					tr[x] = make([]float64, seg.Size)
					for y := 0; y < seg.Size; y++ {
						tr[x][y] = float64(seg.Size*planes.Get(p, seg.X+x, seg.Y+y)) / float64(chConfig.TransformScale)
					}
				}
				tr = transform.Reverse(tr)
				planes.SetSegment(p, seg, tr, chConfig.ClampMethod)
			}

			if pq > 0 {
				Quantize(planes, p, seg, pq, false)
			}

			// Re-predict using seg.PredType rather than the configured
			// method: most predictors never mutate PredType away from
			// NONE, so this resolves to the all-zero default case for
			// them. Only REF, ANGLE, SAD, and BSAD leave a meaningful
			// PredType here. This mirrors the reference encoder's local
			// reconstruction step exactly, including its asymmetry with
			// decode (see Decode below).
			pred = Predict(seg.PredType, planes, p, seg)
			planes.Add(p, seg, pred, chConfig.ClampMethod)
		}

		predWriter := NewBitWriter()
		for _, seg := range segments[p] {
			predWriter.WriteByte(byte(int8(seg.PredType)))
			predWriter.WriteBits(uint64(uint32(int16(seg.RefX))), 16)
			predWriter.WriteBits(uint64(uint32(int16(seg.RefY))), 16)
			predWriter.WriteByte(byte(((seg.RefAngle % 3) + 3) % 3))
			angleVal := int16(0x7000 * seg.Angle)
			predWriter.WriteBits(uint64(uint32(angleVal)), 16)
		}
		predWriter.Align()
		predictionData[p] = append([]byte(nil), predWriter.Bytes()...)

		dataWriter := NewBitWriter()
		EncodeData(dataWriter, resultPlanes, p, segments[p], chConfig.EncodingMethod, chConfig)
		imageData[p] = append([]byte(nil), dataWriter.Bytes()...)
	}

	var sizes [3]channelSizes
	for p := 0; p < 3; p++ {
		sizes[p] = channelSizes{
			segmentation: uint32(len(segmentationData[p])),
			prediction:   uint32(len(predictionData[p])),
			data:         uint32(len(imageData[p])),
		}
	}

	out := writeHeader(width, height, cfg, sizes)
	for p := 0; p < 3; p++ {
		out = append(out, segmentationData[p]...)
	}
	for p := 0; p < 3; p++ {
		out = append(out, predictionData[p]...)
	}
	for p := 0; p < 3; p++ {
		out = append(out, imageData[p]...)
	}

	if cfg.ContainerCompression {
		compressed, err := compressZstd(out)
		if err != nil {
			return nil, fmt.Errorf("codec: encode: %w", err)
		}
		return compressed, nil
	}
	return out, nil
}

// Decode unpacks a GLIC buffer back into pixels, returning the decoded
// width and height alongside the pixel slice.
func (c *Codec) Decode(buf []byte) ([]Color, int, int, error) {
	if isZstdFrame(buf) {
		decompressed, err := decompressZstd(buf)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("codec: decode: %w", err)
		}
		buf = decompressed
	}

	h, pos, err := readHeader(buf)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("codec: decode: %w", err)
	}

	border := MakeColor(h.borderR, h.borderG, h.borderB)
	ref := NewRefColor(border, h.colorSpace)
	planes := NewPlanes(h.width, h.height, h.colorSpace, ref)
	ww, hh := nextPow2(h.width), nextPow2(h.height)

	var segments [3][]*Segment
	for p := 0; p < 3; p++ {
		size := int(h.sizes[p].segmentation)
		if pos+size > len(buf) {
			return nil, 0, 0, fmt.Errorf("codec: decode: segmentation channel %d: %w", p, ErrTruncatedInput)
		}
		segReader := NewBitReader(buf[pos : pos+size])
		segments[p] = ReadSegmentation(segReader, ww, hh, h.width, h.height)
		pos += size
	}

	for p := 0; p < 3; p++ {
		size := int(h.sizes[p].prediction)
		if pos+size > len(buf) {
			return nil, 0, 0, fmt.Errorf("codec: decode: prediction channel %d: %w", p, ErrTruncatedInput)
		}
		predReader := NewBitReader(buf[pos : pos+size])
		for _, seg := range segments[p] {
			predType, err := predReader.ReadByte()
			if err != nil {
				break
			}
			seg.PredType = PredictionMethod(int8(predType))
			if seg.PredType == NONE {
				seg.PredType = h.channels[p].PredictionMethod
			}
			refX, err := predReader.ReadBits(16)
			if err != nil {
				break
			}
			seg.RefX = int(int16(refX))
			refY, err := predReader.ReadBits(16)
			if err != nil {
				break
			}
			seg.RefY = int(int16(refY))
			refAngleByte, err := predReader.ReadByte()
			if err != nil {
				break
			}
			seg.RefAngle = int(refAngleByte) % 3
			angleBits, err := predReader.ReadBits(16)
			if err != nil {
				break
			}
			seg.Angle = float64(int16(angleBits)) / float64(0x7000)
		}
		pos += size
	}

	for p := 0; p < 3; p++ {
		size := int(h.sizes[p].data)
		if pos+size > len(buf) {
			return nil, 0, 0, fmt.Errorf("codec: decode: data channel %d: %w", p, ErrTruncatedInput)
		}
		dataReader := NewBitReader(buf[pos : pos+size])
		DecodeData(dataReader, planes, p, segments[p], h.channels[p].EncodingMethod, h.channels[p])
		pos += size
	}

	for p := 0; p < 3; p++ {
		chConfig := h.channels[p]

		var wavelet *Wavelet
		var transform WaveletTransform
		if chConfig.WaveletType != WaveletNone {
			wavelet = CreateWavelet(chConfig.WaveletType)
			transform = CreateTransform(chConfig.TransformType, wavelet)
		}
		_ = wavelet

		pq := QuantValue(chConfig.QuantizationValue)

		for _, seg := range segments[p] {
			if transform != nil {
				tr := make([][]float64, seg.Size)
				for x := 0; x < seg.Size; x++ {
					tr[x] = make([]float64, seg.Size)
					for y := 0; y < seg.Size; y++ {
						tr[x][y] = float64(seg.Size*planes.Get(p, seg.X+x, seg.Y+y)) / float64(chConfig.TransformScale)
					}
				}
				tr = transform.Reverse(tr)
				planes.SetSegment(p, seg, tr, chConfig.ClampMethod)
			}

			if pq > 0 {
				Quantize(planes, p, seg, pq, false)
			}

			// Unlike Encode's local reconstruction step, seg.PredType was
			// already defaulted to the configured method above when it
			// came back NONE off the wire, so this predict call uses the
			// real predictor rather than falling into the all-zero
			// default case.
			pred := Predict(seg.PredType, planes, p, seg)
			planes.Add(p, seg, pred, chConfig.ClampMethod)
		}
	}

	pixels := planes.ToPixels(nil)

	if c.postEffects.Enabled && len(c.postEffects.Effects) > 0 {
		if err := ApplyEffects(pixels, h.width, h.height, c.postEffects.Effects); err != nil {
			return nil, 0, 0, fmt.Errorf("codec: post effects: %w", err)
		}
	}

	return pixels, h.width, h.height, nil
}

// EncodeFile encodes pixels and writes the result to path.
func (c *Codec) EncodeFile(pixels []Color, width, height int, path string) error {
	buf, err := c.Encode(pixels, width, height)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return fmt.Errorf("codec: write %s: %w", path, err)
	}
	return nil
}

// DecodeFile reads and decodes the GLIC file at path.
func (c *Codec) DecodeFile(path string) ([]Color, int, int, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("codec: read %s: %w", path, err)
	}
	return c.Decode(buf)
}
