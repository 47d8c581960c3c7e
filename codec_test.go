package glic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTestPixels(width, height int) []Color {
	pixels := make([]Color, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			pixels[y*width+x] = MakeColor(
				uint8((x*37+y*11)%256),
				uint8((x*13+y*29)%256),
				uint8((x*7+y*53)%256),
			)
		}
	}
	return pixels
}

func TestCodecEncodeDecodeRoundTripDefaultConfig(t *testing.T) {
	width, height := 16, 12
	pixels := makeTestPixels(width, height)

	codec := NewCodec(DefaultCodecConfig())
	buf, err := codec.Encode(pixels, width, height)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	got, gotW, gotH, err := codec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)
	require.Len(t, got, width*height)
}

func TestCodecEncodeDecodeNoWaveletNoQuant(t *testing.T) {
	width, height := 8, 8
	pixels := makeTestPixels(width, height)

	cfg := DefaultCodecConfig()
	for i := range cfg.Channels {
		cfg.Channels[i].WaveletType = WaveletNone
		cfg.Channels[i].QuantizationValue = 0
		cfg.Channels[i].PredictionMethod = NONE
		cfg.Channels[i].EncodingMethod = EncRaw
	}
	cfg.ColorSpace = RGB

	codec := NewCodec(cfg)
	buf, err := codec.Encode(pixels, width, height)
	require.NoError(t, err)

	got, gotW, gotH, err := codec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)

	for i, c := range pixels {
		require.Equal(t, GetR(c), GetR(got[i]), "pixel %d red", i)
		require.Equal(t, GetG(c), GetG(got[i]), "pixel %d green", i)
		require.Equal(t, GetB(c), GetB(got[i]), "pixel %d blue", i)
	}
}

func TestCodecContainerCompressionRoundTrip(t *testing.T) {
	width, height := 20, 14
	pixels := makeTestPixels(width, height)

	cfg := DefaultCodecConfig()
	cfg.ContainerCompression = true
	codec := NewCodec(cfg)

	buf, err := codec.Encode(pixels, width, height)
	require.NoError(t, err)
	require.True(t, isZstdFrame(buf))

	got, gotW, gotH, err := codec.Decode(buf)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)
	require.Len(t, got, width*height)
}

func TestCodecDecodeAutoDetectsCompressionRegardlessOfConfig(t *testing.T) {
	width, height := 10, 10
	pixels := makeTestPixels(width, height)

	encodeCfg := DefaultCodecConfig()
	encodeCfg.ContainerCompression = true
	buf, err := NewCodec(encodeCfg).Encode(pixels, width, height)
	require.NoError(t, err)

	decodeCfg := DefaultCodecConfig()
	decodeCfg.ContainerCompression = false
	_, gotW, gotH, err := NewCodec(decodeCfg).Decode(buf)
	require.NoError(t, err)
	require.Equal(t, width, gotW)
	require.Equal(t, height, gotH)
}

func TestCodecDecodeRejectsTruncatedInput(t *testing.T) {
	width, height := 8, 8
	pixels := makeTestPixels(width, height)
	buf, err := NewCodec(DefaultCodecConfig()).Encode(pixels, width, height)
	require.NoError(t, err)

	_, _, _, err = NewCodec(DefaultCodecConfig()).Decode(buf[:len(buf)/2])
	require.Error(t, err)
}

func TestCodecPostEffectsApplied(t *testing.T) {
	width, height := 6, 6
	pixels := makeTestPixels(width, height)

	codec := NewCodec(DefaultCodecConfig())
	buf, err := codec.Encode(pixels, width, height)
	require.NoError(t, err)

	applied := false
	codec.SetPostEffects(PostEffectsConfig{
		Enabled: true,
		Effects: []Effect{fakeEffect{onApply: func() { applied = true }}},
	})

	_, _, _, err = codec.Decode(buf)
	require.NoError(t, err)
	require.True(t, applied)
}

type fakeEffect struct {
	onApply func()
}

func (fakeEffect) Type() EffectType { return EffectNone }

func (f fakeEffect) Apply(pixels []Color, width, height int) error {
	if f.onApply != nil {
		f.onApply()
	}
	return nil
}
