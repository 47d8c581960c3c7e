package glic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInspectReportsHeaderFields(t *testing.T) {
	width, height := 24, 18
	pixels := makeTestPixels(width, height)

	cfg := DefaultCodecConfig()
	cfg.ColorSpace = YCbCr
	buf, err := NewCodec(cfg).Encode(pixels, width, height)
	require.NoError(t, err)

	info, err := Inspect(buf)
	require.NoError(t, err)
	require.Equal(t, width, info.Width)
	require.Equal(t, height, info.Height)
	require.Equal(t, YCbCr, info.ColorSpace)
	require.False(t, info.Compressed)
	for p, ch := range info.Channels {
		require.Equal(t, cfg.Channels[p].PredictionMethod, ch.PredictionMethod)
		require.Equal(t, cfg.Channels[p].WaveletType, ch.WaveletType)
	}
}

func TestInspectSeesThroughCompression(t *testing.T) {
	width, height := 10, 10
	pixels := makeTestPixels(width, height)

	cfg := DefaultCodecConfig()
	cfg.ContainerCompression = true
	buf, err := NewCodec(cfg).Encode(pixels, width, height)
	require.NoError(t, err)

	info, err := Inspect(buf)
	require.NoError(t, err)
	require.True(t, info.Compressed)
	require.Equal(t, width, info.Width)
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	buf := make([]byte, headerSize+3*channelHeaderSize)
	buf[0] = 0xFF
	_, _, err := readHeader(buf)
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestReadHeaderRejectsBadVersion(t *testing.T) {
	var sizes [3]channelSizes
	cfg := DefaultCodecConfig()
	buf := writeHeader(4, 4, cfg, sizes)
	buf[4], buf[5] = 0xFF, 0xFF
	_, _, err := readHeader(buf)
	require.ErrorIs(t, err, ErrBadVersion)
}

func TestWriteHeaderRoundTrip(t *testing.T) {
	cfg := DefaultCodecConfig()
	cfg.BorderColorR, cfg.BorderColorG, cfg.BorderColorB = 10, 20, 30
	sizes := [3]channelSizes{
		{segmentation: 1, prediction: 2, data: 3},
		{segmentation: 4, prediction: 5, data: 6},
		{segmentation: 7, prediction: 8, data: 9},
	}
	buf := writeHeader(100, 200, cfg, sizes)

	h, pos, err := readHeader(buf)
	require.NoError(t, err)
	require.Equal(t, 100, h.width)
	require.Equal(t, 200, h.height)
	require.Equal(t, uint8(10), h.borderR)
	require.Equal(t, uint8(20), h.borderG)
	require.Equal(t, uint8(30), h.borderB)
	require.Equal(t, sizes, h.sizes)
	require.Equal(t, headerSize+3*channelHeaderSize, pos)
}
