package glic

import "fmt"

const (
	magicValue    uint32 = 0x474C4332 // "GLC2"
	currentVersion uint16 = 1
	headerSize           = 64
	channelHeaderSize    = 32
)

// channelSizes holds the three byte-lengths (segmentation, prediction,
// image data) recorded in the header for one channel.
type channelSizes struct {
	segmentation uint32
	prediction   uint32
	data         uint32
}

// containerHeader is the parsed form of the 64-byte fixed header plus
// the three 32-byte channel config blocks that immediately follow it.
type containerHeader struct {
	width, height int
	colorSpace    ColorSpace
	borderR       uint8
	borderG       uint8
	borderB       uint8
	sizes         [3]channelSizes
	channels      [3]ChannelConfig
}

func putUint32BE(buf []byte, v uint32) {
	buf[0] = byte(v >> 24)
	buf[1] = byte(v >> 16)
	buf[2] = byte(v >> 8)
	buf[3] = byte(v)
}

// writeHeader assembles the 64-byte fixed header plus the three 32-byte
// channel blocks, matching the reference's exact push_back sequence.
func writeHeader(width, height int, cfg CodecConfig, sizes [3]channelSizes) []byte {
	buf := make([]byte, 0, headerSize+3*channelHeaderSize)

	var fixed [16]byte
	putUint32BE(fixed[0:4], magicValue)
	fixed[4] = byte(currentVersion >> 8)
	fixed[5] = byte(currentVersion)
	putUint32BE(fixed[6:10], uint32(width))
	putUint32BE(fixed[10:14], uint32(height))
	_ = fixed
	buf = append(buf, fixed[0:14]...)

	buf = append(buf, byte(cfg.ColorSpace))
	buf = append(buf, cfg.BorderColorR, cfg.BorderColorG, cfg.BorderColorB)

	for p := 0; p < 3; p++ {
		var b [4]byte
		putUint32BE(b[:], sizes[p].segmentation)
		buf = append(buf, b[:]...)
	}
	for p := 0; p < 3; p++ {
		var b [4]byte
		putUint32BE(b[:], sizes[p].prediction)
		buf = append(buf, b[:]...)
	}
	for p := 0; p < 3; p++ {
		var b [4]byte
		putUint32BE(b[:], sizes[p].data)
		buf = append(buf, b[:]...)
	}

	for len(buf) < headerSize {
		buf = append(buf, 0)
	}

	for p := 0; p < 3; p++ {
		ch := cfg.Channels[p]
		start := len(buf)
		buf = append(buf, byte(int8(ch.PredictionMethod)))
		buf = append(buf, byte(ch.QuantizationValue))
		buf = append(buf, byte(ch.ClampMethod))
		buf = append(buf, byte(ch.WaveletType))
		buf = append(buf, byte(ch.TransformType))
		var scale [4]byte
		putUint32BE(scale[:], uint32(int32(ch.TransformScale)))
		buf = append(buf, scale[:]...)
		buf = append(buf, byte(ch.EncodingMethod))
		for len(buf) < start+channelHeaderSize {
			buf = append(buf, 0)
		}
	}

	return buf
}

// readHeader parses the fixed header and three channel config blocks
// from the front of buf, returning the decoded fields and the byte
// offset immediately following the last channel block.
func readHeader(buf []byte) (containerHeader, int, error) {
	var h containerHeader
	if len(buf) < headerSize+3*channelHeaderSize {
		return h, 0, fmt.Errorf("container: %w", ErrTruncatedInput)
	}

	pos := 0
	magic := uint32(buf[0])<<24 | uint32(buf[1])<<16 | uint32(buf[2])<<8 | uint32(buf[3])
	pos += 4
	if magic != magicValue {
		return h, 0, fmt.Errorf("container: %w", ErrBadMagic)
	}

	version := uint16(buf[pos])<<8 | uint16(buf[pos+1])
	pos += 2
	if version != currentVersion {
		return h, 0, fmt.Errorf("container: version %d: %w", version, ErrBadVersion)
	}

	h.width = int(uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3]))
	pos += 4
	h.height = int(uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3]))
	pos += 4

	h.colorSpace = ColorSpace(buf[pos])
	if h.colorSpace >= colorSpaceCount {
		return h, 0, fmt.Errorf("container: color space %d: %w", h.colorSpace, ErrUnsupportedEnum)
	}
	pos++
	h.borderR, h.borderG, h.borderB = buf[pos], buf[pos+1], buf[pos+2]
	pos += 3

	for p := 0; p < 3; p++ {
		h.sizes[p].segmentation = uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3])
		pos += 4
	}
	for p := 0; p < 3; p++ {
		h.sizes[p].prediction = uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3])
		pos += 4
	}
	for p := 0; p < 3; p++ {
		h.sizes[p].data = uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3])
		pos += 4
	}

	pos = headerSize

	for p := 0; p < 3; p++ {
		var ch ChannelConfig
		ch.PredictionMethod = PredictionMethod(int8(buf[pos]))
		pos++
		ch.QuantizationValue = int(buf[pos])
		pos++
		ch.ClampMethod = ClampMethod(buf[pos])
		pos++
		ch.WaveletType = WaveletType(buf[pos])
		pos++
		ch.TransformType = TransformType(buf[pos])
		pos++
		ch.TransformScale = int(int32(uint32(buf[pos])<<24 | uint32(buf[pos+1])<<16 | uint32(buf[pos+2])<<8 | uint32(buf[pos+3])))
		pos += 4
		ch.EncodingMethod = EncodingMethod(buf[pos])
		pos++
		pos += channelHeaderSize - 10
		if ch.PredictionMethod < RANDOM || ch.PredictionMethod >= predictionCount ||
			ch.ClampMethod > ClampMod256 ||
			(ch.TransformType > TransformWPT && ch.TransformType != TransformRandom) ||
			WaveletName(ch.WaveletType) == "" || ch.EncodingMethod >= encodingCount {
			return h, 0, fmt.Errorf("container: channel %d config: %w", p, ErrUnsupportedEnum)
		}
		h.channels[p] = ch
	}

	return h, pos, nil
}

// ContainerInfo is the subset of a GLIC container's header a caller can
// inspect without decoding the image data.
type ContainerInfo struct {
	Width, Height int
	ColorSpace    ColorSpace
	BorderR       uint8
	BorderG       uint8
	BorderB       uint8
	Channels      [3]ChannelConfig
	Sizes         [3]struct {
		Segmentation, Prediction, Data uint32
	}
	Compressed bool
}

// Inspect parses buf's header without decoding pixel data, transparently
// looking through a zstd container wrapper the same way Decode does.
func Inspect(buf []byte) (ContainerInfo, error) {
	var info ContainerInfo
	if isZstdFrame(buf) {
		info.Compressed = true
		decompressed, err := decompressZstd(buf)
		if err != nil {
			return info, fmt.Errorf("container: inspect: %w", err)
		}
		buf = decompressed
	}

	h, _, err := readHeader(buf)
	if err != nil {
		return info, err
	}
	info.Width, info.Height = h.width, h.height
	info.ColorSpace = h.colorSpace
	info.BorderR, info.BorderG, info.BorderB = h.borderR, h.borderG, h.borderB
	info.Channels = h.channels
	for p := 0; p < 3; p++ {
		info.Sizes[p].Segmentation = h.sizes[p].segmentation
		info.Sizes[p].Prediction = h.sizes[p].prediction
		info.Sizes[p].Data = h.sizes[p].data
	}
	return info, nil
}
