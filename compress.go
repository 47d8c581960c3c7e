package glic

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

var zstdEncPool = sync.Pool{
	New: func() any { return mustNewZstdEncoder() },
}

var zstdDecPool = sync.Pool{
	New: func() any { return mustNewZstdDecoder() },
}

// compressZstd wraps a fully assembled GLIC container in a zstd frame,
// used when CodecConfig.ContainerCompression is set. The header and
// per-channel streams already carry their own bit-packed entropy coding;
// this pass catches whatever redundancy remains across channels.
func compressZstd(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	enc := zstdEncPool.Get().(*zstd.Encoder)
	out := enc.EncodeAll(data, nil)
	zstdEncPool.Put(enc)
	return out, nil
}

var zstdFrameMagic = [4]byte{0x28, 0xB5, 0x2F, 0xFD}

// isZstdFrame reports whether buf opens with the zstd frame magic,
// letting Decode transparently inflate a compressed container without
// the caller having to remember it was written with
// ContainerCompression set.
func isZstdFrame(buf []byte) bool {
	return len(buf) >= 4 &&
		buf[0] == zstdFrameMagic[0] && buf[1] == zstdFrameMagic[1] &&
		buf[2] == zstdFrameMagic[2] && buf[3] == zstdFrameMagic[3]
}

// decompressZstd reverses compressZstd.
func decompressZstd(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return data, nil
	}
	dec := zstdDecPool.Get().(*zstd.Decoder)
	out, err := dec.DecodeAll(data, nil)
	zstdDecPool.Put(dec)
	if err != nil {
		return nil, err
	}
	return out, nil
}
