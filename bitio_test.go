package glic

import (
	"math/rand"
	"testing"
)

func TestBitWriterReaderRoundTrip(t *testing.T) {
	w := NewBitWriter()
	w.WriteBit(true)
	w.WriteBit(false)
	w.WriteBits(0x2A, 6)
	w.WriteByte(0xAB)
	w.WriteInt(-5, 8)
	w.Align()

	r := NewBitReader(w.Bytes())
	bit, err := r.ReadBit()
	if err != nil || bit != true {
		t.Fatalf("bit 0 = %v, %v", bit, err)
	}
	bit, err = r.ReadBit()
	if err != nil || bit != false {
		t.Fatalf("bit 1 = %v, %v", bit, err)
	}
	v, err := r.ReadBits(6)
	if err != nil || v != 0x2A {
		t.Fatalf("6 bits = %v, %v", v, err)
	}
	b, err := r.ReadByte()
	if err != nil || b != 0xAB {
		t.Fatalf("byte = %v, %v", b, err)
	}
	i, err := r.ReadInt(true, 8)
	if err != nil || i != -5 {
		t.Fatalf("signed int = %v, %v", i, err)
	}
}

func TestBitReaderTruncated(t *testing.T) {
	r := NewBitReader([]byte{0xFF})
	if _, err := r.ReadBits(16); err == nil {
		t.Fatal("expected truncated read error")
	}
}

func TestBitWriterRandomRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var widths []uint8
	var values []uint64
	w := NewBitWriter()
	for i := 0; i < 500; i++ {
		n := uint8(rng.Intn(33))
		var v uint64
		if n > 0 {
			v = uint64(rng.Int63()) & ((1 << n) - 1)
		}
		widths = append(widths, n)
		values = append(values, v)
		w.WriteBits(v, n)
	}
	w.Align()

	r := NewBitReader(w.Bytes())
	for i, n := range widths {
		got, err := r.ReadBits(n)
		if err != nil {
			t.Fatalf("read %d: %v", i, err)
		}
		if got != values[i] {
			t.Fatalf("read %d: got %d want %d (n=%d)", i, got, values[i], n)
		}
	}
}

func TestBitWriterAlignPadsZero(t *testing.T) {
	w := NewBitWriter()
	w.WriteBits(0x7, 3)
	w.Align()
	if len(w.Bytes()) != 1 {
		t.Fatalf("expected 1 byte, got %d", len(w.Bytes()))
	}
	if w.Bytes()[0] != 0xE0 {
		t.Fatalf("expected 0xE0, got %#x", w.Bytes()[0])
	}
}

func TestBitReaderEof(t *testing.T) {
	r := NewBitReader([]byte{0x00})
	if r.Eof() {
		t.Fatal("should not be eof before reading")
	}
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if !r.Eof() {
		t.Fatal("should be eof after consuming the only byte")
	}
}
