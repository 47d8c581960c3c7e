package glic

import "testing"

// roundTripColorSpaces lists the spaces whose To/From pair is expected to
// approximately recover the original RGB, within int-rounding tolerance.
// GS is intentionally excluded: toGS/fromGS collapse to luma by design and
// are not meant to invert.
var roundTripColorSpaces = []ColorSpace{
	OHTA, CMY, HSB, XYZ, YXY, HCL, LUV, LAB, HWB, RGGBG, YPbPr, YCbCr, YDbDr, YUV,
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestColorSpaceRoundTrip(t *testing.T) {
	samples := []Color{
		MakeColor(0, 0, 0),
		MakeColor(255, 255, 255),
		MakeColor(255, 0, 0),
		MakeColor(0, 255, 0),
		MakeColor(0, 0, 255),
		MakeColor(128, 64, 200),
		MakeColor(17, 231, 99),
	}

	for _, cs := range roundTripColorSpaces {
		for _, c := range samples {
			encoded := ToColorSpace(c, cs)
			decoded := FromColorSpace(encoded, cs)

			const tol = 3
			if absDiff(GetR(decoded), GetR(c)) > tol ||
				absDiff(GetG(decoded), GetG(c)) > tol ||
				absDiff(GetB(decoded), GetB(c)) > tol {
				t.Errorf("colorSpace %s: round trip of %v via %v got %v, want close to original",
					ColorSpaceName(cs), c, encoded, decoded)
			}
		}
	}
}

func TestColorSpaceRGBAndUnknownAreIdentity(t *testing.T) {
	c := MakeColor(10, 20, 30)
	if got := ToColorSpace(c, RGB); got != c {
		t.Fatalf("RGB ToColorSpace should be identity, got %v", got)
	}
	if got := FromColorSpace(c, RGB); got != c {
		t.Fatalf("RGB FromColorSpace should be identity, got %v", got)
	}
}

func TestToGSCollapsesToLuma(t *testing.T) {
	c := MakeColor(10, 200, 30)
	gs := toGS(c)
	if GetR(gs) != GetG(gs) || GetG(gs) != GetB(gs) {
		t.Fatalf("toGS should produce equal channels, got %v", gs)
	}
}
