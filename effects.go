package glic

// EffectType names a post-processing filter applied to a decoded pixel
// buffer. Ordinals match the reference implementation's enum, for
// wire/name compatibility with any preset that references them by
// number. GLIC ships no concrete filter bodies (see Effect); a caller
// that wants pixelation, scanlines, dithering, and so on supplies its
// own implementation.
type EffectType uint8

const (
	EffectNone EffectType = iota
	EffectPixelate
	EffectScanline
	EffectChromaticAberration
	EffectDither
	EffectPosterize
	EffectGlitchShift
	EffectDCTCorrupt
	EffectPixelSort
	EffectPredictionLeak
	effectCount
)

var effectNames = [effectCount]string{
	EffectNone: "NONE", EffectPixelate: "PIXELATE", EffectScanline: "SCANLINE",
	EffectChromaticAberration: "CHROMATIC_ABERRATION", EffectDither: "DITHER",
	EffectPosterize: "POSTERIZE", EffectGlitchShift: "GLITCH_SHIFT",
	EffectDCTCorrupt: "DCT_CORRUPT", EffectPixelSort: "PIXEL_SORT",
	EffectPredictionLeak: "PREDICTION_LEAK",
}

// EffectName returns the wire name for et, or "" if out of range.
func EffectName(et EffectType) string {
	if et >= effectCount {
		return ""
	}
	return effectNames[et]
}

// EffectFromName is EffectName's inverse, returning ok=false for an
// unrecognized name.
func EffectFromName(name string) (EffectType, bool) {
	for i, n := range effectNames {
		if n == name {
			return EffectType(i), true
		}
	}
	return 0, false
}

// Effect is the boundary a decoded pixel buffer crosses for
// post-processing. GLIC defines the type so a PostEffectsConfig can be
// typed and serialized, but leaves filter bodies to callers.
type Effect interface {
	Type() EffectType
	Apply(pixels []Color, width, height int) error
}

// PostEffectsConfig mirrors the reference's PostEffectsConfig: an
// ordered chain of effects applied to Codec.Decode's output pixels when
// Enabled is set.
type PostEffectsConfig struct {
	Effects []Effect
	Enabled bool
}

// ApplyEffects runs each effect in order over pixels, stopping at the
// first error.
func ApplyEffects(pixels []Color, width, height int, effects []Effect) error {
	for _, e := range effects {
		if err := e.Apply(pixels, width, height); err != nil {
			return err
		}
	}
	return nil
}
