package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"glic"
)

// addChannelFlags registers one set of shared per-channel flags plus
// one --channelN-* override set per channel, mirroring the original's
// safeStoi/safeStof/parseRGB command-line knobs.
func addChannelFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("color-space", "", "color space (e.g. YCBCR, OHTA, LAB)")
	f.String("border", "", "border color as R,G,B")
	f.Bool("compress", false, "apply a zstd pass over the assembled container")

	f.String("prediction", "", "prediction method, applied to channels with no --channelN-prediction override")
	f.Int("quant", 0, "quantization value (0-255), 0 keeps the default")
	f.String("wavelet", "", "wavelet filter bank")
	f.String("transform", "", "transform type (FWT or WPT)")
	f.String("encoding", "", "entropy coding method")

	for ch := 0; ch < 3; ch++ {
		prefix := fmt.Sprintf("channel%d-", ch)
		f.String(prefix+"prediction", "", "prediction method override for this channel")
		f.Int(prefix+"quant", 0, "quantization value override for this channel")
		f.String(prefix+"wavelet", "", "wavelet filter bank override for this channel")
		f.String(prefix+"transform", "", "transform type override for this channel")
		f.String(prefix+"encoding", "", "entropy coding method override for this channel")
	}
}

// applyPreset seeds cfg from one of the named presets before per-flag
// overrides are layered on top, mirroring setBlocksForQuality's
// quality-to-preset mapping in spirit.
func applyPreset(cfg *glic.CodecConfig, name string) {
	switch name {
	case "low":
		for i := range cfg.Channels {
			cfg.Channels[i].QuantizationValue = 200
			cfg.Channels[i].EncodingMethod = glic.EncRLE
		}
	case "medium":
		// DefaultCodecConfig's values already land here.
	case "high":
		for i := range cfg.Channels {
			cfg.Channels[i].QuantizationValue = 40
			cfg.Channels[i].EncodingMethod = glic.EncDelta
		}
	case "glitch":
		for i := range cfg.Channels {
			cfg.Channels[i].PredictionMethod = glic.RANDOM
			cfg.Channels[i].QuantizationValue = 160
		}
	}
}

// applyChannelFlags layers --color-space/--border/--compress and the
// shared and per-channel prediction/quant/wavelet/transform/encoding
// flags onto cfg, in that order, so a --channelN-* flag always wins
// over the shared flag of the same kind.
func applyChannelFlags(cmd *cobra.Command, cfg *glic.CodecConfig) error {
	f := cmd.Flags()

	if v, _ := f.GetString("color-space"); v != "" {
		cs, ok := glic.ColorSpaceFromName(v)
		if !ok {
			return fmt.Errorf("unknown color space %q", v)
		}
		cfg.ColorSpace = cs
	}

	if v, _ := f.GetString("border"); v != "" {
		var r, g, b int
		if _, err := fmt.Sscanf(v, "%d,%d,%d", &r, &g, &b); err != nil {
			return fmt.Errorf("invalid --border %q: %w", v, err)
		}
		cfg.BorderColorR, cfg.BorderColorG, cfg.BorderColorB = uint8(r), uint8(g), uint8(b)
	}

	if v, _ := f.GetBool("compress"); v {
		cfg.ContainerCompression = true
	}

	sharedPrediction, _ := f.GetString("prediction")
	sharedQuant, _ := f.GetInt("quant")
	sharedWavelet, _ := f.GetString("wavelet")
	sharedTransform, _ := f.GetString("transform")
	sharedEncoding, _ := f.GetString("encoding")

	for ch := 0; ch < 3; ch++ {
		prefix := fmt.Sprintf("channel%d-", ch)

		prediction, _ := f.GetString(prefix + "prediction")
		if prediction == "" {
			prediction = sharedPrediction
		}
		if prediction != "" {
			pm, ok := glic.PredictionFromName(prediction)
			if !ok {
				return fmt.Errorf("unknown prediction method %q", prediction)
			}
			cfg.Channels[ch].PredictionMethod = pm
		}

		quant, _ := f.GetInt(prefix + "quant")
		if quant == 0 {
			quant = sharedQuant
		}
		if quant != 0 {
			cfg.Channels[ch].QuantizationValue = quant
		}

		wavelet, _ := f.GetString(prefix + "wavelet")
		if wavelet == "" {
			wavelet = sharedWavelet
		}
		if wavelet != "" {
			wt, ok := glic.WaveletTypeFromName(wavelet)
			if !ok {
				return fmt.Errorf("unknown wavelet %q", wavelet)
			}
			cfg.Channels[ch].WaveletType = wt
		}

		transform, _ := f.GetString(prefix + "transform")
		if transform == "" {
			transform = sharedTransform
		}
		if transform != "" {
			switch transform {
			case "FWT":
				cfg.Channels[ch].TransformType = glic.TransformFWT
			case "WPT":
				cfg.Channels[ch].TransformType = glic.TransformWPT
			default:
				return fmt.Errorf("unknown transform type %q", transform)
			}
		}

		encoding, _ := f.GetString(prefix + "encoding")
		if encoding == "" {
			encoding = sharedEncoding
		}
		if encoding != "" {
			em, ok := glic.EncodingFromName(encoding)
			if !ok {
				return fmt.Errorf("unknown encoding method %q", encoding)
			}
			cfg.Channels[ch].EncodingMethod = em
		}
	}

	return nil
}
