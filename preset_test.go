package glic

import (
	"strings"
	"testing"
)

func TestJSONPresetLoaderOverridesDefaults(t *testing.T) {
	doc := `{
		"colorSpace": "YCbCr",
		"borderColorR": 1, "borderColorG": 2, "borderColorB": 3,
		"containerCompression": true,
		"channels": [
			{"predictionMethod": "AVG", "quantizationValue": 50, "waveletType": "HAAR", "encodingMethod": "RLE"},
			{},
			{}
		]
	}`

	cfg, err := JSONPresetLoader{}.Load(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ColorSpace != YCbCr {
		t.Errorf("ColorSpace = %v, want YCbCr", cfg.ColorSpace)
	}
	if cfg.BorderColorR != 1 || cfg.BorderColorG != 2 || cfg.BorderColorB != 3 {
		t.Errorf("border = %d,%d,%d, want 1,2,3", cfg.BorderColorR, cfg.BorderColorG, cfg.BorderColorB)
	}
	if !cfg.ContainerCompression {
		t.Error("ContainerCompression should be true")
	}
	if cfg.Channels[0].PredictionMethod != AVG {
		t.Errorf("channel 0 prediction = %v, want AVG", cfg.Channels[0].PredictionMethod)
	}
	if cfg.Channels[0].WaveletType != Haar {
		t.Errorf("channel 0 wavelet = %v, want Haar", cfg.Channels[0].WaveletType)
	}
	if cfg.Channels[0].EncodingMethod != EncRLE {
		t.Errorf("channel 0 encoding = %v, want RLE", cfg.Channels[0].EncodingMethod)
	}

	// unspecified channels keep the defaults
	def := DefaultChannelConfig()
	if cfg.Channels[1].PredictionMethod != def.PredictionMethod {
		t.Errorf("channel 1 prediction = %v, want default %v", cfg.Channels[1].PredictionMethod, def.PredictionMethod)
	}
}

func TestJSONPresetLoaderRejectsMalformedJSON(t *testing.T) {
	_, err := JSONPresetLoader{}.Load(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
