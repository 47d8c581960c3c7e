package glic

import (
	"encoding/json"
	"fmt"
	"io"
)

// PresetLoader is the boundary a serialized preset crosses on its way
// to a CodecConfig. The reference implementation parses a Java
// serialized HashMap; GLIC does not implement that wire format, but
// keeps the interface so any future concrete loader (including one that
// someday reads that format) plugs in the same way.
type PresetLoader interface {
	Load(r io.Reader) (CodecConfig, error)
}

// jsonPresetChannel mirrors ChannelConfig field-for-field for JSON
// (de)serialization, using the wire names a human-edited preset would
// use rather than exposing Go field names directly.
type jsonPresetChannel struct {
	MinBlockSize          int     `json:"minBlockSize"`
	MaxBlockSize          int     `json:"maxBlockSize"`
	SegmentationPrecision float64 `json:"segmentationPrecision"`
	PredictionMethod      string  `json:"predictionMethod"`
	QuantizationValue     int     `json:"quantizationValue"`
	ClampMethod           string  `json:"clampMethod"`
	TransformType         string  `json:"transformType"`
	WaveletType           string  `json:"waveletType"`
	TransformCompress     float64 `json:"transformCompress"`
	TransformScale        int     `json:"transformScale"`
	EncodingMethod        string  `json:"encodingMethod"`
}

type jsonPreset struct {
	ColorSpace            string              `json:"colorSpace"`
	BorderColorR          uint8               `json:"borderColorR"`
	BorderColorG          uint8               `json:"borderColorG"`
	BorderColorB          uint8               `json:"borderColorB"`
	ContainerCompression  bool                `json:"containerCompression"`
	Channels              [3]jsonPresetChannel `json:"channels"`
}

func clampMethodFromName(name string) (ClampMethod, bool) {
	switch name {
	case "NONE":
		return ClampNone, true
	case "MOD256":
		return ClampMod256, true
	}
	return 0, false
}

func transformTypeFromName(name string) (TransformType, bool) {
	switch name {
	case "FWT":
		return TransformFWT, true
	case "WPT":
		return TransformWPT, true
	case "RANDOM":
		return TransformRandom, true
	}
	return 0, false
}

// JSONPresetLoader reads a CodecConfig from a JSON document. This is
// the one concrete loader GLIC ships: JSON is the natural Go-ecosystem
// analogue of the original's Java-serialized preset file, without
// implementing that file format itself.
type JSONPresetLoader struct{}

func (JSONPresetLoader) Load(r io.Reader) (CodecConfig, error) {
	var jp jsonPreset
	if err := json.NewDecoder(r).Decode(&jp); err != nil {
		return CodecConfig{}, fmt.Errorf("preset: decode: %w", err)
	}

	cfg := DefaultCodecConfig()

	if cs, ok := ColorSpaceFromName(jp.ColorSpace); ok {
		cfg.ColorSpace = cs
	}
	if jp.BorderColorR != 0 || jp.BorderColorG != 0 || jp.BorderColorB != 0 {
		cfg.BorderColorR = jp.BorderColorR
		cfg.BorderColorG = jp.BorderColorG
		cfg.BorderColorB = jp.BorderColorB
	}
	cfg.ContainerCompression = jp.ContainerCompression

	for i, jc := range jp.Channels {
		ch := cfg.Channels[i]
		if jc.MinBlockSize > 0 {
			ch.MinBlockSize = jc.MinBlockSize
		}
		if jc.MaxBlockSize > 0 {
			ch.MaxBlockSize = jc.MaxBlockSize
		}
		if jc.SegmentationPrecision > 0 {
			ch.SegmentationPrecision = jc.SegmentationPrecision
		}
		if pm, ok := PredictionFromName(jc.PredictionMethod); ok {
			ch.PredictionMethod = pm
		}
		if jc.QuantizationValue > 0 {
			ch.QuantizationValue = jc.QuantizationValue
		}
		if cm, ok := clampMethodFromName(jc.ClampMethod); ok {
			ch.ClampMethod = cm
		}
		if tt, ok := transformTypeFromName(jc.TransformType); ok {
			ch.TransformType = tt
		}
		if wt, ok := WaveletTypeFromName(jc.WaveletType); ok {
			ch.WaveletType = wt
		}
		if jc.TransformCompress > 0 {
			ch.TransformCompress = jc.TransformCompress
		}
		if jc.TransformScale > 0 {
			ch.TransformScale = jc.TransformScale
		}
		if em, ok := EncodingFromName(jc.EncodingMethod); ok {
			ch.EncodingMethod = em
		}
		cfg.Channels[i] = ch
	}

	return cfg, nil
}
