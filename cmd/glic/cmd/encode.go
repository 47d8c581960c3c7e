package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"glic"
)

// NewEncodeCmd builds the "encode" subcommand: read an input image,
// apply a preset and any flag overrides, and write a GLIC container.
func NewEncodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode <input> <output.glic>",
		Short: "encode an image into a GLIC container",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			logger := slog.With("run", runID, "cmd", "encode")

			input, output := args[0], args[1]

			preset, _ := cmd.Flags().GetString("preset")
			cfg := glic.DefaultCodecConfig()
			if preset != "" {
				applyPreset(&cfg, preset)
			}
			if err := applyChannelFlags(cmd, &cfg); err != nil {
				return err
			}

			logger.Info("loading image", "path", input)
			pixels, width, height, err := loadPixels(input)
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			codec := glic.NewCodec(cfg)
			logger.Info("encoding", "width", width, "height", height, "colorSpace", glic.ColorSpaceName(cfg.ColorSpace))
			if err := codec.EncodeFile(pixels, width, height, output); err != nil {
				return fmt.Errorf("encode: %w", err)
			}

			logger.Info("wrote container", "path", output)
			return nil
		},
	}

	addChannelFlags(cmd)
	cmd.Flags().String("preset", "", "starting preset (low, medium, high, glitch)")
	return cmd
}
