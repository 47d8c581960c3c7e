package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"glic"
)

// NewDecodeCmd builds the "decode" subcommand: read a GLIC container and
// write the reconstructed image as a PNG.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode <input.glic> <output.png>",
		Short: "decode a GLIC container into an image",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runID := uuid.NewString()
			logger := slog.With("run", runID, "cmd", "decode")

			input, output := args[0], args[1]

			codec := glic.NewCodec(glic.DefaultCodecConfig())

			logger.Info("decoding", "path", input)
			pixels, width, height, err := codec.DecodeFile(input)
			if err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			if err := savePixels(output, pixels, width, height); err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			logger.Info("wrote image", "path", output, "width", width, "height", height)
			return nil
		},
	}

	return cmd
}
