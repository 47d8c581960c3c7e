package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"glic"
)

// NewInfoCmd builds the "info" subcommand: print a GLIC container's
// header fields without decoding its pixel data.
func NewInfoCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <input.glic>",
		Short: "print a GLIC container's header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("info: %w", err)
			}

			info, err := glic.Inspect(buf)
			if err != nil {
				return fmt.Errorf("info: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "size:       %dx%d\n", info.Width, info.Height)
			fmt.Fprintf(out, "colorSpace: %s\n", glic.ColorSpaceName(info.ColorSpace))
			fmt.Fprintf(out, "border:     %d,%d,%d\n", info.BorderR, info.BorderG, info.BorderB)
			fmt.Fprintf(out, "compressed: %t\n", info.Compressed)
			for p, ch := range info.Channels {
				fmt.Fprintf(out, "channel %d: prediction=%s quant=%d wavelet=%s encoding=%s segBytes=%d predBytes=%d dataBytes=%d\n",
					p, glic.PredictionName(ch.PredictionMethod), ch.QuantizationValue,
					glic.WaveletName(ch.WaveletType), glic.EncodingName(ch.EncodingMethod),
					info.Sizes[p].Segmentation, info.Sizes[p].Prediction, info.Sizes[p].Data)
			}
			return nil
		},
	}

	return cmd
}
