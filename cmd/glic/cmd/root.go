package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewRoot builds the glic CLI's command tree.
func NewRoot(ctx context.Context) *cobra.Command {
	root := &cobra.Command{
		Use:   "glic",
		Short: "encode and decode GLIC images",
		Long:  "glic encodes and decodes the GLIC glitch image codec format.",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(cmd)
		},
	}

	root.AddCommand(
		NewEncodeCmd(ctx),
		NewDecodeCmd(ctx),
		NewInfoCmd(ctx),
	)

	pf := root.PersistentFlags()
	pf.String("log-level", "INFO", "log level (DEBUG, INFO, WARN, ERROR)")
	pf.String("log-file", "", "rotate logs through this file instead of stderr")
	return root
}

func configureLogging(cmd *cobra.Command) {
	logLevelFlag, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(logLevelFlag))); err != nil {
		level = slog.LevelInfo
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		out = &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50,
			MaxBackups: 5,
			MaxAge:     28,
		}
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}
