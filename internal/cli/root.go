package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/welltie/dataset"
	"github.com/katalvlaran/welltie/pipeline"
)

// NewRoot constructs the root command. Logs go to logOut.
func NewRoot(logOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "welltie",
		Short:         "Build windowed seismic/well-log training datasets",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("log-level", os.Getenv("WELLTIE_LOG_LEVEL"), "Log level: debug|info|warn|error")
	root.PersistentFlags().String("log-format", os.Getenv("WELLTIE_LOG_FORMAT"), "Log format: text|json (default text)")
	root.AddCommand(newBuildCommand(logOut))
	root.AddCommand(newConfigCommand())

	return root
}

func newBuildCommand(logOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Assemble the dataset described by a JSON config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			out, _ := cmd.Flags().GetString("out")
			level, _ := cmd.Flags().GetString("log-level")
			format, _ := cmd.Flags().GetString("log-format")

			logger, err := newLogger(logOut, level, format)
			if err != nil {
				return err
			}
			cfg, err := pipeline.Load(cfgPath)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			if cmd.Flags().Changed("width") {
				cfg.Width, _ = cmd.Flags().GetInt("width")
			}
			if cmd.Flags().Changed("step") {
				cfg.Step, _ = cmd.Flags().GetInt("step")
			}
			if cmd.Flags().Changed("workers") {
				cfg.Workers, _ = cmd.Flags().GetInt("workers")
			}

			in, err := pipeline.LoadInputs(cfg)
			if err != nil {
				return fmt.Errorf("inputs: %w", err)
			}
			ds, rep, err := pipeline.Run(cfg, in, logger)
			if err != nil {
				return err
			}
			for _, s := range rep.Skips {
				logger.Warn("well skipped", slog.String("well", s.Well), slog.String("stage", string(s.Stage)), slog.String("reason", s.Err.Error()))
			}

			return writeDataset(out, cmd.OutOrStdout(), ds)
		},
	}
	cmd.Flags().String("config", "", "Path to JSON config (defaults apply when empty)")
	cmd.Flags().String("out", "-", "Output CSV path; '-' for stdout, '.zst' suffix compresses")
	cmd.Flags().Int("width", 0, "Override window width")
	cmd.Flags().Int("step", 0, "Override step between window centers")
	cmd.Flags().Int("workers", 0, "Override number of wells sliced concurrently")

	return cmd
}

func newConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), pipeline.Default())
		},
	}
}

// writeDataset writes ds as CSV to path ("-" is stdout), zstd-compressed
// when the path ends in .zst.
func writeDataset(path string, stdout io.Writer, ds *dataset.Dataset) (err error) {
	var w io.Writer = stdout
	if path != "-" && path != "" {
		f, ferr := os.Create(path)
		if ferr != nil {
			return ferr
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}
	if !strings.HasSuffix(path, ".zst") {
		return ds.WriteCSV(w)
	}

	zw, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := ds.WriteCSV(zw); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lv slog.Level
	switch strings.ToLower(level) {
	case "", "info":
		lv = slog.LevelInfo
	case "debug":
		lv = slog.LevelDebug
	case "warn", "warning":
		lv = slog.LevelWarn
	case "error":
		lv = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid --log-level %q; use debug|info|warn|error", level)
	}
	opts := &slog.HandlerOptions{Level: lv}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q; use text|json", format)
	}
}
