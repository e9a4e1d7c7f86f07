// Command figures regenerates the SVG figures of the thesis.
//
// Usage:
//
//	figures render [figure ...]
//	figures list
//	figures font
//
// Without arguments render writes every figure into the output directory.
//
// Examples:
//
//	figures render
//	figures render zerocross --out build/img
//	figures font --font "Ioskeley Mono" --log-level debug
//	figures render --config figures.yaml
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-figures/chart"
	"github.com/cwbudde/algo-figures/figure"
	"github.com/cwbudde/algo-figures/internal/config"
	"github.com/cwbudde/algo-figures/internal/logging"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "figures",
		Short: "Regenerate the thesis SVG figures",
		Long: `figures synthesizes the signals behind each thesis chart and writes
them as SVG files with fixed names: dds_final.svg, signal_chart.svg,
czech_signals_chart.svg and noisy_signal_chart.svg.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().String("config", "", "YAML configuration file")
	rootCmd.PersistentFlags().String("out", "", "Output directory (overrides output_dir)")
	rootCmd.PersistentFlags().String("font", "", "Font file name fragment (overrides font.target)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newRenderCmd(),
		newListCmd(),
		newFontCmd(),
	)
	return rootCmd
}

// env is the state shared by every subcommand once flags are parsed.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if out, _ := cmd.Flags().GetString("out"); out != "" {
		cfg.OutputDir = out
	}
	if target, _ := cmd.Flags().GetString("font"); target != "" {
		cfg.Font.Target = target
	}
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &env{
		cfg:    cfg,
		logger: logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr()),
	}, nil
}

func newRenderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [figure...]",
		Short: "Render figures to SVG (all by default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			figs, err := figure.Select(figure.All(e.cfg, e.logger), args)
			if err != nil {
				return err
			}
			th := chart.NewTheme(e.cfg.Resolver().Resolve(e.logger))
			for _, f := range figs {
				path, err := figure.Save(f, e.cfg.OutputDir, th, e.logger)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available figures and their output files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			for _, f := range figure.All(e.cfg, e.logger) {
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", f.Name(), f.Filename())
			}
			return nil
		},
	}
}

func newFontCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "font",
		Short: "Show which font the figures will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := loadEnv(cmd)
			if err != nil {
				return err
			}
			res := e.cfg.Resolver().Resolve(e.logger)
			if res.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", res.Family, res.Path)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t(fallback)\n", res.Family)
			}
			return nil
		},
	}
}
