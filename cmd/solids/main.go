package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/chazu/solids/internal/menu"
	"github.com/chazu/solids/pkg/config"
	"github.com/chazu/solids/pkg/engine"
	"github.com/chazu/solids/pkg/observe"
	"github.com/chazu/solids/pkg/report"
	"github.com/chazu/solids/pkg/shape"
)

var (
	// Global flags
	cfgPath string
	verbose bool
	format  string

	// Loaded in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd shows the demo set and then opens the interactive creator.
var rootCmd = &cobra.Command{
	Use:   "solids",
	Short: "3D shape metrics and comparative analysis",
	Long: `solids computes volume and surface area for spheres, cubes, cylinders,
rectangular prisms and cones, and reports which shape of a collection has the
largest volume, the largest surface area and the best volume/surface ratio.

Run without arguments to analyze the demo set and start the interactive
shape creator.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	Args: cobra.NoArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "solids.yaml", "Path to the YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Report format: text or json (default from config)")

	exportCmd.Flags().BoolVar(&exportLayout, "layout", false, "Place shapes side by side instead of at the origin")
	exportCmd.Flags().Float64Var(&exportGap, "gap", 1.0, "Spacing between shapes with --layout")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(meshCmd)
	rootCmd.AddCommand(exportCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings resolves config file, environment and flags, in that order
// of increasing precedence, and builds the logger.
func loadSettings() error {
	c, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if verbose {
		c.Logging.Level = "debug"
	}
	if format != "" {
		c.Report.Format = format
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	l, err := observe.NewLogger(c.Logging.Level, c.Logging.Development)
	if err != nil {
		return err
	}
	cfg, logger = c, l
	logger.Debug("settings loaded",
		zap.String("config", cfgPath),
		zap.String("format", cfg.Report.Format),
		zap.Int("mesh_cells", cfg.Mesh.Cells))
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	shapes, err := demoShapes(shapeOptions()...)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if err := writeReport(out, shapes); err != nil {
		return err
	}

	m := menu.New(cmd.InOrStdin(), out, shapes,
		menu.WithLogger(logger.Named("menu")),
		menu.WithFormatter(formatter()),
		menu.WithShapeOptions(shapeOptions()...))
	return m.Run()
}

// ---------------------------------------------------------------------------
// Shared helpers
// ---------------------------------------------------------------------------

func shapeOptions() []shape.Option {
	return []shape.Option{shape.WithObserver(observe.New(logger))}
}

func formatter() *report.Formatter {
	return &report.Formatter{Precision: cfg.Report.Precision}
}

// writeReport renders the per-shape listing and analysis in the configured
// format. The text form carries the console header.
func writeReport(w io.Writer, shapes []shape.Shape) error {
	f := formatter()
	rep := f.Build(shapes)
	if cfg.Report.Format == config.FormatJSON {
		return f.WriteJSON(w, rep)
	}
	if _, err := fmt.Fprint(w, "=== 3D Shape Analysis System ===\n\nCreated Shapes:\n"); err != nil {
		return err
	}
	return f.WriteText(w, rep)
}

// loadShapes evaluates the scene script at path, or returns the demo set
// when path is empty.
func loadShapes(path string) ([]shape.Shape, error) {
	if path == "" {
		return demoShapes(shapeOptions()...)
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	eng := engine.NewEngine(
		engine.WithTimeout(cfg.ScriptTimeout()),
		engine.WithObserver(observe.New(logger)))
	shapes, evalErrs, err := eng.Evaluate(string(source))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(evalErrs) > 0 {
		errs := make([]error, len(evalErrs))
		for i, e := range evalErrs {
			errs[i] = e
		}
		return nil, fmt.Errorf("%s: %w", path, errors.Join(errs...))
	}

	logger.Info("script evaluated", zap.String("path", path), zap.Int("shapes", len(shapes)))
	return shapes, nil
}
