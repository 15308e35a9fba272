package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/archscope/depscope/config"
	"github.com/archscope/depscope/coupling"
	"github.com/archscope/depscope/emit"
	"github.com/archscope/depscope/pipeline"
)

func newAnalyzeCmd(log *logrus.Logger) *cobra.Command {
	var (
		dirFlag      string
		solutionFlag string
		configFlag   string
		factsFlag    string
		outFlag      string
		rasterFlag   string
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the dependency pipeline over a directory of .csproj files",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), log, analyzeOptions{
				dir:      dirFlag,
				solution: solutionFlag,
				config:   configFlag,
				facts:    factsFlag,
				out:      outFlag,
				raster:   rasterFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", ".", "directory to scan recursively for .csproj files")
	cmd.Flags().StringVarP(&solutionFlag, "solution", "s", "", "solution name tag applied to every discovered project")
	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "path to a YAML config file (defaults used if omitted)")
	cmd.Flags().StringVar(&factsFlag, "facts", "", "path to a JSON coupling.MapFactStore document for semantic annotation")
	cmd.Flags().StringVarP(&outFlag, "out", "o", ".", "output directory for the DOT diagram and CSV reports")
	cmd.Flags().StringVar(&rasterFlag, "rasterize", "", "also render the diagram via the system dot binary: png or svg")

	return cmd
}

type analyzeOptions struct {
	dir, solution, config, facts, out, raster string
}

func runAnalyze(ctx context.Context, log *logrus.Logger, opts analyzeOptions) error {
	cfg := config.Default()
	if opts.config != "" {
		loaded, err := config.LoadFile(opts.config)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		cfg = loaded
	}

	projects, discoverWarnings, err := discoverProjects(opts.dir, opts.solution)
	if err != nil {
		return fmt.Errorf("analyze: %w", err)
	}
	for _, w := range discoverWarnings {
		log.WithField("stage", w.Stage).Warn(w.Message)
	}
	if len(projects) == 0 {
		return fmt.Errorf("analyze: no .csproj files found under %s", opts.dir)
	}

	var analyzer coupling.SemanticAnalyzer
	if opts.facts != "" {
		store, err := loadFactStore(opts.facts)
		if err != nil {
			return fmt.Errorf("analyze: %w", err)
		}
		analyzer = coupling.NewFactAnalyzer(store)
	}

	result, err := pipeline.Run(ctx, projects, cfg, analyzer, log.WithField("stage", "pipeline"))
	if err != nil && result == nil {
		return fmt.Errorf("analyze: %w", err)
	}
	if err != nil {
		log.Warn(err)
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("analyze: create output directory: %w", err)
	}
	if err := writeResultFiles(opts.out, result); err != nil {
		return fmt.Errorf("analyze: %w", err)
	}

	if opts.raster != "" {
		if err := rasterizeResult(ctx, opts.out, result, emit.RasterFormat(opts.raster), log); err != nil {
			log.WithError(err).Warn("rasterisation skipped")
		}
	}

	printSummary(result)
	return nil
}

func writeResultFiles(outDir string, result *pipeline.Result) error {
	files := map[string][]byte{
		result.DOTFilename:      result.DOTSource,
		"extraction-scores.csv": result.ExtractionScoresCSV,
		"cycles.csv":            result.CyclesCSV,
		"dependency-matrix.csv": result.DependencyMatrixCSV,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(outDir, name), content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func rasterizeResult(ctx context.Context, outDir string, result *pipeline.Result, format emit.RasterFormat, log *logrus.Logger) error {
	image, warning, err := emit.Rasterize(ctx, result.DOTSource, format)
	if warning != nil {
		log.Warn(warning.Message)
	}
	if err != nil {
		return err
	}
	name := fmt.Sprintf("%s.%s", result.DOTFilename, format)
	return os.WriteFile(filepath.Join(outDir, name), image, 0o644)
}

func loadFactStore(path string) (coupling.MapFactStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open facts file: %w", err)
	}
	defer f.Close()

	var store coupling.MapFactStore
	if err := json.NewDecoder(f).Decode(&store); err != nil {
		return nil, fmt.Errorf("decode facts file: %w", err)
	}
	return store, nil
}

func printSummary(result *pipeline.Result) {
	useColor := isatty.IsTerminal(os.Stdout.Fd())
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)
	if !useColor {
		color.NoColor = true
	}

	bold.Println("depscope analysis summary")
	fmt.Printf("  projects: %d\n", len(result.Scores))
	fmt.Printf("  cycles:   %d (largest size %d)\n", result.CycleStats.TotalCycles, result.CycleStats.LargestCycleSize)
	green.Printf("  easy:     %d\n", result.ScoreStats.Easy)
	yellow.Printf("  medium:   %d\n", result.ScoreStats.Medium)
	red.Printf("  hard:     %d\n", result.ScoreStats.Hard)
	if len(result.Warnings) > 0 {
		yellow.Printf("  warnings: %d\n", len(result.Warnings))
	}
	fmt.Printf("  diagram:  %s\n", result.DOTFilename)
}
