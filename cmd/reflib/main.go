package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MunoMono/reference-library/internal/api"
	"github.com/MunoMono/reference-library/internal/bibtex"
	"github.com/MunoMono/reference-library/internal/catalog"
	"github.com/MunoMono/reference-library/internal/charts"
	"github.com/MunoMono/reference-library/internal/collections"
	"github.com/MunoMono/reference-library/internal/config"
	"github.com/MunoMono/reference-library/internal/domain"
	"github.com/MunoMono/reference-library/internal/site"
)

var (
	cfgPath string
	verbose bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reflib",
		Short: "Build a browsable catalog from a reference library export",
	}

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(chartsCmd())
	rootCmd.AddCommand(collectionsCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

// loadPaths produces the resolved collection paths for a run: from a local
// JSON snapshot when one is given, from the Zotero API when fetch is set,
// otherwise none (tag buckets only).
func loadPaths(ctx context.Context, cfg config.Config, snapshotPath string, fetch bool, log *zap.Logger) (map[string]string, error) {
	var nodes []domain.CollectionNode

	switch {
	case snapshotPath != "":
		data, err := os.ReadFile(snapshotPath)
		if err != nil {
			return nil, fmt.Errorf("read collections snapshot: %w", err)
		}
		if err := json.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("parse collections snapshot: %w", err)
		}
	case fetch:
		client, err := collections.NewClient(os.Getenv("ZOTERO_API_KEY"), cfg.Zotero.LibraryType, cfg.Zotero.LibraryID, log)
		if err != nil {
			return nil, err
		}
		nodes, err = client.FetchAll(ctx)
		if err != nil {
			return nil, err
		}
	default:
		return nil, nil
	}

	paths, err := collections.ResolvePaths(nodes)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved collection paths", zap.Int("nodes", len(nodes)))
	return paths, nil
}

func buildCmd() *cobra.Command {
	var (
		bibPath       string
		outDir        string
		snapshotPath  string
		fetchUpstream bool
		skipCharts    bool
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the catalog page and charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if bibPath != "" {
				cfg.BibPath = bibPath
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			entries, err := bibtex.ReadFile(cfg.BibPath)
			if err != nil {
				return err
			}
			log.Debug("loaded library", zap.Int("entries", len(entries)))

			paths, err := loadPaths(cmd.Context(), cfg, snapshotPath, fetchUpstream, log)
			if err != nil {
				return err
			}

			res := catalog.Build(entries, paths)

			var chartFiles []string
			if !skipCharts {
				chartFiles, err = charts.BuildFiles(res, cfg.Charts.TopK, cfg.Charts.PieMax, cfg.OutputDir)
				if err != nil {
					return err
				}
			}

			page, err := site.Build(res, chartFiles, cfg.OutputDir)
			if err != nil {
				return err
			}

			fmt.Printf("Wrote site to %s\n", page)
			fmt.Printf("Tags: %d buckets, %d untagged entries\n", len(res.TagBuckets), res.Untagged.Count)
			if len(res.CollectionBuckets) > 0 {
				fmt.Printf("Collections: %d buckets\n", len(res.CollectionBuckets))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bibPath, "bib", "", "BibTeX file (overrides config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	cmd.Flags().StringVar(&snapshotPath, "collections-file", "", "collection tree snapshot (JSON)")
	cmd.Flags().BoolVar(&fetchUpstream, "fetch-collections", false, "fetch the collection tree from the Zotero API")
	cmd.Flags().BoolVar(&skipCharts, "no-charts", false, "skip chart generation")
	return cmd
}

func chartsCmd() *cobra.Command {
	var (
		bibPath string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Generate only the SVG charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if bibPath != "" {
				cfg.BibPath = bibPath
			}
			if outDir != "" {
				cfg.OutputDir = outDir
			}

			entries, err := bibtex.ReadFile(cfg.BibPath)
			if err != nil {
				return err
			}

			res := catalog.Build(entries, nil)
			files, err := charts.BuildFiles(res, cfg.Charts.TopK, cfg.Charts.PieMax, cfg.OutputDir)
			if err != nil {
				return err
			}
			for _, f := range files {
				fmt.Printf("Wrote %s/%s\n", cfg.OutputDir, f)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&bibPath, "bib", "", "BibTeX file (overrides config)")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (overrides config)")
	return cmd
}

func collectionsCmd() *cobra.Command {
	var snapshotPath string

	cmd := &cobra.Command{
		Use:   "collections",
		Short: "Print resolved collection paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			paths, err := loadPaths(cmd.Context(), cfg, snapshotPath, snapshotPath == "", log)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				fmt.Println("No collections found.")
				return nil
			}
			for _, p := range collections.SortedPaths(paths) {
				fmt.Println(p)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&snapshotPath, "collections-file", "", "collection tree snapshot (JSON) instead of fetching")
	return cmd
}

func serveCmd() *cobra.Command {
	var (
		addr         string
		bibPath      string
		snapshotPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated site and catalog JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if bibPath != "" {
				cfg.BibPath = bibPath
			}

			entries, err := bibtex.ReadFile(cfg.BibPath)
			if err != nil {
				return err
			}
			paths, err := loadPaths(cmd.Context(), cfg, snapshotPath, false, log)
			if err != nil {
				return err
			}

			res := catalog.Build(entries, paths)
			server := api.New(res, cfg.OutputDir, addr, cfg.Charts.TopK, log)
			return server.Run()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":8080", "server address")
	cmd.Flags().StringVar(&bibPath, "bib", "", "BibTeX file (overrides config)")
	cmd.Flags().StringVar(&snapshotPath, "collections-file", "", "collection tree snapshot (JSON)")
	return cmd
}
