package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/giygas/entresto-info/asset"
	"github.com/giygas/entresto-info/catalog"
	"github.com/giygas/entresto-info/config"
	"github.com/giygas/entresto-info/data"
	"github.com/giygas/entresto-info/handlers"
	"github.com/giygas/entresto-info/health"
	"github.com/giygas/entresto-info/logging"
	"github.com/giygas/entresto-info/render"
	"github.com/giygas/entresto-info/scheduler"
	"github.com/giygas/entresto-info/server"
	"github.com/giygas/entresto-info/theme"
	"github.com/giygas/entresto-info/validation"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const logDir = "logs"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "entresto-info",
		Short: "ENTRESTO (sacubitril/valsartan) drug reference viewer",
		Long: `entresto-info serves a single-screen, tabbed reference page for
ENTRESTO (sacubitril/valsartan): overview, mechanism, dosage,
pharmacokinetics, contraindications, side effects, interactions,
comparison, references and manufacturer.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose console logging")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP viewer (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(verbose)
		},
	})
	root.AddCommand(newRenderCmd())

	return root
}

func newRenderCmd() *cobra.Command {
	var (
		outDir   string
		mode     string
		imageDir string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the viewer as static HTML files",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := theme.ParseMode(mode)
			if err != nil {
				return err
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if imageDir == "" {
				imageDir = assetDir(cfg)
			}

			cat, err := catalog.Load()
			if err != nil {
				return err
			}

			img := asset.NewLocator(cfg.ImageName, imageDir).Lookup()
			if !img.Present {
				logging.Warn(render.FallbackNotice(img.Name))
			}

			files, err := render.Export(cat, theme.Default(), outDir, m, img)
			if err != nil {
				return err
			}

			for _, f := range files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			logging.Info("Static site written", "dir", outDir, "files", len(files), "theme", m)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory")
	cmd.Flags().StringVar(&mode, "theme", string(theme.Auto), "theme: auto, light or dark")
	cmd.Flags().StringVar(&imageDir, "image-dir", "", "directory searched for the drug image (default: ASSET_DIR or the executable directory)")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}
	return config.Load()
}

func assetDir(cfg *config.Config) string {
	if cfg.AssetDir != "" {
		return cfg.AssetDir
	}
	return asset.DefaultBaseDir()
}

func runServe(verbose bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	opts := logging.OptionsFromConfig(cfg, logDir)
	opts.ConsoleLevel = logging.GetConsoleLogLevel(cfg.Env, cfg.LogLevel, verbose)
	logSvc := logging.InitLogger(opts)
	defer logSvc.Close()

	logging.Info("Configuration loaded",
		"env", cfg.Env,
		"address", cfg.Address,
		"port", cfg.Port,
		"image", cfg.ImageName,
		"default_theme", cfg.DefaultTheme)

	cat, err := catalog.Load()
	if err != nil {
		logging.Error("Failed to load content catalog", "error", err)
		return err
	}

	validator := validation.NewContentValidator()
	if report := validator.ReportContentQuality(cat); report.HasIssues() {
		logging.Warn("Content catalog has quality issues",
			"duplicate_slugs", report.DuplicateSlugs,
			"tabs_without_sections", report.TabsWithoutSections,
			"empty_sections", report.EmptySections,
			"unknown_categories", report.UnknownCategories)
	}

	container := data.NewContainer()
	container.SetCatalog(cat)
	container.SetServerStartTime(time.Now())

	locator := asset.NewLocator(cfg.ImageName, assetDir(cfg))
	logging.Info("Drug image candidates", "paths", locator.Candidates())

	renderer, err := render.New(cat, theme.Default())
	if err != nil {
		logging.Error("Failed to build page renderer", "error", err)
		return err
	}

	monitor := scheduler.NewAssetMonitor(container, locator, cfg.AssetCheckMinutes)
	if err := monitor.Start(); err != nil {
		logging.Error("Failed to start asset monitor", "error", err)
		return err
	}
	defer monitor.Stop()

	handler := handlers.NewHTTPHandler(
		container,
		renderer,
		locator,
		validator,
		health.NewHealthChecker(container, locator),
		cfg.DefaultTheme,
	)
	srv := server.NewServer(cfg, handler)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case <-quit:
	case err := <-serveErr:
		logging.Error("Server failed to start", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return srv.Shutdown(ctx)
}
