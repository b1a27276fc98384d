package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oahconnect/carelink/internal/auth"
	"github.com/oahconnect/carelink/internal/cli"
	"github.com/oahconnect/carelink/internal/config"
	"github.com/oahconnect/carelink/internal/db"
	"github.com/oahconnect/carelink/internal/repository"
	"github.com/oahconnect/carelink/internal/seed"
	"github.com/oahconnect/carelink/internal/service"
	"github.com/oahconnect/carelink/internal/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("CARELINK_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer logger.Sync()

	dbPath := os.Getenv("CARELINK_DB")
	if dbPath == "" {
		dbPath = cfg.Database.Path
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	requestRepo := repository.NewSQLiteRequestRepo(database)
	donationRepo := repository.NewSQLiteDonationRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)

	// Seed the demo data set; existing rows are left untouched.
	gen := seed.New(time.Now().UnixNano())
	if err := seed.Populate(context.Background(), gen, requestRepo, donationRepo, taskRepo); err != nil {
		return fmt.Errorf("seeding demo data: %w", err)
	}

	store := session.New()
	store.Initialize(cfg.UI.FontSize, cfg.UI.ThemeColor, gen.Notifications())

	// Wire services
	observer := service.NewZapUseCaseObserver(logger)
	app := &cli.App{
		Requests:  service.NewRequestService(requestRepo, observer),
		Donations: service.NewDonationService(donationRepo, cfg.Donations.Minimum, cfg.Donations.Goal, cfg.Donations.Campaign, observer),
		Tasks:     service.NewTaskService(taskRepo, cfg.TaskCacheTTL(), observer),
		Overview:  service.NewOverviewService(requestRepo, donationRepo, taskRepo, cfg.Donations.Goal),
		Export:    service.NewExportService(requestRepo, donationRepo, observer),

		Gate:   auth.NewGate(),
		Store:  store,
		Config: cfg,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLogger builds a file-backed zap logger. The TUI owns the terminal,
// so nothing may be written to stdout or stderr while it runs.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	path := cfg.Logging.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(home, ".carelink", "carelink.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	level := zapcore.InfoLevel
	if parsed, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		level = parsed
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.OutputPaths = []string{path}
	zcfg.ErrorOutputPaths = []string{path}
	return zcfg.Build()
}
