package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diegoclair/weekday-range-picker/internal/config"
	"github.com/diegoclair/weekday-range-picker/internal/database"
	"github.com/diegoclair/weekday-range-picker/internal/domain/contract"
	"github.com/diegoclair/weekday-range-picker/internal/domain/service"
	"github.com/diegoclair/weekday-range-picker/internal/handlers"
	"github.com/diegoclair/weekday-range-picker/internal/logger"
	"github.com/diegoclair/weekday-range-picker/migrator/sqlite"
	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func serveCmd() *cobra.Command {
	var (
		envFile string
		host    string
		port    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Slack command and JSON API server",
		Long: `Start the Slack command and JSON API server.

Configuration is loaded in the following order (later sources override earlier):
  1. Default values
  2. .env file
  3. Environment variables
  4. Command line flags

Environment variables:
  PICKER_HOST                  Server host to bind to (default: 0.0.0.0)
  PICKER_PORT                  Server port to listen on (default: 3000)
  PICKER_DATABASE_PATH         SQLite database file (default: ./picker.db)
  PICKER_SLACK_BOT_TOKEN       Bot token used to announce selections
  PICKER_SLACK_SIGNING_SECRET  Secret used to verify slash commands
  PICKER_PRESETS_FILE          YAML file with the predefined ranges of new channels
  PICKER_REPORT_INVALID_INPUT  Report unparsable dates instead of ignoring them (default: true)
  PICKER_SESSION_TTL           How long an idle selection is kept (default: 12h)
  PICKER_MAX_RANGE_DAYS        Longest span the JSON API classifies (default: 3660)
  PICKER_CORS_ALLOWED_ORIGINS  Origins allowed to call the JSON API (default: *)
  PICKER_SHUTDOWN_TIMEOUT      Graceful shutdown timeout (default: 10s)
  PICKER_LOG_LEVEL             debug, info, warn, error (default: info)
  PICKER_LOG_FORMAT            json, console (default: json)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(envFile, host, port)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to .env file")
	cmd.Flags().StringVar(&host, "host", "", "Server host to bind to (default: 0.0.0.0)")
	cmd.Flags().StringVar(&port, "port", "", "Server port to listen on (default: 3000)")

	return cmd
}

func runServe(envFile, host, port string) error {
	cfg, err := loadConfig(envFile)
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Host = host
	}
	if port != "" {
		cfg.Port = port
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting picker",
		zap.String("version", version),
		zap.String("addr", cfg.Addr()),
		zap.String("database", cfg.DatabasePath),
		zap.Bool("report_invalid_input", cfg.ReportInvalidInput),
		zap.Duration("session_ttl", cfg.SessionTTL),
	)

	if cfg.SlackSigningSecret == "" {
		log.Warn("no signing secret configured, every slash command will be rejected")
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("failed to close database", zap.Error(err))
		}
	}()

	log.Info("running migrations")
	if err := sqlite.Migrate(db.DB()); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	presets, err := config.LoadPresets(cfg.PresetsFile)
	if err != nil {
		return fmt.Errorf("load presets: %w", err)
	}

	services := service.NewInstance(
		database.NewInstance(db),
		buildNotifier(cfg, log),
		log,
		presets,
		service.PickerOptions{
			ReportInvalidInput: cfg.ReportInvalidInput,
			SessionTTL:         cfg.SessionTTL,
		},
	)

	slackHandler := handlers.New(services.Picker, services.Preset, cfg.SlackSigningSecret, log)
	router := handlers.NewRouter(slackHandler, handlers.NewAPIHandler(log, cfg.MaxRangeDays), log, cfg.CORSAllowedOrigins)
	server := handlers.NewServer(cfg.Addr(), router, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(server.Start)
	g.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped")
	return nil
}

// buildNotifier always logs selections and also announces them in Slack when a bot token is set
func buildNotifier(cfg *config.Config, log *zap.Logger) contract.SelectionNotifier {
	logNotifier := service.NewLogNotifier(log)
	if cfg.SlackBotToken == "" {
		return logNotifier
	}

	var client contract.SlackClient = slack.New(cfg.SlackBotToken)
	return service.NewFanoutNotifier(service.NewSlackNotifier(client), logNotifier)
}
