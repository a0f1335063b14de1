package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Dan9191/finance-tracker/internal/auth"
	"github.com/Dan9191/finance-tracker/internal/config"
	"github.com/Dan9191/finance-tracker/internal/repository"
	"github.com/Dan9191/finance-tracker/internal/service"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "finance-tracker",
	Short:        "Personal finance tracking API",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(remindCmd())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the dependencies shared by every command
type app struct {
	cfg    *config.Config
	log    *logrus.Logger
	db     *sql.DB
	repo   *repository.Repository
	issuer *auth.Issuer
	svc    *service.Service
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)
	return logger
}

// setup loads configuration, opens the database and builds the service layer
func setup(ctx context.Context) (*app, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := newLogger(cfg.LogLevel)

	db, err := repository.Open(ctx, cfg.DBDriver, cfg.DBConn)
	if err != nil {
		return nil, err
	}

	repo := repository.NewRepository(db)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	return &app{
		cfg:    cfg,
		log:    logger,
		db:     db,
		repo:   repo,
		issuer: issuer,
		svc:    service.NewService(repo, logger, cfg, issuer),
	}, nil
}
