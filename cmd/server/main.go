package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpadapter "wolfeye-backend/internal/adapter/http"
	"wolfeye-backend/internal/adapter/repository"
	"wolfeye-backend/internal/domain"
	"wolfeye-backend/internal/infrastructure/migration"
	"wolfeye-backend/internal/logger"
	"wolfeye-backend/internal/usecase"
	infra "wolfeye-backend/pkg/infrastructure"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const app = "wolfeye-backend"

// version is set at build time.
var version = "dev"

type Config struct {
	Listen      string `mapstructure:"listen"`
	DatabaseURL string `mapstructure:"database-url"`
	Debug       bool   `mapstructure:"debug"`
	JSON        bool   `mapstructure:"json"`
}

var rootCmd = &cobra.Command{
	Use:   app,
	Short: "wolfeye-backend is a mock resume-analysis backend",
	RunE:  run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%s %s\n", app, version)
	},
}

func init() {
	rootCmd.PersistentFlags().String("listen", ":8000", "address to serve HTTP on")
	rootCmd.PersistentFlags().String("database-url", "", "optional Postgres DSN for the transaction archive")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	viper.BindPFlag("listen", rootCmd.PersistentFlags().Lookup("listen"))
	viper.BindPFlag("database-url", rootCmd.PersistentFlags().Lookup("database-url"))
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))

	viper.BindEnv("database-url", "DATABASE_URL")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	log, err := logger.New(config.JSON, config.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var pool *pgxpool.Pool
	if config.DatabaseURL != "" {
		pool, err = infra.NewPool(ctx, config.DatabaseURL)
		if err != nil {
			log.Warn("transaction archive not available", zap.Error(err))
			pool = nil
		} else if err := migration.RunMigrations(ctx, pool, log); err != nil {
			log.Warn("archive migrations failed, archiving disabled", zap.Error(err))
			pool.Close()
			pool = nil
		}
	}

	store := repository.NewMemoryStore()
	processor := usecase.NewProcessor(usecase.NewDemoAnalyzer(), store, repository.NewArchiveRepo(pool), log)
	h := httpadapter.NewHandler(processor, store, domain.DemoVacancies(), log)
	srv := httpadapter.NewApp(h, log)

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := srv.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Warn("shutdown", zap.Error(err))
		}
	}()

	log.Info("serving", zap.String("listen", config.Listen), zap.String("version", version))
	if err := srv.Listen(config.Listen); err != nil {
		return err
	}

	if pool != nil {
		pool.Close()
	}

	return nil
}
