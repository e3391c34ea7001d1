package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"eventhub/config"
	"eventhub/internal/auth"
	"eventhub/internal/cli"
	"eventhub/internal/client"
	"eventhub/internal/credential"
	"eventhub/internal/database"
	"eventhub/internal/service"
	"eventhub/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.LoadConfig()
	logger.SetLevel(cfg.LogLevel)
	defer logger.L.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tokens, closeStore := openCredentialStore(cfg)
	defer closeStore()

	api := client.NewHTTPEventAPI(cfg.API.BaseURL, cfg.API.Timeout)
	pages := service.NewEventPageService(api, tokens, auth.UserFromToken)
	app := cli.NewApp(pages, tokens, cli.NewSurveyDriver(), os.Stdout, cfg.Form.EagerValidation)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrUsage) {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		return 1
	}
	return 0
}

// openCredentialStore Redis 連不上時退回記憶體，token 只在本次執行有效
func openCredentialStore(cfg *config.Config) (credential.Store, func()) {
	if cfg.Credential.Backend == config.CredentialBackendRedis {
		rdb, err := database.InitRedis(&cfg.Redis)
		if err == nil {
			return credential.NewRedisStore(rdb, cfg.Credential.Key), func() { rdb.Close() }
		}
		logger.WithComponent("cli").Warn("redis unavailable, using in-memory credential store", zap.Error(err))
	}
	return credential.NewMemoryStore(cfg.Credential.Key), func() {}
}
