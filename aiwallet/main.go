package main

import (
	"aiwallet/aiwallet/agents/configs"
	"aiwallet/aiwallet/agents/getters"
	"aiwallet/aiwallet/config"
	"aiwallet/aiwallet/controllers"
	"aiwallet/aiwallet/routes"
	"aiwallet/aiwallet/services/llm"
	"aiwallet/aiwallet/services/market"
	"aiwallet/aiwallet/sources/psql"
	"aiwallet/aiwallet/sources/psql/dao"
	"aiwallet/aiwallet/utils/logging"
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logging.InitLogger(cfg.LogDir)
	defer logging.Sync()

	if cfg.JWTSecret == "" {
		logging.ErrorLogger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := psql.NewDatabase(ctx, cfg)
	if err != nil {
		logging.ErrorLogger.Error("database connection error", zap.Error(err))
		os.Exit(1)
	}
	defer db.Close()
	sqlDB, err := db.DB.DB()
	if err != nil {
		logging.ErrorLogger.Error("database handle error", zap.Error(err))
		os.Exit(1)
	}

	runner, err := llm.NewRunner(cfg)
	if err != nil {
		logging.ErrorLogger.Error("llm configuration error", zap.Error(err))
		os.Exit(1)
	}
	assistantCfg := configs.LoadConfig(cfg.AssistantFile).WithModel(cfg.LLMModel)

	prices, err := market.LoadPriceBoard(cfg.MarketPricesFile)
	if err != nil {
		logging.ErrorLogger.Error("market price table error", zap.Error(err))
		os.Exit(1)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPassword})
		if err := rdb.Ping(ctx).Err(); err != nil {
			// The limiter fails open, so keep serving without it.
			logging.AppLogger.Warn("redis unavailable, chat rate limit disabled", zap.Error(err))
		}
		defer rdb.Close()
	}

	ledger := dao.NewLedgerDAO(db.DB)
	chatDAO := dao.NewChatMessageDAO(db.DB)
	chatCtrl := controllers.NewChatController(chatDAO, llm.NewAssistant(runner, assistantCfg.Model), assistantCfg).
		WithPortfolio(getters.NewDataGetters(ledger, prices))

	r := routes.NewRouter(routes.Deps{
		Config:       cfg,
		Auth:         controllers.NewAuthController(dao.NewUserDAO(db.DB), cfg.JWTSecret),
		Wallets:      controllers.NewWalletController(ledger),
		Transactions: controllers.NewTransactionController(ledger),
		Chat:         chatCtrl,
		Health:       controllers.NewHealthController(sqlDB),
		Prices:       prices,
		Redis:        rdb,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logging.AppLogger.Info("server listening", zap.String("addr", cfg.HTTPAddr), zap.String("llm_provider", cfg.LLMProvider))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.ErrorLogger.Error("server listen error", zap.Error(err))
			os.Exit(1)
		}
	}()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.ErrorLogger.Error("server shutdown error", zap.Error(err))
		return
	}
	logging.AppLogger.Info("server shutdown complete")
}
