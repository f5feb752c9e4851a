package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"sort"

	"checkout/internal/app"
	"checkout/internal/entities"
	"checkout/internal/handlers/scenario"
	"checkout/internal/pkg/config"
	"checkout/internal/pkg/dotenv"
	"checkout/internal/service/checkout"
	"checkout/pkg/logger"
	"checkout/pkg/logger/zap_adapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

func main() {
	if _, err := dotenv.Load(); err != nil {
		stdlog.Fatalf("failed to load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(zap_adapter.Config{
		Level:    cfg.Log.Level,
		Encoding: cfg.Log.Encoding,
	})
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger

	err = run(context.Background(), appLogger)
	if err != nil {
		appLogger.Error("application failed", logger.NewField("error", err))
		return
	}
}

func run(ctx context.Context, log logger.Logger) error {
	application := app.InitializeApplication(log)

	// Оба сценария используют один и тот же email notifier.
	// QRIS подключается без изменений в checkout.Service.
	scenarios := []scenario.Scenario{
		{
			Title:    "Scenario 1: Credit Card",
			Order:    entities.NewOrder("Andi", decimal.NewFromInt(500000)),
			Checkout: application.Checkout(application.CreditCard),
		},
		{
			Title:    "Scenario 2: Open/Closed proof (QRIS)",
			Order:    entities.NewOrder("Budi", decimal.NewFromInt(100000)),
			Checkout: application.Checkout(application.Qris),
		},
	}

	_, err := scenario.New(log, os.Stdout).Run(ctx, scenarios)
	if err != nil {
		return fmt.Errorf("scenarios: %w", err)
	}

	counters, err := checkout.CollectCounters(prometheus.DefaultGatherer)
	if err != nil {
		return fmt.Errorf("checkout metrics: %w", err)
	}
	logCounters(log, counters)

	return nil
}

func logCounters(log logger.Logger, counters map[string]float64) {
	keys := make([]string, 0, len(counters))
	for key := range counters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fields := make([]logger.Field, 0, len(keys))
	for _, key := range keys {
		fields = append(fields, logger.NewField(key, counters[key]))
	}
	log.Debug("checkout counters", fields...)
}
