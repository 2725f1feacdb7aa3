package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BroadcasterPro_Go/internal/bootstrap"
	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/config"
	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
	"github.com/osse101/BroadcasterPro_Go/internal/worker"
)

const (
	serviceName     = "worker"
	shutdownTimeout = 30 * time.Second
)

// worker runs the background loops without the HTTP API, for deployments that
// set WORKER_ENABLED=false on the app instances.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg, serviceName)
	if err != nil {
		slog.Error("Failed to set up logger", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repos, err := bootstrap.OpenRepositories(ctx, cfg)
	if err != nil {
		slog.Error("Failed to open database", "driver", cfg.DBDriver, "error", err)
		os.Exit(1)
	}

	bot, err := discord.NewBotClient(cfg.DiscordBotToken)
	if err != nil {
		slog.Error("Failed to create Discord client", "error", err)
		os.Exit(1)
	}

	creditsSvc := credits.NewService(repos.Ledger, repos.User)
	broadcastSvc := broadcast.NewService(
		broadcast.NewDispatcher(bot, discord.NewFactory()),
		creditsSvc,
		repos.Queue,
		repos.Broadcast,
		discord.NewGuildNames(bot, discord.GuildNameCacheSize, discord.GuildNameCacheTTL),
		cfg.BroadcastCreditCost,
	)

	workers := map[string]bootstrap.Stopper{}

	qw := worker.NewQueueWorker(broadcastSvc, cfg.QueuePollInterval, cfg.QueueErrorBackoff)
	qw.Start(ctx)
	workers["queue"] = qw

	if cfg.PaymentScanEnabled() {
		paymentSvc := payment.NewService(repos.Payment, creditsSvc, bot, payment.Config{
			ChannelID:         cfg.ProBotChannelID,
			RecipientID:       cfg.PaymentRecipientID,
			CreditsPerMessage: cfg.ProBotCreditsPerBroadcast,
			WalletURL:         cfg.PublicBaseURL + "/wallet",
		})
		pw := worker.NewPaymentScanWorker(paymentSvc, cfg.PaymentScanInterval)
		pw.Start(ctx)
		workers["payment_scan"] = pw
	}

	slog.Info("Worker running", "workers", len(workers))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Workers: workers,
		Closers: []func(){cancel, repos.Pool.Close},
	})
}
