package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/BroadcasterPro_Go/docs"
	"github.com/osse101/BroadcasterPro_Go/internal/admin"
	"github.com/osse101/BroadcasterPro_Go/internal/bootstrap"
	"github.com/osse101/BroadcasterPro_Go/internal/broadcast"
	"github.com/osse101/BroadcasterPro_Go/internal/config"
	"github.com/osse101/BroadcasterPro_Go/internal/credits"
	"github.com/osse101/BroadcasterPro_Go/internal/discord"
	"github.com/osse101/BroadcasterPro_Go/internal/handler"
	"github.com/osse101/BroadcasterPro_Go/internal/payment"
	"github.com/osse101/BroadcasterPro_Go/internal/scheduler"
	"github.com/osse101/BroadcasterPro_Go/internal/server"
	"github.com/osse101/BroadcasterPro_Go/internal/session"
	"github.com/osse101/BroadcasterPro_Go/internal/sse"
	"github.com/osse101/BroadcasterPro_Go/internal/user"
	"github.com/osse101/BroadcasterPro_Go/internal/worker"
)

const (
	serviceName     = "app"
	shutdownTimeout = 30 * time.Second
	walletPath      = "/wallet"
)

// @title Broadcaster Pro API
// @version 1.0
// @description Discord direct-message broadcasting with a prepaid credit wallet.
// @BasePath /
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

	adminSvc := admin.NewService(repos.Admin)
	if seeded, err := adminSvc.Seed(ctx, cfg.AdminDiscordIDs); err != nil {
		slog.Warn("Failed to seed admins", "error", err)
	} else if seeded > 0 {
		slog.Info("Seeded admins from configuration", "count", seeded)
	}

	userSvc := user.NewService(repos.User)
	creditsSvc := credits.NewService(repos.Ledger, repos.User)

	bot, err := discord.NewBotClient(cfg.DiscordBotToken)
	if err != nil {
		slog.Error("Failed to create Discord client", "error", err)
		os.Exit(1)
	}
	guildNames := discord.NewGuildNames(bot, discord.GuildNameCacheSize, discord.GuildNameCacheTTL)

	// Live progress for broadcasts processed in this process
	hub := sse.NewHub()
	hub.Start()

	broadcastSvc := broadcast.NewService(
		broadcast.NewDispatcher(bot, discord.NewFactory()),
		creditsSvc,
		repos.Queue,
		repos.Broadcast,
		guildNames,
		cfg.BroadcastCreditCost,
		broadcast.WithNotifier(hub),
		broadcast.WithBaseContext(ctx),
	)

	paymentSvc := payment.NewService(repos.Payment, creditsSvc, bot, payment.Config{
		ChannelID:         cfg.ProBotChannelID,
		RecipientID:       cfg.PaymentRecipientID,
		CreditsPerMessage: cfg.ProBotCreditsPerBroadcast,
		WalletURL:         cfg.PublicBaseURL + walletPath,
	})

	sessions := session.NewStore(cfg.SessionCapacity, cfg.SessionTTL)

	// A nil flow makes /auth/login answer 503
	var oauth handler.OAuthFlow
	if cfg.OAuthEnabled() {
		oauth = discord.NewOAuth(cfg.DiscordClientID, cfg.DiscordClientSecret, cfg.DiscordRedirectURI, nil)
	} else {
		slog.Warn("Discord OAuth not configured, login disabled")
	}

	handlers := handler.Handlers{
		Auth:      handler.NewAuthHandler(oauth, sessions, userSvc, adminSvc, cfg.SessionTTL, cfg.IsProduction()),
		Wallet:    handler.NewWalletHandler(creditsSvc),
		Guild:     handler.NewGuildHandler(bot, guildNames),
		Broadcast: handler.NewBroadcastHandler(broadcastSvc, adminSvc, cfg.DefaultDelaySeconds),
		Payment:   handler.NewPaymentHandler(paymentSvc, adminSvc),
		Admin:     handler.NewAdminHandler(creditsSvc, userSvc, adminSvc),
		Admins:    adminSvc,
		Events:    sse.Handler(hub),
	}

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		Version:        cfg.Version,
		TrustedProxies: cfg.TrustedProxies,
	}, repos.Pool, sessions, handlers)
	srv.OnShutdown(hub.Stop)

	workers := map[string]bootstrap.Stopper{}
	if cfg.WorkerEnabled {
		qw := worker.NewQueueWorker(broadcastSvc, cfg.QueuePollInterval, cfg.QueueErrorBackoff)
		qw.Start(ctx)
		workers["queue"] = qw
	}
	if cfg.PaymentScanEnabled() {
		pw := worker.NewPaymentScanWorker(paymentSvc, cfg.PaymentScanInterval)
		pw.Start(ctx)
		workers["payment_scan"] = pw
	} else {
		slog.Warn("ProBot channel or recipient not configured, payment monitoring disabled")
	}

	jobPool := worker.NewPool(ctx, worker.DefaultPoolWorkers, worker.DefaultPoolQueueSize, worker.DefaultJobTimeout)
	jobPool.Start()
	sched := scheduler.New(jobPool)
	sched.Schedule(cfg.PaymentExpiryInterval, worker.ExpirePaymentsJob(paymentSvc))

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:  srv,
		Workers: workers,
		Closers: []func(){
			hub.Stop,
			sched.Stop,
			jobPool.Stop,
			cancel,
			repos.Pool.Close,
		},
	})
}
