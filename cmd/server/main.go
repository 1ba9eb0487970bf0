package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	emailPkg "padelcygnus/internal/adapters/email"
	web "padelcygnus/internal/adapters/http"
	"padelcygnus/internal/adapters/http/perf"
	"padelcygnus/internal/adapters/storage"
	bookingStore "padelcygnus/internal/adapters/storage/booking"
	chatStore "padelcygnus/internal/adapters/storage/chat"
	memberStore "padelcygnus/internal/adapters/storage/member"
	notificationStore "padelcygnus/internal/adapters/storage/notification"
	tournamentStore "padelcygnus/internal/adapters/storage/tournament"
	workspaceStore "padelcygnus/internal/adapters/storage/workspace"
	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/config"
	"padelcygnus/internal/domain/credential"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	setupLogger(cfg)

	db, err := storage.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := storage.MigrateDB(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector, cfg.SlowQueryMs)

	stores := &web.Stores{
		WorkspaceStore:    workspaceStore.NewSQLiteStore(timedDB),
		BookingStore:      bookingStore.NewSQLiteStore(timedDB),
		MemberStore:       memberStore.NewSQLiteStore(timedDB),
		TournamentStore:   tournamentStore.NewSQLiteStore(timedDB),
		NotificationStore: notificationStore.NewSQLiteStore(timedDB),
		ChatStore:         chatStore.NewSQLiteStore(timedDB),
	}

	// Workspaces and transcripts never outlive the process; anything left by a previous run is stale.
	if !storage.IsMemoryDSN(cfg.DSN) {
		if err := orchestrators.ExecutePurgeWorkspaces(context.Background(), stores.WorkspaceStore); err != nil {
			log.Fatalf("failed to purge stale workspaces: %v", err)
		}
		if _, err := orchestrators.ExecutePurgeChat(context.Background(), time.Now(), stores.ChatStore); err != nil {
			log.Fatalf("failed to purge stale chat transcripts: %v", err)
		}
	}

	cred, err := adminCredential(cfg)
	if err != nil {
		log.Fatalf("invalid admin credential: %v", err)
	}
	web.SetAuthenticator(orchestrators.ConfigAuthenticator{Credential: cred})

	// Configure email sender
	if cfg.ResendKey != "" {
		web.SetEmailSender(emailPkg.NewResendSender(cfg.ResendKey, cfg.EmailFrom))
		slog.Info("email_sender_configured", "provider", "resend")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender())
		slog.Info("email_sender_configured", "provider", "noop", "detail", "set PADEL_RESEND_KEY for real delivery")
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           web.NewMux(cfg, stores, collector),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server_starting", "version", version, "addr", cfg.Addr, "env", cfg.Env, "schema", storage.LatestSchemaVersion())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server_shutdown_failed", "error", err)
	}
	slog.Info("server_stopped")
}

// setupLogger installs the default slog handler: text in development, JSON in production.
func setupLogger(cfg config.Config) {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

// adminCredential prefers the configured bcrypt hash over the plaintext demo password.
func adminCredential(cfg config.Config) (credential.Credential, error) {
	if cfg.AdminPasswordHash != "" {
		return credential.FromHash(cfg.AdminEmail, cfg.AdminPasswordHash)
	}
	if cfg.AdminPassword == config.DefaultAdminPassword {
		slog.Warn("admin_demo_password", "detail", "using the demo admin password; set PADEL_ADMIN_PASSWORD_HASH outside development")
	}
	return credential.New(cfg.AdminEmail, cfg.AdminPassword)
}
