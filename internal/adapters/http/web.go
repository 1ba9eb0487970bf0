package web

import (
	"context"
	"crypto/rand"
	"log"
	"log/slog"
	"net/http"
	"time"

	"padelcygnus/internal/adapters/email"
	"padelcygnus/internal/adapters/http/chathub"
	"padelcygnus/internal/adapters/http/middleware"
	"padelcygnus/internal/adapters/http/perf"
	bookingStore "padelcygnus/internal/adapters/storage/booking"
	chatStore "padelcygnus/internal/adapters/storage/chat"
	memberStore "padelcygnus/internal/adapters/storage/member"
	notificationStore "padelcygnus/internal/adapters/storage/notification"
	tournamentStore "padelcygnus/internal/adapters/storage/tournament"
	workspaceStore "padelcygnus/internal/adapters/storage/workspace"
	"padelcygnus/internal/application/orchestrators"
	"padelcygnus/internal/config"
)

// Stores holds all storage dependencies.
type Stores struct {
	WorkspaceStore    workspaceStore.Store
	BookingStore      bookingStore.Store
	MemberStore       memberStore.Store
	TournamentStore   tournamentStore.Store
	NotificationStore notificationStore.Store
	ChatStore         chatStore.Store
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global session store instance
var sessions *middleware.SessionStore

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Live chat fan-out (set by NewMux)
var chatHub *chathub.Hub

// appConfig is the configuration NewMux was built with.
var appConfig config.Config

// authenticator decides whether a submitted pair is the admin credential.
var authenticator orchestrators.Authenticator

// emailSender delivers contact-form messages. Defaults to a NoopSender.
var emailSender email.Sender = email.NewNoopSender()

// scheduleChatReply runs the delayed bot reply. Tests replace it.
var scheduleChatReply orchestrators.ChatScheduler = orchestrators.AfterFuncScheduler

// timeNow is a variable for testability.
var timeNow = time.Now

// SetEmailSender sets the global email sender.
func SetEmailSender(sender email.Sender) {
	emailSender = sender
}

// SetAuthenticator sets the admin credential check.
func SetAuthenticator(a orchestrators.Authenticator) {
	authenticator = a
}

// loadCSRFKey returns the configured key, or a random one outside production.
func loadCSRFKey(cfg config.Config) []byte {
	key, err := cfg.CSRFKeyBytes()
	if err != nil {
		log.Fatalf("PADEL_CSRF_KEY: %v", err)
	}
	if key != nil {
		return key
	}
	if cfg.IsProduction() {
		log.Fatal("PADEL_CSRF_KEY is required in production")
	}
	key = make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	slog.Warn("csrf_key_generated", "detail", "random CSRF key; forms break across restarts. Set PADEL_CSRF_KEY for production.")
	return key
}

// configure sets the package globals every handler reads.
func configure(cfg config.Config, s *Stores, collector *perf.Collector) {
	appConfig = cfg
	stores = s
	perfCollector = collector
	chatHub = chathub.New(chathub.DefaultBuffer)
	sessions = middleware.NewSessionStore(cfg.SessionTTL, endSession)
	middleware.SecureCookies = cfg.IsProduction()
	if authenticator == nil {
		slog.Warn("authenticator_missing", "detail", "no authenticator set; admin login disabled")
		authenticator = denyAll{}
	}
}

// endSession drops the workspace of a session that logged out or expired.
func endSession(s middleware.Session) {
	if err := orchestrators.ExecuteDropWorkspace(context.Background(), s.WorkspaceID, stores.WorkspaceStore); err != nil {
		slog.Error("workspace_event", "event", "drop_failed", "workspace_id", s.WorkspaceID, "error", err)
	}
}

// denyAll rejects every admin attempt.
type denyAll struct{}

func (denyAll) VerifyAdmin(context.Context, string, string) (bool, error) { return false, nil }

// NewMux wires HTTP handlers for the app.
func NewMux(cfg config.Config, s *Stores, collector *perf.Collector) http.Handler {
	configure(cfg, s, collector)

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	registerRoutes(mux)

	limiter := middleware.NewRateLimiter(cfg.RateLimit, time.Second)
	go janitor(limiter)

	// Apply middleware: Timing -> RateLimit -> Auth -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(loadCSRFKey(cfg), cfg.TrustedOrigins, cfg.IsProduction()),
		middleware.Auth(sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(collector, cfg.SlowRequestMs),
	)
}

// janitor expires idle sessions, chat transcripts and rate-limit buckets once a minute.
func janitor(limiter *middleware.RateLimiter) {
	for range time.Tick(time.Minute) {
		if n := sessions.Sweep(); n > 0 {
			slog.Info("auth_event", "event", "sessions_expired", "count", n)
		}
		purgeIdleChats()
		limiter.Cleanup(5 * time.Minute)
	}
}

// purgeIdleChats drops transcripts quiet for longer than the chat TTL.
func purgeIdleChats() {
	cutoff := timeNow().Add(-appConfig.ChatTTL)
	if _, err := orchestrators.ExecutePurgeChat(context.Background(), cutoff, stores.ChatStore); err != nil {
		slog.Error("chat_event", "event", "purge_failed", "error", err)
	}
}
