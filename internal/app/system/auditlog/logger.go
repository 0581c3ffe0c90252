// internal/app/system/auditlog/logger.go
package auditlog

import (
	"context"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Config holds audit logging configuration.
type Config struct {
	// Auth controls logging for login, logout and password reset events.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Auth string
	// Inventory controls logging for changes forwarded to the backend.
	// Values: "all" (MongoDB + zap), "db" (MongoDB only), "log" (zap only), "off" (disabled)
	Inventory string
}

// Logger records audit events to MongoDB (via audit.Store) and zap.
type Logger struct {
	store  *audit.Store
	zapLog *zap.Logger
	config Config
}

// New creates a new audit Logger. store may be nil to log to zap only.
func New(store *audit.Store, zapLog *zap.Logger, config Config) *Logger {
	return &Logger{
		store:  store,
		zapLog: zapLog,
		config: config,
	}
}

func (l *Logger) logToZap(event audit.Event) {
	fields := []zap.Field{
		zap.Bool("audit", true),
		zap.String("category", event.Category),
		zap.String("event_type", event.EventType),
		zap.Bool("success", event.Success),
		zap.String("ip", event.IP),
	}
	if event.Actor != "" {
		fields = append(fields, zap.String("actor", event.Actor))
	}
	if event.Resource != "" {
		fields = append(fields, zap.String("resource", event.Resource), zap.Int("target_id", event.TargetID))
	}
	if event.Message != "" {
		fields = append(fields, zap.String("message", event.Message))
	}
	if event.FailureReason != "" {
		fields = append(fields, zap.String("failure_reason", event.FailureReason))
	}
	for k, v := range event.Details {
		fields = append(fields, zap.String("detail_"+k, v))
	}

	if event.Success {
		l.zapLog.Info("audit event", fields...)
	} else {
		l.zapLog.Warn("audit event", fields...)
	}
}

// Log records an audit event based on configuration.
// A nil Logger is a no-op so tests can pass nil.
func (l *Logger) Log(ctx context.Context, event audit.Event) {
	if l == nil {
		return
	}

	var setting string
	switch event.Category {
	case audit.CategoryAuth:
		setting = l.config.Auth
	case audit.CategoryInventory:
		setting = l.config.Inventory
	default:
		setting = "all"
	}
	if setting == "off" {
		return
	}

	if setting == "all" || setting == "log" {
		l.logToZap(event)
	}

	if (setting == "all" || setting == "db") && l.store != nil {
		if err := l.store.Log(ctx, event); err != nil {
			l.zapLog.Error("failed to store audit event",
				zap.Error(err),
				zap.String("event_type", event.EventType),
			)
		}
	}
}

// base fills request context fields.
func base(r *http.Request, category, eventType string) audit.Event {
	ev := audit.Event{
		Category:  category,
		EventType: eventType,
		SessionID: auth.SessionID(r),
		IP:        ratelimit.ClientIP(r),
		UserAgent: r.UserAgent(),
	}
	if u, ok := auth.CurrentUser(r); ok {
		ev.Actor = u.Name
	}
	return ev
}

// --- Authentication Events ---

// LoginSuccess logs a successful login.
func (l *Logger) LoginSuccess(ctx context.Context, r *http.Request, username string) {
	ev := base(r, audit.CategoryAuth, audit.EventLoginSuccess)
	ev.Actor = username
	ev.Success = true
	l.Log(ctx, ev)
}

// LoginFailed logs a rejected login.
func (l *Logger) LoginFailed(ctx context.Context, r *http.Request, username, reason string) {
	ev := base(r, audit.CategoryAuth, audit.EventLoginFailed)
	ev.Actor = username
	ev.FailureReason = reason
	l.Log(ctx, ev)
}

// LoginRateLimited logs a login refused by the rate limiter.
func (l *Logger) LoginRateLimited(ctx context.Context, r *http.Request, username string) {
	ev := base(r, audit.CategoryAuth, audit.EventLoginFailedRateLimit)
	ev.Actor = username
	ev.FailureReason = "rate limited"
	l.Log(ctx, ev)
}

// Logout logs an explicit sign-out.
func (l *Logger) Logout(ctx context.Context, r *http.Request) {
	ev := base(r, audit.CategoryAuth, audit.EventLogout)
	ev.Success = true
	l.Log(ctx, ev)
}

// PasswordResetRequested logs a forgot-password submission.
func (l *Logger) PasswordResetRequested(ctx context.Context, r *http.Request, email string) {
	ev := base(r, audit.CategoryAuth, audit.EventPasswordResetRequest)
	ev.Success = true
	ev.Details = map[string]string{"email": email}
	l.Log(ctx, ev)
}

// --- Inventory Events ---

// Change logs a mutation forwarded to the backend. err is the backend
// outcome; msg is the backend message.
func (l *Logger) Change(ctx context.Context, r *http.Request, eventType, resource string, targetID int, msg string, err error, details map[string]string) {
	ev := base(r, audit.CategoryInventory, eventType)
	ev.Resource = resource
	ev.TargetID = targetID
	ev.Message = msg
	ev.Details = details
	ev.Success = err == nil
	if err != nil {
		ev.FailureReason = api.DisplayMessage(err)
	}
	l.Log(ctx, ev)
}
