// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs unexpected failures with request context and renders the
// generic server error page.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger returns an ErrorLogger writing to logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

func (l *ErrorLogger) log(r *http.Request, msg string, err error) {
	l.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
}

// LogServerError logs err under msg and renders userMsg as a 500 page.
func (l *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.log(r, msg, err)
	RenderServerError(w, r, userMsg, backURL)
}

// LogBadRequest logs err at warn level and renders userMsg as a 400 page.
func (l *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.Log.Warn(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	HTMXError(w, r, http.StatusBadRequest, userMsg, func() {
		RenderBadRequest(w, r, userMsg, backURL)
	})
}

// HTMXLogServerError is LogServerError for endpoints that also serve HTMX
// snippets.
func (l *ErrorLogger) HTMXLogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	l.log(r, msg, err)
	HTMXError(w, r, http.StatusInternalServerError, userMsg, func() {
		RenderServerError(w, r, userMsg, backURL)
	})
}
