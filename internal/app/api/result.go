// Package api talks to the inventory REST backend. Every request goes through
// Client.Do, which classifies the outcome into a Result.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies the outcome of a backend request.
type Kind int

const (
	// KindOK means the backend answered with a 2xx status.
	KindOK Kind = iota
	// KindTransport means no usable response arrived (connection refused,
	// timeout, unreadable body).
	KindTransport
	// KindApplication means the backend answered with a non-2xx status.
	KindApplication
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindTransport:
		return "transport"
	case KindApplication:
		return "application"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Result is the classified outcome of one backend request.
type Result struct {
	Kind       Kind
	Status     int
	StatusText string
	// Message is the backend's human-readable "message" field, when present.
	Message string
	Body    []byte
	// Err is the underlying transport error for KindTransport.
	Err error
}

// OK reports whether the request succeeded.
func (r Result) OK() bool { return r.Kind == KindOK }

// AsError returns nil on success, otherwise an *Error describing the failure.
func (r Result) AsError() error {
	if r.OK() {
		return nil
	}
	return &Error{
		Kind:       r.Kind,
		Status:     r.Status,
		StatusText: r.StatusText,
		Message:    r.Message,
		Err:        r.Err,
	}
}

// Decode unmarshals the response body into v.
func (r Result) Decode(v any) error {
	if !r.OK() {
		return r.AsError()
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &Error{Kind: KindTransport, Status: r.Status, StatusText: r.StatusText, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// Error is a failed backend request.
type Error struct {
	Kind       Kind
	Status     int
	StatusText string
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindApplication:
		return fmt.Sprintf("backend returned %d: %s", e.Status, e.Display())
	default:
		if e.Err != nil {
			return "backend unreachable: " + e.Err.Error()
		}
		return "backend unreachable"
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Display returns the text shown to the user for an application failure:
// the server message, falling back to the status text.
func (e *Error) Display() string {
	if e.Message != "" {
		return e.Message
	}
	if e.StatusText != "" {
		return e.StatusText
	}
	return http.StatusText(e.Status)
}

// KindOf returns the failure kind of err. Errors not produced by this
// package count as transport failures; nil is KindOK.
func KindOf(err error) Kind {
	if err == nil {
		return KindOK
	}
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindTransport
}

// DisplayMessage returns the user-facing text for a failed request.
func DisplayMessage(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Display()
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
