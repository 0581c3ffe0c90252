// Package actions parses the row-level action markers posted by the list
// pages and guards against duplicate in-flight submissions.
package actions

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Kind is the tagged action type. The zero value is not a valid action.
type Kind int

const (
	None Kind = iota
	View
	MarkRead
	Resolve
	Edit
	Delete
	Ignore
	Inventory
	ScanDetails
)

var markers = map[string]Kind{
	"view":         View,
	"details":      View,
	"mark-read":    MarkRead,
	"resolve":      Resolve,
	"edit":         Edit,
	"delete":       Delete,
	"ignore":       Ignore,
	"inventory":    Inventory,
	"scan-details": ScanDetails,
}

// Parse maps a marker string to its Kind. Unknown markers return None, false.
func Parse(marker string) (Kind, bool) {
	k, ok := markers[strings.ToLower(strings.TrimSpace(marker))]
	return k, ok
}

func (k Kind) String() string {
	switch k {
	case View:
		return "view"
	case MarkRead:
		return "mark-read"
	case Resolve:
		return "resolve"
	case Edit:
		return "edit"
	case Delete:
		return "delete"
	case Ignore:
		return "ignore"
	case Inventory:
		return "inventory"
	case ScanDetails:
		return "scan-details"
	default:
		return "none"
	}
}

// NeedsConfirm reports whether the action must be confirmed before any
// backend request is issued.
func (k Kind) NeedsConfirm() bool {
	switch k {
	case MarkRead, Resolve, Delete, Ignore:
		return true
	default:
		return false
	}
}

// Mutates reports whether the action changes backend state and therefore
// needs an auth token.
func (k Kind) Mutates() bool {
	switch k {
	case MarkRead, Resolve, Delete, Ignore, ScanDetails:
		return true
	default:
		return false
	}
}

// Action is one parsed row action.
type Action struct {
	Kind      Kind
	ID        int
	Confirmed bool
	// IP is carried by discovery rows for confirmation text and scans.
	IP string
}

// ErrUnknown is returned for a missing or unrecognized action marker.
var ErrUnknown = errors.New("unknown action")

// FromRequest reads action, id, confirm and ip from the parsed form.
func FromRequest(r *http.Request) (Action, error) {
	kind, ok := Parse(r.FormValue("action"))
	if !ok {
		return Action{}, ErrUnknown
	}
	id, err := strconv.Atoi(strings.TrimSpace(r.FormValue("id")))
	if err != nil || id <= 0 {
		return Action{}, fmt.Errorf("invalid id %q", r.FormValue("id"))
	}
	return Action{
		Kind:      kind,
		ID:        id,
		Confirmed: r.FormValue("confirm") == "yes",
		IP:        strings.TrimSpace(r.FormValue("ip")),
	}, nil
}

// Query encodes a for a confirmation page URL.
func (a Action) Query() string {
	q := url.Values{"action": {a.Kind.String()}, "id": {strconv.Itoa(a.ID)}}
	if a.IP != "" {
		q.Set("ip", a.IP)
	}
	return q.Encode()
}
