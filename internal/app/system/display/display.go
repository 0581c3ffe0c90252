// Package display formats backend values for the list tables: placeholders
// for missing values, CSS classes for status and severity, pt-BR dates.
package display

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Missing is rendered for null or absent fields.
const Missing = "N/D"

// Or returns *s, or Missing when s is nil.
func Or(s *string) string {
	if s == nil {
		return Missing
	}
	return *s
}

// OrDefault returns *s, or def when s is nil or blank.
func OrDefault(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}

// Int returns the decimal form of *n, or Missing when n is nil.
func Int(n *int) string {
	if n == nil {
		return Missing
	}
	return strconv.Itoa(*n)
}

// fold lowercases s and strips diacritics so "Crítica" matches "critica".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(strings.TrimSpace(out))
}

// StatusClass maps a device status to its CSS class. Every input, including
// nil, maps to exactly one class.
func StatusClass(status *string) string {
	if status == nil {
		return "status-unknown"
	}
	switch fold(*status) {
	case "online":
		return "status-online"
	case "offline":
		return "status-offline"
	case "com falha", "lento":
		return "status-warning"
	default:
		return "status-unknown"
	}
}

// SeverityClass maps an alert severity to its CSS class.
func SeverityClass(severity *string) string {
	if severity == nil {
		return "severity-unknown"
	}
	switch fold(*severity) {
	case "critica":
		return "severity-critical"
	case "alta":
		return "severity-high"
	case "media":
		return "severity-medium"
	case "baixa":
		return "severity-low"
	default:
		return "severity-unknown"
	}
}

// DateLayout is the pt-BR short date-time format used in tables.
const DateLayout = "02/01/2006 15:04"

var inputLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
	"2006-01-02",
}

// Date formats a backend timestamp. Unparseable text is returned as is and
// nil renders Missing.
func Date(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return Missing
	}
	raw := strings.TrimSpace(*s)
	if t, ok := parseTime(raw); ok {
		return t.Format(DateLayout)
	}
	return raw
}

// Clock formats a backend timestamp as hours and minutes. Nil or
// unparseable text renders "".
func Clock(s *string) string {
	if s == nil {
		return ""
	}
	if t, ok := parseTime(strings.TrimSpace(*s)); ok {
		return t.Format("15:04")
	}
	return ""
}

func parseTime(raw string) (time.Time, bool) {
	for _, layout := range inputLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// LoadFailure is the placeholder row of a list whose fetch failed. what
// names the rows ("dispositivos", "alertas", "IPs").
func LoadFailure(what string, err error) string {
	if api.KindOf(err) == api.KindApplication {
		return "Falha ao carregar: " + api.DisplayMessage(err)
	}
	return "Erro ao carregar " + what + ". Tente novamente mais tarde."
}

// TechnicalDetails pretty-prints s when it holds JSON and reports whether it
// did; other text is returned unchanged. Markup inside JSON strings is kept
// verbatim; escaping is left to the template.
func TechnicalDetails(s string) (string, bool) {
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return s, false
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return s, false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}
