// Package formpayload turns submitted form values into the JSON object the
// backend expects for create and update requests.
package formpayload

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Mode selects the add or edit rules.
type Mode int

const (
	ModeAdd Mode = iota
	ModeEdit
)

// IDPrefix marks fields holding foreign keys; they are sent as integers.
const IDPrefix = "ID_"

// Fields describes one form.
type Fields struct {
	// Names lists the accepted fields in payload order.
	Names []string
	// Clearable fields are sent as "" in edit mode so the backend clears them.
	Clearable []string
	// NullFill makes add mode send null for every listed non-ID field left empty.
	NullFill bool
	// Exclude never appears in the payload (for example the path identity).
	Exclude []string
}

// FieldError reports a field that could not be coerced.
type FieldError struct {
	Field string
	Value string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("campo %s: valor inválido %q", e.Field, e.Value)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}

// Build applies the mode rules to values:
//   - ID_* fields become integers; empty ones are omitted in add mode and
//     sent as null in edit mode.
//   - Other fields are trimmed. Add mode omits empty values (or nulls them
//     with NullFill). Edit mode sends Clearable fields even when empty and
//     omits other empty fields.
func Build(values url.Values, f Fields, mode Mode) (map[string]any, error) {
	out := make(map[string]any, len(f.Names))
	for _, name := range f.Names {
		if contains(f.Exclude, name) {
			continue
		}
		raw, present := values[name]
		v := ""
		if present && len(raw) > 0 {
			v = strings.TrimSpace(raw[0])
		}

		if strings.HasPrefix(name, IDPrefix) {
			if v == "" {
				if mode == ModeEdit && present {
					out[name] = nil
				}
				continue
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				return nil, &FieldError{Field: name, Value: v}
			}
			out[name] = n
			continue
		}

		switch {
		case v != "":
			out[name] = v
		case mode == ModeEdit && present && contains(f.Clearable, name):
			out[name] = ""
		case mode == ModeAdd && f.NullFill:
			out[name] = nil
		}
	}
	return out, nil
}
