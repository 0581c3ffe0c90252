// Package modal models the add/edit/detail dialogs of the list pages and
// builds their lookup dropdowns.
package modal

import (
	"encoding/json"
	"fmt"
)

// State is which dialog, if any, is shown.
type State int

const (
	Hidden State = iota
	Add
	Edit
	Detail
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Add:
		return "add"
	case Edit:
		return "edit"
	case Detail:
		return "detail"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Open moves from Hidden to target. Opening while another dialog is shown is
// an error; the caller closes first.
func (s State) Open(target State) (State, error) {
	if target == Hidden {
		return s, fmt.Errorf("modal: cannot open %s", target)
	}
	if s != Hidden {
		return s, fmt.Errorf("modal: %s already open", s)
	}
	return target, nil
}

// Close returns Hidden from any state.
func (s State) Close() State { return Hidden }

// View is embedded in the modal snippets rendered into #modal-root.
type View struct {
	State State
	Title string
	// CloseDelayMs is set after a successful submit so the client closes the
	// dialog after showing the status message.
	CloseDelayMs int
}

// IsOpen reports whether the dialog markup should be rendered.
func (v View) IsOpen() bool { return v.State != Hidden }

// Titles used by the device dialogs.
const (
	TitleAddDevice    = "Adicionar Novo Dispositivo"
	TitleEditDevice   = "Editar Dispositivo"
	TitleDeviceDetail = "Detalhes do Dispositivo"
	TitleAlertDetail  = "Detalhes do Alerta"
	TitleIPDetail     = "Detalhes do IP Descoberto"
)

// CloseDelayMs is how long a dialog stays open after a successful submit.
const CloseDelayMs = 1500

// Trigger returns the HX-Trigger header value sent after a successful
// submit: the dialog closes after CloseDelayMs and each event fires so the
// page can refresh its table.
func Trigger(events ...string) string {
	m := map[string]any{"closeModal": map[string]int{"delay": CloseDelayMs}}
	for _, ev := range events {
		m[ev] = true
	}
	b, err := json.Marshal(m)
	if err != nil {
		return ""
	}
	return string(b)
}
