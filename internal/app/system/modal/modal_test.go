package modal_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"go.uber.org/zap"
)

func ptr[T any](v T) *T { return &v }

func TestStateTransitions(t *testing.T) {
	s := modal.Hidden
	s, err := s.Open(modal.Edit)
	if err != nil || s != modal.Edit {
		t.Fatalf("Open(Edit): got (%v, %v)", s, err)
	}
	if _, err := s.Open(modal.Add); err == nil {
		t.Error("opening while a dialog is shown should fail")
	}
	if s = s.Close(); s != modal.Hidden {
		t.Errorf("Close: got %v", s)
	}
	if _, err := s.Open(modal.Hidden); err == nil {
		t.Error("Open(Hidden) should fail")
	}
}

type fakeLookups struct {
	failOS bool
}

func (f fakeLookups) Manufacturers(ctx context.Context, token string) ([]models.Manufacturer, error) {
	return []models.Manufacturer{{ID: 1, Nome: ptr("Cisco")}, {ID: 2, Nome: ptr("Dell")}}, nil
}

func (f fakeLookups) OperatingSystems(ctx context.Context, token string) ([]models.OperatingSystem, error) {
	if f.failOS {
		return nil, errors.New("down")
	}
	return []models.OperatingSystem{{ID: 4, Nome: ptr("Ubuntu"), Versao: ptr("22.04")}, {ID: 5, Nome: ptr("IOS")}}, nil
}

func (f fakeLookups) DeviceTypes(ctx context.Context, token string) ([]models.DeviceType, error) {
	return []models.DeviceType{{ID: 9, Nome: ptr("Switch")}}, nil
}

func TestLoadDeviceDropdowns(t *testing.T) {
	dd := modal.LoadDeviceDropdowns(context.Background(), fakeLookups{}, "", modal.Selection{Manufacturer: ptr(2)}, zap.NewNop())

	m := dd.Manufacturers.Options
	if len(m) != 3 || m[0].Label != "Selecione..." || m[0].Value != "" {
		t.Fatalf("manufacturers: %+v", m)
	}
	if m[0].Selected || !m[2].Selected || m[1].Selected {
		t.Errorf("expected Dell selected, got %+v", m)
	}

	os := dd.OperatingSystems.Options
	if os[1].Label != "Ubuntu 22.04" || os[2].Label != "IOS" {
		t.Errorf("os labels: %+v", os)
	}
	if !os[0].Selected {
		t.Error("placeholder should be selected when nothing is chosen")
	}
}

func TestLoadDeviceDropdowns_FailedLookupKeepsPlaceholder(t *testing.T) {
	dd := modal.LoadDeviceDropdowns(context.Background(), fakeLookups{failOS: true}, "", modal.Selection{}, zap.NewNop())

	if n := len(dd.OperatingSystems.Options); n != 1 {
		t.Errorf("failed lookup: got %d options, want only the placeholder", n)
	}
	if n := len(dd.DeviceTypes.Options); n != 2 {
		t.Errorf("other dropdowns must still load, got %d options", n)
	}
}

func TestTrigger(t *testing.T) {
	var got map[string]any
	if err := json.Unmarshal([]byte(modal.Trigger("devices-changed")), &got); err != nil {
		t.Fatalf("Trigger is not JSON: %v", err)
	}
	closeModal, ok := got["closeModal"].(map[string]any)
	if !ok || closeModal["delay"] != float64(1500) {
		t.Errorf("closeModal = %v, want delay 1500", got["closeModal"])
	}
	if got["devices-changed"] != true {
		t.Errorf("devices-changed missing: %v", got)
	}
}
