package modal

import (
	"context"
	"strconv"
	"strings"

	"github.com/dalemusser/assetmanager/internal/domain/models"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Placeholder is the first option of every dropdown.
const Placeholder = "Selecione..."

// Option is one <option> element.
type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Dropdown is a rebuilt <select>.
type Dropdown struct {
	Name    string
	Options []Option
}

// Build returns a dropdown with the placeholder followed by one option per
// item, marking selected when it matches.
func Build[T any](name string, items []T, value func(T) int, label func(T) string, selected *int) Dropdown {
	d := Dropdown{Name: name, Options: make([]Option, 0, len(items)+1)}
	d.Options = append(d.Options, Option{Value: "", Label: Placeholder, Selected: selected == nil})
	for _, it := range items {
		v := value(it)
		d.Options = append(d.Options, Option{
			Value:    strconv.Itoa(v),
			Label:    label(it),
			Selected: selected != nil && *selected == v,
		})
	}
	return d
}

func nameOf(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OperatingSystemLabel renders "Nome Versao", or just the name.
func OperatingSystemLabel(o models.OperatingSystem) string {
	name := nameOf(o.Nome)
	if o.Versao != nil && strings.TrimSpace(*o.Versao) != "" {
		return strings.TrimSpace(name + " " + *o.Versao)
	}
	return name
}

// LookupSource provides the three device lookup tables.
type LookupSource interface {
	Manufacturers(ctx context.Context, token string) ([]models.Manufacturer, error)
	OperatingSystems(ctx context.Context, token string) ([]models.OperatingSystem, error)
	DeviceTypes(ctx context.Context, token string) ([]models.DeviceType, error)
}

// DeviceDropdowns are the selects of the device add/edit form.
type DeviceDropdowns struct {
	Manufacturers    Dropdown
	OperatingSystems Dropdown
	DeviceTypes      Dropdown
}

// Selection is the current value of each device select.
type Selection struct {
	Manufacturer    *int
	OperatingSystem *int
	DeviceType      *int
}

// LoadDeviceDropdowns fetches the three lookups concurrently. A failed lookup
// is logged and leaves its dropdown with only the placeholder.
func LoadDeviceDropdowns(ctx context.Context, src LookupSource, token string, sel Selection, log *zap.Logger) DeviceDropdowns {
	var (
		mans  []models.Manufacturer
		oses  []models.OperatingSystem
		types []models.DeviceType
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		if mans, err = src.Manufacturers(ctx, token); err != nil {
			log.Warn("load manufacturers failed", zap.Error(err))
			mans = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if oses, err = src.OperatingSystems(ctx, token); err != nil {
			log.Warn("load operating systems failed", zap.Error(err))
			oses = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if types, err = src.DeviceTypes(ctx, token); err != nil {
			log.Warn("load device types failed", zap.Error(err))
			types = nil
		}
		return nil
	})
	_ = g.Wait()

	return DeviceDropdowns{
		Manufacturers: Build("ID_Fabricante", mans,
			func(m models.Manufacturer) int { return m.ID },
			func(m models.Manufacturer) string { return nameOf(m.Nome) },
			sel.Manufacturer),
		OperatingSystems: Build("ID_SistemaOperacional", oses,
			func(o models.OperatingSystem) int { return o.ID },
			OperatingSystemLabel,
			sel.OperatingSystem),
		DeviceTypes: Build("ID_TipoDispositivo", types,
			func(t models.DeviceType) int { return t.ID },
			func(t models.DeviceType) string { return nameOf(t.Nome) },
			sel.DeviceType),
	}
}
