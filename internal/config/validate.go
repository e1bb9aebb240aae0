package config

import (
	"errors"
	"fmt"

	"github.com/patrickprogramme/subshare/internal/view"
	"github.com/patrickprogramme/subshare/pkg/model"
)

// Validate vérifie les valeurs énumérées ; toutes les erreurs sont remontées ensemble.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config nil")
	}
	var errs []error
	if _, err := model.ParseLang(c.ExportLang); err != nil {
		errs = append(errs, fmt.Errorf("export_lang: %w", err))
	}
	for _, f := range c.ExportFormats {
		if _, err := model.ParseFormat(f); err != nil {
			errs = append(errs, fmt.Errorf("export_formats: %w", err))
		}
	}
	if _, err := view.ParseDisplay(c.Display); err != nil {
		errs = append(errs, fmt.Errorf("display: %w", err))
	}
	return errors.Join(errs...)
}

// Lang retourne la langue d'export (japonais si la valeur est invalide).
func (c *Config) Lang() model.Lang {
	l, err := model.ParseLang(c.ExportLang)
	if err != nil {
		return model.LangJA
	}
	return l
}

// Formats retourne les formats d'export valides, dans l'ordre du fichier.
func (c *Config) Formats() []model.Format {
	out := make([]model.Format, 0, len(c.ExportFormats))
	for _, s := range c.ExportFormats {
		if f, err := model.ParseFormat(s); err == nil {
			out = append(out, f)
		}
	}
	return out
}

// DisplayMode retourne le mode d'affichage initial du lecteur terminal.
func (c *Config) DisplayMode() view.Display {
	d, _ := view.ParseDisplay(c.Display)
	return d
}

// OverlayOptions traduit le style en options de l'incrustation.
func (c *Config) OverlayOptions() view.OverlayOptions {
	return view.OverlayOptions{
		Display: c.DisplayMode(),
		KoFirst: c.Style.KoFirst,
		Ruby:    c.Style.Ruby,
	}
}
