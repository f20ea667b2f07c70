package config

import (
	"fmt"

	"github.com/shytext/shytext/internal/hotkey"
	"github.com/shytext/shytext/internal/language"
)

// Validate checks the fields this application owns. ModelPath is the
// model collaborator's concern and is only format-checked elsewhere.
func (c Config) Validate() error {
	if c.Hotkey == "" {
		return fmt.Errorf("invalid hotkey: empty")
	}
	if !hotkey.Valid(c.Hotkey) {
		return fmt.Errorf("invalid hotkey: %q", c.Hotkey)
	}

	if !language.IsValidCode(c.Language) {
		return fmt.Errorf("invalid language: %q (use %q or an ISO 639-1 code like 'en', 'es', 'fr')",
			c.Language, language.AutoCode)
	}

	if c.GpuDevice < 0 {
		return fmt.Errorf("invalid gpu_device: %d", c.GpuDevice)
	}

	return nil
}
