package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/language"
)

// languageOptions builds the language selector choices. Without a loaded
// model the selector stays empty (the section is not offered at all); a
// single-language model exposes only the fixed "en" code, with no
// auto-detect sentinel.
func languageOptions(modelLoaded, multilingual bool, langs []language.Language) []huh.Option[string] {
	if !modelLoaded {
		return nil
	}

	if !multilingual {
		return []huh.Option[string]{
			huh.NewOption(language.English.Name, language.English.Code),
		}
	}

	options := make([]huh.Option[string], 0, len(langs)+1)
	options = append(options, huh.NewOption(language.Auto.Name, language.AutoCode))
	for _, lang := range langs {
		options = append(options, huh.NewOption(lang.Name, lang.Code))
	}
	return options
}

// gpuOptions builds the GPU device selector choices.
func gpuOptions(devices []backend.GpuDevice) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(devices))
	for _, d := range devices {
		label := d.Name
		if d.Backend != "" {
			label = fmt.Sprintf("%s (%s)", d.Name, d.Backend)
		}
		options = append(options, huh.NewOption(label, d.ID))
	}
	return options
}

// gpuEditable reports whether the GPU section can be edited at all.
func gpuEditable(devices []backend.GpuDevice) bool {
	return len(devices) > 0
}
