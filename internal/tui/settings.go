// Package tui is the interactive settings editor. It owns a draft via
// the settings store, gates sections on backend capabilities and, on
// apply, persists, commits and notifies in that order.
package tui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/huh"
	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/hotkey"
	"github.com/shytext/shytext/internal/language"
	"github.com/shytext/shytext/internal/notify"
	"github.com/shytext/shytext/internal/settings"
)

type section string

const (
	sectionHotkey   section = "hotkey"
	sectionLanguage section = "language"
	sectionOutput   section = "output"
	sectionGpu      section = "gpu"
	sectionSaveExit section = "save_exit"
	sectionDiscard  section = "discard_exit"
)

// Run drives the settings menu until the user saves or discards.
func Run(ctx context.Context, b backend.Backend, n notify.Notifier) error {
	cfg, err := b.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// capability data is fetched once; sections gate on it for the
	// whole editing session
	devices, err := b.GetGpuDevices(ctx)
	if err != nil {
		log.Printf("Configure: gpu device listing failed: %v", err)
	}
	langs, err := b.GetSupportedLanguages(ctx)
	if err != nil {
		log.Printf("Configure: language listing failed: %v", err)
	}
	modelLoaded, _ := b.HasModelLoaded(ctx)
	multilingual, _ := b.IsModelMultilingual(ctx)

	store := settings.New(cfg, b,
		settings.WithDeviceRenderer(settings.GpuDeviceRenderer(devices)))

	for {
		clearScreen()
		fmt.Println(StyleHeader.Render("shytext settings"))

		choice, err := selectSection(store, modelLoaded, devices)
		if err != nil {
			return nil // user backed out
		}

		switch choice {
		case sectionHotkey:
			if err := editHotkey(store); err != nil {
				continue
			}

		case sectionLanguage:
			if err := editLanguage(store, modelLoaded, multilingual, langs); err != nil {
				continue
			}

		case sectionOutput:
			if err := editOutput(store); err != nil {
				continue
			}

		case sectionGpu:
			if err := editGpu(store, devices); err != nil {
				continue
			}

		case sectionSaveExit:
			changes, err := store.Apply(ctx)
			if err != nil {
				// draft is preserved; show the failure and keep editing
				fmt.Println(StyleError.Render(fmt.Sprintf("Failed to save: %v", err)))
				if !confirmRetry() {
					return err
				}
				continue
			}
			notify.ChangesApplied(n, changes)
			return nil

		case sectionDiscard:
			return nil
		}
	}
}

func selectSection(store *settings.Store, modelLoaded bool, devices []backend.GpuDevice) (section, error) {
	draft := store.Draft()

	options := []huh.Option[section]{
		huh.NewOption(fmt.Sprintf("Hotkey (%s)", draft.Hotkey), sectionHotkey),
	}

	// language is only editable once a model is loaded
	if modelLoaded {
		options = append(options,
			huh.NewOption(fmt.Sprintf("Language (%s)", language.DisplayName(draft.Language)), sectionLanguage))
	}

	options = append(options,
		huh.NewOption(fmt.Sprintf("Output (copy %s, notify %s)",
			onOff(draft.AutoCopy), onOff(draft.ShowNotifications)), sectionOutput))

	if gpuEditable(devices) {
		options = append(options,
			huh.NewOption(fmt.Sprintf("GPU (%s)", onOff(draft.UseGpu)), sectionGpu))
	}

	saveLabel := "Save & Exit"
	if store.HasPendingChanges() {
		saveLabel = fmt.Sprintf("Save & Exit (%d pending)", len(store.Diff()))
	}
	options = append(options,
		huh.NewOption(saveLabel, sectionSaveExit),
		huh.NewOption("Discard & Exit", sectionDiscard),
	)

	var selected section
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[section]().
				Title("Settings").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func editHotkey(store *settings.Store) error {
	combo := store.Draft().Hotkey

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Global hotkey").
				Description("Modifiers+key, e.g. Ctrl+Shift+R; bare F1-F12 allowed").
				Validate(func(s string) error {
					_, err := hotkey.Parse(s)
					return err
				}).
				Value(&combo),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	normalized, err := hotkey.Parse(combo)
	if err != nil {
		return err
	}
	store.SetHotkey(string(normalized))
	return nil
}

func editLanguage(store *settings.Store, modelLoaded, multilingual bool, langs []language.Language) error {
	options := languageOptions(modelLoaded, multilingual, langs)
	if len(options) == 0 {
		return nil
	}

	code := store.Draft().Language
	if !multilingual {
		// the stored value may be a multilingual leftover
		code = language.English.Code
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Transcription language").
				Options(options...).
				Value(&code),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	store.SetLanguage(code)
	return nil
}

func editOutput(store *settings.Store) error {
	draft := store.Draft()
	autoCopy := draft.AutoCopy
	showNotifications := draft.ShowNotifications

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Copy transcriptions to clipboard?").
				Value(&autoCopy),
			huh.NewConfirm().
				Title("Show desktop notifications?").
				Value(&showNotifications),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	store.SetAutoCopy(autoCopy)
	store.SetShowNotifications(showNotifications)
	return nil
}

func editGpu(store *settings.Store, devices []backend.GpuDevice) error {
	if !gpuEditable(devices) {
		return nil
	}

	draft := store.Draft()
	useGpu := draft.UseGpu

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use GPU for transcription?").
				Value(&useGpu),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}
	store.SetUseGpu(useGpu)

	if !useGpu {
		return nil
	}

	device := draft.GpuDevice
	deviceForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("GPU device").
				Options(gpuOptions(devices)...).
				Value(&device),
		),
	).WithTheme(getTheme())

	if err := deviceForm.Run(); err != nil {
		return err
	}
	store.SetGpuDevice(device)
	return nil
}

func confirmRetry() bool {
	retry := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Keep editing? (your changes are preserved)").
				Value(&retry),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return false
	}
	return retry
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
