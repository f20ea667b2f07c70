package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/shytext/shytext/internal/backend"
	"github.com/shytext/shytext/internal/config"
	"github.com/shytext/shytext/internal/language"
	"github.com/shytext/shytext/internal/models"
)

// TestConfig returns a valid configuration for testing.
func TestConfig() config.Config {
	return config.Config{
		Hotkey:            "F9",
		Language:          "auto",
		ModelPath:         "",
		AutoCopy:          true,
		ShowNotifications: true,
		UseGpu:            false,
		GpuDevice:         0,
	}
}

// MockBackend implements backend.Backend with overridable behavior.
// Zero value: defaults everywhere, no model, no devices.
type MockBackend struct {
	Events backend.Publisher

	Config       config.Config
	ConfigErr    error
	SaveErr      error
	SavedConfigs []config.Config

	ModelLoaded  bool
	Multilingual bool
	LoadErr      error

	Models  []models.ModelInfo
	Devices []backend.GpuDevice
}

func NewMockBackend() *MockBackend {
	return &MockBackend{Config: TestConfig()}
}

func (m *MockBackend) LoadModel(_ context.Context, path string) error {
	if m.LoadErr != nil {
		return m.LoadErr
	}
	m.ModelLoaded = true
	m.Config.ModelPath = path
	return nil
}

func (m *MockBackend) HasModelLoaded(context.Context) (bool, error) {
	return m.ModelLoaded, nil
}

func (m *MockBackend) IsModelMultilingual(context.Context) (bool, error) {
	return m.Multilingual, nil
}

func (m *MockBackend) GetConfig(context.Context) (config.Config, error) {
	if m.ConfigErr != nil {
		return config.Config{}, m.ConfigErr
	}
	return m.Config, nil
}

func (m *MockBackend) SaveConfig(_ context.Context, cfg config.Config) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.SavedConfigs = append(m.SavedConfigs, cfg)
	m.Config = cfg
	return nil
}

func (m *MockBackend) GetAvailableModels(context.Context) ([]models.ModelInfo, error) {
	return m.Models, nil
}

func (m *MockBackend) GetModelsDirectory(context.Context) (string, error) {
	return "/tmp/models", nil
}

func (m *MockBackend) GetSupportedLanguages(context.Context) ([]language.Language, error) {
	return language.List(), nil
}

func (m *MockBackend) GetGpuDevices(context.Context) ([]backend.GpuDevice, error) {
	return m.Devices, nil
}

var _ backend.Backend = (*MockBackend)(nil)

// RecordingNotifier captures notifications for assertions.
type RecordingNotifier struct {
	Titles []string
	Bodies []string
	Errors []string
}

func (r *RecordingNotifier) Notify(title, body string) {
	r.Titles = append(r.Titles, title)
	r.Bodies = append(r.Bodies, body)
}

func (r *RecordingNotifier) Error(msg string) {
	r.Errors = append(r.Errors, msg)
}

// WaitForCondition waits for a condition to be true or times out.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			t.Fatalf("Condition not met within %v", timeout)
		default:
			if condition() {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}
