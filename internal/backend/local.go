package backend

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/shytext/shytext/internal/config"
	"github.com/shytext/shytext/internal/language"
	"github.com/shytext/shytext/internal/models"
)

// GpuEnumerator lists the GPU devices inference can target. The real
// probe lives in the engine process; Local takes it as a function so the
// settings layer stays testable without a Vulkan stack.
type GpuEnumerator func() []GpuDevice

// Local is the file/OS-backed Backend used by the daemon and the
// settings TUI. Model state is tracked from LoadModel calls; config and
// model listing are plain filesystem work.
type Local struct {
	Events Publisher

	mu           sync.Mutex
	loaded       bool
	multilingual bool

	enumerateGpus GpuEnumerator
}

type LocalOption func(*Local)

// WithGpuEnumerator plugs in a device probe.
func WithGpuEnumerator(fn GpuEnumerator) LocalOption {
	return func(l *Local) { l.enumerateGpus = fn }
}

func NewLocal(opts ...LocalOption) *Local {
	l := &Local{
		enumerateGpus: func() []GpuDevice { return nil },
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadModel validates the model file, records it in the configuration
// and tracks whether it is multilingual.
func (l *Local) LoadModel(ctx context.Context, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("model file not found: %s", path)
	}
	if info.IsDir() || filepath.Ext(path) != ".bin" {
		return fmt.Errorf("not a valid model file: %s", path)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.ModelPath = path
	if err := config.Save(cfg); err != nil {
		return err
	}

	l.mu.Lock()
	l.loaded = true
	l.multilingual = models.Multilingual(path)
	l.mu.Unlock()

	log.Printf("Backend: model loaded: %s (multilingual=%t)", path, models.Multilingual(path))
	return nil
}

func (l *Local) HasModelLoaded(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded, nil
}

func (l *Local) IsModelMultilingual(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.multilingual, nil
}

func (l *Local) GetConfig(ctx context.Context) (config.Config, error) {
	return config.Load()
}

func (l *Local) SaveConfig(ctx context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return config.Save(cfg)
}

func (l *Local) GetAvailableModels(ctx context.Context) ([]models.ModelInfo, error) {
	return models.Detect()
}

func (l *Local) GetModelsDirectory(ctx context.Context) (string, error) {
	return models.Dir()
}

func (l *Local) GetSupportedLanguages(ctx context.Context) ([]language.Language, error) {
	return language.List(), nil
}

func (l *Local) GetGpuDevices(ctx context.Context) ([]GpuDevice, error) {
	return l.enumerateGpus(), nil
}

var _ Backend = (*Local)(nil)
