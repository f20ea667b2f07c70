package backend

import (
	"context"

	"github.com/shytext/shytext/internal/config"
	"github.com/shytext/shytext/internal/language"
	"github.com/shytext/shytext/internal/models"
)

// GpuDevice is a GPU the engine can run inference on. Read-only,
// identified by ID.
type GpuDevice struct {
	ID         int
	Name       string
	DeviceType string
	Backend    string
}

// Backend is the boundary to the speech engine and settings persistence.
// Every call is an asynchronous request/reply from the caller's point of
// view: run it from a goroutine and apply the result when it lands.
// There is no cancellation of in-flight calls beyond ctx; a superseded
// reply simply loses by arriving first.
type Backend interface {
	LoadModel(ctx context.Context, path string) error
	HasModelLoaded(ctx context.Context) (bool, error)
	IsModelMultilingual(ctx context.Context) (bool, error)

	GetConfig(ctx context.Context) (config.Config, error)
	SaveConfig(ctx context.Context, cfg config.Config) error

	GetAvailableModels(ctx context.Context) ([]models.ModelInfo, error)
	GetModelsDirectory(ctx context.Context) (string, error)
	GetSupportedLanguages(ctx context.Context) ([]language.Language, error)
	GetGpuDevices(ctx context.Context) ([]GpuDevice, error)
}
