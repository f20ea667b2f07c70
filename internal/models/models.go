package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shytext/shytext/internal/config"
)

// ModelInfo describes a whisper model file on disk.
type ModelInfo struct {
	Name string
	Path string
	Size int64
}

// Dir returns the models directory, creating it if needed.
func Dir() (string, error) {
	configDir, err := config.Dir()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(configDir, "models")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create models directory: %w", err)
	}

	return dir, nil
}

// Detect scans the models directory for model files.
func Detect() ([]ModelInfo, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return DetectIn(dir)
}

// DetectIn scans dir for *.bin model files.
func DetectIn(dir string) ([]ModelInfo, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read models directory %s: %w", dir, err)
	}

	var models []ModelInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".bin" {
			continue
		}

		info, err := entry.Info()
		var size int64
		if err == nil {
			size = info.Size()
		}

		models = append(models, ModelInfo{
			Name: strings.TrimSuffix(entry.Name(), ".bin"),
			Path: filepath.Join(dir, entry.Name()),
			Size: size,
		})
	}

	return models, nil
}

// Multilingual reports whether a model path names a multilingual model.
// English-only whisper models carry the ".en" suffix (base.en, small.en).
func Multilingual(path string) bool {
	name := strings.TrimSuffix(filepath.Base(path), ".bin")
	return !strings.HasSuffix(name, ".en")
}
