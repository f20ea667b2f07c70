package config

// Config is the persisted settings record. GpuDevice is only meaningful
// while UseGpu is set and the engine reports at least one device; the
// value is retained but ignored otherwise.
type Config struct {
	Hotkey            string `toml:"hotkey"`
	Language          string `toml:"language"`
	ModelPath         string `toml:"model_path"`
	AutoCopy          bool   `toml:"auto_copy"`
	ShowNotifications bool   `toml:"show_notifications"`
	UseGpu            bool   `toml:"use_gpu"`
	GpuDevice         int    `toml:"gpu_device"`
}
