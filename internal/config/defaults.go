package config

// Default returns the configuration written on first run.
func Default() Config {
	return Config{
		Hotkey:            "F9",
		Language:          "auto",
		ModelPath:         "",
		AutoCopy:          true,
		ShowNotifications: true,
		UseGpu:            false,
		GpuDevice:         0,
	}
}
