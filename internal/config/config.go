// Package config handles viewer configuration loading and management.
package config

// Config holds all nxview settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Listener ListenerConfig `yaml:"listener"`
	Sender   SenderConfig   `yaml:"sender"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// ListenerConfig holds the OSC input settings for nxview.
type ListenerConfig struct {
	// Listen is the UDP address the tracker bridge sends /quat to.
	Listen string `yaml:"listen"`
}

// SenderConfig holds settings for the nxsend test producer.
type SenderConfig struct {
	Target string `yaml:"target"`
	RateHz int    `yaml:"rate_hz"`
	// Replay is a path to a capture of raw tracker frames. Empty means
	// use the synthetic rotation source.
	Replay string `yaml:"replay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  600,
			Height: 600,
			Title:  "Nx Orientation Viewer",
			VSync:  true,
		},
		Listener: ListenerConfig{
			Listen: "127.0.0.1:9000",
		},
		Sender: SenderConfig{
			Target: "127.0.0.1:9000",
			RateHz: 50,
			Replay: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
