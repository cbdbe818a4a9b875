package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagListen = flag.String("listen", "", "UDP address to receive /quat messages on")
	flagWidth  = flag.Int("width", 0, "Window width")
	flagHeight = flag.Int("height", 0, "Window height")

	// nxsend only
	flagTarget = flag.String("target", "", "UDP address to send /quat messages to")
	flagRate   = flag.Int("rate", 0, "Send rate in messages per second")
	flagReplay = flag.String("replay", "", "Tracker frame capture to replay instead of the synthetic source")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via -config.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagListen != "" {
		cfg.Listener.Listen = *flagListen
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagTarget != "" {
		cfg.Sender.Target = *flagTarget
	}
	if *flagRate > 0 {
		cfg.Sender.RateHz = *flagRate
	}
	if *flagReplay != "" {
		cfg.Sender.Replay = *flagReplay
	}
}
