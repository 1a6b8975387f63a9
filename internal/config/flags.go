package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagInput      = flag.String("in", "", "Source OBJ file")
	flagOutput     = flag.String("out", "", "Output buffer file (- for stdout)")
	flagOrder      = flag.String("order", "", "Output field order, e.g. \"vx vy vz nx ny nz tu tv\"")
	flagEncoding   = flag.String("encoding", "", "Source text charset (utf-8, euc-kr, latin1, ...)")
	flagByteOrder  = flag.String("byte-order", "", "Output byte order: little, big or native")
	flagLogFile    = flag.String("log-file", "", "Write logs to this file as well")
	flagSaveConfig = flag.Bool("save-config", false, "Save the effective config to the user config dir")
	flagListFields = flag.Bool("fields", false, "List field order tokens and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// ListFieldsRequested reports whether --fields was given.
func ListFieldsRequested() bool {
	return *flagListFields
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagInput != "" {
		cfg.Convert.Input = *flagInput
	}
	if *flagOutput != "" {
		cfg.Convert.Output = *flagOutput
	}
	if *flagOrder != "" {
		cfg.Convert.Order = *flagOrder
	}
	if *flagEncoding != "" {
		cfg.Convert.Encoding = *flagEncoding
	}
	if *flagByteOrder != "" {
		cfg.Convert.ByteOrder = *flagByteOrder
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
}
