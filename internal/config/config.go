// Package config handles converter configuration loading and management.
package config

// Config holds all converter settings.
type Config struct {
	Convert ConvertConfig `yaml:"convert"`
	Logging LoggingConfig `yaml:"logging"`
}

// ConvertConfig holds the input, layout and output of a conversion.
type ConvertConfig struct {
	Input     string `yaml:"input"`      // Source OBJ path; prompted for when empty
	Output    string `yaml:"output"`     // Output buffer path, "-" for stdout
	Order     string `yaml:"order"`      // Field order, e.g. "vx vy vz nx ny nz tu tv"
	Encoding  string `yaml:"encoding"`   // Source text charset
	ByteOrder string `yaml:"byte_order"` // little | big | native
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Convert: ConvertConfig{
			Input:     "",
			Output:    "output.vbo",
			Order:     "",
			Encoding:  "utf-8",
			ByteOrder: "little",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
