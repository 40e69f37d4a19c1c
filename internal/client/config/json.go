package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/omccomas/terminal/internal/flagx"
	"github.com/omccomas/terminal/internal/timex"
)

// JsonConfig is an intermediate DTO used only for reading JSON configuration
// files. It uses timex.Duration for interval fields, which allows parsing
// both string values such as "1s" and integer nanoseconds.
type JsonConfig struct {
	ServerURL      string         `json:"server_url"`
	DatabasePath   string         `json:"database_path"`
	SearchURL      string         `json:"search_url"`
	BootSequence   *bool          `json:"boot_sequence"`
	MacroStepDelay timex.Duration `json:"macro_step_delay"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no file is named, nothing
// is loaded.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ServerURL = c.ServerURL
	config.DatabasePath = c.DatabasePath
	config.SearchURL = c.SearchURL
	if c.BootSequence != nil {
		config.BootSequence = *c.BootSequence
	}
	config.MacroStepDelay = time.Duration(c.MacroStepDelay.Duration)
	config.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
