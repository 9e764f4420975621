package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/campusreg/lostfound/internal/flagx"
)

// JsonConfig is an intermediate DTO used only for reading JSON
// configuration files. Durations are given as Go duration strings
// ("8h", "30m"). After unmarshalling, non-empty fields are copied into
// the runtime Config.
type JsonConfig struct {
	HTTPAddr      string `json:"http_addr"`
	DatabaseDSN   string `json:"database_dsn"`
	SecretKey     string `json:"secret_key"`
	TokenValidity string `json:"token_validity"`
	UploadDir     string `json:"upload_dir"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no flag is given, nothing is
// loaded. An unreadable or malformed file panics: a config file that was
// explicitly requested must be usable.
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

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity != "" {
		d, err := time.ParseDuration(c.TokenValidity)
		if err != nil {
			panic(err)
		}
		config.TokenValidity = d
	}
	if c.UploadDir != "" {
		config.UploadDir = c.UploadDir
	}
}
