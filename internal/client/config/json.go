package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mpetrenko/authcore/internal/flagx"
	"github.com/mpetrenko/authcore/internal/timex"
)

// JsonConfig is the DTO used for reading JSON configuration files. It uses
// timex.Duration for interval fields, which parses both string values such
// as "3s" and integer nanoseconds. After unmarshalling, its fields are
// copied into the runtime Config struct which uses time.Duration.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	RequestTimeout      timex.Duration `json:"request_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path comes from the -c or -config command-line flags; if
// neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics: a present-but-broken config
// file is a deployment error.
func parseJson(cfg *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
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

	cfg.ServerEndpointAddr = c.ServerEndpointAddr
	cfg.OnlineCheckInterval = time.Duration(c.OnlineCheckInterval.Duration)
	cfg.RequestTimeout = time.Duration(c.RequestTimeout.Duration)
}
