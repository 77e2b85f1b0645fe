package mwmregistry

import (
	"encoding/json"
	"os"
)

// Configuration holds the settings needed to bring up a Coordinator and,
// optionally, the startup directory scan and admin HTTP surface around it.
type Configuration struct {
	// CachePayloadCapacity bounds the number of idle payloads the Coordinator
	// keeps in its LRU cache.
	CachePayloadCapacity int `json:"cachePayloadCapacity"`
	// ScanDirectory, if non-empty, is scanned for candidate map files at startup.
	ScanDirectory string `json:"scanDirectory"`
	// LogLevel overrides MWMREG_LOG_LEVEL when set to "DEBUG", "WARN" or "ERROR";
	// any other value, including "", keeps the level MWMREG_LOG_LEVEL chose (Info by default).
	LogLevel string `json:"logLevel"`
}

// LoadConfiguration reads a JSON file into a Configuration.
func LoadConfiguration(filename string) (Configuration, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return Configuration{}, err
	}
	var c Configuration
	if err := json.Unmarshal(b, &c); err != nil {
		return Configuration{}, err
	}
	return c, nil
}
