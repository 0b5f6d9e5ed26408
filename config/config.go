package config

import (
	"encoding/json"
	"os"
	"sync"
)

type Config struct {
	CSVFolderPath  string `json:"csvFolderPath"`
	MaxFileSizeMB  int    `json:"maxFileSizeMB"`
	ErrorThreshold int    `json:"errorThreshold"`
	AbortPolicy    string `json:"abortPolicy"` // "abort_all" or "commit_partial"
	VendorUserID   string `json:"vendorUserID"`
	VendorPassword string `json:"vendorPassword"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./bento_config.json"

func applyDefaults(c *Config) {
	if c.MaxFileSizeMB == 0 {
		c.MaxFileSizeMB = 10
	}
	if c.ErrorThreshold == 0 {
		c.ErrorThreshold = 50
	}
	if c.AbortPolicy == "" {
		c.AbortPolicy = "abort_all"
	}
}

func LoadConfig() (Config, error) {
	mu.RLock()
	defer mu.RUnlock()

	file, err := os.ReadFile(configFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			defaults := Config{}
			applyDefaults(&defaults)
			cfg = defaults
			return defaults, nil
		}
		return Config{}, err
	}

	var tempCfg Config
	if err := json.Unmarshal(file, &tempCfg); err != nil {
		return Config{}, err
	}
	applyDefaults(&tempCfg)
	cfg = tempCfg

	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)

	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}
