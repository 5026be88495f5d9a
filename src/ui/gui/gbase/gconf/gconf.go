package gconf

import (
	"encoding/json"
	"fmt"
	"tilepuzzle/src/base"
	"tilepuzzle/src/ui/gui/gbase/gos"
)

const DefaultFile string = "tilepuzzle.json"

type Config struct {
	Theme     string `json:"theme"`      // light/dark
	Lang      string `json:"language"`   // en/ru
	GridSize  int    `json:"grid_size"`  // 3..8
	TimeLimit int    `json:"time_limit"` // seconds, 0 = no timer
	Sound     bool   `json:"sound"`      //
	LastImage string `json:"last_image"` // path of the last picked image
	WindowH   int    `json:"window_h"`   //
	WindowW   int    `json:"window_w"`   //
	Debug     bool   `json:"debug"`      // true/false

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:     "light",
		Lang:      "en",
		GridSize:  4,
		TimeLimit: 0,
		Sound:     true,
		WindowH:   760,
		WindowW:   1000,
		Debug:     false,
		path:      DefaultFile,
	}
}

func NewGUIConfig() (*Config, error) {
	return LoadConfig(DefaultFile)
}

// LoadConfig reads path or returns the defaults when it does not exist.
func LoadConfig(path string) (*Config, error) {
	_, err := gos.Stat(path)
	if gos.IsNotExist(err) {
		def := defaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	data, err := gos.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.path = path

	return &c, nil
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	return gos.WriteFile(c.path, jsonData, 0644)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.GridSize < base.MinGridSize || c.GridSize > base.MaxGridSize {
		c.GridSize = def.GridSize
	}
	if c.TimeLimit < 0 || c.TimeLimit > 3600 {
		c.TimeLimit = def.TimeLimit
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
}
