package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds all application configuration.
type Config struct {
	Station   StationConfig   `toml:"station"`
	Interface InterfaceConfig `toml:"interface"`
	Map       MapConfig       `toml:"map"`
	Msgbar    MsgbarConfig    `toml:"msgbar"`
}

// StationConfig holds settings specific to the user's station.
type StationConfig struct {
	Callsign   string `toml:"callsign"`
	Passcode   int    `toml:"passcode"`
	GridSquare string `toml:"gridsquare"`
}

// InterfaceConfig selects and configures the packet source: a local KISS
// TNC (serial or TCP) or a remote APRS-IS server.
type InterfaceConfig struct {
	Type   string `toml:"type"`   // "KISS" or "APRSIS"
	Device string `toml:"device"` // KISS: serial device path or "host:port" for TCP KISS

	// APRSIS overrides. Server defaults to the public rotating APRS-IS
	// pool; Filter defaults to a radius filter centered on the station's
	// gridsquare when unset.
	Server string `toml:"server"`
	Filter string `toml:"filter"`
	Vers   string `toml:"vers"` // login "vers" version sent after the software name "aprsgo", default "0.1"
}

// MapConfig holds map-specific settings.
type MapConfig struct {
	DefaultZoom float64 `toml:"defaultzoom"`
}

// MsgbarConfig holds message-bar behavior settings.
type MsgbarConfig struct {
	Say bool `toml:"say"` // speak incoming messages aloud via the "say" command
}

// LoadConfig reads the configuration from config.toml in the current
// working directory.
func LoadConfig() (Config, error) {
	path := "config.toml" // Assumes config is in the root
	var conf Config

	data, err := os.ReadFile(path)
	if err != nil {
		return conf, err
	}

	if err := toml.Unmarshal(data, &conf); err != nil {
		return conf, err
	}

	return conf, nil
}
