package main

import (
	"fmt"
	"os"
	"time"

	"github.com/goburrow/serial"
	"gopkg.in/yaml.v3"
)

// Config is the jvsutil configuration file.
//
// Example:
//
//	serial:
//	  address: /dev/ttyUSB0
//	  baud_rate: 115200
//	  parity: N
//	protocol:
//	  family: modified
//	  destination: 0xFF
type Config struct {
	Serial   SerialConfig   `yaml:"serial"`
	Protocol ProtocolConfig `yaml:"protocol"`
}

// SerialConfig describes the serial port to open.
type SerialConfig struct {
	Address   string `yaml:"address"`
	BaudRate  int    `yaml:"baud_rate"`
	DataBits  int    `yaml:"data_bits"`
	StopBits  int    `yaml:"stop_bits"`
	Parity    string `yaml:"parity"`
	TimeoutMs int    `yaml:"timeout_ms"`
}

// ProtocolConfig selects the protocol family and the slave address.
type ProtocolConfig struct {
	Family      string `yaml:"family"`
	Destination uint8  `yaml:"destination"`
}

// Protocol family names accepted in configuration and flags.
const (
	familyStandard = "standard"
	familyModified = "modified"
)

// defaultConfig returns the configuration used when no file is given.
func defaultConfig() Config {
	return Config{
		Serial: SerialConfig{
			BaudRate:  115200,
			DataBits:  8,
			StopBits:  1,
			Parity:    "N",
			TimeoutMs: 500,
		},
		Protocol: ProtocolConfig{
			Family:      familyStandard,
			Destination: 0xFF,
		},
	}
}

// loadConfig reads a yaml configuration file, overlaying it on the defaults,
// and validates the result.
func loadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// validate checks the configuration for values the serial layer or the
// protocol cannot work with.
func (c *Config) validate() error {
	if c.Serial.BaudRate <= 0 {
		return fmt.Errorf("serial.baud_rate must be positive, got %d", c.Serial.BaudRate)
	}
	if c.Serial.DataBits != 0 && (c.Serial.DataBits < 5 || c.Serial.DataBits > 8) {
		return fmt.Errorf("serial.data_bits must be 5-8, got %d", c.Serial.DataBits)
	}
	switch c.Serial.Parity {
	case "", "N", "E", "O":
	default:
		return fmt.Errorf("serial.parity must be N, E or O, got %q", c.Serial.Parity)
	}
	if c.Serial.TimeoutMs < 0 {
		return fmt.Errorf("serial.timeout_ms must not be negative, got %d", c.Serial.TimeoutMs)
	}
	switch c.Protocol.Family {
	case familyStandard, familyModified:
	default:
		return fmt.Errorf("protocol.family must be %q or %q, got %q",
			familyStandard, familyModified, c.Protocol.Family)
	}
	return nil
}

// open opens the configured serial port.
func (c *SerialConfig) open() (serial.Port, error) {
	if c.Address == "" {
		return nil, fmt.Errorf("serial.address is required")
	}
	return serial.Open(&serial.Config{
		Address:  c.Address,
		BaudRate: c.BaudRate,
		DataBits: c.DataBits,
		StopBits: c.StopBits,
		Parity:   c.Parity,
		Timeout:  time.Duration(c.TimeoutMs) * time.Millisecond,
	})
}
