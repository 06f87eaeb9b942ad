package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Spelling selects which enharmonic table the UI displays with.
type Spelling string

const (
	SpellingSharp Spelling = "sharp"
	SpellingFlat  Spelling = "flat"
)

// MIDIConfig defines the MIDI output used to sound notes and chords.
type MIDIConfig struct {
	PortName string `json:"portName,omitempty"` // substring match, empty = first port
	Channel  uint8  `json:"channel,omitempty"`  // 0-15
	Velocity uint8  `json:"velocity,omitempty"`
	NoteMs   int    `json:"noteMs,omitempty"`  // chord hold time
	StrumMs  int    `json:"strumMs,omitempty"` // delay between chord tones
}

// UIConfig stores the explorer's last selections. Tonic is a pitch class
// 0-11, Mode and Quality index the scale/chord menus.
type UIConfig struct {
	Tonic    int      `json:"tonic"`
	Mode     int      `json:"mode"`
	Quality  int      `json:"quality"`
	Octave   int      `json:"octave,omitempty"`
	Spelling Spelling `json:"spelling,omitempty"`
}

// Config is the main configuration structure.
type Config struct {
	MIDI    MIDIConfig `json:"midi,omitempty"`
	UI      UIConfig   `json:"ui,omitempty"`
	Palette string     `json:"palette,omitempty"` // optional GPL palette file
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		MIDI: MIDIConfig{
			Velocity: 100,
			NoteMs:   600,
			StrumMs:  40,
		},
		UI: UIConfig{
			Octave:   4,
			Spelling: SpellingSharp,
		},
	}
}

// ConfigDir returns the config directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "staff"), nil
}

// ConfigPath returns the full path to config.json.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// Load reads the config from disk, or returns defaults if not found.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the config to disk.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
