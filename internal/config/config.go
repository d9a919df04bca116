// Package config loads assistant settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	NotesPath   string
	DefaultCity string
	NoteCount   int
	WakeGating  bool
	TeaInterval time.Duration

	Language  string
	Voice     string
	ListenFor time.Duration

	STTEndpoint  string
	TTSEndpoint  string
	WhisperModel string
}

// rawConfig is the YAML shape; durations come in as strings like "30m".
type rawConfig struct {
	NotesPath   *string `yaml:"notes_path"`
	DefaultCity *string `yaml:"default_city"`
	NoteCount   *int    `yaml:"note_count"`
	WakeGating  *bool   `yaml:"wake_gating"`
	TeaInterval *string `yaml:"tea_interval"`

	Language  *string `yaml:"language"`
	Voice     *string `yaml:"voice"`
	ListenFor *string `yaml:"listen_for"`

	STTEndpoint  *string `yaml:"stt_endpoint"`
	TTSEndpoint  *string `yaml:"tts_endpoint"`
	WhisperModel *string `yaml:"whisper_model"`
}

func Default() Config {
	return Config{
		NotesPath:   "notes.txt",
		DefaultCity: "Ankara",
		NoteCount:   5,
		WakeGating:  true,
		TeaInterval: 2 * time.Hour,
		Language:    "tr-TR",
		Voice:       "tr-TR-AhmetNeural",
		ListenFor:   8 * time.Second,
	}
}

// Load reads path over the defaults, then applies LEE_* environment
// overrides. A missing file is fine; a broken one is not.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		var raw rawConfig
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := raw.apply(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (r *rawConfig) apply(c *Config) error {
	setString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setString(&c.NotesPath, r.NotesPath)
	setString(&c.DefaultCity, r.DefaultCity)
	setString(&c.Language, r.Language)
	setString(&c.Voice, r.Voice)
	setString(&c.STTEndpoint, r.STTEndpoint)
	setString(&c.TTSEndpoint, r.TTSEndpoint)
	setString(&c.WhisperModel, r.WhisperModel)

	if r.NoteCount != nil {
		c.NoteCount = *r.NoteCount
	}
	if r.WakeGating != nil {
		c.WakeGating = *r.WakeGating
	}
	if r.TeaInterval != nil {
		d, err := time.ParseDuration(*r.TeaInterval)
		if err != nil {
			return fmt.Errorf("tea_interval: %w", err)
		}
		c.TeaInterval = d
	}
	if r.ListenFor != nil {
		d, err := time.ParseDuration(*r.ListenFor)
		if err != nil {
			return fmt.Errorf("listen_for: %w", err)
		}
		c.ListenFor = d
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LEE_NOTES"); v != "" {
		c.NotesPath = v
	}
	if v := os.Getenv("LEE_CITY"); v != "" {
		c.DefaultCity = v
	}
	if v := os.Getenv("LEE_VOICE"); v != "" {
		c.Voice = v
	}
	if v := os.Getenv("LEE_WAKE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.WakeGating = b
		}
	}
	if v := os.Getenv("LEE_TEA_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TeaInterval = d
		}
	}
	if v := os.Getenv("LEE_STT_ENDPOINT"); v != "" {
		c.STTEndpoint = v
	}
	if v := os.Getenv("LEE_TTS_ENDPOINT"); v != "" {
		c.TTSEndpoint = v
	}
	if v := os.Getenv("LEE_WHISPER_MODEL"); v != "" {
		c.WhisperModel = v
	}
}
