package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Paths       PathsConfig       `yaml:"paths"`
	Summary     SummaryConfig     `yaml:"summary"`
	Gemini      GeminiConfig      `yaml:"gemini"`
	TTS         TTSConfig         `yaml:"tts"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
}

type ServerConfig struct {
	Address     string `yaml:"address"`
	BodyLimitMB int    `yaml:"body_limit_mb"`
}

type PathsConfig struct {
	Uploads string `yaml:"uploads"`
	Inbox   string `yaml:"inbox"`
	Output  string `yaml:"output"`
}

type SummaryConfig struct {
	MaxSentences     int `yaml:"max_sentences"`
	MinSentenceRunes int `yaml:"min_sentence_runes"`
}

type GeminiConfig struct {
	Model string `yaml:"model"`
}

type TTSConfig struct {
	Model          string  `yaml:"model"`
	Voice          string  `yaml:"voice"`
	Speed          float64 `yaml:"speed"`
	CharsPerSecond float64 `yaml:"chars_per_second"`
	FFprobePath    string  `yaml:"ffprobe_path"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Summary.MaxSentences < 0 {
		return fmt.Errorf("summary.max_sentences must not be negative")
	}
	if c.TTS.Speed < 0 {
		return fmt.Errorf("tts.speed must not be negative")
	}
	if c.TTS.CharsPerSecond < 0 {
		return fmt.Errorf("tts.chars_per_second must not be negative")
	}
	if c.Server.BodyLimitMB < 0 {
		return fmt.Errorf("server.body_limit_mb must not be negative")
	}
	if c.Performance.MaxConcurrent < 0 {
		return fmt.Errorf("performance.max_concurrent must not be negative")
	}

	if c.Server.Address == "" {
		c.Server.Address = ":5001"
	}
	if c.Server.BodyLimitMB == 0 {
		c.Server.BodyLimitMB = 16
	}
	if c.Paths.Uploads == "" {
		c.Paths.Uploads = "static/uploads"
	}
	if c.Summary.MaxSentences == 0 {
		c.Summary.MaxSentences = 5
	}
	if c.Summary.MinSentenceRunes == 0 {
		c.Summary.MinSentenceRunes = 10
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.TTS.Model == "" {
		c.TTS.Model = "tts-1"
	}
	if c.TTS.Voice == "" {
		c.TTS.Voice = "alloy"
	}
	if c.TTS.Speed == 0 {
		c.TTS.Speed = 1.0
	}
	if c.TTS.CharsPerSecond == 0 {
		c.TTS.CharsPerSecond = 15
	}
	if c.TTS.FFprobePath == "" {
		c.TTS.FFprobePath = "ffprobe"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}

	return nil
}

// BatchEnabled reports whether inbox watching is configured.
func (c *Config) BatchEnabled() bool {
	return c.Paths.Inbox != "" && c.Paths.Output != ""
}
