package lesson

import (
	"fmt"
	"time"
)

// Config holds lesson generation settings.
type Config struct {
	Mode             Mode
	Gate             string
	Version          string
	MaxTokens        int
	Temperature      float64
	Timeout          time.Duration // per provider attempt; zero disables
	StructuredOutput bool          // send ContentSchema in JSON mode
	AllowDegraded    bool          // serve the best rejected result instead of mock
}

// DefaultConfig returns sensible defaults for lesson generation.
func DefaultConfig() Config {
	return Config{
		Mode:          ModeJSON,
		Gate:          GateComplete,
		Version:       BuildVersion,
		MaxTokens:     4096,
		Temperature:   0.7,
		Timeout:       45 * time.Second,
		AllowDegraded: true,
	}
}

// Validate checks the config for unusable values.
func (c Config) Validate() error {
	if _, err := ParseMode(string(c.Mode)); err != nil {
		return err
	}
	if _, err := ParseGate(c.Gate); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("negative attempt timeout %s", c.Timeout)
	}
	return nil
}
