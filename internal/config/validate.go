package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Credentials are deliberately
// not required here; stages report a configuration error when invoked without
// one so that read-only commands work on an unconfigured install.
func (c *Config) Validate() error {
	if err := c.validateYouTube(); err != nil {
		return err
	}
	if err := c.validateGemini(); err != nil {
		return err
	}
	if err := c.validateVocabulary(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateYouTube() error {
	if c.YouTube.BaseURL == "" {
		return errors.New("youtube.base_url must be set")
	}
	if c.YouTube.TimedTextURL == "" {
		return errors.New("youtube.timedtext_url must be set")
	}
	if c.YouTube.TimeoutSeconds <= 0 {
		return errors.New("youtube.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateGemini() error {
	if c.Gemini.BaseURL == "" {
		return errors.New("gemini.base_url must be set")
	}
	if c.Gemini.Model == "" {
		return errors.New("gemini.model must be set")
	}
	if c.Gemini.Temperature < 0 || c.Gemini.Temperature > 2 {
		return errors.New("gemini.temperature must be between 0 and 2")
	}
	if c.Gemini.TopK <= 0 {
		return errors.New("gemini.top_k must be positive")
	}
	if c.Gemini.TopP <= 0 || c.Gemini.TopP > 1 {
		return errors.New("gemini.top_p must be between 0 and 1")
	}
	if c.Gemini.TimeoutSeconds <= 0 {
		return errors.New("gemini.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateVocabulary() error {
	if c.Vocabulary.DefaultDifficulty < 0 || c.Vocabulary.DefaultDifficulty > 4 {
		return fmt.Errorf("vocabulary.default_difficulty must be between 0 and 4, got %d", c.Vocabulary.DefaultDifficulty)
	}
	return nil
}
