// Package config loads the optional YAML configuration for the
// autoresponder. Everything has a working default; a config file only
// needs the keys it wants to change.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt embeds sender, subject, and snippet into the instruction
// the generation service sees. Placeholders are replaced verbatim.
const DefaultPrompt = "You are an assistant drafting polite, professional email replies for a " +
	"photo booth rental company named PhoBoCo. Use the email below as context.\n" +
	"From: {{from}}\n" +
	"Subject: {{subject}}\n" +
	"Message snippet:\n" +
	"{{snippet}}\n\n" +
	"Craft a concise, friendly response addressing the sender's points and " +
	"acknowledging their inquiry. Sign off as 'PhoBoCo Team'."

// LLM configures the generation provider.
type LLM struct {
	Provider       string  `yaml:"provider"`
	Model          string  `yaml:"model"`
	Endpoint       string  `yaml:"endpoint"`
	MaxTokens      int64   `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Config is the full file shape.
type Config struct {
	Labels []string `yaml:"labels"`
	Prompt string   `yaml:"prompt"`
	LLM    LLM      `yaml:"llm"`
}

// Default returns the statically configured setup the original deployment
// ran with: four PhoBoCo labels, the stock prompt, OpenAI.
func Default() Config {
	return Config{
		Labels: []string{
			"Leads_New",
			"Clients_OpenQuestions",
			"Finance_Bookings",
			"Event_Changes",
		},
		Prompt: DefaultPrompt,
		LLM: LLM{
			Provider:       "openai",
			Model:          "gpt-3.5-turbo",
			Endpoint:       "http://localhost:11434/api/generate",
			MaxTokens:      250,
			Temperature:    0.5,
			TimeoutSeconds: 60,
		},
	}
}

// Load reads path and merges it over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(cfg.Labels) == 0 {
		return Config{}, fmt.Errorf("config %s: labels must not be empty", path)
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	return cfg, nil
}
