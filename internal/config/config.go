// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/matchmyjd/engine/internal/skills"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags.
type Config struct {
	// Paths
	JD       string `json:"jd,omitempty"`       // Path to structured JD JSON file
	Resume   string `json:"resume,omitempty"`   // Path to structured resume JSON file
	Synonyms string `json:"synonyms,omitempty"` // Path to synonym table JSON file (optional)

	// Scoring
	Policy        string  `json:"policy,omitempty" validate:"omitempty,oneof=category hybrid"`
	SemanticScore float64 `json:"semantic_score,omitempty" validate:"gte=0,lte=1"`

	// Embeddings
	UseEmbeddings  bool   `json:"use_embeddings,omitempty"`  // Compute semantic signals via the Gemini embedder
	APIKey         string `json:"api_key,omitempty"`         // Gemini API key (defaults to GEMINI_API_KEY env var)
	EmbeddingModel string `json:"embedding_model,omitempty"` // Embedding model name

	// Output
	Verbose  bool `json:"verbose,omitempty"`   // Debug-level trace logging
	JSONLogs bool `json:"json_logs,omitempty"` // JSON log encoding
	JSONOut  bool `json:"json_out,omitempty"`  // Print the MatchResult as JSON instead of the boxed report
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks field ranges and that referenced files exist.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	for _, path := range []string{c.JD, c.Resume, c.Synonyms} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: file not found: %s", path)
		}
	}

	return nil
}

// LoadSynonyms reads a synonym table from a JSON file mapping canonical skill
// names to alias lists. An empty path returns the built-in table.
func LoadSynonyms(path string) (skills.SynonymTable, error) {
	if path == "" {
		return skills.DefaultSynonyms(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read synonym table %s: %w", path, err)
	}

	var table skills.SynonymTable
	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("failed to parse synonym table %s: %w", path, err)
	}

	return table, nil
}
