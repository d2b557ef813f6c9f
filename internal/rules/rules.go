// Package rules holds the externally configurable phrase catalogs the
// validation engine scans with: vague legal references and invalidating
// language. Rules load in layers (defaults -> rules file -> environment)
// so new phrases can ship as data, not code changes.
package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"
)

// PhraseRule flags one vague legal phrase with a severity and issue code.
type PhraseRule struct {
	Phrase   string `koanf:"phrase" json:"phrase" yaml:"phrase" validate:"required"`
	Severity string `koanf:"severity" json:"severity" yaml:"severity" validate:"required,oneof=CRITICAL MAJOR MINOR INFO"`
	Code     string `koanf:"code" json:"code" yaml:"code" validate:"required"`
}

// Ruleset is the full phrase configuration consumed by the validators.
type Ruleset struct {
	VaguePhrases        []PhraseRule `koanf:"vague_phrases" json:"vague_phrases" yaml:"vague_phrases" validate:"required,min=1,dive"`
	InvalidatingPhrases []string     `koanf:"invalidating_phrases" json:"invalidating_phrases" yaml:"invalidating_phrases" validate:"required,min=1,dive,required"`
}

// Load builds a ruleset from defaults, an optional rules file (.json or
// .yaml), and WILLOW_-prefixed environment variables, in that priority
// order (later layers win).
func Load(path string) (*Ruleset, error) {
	k := koanf.New(".")

	def := Default()
	k.Set("vague_phrases", phraseMaps(def.VaguePhrases))
	k.Set("invalidating_phrases", def.InvalidatingPhrases)

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("rules file %s: %w", path, err)
		}
		switch filepath.Ext(path) {
		case ".json":
			if err := k.Load(file.Provider(path), json.Parser()); err != nil {
				return nil, fmt.Errorf("failed to load rules file %s: %w", path, err)
			}
		case ".yaml", ".yml":
			data, err := os.ReadFile(path)
			if err != nil {
				return nil, fmt.Errorf("reading rules file %s: %w", path, err)
			}
			var doc map[string]any
			if err := yaml.Unmarshal(data, &doc); err != nil {
				return nil, fmt.Errorf("parsing rules file %s: %w", path, err)
			}
			for key, value := range doc {
				k.Set(key, value)
			}
		default:
			return nil, fmt.Errorf("unsupported rules file type: %s", filepath.Ext(path))
		}
	}

	// Environment overrides (highest priority)
	k.Load(env.ProviderWithValue("WILLOW_", ".", envTransform), nil)

	var rs Ruleset
	if err := k.Unmarshal("", &rs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&rs); err != nil {
		return nil, fmt.Errorf("rules validation failed: %w", err)
	}

	return &rs, nil
}

// envTransform converts environment variable names to rule keys and
// splits comma-separated values into lists, since both ruleset keys are
// list-valued.
// Example: WILLOW_INVALIDATING_PHRASES="calm down,be quiet" ->
// invalidating_phrases = ["calm down", "be quiet"]
func envTransform(key, value string) (string, any) {
	k := strings.ToLower(strings.TrimPrefix(key, "WILLOW_"))
	if !strings.Contains(value, ",") {
		return k, value
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return k, out
}

func phraseMaps(rules []PhraseRule) []map[string]any {
	out := make([]map[string]any, len(rules))
	for i, r := range rules {
		out[i] = map[string]any{
			"phrase":   r.Phrase,
			"severity": r.Severity,
			"code":     r.Code,
		}
	}
	return out
}
