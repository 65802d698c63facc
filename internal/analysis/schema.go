package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// configSchema constrains a JSON configuration file to known options with
// valid ranges, so range errors surface before unmarshal with the schema
// path in the message.
const configSchema = `{
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "pass_rate_target":      {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
    "target_dist":           {"type": "string", "enum": ["truncnorm", "beta"]},
    "facility_easy":         {"type": "number", "minimum": 0, "maximum": 1},
    "facility_hard":         {"type": "number", "minimum": 0, "maximum": 1},
    "discrim_poor":          {"type": "number", "minimum": -1, "maximum": 1},
    "discrim_excludes_item": {"type": "boolean"},
    "band_count":            {"type": "integer", "minimum": 1},
    "pass_threshold":        {"type": "number", "exclusiveMinimum": 0, "exclusiveMaximum": 1},
    "high_threshold":        {"type": "number", "minimum": 0, "maximum": 1},
    "mid_fraction":          {"type": "number", "minimum": 0},
    "min_tail_share":        {"type": "number", "minimum": 0, "maximum": 0.5},
    "sigma":                 {"type": "number", "exclusiveMinimum": 0},
    "concentration":         {"type": "number", "exclusiveMinimum": 0.1}
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func compiledConfigSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(configSchema)))
		if err != nil {
			compileErr = fmt.Errorf("parse config schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://markcurve-config.json", doc); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://markcurve-config.json")
	})
	return compiledSchema, compileErr
}

// ParseConfig validates raw JSON against the config schema and applies it
// on top of the defaults.
func ParseConfig(raw []byte) (Config, error) {
	cfg := DefaultConfig()

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return cfg, &ConfigError{Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	schema, err := compiledConfigSchema()
	if err != nil {
		return cfg, err
	}
	if err := schema.Validate(doc); err != nil {
		return cfg, &ConfigError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	if err := json.Unmarshal(raw, &cfg); err != nil {
		return cfg, &ConfigError{Err: err}
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfigFile reads and validates a JSON configuration file.
func LoadConfigFile(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("read config file: %w", err)
	}
	cfg, err := ParseConfig(raw)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}
