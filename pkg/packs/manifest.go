package packs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// manifestSchema is the JSON schema every pack manifest.yaml must satisfy.
const manifestSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version"],
  "properties": {
    "pack_name": {"type": "string"},
    "version": {"type": "string"},
    "target_component": {"enum": ["fm_app", "db-meta", "db-ref"]},
    "license": {"type": "string"},
    "dependencies": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "version"],
        "properties": {
          "name": {"type": "string"},
          "version": {"type": "string"}
        }
      }
    },
    "slots": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "properties": {
          "required": {"type": "boolean"},
          "inputs": {"type": "array", "items": {"type": "string"}},
          "outputs": {"type": "array", "items": {"type": "string"}},
          "optional_providers": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "provenance": {"type": "object"}
  },
  "additionalProperties": true
}`

var (
	manifestSchemaOnce     sync.Once
	manifestSchemaCompiled *jsonschema.Schema
	manifestSchemaErr      error
)

func compiledManifestSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(manifestSchema))
		if err != nil {
			manifestSchemaErr = fmt.Errorf("failed to parse manifest schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("manifest.schema.json", doc); err != nil {
			manifestSchemaErr = fmt.Errorf("failed to add manifest schema: %w", err)
			return
		}
		manifestSchemaCompiled, manifestSchemaErr = compiler.Compile("manifest.schema.json")
	})
	return manifestSchemaCompiled, manifestSchemaErr
}

// Dependency is a named pack dependency pin.
type Dependency struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// SlotSpec describes one slot declared by a pack manifest.
type SlotSpec struct {
	Required          bool     `yaml:"required"`
	Inputs            []string `yaml:"inputs"`
	Outputs           []string `yaml:"outputs"`
	OptionalProviders []string `yaml:"optional_providers"`
}

// Manifest is the decoded manifest.yaml.
type Manifest struct {
	PackName        string              `yaml:"pack_name"`
	Version         string              `yaml:"version"`
	TargetComponent string              `yaml:"target_component"`
	License         string              `yaml:"license"`
	Dependencies    []Dependency        `yaml:"dependencies"`
	Slots           map[string]SlotSpec `yaml:"slots"`
	Provenance      map[string]any      `yaml:"provenance"`
}

// PackRef is a validated, loaded pack directory.
type PackRef struct {
	Root     string
	Manifest Manifest
	Version  string
	Hash     string
}

// LoadPack reads and validates manifest.yaml under packDir and computes the
// pack's directory content hash.
func LoadPack(packDir string) (*PackRef, error) {
	manifestPath := filepath.Join(packDir, "manifest.yaml")
	raw, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, &PackValidationError{Path: manifestPath, Message: "manifest.yaml not found"}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, &PackValidationError{Path: manifestPath, Message: err.Error()}
	}

	schema, err := compiledManifestSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(normalizeForSchema(doc)); err != nil {
		return nil, &PackValidationError{Path: manifestPath, Message: err.Error()}
	}

	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, &PackValidationError{Path: manifestPath, Message: err.Error()}
	}

	hash, err := DirHash(packDir)
	if err != nil {
		return nil, fmt.Errorf("failed to hash pack %s: %w", packDir, err)
	}

	return &PackRef{
		Root:     packDir,
		Manifest: manifest,
		Version:  manifest.Version,
		Hash:     hash,
	}, nil
}

// normalizeForSchema converts YAML-decoded values to the shapes the JSON
// schema validator expects (string-keyed maps all the way down).
func normalizeForSchema(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(tv))
		for k, val := range tv {
			out[k] = normalizeForSchema(val)
		}
		return out
	case []any:
		out := make([]any, len(tv))
		for i, val := range tv {
			out[i] = normalizeForSchema(val)
		}
		return out
	default:
		return v
	}
}
