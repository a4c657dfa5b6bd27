// Package config parses YAML replay scripts for aimsmodel.
//
// A replay script describes a model and a list of operations to apply to it.
// Scripts are used by the aimsmodel CLI to check how a sequence of
// mutations translates into change events.
//
// Example script:
//
//	store: map
//
//	steps:
//	  - op: add
//	    entries:
//	      - {id: a, v: 1}
//	      - {id: b, v: 2}
//	  - op: remove
//	    id: a
//	  - op: add
//	    mapping:
//	      c: {id: c, owner: "${USER:-nobody}"}
//	  - op: clear
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Store kinds.
const (
	StoreMap      = "map"
	StoreSequence = "sequence"
)

// Operations accepted in a step.
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpSet    = "set"
	OpClear  = "clear"
)

// Script is the root structure of a replay script.
//
// Use [Load] or [Parse] to create a Script from YAML.
type Script struct {
	// Store is the model kind: "map" or "sequence". Defaults to "map".
	Store string `yaml:"store"`

	// Steps are applied to the model in order.
	Steps []Step `yaml:"steps"`
}

// Step is a single model operation.
type Step struct {
	// Op is one of "add", "remove", "set" or "clear".
	// Sequence stores accept only "set" and "clear".
	Op string `yaml:"op"`

	// Entries is the slice form of the operation's input.
	// String values support environment variable substitution: ${VAR} or ${VAR:-default}
	Entries []Record `yaml:"entries"`

	// Mapping is the keyed form of the input, for "add" and "set" on a map
	// store. Mutually exclusive with Entries.
	Mapping map[string]Record `yaml:"mapping"`

	// ID removes a single entry by identifier. Only valid for "remove".
	ID *string `yaml:"id"`

	// Force emits a change event even when nothing was written.
	// Only valid for "add".
	Force bool `yaml:"force"`
}

// Record is a free-form entry decoded from YAML.
//
// Records stored in a map model are keyed by their "id" field.
type Record map[string]any

// ID returns the record's "id" field as a string, or "" if it has none.
func (r Record) ID() string {
	v, ok := r["id"]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		if len(submatches) < 2 {
			return match
		}

		varName := submatches[1]
		hasDefault := len(submatches) > 2 && submatches[2] != ""
		defaultVal := ""
		if hasDefault && len(submatches) > 3 {
			defaultVal = submatches[3]
		}

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// Load reads and parses a YAML replay script.
//
// Returns an error if the file cannot be read, parsed, or fails validation.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	return Parse(data)
}

// Parse parses and validates YAML replay script data.
//
// Store defaults to "map". Environment variables are expanded in the string
// fields of every record.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if s.Store == "" {
		s.Store = StoreMap
	}

	if err := s.expandAndValidate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// CountOps returns how many steps use each operation.
func (s *Script) CountOps() map[string]int {
	counts := make(map[string]int, 4)
	for _, step := range s.Steps {
		counts[step.Op]++
	}
	return counts
}

// expandAndValidate expands environment variables and validates the script.
func (s *Script) expandAndValidate() error {
	if s.Store != StoreMap && s.Store != StoreSequence {
		return fmt.Errorf("store must be %q or %q, got %q", StoreMap, StoreSequence, s.Store)
	}

	if len(s.Steps) == 0 {
		return errors.New("at least one step must be defined")
	}

	for i := range s.Steps {
		step := &s.Steps[i]

		if step.Op == "" {
			return fmt.Errorf("steps[%d]: op is required", i)
		}
		if err := s.validateStep(step); err != nil {
			return fmt.Errorf("steps[%d] (%s): %w", i, step.Op, err)
		}

		for j, rec := range step.Entries {
			if err := expandRecord(rec); err != nil {
				return fmt.Errorf("steps[%d] (%s): entries[%d]: %w", i, step.Op, j, err)
			}
		}
		for key, rec := range step.Mapping {
			if err := expandRecord(rec); err != nil {
				return fmt.Errorf("steps[%d] (%s): mapping[%s]: %w", i, step.Op, key, err)
			}
		}
	}

	return nil
}

// validateStep checks that the fields set on step make sense for its op and
// the script's store kind.
func (s *Script) validateStep(step *Step) error {
	switch step.Op {
	case OpAdd, OpRemove:
		if s.Store == StoreSequence {
			return fmt.Errorf("op is not supported by a sequence store (use %q or %q)", OpSet, OpClear)
		}
	case OpSet, OpClear:
	default:
		return fmt.Errorf("unknown op (expected %q, %q, %q or %q)", OpAdd, OpRemove, OpSet, OpClear)
	}

	if step.Entries != nil && step.Mapping != nil {
		return errors.New("entries and mapping are mutually exclusive")
	}
	if step.Mapping != nil && (s.Store == StoreSequence || step.Op == OpRemove || step.Op == OpClear) {
		return errors.New("mapping is only valid for add and set on a map store")
	}
	if step.ID != nil && step.Op != OpRemove {
		return errors.New("id is only valid for remove")
	}
	if step.Force && step.Op != OpAdd {
		return errors.New("force is only valid for add")
	}
	if step.Op == OpClear && step.Entries != nil {
		return errors.New("clear takes no entries")
	}

	if step.Op == OpRemove {
		if step.ID == nil && step.Entries == nil {
			return errors.New("remove requires entries or id")
		}
		if step.ID != nil && step.Entries != nil {
			return errors.New("remove takes entries or id, not both")
		}
	}

	if s.Store == StoreMap {
		for j, rec := range step.Entries {
			if _, ok := rec["id"]; !ok {
				return fmt.Errorf("entries[%d]: id is required", j)
			}
		}
	}

	return nil
}

// expandRecord expands environment variables in the top-level string values
// of rec, in place.
func expandRecord(rec Record) error {
	for k, v := range rec {
		str, ok := v.(string)
		if !ok {
			continue
		}
		expanded, err := expandEnvVars(str)
		if err != nil {
			return fmt.Errorf("%s: %w", k, err)
		}
		rec[k] = expanded
	}
	return nil
}
