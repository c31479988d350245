package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/remote-scripting-protocol/go-rsp/src/json"
)

var varPattern = regexp.MustCompile(`\${(\w+)}|\$(\w+)`)

// LoadFile reads a RegistryConfig from a YAML or JSON file, chosen by
// extension. Scalar fields are coerced leniently, so sdk_level may be a
// number or a quoted string, and ${VAR} references are substituted from the
// config's variable sources before coercion.
func LoadFile(path string, base *RegistryConfig) (*RegistryConfig, error) {
	if base == nil {
		base = NewRegistryConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read registry config %q: %w", path, err)
	}

	var raw map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid YAML in registry config %q: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("invalid JSON in registry config %q: %w", path, err)
		}
	}

	raw = replaceVarsInAny(raw, base).(map[string]any)

	cfg := &RegistryConfig{
		Variables:         base.Variables,
		LoadVariablesFrom: base.LoadVariablesFrom,
	}
	if v, ok := raw["sdk_level"]; ok && v != nil {
		level, err := cast.ToIntE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid sdk_level in %q: %w", path, err)
		}
		cfg.SdkLevel = &level
	}
	if v, ok := raw["facades"]; ok && v != nil {
		names, err := cast.ToStringSliceE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid facades list in %q: %w", path, err)
		}
		cfg.Facades = names
	}
	if v, ok := raw["variables"]; ok && v != nil {
		vars, err := cast.ToStringMapStringE(v)
		if err != nil {
			return nil, fmt.Errorf("invalid variables map in %q: %w", path, err)
		}
		for k, val := range vars {
			if _, exists := cfg.Variables[k]; !exists {
				cfg.Variables[k] = val
			}
		}
	}
	return cfg, nil
}

// replaceVarsInAny walks strings, maps, lists and does ${VAR}/$VAR substitution.
func replaceVarsInAny(x any, cfg *RegistryConfig) any {
	switch v := x.(type) {
	case string:
		return varPattern.ReplaceAllStringFunc(v, func(match string) string {
			g := varPattern.FindStringSubmatch(match)
			name := g[1]
			if name == "" {
				name = g[2]
			}
			val, err := getVariable(name, cfg)
			if err != nil {
				// Leave the original reference if the variable is unknown
				return match
			}
			return val
		})
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = replaceVarsInAny(e, cfg)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = replaceVarsInAny(e, cfg)
		}
		return out
	default:
		return x
	}
}

// getVariable checks inline variables, then configured sources, then the
// process environment.
func getVariable(key string, cfg *RegistryConfig) (string, error) {
	if v, ok := cfg.Variables[key]; ok {
		return v, nil
	}
	for _, loader := range cfg.LoadVariablesFrom {
		if val, err := loader.Get(key); err == nil && val != "" {
			return val, nil
		}
	}
	if val, ok := os.LookupEnv(key); ok {
		return val, nil
	}
	return "", &VariableNotFound{VariableName: key}
}
