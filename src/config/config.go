package config

import (
	"fmt"

	"github.com/joho/godotenv"
)

// VariableNotFound is returned when a requested variable isn't present.
type VariableNotFound struct {
	VariableName string
}

func (e *VariableNotFound) Error() string {
	return fmt.Sprintf(
		"Variable %q referenced in registry configuration not found. "+
			"Please add it to the environment variables or to your registry configuration.",
		e.VariableName,
	)
}

// VariablesConfig is the interface for any variable-loading strategy.
type VariablesConfig interface {
	// Load returns all variables available from this source.
	Load() (map[string]string, error)
	// Get returns a single variable value or an error if not present.
	Get(key string) (string, error)
}

// DotEnv implements VariablesConfig by loading a .env file.
type DotEnv struct {
	EnvFilePath string
}

func NewDotEnv(path string) *DotEnv {
	return &DotEnv{EnvFilePath: path}
}

// Load reads the .env file and returns a map of key→value.
func (u *DotEnv) Load() (map[string]string, error) {
	return godotenv.Read(u.EnvFilePath)
}

// Get loads the file and looks up a single key.
func (u *DotEnv) Get(key string) (string, error) {
	vars, err := u.Load()
	if err != nil {
		return "", err
	}
	if val, ok := vars[key]; ok {
		return val, nil
	}
	return "", &VariableNotFound{VariableName: key}
}

// RegistryConfig holds resolved variables and the facade roster settings.
type RegistryConfig struct {
	// SdkLevel pins the capability tier; nil means detect from the
	// environment.
	SdkLevel *int

	// Facades is the ordered enable-list of facade names. Empty means the
	// default roster for the resolved sdk level.
	Facades []string

	// Variables explicitly passed in (takes precedence)
	Variables map[string]string

	// A list of sources to load variables from (e.g. .env files)
	LoadVariablesFrom []VariablesConfig
}

// NewRegistryConfig constructs a config with sensible defaults.
func NewRegistryConfig() *RegistryConfig {
	return &RegistryConfig{
		Variables: make(map[string]string),
	}
}
