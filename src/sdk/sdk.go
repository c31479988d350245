package sdk

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// Level is the capability tier of the host platform. It is read once at
// startup and used only as a gating predicate; it never changes afterwards.
type Level int

// EnvVar is the environment variable consulted by FromEnv.
const EnvVar = "RSP_SDK_LEVEL"

// DefaultLevel is assumed when the host does not advertise a level at all.
const DefaultLevel Level = 19

// Supports reports whether this level satisfies a minimum requirement.
// A zero minimum means unconditional.
func (l Level) Supports(min int) bool {
	return min == 0 || int(l) >= min
}

// FromEnv reads the level from the process environment, falling back to
// DefaultLevel when the variable is unset or unparsable.
func FromEnv() Level {
	v, ok := os.LookupEnv(EnvVar)
	if !ok {
		return DefaultLevel
	}
	level, err := Parse(v)
	if err != nil {
		return DefaultLevel
	}
	return level
}

// FromDotEnv reads the level from a .env file.
func FromDotEnv(path string) (Level, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return 0, err
	}
	v, ok := vars[EnvVar]
	if !ok {
		return DefaultLevel, nil
	}
	return Parse(v)
}

// Parse coerces a raw scalar (string, int, float from decoded JSON/YAML)
// into a Level.
func Parse(v interface{}) (Level, error) {
	n, err := cast.ToIntE(v)
	if err != nil {
		return 0, err
	}
	return Level(n), nil
}
