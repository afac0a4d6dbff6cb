package envutil

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFileType is returned when the file extension is not recognized.
var ErrUnknownFileType = errors.New("env file doesn't have a known file suffix")

// LoadEnvFile loads environment variables from a file and returns them as a map.
// The file format is detected from the file extension:
//   - .env files are parsed as KEY=value lines (godotenv syntax)
//   - .json files must have an "env" object of string values
//   - .yml/.yaml files must have an "env" mapping of string values
func LoadEnvFile(path string) (map[string]string, error) {
	fileInfo, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	name := strings.ToLower(fileInfo.Name())

	switch {
	case strings.HasSuffix(name, ".env"):
		return godotenv.Read(path)
	case strings.HasSuffix(name, ".json"):
		return loadJSONFile(path)
	case strings.HasSuffix(name, ".yml"), strings.HasSuffix(name, ".yaml"):
		return loadYAMLFile(path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFileType, fileInfo.Name())
	}
}

// Overlay returns a context in which every variable from vars can be read,
// unless the process environment or an existing override already sets it.
// Real environment variables always win over file contents.
func Overlay(ctx context.Context, vars map[string]string) context.Context {
	for key, value := range vars {
		if _, ok := getEnvOverride(ctx, key); ok {
			continue
		}

		if _, ok := os.LookupEnv(key); ok {
			continue
		}

		ctx = WithEnvOverride(ctx, key, value)
	}

	return ctx
}

type envFile struct {
	Env map[string]string `json:"env" yaml:"env"`
}

func loadJSONFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile
	if err := json.Unmarshal(bts, &out); err != nil {
		return nil, err
	}

	return out.Env, nil
}

func loadYAMLFile(path string) (map[string]string, error) {
	bts, err := os.ReadFile(path) // #nosec G304 -- path is the intended file to load
	if err != nil {
		return nil, err
	}

	var out envFile
	if err := yaml.Unmarshal(bts, &out); err != nil {
		return nil, err
	}

	return out.Env, nil
}
