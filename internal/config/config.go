// Package config implements the persistent key-value store that backs
// provider, model and credential settings.
//
// Keys are dot-namespaced strings (e.g. "env.OPENAI_API_KEY") persisted
// as nested YAML. Keys under the "env." namespace fall back to the
// process environment when absent from the file; a value in the file
// always wins over the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppName is the application name used for config and data directories
	AppName = "chat-cli"

	// FileName is the name of the config file
	FileName = "config.yaml"
)

// EnvPrefix is the namespace for keys that mirror environment variables.
const EnvPrefix = "env."

// Store is a durable mapping from dot-namespaced keys to string values.
// It is not safe for concurrent use; by construction only the bootstrap
// sequence and interactive commands mutate it.
type Store struct {
	path   string
	values map[string]string
}

// DefaultPath returns the location of the user's config file.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, AppName, FileName), nil
}

// Open loads the store at path. A missing file yields an empty store;
// the file is created on the first Set.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	flatten("", raw, s.values)

	return s, nil
}

// Path returns the on-disk location of the store, reported to the user
// whenever a value is persisted on their behalf.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for a dot-namespaced key. For "env." keys the
// process environment is consulted when the file has no value.
func (s *Store) Get(key string) (string, bool) {
	if v, ok := s.values[key]; ok && v != "" {
		return v, true
	}
	if name, ok := strings.CutPrefix(key, EnvPrefix); ok {
		if v, ok := os.LookupEnv(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// GetEnv returns the value for an environment-namespaced key, or the
// empty string if unset.
func (s *Store) GetEnv(name string) string {
	v, _ := s.Get(EnvPrefix + name)
	return v
}

// Set writes a value and persists the store to disk immediately.
func (s *Store) Set(key, value string) error {
	s.values[key] = value
	return s.save()
}

func (s *Store) save() error {
	data, err := yaml.Marshal(unflatten(s.values))
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Config may hold credentials, keep it private to the user
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", s.path, err)
	}
	return nil
}

// flatten collapses nested YAML maps into dot-namespaced keys.
func flatten(prefix string, raw map[string]interface{}, out map[string]string) {
	for k, v := range raw {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case nil:
			out[key] = ""
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

// unflatten rebuilds the nested map structure for serialization.
func unflatten(values map[string]string) map[string]interface{} {
	root := make(map[string]interface{})

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = make(map[string]interface{})
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = values[key]
	}
	return root
}
