package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// VersionedConfig wraps a Config with a version field for migrations
type VersionedConfig struct {
	Version int     `json:"version"`
	Config  *Config `json:"config,omitempty"`
}

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]interface{}) (map[string]interface{}, error)
}

// legacyKeys maps version 0 top-level keys to their section and new name
var legacyKeys = map[string][2]string{
	"globs":         {"scan", "globs"},
	"exclude":       {"scan", "exclude"},
	"shortIdPrefix": {"scan", "shortIdPrefix"},
	"htmlFile":      {"output", "htmlFile"},
	"logLevel":      {"log", "level"},
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: flat keys move into scan/output/log sections
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]interface{}) (map[string]interface{}, error) {
			for old, dest := range legacyKeys {
				value, ok := data[old]
				if !ok {
					continue
				}
				section, _ := data[dest[0]].(map[string]interface{})
				if section == nil {
					section = make(map[string]interface{})
				}
				if _, exists := section[dest[1]]; !exists {
					section[dest[1]] = value
				}
				data[dest[0]] = section
				delete(data, old)
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersionedConfig parses config data with version migration support
func ParseVersionedConfig(data []byte) (*Config, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("failed to parse config JSON: invalid JSON")
	}

	// Detect version (0 if not present = legacy config)
	version := int(gjson.GetBytes(data, "version").Int())

	if version > CurrentVersion {
		return nil, fmt.Errorf("config version %d is newer than supported version %d", version, CurrentVersion)
	}

	var rawConfig map[string]interface{}
	if err := json.Unmarshal(data, &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	// Apply migrations if needed
	if version < CurrentVersion {
		var err error
		rawConfig, err = ApplyMigrations(rawConfig, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	// Re-marshal and unmarshal to get proper types
	migratedData, err := json.Marshal(rawConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal migrated config: %w", err)
	}

	// A nested "config" object takes precedence over inline fields
	if gjson.GetBytes(migratedData, "config").IsObject() {
		var versioned VersionedConfig
		if err := json.Unmarshal(migratedData, &versioned); err != nil {
			return nil, fmt.Errorf("failed to parse versioned config: %w", err)
		}
		return versioned.Config, nil
	}

	var cfg Config
	if err := json.Unmarshal(migratedData, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse flat config: %w", err)
	}

	return &cfg, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]interface{}, fromVersion int) (map[string]interface{}, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}

// MarshalVersionedConfig serializes a config with version information
func MarshalVersionedConfig(cfg *Config) ([]byte, error) {
	cfgData, err := json.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	var cfgMap map[string]interface{}
	if err := json.Unmarshal(cfgData, &cfgMap); err != nil {
		return nil, err
	}

	// Add version at the top
	result := make(map[string]interface{})
	result["version"] = CurrentVersion
	for k, v := range cfgMap {
		result[k] = v
	}

	return json.MarshalIndent(result, "", "  ")
}
