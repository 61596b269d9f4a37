package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int               `toml:"version"`
	Tokens  map[string]string `toml:"tokens"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Tokens == nil {
		s.Tokens = map[string]string{}
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported token cache schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}
