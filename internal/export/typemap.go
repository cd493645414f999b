package export

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed typemap.yaml
var defaultTypeMapYAML []byte

// TypeMap maps CSL item types to BibTeX entry types.
type TypeMap map[string]string

// Lookup returns the BibTeX type for a CSL type, if mapped.
func (m TypeMap) Lookup(cslType string) (string, bool) {
	t, ok := m[cslType]
	return t, ok && t != ""
}

// DefaultTypeMap returns a fresh copy of the built-in mapping.
func DefaultTypeMap() TypeMap {
	m, err := parseTypeMap(defaultTypeMapYAML)
	if err != nil {
		panic(fmt.Sprintf("export: embedded typemap.yaml: %v", err))
	}
	return m
}

// LoadTypeMap returns the built-in mapping with the entries of the YAML file
// at path merged over it. An empty path returns the defaults.
func LoadTypeMap(path string) (TypeMap, error) {
	m := DefaultTypeMap()
	if path == "" {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading type map: %w", err)
	}

	extra, err := parseTypeMap(data)
	if err != nil {
		return nil, fmt.Errorf("parsing type map %s: %w", path, err)
	}
	for k, v := range extra {
		m[k] = v
	}
	return m, nil
}

func parseTypeMap(data []byte) (TypeMap, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	m := make(TypeMap, len(raw))
	for k, v := range raw {
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" {
			continue
		}
		m[k] = v
	}
	return m, nil
}
