// Package config resolves run inputs from flags, CI action inputs, environment
// variables and an optional global config file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Input names, shared by flags, action inputs and the config file.
const (
	KeyAPIKey     = "api-key"
	KeyLibraryID  = "library-id"
	KeyCollKey    = "coll-key"
	KeyIsGroup    = "is-group"
	KeyOutBibPath = "out-bib-path"
	KeyTypeMap    = "type-map"
	KeyBaseURL    = "base-url"
)

const (
	// DefaultOutBibPath is where the bibliography goes when out-bib-path is unset.
	DefaultOutBibPath = "references.bib"
	// DefaultBaseURL is the Zotero Web API.
	DefaultBaseURL = "https://api.zotero.org"

	// GlobalConfigDir is the directory name under XDG_CONFIG_HOME.
	GlobalConfigDir = "zotbib"
	// GlobalConfigFile is the config file name.
	GlobalConfigFile = "config.yml"
)

// Input describes one configuration input.
type Input struct {
	Name     string
	Required bool
	Default  string
	Usage    string
}

// Inputs lists every input in the order they are documented.
var Inputs = []Input{
	{Name: KeyAPIKey, Required: true, Usage: "Zotero API key"},
	{Name: KeyLibraryID, Required: true, Usage: "user or group library ID"},
	{Name: KeyCollKey, Required: true, Usage: "collection key to export"},
	{Name: KeyIsGroup, Default: "false", Usage: "library-id refers to a group library"},
	{Name: KeyOutBibPath, Default: DefaultOutBibPath, Usage: "output BibTeX path (- for stdout)"},
	{Name: KeyTypeMap, Usage: "YAML file with extra CSL -> BibTeX type mappings"},
	{Name: KeyBaseURL, Default: DefaultBaseURL, Usage: "Zotero API base URL"},
}

// ErrMissingInput is returned when a required input has no value.
var ErrMissingInput = errors.New("missing required input")

// ErrInvalidInput is returned when an input value cannot be parsed.
var ErrInvalidInput = errors.New("invalid input")

// Config holds the resolved inputs for one run.
type Config struct {
	APIKey     string
	LibraryID  string
	CollKey    string
	IsGroup    bool
	OutBibPath string
	TypeMap    string
	BaseURL    string
}

// EnvNames returns the environment variables checked for an input, in
// priority order: the GitHub Actions input variable as the runner sets it,
// the same with underscores, then a ZOTERO_ prefixed name.
func EnvNames(name string) []string {
	upper := strings.ToUpper(name)
	underscored := strings.ReplaceAll(upper, "-", "_")
	return []string{
		"INPUT_" + upper,
		"INPUT_" + underscored,
		"ZOTERO_" + underscored,
	}
}

// GlobalConfigPath returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/zotbib/config.yml.
func GlobalConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, GlobalConfigDir, GlobalConfigFile)
}

// NewViper returns a viper instance with defaults and environment bindings
// for every input. Callers bind their flags on top with BindPFlags.
func NewViper() *viper.Viper {
	v := viper.New()
	for _, in := range Inputs {
		if in.Default != "" {
			v.SetDefault(in.Name, in.Default)
		}
		args := append([]string{in.Name}, EnvNames(in.Name)...)
		_ = v.BindEnv(args...)
	}
	return v
}

// ReadGlobalConfig merges the YAML file at path into v.
// A missing file is not an error.
func ReadGlobalConfig(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading global config: %w", err)
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("parsing global config: %w", err)
	}
	return nil
}

// Load resolves a Config from v. Every missing required input is reported.
func Load(v *viper.Viper) (*Config, error) {
	var missing []string
	for _, in := range Inputs {
		if in.Required && strings.TrimSpace(v.GetString(in.Name)) == "" {
			missing = append(missing, in.Name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingInput, strings.Join(missing, ", "))
	}

	isGroup, err := parseBool(v.GetString(KeyIsGroup))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidInput, KeyIsGroup, err)
	}

	cfg := &Config{
		APIKey:     strings.TrimSpace(v.GetString(KeyAPIKey)),
		LibraryID:  strings.TrimSpace(v.GetString(KeyLibraryID)),
		CollKey:    strings.TrimSpace(v.GetString(KeyCollKey)),
		IsGroup:    isGroup,
		OutBibPath: strings.TrimSpace(v.GetString(KeyOutBibPath)),
		TypeMap:    strings.TrimSpace(v.GetString(KeyTypeMap)),
		BaseURL:    strings.TrimSpace(v.GetString(KeyBaseURL)),
	}
	if cfg.OutBibPath == "" {
		cfg.OutBibPath = DefaultOutBibPath
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return cfg, nil
}

func parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return false, nil
	}
	return strconv.ParseBool(s)
}
