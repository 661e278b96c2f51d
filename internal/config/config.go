package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	TablesDir string `toml:"tables_dir"`
	DataDir   string `toml:"data_dir"`
	LogDir    string `toml:"log_dir"`
}

// Sources contains the on-disk locations of the downloaded corpus documents.
// Each file is the parsed-JSON form produced by the downloader collaborators.
type Sources struct {
	VpsdbPath   string `toml:"vpsdb_path"`
	IpdbPath    string `toml:"ipdb_path"`
	LbdbPath    string `toml:"lbdb_path"`
	VpinmdbPath string `toml:"vpinmdb_path"`
}

// Catalog contains configuration for the persisted local table catalog.
type Catalog struct {
	DBPath          string `toml:"db_path"`
	IndexExportPath string `toml:"index_export_path"`
	MismatchJournal string `toml:"mismatch_journal"`
}

// Matching contains the scorer weights and acceptance thresholds. The five
// weights must sum to 1.0.
type Matching struct {
	NameWeight         float64 `toml:"name_weight"`
	YearWeight         float64 `toml:"year_weight"`
	ManufacturerWeight float64 `toml:"manufacturer_weight"`
	PlayersWeight      float64 `toml:"players_weight"`
	AuthorWeight       float64 `toml:"author_weight"`
	RomBonus           float64 `toml:"rom_bonus"`
	AcceptThreshold    float64 `toml:"accept_threshold"`
	SimilarityFloor    float64 `toml:"similarity_floor"`
	LbdbThreshold      float64 `toml:"lbdb_threshold"`
	PrelinkThreshold   float64 `toml:"prelink_threshold"`
	ForceRebuild       bool    `toml:"force_rebuild"`
}

// Build contains configuration for the offline master catalog build.
type Build struct {
	OutputPath string `toml:"output_path"`
	Workers    int    `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for pindex.
//
// Configuration sections by subsystem:
//   - Paths: table and data directories
//   - Sources: downloaded corpus document locations
//   - Catalog: local catalog persistence and mismatch journal
//   - Matching: scorer weights, thresholds, force-rebuild flag
//   - Build: master catalog output and worker pool sizing
//   - Logging: log format and level
type Config struct {
	Paths    Paths    `toml:"paths"`
	Sources  Sources  `toml:"sources"`
	Catalog  Catalog  `toml:"catalog"`
	Matching Matching `toml:"matching"`
	Build    Build    `toml:"build"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/pindex/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file was found; when false, defaults are in effect.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("pindex.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories pindex writes into.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.DataDir,
		c.Paths.LogDir,
		filepath.Dir(c.Catalog.DBPath),
		filepath.Dir(c.Catalog.MismatchJournal),
		filepath.Dir(c.Build.OutputPath),
	}
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// WriteSample writes the embedded sample configuration to path, refusing to
// overwrite an existing file.
func WriteSample(path string) error {
	expanded, err := expandPath(path)
	if err != nil {
		return err
	}
	if _, err := os.Stat(expanded); err == nil {
		return fmt.Errorf("config file already exists at %s", expanded)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(expanded, []byte(sampleConfig), 0o644)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
