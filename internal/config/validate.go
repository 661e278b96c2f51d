package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateMatching(); err != nil {
		return err
	}
	if err := c.validateBuild(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.TablesDir == "" {
		return errors.New("paths.tables_dir must be set")
	}
	if c.Catalog.DBPath == "" {
		return errors.New("catalog.db_path must be set")
	}
	return nil
}

func (c *Config) validateMatching() error {
	m := c.Matching
	sum := m.NameWeight + m.YearWeight + m.ManufacturerWeight + m.PlayersWeight + m.AuthorWeight
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("matching weights must sum to 1.0, got %.4f", sum)
	}
	for name, w := range map[string]float64{
		"matching.name_weight":         m.NameWeight,
		"matching.year_weight":         m.YearWeight,
		"matching.manufacturer_weight": m.ManufacturerWeight,
		"matching.players_weight":      m.PlayersWeight,
		"matching.author_weight":       m.AuthorWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}
	for name, v := range map[string]float64{
		"matching.accept_threshold":  m.AcceptThreshold,
		"matching.similarity_floor":  m.SimilarityFloor,
		"matching.lbdb_threshold":    m.LbdbThreshold,
		"matching.prelink_threshold": m.PrelinkThreshold,
	} {
		if v <= 0 || v >= 1 {
			return fmt.Errorf("%s must be between 0 and 1 exclusive", name)
		}
	}
	return nil
}

func (c *Config) validateBuild() error {
	if c.Build.Workers < 0 {
		return errors.New("build.workers must be zero (auto) or positive")
	}
	return nil
}
