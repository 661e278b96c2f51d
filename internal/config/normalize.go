package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeMatching()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"paths.tables_dir", &c.Paths.TablesDir},
		{"paths.data_dir", &c.Paths.DataDir},
		{"paths.log_dir", &c.Paths.LogDir},
		{"sources.vpsdb_path", &c.Sources.VpsdbPath},
		{"sources.ipdb_path", &c.Sources.IpdbPath},
		{"sources.lbdb_path", &c.Sources.LbdbPath},
		{"sources.vpinmdb_path", &c.Sources.VpinmdbPath},
		{"catalog.db_path", &c.Catalog.DBPath},
		{"catalog.index_export_path", &c.Catalog.IndexExportPath},
		{"catalog.mismatch_journal", &c.Catalog.MismatchJournal},
		{"build.output_path", &c.Build.OutputPath},
	}
	for _, field := range fields {
		expanded, err := expandPath(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeMatching() {
	m := &c.Matching
	d := Default().Matching
	if m.NameWeight == 0 && m.YearWeight == 0 && m.ManufacturerWeight == 0 &&
		m.PlayersWeight == 0 && m.AuthorWeight == 0 {
		m.NameWeight = d.NameWeight
		m.YearWeight = d.YearWeight
		m.ManufacturerWeight = d.ManufacturerWeight
		m.PlayersWeight = d.PlayersWeight
		m.AuthorWeight = d.AuthorWeight
	}
	if m.RomBonus <= 0 {
		m.RomBonus = d.RomBonus
	}
	if m.AcceptThreshold <= 0 || m.AcceptThreshold >= 1 {
		m.AcceptThreshold = d.AcceptThreshold
	}
	if m.SimilarityFloor <= 0 || m.SimilarityFloor >= 1 {
		m.SimilarityFloor = d.SimilarityFloor
	}
	if m.LbdbThreshold <= 0 || m.LbdbThreshold >= 1 {
		m.LbdbThreshold = d.LbdbThreshold
	}
	if m.PrelinkThreshold <= 0 || m.PrelinkThreshold >= 1 {
		m.PrelinkThreshold = d.PrelinkThreshold
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
