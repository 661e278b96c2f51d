package enrich

import (
	"log/slog"

	"pindex/internal/catalog"
	"pindex/internal/config"
	"pindex/internal/logging"
	"pindex/internal/match"
	"pindex/internal/sources"
	"pindex/internal/textnorm"
)

// Outcome classifies one matchmaking attempt.
type Outcome int

const (
	Unmatched Outcome = iota
	Matched
	Skipped
)

// Matcher links local catalog records to spreadsheet entries. It is safe
// for concurrent use; the corpus is read-only and the journal serializes
// its own writes.
type Matcher struct {
	corpus  *sources.Corpus
	scorer  *match.Scorer
	weights match.Weights
	cfg     config.Matching
	journal *Journal
	logger  *slog.Logger
}

// NewMatcher returns a matcher over the spreadsheet corpus.
func NewMatcher(corpus *sources.Corpus, cfg config.Matching, journal *Journal, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	weights := match.Weights{
		Name:         cfg.NameWeight,
		Year:         cfg.YearWeight,
		Manufacturer: cfg.ManufacturerWeight,
		Players:      cfg.PlayersWeight,
		Author:       cfg.AuthorWeight,
	}
	return &Matcher{
		corpus:  corpus,
		scorer:  match.NewScorer(weights),
		weights: weights,
		cfg:     cfg,
		journal: NewJournalOrNil(journal),
		logger:  logging.NewComponentLogger(logger, "enrich"),
	}
}

// NewJournalOrNil passes through a journal, substituting an inert one for
// nil so callers need not guard every write.
func NewJournalOrNil(journal *Journal) *Journal {
	if journal == nil {
		return &Journal{}
	}
	return journal
}

// Match attempts to link one record. The record's file-embedded metadata
// document supplies candidate titles and field fallbacks; on success the
// record's spreadsheet block is populated in place.
func (m *Matcher) Match(table *catalog.Table, fileDoc sources.Document) Outcome {
	absorbFileMetadata(table, fileDoc)
	filename := catalog.Stem(table.VpxFile)

	// A record that already knows its spreadsheet id is re-linked directly.
	if table.VpsID != "" && !m.cfg.ForceRebuild {
		if entry, ok := m.corpus.Lookup(table.VpsID); ok {
			populateFromEntry(entry, table, 1.0)
			m.logger.Info("direct id match",
				logging.String(logging.FieldTable, filename),
				logging.String("vps_id", table.VpsID))
			return Matched
		}
		m.logger.Warn("stored spreadsheet id not found, falling back to matchmaking",
			logging.String(logging.FieldTable, filename),
			logging.String("vps_id", table.VpsID))
	}

	if table.Owner == catalog.OwnerCommunity && !m.cfg.ForceRebuild {
		return Skipped
	}

	cands := buildCandidates(table, fileDoc)
	manufacturer := fallbackText(fileDoc, "filename_manufacturer", table.Manufacturer, table.TableManufacturer)
	year := fallbackText(fileDoc, "filename_year", table.Year, table.TableYear)

	source := sources.Document{"name": table.Title}
	if manufacturer != "" {
		source["manufacturer"] = manufacturer
	}
	if year != "" {
		source["year"] = year
	}
	if table.TableAuthor != "" {
		source["author"] = table.TableAuthor
	}

	normRom := textnorm.NormalizeStrict(table.RomName)
	var (
		bestScore float64
		bestEntry sources.Document
		bestName  string
	)
	for _, entry := range m.corpus.Docs {
		if name := sources.Name(entry, sources.Vpsdb); name == "" {
			continue
		}
		score := m.scorer.Score(source, sources.Unknown, entry, sources.Vpsdb, cands)
		if score.Name > 0 && score.Name < m.cfg.SimilarityFloor {
			score.Total -= score.Name * m.weights.Name
			score.Name = 0
		}
		if romMatches(entry, normRom) {
			score.Total += m.cfg.RomBonus
		}
		if score.Total > bestScore {
			bestScore = score.Total
			bestEntry = entry
			bestName = sources.Name(entry, sources.Vpsdb)
		}
	}

	if bestEntry != nil && bestScore >= m.cfg.AcceptThreshold {
		populateFromEntry(bestEntry, table, bestScore)
		m.logger.Info("matched table",
			logging.String(logging.FieldTable, filename),
			logging.String("vps_name", table.VpsName),
			logging.Float64("confidence", bestScore))
		return Matched
	}

	nearMatch := ""
	if bestScore >= 0.3 {
		nearMatch = bestName
	}
	if err := m.journal.NoMatch(table.Title, table.TableName, table.RomName, filename, year, manufacturer, bestScore, nearMatch); err != nil {
		m.logger.Warn("mismatch journal write failed", logging.Error(err))
	}
	m.logger.Warn("no spreadsheet match",
		logging.String(logging.FieldTable, filename),
		logging.Float64("best_score", bestScore))
	return Unmatched
}

// absorbFileMetadata copies fields embedded in the table file into the
// record. The scan document carries them under table_info and properties,
// mirroring what the table editor saves.
func absorbFileMetadata(table *catalog.Table, fileDoc sources.Document) {
	if info, ok := fileDoc["table_info"].(map[string]any); ok {
		doc := sources.Document(info)
		setClean(&table.TableName, doc, "table_name")
		setClean(&table.TableAuthor, doc, "author_name")
		setClean(&table.TableDescription, doc, "table_description")
		setText(&table.TableSaveDate, doc, "table_save_date")
		setText(&table.TableLastModified, doc, "last_modified")
		setText(&table.TableReleaseDate, doc, "release_date")
		setClean(&table.TableVersion, doc, "table_version")
	}
	if props, ok := fileDoc["properties"].(map[string]any); ok {
		doc := sources.Document(props)
		setClean(&table.TableType, doc, "TableType")
		setClean(&table.TableManufacturer, doc, "CompanyName", "Company")
		setClean(&table.TableYear, doc, "CompanyYear", "Year")
		setClean(&table.TableRom, doc, "ROM", "Rom")
	}
	if table.RomName == "" {
		table.RomName, _ = sources.Text(fileDoc, "rom")
	}
	if table.VpxFile == "" {
		table.VpxFile, _ = sources.Text(fileDoc, "path")
	}
	if table.Title == "" {
		table.Title = textnorm.TitleFromPath(table.VpxFile)
	}
}

func setClean(dst *string, doc sources.Document, keys ...string) {
	if value, ok := sources.Text(doc, keys...); ok {
		*dst = textnorm.CleanSpaces(value)
	}
}

func setText(dst *string, doc sources.Document, keys ...string) {
	if value, ok := sources.Text(doc, keys...); ok {
		*dst = value
	}
}

func fallbackText(doc sources.Document, key string, fallbacks ...string) string {
	if value, ok := sources.Text(doc, key); ok {
		return value
	}
	for _, fb := range fallbacks {
		if fb != "" {
			return fb
		}
	}
	return ""
}
