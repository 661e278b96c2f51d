package enrich

import (
	"log/slog"

	"pindex/internal/catalog"
	"pindex/internal/config"
	"pindex/internal/logging"
	"pindex/internal/match"
	"pindex/internal/sources"
)

// LauncherLinker cross-references catalog records against the retro-launcher
// corpus. Only the launcher id is stored; launcher metadata never overwrites
// local fields. Safe for concurrent use.
type LauncherLinker struct {
	corpus    *sources.Corpus
	scorer    *match.Scorer
	threshold float64
	logger    *slog.Logger
}

// NewLauncherLinker returns a linker over the launcher corpus.
func NewLauncherLinker(corpus *sources.Corpus, cfg config.Matching, logger *slog.Logger) *LauncherLinker {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LauncherLinker{
		corpus: corpus,
		scorer: match.NewScorer(match.Weights{
			Name:         cfg.NameWeight,
			Year:         cfg.YearWeight,
			Manufacturer: cfg.ManufacturerWeight,
			Players:      cfg.PlayersWeight,
			Author:       cfg.AuthorWeight,
		}),
		threshold: cfg.LbdbThreshold,
		logger:    logging.NewComponentLogger(logger, "enrich"),
	}
}

// Link resolves the launcher id for one record. Any previously stored id is
// discarded first so renamed tables re-resolve.
func (l *LauncherLinker) Link(table *catalog.Table, fileDoc sources.Document) {
	table.LbdbID = ""

	cands := buildCandidates(table, fileDoc)
	source := sources.Document{"name": table.Title}
	if table.Manufacturer != "" {
		source["manufacturer"] = table.Manufacturer
	}
	if table.Year != "" {
		source["year"] = table.Year
	}

	var (
		bestScore float64
		bestID    string
	)
	for _, id := range l.corpus.IDs {
		entry, _ := l.corpus.Lookup(id)
		score := l.scorer.Score(source, sources.Unknown, entry, sources.Lbdb, cands)
		if score.Total >= l.threshold && score.Total > bestScore {
			bestScore = score.Total
			bestID = id
		}
	}
	if bestID == "" {
		return
	}

	table.LbdbID = bestID
	l.logger.Info("launcher cross reference",
		logging.String(logging.FieldTable, catalog.Stem(table.VpxFile)),
		logging.String("lbdb_id", bestID),
		logging.Float64("confidence", bestScore))
}
