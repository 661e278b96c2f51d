package unify

import (
	"log/slog"
	"unicode"

	"pindex/internal/logging"
	"pindex/internal/match"
	"pindex/internal/sources"
	"pindex/internal/textnorm"
)

// fallbackCandidateLimit bounds the brute-force candidate scan when
// fingerprint blocking finds nothing.
const fallbackCandidateLimit = 30

// PreLinks holds the links discovered between the retro-launcher and
// arcade-historical corpora before unification. Links are bidirectional:
// each launcher entry maps to at most one historical entry, and each
// historical entry may collect several launcher entries.
type PreLinks struct {
	LauncherToHistorical  map[string]string
	HistoricalToLaunchers map[string][]string
}

// PreLink joins launcher entries to historical entries. Candidates come
// from a fingerprint inverted index over historical titles; entries with
// no fingerprint hit fall back to a bounded scan keyed by manufacturer
// fingerprint, or first title letter when the launcher entry has no
// manufacturer. A candidate must score at or above threshold to link.
func PreLink(ipdb, lbdb *sources.Corpus, scorer *match.Scorer, threshold float64, logger *slog.Logger) *PreLinks {
	if logger == nil {
		logger = logging.NewNop()
	}
	logger = logging.NewComponentLogger(logger, "unify")

	links := &PreLinks{
		LauncherToHistorical:  make(map[string]string),
		HistoricalToLaunchers: make(map[string][]string),
	}
	if ipdb.Len() == 0 || lbdb.Len() == 0 {
		return links
	}

	index := make(map[string][]string)
	for _, id := range ipdb.IDs {
		entry, _ := ipdb.Lookup(id)
		if fp := textnorm.Fingerprint(sources.Name(entry, sources.Ipdb)); fp != "" {
			index[fp] = append(index[fp], id)
		}
	}

	for _, lbID := range lbdb.IDs {
		lbEntry, _ := lbdb.Lookup(lbID)
		lbName := sources.Name(lbEntry, sources.Lbdb)

		candidates := index[textnorm.Fingerprint(lbName)]
		if len(candidates) == 0 {
			candidates = fallbackCandidates(ipdb, lbEntry, lbName)
		}

		var cands match.Candidates
		cands.Add(lbName)
		bestScore := 0.0
		bestID := ""
		for _, candidateID := range candidates {
			ipEntry, ok := ipdb.Lookup(candidateID)
			if !ok {
				continue
			}
			score := scorer.Score(lbEntry, sources.Lbdb, ipEntry, sources.Ipdb, &cands)
			if score.Total > bestScore {
				bestScore = score.Total
				bestID = candidateID
			}
		}
		if bestID != "" && bestScore >= threshold {
			links.LauncherToHistorical[lbID] = bestID
			links.HistoricalToLaunchers[bestID] = append(links.HistoricalToLaunchers[bestID], lbID)
		}
	}

	logger.Info("prelink finished",
		logging.Int("launcher_entries", lbdb.Len()),
		logging.Int("links", len(links.LauncherToHistorical)))
	return links
}

func fallbackCandidates(ipdb *sources.Corpus, lbEntry sources.Document, lbName string) []string {
	manufacturerFP := textnorm.Fingerprint(sources.Manufacturer(lbEntry, sources.Lbdb))

	var firstLetter rune
	for _, r := range lbName {
		firstLetter = unicode.ToLower(r)
		break
	}

	var candidates []string
	for _, id := range ipdb.IDs {
		entry, _ := ipdb.Lookup(id)
		if manufacturerFP == "" {
			title := sources.Name(entry, sources.Ipdb)
			if title == "" || firstLetter == 0 {
				continue
			}
			for _, r := range title {
				if unicode.ToLower(r) == firstLetter {
					candidates = append(candidates, id)
				}
				break
			}
		} else if textnorm.Fingerprint(sources.Manufacturer(entry, sources.Ipdb)) == manufacturerFP {
			candidates = append(candidates, id)
		}
		if len(candidates) > fallbackCandidateLimit {
			break
		}
	}
	return candidates
}
