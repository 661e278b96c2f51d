package unify

import (
	"strings"

	"pindex/internal/match"
	"pindex/internal/sources"
)

// Unifier resolves one spreadsheet entry against every secondary corpus.
// It is safe for concurrent use; all corpora are read-only.
type Unifier struct {
	ipdb    *sources.Corpus
	lbdb    *sources.Corpus
	vpinmdb *sources.Corpus
	scorer  *match.Scorer

	ipdbThreshold float64
	lbdbThreshold float64
}

// NewUnifier returns a unifier over the secondary corpora. The historical
// corpus threshold and the launcher corpus threshold differ; launcher
// titles are noisier, so its bar sits higher.
func NewUnifier(ipdb, lbdb, vpinmdb *sources.Corpus, scorer *match.Scorer, ipdbThreshold, lbdbThreshold float64) *Unifier {
	return &Unifier{
		ipdb:          ipdb,
		lbdb:          lbdb,
		vpinmdb:       vpinmdb,
		scorer:        scorer,
		ipdbThreshold: ipdbThreshold,
		lbdbThreshold: lbdbThreshold,
	}
}

// Unify builds the partial canonical entity for one spreadsheet entry.
// The arcade-historical link prefers the literal cross-reference embedded
// in the entry's ipdbUrl; scoring runs only when no usable reference
// exists. The media corpus is keyed 1:1 by spreadsheet id and is never
// scored.
func (u *Unifier) Unify(vpsEntry sources.Document, canonicalID string) *Entity {
	entity := NewEntity(canonicalID)
	vpsID := sources.ID(vpsEntry, sources.Vpsdb)
	if vpsID != "" {
		entity.AddSource(sources.Vpsdb, vpsID, map[string]any(vpsEntry))
	}

	name := sources.Name(vpsEntry, sources.Vpsdb)
	entity.Name = name
	entity.Manufacturers = appendUnique(entity.Manufacturers, sources.Manufacturer(vpsEntry, sources.Vpsdb))
	entity.Years = appendUniqueInts(entity.Years, match.Year(vpsEntry, sources.Vpsdb))
	entity.Themes = appendUnique(entity.Themes, stringList(vpsEntry, "theme")...)
	entity.Authors = appendUnique(entity.Authors, sources.Author(vpsEntry, sources.Vpsdb))
	entity.PlayerCounts = appendUniqueInts(entity.PlayerCounts, sources.Players(vpsEntry, sources.Vpsdb))
	entity.Images = appendUnique(entity.Images, stringList(vpsEntry, "images")...)
	entity.Roms = appendUnique(entity.Roms, stringList(vpsEntry, "roms")...)
	entity.Links = appendUnique(entity.Links, stringList(vpsEntry, "links")...)
	if tableType, ok := sources.Text(vpsEntry, "tableType"); ok {
		entity.TableTypes = appendUnique(entity.TableTypes, tableType)
	}
	if version, ok := sources.Text(vpsEntry, "version"); ok {
		entity.Versions = appendUnique(entity.Versions, version)
	}

	var cands match.Candidates
	cands.Add(name)
	if title, ok := sources.Text(vpsEntry, "title"); ok {
		cands.Add(title)
	}

	u.linkHistorical(entity, vpsEntry, name, &cands)
	u.linkLauncher(entity, vpsEntry, name, &cands)
	u.linkMedia(entity, vpsID)
	return entity
}

func (u *Unifier) linkHistorical(entity *Entity, vpsEntry sources.Document, name string, cands *match.Candidates) {
	ipdbID := ""
	if url, ok := sources.Text(vpsEntry, "ipdbUrl"); ok {
		ipdbID = ExtractIpdbID(url)
	}
	if _, known := u.ipdb.Lookup(ipdbID); !known {
		ipdbID = ""
	}

	if ipdbID == "" {
		bestScore := 0.0
		for _, id := range u.ipdb.IDs {
			entry, _ := u.ipdb.Lookup(id)
			score := u.scorer.Score(vpsEntry, sources.Vpsdb, entry, sources.Ipdb, cands)
			if score.Total >= u.ipdbThreshold && score.Total > bestScore {
				bestScore = score.Total
				ipdbID = id
			}
		}
	}
	if ipdbID == "" {
		return
	}

	entry, _ := u.ipdb.Lookup(ipdbID)
	entity.AddSource(sources.Ipdb, ipdbID, map[string]any(entry))

	if title := sources.Name(entry, sources.Ipdb); title != "" && title != name {
		entity.Aliases = appendUnique(entity.Aliases, title)
	}
	entity.Manufacturers = appendUnique(entity.Manufacturers, sources.Manufacturer(entry, sources.Ipdb))
	entity.Years = appendUniqueInts(entity.Years, match.Year(entry, sources.Ipdb))
	if theme, ok := sources.Text(entry, "Theme"); ok {
		entity.Themes = appendUnique(entity.Themes, theme)
	}
	entity.Images = appendUnique(entity.Images, ipdbImages(entry)...)
}

func (u *Unifier) linkLauncher(entity *Entity, vpsEntry sources.Document, name string, cands *match.Candidates) {
	bestScore := 0.0
	bestID := ""
	for _, id := range u.lbdb.IDs {
		entry, _ := u.lbdb.Lookup(id)
		score := u.scorer.Score(vpsEntry, sources.Vpsdb, entry, sources.Lbdb, cands)
		if score.Total >= u.lbdbThreshold && score.Total > bestScore {
			bestScore = score.Total
			bestID = id
		}
	}
	if bestID == "" {
		return
	}

	entry, _ := u.lbdb.Lookup(bestID)
	entity.AddSource(sources.Lbdb, bestID, map[string]any(entry))

	if title := sources.Name(entry, sources.Lbdb); title != "" && title != name {
		entity.Aliases = appendUnique(entity.Aliases, title)
	}
	entity.Manufacturers = appendUnique(entity.Manufacturers, sources.Manufacturer(entry, sources.Lbdb))
	entity.Images = appendUnique(entity.Images, lbdbImages(entry)...)
}

func (u *Unifier) linkMedia(entity *Entity, vpsID string) {
	if vpsID == "" {
		return
	}
	entry, ok := u.vpinmdb.Lookup(vpsID)
	if !ok {
		return
	}
	entity.AddSource(sources.Vpinmdb, vpsID, map[string]any(entry))
	entity.Images = appendUnique(entity.Images, CollectMediaURLs(map[string]any(entry))...)
}

// ExtractIpdbID parses the machine id out of an arcade-historical URL,
// the "id=" query parameter. Returns "" when no id is present.
func ExtractIpdbID(url string) string {
	pos := strings.Index(url, "id=")
	if pos < 0 {
		return ""
	}
	id := url[pos+len("id="):]
	if amp := strings.IndexByte(id, '&'); amp >= 0 {
		id = id[:amp]
	}
	return id
}

func stringList(doc sources.Document, key string) []string {
	raw, ok := doc[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
