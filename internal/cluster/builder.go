// Package cluster assembles the offline master catalog. Every spreadsheet
// entry is unified against the secondary corpora, the resulting pairwise
// links are closed under a disjoint-set forest, and each final group is
// merged into one canonical entity.
package cluster

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"pindex/internal/config"
	"pindex/internal/logging"
	"pindex/internal/match"
	"pindex/internal/services"
	"pindex/internal/sources"
	"pindex/internal/unify"
	"pindex/internal/unionfind"
	"pindex/internal/workerpool"
)

// canonicalPrefix prefixes counter-based canonical ids. Entities that never
// joined a spreadsheet entry carry iso ids instead, see isoID.
const canonicalPrefix = "pindexID_"

// Builder runs one master catalog build.
type Builder struct {
	cfg    *config.Config
	cache  *sources.Cache
	logger *slog.Logger
}

// NewBuilder returns a builder over the given corpus cache.
func NewBuilder(cfg *config.Config, cache *sources.Cache, logger *slog.Logger) *Builder {
	if cache == nil {
		cache = sources.NewCache(logger)
	}
	return &Builder{
		cfg:    cfg,
		cache:  cache,
		logger: logging.NewComponentLogger(logger, "cluster"),
	}
}

// Build produces the master catalog document. The spreadsheet corpus is
// required; a secondary corpus that fails to load degrades to empty and the
// build continues without its records.
func (b *Builder) Build(ctx context.Context) (*Document, error) {
	started := time.Now()
	buildID := uuid.New().String()
	logger := b.logger.With(logging.String(logging.FieldBuildID, buildID))

	vps, err := b.cache.Load(sources.Vpsdb, b.cfg.Sources.VpsdbPath)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "cluster", "build", "load spreadsheet corpus", err)
	}
	ipdb := b.loadOptional(logger, sources.Ipdb, b.cfg.Sources.IpdbPath)
	lbdb := b.loadOptional(logger, sources.Lbdb, b.cfg.Sources.LbdbPath)
	vpinmdb := b.loadOptional(logger, sources.Vpinmdb, b.cfg.Sources.VpinmdbPath)

	scorer := match.NewScorer(match.Weights{
		Name:         b.cfg.Matching.NameWeight,
		Year:         b.cfg.Matching.YearWeight,
		Manufacturer: b.cfg.Matching.ManufacturerWeight,
		Players:      b.cfg.Matching.PlayersWeight,
		Author:       b.cfg.Matching.AuthorWeight,
	})

	merged := make([]sources.Document, len(vps.Docs))
	for i, doc := range vps.Docs {
		media, _ := vpinmdb.Lookup(sources.ID(doc, sources.Vpsdb))
		merged[i] = unify.MergeMediaHints(doc, media)
	}

	links := unify.PreLink(ipdb, lbdb, scorer, b.cfg.Matching.PrelinkThreshold, b.logger)

	unifier := unify.NewUnifier(ipdb, lbdb, vpinmdb, scorer,
		b.cfg.Matching.AcceptThreshold, b.cfg.Matching.LbdbThreshold)

	entities := make([]*unify.Entity, len(merged))
	workers := workerpool.Workers(b.cfg.Build.Workers)
	err = workerpool.ForEach(ctx, workers, len(merged), func(i int) {
		entities[i] = unifier.Unify(merged[i], fmt.Sprintf("%s%d", canonicalPrefix, i+1))
	})
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "cluster", "build", "unification interrupted", err)
	}

	tables := b.mergeClusters(entities, links, ipdb, lbdb, vpinmdb)

	doc := &Document{
		BuildID:        buildID,
		GeneratedAt:    started.UTC(),
		SourceVersions: sourceVersions(vps, ipdb, lbdb, vpinmdb),
		Tables:         tables,
		Raw:            rawCorpora(vps, ipdb, lbdb, vpinmdb),
	}
	logger.Info("master catalog built",
		logging.Int("spreadsheet_entries", vps.Len()),
		logging.Int("tables", len(tables)),
		logging.Int("prelinks", len(links.LauncherToHistorical)),
		logging.Duration("elapsed", time.Since(started)))
	return doc, nil
}

// mergeClusters closes the pairwise links under a union-find forest and
// collapses every group into one entity. Canonical entities keep the id and
// name of their lowest-numbered member; groups without a spreadsheet member
// surface as iso entities.
func (b *Builder) mergeClusters(entities []*unify.Entity, links *unify.PreLinks, ipdb, lbdb, vpinmdb *sources.Corpus) []*unify.Entity {
	forest := unionfind.New[string]()
	for _, entity := range entities {
		canon := canonNode(entity.CanonicalID)
		forest.Add(canon)
		for tag, ids := range entity.Sources {
			for _, id := range ids {
				forest.Union(canon, sourceNode(sources.Tag(tag), id))
			}
		}
	}
	for _, id := range ipdb.IDs {
		forest.Add(sourceNode(sources.Ipdb, id))
	}
	for _, id := range lbdb.IDs {
		forest.Add(sourceNode(sources.Lbdb, id))
	}
	for _, id := range vpinmdb.IDs {
		forest.Add(sourceNode(sources.Vpinmdb, id))
	}
	for lbID, ipID := range links.LauncherToHistorical {
		forest.Union(sourceNode(sources.Lbdb, lbID), sourceNode(sources.Ipdb, ipID))
	}

	sets := forest.Sets()
	for _, members := range sets {
		sort.Strings(members)
	}

	groupEntities := make(map[string][]int)
	for i, entity := range entities {
		root := forest.Find(canonNode(entity.CanonicalID))
		groupEntities[root] = append(groupEntities[root], i)
	}

	var tables []*unify.Entity
	processed := make(map[string]bool)
	for i, entity := range entities {
		root := forest.Find(canonNode(entity.CanonicalID))
		if processed[root] {
			continue
		}
		processed[root] = true

		for _, sibling := range groupEntities[root] {
			if sibling != i {
				entity.Absorb(entities[sibling])
			}
		}
		b.absorbStrayMembers(entity, sets[root], ipdb, lbdb, vpinmdb)
		if entity.Name == "" {
			entity.Name = fallbackName(entity, ipdb, lbdb, vpinmdb)
		}
		tables = append(tables, entity)
	}

	tables = append(tables, b.isolatedEntities(forest, processed, ipdb, lbdb, vpinmdb, sets)...)
	return tables
}

// absorbStrayMembers folds group members the unifier never linked directly,
// typically launcher entries reached only through a prelink.
func (b *Builder) absorbStrayMembers(entity *unify.Entity, members []string, ipdb, lbdb, vpinmdb *sources.Corpus) {
	for _, member := range members {
		tag, id, ok := splitNode(member)
		if !ok || entity.HasSource(tag, id) {
			continue
		}
		switch tag {
		case sources.Ipdb:
			if entry, found := ipdb.Lookup(id); found {
				absorbSourceRecord(entity, tag, id, entry)
			}
		case sources.Lbdb:
			if entry, found := lbdb.Lookup(id); found {
				absorbSourceRecord(entity, tag, id, entry)
			}
		case sources.Vpinmdb:
			if entry, found := vpinmdb.Lookup(id); found {
				absorbSourceRecord(entity, tag, id, entry)
			}
		}
	}
}

// isolatedEntities emits one entity per group that contains no spreadsheet
// member. Corpus order keeps output deterministic.
func (b *Builder) isolatedEntities(forest *unionfind.Forest[string], processed map[string]bool, ipdb, lbdb, vpinmdb *sources.Corpus, sets map[string][]string) []*unify.Entity {
	var isolated []*unify.Entity
	emit := func(corpus *sources.Corpus) {
		for _, id := range corpus.IDs {
			root := forest.Find(sourceNode(corpus.Tag, id))
			if processed[root] {
				continue
			}
			processed[root] = true

			entity := unify.NewEntity(isoID(corpus.Tag, id))
			b.absorbStrayMembers(entity, sets[root], ipdb, lbdb, vpinmdb)
			entity.Name = fallbackName(entity, ipdb, lbdb, vpinmdb)
			entity.Aliases = dropString(entity.Aliases, entity.Name)
			isolated = append(isolated, entity)
		}
	}
	emit(ipdb)
	emit(lbdb)
	emit(vpinmdb)
	return isolated
}

// absorbSourceRecord attaches a secondary-corpus record and its display
// fields to an entity.
func absorbSourceRecord(entity *unify.Entity, tag sources.Tag, id string, entry sources.Document) {
	entity.AddSource(tag, id, map[string]any(entry))
	if name := sources.Name(entry, tag); name != "" && name != entity.Name {
		entity.Aliases = appendMissing(entity.Aliases, name)
	}
	if manufacturer := sources.Manufacturer(entry, tag); manufacturer != "" {
		entity.Manufacturers = appendMissing(entity.Manufacturers, manufacturer)
	}
	if year := match.Year(entry, tag); year != 0 {
		entity.Years = appendMissingInt(entity.Years, year)
	}
	for _, url := range unify.SourceImages(tag, entry) {
		entity.Images = appendMissing(entity.Images, url)
	}
}

// fallbackName picks a display name for an entity with no spreadsheet
// record: historical title first, launcher title second, media record name
// last.
func fallbackName(entity *unify.Entity, ipdb, lbdb, vpinmdb *sources.Corpus) string {
	if entity.Name != "" {
		return entity.Name
	}
	for _, id := range entity.Sources[string(sources.Ipdb)] {
		if entry, ok := ipdb.Lookup(id); ok {
			if name := sources.Name(entry, sources.Ipdb); name != "" {
				return name
			}
		}
	}
	for _, id := range entity.Sources[string(sources.Lbdb)] {
		if entry, ok := lbdb.Lookup(id); ok {
			if name := sources.Name(entry, sources.Lbdb); name != "" {
				return name
			}
		}
	}
	for _, id := range entity.Sources[string(sources.Vpinmdb)] {
		if entry, ok := vpinmdb.Lookup(id); ok {
			if name := sources.Name(entry, sources.Vpinmdb); name != "" {
				return name
			}
		}
	}
	return ""
}

func (b *Builder) loadOptional(logger *slog.Logger, tag sources.Tag, path string) *sources.Corpus {
	if path == "" {
		return emptyCorpus(tag)
	}
	corpus, err := b.cache.Load(tag, path)
	if err != nil {
		logger.Warn("secondary corpus unavailable, continuing without it",
			logging.String(logging.FieldSource, string(tag)),
			logging.Error(err))
		return emptyCorpus(tag)
	}
	return corpus
}

func emptyCorpus(tag sources.Tag) *sources.Corpus {
	return &sources.Corpus{Tag: tag, ByID: make(map[string]sources.Document)}
}

func canonNode(canonicalID string) string {
	return "canon:" + canonicalID
}

func sourceNode(tag sources.Tag, id string) string {
	return string(tag) + ":" + id
}

func splitNode(node string) (sources.Tag, string, bool) {
	tagPart, id, ok := strings.Cut(node, ":")
	if !ok || tagPart == "canon" {
		return sources.Unknown, "", false
	}
	return sources.Tag(tagPart), id, true
}

func isoID(tag sources.Tag, id string) string {
	return fmt.Sprintf("iso_%s_%s", tag, id)
}

func dropString(list []string, v string) []string {
	if v == "" {
		return list
	}
	out := list[:0]
	for _, existing := range list {
		if existing != v {
			out = append(out, existing)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func appendMissing(dst []string, v string) []string {
	for _, existing := range dst {
		if existing == v {
			return dst
		}
	}
	return append(dst, v)
}

func appendMissingInt(dst []int, v int) []int {
	for _, existing := range dst {
		if existing == v {
			return dst
		}
	}
	return append(dst, v)
}
