package unify

import (
	"pindex/internal/sources"
)

// Entity is one canonical table, either a partial result for a single
// spreadsheet entry or a fully merged cluster. Aggregate arrays are
// deduplicated in insertion order; Raw retains each absorbed source
// payload unmodified.
type Entity struct {
	CanonicalID   string              `json:"canonical_id"`
	Name          string              `json:"canonical_name,omitempty"`
	Sources       map[string][]string `json:"db_sources,omitempty"`
	Raw           map[string][]any    `json:"raw_metadata,omitempty"`
	Aliases       []string            `json:"aliases,omitempty"`
	Manufacturers []string            `json:"manufacturers,omitempty"`
	Years         []int               `json:"years,omitempty"`
	Themes        []string            `json:"themes,omitempty"`
	Images        []string            `json:"images,omitempty"`
	Links         []string            `json:"links,omitempty"`
	Roms          []string            `json:"roms,omitempty"`
	Authors       []string            `json:"authors,omitempty"`
	PlayerCounts  []int               `json:"playerCounts,omitempty"`
	TableTypes    []string            `json:"tableTypes,omitempty"`
	Versions      []string            `json:"versions,omitempty"`
}

// NewEntity returns an empty entity with the given canonical id.
func NewEntity(canonicalID string) *Entity {
	return &Entity{
		CanonicalID: canonicalID,
		Sources:     make(map[string][]string),
		Raw:         make(map[string][]any),
	}
}

// AddSource records that the entity absorbed the given record, keeping its
// raw payload.
func (e *Entity) AddSource(tag sources.Tag, id string, raw any) {
	key := string(tag)
	for _, existing := range e.Sources[key] {
		if existing == id {
			return
		}
	}
	e.Sources[key] = append(e.Sources[key], id)
	if raw != nil {
		e.Raw[key] = append(e.Raw[key], raw)
	}
}

// HasSource reports whether the entity already absorbed the given record.
func (e *Entity) HasSource(tag sources.Tag, id string) bool {
	for _, existing := range e.Sources[string(tag)] {
		if existing == id {
			return true
		}
	}
	return false
}

// Absorb folds another entity's sources and aggregates into this one. The
// display name is left to the caller; name precedence depends on cluster
// composition.
func (e *Entity) Absorb(other *Entity) {
	if other == nil {
		return
	}
	for key, ids := range other.Sources {
		for _, id := range ids {
			if !containsString(e.Sources[key], id) {
				e.Sources[key] = append(e.Sources[key], id)
			}
		}
	}
	for key, raws := range other.Raw {
		e.Raw[key] = append(e.Raw[key], raws...)
	}
	e.Aliases = appendUnique(e.Aliases, other.Aliases...)
	e.Manufacturers = appendUnique(e.Manufacturers, other.Manufacturers...)
	e.Years = appendUniqueInts(e.Years, other.Years...)
	e.Themes = appendUnique(e.Themes, other.Themes...)
	e.Images = appendUnique(e.Images, other.Images...)
	e.Links = appendUnique(e.Links, other.Links...)
	e.Roms = appendUnique(e.Roms, other.Roms...)
	e.Authors = appendUnique(e.Authors, other.Authors...)
	e.PlayerCounts = appendUniqueInts(e.PlayerCounts, other.PlayerCounts...)
	e.TableTypes = appendUnique(e.TableTypes, other.TableTypes...)
	e.Versions = appendUnique(e.Versions, other.Versions...)
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if v != "" && !containsString(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

func appendUniqueInts(dst []int, values ...int) []int {
	for _, v := range values {
		if v == 0 {
			continue
		}
		seen := false
		for _, existing := range dst {
			if existing == v {
				seen = true
				break
			}
		}
		if !seen {
			dst = append(dst, v)
		}
	}
	return dst
}

func containsString(list []string, v string) bool {
	for _, existing := range list {
		if existing == v {
			return true
		}
	}
	return false
}
