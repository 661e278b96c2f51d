package unify

import (
	"sort"

	"pindex/internal/sources"
)

// MergeMediaHints returns a copy of a spreadsheet entry with the matching
// media-corpus entry's images, roms, links, and simple fields folded in.
// The copy feeds unification; corpora themselves are never mutated.
func MergeMediaHints(vpsEntry, mediaEntry sources.Document) sources.Document {
	merged := make(sources.Document, len(vpsEntry)+2)
	for key, value := range vpsEntry {
		merged[key] = value
	}
	if mediaEntry == nil {
		return merged
	}

	images := stringList(merged, "images")
	for _, url := range mediaImages(mediaEntry) {
		if !containsString(images, url) {
			images = append(images, url)
		}
	}
	if len(images) > 0 {
		merged["images"] = anyList(images)
	}

	merged["roms"] = anyList(appendUnique(stringList(merged, "roms"), mediaStrings(mediaEntry, "roms")...))
	merged["links"] = anyList(appendUnique(stringList(merged, "links"), mediaStrings(mediaEntry, "links")...))
	if len(merged["roms"].([]any)) == 0 {
		delete(merged, "roms")
	}
	if len(merged["links"].([]any)) == 0 {
		delete(merged, "links")
	}

	if author, ok := mediaEntry["author"].(string); ok && author != "" {
		if existing, _ := merged["author"].(string); existing == "" {
			merged["author"] = author
		}
	}
	if _, ok := merged["version"]; !ok {
		if version, ok := mediaEntry["version"]; ok {
			merged["version"] = version
		}
	}
	if _, ok := merged["tableType"]; !ok {
		if tableType, ok := mediaEntry["tableType"]; ok {
			merged["tableType"] = tableType
		}
	}
	merged["merged_media_id"] = sources.ID(mediaEntry, sources.Vpinmdb)
	return merged
}

// mediaImages pulls image URLs out of a media entry, tolerating the shapes
// the corpus has shipped: a flat images array, ImageFiles as an array of
// objects or an object of strings, and finally any http(s) string in the
// top-level fields.
func mediaImages(mediaEntry sources.Document) []string {
	var images []string
	for _, s := range mediaStrings(mediaEntry, "images") {
		images = appendUnique(images, s)
	}
	switch files := mediaEntry["ImageFiles"].(type) {
	case []any:
		for _, raw := range files {
			if obj, ok := raw.(map[string]any); ok {
				if url, ok := obj["Url"].(string); ok {
					images = appendUnique(images, url)
				}
			}
		}
	case map[string]any:
		images = appendUnique(images, CollectMediaURLs(files)...)
	}
	keys := make([]string, 0, len(mediaEntry))
	for key := range mediaEntry {
		switch key {
		case "images", "ImageFiles", "links", "roms":
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		images = appendUnique(images, CollectMediaURLs(mediaEntry[key])...)
	}
	return images
}

func mediaStrings(doc sources.Document, key string) []string {
	switch v := doc[key].(type) {
	case []any:
		return stringList(doc, key)
	case string:
		if v != "" {
			return []string{v}
		}
	}
	return nil
}

func anyList(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
