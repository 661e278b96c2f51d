package unify

import (
	"sort"
	"strings"

	"pindex/internal/sources"
)

const launchBoxImagePrefix = "https://images.launchbox-app.com/"

func isHTTPURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// LaunchBoxImageURL makes a retro-launcher image reference absolute. The
// corpus stores bare filenames served from the LaunchBox image host.
func LaunchBoxImageURL(ref string) string {
	if ref == "" || isHTTPURL(ref) || strings.HasPrefix(ref, launchBoxImagePrefix) {
		return ref
	}
	return launchBoxImagePrefix + ref
}

// ipdbImages extracts image URLs from an arcade-historical entry. Exports
// have shipped with ImageFiles objects, a bare Image string, and Images
// string arrays; all are honored.
func ipdbImages(entry sources.Document) []string {
	var images []string
	if files, ok := entry["ImageFiles"].([]any); ok {
		for _, raw := range files {
			obj, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			if url, ok := obj["Url"].(string); ok && url != "" {
				images = append(images, url)
			} else if url, ok := obj["URL"].(string); ok && url != "" {
				images = append(images, url)
			}
		}
	}
	if image, ok := entry["Image"].(string); ok && image != "" {
		images = append(images, image)
	}
	if list, ok := entry["Images"].([]any); ok {
		for _, raw := range list {
			if s, ok := raw.(string); ok && s != "" {
				images = append(images, s)
			}
		}
	}
	return images
}

// lbdbImages extracts image references from a retro-launcher entry and
// makes them absolute. The corpus stores images as a flat array, an
// object of per-category arrays, or single fields.
func lbdbImages(entry sources.Document) []string {
	var images []string
	add := func(ref string) {
		if ref != "" {
			images = append(images, LaunchBoxImageURL(ref))
		}
	}
	switch shaped := entry["images"].(type) {
	case []any:
		for _, raw := range shaped {
			if s, ok := raw.(string); ok {
				add(s)
			}
		}
	case map[string]any:
		categories := make([]string, 0, len(shaped))
		for key := range shaped {
			categories = append(categories, key)
		}
		sort.Strings(categories)
		for _, key := range categories {
			switch v := shaped[key].(type) {
			case string:
				add(v)
			case []any:
				for _, raw := range v {
					if s, ok := raw.(string); ok {
						add(s)
					}
				}
			}
		}
	}
	if list, ok := entry["Images"].([]any); ok {
		for _, raw := range list {
			if s, ok := raw.(string); ok {
				add(s)
			}
		}
	}
	if image, ok := entry["Image"].(string); ok {
		add(image)
	}
	return images
}

// SourceImages extracts image URLs from a record under its corpus
// conventions.
func SourceImages(tag sources.Tag, entry sources.Document) []string {
	switch tag {
	case sources.Ipdb:
		return ipdbImages(entry)
	case sources.Lbdb:
		return lbdbImages(entry)
	case sources.Vpinmdb:
		return CollectMediaURLs(map[string]any(entry))
	}
	return nil
}

// CollectMediaURLs walks an arbitrarily nested payload and returns every
// http(s) string found, deduplicated in traversal order. Used for the
// media corpus, whose payload shape is not stable across exports.
func CollectMediaURLs(node any) []string {
	var urls []string
	seen := make(map[string]bool)
	var walk func(any)
	walk = func(n any) {
		switch v := n.(type) {
		case string:
			if isHTTPURL(v) && !seen[v] {
				seen[v] = true
				urls = append(urls, v)
			}
		case []any:
			for _, item := range v {
				walk(item)
			}
		case map[string]any:
			keys := make([]string, 0, len(v))
			for key := range v {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				walk(v[key])
			}
		}
	}
	walk(node)
	return urls
}
