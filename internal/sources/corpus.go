package sources

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"pindex/internal/services"
)

// Corpus is one fully decoded metadata database. Array-shaped corpora keep
// their record order in Docs; keyed corpora are flattened with ids sorted so
// scans are deterministic. Raw holds the decoded value unchanged for
// re-emission in build output.
type Corpus struct {
	Tag  Tag
	Docs []Document
	ByID map[string]Document
	IDs  []string
	Raw  any
}

// Len returns the number of records in the corpus.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Docs)
}

// Lookup returns the record with the given id.
func (c *Corpus) Lookup(id string) (Document, bool) {
	if c == nil || id == "" {
		return nil, false
	}
	doc, ok := c.ByID[id]
	return doc, ok
}

// Load reads and decodes a corpus file. Both shapes found in the wild are
// accepted: a JSON array of records, or an object keyed by record id.
func Load(path string, tag Tag) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, services.Wrap(services.ErrPersistence, "sources", "load", fmt.Sprintf("read %s corpus", tag), err)
	}
	return Decode(data, tag)
}

// Decode builds a Corpus from raw JSON.
func Decode(data []byte, tag Tag) (*Corpus, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, services.Wrap(services.ErrValidation, "sources", "decode", fmt.Sprintf("parse %s corpus", tag), err)
	}

	corpus := &Corpus{Tag: tag, ByID: make(map[string]Document), Raw: raw}
	switch shaped := raw.(type) {
	case []any:
		for _, entry := range shaped {
			doc, ok := entry.(map[string]any)
			if !ok {
				continue
			}
			corpus.append(recordID(doc, tag), Document(doc))
		}
	case map[string]any:
		keys := make([]string, 0, len(shaped))
		for key := range shaped {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			doc, ok := shaped[key].(map[string]any)
			if !ok {
				continue
			}
			corpus.append(key, keyedDocument(Document(doc), key, tag))
		}
	default:
		return nil, services.Wrap(services.ErrValidation, "sources", "decode", fmt.Sprintf("%s corpus is neither array nor object", tag), nil)
	}
	return corpus, nil
}

// keyedDocument guarantees a keyed record carries its object key as an id
// field, so downstream id extraction works without the map context. Records
// that already embed an id pass through; otherwise a copy is made, keeping
// Raw untouched.
func keyedDocument(doc Document, key string, tag Tag) Document {
	if recordID(doc, tag) != "" {
		return doc
	}
	copied := make(Document, len(doc)+1)
	for k, v := range doc {
		copied[k] = v
	}
	copied[idFields(tag)[0]] = key
	return copied
}

func (c *Corpus) append(id string, doc Document) {
	c.Docs = append(c.Docs, doc)
	if id == "" {
		return
	}
	if _, dup := c.ByID[id]; dup {
		return
	}
	c.ByID[id] = doc
	c.IDs = append(c.IDs, id)
}

// recordID extracts the id of an array-shaped record. Numeric ids are
// rendered without a decimal point.
func recordID(doc Document, tag Tag) string {
	for _, key := range idFields(tag) {
		switch v := doc[key].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}

// ID returns the id of a document under its corpus vocabulary.
func ID(doc Document, tag Tag) string {
	return recordID(doc, tag)
}
