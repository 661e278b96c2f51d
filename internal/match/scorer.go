package match

import (
	"pindex/internal/sources"
	"pindex/internal/textnorm"
)

// Candidates is an ordered, duplicate-free set of alternate titles tried
// alongside a record's own name fields. Callers seed it with cleaned
// filenames, ROM-derived titles, and spreadsheet aliases.
type Candidates struct {
	names []string
}

// Add appends a name unless it is empty or already present.
func (c *Candidates) Add(name string) {
	if name == "" {
		return
	}
	for _, existing := range c.names {
		if existing == name {
			return
		}
	}
	c.names = append(c.names, name)
}

// Names returns the candidate names in insertion order.
func (c *Candidates) Names() []string {
	if c == nil {
		return nil
	}
	return c.names
}

// Scorer scores record pairs under a fixed weight distribution.
type Scorer struct {
	weights Weights
}

// NewScorer returns a scorer using the given weights.
func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score compares a source record against a target record, each read under
// its own corpus vocabulary. Extra candidate names, when given, compete with
// the source's own title for the name sub-score.
func (sc *Scorer) Score(source sources.Document, sourceTag sources.Tag, target sources.Document, targetTag sources.Tag, extra *Candidates) Score {
	var score Score

	if targetName := sources.Name(target, targetTag); targetName != "" {
		targetNorm := textnorm.NormalizeLoose(targetName)
		best := 0.0
		if sourceName := sources.Name(source, sourceTag); sourceName != "" {
			best = textnorm.Similarity(textnorm.NormalizeLoose(sourceName), targetNorm)
		}
		for _, candidate := range extra.Names() {
			if sim := textnorm.Similarity(textnorm.NormalizeLoose(candidate), targetNorm); sim > best {
				best = sim
			}
		}
		score.Name = best
	}

	sourceYear := Year(source, sourceTag)
	targetYear := Year(target, targetTag)
	if sourceYear != 0 && targetYear != 0 {
		if sourceYear == targetYear {
			score.Year = 1.0
		}
	}

	sourceManuf := sources.Manufacturer(source, sourceTag)
	targetManuf := sources.Manufacturer(target, targetTag)
	if sourceManuf != "" && targetManuf != "" {
		score.Manufacturer = textnorm.Similarity(textnorm.NormalizeLoose(sourceManuf), textnorm.NormalizeLoose(targetManuf))
	}

	sourcePlayers := sources.Players(source, sourceTag)
	targetPlayers := sources.Players(target, targetTag)
	if sourcePlayers != 0 && targetPlayers != 0 {
		if sourcePlayers == targetPlayers {
			score.Players = 1.0
		}
	}

	sourceAuthor := sources.Author(source, sourceTag)
	targetAuthor := sources.Author(target, targetTag)
	if sourceAuthor != "" && targetAuthor != "" {
		score.Author = textnorm.Similarity(textnorm.NormalizeLoose(sourceAuthor), textnorm.NormalizeLoose(targetAuthor))
	}

	score.compute(sc.weights)
	return score
}

// Year resolves a record's release year. Integer fields win; date strings
// fall back to year extraction.
func Year(doc sources.Document, tag sources.Tag) int {
	if year, ok := sources.Integer(doc, sources.YearFields(tag)...); ok && year >= 1970 && year <= 2100 {
		return year
	}
	if text, ok := sources.Text(doc, sources.YearFields(tag)...); ok {
		return textnorm.ExtractYear(text)
	}
	return 0
}
