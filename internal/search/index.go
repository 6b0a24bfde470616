// Package search provides a simple, deterministic, concurrency-safe
// in-memory keyword index over field definitions. Documents with hundreds of
// administrator-authored diet fields are tedious to navigate with exact
// matching alone, so the admin UI offers fuzzy lookup over labels,
// categories, and recommendation texts. The package is intentionally small
// and dependency-free:
//
//   - No logging in the library (callers decide how/what to log)
//   - Clear, documented types and functional options (Option pattern)
//   - Unicode-aware tokenization with optional stop-word removal
//   - Immutable, read-only index after construction (safe for concurrent use)
//   - Deterministic scoring and sorting (stable order for ties)
//
// Scoring uses Jaccard similarity between the query token set and each
// field's token set: score = |Q ∩ F| / |Q ∪ F|.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/nutrigenlab/go-report-backend/internal/domain"
)

// Match is a ranked field with its similarity score.
type Match struct {
	FieldID  string
	Label    string
	Category string
	Score    float64
}

// Index is the minimal interface implemented by all field indices.
type Index interface {
	TopK(query string, k int) []Match
}

// ----------------------------------------------------------------------------
// Options

type Option func(*config)

type config struct {
	stopwords  map[string]struct{}
	maxResults int
}

func defaultConfig() config {
	return config{
		stopwords:  nil,
		maxResults: 0,
	}
}

func WithStopwords(words []string) Option {
	return func(c *config) {
		m := make(map[string]struct{}, len(words))
		for _, w := range words {
			w = strings.ToLower(strings.TrimSpace(w))
			if w != "" {
				m[w] = struct{}{}
			}
		}
		if len(m) > 0 {
			c.stopwords = m
		}
	}
}

func WithMaxResults(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxResults = n
		}
	}
}

// ----------------------------------------------------------------------------
// Implementation

type entry struct {
	id       string
	label    string
	category string
	tokens   map[string]struct{}
	tLen     int
}

type index struct {
	cfg     config
	entries []entry
}

// NewIndex builds an Index over the given definitions. Each definition's
// label, id, category, and three recommendation texts contribute tokens.
// The index is a point-in-time snapshot; rebuild after edits.
func NewIndex(defs []domain.FieldDefinition, opts ...Option) Index {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}

	entries := make([]entry, 0, len(defs))
	for _, d := range defs {
		text := strings.Join([]string{
			d.Label, d.ID, d.Category,
			d.HighRecommendation, d.NormalRecommendation, d.LowRecommendation,
		}, " ")
		toks := tokenize(text, cfg.stopwords)
		if len(toks) == 0 {
			continue
		}
		entries = append(entries, entry{
			id:       d.ID,
			label:    d.Label,
			category: d.Category,
			tokens:   toks,
			tLen:     len(toks),
		})
	}
	return &index{cfg: cfg, entries: entries}
}

// TopK returns up to k best-matching fields by Jaccard similarity.
func (i *index) TopK(q string, k int) []Match {
	if len(i.entries) == 0 {
		return nil
	}
	if strings.TrimSpace(q) == "" {
		return nil
	}
	if k <= 0 {
		k = 5
	}
	if i.cfg.maxResults > 0 && k > i.cfg.maxResults {
		k = i.cfg.maxResults
	}
	qTokens := tokenize(q, i.cfg.stopwords)
	if len(qTokens) == 0 {
		return nil
	}
	qLen := len(qTokens)

	buf := make([]Match, 0, len(i.entries))
	for _, e := range i.entries {
		over := overlap(qTokens, e.tokens)
		if over == 0 {
			continue
		}
		union := float64(qLen + e.tLen - over)
		if union <= 0 {
			continue
		}
		score := float64(over) / union
		if score <= 0 {
			continue
		}
		buf = append(buf, Match{
			FieldID:  e.id,
			Label:    e.label,
			Category: e.category,
			Score:    score,
		})
	}
	if len(buf) == 0 {
		return nil
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].Score != buf[b].Score {
			return buf[a].Score > buf[b].Score
		}
		return buf[a].FieldID < buf[b].FieldID
	})

	if k > len(buf) {
		k = len(buf)
	}
	return buf[:k]
}

// ----------------------------------------------------------------------------
// Helpers

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*`)

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	s = strings.ToLower(s)
	words := wordRE.FindAllString(s, -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if stop != nil {
			if _, skip := stop[w]; skip {
				continue
			}
		}
		out[w] = struct{}{}
	}
	return out
}

func overlap(a, b map[string]struct{}) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	n := 0
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}
