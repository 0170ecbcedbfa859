// Package skills provides skill-string normalization and synonym folding for matching.
package skills

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// SynonymTable maps a canonical skill name to its alias spellings.
// Aliases need not be normalized; both sides are cleaned before lookup.
type SynonymTable map[string][]string

// Normalizer canonicalizes raw skill strings. It is immutable after
// construction and safe for concurrent use.
type Normalizer struct {
	canonical map[string]string // cleaned alias or canonical key -> cleaned canonical key
	log       *zap.Logger
}

// NewNormalizer builds a Normalizer from a synonym table. The table is indexed
// once here and never re-read. Canonical keys take precedence over aliases;
// conflicting aliases resolve to the lexicographically first canonical key.
func NewNormalizer(table SynonymTable, log *zap.Logger) *Normalizer {
	if log == nil {
		log = zap.NewNop()
	}

	canonicals := make([]string, 0, len(table))
	for canonical := range table {
		canonicals = append(canonicals, canonical)
	}
	sort.Strings(canonicals)

	index := make(map[string]string)
	for _, canonical := range canonicals {
		cleaned := Clean(canonical)
		if cleaned == "" {
			continue
		}
		index[cleaned] = cleaned
	}
	for _, canonical := range canonicals {
		cleanedCanonical := Clean(canonical)
		if cleanedCanonical == "" {
			continue
		}
		for _, alias := range table[canonical] {
			cleanedAlias := Clean(alias)
			if cleanedAlias == "" {
				continue
			}
			if _, exists := index[cleanedAlias]; !exists {
				index[cleanedAlias] = cleanedCanonical
			}
		}
	}

	return &Normalizer{canonical: index, log: log}
}

// Clean lower-cases a string, replaces every character outside [a-z0-9+] with
// a space, collapses repeated whitespace, and trims.
func Clean(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '+' {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}

// Normalize cleans a raw skill string and resolves it through the synonym
// table. Lookup is exact string equality only; substring matching is avoided
// deliberately so that e.g. "java" never folds into "javascript". Unknown
// skills pass through cleaned but otherwise verbatim.
func (n *Normalizer) Normalize(raw string) string {
	cleaned := Clean(raw)
	if canonical, ok := n.canonical[cleaned]; ok {
		if canonical != cleaned {
			n.log.Debug("synonym fold", zap.String("from", cleaned), zap.String("to", canonical))
		}
		return canonical
	}
	return cleaned
}

// NormalizeList normalizes every entry, drops empty or whitespace-only
// entries, and deduplicates. The result is sorted lexicographically: original
// order and casing are not preserved at this layer. Callers that want pretty
// output should build a DisplayMap before deduplication.
func (n *Normalizer) NormalizeList(raws []string) []string {
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		normalized := n.Normalize(raw)
		if normalized == "" {
			continue
		}
		seen[normalized] = true
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// DisplayMap maps each normalized form back to the first original spelling
// that produced it, for human-readable output.
func (n *Normalizer) DisplayMap(raws []string) map[string]string {
	display := make(map[string]string, len(raws))
	for _, raw := range raws {
		normalized := n.Normalize(raw)
		if normalized == "" {
			continue
		}
		if _, exists := display[normalized]; !exists {
			display[normalized] = strings.TrimSpace(raw)
		}
	}
	return display
}
