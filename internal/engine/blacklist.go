package engine

import (
	"log"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// blacklistCacheSize caps the number of cached verdicts independently of the
// hit-count invalidation, bounding memory on window-heavy sessions.
const blacklistCacheSize = 512

// Matcher classifies windows against the blacklist rule sets. Verdicts are
// cached per window handle; the whole cache is dropped once it has served
// more than the configured number of hits, which bounds how stale a cached
// title match can get.
type Matcher struct {
	rules   Blacklist
	hitMax  int
	verbose bool

	cache *lru.Cache[Window, bool]
	hits  int
}

// NewMatcher builds a matcher for the given rule sets.
func NewMatcher(rules Blacklist, hitMax int, verbose bool) (*Matcher, error) {
	cache, err := lru.New[Window, bool](blacklistCacheSize)
	if err != nil {
		return nil, err
	}
	return &Matcher{rules: rules, hitMax: hitMax, verbose: verbose, cache: cache}, nil
}

// Configure replaces the rule sets and invalidates every cached verdict.
func (m *Matcher) Configure(rules Blacklist, hitMax int, verbose bool) {
	m.rules = rules
	m.hitMax = hitMax
	m.verbose = verbose
	m.ClearCache()
}

// ClearCache forces a full invalidation on the next classification.
func (m *Matcher) ClearCache() {
	m.hits = m.hitMax + 1
}

// IsBlacklisted reports whether the window matches any blacklist rule.
// Rules run cheapest first: class name, then title substring, then
// executable name.
func (m *Matcher) IsBlacklisted(w Window, meta WindowMetadata) bool {
	if m.hits <= m.hitMax {
		if cached, ok := m.cache.Get(w); ok {
			m.hits++
			return cached
		}
	} else {
		if m.verbose {
			log.Printf("[engine] blacklist cache served %d hits, clearing", m.hits)
		}
		m.cache.Purge()
		m.hits = 0
	}

	verdict := m.evaluate(meta)
	m.cache.Add(w, verdict)

	if m.verbose {
		match := "no blacklist match"
		if verdict {
			match = "blacklist match"
		}
		log.Printf("[engine] %s for window 0x%X [%s] [%s] [%s]",
			match, uintptr(w), meta.Class, exeNameOf(meta), meta.Title)
	}
	return verdict
}

func exeNameOf(meta WindowMetadata) string {
	if meta.ExeName == nil {
		return ""
	}
	return meta.ExeName()
}

func (m *Matcher) evaluate(meta WindowMetadata) bool {
	if _, ok := m.rules.Classes[meta.Class]; ok {
		return true
	}
	for _, sub := range m.rules.TitleSubstrings {
		if strings.Contains(meta.Title, sub) {
			return true
		}
	}
	// The process image is resolved only after the cheaper rules miss.
	if len(m.rules.ExeNamesLower) > 0 {
		if _, ok := m.rules.ExeNamesLower[strings.ToLower(exeNameOf(meta))]; ok {
			return true
		}
	}
	return false
}
