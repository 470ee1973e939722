package problemgen

import "strings"

// modeCollapseShare is the largest fraction of a tier's distinct signatures
// that may share one pattern.
const modeCollapseShare = 0.3

// Cache is the generator's prior-art state: every emitted question plus
// per-tier signature statistics. It is not safe for concurrent use.
type Cache struct {
	emitted map[string]*Question

	// bySignature indexes emitted question ids by signature.
	bySignature map[string]map[string]struct{}

	signatureCounts map[tierKey]map[string]int
	signatureTotals map[tierKey]int
	patternCoverage map[tierKey]map[string]struct{}
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	c := &Cache{}
	c.Clear()
	return c
}

// Clear forgets all prior art.
func (c *Cache) Clear() {
	c.emitted = make(map[string]*Question)
	c.bySignature = make(map[string]map[string]struct{})
	c.signatureCounts = make(map[tierKey]map[string]int)
	c.signatureTotals = make(map[tierKey]int)
	c.patternCoverage = make(map[tierKey]map[string]struct{})
}

// Len returns the number of emitted questions.
func (c *Cache) Len() int {
	return len(c.emitted)
}

// Get returns an emitted question by id.
func (c *Cache) Get(id string) (*Question, bool) {
	q, ok := c.emitted[id]
	return q, ok
}

// Count returns how many accepted questions of the tier carry sig.
func (c *Cache) Count(t QuizType, d Difficulty, sig string) int {
	return c.signatureCounts[tierKey{t, d}][sig]
}

// Total returns the number of accepted questions for the tier.
func (c *Cache) Total(t QuizType, d Difficulty) int {
	return c.signatureTotals[tierKey{t, d}]
}

// Coverage returns the number of distinct signatures seen for the tier.
func (c *Cache) Coverage(t QuizType, d Difficulty) int {
	return len(c.patternCoverage[tierKey{t, d}])
}

// IsDuplicate reports whether any emitted question outside excludeIDs
// has the candidate's signature.
func (c *Cache) IsDuplicate(candidate *Question, excludeIDs map[string]struct{}) bool {
	for id := range c.bySignature[candidate.Signature()] {
		if _, skip := excludeIDs[id]; !skip {
			return true
		}
	}
	return false
}

// CheckDistribution reports whether sig is still below the tier's
// distribution threshold.
func (c *Cache) CheckDistribution(sig string, t QuizType, d Difficulty, threshold float64) bool {
	key := tierKey{t, d}
	count := c.signatureCounts[key][sig]
	total := c.signatureTotals[key]
	if total == 0 {
		total = 1
	}
	return float64(count)/float64(total) < threshold
}

// IsModeCollapsed reports whether sig's pattern already accounts for more
// than 30% of the distinct signatures seen for the tier.
func (c *Cache) IsModeCollapsed(sig string, t QuizType, d Difficulty) bool {
	coverage := c.patternCoverage[tierKey{t, d}]
	pattern := signaturePattern(sig)
	matches := 0
	for seen := range coverage {
		if signaturePattern(seen) == pattern {
			matches++
		}
	}
	return float64(matches) > float64(len(coverage))*modeCollapseShare
}

// Commit records an emitted question.
func (c *Cache) Commit(q *Question) {
	sig := q.Signature()
	key := tierKey{q.Type, q.Difficulty}

	c.emitted[q.ID] = q

	ids, ok := c.bySignature[sig]
	if !ok {
		ids = make(map[string]struct{})
		c.bySignature[sig] = ids
	}
	ids[q.ID] = struct{}{}

	counts, ok := c.signatureCounts[key]
	if !ok {
		counts = make(map[string]int)
		c.signatureCounts[key] = counts
	}
	counts[sig]++
	c.signatureTotals[key]++

	coverage, ok := c.patternCoverage[key]
	if !ok {
		coverage = make(map[string]struct{})
		c.patternCoverage[key] = coverage
	}
	coverage[sig] = struct{}{}
}

// signaturePattern is the coarse pattern key: the signature up to its first
// operand separator, e.g. "mixed:12" for "mixed:12_5_3".
func signaturePattern(sig string) string {
	pattern, _, _ := strings.Cut(sig, signatureSeparator)
	return pattern
}
