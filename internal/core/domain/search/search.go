package search

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"expwall/internal/core/domain/experience"

	lev "github.com/agnivade/levenshtein"
)

const (
	// DefaultThreshold is the normalized distance (0 = exact, 1 = nothing in
	// common) above which a candidate stops matching. 0.4 is deliberately
	// permissive.
	DefaultThreshold = 0.4
	// MinTokenLength drops tokens too short to match meaningfully.
	MinTokenLength = 3
)

// Document is one searchable (identifier, content) pair.
type Document struct {
	ID      experience.ID
	Content string
}

// Engine performs approximate matching of a free-text query over a corpus of
// documents. The index is rebuilt from the given corpus on every call; at
// this system's scale that is acceptable, a persistent index is a scaling
// concern, not a correctness one.
type Engine struct {
	threshold      float64
	minTokenLength int
}

func New(threshold float64, minTokenLength int) *Engine {
	return &Engine{threshold: threshold, minTokenLength: minTokenLength}
}

func NewDefault() *Engine {
	return New(DefaultThreshold, MinTokenLength)
}

// Search returns the identifiers of matching documents ordered best match
// first. Ties keep the corpus insertion order. An empty result is a valid
// outcome, not an error.
//
// A document matches when the mean of the best normalized edit distances of
// every query token against the document's tokens stays within the
// threshold, irrespective of where in the content the tokens occur.
func (e *Engine) Search(query string, docs []Document) []experience.ID {
	queryTokens := e.tokenize(query)
	if len(queryTokens) == 0 {
		return nil
	}

	type scoredDoc struct {
		id    experience.ID
		score float64
	}
	matched := make([]scoredDoc, 0, len(docs))
	for _, doc := range docs {
		docTokens := e.tokenize(doc.Content)
		if len(docTokens) == 0 {
			continue
		}
		score := e.score(queryTokens, docTokens)
		if score <= e.threshold {
			matched = append(matched, scoredDoc{id: doc.ID, score: score})
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].score < matched[j].score
	})

	ids := make([]experience.ID, 0, len(matched))
	for _, doc := range matched {
		ids = append(ids, doc.id)
	}
	return ids
}

func (e *Engine) score(queryTokens, docTokens []string) float64 {
	var total float64
	for _, queryToken := range queryTokens {
		best := 1.0
		for _, docToken := range docTokens {
			distance := normalizedDistance(queryToken, docToken)
			if distance < best {
				best = distance
			}
			if best == 0 {
				break
			}
		}
		total += best
	}
	return total / float64(len(queryTokens))
}

func (e *Engine) tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	tokens := fields[:0]
	for _, field := range fields {
		if utf8.RuneCountInString(field) >= e.minTokenLength {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

func normalizedDistance(a, b string) float64 {
	if a == b {
		return 0
	}
	longest := utf8.RuneCountInString(a)
	if l := utf8.RuneCountInString(b); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}
	return float64(lev.ComputeDistance(a, b)) / float64(longest)
}
