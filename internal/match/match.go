// Package match ranks cached suggestions against a query. It is a pure
// function over its inputs: no I/O, no shared state.
package match

import (
	"regexp"
	"strings"

	"github.com/inovacc/repojump/internal/model"
)

// DefaultLimit is the maximum number of results returned when the caller
// does not ask for a specific limit.
const DefaultLimit = 10

// Markers wrapping matched spans in the display text. The content URL is
// never annotated.
const (
	MarkerOpen  = "<match>"
	MarkerClose = "</match>"
)

// Annotated is a suggestion with query highlighting applied to a
// display-only copy of the description.
type Annotated struct {
	model.Suggestion

	// Display is the description with every matched span wrapped in
	// MarkerOpen/MarkerClose.
	Display string
}

// Match ranks candidates against the query, case-insensitively, in two
// phases: first candidates whose repository-name segment matches, then
// candidates whose full owner/repo description matches, skipping phase-one
// picks. Original order is preserved within each phase and ties are never
// re-scored. A query that does not compile as a pattern yields an empty
// result, not an error.
func Match(query string, candidates []model.Suggestion, limit int) []Annotated {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if strings.TrimSpace(query) == "" {
		return passthrough(candidates, limit)
	}

	re, err := regexp.Compile("(?i)" + query)
	if err != nil {
		return nil
	}

	picked := make([]bool, len(candidates))
	out := make([]Annotated, 0, limit)

	// Phase 1: repository-name segment only.
	for i, c := range candidates {
		if len(out) >= limit {
			return out
		}

		if re.MatchString(repoName(c.Description)) {
			out = append(out, annotate(c, re))
			picked[i] = true
		}
	}

	// Phase 2: full owner/repo description, skipping phase-one picks.
	for i, c := range candidates {
		if len(out) >= limit {
			return out
		}

		if picked[i] {
			continue
		}

		if re.MatchString(c.Description) {
			out = append(out, annotate(c, re))
		}
	}

	return out
}

// repoName extracts the repository-name segment from a stored description:
// the text after the final "/" in the owner/repo portion.
func repoName(description string) string {
	full := strings.TrimSuffix(description, " -")

	if i := strings.LastIndex(full, "/"); i >= 0 {
		return full[i+1:]
	}

	return full
}

func annotate(s model.Suggestion, re *regexp.Regexp) Annotated {
	display := re.ReplaceAllStringFunc(s.Description, func(m string) string {
		if m == "" {
			return m
		}

		return MarkerOpen + m + MarkerClose
	})

	return Annotated{Suggestion: s, Display: display}
}

// passthrough returns the first limit candidates unannotated. An empty
// query matches everything, so the cache order stands as the ranking.
func passthrough(candidates []model.Suggestion, limit int) []Annotated {
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]Annotated, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, Annotated{Suggestion: c, Display: c.Description})
	}

	return out
}
