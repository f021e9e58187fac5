package match

import (
	"strings"
	"testing"

	"github.com/inovacc/repojump/internal/model"
)

func suggestions(descriptions ...string) []model.Suggestion {
	out := make([]model.Suggestion, 0, len(descriptions))

	for _, d := range descriptions {
		name := strings.TrimSuffix(d, " -")
		out = append(out, model.Suggestion{
			Content:     "https://github.com/" + name,
			Description: d,
		})
	}

	return out
}

func TestMatch_RepoNamePhaseRanksFirst(t *testing.T) {
	candidates := suggestions("acme/api-server -", "api/widgets -")

	got := Match("api", candidates, 10)

	if len(got) != 2 {
		t.Fatalf("Match() returned %d results, want 2", len(got))
	}

	if got[0].Content != "https://github.com/acme/api-server" {
		t.Errorf("first result = %s, want the repo-name match", got[0].Content)
	}

	if got[1].Content != "https://github.com/api/widgets" {
		t.Errorf("second result = %s, want the owner match", got[1].Content)
	}
}

func TestMatch_NoDuplicatesAcrossPhases(t *testing.T) {
	// "api-server" matches in phase 1 and would match again in phase 2.
	candidates := suggestions("acme/api-server -", "acme/unrelated -", "api/widgets -")

	got := Match("api", candidates, 10)

	seen := make(map[string]bool)
	for _, r := range got {
		if seen[r.Content] {
			t.Fatalf("duplicate result %s", r.Content)
		}

		seen[r.Content] = true
	}

	if len(got) != 2 {
		t.Errorf("Match() returned %d results, want 2", len(got))
	}
}

func TestMatch_LimitCap(t *testing.T) {
	var descriptions []string
	for i := 0; i < 30; i++ {
		descriptions = append(descriptions, "owner/repo-"+strings.Repeat("a", i+1)+" -")
	}

	candidates := suggestions(descriptions...)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "explicit limit", limit: 5, want: 5},
		{name: "default limit", limit: 0, want: DefaultLimit},
		{name: "limit above matches", limit: 100, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match("repo", candidates, tt.limit)

			if len(got) != tt.want {
				t.Errorf("Match() returned %d results, want %d", len(got), tt.want)
			}
		})
	}
}

func TestMatch_PhaseTwoFillsRemainingSlots(t *testing.T) {
	// One repo-name match, then owner matches fill up to the limit in
	// original order.
	candidates := suggestions(
		"acme/api-server -",
		"api/one -",
		"api/two -",
		"api/three -",
	)

	got := Match("api", candidates, 3)

	want := []string{
		"https://github.com/acme/api-server",
		"https://github.com/api/one",
		"https://github.com/api/two",
	}

	if len(got) != len(want) {
		t.Fatalf("Match() returned %d results, want %d", len(got), len(want))
	}

	for i, w := range want {
		if got[i].Content != w {
			t.Errorf("result[%d] = %s, want %s", i, got[i].Content, w)
		}
	}
}

func TestMatch_CaseInsensitive(t *testing.T) {
	candidates := suggestions("acme/API-server -")

	if got := Match("api", candidates, 10); len(got) != 1 {
		t.Errorf("lowercase query missed uppercase name")
	}

	if got := Match("API", candidates, 10); len(got) != 1 {
		t.Errorf("uppercase query missed")
	}
}

func TestMatch_MalformedQueryYieldsEmpty(t *testing.T) {
	candidates := suggestions("acme/api-server -")

	tests := []string{"(", "[", "a(b", "*", "(?P<"}

	for _, query := range tests {
		t.Run(query, func(t *testing.T) {
			if got := Match(query, candidates, 10); len(got) != 0 {
				t.Errorf("Match(%q) = %d results, want 0", query, len(got))
			}
		})
	}
}

func TestMatch_HighlightWrapsMatchedSpans(t *testing.T) {
	candidates := suggestions("acme/api-server -")

	got := Match("api", candidates, 10)
	if len(got) != 1 {
		t.Fatalf("Match() returned %d results, want 1", len(got))
	}

	wantDisplay := "acme/" + MarkerOpen + "api" + MarkerClose + "-server -"
	if got[0].Display != wantDisplay {
		t.Errorf("Display = %q, want %q", got[0].Display, wantDisplay)
	}

	if got[0].Content != "https://github.com/acme/api-server" {
		t.Errorf("Content was altered by highlighting: %q", got[0].Content)
	}
}

func TestMatch_EmptyQueryPassesThroughCacheOrder(t *testing.T) {
	candidates := suggestions("a/one -", "b/two -", "c/three -")

	got := Match("", candidates, 2)

	if len(got) != 2 {
		t.Fatalf("Match() returned %d results, want 2", len(got))
	}

	if got[0].Description != "a/one -" || got[1].Description != "b/two -" {
		t.Errorf("empty query changed the cache order: %v", got)
	}

	if got[0].Display != got[0].Description {
		t.Errorf("empty query annotated the display text: %q", got[0].Display)
	}
}

func TestRepoName(t *testing.T) {
	tests := []struct {
		description string
		want        string
	}{
		{description: "acme/api-server -", want: "api-server"},
		{description: "api/widgets -", want: "widgets"},
		{description: "plainname -", want: "plainname"},
		{description: "deep/owner/repo -", want: "repo"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := repoName(tt.description); got != tt.want {
				t.Errorf("repoName(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}
