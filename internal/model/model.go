package model

// Repository is a repository record as returned by the hosting API.
// Records are immutable once fetched; each sync replaces the previous
// set wholesale, they are never patched field by field.
type Repository struct {
	// FullName is the "owner/repo" identifier
	FullName string `json:"full_name"`

	// HTMLURL is the repository's web URL
	HTMLURL string `json:"html_url"`

	// Archived indicates the repository is flagged read-only by the host
	Archived bool `json:"archived"`
}

// Suggestion is the persisted, derived form of a repository: the URL to
// navigate to and the plain display text. Highlighting is applied at query
// time and never baked into the stored form.
type Suggestion struct {
	// Content is the navigation URL
	Content string `json:"content"`

	// Description is the plain "owner/repo -" display text
	Description string `json:"description"`
}

// ToSuggestion derives the persisted form of a repository record.
func (r Repository) ToSuggestion() Suggestion {
	return Suggestion{
		Content:     r.HTMLURL,
		Description: r.FullName + " -",
	}
}
