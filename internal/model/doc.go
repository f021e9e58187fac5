// Package model defines the data structures used throughout repojump.
//
// # Repository
//
// The [Repository] struct is the remote record as fetched from the hosting
// API. It only carries the fields the suggestion engine needs.
//
// # Suggestion
//
// The [Suggestion] struct is the derived, persisted form: a navigation URL
// plus the plain "owner/repo -" display text. The cache holds an ordered
// sequence of these, fully replaced on every successful sync.
//
// # Config
//
// The [Config] struct holds the user settings the sync orchestrator reacts
// to: the access token, the auto-sync interval and the archived-repository
// filter.
package model
