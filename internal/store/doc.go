// Package store persists the suggestion cache and user settings.
//
// Two backends exist, selected at build time: the default bbolt store and
// a sqlite store behind the "sqlite" build tag. Both keep the suggestion
// list in a single named slot that is replaced wholesale on every write,
// so a torn half-written list can never be observed.
package store
