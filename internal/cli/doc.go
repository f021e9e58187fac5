// Package cli holds the interactive terminal models built on bubbletea.
package cli
