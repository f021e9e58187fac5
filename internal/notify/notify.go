// Package notify defines the UI collaborator surface the sync orchestrator
// signals: user-visible notifications and the manual-sync affordance state.
package notify

// Kind classifies a user-facing notification.
type Kind int

const (
	// SyncComplete reports a successful sync.
	SyncComplete Kind = iota

	// SyncFailed reports a network or server failure; the previous cache
	// is left untouched.
	SyncFailed

	// AuthFailed reports a rejected credential.
	AuthFailed
)

// ControlState is the state of the manual-sync affordance.
type ControlState int

const (
	// ControlEnabled means a manual sync can be requested.
	ControlEnabled ControlState = iota

	// ControlDisabled means a sync is in flight.
	ControlDisabled

	// ControlNeedsToken means the credential was rejected and the user
	// must configure a valid token before syncing again.
	ControlNeedsToken
)

// Notifier is implemented by UI collaborators.
type Notifier interface {
	// Notify shows a user-visible notification.
	Notify(kind Kind, message string)

	// SetSyncControl updates the manual-sync affordance.
	SetSyncControl(state ControlState)
}
