package model

// Config holds the application configuration
type Config struct {
	// Token is the GitHub access token, supplied opaquely by the user
	Token string `json:"token"`

	// AutoSyncIntervalMinutes is the interval for periodic re-sync; 0 disables
	AutoSyncIntervalMinutes int `json:"auto_sync_interval_minutes"`

	// IncludeArchived controls whether archived repositories are suggested
	IncludeArchived bool `json:"include_archived"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		AutoSyncIntervalMinutes: 60,
		IncludeArchived:         false,
	}
}
