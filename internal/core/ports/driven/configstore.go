package driven

// ConfigStore provides persistent application configuration.
// Implementations must be safe for concurrent use.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value, "" if unset.
	GetString(key string) string

	// GetInt retrieves an integer configuration value, 0 if unset.
	GetInt(key string) int

	// GetFloat retrieves a float configuration value, 0 if unset.
	GetFloat(key string) float64

	// Set stores a configuration value.
	Set(key string, value any) error

	// Save persists the configuration.
	Save() error
}
