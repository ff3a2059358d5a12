package driven

// ConfigStore provides access to marcassist settings as flat dot-separated
// keys such as "cutter.suffix". Implementations handle persistence and
// type conversion.
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString retrieves a string configuration value.
	// Returns empty string if key doesn't exist or isn't a string.
	GetString(key string) string

	// GetBool retrieves a boolean configuration value.
	// String values are parsed with strconv.ParseBool; anything else is false.
	GetBool(key string) bool

	// Set stores a configuration value.
	// File-backed stores persist immediately.
	Set(key string, value any) error

	// Save persists the current configuration to storage.
	Save() error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}
