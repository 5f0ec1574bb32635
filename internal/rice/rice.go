package rice

// Defaults offered by the setup wizard. An empty submission takes the
// default verbatim; disabled services keep these values all the way into
// the env file.
const (
	DefaultInstanceURL = "localhost:50051"
	DefaultUser        = "admin"
	DefaultHTTPPort    = "3000"
	DefaultRunID       = "default"
)

// StorageConfig holds the connection parameters for the Rice Storage service.
type StorageConfig struct {
	URL      string
	User     string
	Token    string
	HTTPPort string
}

// StateConfig holds the connection parameters for the Rice State service.
type StateConfig struct {
	URL   string
	Token string
	RunID string
}

// SetupAnswers collects everything the setup wizard asks for.
type SetupAnswers struct {
	StorageEnabled bool
	StateEnabled   bool
	Storage        StorageConfig
	State          StateConfig
}

// DefaultAnswers returns a fully defaulted answer set. Tokens default to
// empty, which is allowed.
func DefaultAnswers() SetupAnswers {
	return SetupAnswers{
		StorageEnabled: true,
		StateEnabled:   true,
		Storage: StorageConfig{
			URL:      DefaultInstanceURL,
			User:     DefaultUser,
			HTTPPort: DefaultHTTPPort,
		},
		State: StateConfig{
			URL:   DefaultInstanceURL,
			RunID: DefaultRunID,
		},
	}
}

// EnvKeys lists the environment variables rice-cli owns, in the order they
// are written to the env file.
func EnvKeys() []string {
	return []string{
		"STORAGE_INSTANCE_URL",
		"STORAGE_USER",
		"STORAGE_AUTH_TOKEN",
		"STORAGE_HTTP_PORT",
		"STATE_INSTANCE_URL",
		"STATE_AUTH_TOKEN",
		"STATE_RUN_ID",
	}
}
