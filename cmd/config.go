package cmd

// Config carries the runtime configuration of the dispatch service,
// loaded from the environment by the entrypoint.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
}
