package main

type Config struct {
	// Server address. PORT in the environment overrides the port part.
	ListenAddr string

	// Optional sqlite datastore, used only by the /test diagnostic route
	// and the boot log. Empty means the service runs without one.
	DatabaseURL  string
	DatabaseName string

	// Logging.
	LogLevel string
	LogFile  string
}

func defaultConfig() Config {
	return Config{
		ListenAddr: defaultListenAddr,
		LogLevel:   "info",
	}
}

const defaultListenAddr = "0.0.0.0:8000"
