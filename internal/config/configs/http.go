package configs

// HTTP defines configuration for the HTTP server. The host may be
// configured via a reverse proxy in front of the service; the port is
// sufficient for most deployments.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
}
