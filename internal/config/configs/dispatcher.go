package configs

import "time"

// Dispatcher configures the periodic distribution dispatcher. The
// dispatcher polls for distributions whose scheduled start falls inside a
// trailing window and deploys them. WindowMinutes must cover at least the
// poll interval or rows scheduled between two polls would be skipped.
type Dispatcher struct {
	// Enabled starts the dispatcher loop alongside the HTTP server.
	Enabled bool `env:"ENABLED" envDefault:"false"`
	// Interval is how often the dispatcher polls for due distributions.
	Interval time.Duration `env:"INTERVAL" envDefault:"15m"`
	// WindowMinutes is the trailing dispatch window in minutes. Valid
	// values are 1 through 59.
	WindowMinutes int `env:"WINDOW_MINUTES" envDefault:"30"`
}
