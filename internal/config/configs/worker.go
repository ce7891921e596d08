package configs

import "time"

// Sweeper configures the background settlement loop. A zero Interval
// disables it.
type Sweeper struct {
	Interval time.Duration `env:"INTERVAL" envDefault:"0s"`
	Batch    int           `env:"BATCH" envDefault:"100"`
}

// Enabled reports whether the sweeper should run.
func (c Sweeper) Enabled() bool { return c.Interval > 0 }

// Otel configures trace export. Tracing stays a no-op when Endpoint is empty.
type Otel struct {
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"reachpay"`
}

// Seed funds demo accounts on startup. Accounts are identities.
type Seed struct {
	Demo     bool     `env:"DEMO" envDefault:"false"`
	Accounts []string `env:"ACCOUNTS" envSeparator:","`
	Amount   uint64   `env:"AMOUNT" envDefault:"1000000"`
}
