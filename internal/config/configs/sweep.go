package configs

import "time"

// Sweep configures the periodic status sweep.
type Sweep struct {
	Interval   time.Duration `env:"INTERVAL" envDefault:"1h"`
	Workers    int           `env:"WORKERS" envDefault:"4"`
	RunOnStart bool          `env:"RUN_ON_START" envDefault:"true"`
	// Timeout bounds a single sweep run.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10m"`
}
