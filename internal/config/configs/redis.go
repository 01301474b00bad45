package configs

import "time"

// Redis configures the activity log sink.
type Redis struct {
	Addr     string `env:"ADDRESS" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
	// ActivityKey is the list that activity records are pushed onto.
	ActivityKey string `env:"ACTIVITY_KEY" envDefault:"salonads:activity"`
	// ActivityMaxLen trims the list; zero keeps everything.
	ActivityMaxLen int64 `env:"ACTIVITY_MAX_LEN" envDefault:"10000"`
	// ActivityTimeout bounds a single record on the request path.
	ActivityTimeout time.Duration `env:"ACTIVITY_TIMEOUT" envDefault:"2s"`
}
