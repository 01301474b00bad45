package configs

import "time"

// Media configures the media prober.
type Media struct {
	// FFProbePath locates the ffprobe binary used to read video durations.
	FFProbePath string `env:"FFPROBE_PATH" envDefault:"ffprobe"`
	// ImageDuration is the playback time assigned to still images.
	ImageDuration time.Duration `env:"IMAGE_DURATION" envDefault:"10s"`
	// ProbeTimeout bounds a single ffprobe invocation.
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT" envDefault:"30s"`
}
