package configs

// S3 configures the media object store. Endpoint is set for
// S3-compatible stores such as MinIO; PublicURL is the prefix under which
// uploaded objects are served to displays.
type S3 struct {
	Region          string `env:"REGION" envDefault:"ap-northeast-2"`
	Bucket          string `env:"BUCKET" envDefault:"salon-ads-media"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	Endpoint        string `env:"ENDPOINT"`
	PublicURL       string `env:"PUBLIC_URL"`
	UsePathStyle    bool   `env:"USE_PATH_STYLE" envDefault:"false"`
}
