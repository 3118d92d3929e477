package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Defaults mirroring the original harness setup.
const (
	DefaultBucket        = "dkh-test"
	DefaultDataDir       = "data"
	DefaultLargeFileSize = 1 * 1024 * 1024 * 1024 // 1GB
	DefaultSmallCount    = 10000
	SmallFileSizeMin     = 2
	SmallFileSizeMax     = 512
)

// requiredVars are the environment variables that must be present before
// any network call is attempted.
var requiredVars = []string{
	"AWS_ACCESS_KEY_ID",
	"AWS_SECRET_ACCESS_KEY",
	"AWS_ENDPOINT_URL",
	"AWS_REGION",
}

// Config holds the S3 connection info and local staging layout for a run.
// It is built once at startup and passed explicitly to every operation.
type Config struct {
	AccessKeyID     string
	SecretAccessKey string
	EndpointURL     string
	Region          string
	Bucket          string
	DataDir         string

	LargeFileSize int64
	SmallCount    int
	SmallSizeMin  int
	SmallSizeMax  int
}

// Load reads the environment (plus an optional .env file) into a Config.
// Every missing required variable is named in the returned error so the
// user can fix them all in one go.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.SetDefault("BUCKET_NAME", DefaultBucket)
	viper.SetDefault("DATA_DIR", DefaultDataDir)
	viper.AutomaticEnv()

	var missing []string
	for _, v := range requiredVars {
		if viper.GetString(v) == "" {
			missing = append(missing, v)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return &Config{
		AccessKeyID:     viper.GetString("AWS_ACCESS_KEY_ID"),
		SecretAccessKey: viper.GetString("AWS_SECRET_ACCESS_KEY"),
		EndpointURL:     viper.GetString("AWS_ENDPOINT_URL"),
		Region:          viper.GetString("AWS_REGION"),
		Bucket:          viper.GetString("BUCKET_NAME"),
		DataDir:         viper.GetString("DATA_DIR"),
		LargeFileSize:   DefaultLargeFileSize,
		SmallCount:      DefaultSmallCount,
		SmallSizeMin:    SmallFileSizeMin,
		SmallSizeMax:    SmallFileSizeMax,
	}, nil
}
