package storage

import (
	"testing"

	"github.com/volkfox/tigris-speedtest/config"
)

func testConfig(endpoint string) *config.Config {
	return &config.Config{
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
		EndpointURL:     endpoint,
		Region:          "auto",
		Bucket:          "dkh-test",
	}
}

func TestNewS3Client(t *testing.T) {
	endpoints := []string{
		"https://fly.storage.tigris.dev",
		"http://localhost:9000",
		"https://s3.us-east-1.amazonaws.com",
	}

	for _, endpoint := range endpoints {
		t.Run(endpoint, func(t *testing.T) {
			client, err := NewS3Client(testConfig(endpoint))
			if err != nil {
				t.Fatalf("NewS3Client(%q) returned error: %v", endpoint, err)
			}
			if client.bucket != "dkh-test" {
				t.Errorf("bucket expected dkh-test, got %q", client.bucket)
			}
		})
	}
}

func TestNewS3ClientBadEndpoint(t *testing.T) {
	if _, err := NewS3Client(testConfig("://not-a-url")); err == nil {
		t.Error("malformed endpoint should fail client construction")
	}
}
