package storage

import (
	"net/http"
	"time"

	"golang.org/x/net/http2"

	"github.com/volkfox/tigris-speedtest/logger"
)

// newTransport builds the shared HTTP transport for the S3 client. Idle
// connection reuse is what amortizes per-request latency across the
// small-file batches.
func newTransport() *http.Transport {
	transport := &http.Transport{
		MaxIdleConns:          200,
		MaxIdleConnsPerHost:   50,
		MaxConnsPerHost:       100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	// Enable HTTP/2 where the endpoint supports it.
	if err := http2.ConfigureTransport(transport); err != nil {
		logger.Log.Warn().Err(err).Msg("HTTP/2 unavailable, continuing with HTTP/1.1")
	}

	return transport
}
