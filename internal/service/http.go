package service

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// NewHTTPClient returns the client shared by both sources. Retries stay disabled:
// every external call is attempted once per run.
func NewHTTPClient(timeout time.Duration, userAgent string) *resty.Client {
	return resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)
}
