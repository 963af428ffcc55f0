package config

import (
	"os"
	"strconv"
	"time"
)

// Timeouts holds all configurable timing values.
// These values can be customized via environment variables.
type Timeouts struct {
	PollInterval        time.Duration // Delay between operation status re-fetches
	AwaitRetries        int           // Transport-failure budget while polling an operation
	DestroyAwaitRetries int           // Larger budget for instance deletion polls
	DNSRetryInterval    time.Duration // Fixed interval between DNS precondition retries
	DNSRetryAttempts    int           // DNS precondition retry cap
	ReadyCheck          time.Duration // TCP dial timeout for the readiness probe
}

// LoadTimeouts loads timing configuration from environment variables.
// If an environment variable is not set or invalid, a default value is used.
//
// Environment Variables:
//   - GCE_POLL_INTERVAL (default: 2s)
//   - GCE_AWAIT_RETRIES (default: 5)
//   - GCE_DESTROY_AWAIT_RETRIES (default: 10)
//   - GCE_DNS_RETRY_INTERVAL (default: 5s)
//   - GCE_DNS_RETRY_ATTEMPTS (default: 5)
//   - GCE_READY_CHECK_TIMEOUT (default: 5s)
func LoadTimeouts() *Timeouts {
	return &Timeouts{
		PollInterval:        parseDuration("GCE_POLL_INTERVAL", 2*time.Second),
		AwaitRetries:        parseInt("GCE_AWAIT_RETRIES", 5),
		DestroyAwaitRetries: parseInt("GCE_DESTROY_AWAIT_RETRIES", 10),
		DNSRetryInterval:    parseDuration("GCE_DNS_RETRY_INTERVAL", 5*time.Second),
		DNSRetryAttempts:    parseInt("GCE_DNS_RETRY_ATTEMPTS", 5),
		ReadyCheck:          parseDuration("GCE_READY_CHECK_TIMEOUT", 5*time.Second),
	}
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseDuration(envVar string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the default value is returned.
func parseInt(envVar string, defaultVal int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}
