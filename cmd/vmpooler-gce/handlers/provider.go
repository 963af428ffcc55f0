// Package handlers implements the command execution logic behind the CLI.
//
// Handlers build the provider stack from a configuration file, run one
// lifecycle operation, and print the outcome. The construction seam is a
// package-level factory variable so tests can inject fakes.
package handlers

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/puppetlabs/vmpooler-provider-gce/internal/config"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/platform/dns"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/platform/gce"
	"github.com/puppetlabs/vmpooler-provider-gce/internal/provider"
)

// newProvider builds the full provider stack from a config file.
// Replaced in tests.
var newProvider = func(configPath string) (provider.Provider, error) {
	cfg, err := config.LoadFile(configPath)
	if err != nil {
		return nil, err
	}

	pool := gce.NewConnectionPool(cfg.Provider.ConnectionPoolSize, func() (gce.ComputeManager, error) {
		var opts []gce.ClientOption
		if cfg.Provider.CredentialsFile != "" {
			opts = append(opts, gce.WithCredentialsFile(cfg.Provider.CredentialsFile))
		}
		return gce.NewRealClient(cfg.Provider.Project, opts...), nil
	})

	timeouts := config.LoadTimeouts()
	opts := []provider.Option{
		provider.WithTimeouts(timeouts),
		provider.WithMetrics(provider.NewMetrics(prometheus.DefaultRegisterer)),
	}
	if cfg.DNSEnabled() {
		var dnsOpts []dns.Option
		if cfg.Provider.CredentialsFile != "" {
			dnsOpts = append(dnsOpts, dns.WithCredentialsFile(cfg.Provider.CredentialsFile))
		}
		dnsOpts = append(dnsOpts, dns.WithRetryPolicy(timeouts.DNSRetryInterval, timeouts.DNSRetryAttempts))
		sync := dns.NewCloudDNS(cfg.Provider.Project, cfg.Provider.DNSZone, cfg.Provider.Domain, dnsOpts...)
		opts = append(opts, provider.WithDNS(sync))
	}

	return provider.NewGCE(cfg, pool, opts...), nil
}
