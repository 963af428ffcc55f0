package config

import "fmt"

// Config is the top-level provider configuration.
type Config struct {
	Provider ProviderConfig `yaml:"provider"`
	Pools    []PoolConfig   `yaml:"pools"`
}

// ProviderConfig holds project-wide settings.
type ProviderConfig struct {
	// Project is the GCP project all resources live in.
	Project string `yaml:"project"`

	// CredentialsFile is an optional service account key file. When empty,
	// application default credentials are used.
	CredentialsFile string `yaml:"credentials_file"`

	// Domain, when set, enables DNS synchronization: each VM gets an A
	// record <name>.<domain> on creation and loses it on destruction.
	Domain string `yaml:"domain"`

	// DNSZone is the Cloud DNS managed zone name holding those records.
	// Required when Domain is set.
	DNSZone string `yaml:"dns_zone"`

	// ConnectionPoolSize bounds the number of concurrently checked-out
	// compute clients. Zero means DefaultPoolSize.
	ConnectionPoolSize int `yaml:"connection_pool_size"`
}

// PoolConfig describes one pool of interchangeable VMs.
type PoolConfig struct {
	Name        string `yaml:"name"`
	Template    string `yaml:"template"`
	Zone        string `yaml:"zone"`
	MachineType string `yaml:"machine_type"`
	Network     string `yaml:"network"`
	Subnetwork  string `yaml:"subnetwork"`
	DiskType    string `yaml:"disk_type"`
}

// DefaultPoolSize is the connection pool capacity when unconfigured.
const DefaultPoolSize = 2

// UnknownPoolError reports a request for a pool this provider is not
// configured to manage. It is fatal and never retried.
type UnknownPoolError struct {
	Pool string
}

func (e *UnknownPoolError) Error() string {
	return fmt.Sprintf("pool %q is not configured", e.Pool)
}

// Pool returns the configuration for the named pool.
func (c *Config) Pool(name string) (*PoolConfig, error) {
	for i := range c.Pools {
		if c.Pools[i].Name == name {
			return &c.Pools[i], nil
		}
	}
	return nil, &UnknownPoolError{Pool: name}
}

// PoolNames returns the names of all configured pools, in config order.
func (c *Config) PoolNames() []string {
	names := make([]string, len(c.Pools))
	for i, p := range c.Pools {
		names[i] = p.Name
	}
	return names
}

// Zones returns the deduplicated set of zones used by configured pools,
// preserving first-seen order. The purge sweep walks these.
func (c *Config) Zones() []string {
	seen := make(map[string]bool, len(c.Pools))
	var zones []string
	for _, p := range c.Pools {
		if p.Zone == "" || seen[p.Zone] {
			continue
		}
		seen[p.Zone] = true
		zones = append(zones, p.Zone)
	}
	return zones
}

// DNSEnabled reports whether a DNS target is configured.
func (c *Config) DNSEnabled() bool {
	return c.Provider.Domain != ""
}
