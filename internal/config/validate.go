package config

import "fmt"

// Validate checks the configuration for the mistakes that would otherwise
// surface as confusing remote API errors mid-operation.
func (c *Config) Validate() error {
	if c.Provider.Project == "" {
		return fmt.Errorf("provider.project is required")
	}
	if c.Provider.Domain != "" && c.Provider.DNSZone == "" {
		return fmt.Errorf("provider.dns_zone is required when provider.domain is set")
	}
	if c.Provider.ConnectionPoolSize < 0 {
		return fmt.Errorf("provider.connection_pool_size must not be negative")
	}
	if len(c.Pools) == 0 {
		return fmt.Errorf("at least one pool must be configured")
	}

	seen := make(map[string]bool, len(c.Pools))
	for _, p := range c.Pools {
		if p.Name == "" {
			return fmt.Errorf("every pool needs a name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate pool name %q", p.Name)
		}
		seen[p.Name] = true

		if p.Template == "" {
			return fmt.Errorf("pool %q: template is required", p.Name)
		}
		if p.Zone == "" {
			return fmt.Errorf("pool %q: zone is required", p.Name)
		}
		if p.MachineType == "" {
			return fmt.Errorf("pool %q: machine_type is required", p.Name)
		}
	}
	return nil
}
