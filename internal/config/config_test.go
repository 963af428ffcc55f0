package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
provider:
  project: my-project
  domain: pool.example.com
  dns_zone: pool-example-com
pools:
  - name: debian-9
    template: projects/debian-cloud/global/images/family/debian-9
    zone: us-west1-b
    machine_type: n1-standard-1
  - name: centos-8
    template: projects/centos-cloud/global/images/family/centos-8
    zone: us-west1-b
    machine_type: n1-standard-2
    disk_type: pd-standard
  - name: debian-9-large
    template: projects/debian-cloud/global/images/family/debian-9
    zone: us-east1-c
    machine_type: n1-standard-4
`

func TestLoadValid(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)

	assert.Equal(t, "my-project", cfg.Provider.Project)
	assert.Equal(t, DefaultPoolSize, cfg.Provider.ConnectionPoolSize)
	assert.True(t, cfg.DNSEnabled())
	require.Len(t, cfg.Pools, 3)

	// Defaults applied per pool.
	assert.Equal(t, "pd-ssd", cfg.Pools[0].DiskType)
	assert.Equal(t, "pd-standard", cfg.Pools[1].DiskType)
	assert.Equal(t, "global/networks/default", cfg.Pools[0].Network)
}

func TestPoolLookup(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)

	pool, err := cfg.Pool("debian-9")
	require.NoError(t, err)
	assert.Equal(t, "us-west1-b", pool.Zone)

	_, err = cfg.Pool("no-such-pool")
	require.Error(t, err)
	var unknownErr *UnknownPoolError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, "no-such-pool", unknownErr.Pool)
}

func TestZonesDeduplicated(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"us-west1-b", "us-east1-c"}, cfg.Zones())
}

func TestPoolNames(t *testing.T) {
	cfg, err := Load([]byte(validYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"debian-9", "centos-8", "debian-9-large"}, cfg.PoolNames())
}

func TestValidateFailures(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{
			name: "missing project",
			yaml: "pools:\n  - name: p\n    template: t\n    zone: z\n    machine_type: m\n",
			want: "provider.project is required",
		},
		{
			name: "no pools",
			yaml: "provider:\n  project: p\n",
			want: "at least one pool",
		},
		{
			name: "domain without dns zone",
			yaml: "provider:\n  project: p\n  domain: d.example.com\npools:\n  - name: p\n    template: t\n    zone: z\n    machine_type: m\n",
			want: "dns_zone is required",
		},
		{
			name: "duplicate pool",
			yaml: "provider:\n  project: p\npools:\n  - name: a\n    template: t\n    zone: z\n    machine_type: m\n  - name: a\n    template: t\n    zone: z\n    machine_type: m\n",
			want: "duplicate pool name",
		},
		{
			name: "pool missing template",
			yaml: "provider:\n  project: p\npools:\n  - name: a\n    zone: z\n    machine_type: m\n",
			want: "template is required",
		},
		{
			name: "pool missing zone",
			yaml: "provider:\n  project: p\npools:\n  - name: a\n    template: t\n    machine_type: m\n",
			want: "zone is required",
		},
		{
			name: "pool missing machine type",
			yaml: "provider:\n  project: p\npools:\n  - name: a\n    template: t\n    zone: z\n",
			want: "machine_type is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadTimeoutsDefaults(t *testing.T) {
	timeouts := LoadTimeouts()
	assert.Equal(t, 5, timeouts.AwaitRetries)
	assert.Equal(t, 10, timeouts.DestroyAwaitRetries)
	assert.Positive(t, timeouts.PollInterval)
	assert.Positive(t, timeouts.ReadyCheck)
}

func TestLoadTimeoutsFromEnv(t *testing.T) {
	t.Setenv("GCE_AWAIT_RETRIES", "7")
	t.Setenv("GCE_POLL_INTERVAL", "250ms")
	t.Setenv("GCE_DNS_RETRY_ATTEMPTS", "not-a-number")

	timeouts := LoadTimeouts()
	assert.Equal(t, 7, timeouts.AwaitRetries)
	assert.Equal(t, 250000000, int(timeouts.PollInterval))
	assert.Equal(t, 5, timeouts.DNSRetryAttempts) // invalid value falls back
}
