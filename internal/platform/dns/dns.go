package dns

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/puppetlabs/vmpooler-provider-gce/internal/util/retry"
	dnsapi "google.golang.org/api/dns/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const (
	recordTTL  = 60
	recordType = "A"

	// DefaultRetryInterval and DefaultRetryAttempts bound how long a change
	// is retried when the managed zone rejects it with a precondition or
	// conflict failure. The cadence is fixed, independent of the operation
	// poller's policy.
	DefaultRetryInterval = 5 * time.Second
	DefaultRetryAttempts = 5
)

// Synchronizer keeps A records in step with VM addresses.
type Synchronizer interface {
	// Upsert points host at ip, replacing any existing record.
	Upsert(ctx context.Context, host, ip string) error
	// Remove deletes the record for host. An absent record is success.
	Remove(ctx context.Context, host string) error
}

// recordAPI is the seam between record bookkeeping and the Cloud DNS
// changes endpoint.
type recordAPI interface {
	lookup(ctx context.Context, fqdn string) ([]*dnsapi.ResourceRecordSet, error)
	apply(ctx context.Context, change *dnsapi.Change) error
}

// CloudDNS synchronizes A records in one managed zone. The underlying
// service is established lazily on first use.
type CloudDNS struct {
	project         string
	zone            string
	domain          string
	credentialsFile string
	retryInterval   time.Duration
	retryAttempts   int

	mu  sync.Mutex
	api recordAPI
}

// Option configures a CloudDNS synchronizer.
type Option func(*CloudDNS)

// WithCredentialsFile authenticates with a service account key file
// instead of application default credentials.
func WithCredentialsFile(path string) Option {
	return func(c *CloudDNS) {
		c.credentialsFile = path
	}
}

// WithRetryPolicy overrides the fixed retry cadence for rejected changes.
func WithRetryPolicy(interval time.Duration, attempts int) Option {
	return func(c *CloudDNS) {
		c.retryInterval = interval
		c.retryAttempts = attempts
	}
}

// WithRecordAPI injects a record API, bypassing service establishment.
func WithRecordAPI(api recordAPI) Option {
	return func(c *CloudDNS) {
		c.api = api
	}
}

// NewCloudDNS creates a synchronizer for the given managed zone. Hosts are
// qualified with domain to form record names.
func NewCloudDNS(project, zone, domain string, opts ...Option) *CloudDNS {
	c := &CloudDNS{
		project:       project,
		zone:          zone,
		domain:        domain,
		retryInterval: DefaultRetryInterval,
		retryAttempts: DefaultRetryAttempts,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *CloudDNS) Upsert(ctx context.Context, host, ip string) error {
	api, err := c.ensureAPI(ctx)
	if err != nil {
		return err
	}

	fqdn := c.fqdn(host)
	record := &dnsapi.ResourceRecordSet{
		Name:    fqdn,
		Type:    recordType,
		Ttl:     recordTTL,
		Rrdatas: []string{ip},
	}

	err = retry.Do(ctx, func() error {
		addErr := api.apply(ctx, &dnsapi.Change{
			Additions: []*dnsapi.ResourceRecordSet{record},
		})
		if addErr == nil {
			return nil
		}
		if isAlreadyExists(addErr) {
			return c.replace(ctx, api, fqdn, record)
		}
		return classify(addErr)
	}, retry.WithFixedInterval(c.retryInterval), retry.WithMaxRetries(c.retryAttempts))
	if err != nil {
		return fmt.Errorf("upsert record %s: %w", fqdn, err)
	}
	return nil
}

// replace swaps whatever currently answers for fqdn with record in a
// single change.
func (c *CloudDNS) replace(ctx context.Context, api recordAPI, fqdn string, record *dnsapi.ResourceRecordSet) error {
	existing, err := api.lookup(ctx, fqdn)
	if err != nil {
		return classify(err)
	}
	err = api.apply(ctx, &dnsapi.Change{
		Deletions: existing,
		Additions: []*dnsapi.ResourceRecordSet{record},
	})
	if err != nil {
		return classify(err)
	}
	return nil
}

func (c *CloudDNS) Remove(ctx context.Context, host string) error {
	api, err := c.ensureAPI(ctx)
	if err != nil {
		return err
	}

	fqdn := c.fqdn(host)
	err = retry.Do(ctx, func() error {
		existing, lookupErr := api.lookup(ctx, fqdn)
		if lookupErr != nil {
			if isNotFound(lookupErr) {
				return nil
			}
			return classify(lookupErr)
		}
		if len(existing) == 0 {
			return nil
		}
		applyErr := api.apply(ctx, &dnsapi.Change{Deletions: existing})
		if applyErr != nil {
			if isNotFound(applyErr) {
				return nil
			}
			return classify(applyErr)
		}
		return nil
	}, retry.WithFixedInterval(c.retryInterval), retry.WithMaxRetries(c.retryAttempts))
	if err != nil {
		return fmt.Errorf("remove record %s: %w", fqdn, err)
	}
	return nil
}

// fqdn qualifies host with the configured domain; record names in a
// managed zone are absolute.
func (c *CloudDNS) fqdn(host string) string {
	return fmt.Sprintf("%s.%s.", host, c.domain)
}

func (c *CloudDNS) ensureAPI(ctx context.Context) (recordAPI, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.api != nil {
		return c.api, nil
	}

	var opts []option.ClientOption
	if c.credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(c.credentialsFile))
	}
	service, err := dnsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating dns service: %w", err)
	}
	c.api = &realRecordAPI{project: c.project, zone: c.zone, service: service}
	return c.api, nil
}

// classify decides whether a change failure is worth retrying at the
// fixed cadence. Only precondition and conflict rejections are; the
// managed zone serializes changes and rejects overlapping ones.
func classify(err error) error {
	if isPrecondition(err) || isAlreadyExists(err) {
		return err
	}
	return retry.Fatal(err)
}

func isAlreadyExists(err error) bool {
	return hasCode(err, http.StatusConflict)
}

func isNotFound(err error) bool {
	return hasCode(err, http.StatusNotFound)
}

func isPrecondition(err error) bool {
	return hasCode(err, http.StatusPreconditionFailed)
}

func hasCode(err error, code int) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type realRecordAPI struct {
	project string
	zone    string
	service *dnsapi.Service
}

func (r *realRecordAPI) lookup(ctx context.Context, fqdn string) ([]*dnsapi.ResourceRecordSet, error) {
	resp, err := r.service.ResourceRecordSets.List(r.project, r.zone).
		Name(fqdn).Type(recordType).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Rrsets, nil
}

func (r *realRecordAPI) apply(ctx context.Context, change *dnsapi.Change) error {
	_, err := r.service.Changes.Create(r.project, r.zone, change).Context(ctx).Do()
	return err
}
