package provider

import (
	"time"

	"github.com/puppetlabs/vmpooler-provider-gce/internal/util/labels"
	compute "google.golang.org/api/compute/v1"
)

// VirtualMachine is the normalized view of a pool member. It is built from
// a live instance read and never cached between calls. Status is owned by
// the remote system; one of PROVISIONING, STAGING, RUNNING, STOPPING,
// SUSPENDING, SUSPENDED, REPAIRING, TERMINATED.
type VirtualMachine struct {
	Name             string
	Hostname         string
	Template         string
	Pool             string
	BootTime         time.Time
	Status           string
	Zone             string
	MachineType      string
	Labels           map[string]string
	LabelFingerprint string
	IP               string
}

// normalizeVM builds the normalized view from a live instance read. The
// remote system does not expose template provenance after creation, so the
// pool's configured template is reported instead.
func normalizeVM(instance *compute.Instance, template string) *VirtualMachine {
	vm := &VirtualMachine{
		Name:             instance.Name,
		Hostname:         instance.Hostname,
		Template:         template,
		Pool:             instance.Labels[labels.KeyPool],
		Status:           instance.Status,
		Zone:             lastSegment(instance.Zone),
		MachineType:      lastSegment(instance.MachineType),
		Labels:           instance.Labels,
		LabelFingerprint: instance.LabelFingerprint,
	}
	if t, err := time.Parse(time.RFC3339, instance.CreationTimestamp); err == nil {
		vm.BootTime = t
	}
	if len(instance.NetworkInterfaces) > 0 {
		vm.IP = instance.NetworkInterfaces[0].NetworkIP
	}
	return vm
}

// lastSegment strips the resource path from a self link or partial URL.
func lastSegment(url string) string {
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}
