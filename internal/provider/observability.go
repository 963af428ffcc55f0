package provider

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Observer defines the interface for structured observability during
// lifecycle operations.
type Observer interface {
	// Printf emits an unstructured log line.
	Printf(format string, v ...interface{})

	// Event emits a structured event.
	Event(event Event)

	// WithFields returns a new Observer with additional context fields.
	WithFields(fields map[string]string) Observer
}

// Event represents a structured lifecycle event.
type Event struct {
	Type      EventType         // Type of event
	Operation string            // Operation name (e.g., "create_vm", "purge")
	Message   string            // Human-readable message
	Resource  string            // Resource name if applicable
	Timestamp time.Time         // When the event occurred
	Fields    map[string]string // Additional contextual fields
}

// EventType represents the type of lifecycle event.
type EventType string

const (
	// EventResourceCreating indicates a resource mutation was submitted.
	EventResourceCreating EventType = "resource.creating"
	// EventResourceCreated indicates a resource mutation completed.
	EventResourceCreated EventType = "resource.created"
	// EventResourceDeleting indicates a resource deletion was submitted.
	EventResourceDeleting EventType = "resource.deleting"
	// EventResourceDeleted indicates a resource deletion completed.
	EventResourceDeleted EventType = "resource.deleted"
	// EventResourceSkipped indicates a resource was exempted from a sweep.
	EventResourceSkipped EventType = "resource.skipped"

	// EventDNSSynced indicates an A record was brought in step with a VM.
	EventDNSSynced EventType = "dns.synced"
	// EventDNSFailed indicates a best-effort DNS update failed.
	EventDNSFailed EventType = "dns.failed"

	// EventOperationFailed indicates a lifecycle operation failed.
	EventOperationFailed EventType = "operation.failed"
)

// ConsoleObserver implements Observer using the standard log package.
type ConsoleObserver struct {
	contextFields map[string]string
}

// NewConsoleObserver creates a new console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{
		contextFields: make(map[string]string),
	}
}

// Printf implements Observer.
func (o *ConsoleObserver) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

// Event implements Observer.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.contextFields {
		if _, exists := event.Fields[k]; !exists {
			event.Fields[k] = v
		}
	}

	log.Print(o.formatEvent(event))
}

// WithFields implements Observer.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	newFields := make(map[string]string)
	for k, v := range o.contextFields {
		newFields[k] = v
	}
	for k, v := range fields {
		newFields[k] = v
	}

	return &ConsoleObserver{
		contextFields: newFields,
	}
}

func (o *ConsoleObserver) formatEvent(event Event) string {
	var parts []string

	parts = append(parts, string(event.Type))

	if event.Operation != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Operation))
	}

	if event.Resource != "" {
		parts = append(parts, fmt.Sprintf("resource=%s", event.Resource))
	}

	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		var fieldParts []string
		for k, v := range event.Fields {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%s", k, v))
		}
		parts = append(parts, fmt.Sprintf("(%s)", strings.Join(fieldParts, ", ")))
	}

	return strings.Join(parts, " ")
}

// NoopObserver discards everything. Useful in tests.
type NoopObserver struct{}

func (NoopObserver) Printf(string, ...interface{}) {}

func (NoopObserver) Event(Event) {}

func (n NoopObserver) WithFields(map[string]string) Observer { return n }
